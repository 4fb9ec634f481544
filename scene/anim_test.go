package scene

import (
	"testing"

	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

func swingAnimation() *Animation {
	return &Animation{
		Name:           "swing",
		Duration:       48,
		TicksPerSecond: 24,
		NodeChannels: []*NodeAnimationChannel{
			{
				NodeName: "arm",
				PositionKeys: []VectorKey{
					{Time: 0, Value: native.Vector3{}},
					{Time: 48, Value: native.Vector3{X: 1}, Interpolation: native.InterpolationLinear},
				},
				RotationKeys: []QuaternionKey{
					{Time: 0, Value: native.Quaternion{W: 1}},
				},
				ScalingKeys: []VectorKey{
					{Time: 0, Value: native.Vector3{X: 1, Y: 1, Z: 1}},
				},
				PreState:  native.AnimBehaviourConstant,
				PostState: native.AnimBehaviourRepeat,
			},
		},
		MeshChannels: []*MeshAnimationChannel{
			{Name: "arm.mesh", Keys: []MeshKey{{Time: 0, Value: 0}, {Time: 24, Value: 1}}},
		},
		MorphChannels: []*MeshMorphAnimationChannel{
			{
				Name: "arm.morph",
				Keys: []MeshMorphKey{
					{Time: 0, Values: []uint32{0, 1}, Weights: []float64{1, 0}},
					{Time: 48, Values: []uint32{0, 1}, Weights: []float64{0.25, 0.75}},
				},
			},
		},
	}
}

func TestAnimationRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	a := swingAnimation()
	ptr := marshal.ToNativePointer[native.AiAnimation](a)
	got := marshal.FromNativePointer[native.AiAnimation, Animation](ptr)

	if got.Name != "swing" || got.Duration != 48 || got.TicksPerSecond != 24 {
		t.Errorf("header: %+v", got)
	}

	nc := got.NodeChannels[0]
	if nc.NodeName != "arm" || len(nc.PositionKeys) != 2 || len(nc.RotationKeys) != 1 {
		t.Fatalf("node channel: %+v", nc)
	}
	if nc.PositionKeys[1].Interpolation != native.InterpolationLinear {
		t.Error("interpolation lost")
	}
	if nc.PreState != native.AnimBehaviourConstant || nc.PostState != native.AnimBehaviourRepeat {
		t.Error("extrapolation states lost")
	}

	mc := got.MeshChannels[0]
	if mc.Name != "arm.mesh" || len(mc.Keys) != 2 || mc.Keys[1].Value != 1 {
		t.Errorf("mesh channel: %+v", mc)
	}

	mo := got.MorphChannels[0]
	if mo.Name != "arm.morph" || len(mo.Keys) != 2 {
		t.Fatalf("morph channel: %+v", mo)
	}
	if mo.Keys[1].Weights[1] != 0.75 || mo.Keys[1].Values[1] != 1 {
		t.Errorf("morph key: %+v", mo.Keys[1])
	}

	FreeNativeAnimation(ptr, true)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

func TestMorphKeyMismatchedLengths(t *testing.T) {
	k := MeshMorphKey{Values: []uint32{1, 2, 3}, Weights: []float64{0.5}}
	n := k.ToNative(0)
	defer mem.Free(n.Values)
	defer mem.Free(n.Weights)
	if n.NumValuesAndWeights != 1 {
		t.Errorf("count = %d, want shorter side 1", n.NumValuesAndWeights)
	}
}

func TestEmptyAnimationRoundTrip(t *testing.T) {
	before := mem.AllocationCount()
	ptr := marshal.ToNativePointer[native.AiAnimation](&Animation{Name: "still"})
	got := marshal.FromNativePointer[native.AiAnimation, Animation](ptr)
	if got.NodeChannels != nil || got.MeshChannels != nil || got.MorphChannels != nil {
		t.Errorf("empty channels resurrected: %+v", got)
	}
	FreeNativeAnimation(ptr, true)
	if mem.AllocationCount() != before {
		t.Error("leak on empty animation")
	}
}
