package scene

import (
	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// Keyframe types shared with the native layer. All three are blittable,
// so channels copy them in bulk.
type (
	VectorKey     = native.AiVectorKey
	QuaternionKey = native.AiQuatKey
	MeshKey       = native.AiMeshKey
)

// NodeAnimationChannel keys the transform of one named node over time.
type NodeAnimationChannel struct {
	NodeName     string
	PositionKeys []VectorKey
	RotationKeys []QuaternionKey
	ScalingKeys  []VectorKey
	PreState     native.AnimBehaviour
	PostState    native.AnimBehaviour
}

func (c *NodeAnimationChannel) ToNative(addr uintptr) native.AiNodeAnim {
	return native.AiNodeAnim{
		NodeName:        native.NewAiString(c.NodeName),
		NumPositionKeys: uint32(len(c.PositionKeys)),
		PositionKeys:    marshal.ToBlittableArray(c.PositionKeys),
		NumRotationKeys: uint32(len(c.RotationKeys)),
		RotationKeys:    marshal.ToBlittableArray(c.RotationKeys),
		NumScalingKeys:  uint32(len(c.ScalingKeys)),
		ScalingKeys:     marshal.ToBlittableArray(c.ScalingKeys),
		PreState:        c.PreState,
		PostState:       c.PostState,
	}
}

func (c *NodeAnimationChannel) FromNative(n *native.AiNodeAnim) {
	c.NodeName = n.NodeName.String()
	c.PositionKeys = marshal.FromBlittableArray[VectorKey](n.PositionKeys, int(n.NumPositionKeys))
	c.RotationKeys = marshal.FromBlittableArray[QuaternionKey](n.RotationKeys, int(n.NumRotationKeys))
	c.ScalingKeys = marshal.FromBlittableArray[VectorKey](n.ScalingKeys, int(n.NumScalingKeys))
	c.PreState = n.PreState
	c.PostState = n.PostState
}

// FreeNativeNodeAnim releases the three key arrays and optionally the
// struct.
func FreeNativeNodeAnim(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiNodeAnim](ptr)
	mem.Free(n.PositionKeys)
	mem.Free(n.RotationKeys)
	mem.Free(n.ScalingKeys)
	if freeContainer {
		mem.Free(ptr)
	}
}

// MeshAnimationChannel switches a node between attached meshes over
// time.
type MeshAnimationChannel struct {
	Name string
	Keys []MeshKey
}

func (c *MeshAnimationChannel) ToNative(addr uintptr) native.AiMeshAnim {
	return native.AiMeshAnim{
		Name:    native.NewAiString(c.Name),
		NumKeys: uint32(len(c.Keys)),
		Keys:    marshal.ToBlittableArray(c.Keys),
	}
}

func (c *MeshAnimationChannel) FromNative(n *native.AiMeshAnim) {
	c.Name = n.Name.String()
	c.Keys = marshal.FromBlittableArray[MeshKey](n.Keys, int(n.NumKeys))
}

// FreeNativeMeshAnim releases the key array and optionally the struct.
func FreeNativeMeshAnim(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiMeshAnim](ptr)
	mem.Free(n.Keys)
	if freeContainer {
		mem.Free(ptr)
	}
}

// MeshMorphKey blends anim mesh targets at one instant. Values and
// Weights run in parallel.
type MeshMorphKey struct {
	Time    float64
	Values  []uint32
	Weights []float64
}

func (k *MeshMorphKey) ToNative(addr uintptr) native.AiMeshMorphKey {
	count := len(k.Values)
	if len(k.Weights) < count {
		count = len(k.Weights)
	}
	return native.AiMeshMorphKey{
		Time:                k.Time,
		Values:              marshal.ToBlittableArray(k.Values[:count]),
		Weights:             marshal.ToBlittableArray(k.Weights[:count]),
		NumValuesAndWeights: uint32(count),
	}
}

func (k *MeshMorphKey) FromNative(n *native.AiMeshMorphKey) {
	count := int(n.NumValuesAndWeights)
	k.Time = n.Time
	k.Values = marshal.FromBlittableArray[uint32](n.Values, count)
	k.Weights = marshal.FromBlittableArray[float64](n.Weights, count)
}

func freeNativeMorphKey(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiMeshMorphKey](ptr)
	mem.Free(n.Values)
	mem.Free(n.Weights)
	if freeContainer {
		mem.Free(ptr)
	}
}

// MeshMorphAnimationChannel keys morph target weights over time.
type MeshMorphAnimationChannel struct {
	Name string
	Keys []MeshMorphKey
}

func (c *MeshMorphAnimationChannel) ToNative(addr uintptr) native.AiMeshMorphAnim {
	return native.AiMeshMorphAnim{
		Name:    native.NewAiString(c.Name),
		NumKeys: uint32(len(c.Keys)),
		Keys:    marshal.ToNativeArray[native.AiMeshMorphKey](c.Keys),
	}
}

func (c *MeshMorphAnimationChannel) FromNative(n *native.AiMeshMorphAnim) {
	c.Name = n.Name.String()
	c.Keys = marshal.FromNativeArray[native.AiMeshMorphKey, MeshMorphKey](n.Keys, int(n.NumKeys))
}

// FreeNativeMorphAnim releases the morph key array including per-key
// value and weight arrays, and optionally the struct.
func FreeNativeMorphAnim(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiMeshMorphAnim](ptr)
	marshal.FreeNativeArray(n.Keys, int(n.NumKeys), mem.SizeOf[native.AiMeshMorphKey](), freeNativeMorphKey)
	if freeContainer {
		mem.Free(ptr)
	}
}

// Animation groups all channels that play together on one timeline.
// TicksPerSecond of zero means the importer left playback speed
// unspecified.
type Animation struct {
	Name           string
	Duration       float64
	TicksPerSecond float64
	NodeChannels   []*NodeAnimationChannel
	MeshChannels   []*MeshAnimationChannel
	MorphChannels  []*MeshMorphAnimationChannel
}

func (a *Animation) ToNative(addr uintptr) native.AiAnimation {
	return native.AiAnimation{
		Name:                 native.NewAiString(a.Name),
		Duration:             a.Duration,
		TicksPerSecond:       a.TicksPerSecond,
		NumChannels:          uint32(len(a.NodeChannels)),
		Channels:             marshal.ToNativeArrayOfPtrs[native.AiNodeAnim](a.NodeChannels),
		NumMeshChannels:      uint32(len(a.MeshChannels)),
		MeshChannels:         marshal.ToNativeArrayOfPtrs[native.AiMeshAnim](a.MeshChannels),
		NumMorphMeshChannels: uint32(len(a.MorphChannels)),
		MorphMeshChannels:    marshal.ToNativeArrayOfPtrs[native.AiMeshMorphAnim](a.MorphChannels),
	}
}

func (a *Animation) FromNative(n *native.AiAnimation) {
	a.Name = n.Name.String()
	a.Duration = n.Duration
	a.TicksPerSecond = n.TicksPerSecond
	a.NodeChannels = marshal.FromNativeArrayOfPtrs[native.AiNodeAnim, NodeAnimationChannel](n.Channels, int(n.NumChannels))
	a.MeshChannels = marshal.FromNativeArrayOfPtrs[native.AiMeshAnim, MeshAnimationChannel](n.MeshChannels, int(n.NumMeshChannels))
	a.MorphChannels = marshal.FromNativeArrayOfPtrs[native.AiMeshMorphAnim, MeshMorphAnimationChannel](n.MorphMeshChannels, int(n.NumMorphMeshChannels))
}

// FreeNativeAnimation releases all three channel arrays and optionally
// the struct.
func FreeNativeAnimation(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiAnimation](ptr)
	marshal.FreeNativeArrayOfPtrs(n.Channels, int(n.NumChannels), FreeNativeNodeAnim)
	marshal.FreeNativeArrayOfPtrs(n.MeshChannels, int(n.NumMeshChannels), FreeNativeMeshAnim)
	marshal.FreeNativeArrayOfPtrs(n.MorphMeshChannels, int(n.NumMorphMeshChannels), FreeNativeMorphAnim)
	if freeContainer {
		mem.Free(ptr)
	}
}
