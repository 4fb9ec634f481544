package scene

import (
	"testing"

	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

func quadMesh() *Mesh {
	m := &Mesh{
		Name:           "quad",
		PrimitiveTypes: native.PrimitiveTriangle,
		MaterialIndex:  1,
		Vertices: []native.Vector3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		},
		Normals: []native.Vector3{
			{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
		},
		Faces: []Face{
			{Indices: []uint32{0, 1, 2}},
			{Indices: []uint32{0, 2, 3}},
		},
		AABB: native.AABB{Max: native.Vector3{X: 1, Y: 1}},
	}
	m.TextureCoords[0] = []native.Vector3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	m.UVComponents[0] = 2
	m.TextureCoordsNames[0] = "base"
	m.Colors[1] = []native.Color4{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 1, 1}}
	m.Bones = []*Bone{
		{
			Name:         "hinge",
			Weights:      []VertexWeight{{VertexID: 0, Weight: 1}, {VertexID: 1, Weight: 0.5}},
			OffsetMatrix: native.Translation(native.Vector3{Z: 2}),
		},
	}
	m.AnimMeshes = []*AnimMesh{
		{
			Name:     "open",
			Vertices: []native.Vector3{{0, 0, 0}, {1, 0, 1}, {1, 1, 1}, {0, 1, 0}},
			Weight:   0.75,
		},
	}
	return m
}

func TestMeshRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	m := quadMesh()
	ptr := marshal.ToNativePointer[native.AiMesh](m)

	n := mem.Read[native.AiMesh](ptr)
	if n.NumVertices != 4 || n.NumFaces != 2 || n.NumBones != 1 {
		t.Fatalf("counts: %d vertices, %d faces, %d bones", n.NumVertices, n.NumFaces, n.NumBones)
	}
	if n.Tangents != 0 || n.Colors[0] != 0 {
		t.Error("absent channels should be null")
	}
	if n.Colors[1] == 0 || n.TextureCoords[0] == 0 {
		t.Error("populated channels should be non-null")
	}

	got := marshal.FromNativePointer[native.AiMesh, Mesh](ptr)
	if got.Name != "quad" || got.MaterialIndex != 1 {
		t.Errorf("header: %q %d", got.Name, got.MaterialIndex)
	}
	if len(got.Vertices) != 4 || got.Vertices[2] != (native.Vector3{1, 1, 0}) {
		t.Errorf("vertices: %v", got.Vertices)
	}
	if got.Tangents != nil {
		t.Error("absent channel resurrected")
	}
	if len(got.Faces) != 2 || len(got.Faces[1].Indices) != 3 || got.Faces[1].Indices[2] != 3 {
		t.Errorf("faces: %+v", got.Faces)
	}
	if got.UVComponents[0] != 2 || got.TextureCoordsNames[0] != "base" {
		t.Errorf("uv channel: %d %q", got.UVComponents[0], got.TextureCoordsNames[0])
	}
	if len(got.Bones) != 1 || got.Bones[0].Name != "hinge" || len(got.Bones[0].Weights) != 2 {
		t.Errorf("bones: %+v", got.Bones)
	}
	if got.Bones[0].Weights[1] != (VertexWeight{VertexID: 1, Weight: 0.5}) {
		t.Errorf("weights: %+v", got.Bones[0].Weights)
	}
	if len(got.AnimMeshes) != 1 || got.AnimMeshes[0].Weight != 0.75 || len(got.AnimMeshes[0].Vertices) != 4 {
		t.Errorf("anim meshes: %+v", got.AnimMeshes)
	}
	if got.AABB.Max != (native.Vector3{X: 1, Y: 1}) {
		t.Errorf("aabb: %+v", got.AABB)
	}

	FreeNativeMesh(ptr, true)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

func TestEmptyMeshRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	ptr := marshal.ToNativePointer[native.AiMesh](&Mesh{Name: "bare"})
	got := marshal.FromNativePointer[native.AiMesh, Mesh](ptr)
	if got.Name != "bare" || got.Vertices != nil || got.Faces != nil || got.Bones != nil {
		t.Errorf("round trip: %+v", got)
	}

	FreeNativeMesh(ptr, true)
	if mem.AllocationCount() != before {
		t.Error("leak on empty mesh")
	}
}

func TestAnimMeshVertexCount(t *testing.T) {
	a := &AnimMesh{Normals: make([]native.Vector3, 6)}
	if got := a.VertexCount(); got != 6 {
		t.Errorf("VertexCount = %d, want 6", got)
	}
}
