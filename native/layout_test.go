package native

import (
	"testing"
	"unsafe"
)

// The native library reads these structs byte for byte; any drift in size
// means an offset drifted with it.
func TestStructSizesMatchABI(t *testing.T) {
	cases := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"AiString", unsafe.Sizeof(AiString{}), 1028},
		{"Vector3", unsafe.Sizeof(Vector3{}), 12},
		{"Quaternion", unsafe.Sizeof(Quaternion{}), 16},
		{"Matrix4x4", unsafe.Sizeof(Matrix4x4{}), 64},
		{"Texel", unsafe.Sizeof(Texel{}), 4},
		{"AiVertexWeight", unsafe.Sizeof(AiVertexWeight{}), 8},
		{"AiVectorKey", unsafe.Sizeof(AiVectorKey{}), 24},
		{"AiQuatKey", unsafe.Sizeof(AiQuatKey{}), 32},
		{"AiMeshKey", unsafe.Sizeof(AiMeshKey{}), 16},
		{"AiMetadataEntry", unsafe.Sizeof(AiMetadataEntry{}), 16},
		{"AiFace", unsafe.Sizeof(AiFace{}), 16},
		{"AiMaterial", unsafe.Sizeof(AiMaterial{}), 16},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("sizeof(%s) = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestKeyFieldOffsets(t *testing.T) {
	var n AiNode
	if off := unsafe.Offsetof(n.Transformation); off != 1028 {
		t.Errorf("AiNode.Transformation at %d, want 1028", off)
	}
	var s AiScene
	if off := unsafe.Offsetof(s.RootNode); off != 8 {
		t.Errorf("AiScene.RootNode at %d, want 8", off)
	}
	if off := unsafe.Offsetof(s.Metadata); off != 112 {
		t.Errorf("AiScene.Metadata at %d, want 112", off)
	}
	var m AiMesh
	if off := unsafe.Offsetof(m.Faces); off != 208 {
		t.Errorf("AiMesh.Faces at %d, want 208", off)
	}
}
