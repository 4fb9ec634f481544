package scene

import (
	apperr "github.com/meshforge/assimp-go/errors"
	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// Scene is the root of the managed asset model: the node hierarchy plus
// the flat arrays the nodes index into.
type Scene struct {
	Flags      uint32
	Name       string
	RootNode   *Node
	Meshes     []*Mesh
	Materials  []*Material
	Animations []*Animation
	Textures   []*EmbeddedTexture
	Lights     []*Light
	Cameras    []*Camera
	Metadata   Metadata
}

// NewScene returns a scene with an empty root node.
func NewScene(name string) *Scene {
	return &Scene{Name: name, RootNode: NewNode(name)}
}

// HasMeshes reports whether any mesh is present.
func (s *Scene) HasMeshes() bool { return len(s.Meshes) > 0 }

// HasAnimations reports whether any animation is present.
func (s *Scene) HasAnimations() bool { return len(s.Animations) > 0 }

// IsComplete reports whether the incomplete flag is clear.
func (s *Scene) IsComplete() bool {
	return s.Flags&native.SceneFlagIncomplete == 0
}

func (s *Scene) ToNative(addr uintptr) native.AiScene {
	return native.AiScene{
		Flags:         s.Flags,
		RootNode:      marshal.ToNativePointer[native.AiNode](s.RootNode),
		NumMeshes:     uint32(len(s.Meshes)),
		Meshes:        marshal.ToNativeArrayOfPtrs[native.AiMesh](s.Meshes),
		NumMaterials:  uint32(len(s.Materials)),
		Materials:     marshal.ToNativeArrayOfPtrs[native.AiMaterial](s.Materials),
		NumAnimations: uint32(len(s.Animations)),
		Animations:    marshal.ToNativeArrayOfPtrs[native.AiAnimation](s.Animations),
		NumTextures:   uint32(len(s.Textures)),
		Textures:      marshal.ToNativeArrayOfPtrs[native.AiTexture](s.Textures),
		NumLights:     uint32(len(s.Lights)),
		Lights:        marshal.ToNativeArrayOfPtrs[native.AiLight](s.Lights),
		NumCameras:    uint32(len(s.Cameras)),
		Cameras:       marshal.ToNativeArrayOfPtrs[native.AiCamera](s.Cameras),
		Metadata:      s.Metadata.toNativePtr(),
		Name:          native.NewAiString(s.Name),
	}
}

func (s *Scene) FromNative(n *native.AiScene) {
	s.Flags = n.Flags
	s.Name = n.Name.String()
	s.RootNode = marshal.FromNativePointer[native.AiNode, Node](n.RootNode)
	s.Meshes = marshal.FromNativeArrayOfPtrs[native.AiMesh, Mesh](n.Meshes, int(n.NumMeshes))
	s.Materials = marshal.FromNativeArrayOfPtrs[native.AiMaterial, Material](n.Materials, int(n.NumMaterials))
	s.Animations = marshal.FromNativeArrayOfPtrs[native.AiAnimation, Animation](n.Animations, int(n.NumAnimations))
	s.Textures = marshal.FromNativeArrayOfPtrs[native.AiTexture, EmbeddedTexture](n.Textures, int(n.NumTextures))
	s.Lights = marshal.FromNativeArrayOfPtrs[native.AiLight, Light](n.Lights, int(n.NumLights))
	s.Cameras = marshal.FromNativeArrayOfPtrs[native.AiCamera, Camera](n.Cameras, int(n.NumCameras))
	s.Metadata = metadataFromNativePtr(n.Metadata)
}

// ToNativeScene writes s and everything it owns into native memory and
// returns the scene address. Release with FreeNativeScene.
func ToNativeScene(s *Scene) uintptr {
	return marshal.ToNativePointer[native.AiScene](s)
}

// FromNativeScene deep copies a native scene graph into a managed scene.
// The native memory is left untouched and can be freed by its owner
// afterwards.
func FromNativeScene(ptr uintptr) (*Scene, error) {
	if ptr == 0 {
		return nil, apperr.NilPointer(apperr.PhaseImport, "scene")
	}
	s := new(Scene)
	n := mem.Read[native.AiScene](ptr)
	s.FromNative(&n)
	return s, nil
}

// FreeNativeScene releases a scene graph written by ToNativeScene: the
// node tree, all flat arrays with their elements, metadata, and, when
// freeContainer is set, the scene struct itself. Scenes owned by the
// native library are released through its own release call instead,
// never through this.
func FreeNativeScene(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiScene](ptr)
	FreeNativeNode(n.RootNode, true)
	marshal.FreeNativeArrayOfPtrs(n.Meshes, int(n.NumMeshes), FreeNativeMesh)
	marshal.FreeNativeArrayOfPtrs(n.Materials, int(n.NumMaterials), FreeNativeMaterial)
	marshal.FreeNativeArrayOfPtrs(n.Animations, int(n.NumAnimations), FreeNativeAnimation)
	marshal.FreeNativeArrayOfPtrs(n.Textures, int(n.NumTextures), FreeNativeTexture)
	marshal.FreeNativeArrayOfPtrs(n.Lights, int(n.NumLights), freeLeaf)
	marshal.FreeNativeArrayOfPtrs(n.Cameras, int(n.NumCameras), freeLeaf)
	freeNativeMetadata(n.Metadata)
	if freeContainer {
		mem.Free(ptr)
	}
}
