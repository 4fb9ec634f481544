package scene

import (
	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// VertexWeight pairs a vertex index with its bone influence. Blittable.
type VertexWeight = native.AiVertexWeight

// Face is one polygon, indices into the owning mesh's vertex channels.
type Face struct {
	Indices []uint32
}

func (f *Face) ToNative(addr uintptr) native.AiFace {
	return native.AiFace{
		NumIndices: uint32(len(f.Indices)),
		Indices:    marshal.ToBlittableArray(f.Indices),
	}
}

func (f *Face) FromNative(n *native.AiFace) {
	f.Indices = marshal.FromBlittableArray[uint32](n.Indices, int(n.NumIndices))
}

// FreeNativeFace releases a face's index array, and the struct itself
// when freeContainer is set. Faces embedded in a mesh's contiguous face
// array pass false.
func FreeNativeFace(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiFace](ptr)
	mem.Free(n.Indices)
	if freeContainer {
		mem.Free(ptr)
	}
}

// Bone binds a subset of a mesh's vertices to a node. Armature linkage
// is a post-process product and is not carried on the managed side.
type Bone struct {
	Name         string
	Weights      []VertexWeight
	OffsetMatrix native.Matrix4x4
}

func (b *Bone) ToNative(addr uintptr) native.AiBone {
	return native.AiBone{
		Name:         native.NewAiString(b.Name),
		NumWeights:   uint32(len(b.Weights)),
		Weights:      marshal.ToBlittableArray(b.Weights),
		OffsetMatrix: b.OffsetMatrix,
	}
}

func (b *Bone) FromNative(n *native.AiBone) {
	b.Name = n.Name.String()
	b.Weights = marshal.FromBlittableArray[VertexWeight](n.Weights, int(n.NumWeights))
	b.OffsetMatrix = n.OffsetMatrix
}

// FreeNativeBone releases a bone's weight array and optionally the
// struct.
func FreeNativeBone(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiBone](ptr)
	mem.Free(n.Weights)
	if freeContainer {
		mem.Free(ptr)
	}
}

// AnimMesh is a per-keyframe replacement for its parent mesh's vertex
// channels. Channels left nil keep the parent data.
type AnimMesh struct {
	Name          string
	Vertices      []native.Vector3
	Normals       []native.Vector3
	Tangents      []native.Vector3
	Bitangents    []native.Vector3
	Colors        [native.MaxColorSets][]native.Color4
	TextureCoords [native.MaxTexCoords][]native.Vector3
	Weight        float32
}

// VertexCount is the length of the widest channel; all non-empty
// channels are expected to agree.
func (a *AnimMesh) VertexCount() int {
	n := len(a.Vertices)
	for _, c := range [][]native.Vector3{a.Normals, a.Tangents, a.Bitangents} {
		if len(c) > n {
			n = len(c)
		}
	}
	for i := range a.Colors {
		if len(a.Colors[i]) > n {
			n = len(a.Colors[i])
		}
	}
	for i := range a.TextureCoords {
		if len(a.TextureCoords[i]) > n {
			n = len(a.TextureCoords[i])
		}
	}
	return n
}

func (a *AnimMesh) ToNative(addr uintptr) native.AiAnimMesh {
	out := native.AiAnimMesh{
		Name:        native.NewAiString(a.Name),
		Vertices:    marshal.ToBlittableArray(a.Vertices),
		Normals:     marshal.ToBlittableArray(a.Normals),
		Tangents:    marshal.ToBlittableArray(a.Tangents),
		Bitangents:  marshal.ToBlittableArray(a.Bitangents),
		NumVertices: uint32(a.VertexCount()),
		Weight:      a.Weight,
	}
	for i := range a.Colors {
		out.Colors[i] = marshal.ToBlittableArray(a.Colors[i])
	}
	for i := range a.TextureCoords {
		out.TextureCoords[i] = marshal.ToBlittableArray(a.TextureCoords[i])
	}
	return out
}

func (a *AnimMesh) FromNative(n *native.AiAnimMesh) {
	count := int(n.NumVertices)
	a.Name = n.Name.String()
	a.Vertices = marshal.FromBlittableArray[native.Vector3](n.Vertices, count)
	a.Normals = marshal.FromBlittableArray[native.Vector3](n.Normals, count)
	a.Tangents = marshal.FromBlittableArray[native.Vector3](n.Tangents, count)
	a.Bitangents = marshal.FromBlittableArray[native.Vector3](n.Bitangents, count)
	for i := range a.Colors {
		a.Colors[i] = marshal.FromBlittableArray[native.Color4](n.Colors[i], count)
	}
	for i := range a.TextureCoords {
		a.TextureCoords[i] = marshal.FromBlittableArray[native.Vector3](n.TextureCoords[i], count)
	}
	a.Weight = n.Weight
}

// FreeNativeAnimMesh releases all channel arrays and optionally the
// struct.
func FreeNativeAnimMesh(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiAnimMesh](ptr)
	mem.Free(n.Vertices)
	mem.Free(n.Normals)
	mem.Free(n.Tangents)
	mem.Free(n.Bitangents)
	for i := range n.Colors {
		mem.Free(n.Colors[i])
	}
	for i := range n.TextureCoords {
		mem.Free(n.TextureCoords[i])
	}
	if freeContainer {
		mem.Free(ptr)
	}
}

// Mesh is one drawable unit bound to a single material. Vertex channels
// are parallel arrays; empty channels marshal to null pointers.
type Mesh struct {
	Name               string
	PrimitiveTypes     native.PrimitiveType
	MaterialIndex      uint32
	Vertices           []native.Vector3
	Normals            []native.Vector3
	Tangents           []native.Vector3
	Bitangents         []native.Vector3
	Colors             [native.MaxColorSets][]native.Color4
	TextureCoords      [native.MaxTexCoords][]native.Vector3
	UVComponents       [native.MaxTexCoords]uint32
	TextureCoordsNames [native.MaxTexCoords]string
	Faces              []Face
	Bones              []*Bone
	AnimMeshes         []*AnimMesh
	MorphMethod        native.MorphingMethod
	AABB               native.AABB
}

func (m *Mesh) hasTextureCoordsNames() bool {
	for _, s := range m.TextureCoordsNames {
		if s != "" {
			return true
		}
	}
	return false
}

func (m *Mesh) ToNative(addr uintptr) native.AiMesh {
	out := native.AiMesh{
		PrimitiveTypes:  uint32(m.PrimitiveTypes),
		NumVertices:     uint32(len(m.Vertices)),
		NumFaces:        uint32(len(m.Faces)),
		Vertices:        marshal.ToBlittableArray(m.Vertices),
		Normals:         marshal.ToBlittableArray(m.Normals),
		Tangents:        marshal.ToBlittableArray(m.Tangents),
		Bitangents:      marshal.ToBlittableArray(m.Bitangents),
		NumUVComponents: m.UVComponents,
		Faces:           marshal.ToNativeArray[native.AiFace](m.Faces),
		NumBones:        uint32(len(m.Bones)),
		Bones:           marshal.ToNativeArrayOfPtrs[native.AiBone](m.Bones),
		MaterialIndex:   m.MaterialIndex,
		Name:            native.NewAiString(m.Name),
		NumAnimMeshes:   uint32(len(m.AnimMeshes)),
		AnimMeshes:      marshal.ToNativeArrayOfPtrs[native.AiAnimMesh](m.AnimMeshes),
		Method:          m.MorphMethod,
		AABB:            m.AABB,
	}
	for i := range m.Colors {
		out.Colors[i] = marshal.ToBlittableArray(m.Colors[i])
	}
	for i := range m.TextureCoords {
		out.TextureCoords[i] = marshal.ToBlittableArray(m.TextureCoords[i])
	}
	if m.hasTextureCoordsNames() {
		// Fixed-width pointer table; only used channels carry a string.
		slots := mem.Allocate(ptrSize * native.MaxTexCoords)
		for i, s := range m.TextureCoordsNames {
			var strAddr uintptr
			if s != "" {
				strAddr = mem.Allocate(mem.SizeOf[native.AiString]())
				mem.Write(strAddr, native.NewAiString(s))
			}
			mem.Write(slots+uintptr(i*ptrSize), strAddr)
		}
		out.TextureCoordsNames = slots
	}
	return out
}

func (m *Mesh) FromNative(n *native.AiMesh) {
	vcount := int(n.NumVertices)
	m.Name = n.Name.String()
	m.PrimitiveTypes = native.PrimitiveType(n.PrimitiveTypes)
	m.MaterialIndex = n.MaterialIndex
	m.Vertices = marshal.FromBlittableArray[native.Vector3](n.Vertices, vcount)
	m.Normals = marshal.FromBlittableArray[native.Vector3](n.Normals, vcount)
	m.Tangents = marshal.FromBlittableArray[native.Vector3](n.Tangents, vcount)
	m.Bitangents = marshal.FromBlittableArray[native.Vector3](n.Bitangents, vcount)
	for i := range m.Colors {
		m.Colors[i] = marshal.FromBlittableArray[native.Color4](n.Colors[i], vcount)
	}
	for i := range m.TextureCoords {
		m.TextureCoords[i] = marshal.FromBlittableArray[native.Vector3](n.TextureCoords[i], vcount)
	}
	m.UVComponents = n.NumUVComponents
	m.Faces = marshal.FromNativeArray[native.AiFace, Face](n.Faces, int(n.NumFaces))
	m.Bones = marshal.FromNativeArrayOfPtrs[native.AiBone, Bone](n.Bones, int(n.NumBones))
	m.AnimMeshes = marshal.FromNativeArrayOfPtrs[native.AiAnimMesh, AnimMesh](n.AnimMeshes, int(n.NumAnimMeshes))
	m.MorphMethod = n.Method
	m.AABB = n.AABB
	m.TextureCoordsNames = [native.MaxTexCoords]string{}
	if n.TextureCoordsNames != 0 {
		for i := 0; i < native.MaxTexCoords; i++ {
			strAddr := mem.Read[uintptr](n.TextureCoordsNames + uintptr(i*ptrSize))
			if strAddr == 0 {
				continue
			}
			s := mem.Read[native.AiString](strAddr)
			m.TextureCoordsNames[i] = s.String()
		}
	}
}

// FreeNativeMesh releases every channel array, the face array with its
// per-face indices, bones, anim meshes, the texture coordinate name
// table, and optionally the struct itself.
func FreeNativeMesh(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiMesh](ptr)
	mem.Free(n.Vertices)
	mem.Free(n.Normals)
	mem.Free(n.Tangents)
	mem.Free(n.Bitangents)
	for i := range n.Colors {
		mem.Free(n.Colors[i])
	}
	for i := range n.TextureCoords {
		mem.Free(n.TextureCoords[i])
	}
	marshal.FreeNativeArray(n.Faces, int(n.NumFaces), mem.SizeOf[native.AiFace](), FreeNativeFace)
	marshal.FreeNativeArrayOfPtrs(n.Bones, int(n.NumBones), FreeNativeBone)
	marshal.FreeNativeArrayOfPtrs(n.AnimMeshes, int(n.NumAnimMeshes), FreeNativeAnimMesh)
	if n.TextureCoordsNames != 0 {
		marshal.FreeNativeArrayOfPtrs(n.TextureCoordsNames, native.MaxTexCoords, nil)
	}
	if freeContainer {
		mem.Free(ptr)
	}
}
