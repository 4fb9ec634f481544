package native

// AiMesh mirrors aiMesh. The color and texture coordinate channels are
// fixed-size arrays of pointers; unused channels are null.
type AiMesh struct {
	PrimitiveTypes     uint32
	NumVertices        uint32
	NumFaces           uint32
	Vertices           Ptr // *aiVector3D
	Normals            Ptr // *aiVector3D
	Tangents           Ptr // *aiVector3D
	Bitangents         Ptr // *aiVector3D
	Colors             [MaxColorSets]Ptr // each *aiColor4D
	TextureCoords      [MaxTexCoords]Ptr // each *aiVector3D
	NumUVComponents    [MaxTexCoords]uint32
	Faces              Ptr // *aiFace
	NumBones           uint32
	Bones              Ptr // **aiBone
	MaterialIndex      uint32
	Name               AiString
	NumAnimMeshes      uint32
	AnimMeshes         Ptr // **aiAnimMesh
	Method             MorphingMethod
	AABB               AABB
	TextureCoordsNames Ptr // **aiString
}

// AiFace mirrors aiFace.
type AiFace struct {
	NumIndices uint32
	Indices    Ptr // *uint32
}

// AiVertexWeight mirrors aiVertexWeight. Blittable.
type AiVertexWeight struct {
	VertexID uint32
	Weight   float32
}

// AiBone mirrors aiBone. Armature and Node are populated by the library's
// armature post process; the binding writes them as null and does not
// follow them on read.
type AiBone struct {
	Name         AiString
	NumWeights   uint32
	Armature     Ptr // *aiNode
	Node         Ptr // *aiNode
	Weights      Ptr // *aiVertexWeight
	OffsetMatrix Matrix4x4
}

// AiAnimMesh mirrors aiAnimMesh, a per-frame replacement for vertex data
// of its parent mesh.
type AiAnimMesh struct {
	Name          AiString
	Vertices      Ptr // *aiVector3D
	Normals       Ptr // *aiVector3D
	Tangents      Ptr // *aiVector3D
	Bitangents    Ptr // *aiVector3D
	Colors        [MaxColorSets]Ptr
	TextureCoords [MaxTexCoords]Ptr
	NumVertices   uint32
	Weight        float32
}
