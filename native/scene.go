package native

// AiScene mirrors aiScene. All arrays are pointer-to-pointer arrays on
// the C side except where noted. Skeletons and Private are carried so the
// struct size matches; the binding writes them as null and never follows
// them on read.
type AiScene struct {
	Flags         uint32
	RootNode      Ptr // *aiNode
	NumMeshes     uint32
	Meshes        Ptr // **aiMesh
	NumMaterials  uint32
	Materials     Ptr // **aiMaterial
	NumAnimations uint32
	Animations    Ptr // **aiAnimation
	NumTextures   uint32
	Textures      Ptr // **aiTexture
	NumLights     uint32
	Lights        Ptr // **aiLight
	NumCameras    uint32
	Cameras       Ptr // **aiCamera
	Metadata      Ptr // *aiMetadata
	Name          AiString
	NumSkeletons  uint32
	Skeletons     Ptr // **aiSkeleton
	Private       Ptr
}

// AiNode mirrors aiNode. Parent is a raw back-reference into the same
// graph; it is never freed through this struct.
type AiNode struct {
	Name           AiString
	Transformation Matrix4x4
	Parent         Ptr // *aiNode
	NumChildren    uint32
	Children       Ptr // **aiNode
	NumMeshes      uint32
	Meshes         Ptr // *uint32, indices into AiScene.Meshes
	Metadata       Ptr // *aiMetadata
}

// AiMetadata mirrors aiMetadata: parallel key and value arrays of equal
// length.
type AiMetadata struct {
	NumProperties uint32
	Keys          Ptr // *aiString
	Values        Ptr // *aiMetadataEntry
}

// AiMetadataEntry mirrors aiMetadataEntry, a tagged pointer to a payload
// whose layout depends on Type.
type AiMetadataEntry struct {
	Type MetadataType
	Data Ptr
}
