package native

// AiAnimation mirrors aiAnimation.
type AiAnimation struct {
	Name                 AiString
	Duration             float64
	TicksPerSecond       float64
	NumChannels          uint32
	Channels             Ptr // **aiNodeAnim
	NumMeshChannels      uint32
	MeshChannels         Ptr // **aiMeshAnim
	NumMorphMeshChannels uint32
	MorphMeshChannels    Ptr // **aiMeshMorphAnim
}

// AiNodeAnim mirrors aiNodeAnim, keyframes for a single named node.
type AiNodeAnim struct {
	NodeName        AiString
	NumPositionKeys uint32
	PositionKeys    Ptr // *aiVectorKey
	NumRotationKeys uint32
	RotationKeys    Ptr // *aiQuatKey
	NumScalingKeys  uint32
	ScalingKeys     Ptr // *aiVectorKey
	PreState        AnimBehaviour
	PostState       AnimBehaviour
}

// AiMeshAnim mirrors aiMeshAnim.
type AiMeshAnim struct {
	Name    AiString
	NumKeys uint32
	Keys    Ptr // *aiMeshKey
}

// AiMeshMorphAnim mirrors aiMeshMorphAnim.
type AiMeshMorphAnim struct {
	Name    AiString
	NumKeys uint32
	Keys    Ptr // *aiMeshMorphKey
}

// AiVectorKey mirrors aiVectorKey. Blittable, 24 bytes.
type AiVectorKey struct {
	Time          float64
	Value         Vector3
	Interpolation AnimInterpolation
}

// AiQuatKey mirrors aiQuatKey. Blittable; the C struct pads to 32 bytes
// and the Go layout does the same.
type AiQuatKey struct {
	Time          float64
	Value         Quaternion
	Interpolation AnimInterpolation
}

// AiMeshKey mirrors aiMeshKey. Blittable.
type AiMeshKey struct {
	Time  float64
	Value uint32
}

// AiMeshMorphKey mirrors aiMeshMorphKey: parallel value and weight arrays
// of NumValuesAndWeights elements each.
type AiMeshMorphKey struct {
	Time                float64
	Values              Ptr // *uint32
	Weights             Ptr // *float64
	NumValuesAndWeights uint32
}
