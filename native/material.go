package native

// AiMaterial mirrors aiMaterial: a flat property bag. NumAllocated is the
// C side's capacity bookkeeping and is written equal to NumProperties.
type AiMaterial struct {
	Properties    Ptr // **aiMaterialProperty
	NumProperties uint32
	NumAllocated  uint32
}

// AiMaterialProperty mirrors aiMaterialProperty. Data points at a raw
// payload of DataLength bytes whose interpretation follows Type; string
// payloads are a 4-byte length prefix followed by the bytes and a
// terminator.
type AiMaterialProperty struct {
	Key        AiString
	Semantic   uint32 // TextureType for texture stack entries
	Index      uint32
	DataLength uint32
	Type       PropertyTypeInfo
	Data       Ptr // *byte
}
