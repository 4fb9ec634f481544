package native

// AiTexture mirrors aiTexture. Two payload modes share the struct: when
// Height is zero the texture is compressed, Width is the byte length of
// the blob behind Data, and FormatHint carries a file extension hint;
// otherwise Data points at Width*Height texels.
type AiTexture struct {
	Width      uint32
	Height     uint32
	FormatHint [MaxTextureHintLen]byte
	Data       Ptr // *aiTexel or raw bytes
	Filename   AiString
}
