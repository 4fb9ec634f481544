package scene

import (
	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// EmbeddedTexture is image data stored inside the asset. Exactly one of
// Texels or Blob is populated: Texels for uncompressed Width x Height
// BGRA data, Blob for a compressed image in its container format.
type EmbeddedTexture struct {
	Filename   string
	FormatHint string
	Width      uint32
	Height     uint32
	Texels     []native.Texel
	Blob       []byte
}

// IsCompressed reports whether the payload is a compressed blob rather
// than a texel grid.
func (t *EmbeddedTexture) IsCompressed() bool {
	return t.Height == 0
}

func (t *EmbeddedTexture) ToNative(addr uintptr) native.AiTexture {
	out := native.AiTexture{
		Filename: native.NewAiString(t.Filename),
	}
	hint := t.FormatHint
	if len(hint) > native.MaxTextureHintLen-1 {
		hint = hint[:native.MaxTextureHintLen-1]
	}
	copy(out.FormatHint[:], hint)

	if t.IsCompressed() {
		out.Width = uint32(len(t.Blob))
		out.Height = 0
		out.Data = marshal.ToBlittableArray(t.Blob)
		return out
	}
	out.Width = t.Width
	out.Height = t.Height
	out.Data = marshal.ToBlittableArray(t.Texels)
	return out
}

func (t *EmbeddedTexture) FromNative(n *native.AiTexture) {
	t.Filename = n.Filename.String()
	end := 0
	for end < len(n.FormatHint) && n.FormatHint[end] != 0 {
		end++
	}
	t.FormatHint = string(n.FormatHint[:end])
	t.Width = n.Width
	t.Height = n.Height
	if n.Height == 0 {
		t.Blob = marshal.FromBlittableArray[byte](n.Data, int(n.Width))
		t.Texels = nil
		return
	}
	t.Texels = marshal.FromBlittableArray[native.Texel](n.Data, int(n.Width*n.Height))
	t.Blob = nil
}

// FreeNativeTexture releases the payload block and optionally the
// struct.
func FreeNativeTexture(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiTexture](ptr)
	mem.Free(n.Data)
	if freeContainer {
		mem.Free(ptr)
	}
}
