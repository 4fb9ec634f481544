package scene

import (
	"encoding/binary"
	"math"

	apperr "github.com/meshforge/assimp-go/errors"
	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// Well-known material property keys. The native library stores all
// material state in this flat key space.
const (
	MatKeyName              = "?mat.name"
	MatKeyShadingModel      = "$mat.shadingm"
	MatKeyTwoSided          = "$mat.twosided"
	MatKeyOpacity           = "$mat.opacity"
	MatKeyShininess         = "$mat.shininess"
	MatKeyShininessStrength = "$mat.shinpercent"
	MatKeyRefraction        = "$mat.refracti"
	MatKeyColorDiffuse      = "$clr.diffuse"
	MatKeyColorAmbient      = "$clr.ambient"
	MatKeyColorSpecular     = "$clr.specular"
	MatKeyColorEmissive     = "$clr.emissive"
	MatKeyColorTransparent  = "$clr.transparent"
	MatKeyTextureFile       = "$tex.file"
	MatKeyTextureMapping    = "$tex.mapping"
	MatKeyTextureUVIndex    = "$tex.uvwsrc"
	MatKeyTextureBlend      = "$tex.blend"
)

// MaterialProperty is one entry in a material's property bag. Data is
// the raw native payload; Type says how to decode it. Semantic and Index
// identify the texture stack slot for $tex.* keys and are zero
// otherwise.
type MaterialProperty struct {
	Key      string
	Semantic native.TextureType
	Index    uint32
	Type     native.PropertyTypeInfo
	Data     []byte
}

// NewFloatProperty encodes a single float payload.
func NewFloatProperty(key string, v float32) *MaterialProperty {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, math.Float32bits(v))
	return &MaterialProperty{Key: key, Type: native.PropertyTypeFloat, Data: data}
}

// NewColorProperty encodes an RGBA color as four floats.
func NewColorProperty(key string, c native.Color4) *MaterialProperty {
	data := make([]byte, 16)
	for i, f := range [4]float32{c.R, c.G, c.B, c.A} {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(f))
	}
	return &MaterialProperty{Key: key, Type: native.PropertyTypeFloat, Data: data}
}

// NewIntegerProperty encodes a single int32 payload.
func NewIntegerProperty(key string, v int32) *MaterialProperty {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(v))
	return &MaterialProperty{Key: key, Type: native.PropertyTypeInteger, Data: data}
}

// NewStringProperty encodes a string payload in the native material
// string format: a 4-byte length prefix, the bytes, and a terminator.
func NewStringProperty(key, v string) *MaterialProperty {
	data := make([]byte, 4+len(v)+1)
	binary.LittleEndian.PutUint32(data, uint32(len(v)))
	copy(data[4:], v)
	return &MaterialProperty{Key: key, Type: native.PropertyTypeString, Data: data}
}

// NewTextureProperty encodes a texture file path in the given stack
// slot.
func NewTextureProperty(texType native.TextureType, index uint32, path string) *MaterialProperty {
	p := NewStringProperty(MatKeyTextureFile, path)
	p.Semantic = texType
	p.Index = index
	return p
}

// AsFloat decodes a float payload.
func (p *MaterialProperty) AsFloat() (float32, error) {
	if p.Type != native.PropertyTypeFloat || len(p.Data) < 4 {
		return 0, apperr.InvalidData(apperr.PhaseUnmarshal, []string{p.Key}, "not a float property")
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(p.Data)), nil
}

// AsInteger decodes an integer payload.
func (p *MaterialProperty) AsInteger() (int32, error) {
	if p.Type != native.PropertyTypeInteger || len(p.Data) < 4 {
		return 0, apperr.InvalidData(apperr.PhaseUnmarshal, []string{p.Key}, "not an integer property")
	}
	return int32(binary.LittleEndian.Uint32(p.Data)), nil
}

// AsString decodes a length-prefixed string payload.
func (p *MaterialProperty) AsString() (string, error) {
	if p.Type != native.PropertyTypeString || len(p.Data) < 4 {
		return "", apperr.InvalidData(apperr.PhaseUnmarshal, []string{p.Key}, "not a string property")
	}
	n := int(binary.LittleEndian.Uint32(p.Data))
	if n < 0 || 4+n > len(p.Data) {
		return "", apperr.InvalidData(apperr.PhaseUnmarshal, []string{p.Key}, "string payload length out of bounds")
	}
	return string(p.Data[4 : 4+n]), nil
}

// AsColor decodes a four-float color payload.
func (p *MaterialProperty) AsColor() (native.Color4, error) {
	if p.Type != native.PropertyTypeFloat || len(p.Data) < 16 {
		return native.Color4{}, apperr.InvalidData(apperr.PhaseUnmarshal, []string{p.Key}, "not a color property")
	}
	var f [4]float32
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(p.Data[i*4:]))
	}
	return native.Color4{R: f[0], G: f[1], B: f[2], A: f[3]}, nil
}

func (p *MaterialProperty) ToNative(addr uintptr) native.AiMaterialProperty {
	return native.AiMaterialProperty{
		Key:        native.NewAiString(p.Key),
		Semantic:   uint32(p.Semantic),
		Index:      p.Index,
		DataLength: uint32(len(p.Data)),
		Type:       p.Type,
		Data:       marshal.ToBlittableArray(p.Data),
	}
}

func (p *MaterialProperty) FromNative(n *native.AiMaterialProperty) {
	p.Key = n.Key.String()
	p.Semantic = native.TextureType(n.Semantic)
	p.Index = n.Index
	p.Type = n.Type
	p.Data = marshal.FromBlittableArray[byte](n.Data, int(n.DataLength))
}

// FreeNativeMaterialProperty releases the payload and optionally the
// struct.
func FreeNativeMaterialProperty(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiMaterialProperty](ptr)
	mem.Free(n.Data)
	if freeContainer {
		mem.Free(ptr)
	}
}

// Material is a flat bag of typed properties.
type Material struct {
	Properties []*MaterialProperty
}

// FindProperty returns the property with the given key in texture slot
// (semantic, index), or nil. Non-texture keys use semantic
// TextureTypeNone and index 0.
func (m *Material) FindProperty(key string, semantic native.TextureType, index uint32) *MaterialProperty {
	for _, p := range m.Properties {
		if p != nil && p.Key == key && p.Semantic == semantic && p.Index == index {
			return p
		}
	}
	return nil
}

// Name returns the ?mat.name property, or empty.
func (m *Material) Name() string {
	p := m.FindProperty(MatKeyName, native.TextureTypeNone, 0)
	if p == nil {
		return ""
	}
	s, err := p.AsString()
	if err != nil {
		return ""
	}
	return s
}

// TexturePath returns the file path of the texture in stack slot
// (texType, index).
func (m *Material) TexturePath(texType native.TextureType, index uint32) (string, error) {
	p := m.FindProperty(MatKeyTextureFile, texType, index)
	if p == nil {
		return "", apperr.NotFound(apperr.PhaseUnmarshal, "texture property", MatKeyTextureFile)
	}
	return p.AsString()
}

// TextureCount returns how many textures sit in the given stack.
func (m *Material) TextureCount(texType native.TextureType) int {
	count := 0
	for _, p := range m.Properties {
		if p != nil && p.Key == MatKeyTextureFile && p.Semantic == texType {
			count++
		}
	}
	return count
}

// AddProperty appends p, replacing any existing property with the same
// key, semantic and index.
func (m *Material) AddProperty(p *MaterialProperty) {
	for i, old := range m.Properties {
		if old != nil && old.Key == p.Key && old.Semantic == p.Semantic && old.Index == p.Index {
			m.Properties[i] = p
			return
		}
	}
	m.Properties = append(m.Properties, p)
}

func (m *Material) ToNative(addr uintptr) native.AiMaterial {
	return native.AiMaterial{
		Properties:    marshal.ToNativeArrayOfPtrs[native.AiMaterialProperty](m.Properties),
		NumProperties: uint32(len(m.Properties)),
		NumAllocated:  uint32(len(m.Properties)),
	}
}

func (m *Material) FromNative(n *native.AiMaterial) {
	m.Properties = marshal.FromNativeArrayOfPtrs[native.AiMaterialProperty, MaterialProperty](n.Properties, int(n.NumProperties))
}

// FreeNativeMaterial releases the property array, every property with
// its payload, and optionally the struct.
func FreeNativeMaterial(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiMaterial](ptr)
	marshal.FreeNativeArrayOfPtrs(n.Properties, int(n.NumProperties), FreeNativeMaterialProperty)
	if freeContainer {
		mem.Free(ptr)
	}
}
