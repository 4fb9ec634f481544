package scene

import (
	"reflect"
	"sort"

	apperr "github.com/meshforge/assimp-go/errors"
	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// MetadataEntry is one tagged metadata value. Data holds one of: bool,
// int32, uint64, float32, float64, string, native.Vector3.
type MetadataEntry struct {
	Type native.MetadataType
	Data any
}

// Metadata is the key/value bag attached to scenes and nodes.
type Metadata map[string]MetadataEntry

// NewMetadataEntry tags v with its metadata type. Unsupported payload
// types yield a zero entry and false.
func NewMetadataEntry(v any) (MetadataEntry, bool) {
	t, ok := metaTagOf(v)
	if !ok {
		return MetadataEntry{}, false
	}
	return MetadataEntry{Type: t, Data: v}, true
}

func metaTagOf(v any) (native.MetadataType, bool) {
	switch v.(type) {
	case bool:
		return native.MetaBool, true
	case int32:
		return native.MetaInt32, true
	case uint64:
		return native.MetaUint64, true
	case float32:
		return native.MetaFloat32, true
	case float64:
		return native.MetaFloat64, true
	case string:
		return native.MetaString, true
	case native.Vector3:
		return native.MetaVector3, true
	}
	return 0, false
}

// metaGoTypes maps the native tag back to the Go payload type so
// unmarshaling can resolve the registered marshaler from the tag alone.
var metaGoTypes = map[native.MetadataType]reflect.Type{
	native.MetaBool:    reflect.TypeOf(false),
	native.MetaInt32:   reflect.TypeOf(int32(0)),
	native.MetaUint64:  reflect.TypeOf(uint64(0)),
	native.MetaFloat32: reflect.TypeOf(float32(0)),
	native.MetaFloat64: reflect.TypeOf(float64(0)),
	native.MetaString:  reflect.TypeOf(""),
	native.MetaVector3: reflect.TypeOf(native.Vector3{}),
}

// scalarPayload marshals fixed-size payloads by direct copy.
type scalarPayload[T any] struct{}

func (scalarPayload[T]) NativeSize(any) int { return mem.SizeOf[T]() }

func (scalarPayload[T]) MarshalNative(v any) (uintptr, error) {
	t, ok := v.(T)
	if !ok {
		return 0, apperr.New(apperr.PhaseMarshal, apperr.KindInvalidData).
			Detail("metadata payload has type %T", v).Build()
	}
	addr := mem.Allocate(mem.SizeOf[T]())
	mem.Write(addr, t)
	return addr, nil
}

func (scalarPayload[T]) UnmarshalNative(ptr uintptr) (any, error) {
	if ptr == 0 {
		return nil, apperr.NilPointer(apperr.PhaseUnmarshal, "metadata payload")
	}
	return mem.Read[T](ptr), nil
}

func (scalarPayload[T]) FreeNative(ptr uintptr) { mem.Free(ptr) }

// stringPayload stores strings as native length-prefixed strings.
type stringPayload struct{}

func (stringPayload) NativeSize(any) int { return mem.SizeOf[native.AiString]() }

func (stringPayload) MarshalNative(v any) (uintptr, error) {
	s, ok := v.(string)
	if !ok {
		return 0, apperr.New(apperr.PhaseMarshal, apperr.KindInvalidData).
			Detail("metadata payload has type %T, want string", v).Build()
	}
	addr := mem.Allocate(mem.SizeOf[native.AiString]())
	mem.Write(addr, native.NewAiString(s))
	return addr, nil
}

func (stringPayload) UnmarshalNative(ptr uintptr) (any, error) {
	if ptr == 0 {
		return nil, apperr.NilPointer(apperr.PhaseUnmarshal, "metadata payload")
	}
	s := mem.Read[native.AiString](ptr)
	return s.String(), nil
}

func (stringPayload) FreeNative(ptr uintptr) { mem.Free(ptr) }

func init() {
	marshal.Register(reflect.TypeOf(false), scalarPayload[bool]{})
	marshal.Register(reflect.TypeOf(int32(0)), scalarPayload[int32]{})
	marshal.Register(reflect.TypeOf(uint64(0)), scalarPayload[uint64]{})
	marshal.Register(reflect.TypeOf(float32(0)), scalarPayload[float32]{})
	marshal.Register(reflect.TypeOf(float64(0)), scalarPayload[float64]{})
	marshal.Register(reflect.TypeOf(""), stringPayload{})
	marshal.Register(reflect.TypeOf(native.Vector3{}), scalarPayload[native.Vector3]{})
}

// toNativePtr writes the metadata block, its parallel key and value
// arrays, and every payload. Empty metadata and metadata containing only
// unsupported payload types marshal to null. Keys are emitted in sorted
// order so output is deterministic.
func (m Metadata) toNativePtr() uintptr {
	if len(m) == 0 {
		return 0
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		if _, ok := metaTagOf(m[k].Data); ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return 0
	}
	sort.Strings(keys)

	keyBlock := mem.Allocate(mem.SizeOf[native.AiString]() * len(keys))
	valBlock := mem.Allocate(mem.SizeOf[native.AiMetadataEntry]() * len(keys))
	for i, k := range keys {
		entry := m[k]
		tag, _ := metaTagOf(entry.Data)
		c, err := marshal.For(entry.Data)
		if err != nil {
			// Payload types are pre-filtered above; a miss here means the
			// registry was reset underneath us.
			panic(err)
		}
		payload, err := c.MarshalNative(entry.Data)
		if err != nil {
			panic(err)
		}
		mem.Write(keyBlock+uintptr(i*mem.SizeOf[native.AiString]()), native.NewAiString(k))
		mem.Write(valBlock+uintptr(i*mem.SizeOf[native.AiMetadataEntry]()), native.AiMetadataEntry{
			Type: tag,
			Data: payload,
		})
	}

	addr := mem.Allocate(mem.SizeOf[native.AiMetadata]())
	mem.Write(addr, native.AiMetadata{
		NumProperties: uint32(len(keys)),
		Keys:          keyBlock,
		Values:        valBlock,
	})
	return addr
}

// metadataFromNativePtr deep copies a native metadata block. Null yields
// nil. Entries whose tag has no registered payload type are skipped.
func metadataFromNativePtr(ptr uintptr) Metadata {
	if ptr == 0 {
		return nil
	}
	n := mem.Read[native.AiMetadata](ptr)
	count := int(n.NumProperties)
	if count <= 0 {
		return nil
	}
	keys := marshal.FromBlittableArray[native.AiString](n.Keys, count)
	values := marshal.FromBlittableArray[native.AiMetadataEntry](n.Values, count)

	out := make(Metadata, count)
	for i := 0; i < count; i++ {
		goType, ok := metaGoTypes[values[i].Type]
		if !ok {
			continue
		}
		c, err := marshal.ForType(goType)
		if err != nil {
			continue
		}
		v, err := c.UnmarshalNative(values[i].Data)
		if err != nil {
			continue
		}
		out[keys[i].String()] = MetadataEntry{Type: values[i].Type, Data: v}
	}
	return out
}

// freeNativeMetadata releases a metadata block, both parallel arrays and
// every payload behind the value entries. Null is a no-op.
func freeNativeMetadata(ptr uintptr) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiMetadata](ptr)
	count := int(n.NumProperties)
	values := marshal.FromBlittableArray[native.AiMetadataEntry](n.Values, count)
	for _, v := range values {
		if goType, ok := metaGoTypes[v.Type]; ok {
			if c, err := marshal.ForType(goType); err == nil {
				c.FreeNative(v.Data)
				continue
			}
		}
		mem.Free(v.Data)
	}
	mem.Free(n.Keys)
	mem.Free(n.Values)
	mem.Free(ptr)
}
