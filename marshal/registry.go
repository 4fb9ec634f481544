package marshal

import (
	"reflect"
	"sync"

	apperr "github.com/meshforge/assimp-go/errors"
)

// Custom converts values the generic engine has no mirror struct for,
// metadata payloads in particular. Implementations own the payload layout
// end to end: MarshalNative allocates, FreeNative releases.
type Custom interface {
	// NativeSize reports the byte size of the payload for v.
	NativeSize(v any) int
	// MarshalNative allocates and writes the native payload for v and
	// returns its address.
	MarshalNative(v any) (uintptr, error)
	// UnmarshalNative reads the payload at ptr back into a Go value.
	UnmarshalNative(ptr uintptr) (any, error)
	// FreeNative releases a payload written by MarshalNative.
	FreeNative(ptr uintptr)
}

var customs sync.Map // reflect.Type -> Custom

// Register binds a Custom marshaler to a payload type. Later
// registrations for the same type win; packages register their payload
// set from init.
func Register(t reflect.Type, c Custom) {
	if t == nil || c == nil {
		panic("marshal: Register with nil type or marshaler")
	}
	customs.Store(t, c)
}

// For resolves the marshaler for v's dynamic type.
func For(v any) (Custom, error) {
	if v == nil {
		return nil, apperr.Registration(apperr.PhaseMarshal, "no marshaler for nil value", nil)
	}
	return ForType(reflect.TypeOf(v))
}

// ForType resolves the marshaler registered for t.
func ForType(t reflect.Type) (Custom, error) {
	if c, ok := customs.Load(t); ok {
		return c.(Custom), nil
	}
	return nil, apperr.Registration(apperr.PhaseMarshal, "no marshaler registered for "+t.String(), nil)
}

// ResetRegistry drops all registrations. Test hook.
func ResetRegistry() {
	customs.Range(func(k, _ any) bool {
		customs.Delete(k)
		return true
	})
}
