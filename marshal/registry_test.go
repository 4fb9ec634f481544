package marshal

import (
	goerrors "errors"
	"reflect"
	"testing"

	apperr "github.com/meshforge/assimp-go/errors"
	"github.com/meshforge/assimp-go/mem"
)

type int64Custom struct{}

func (int64Custom) NativeSize(any) int { return 8 }

func (int64Custom) MarshalNative(v any) (uintptr, error) {
	addr := mem.Allocate(8)
	mem.Write(addr, v.(int64))
	return addr, nil
}

func (int64Custom) UnmarshalNative(ptr uintptr) (any, error) {
	return mem.Read[int64](ptr), nil
}

func (int64Custom) FreeNative(ptr uintptr) { mem.Free(ptr) }

func TestRegistryRoundTrip(t *testing.T) {
	defer ResetRegistry()
	Register(reflect.TypeOf(int64(0)), int64Custom{})

	c, err := For(int64(42))
	if err != nil {
		t.Fatal(err)
	}
	ptr, err := c.MarshalNative(int64(42))
	if err != nil {
		t.Fatal(err)
	}
	defer c.FreeNative(ptr)

	v, err := c.UnmarshalNative(ptr)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int64) != 42 {
		t.Fatalf("got %v", v)
	}
}

func TestRegistryUnknownType(t *testing.T) {
	defer ResetRegistry()

	_, err := For("unregistered")
	if err == nil {
		t.Fatal("expected error for unregistered type")
	}
	var e *apperr.Error
	if !goerrors.As(err, &e) || e.Kind != apperr.KindRegistration {
		t.Fatalf("wrong error: %v", err)
	}

	if _, err := For(nil); err == nil {
		t.Fatal("expected error for nil value")
	}
}

func TestRegisterPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Register(nil, nil)
}
