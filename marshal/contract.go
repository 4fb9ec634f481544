package marshal

import (
	"github.com/meshforge/assimp-go/mem"
)

// Marshaler converts an entity value into its native mirror struct N.
// addr is the address the struct will be written to; implementations that
// own child allocations (arrays, nested graphs) perform those allocations
// during ToNative and store raw addresses in the returned struct. The
// engine writes the returned value to addr afterwards.
type Marshaler[N any] interface {
	ToNative(addr uintptr) N
}

// Unmarshaler populates an entity from its native mirror struct. The
// native memory outlives the call only until the owner frees it, so
// implementations must copy everything they keep.
type Unmarshaler[N any] interface {
	FromNative(n *N)
}

// FreeFunc releases one native struct and everything it owns.
// freeContainer controls whether the struct's own block is released too;
// elements embedded in a contiguous array pass false because the array
// block is freed as a whole.
type FreeFunc func(ptr uintptr, freeContainer bool)

// ToNativePointer allocates a native struct for m and writes it.
// Returns the struct address, or 0 when m is nil.
func ToNativePointer[N any, M any, PM interface {
	*M
	Marshaler[N]
}](m *M) uintptr {
	if m == nil {
		return 0
	}
	addr := mem.Allocate(mem.SizeOf[N]())
	n := PM(m).ToNative(addr)
	mem.Write(addr, n)
	return addr
}

// FromNativePointer reads one native struct at ptr into a fresh entity.
// Returns nil when ptr is null.
func FromNativePointer[N any, M any, PM interface {
	*M
	Unmarshaler[N]
}](ptr uintptr) *M {
	if ptr == 0 {
		return nil
	}
	n := mem.Read[N](ptr)
	out := PM(new(M))
	out.FromNative(&n)
	return (*M)(out)
}
