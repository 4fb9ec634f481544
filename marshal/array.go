package marshal

import (
	"unsafe"

	"github.com/meshforge/assimp-go/mem"
)

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// Blitter marks entity types whose Go layout is byte-identical to their
// native mirror. Array conversions for such types skip per-element
// conversion and copy memory in one pass.
type Blitter interface {
	Blittable() bool
}

func isBlittable[N any, M any, PM interface{ *M }]() bool {
	b, ok := any(PM(new(M))).(Blitter)
	return ok && b.Blittable() && mem.SizeOf[M]() == mem.SizeOf[N]()
}

// ToNativeArray writes items as one contiguous block of native structs
// and returns its address. An empty slice yields a null pointer; the two
// are interchangeable on the native side.
func ToNativeArray[N any, M any, PM interface {
	*M
	Marshaler[N]
}](items []M) uintptr {
	if len(items) == 0 {
		return 0
	}
	stride := mem.SizeOf[N]()
	base := mem.Allocate(stride * len(items))
	if isBlittable[N, M, PM]() {
		src := unsafe.Slice((*N)(unsafe.Pointer(unsafe.SliceData(items))), len(items))
		mem.WriteArray(base, src, 0, len(src))
		return base
	}
	for i := range items {
		addr := base + uintptr(i*stride)
		mem.Write(addr, PM(&items[i]).ToNative(addr))
	}
	return base
}

// FromNativeArray reads count contiguous native structs starting at ptr.
// A null pointer or non-positive count yields nil, mirroring the empty
// case of ToNativeArray.
func FromNativeArray[N any, M any, PM interface {
	*M
	Unmarshaler[N]
}](ptr uintptr, count int) []M {
	if ptr == 0 || count <= 0 {
		return nil
	}
	items := make([]M, count)
	if isBlittable[N, M, PM]() {
		dst := unsafe.Slice((*N)(unsafe.Pointer(unsafe.SliceData(items))), count)
		mem.ReadArray(ptr, dst, 0, count)
		return items
	}
	stride := mem.SizeOf[N]()
	for i := range items {
		n := mem.Read[N](ptr + uintptr(i*stride))
		PM(&items[i]).FromNative(&n)
	}
	return items
}

// ToNativeArrayOfPtrs allocates one struct block per element plus a
// pointer array referencing them, and returns the pointer array address.
// Nil elements become null slots. An empty slice yields a null pointer.
func ToNativeArrayOfPtrs[N any, M any, PM interface {
	*M
	Marshaler[N]
}](items []*M) uintptr {
	if len(items) == 0 {
		return 0
	}
	base := mem.Allocate(ptrSize * len(items))
	for i, it := range items {
		mem.Write(base+uintptr(i*ptrSize), ToNativePointer[N, M, PM](it))
	}
	return base
}

// FromNativeArrayOfPtrs reads count pointer slots starting at ptr and
// unmarshals the struct behind each. Null slots become nil elements.
func FromNativeArrayOfPtrs[N any, M any, PM interface {
	*M
	Unmarshaler[N]
}](ptr uintptr, count int) []*M {
	if ptr == 0 || count <= 0 {
		return nil
	}
	items := make([]*M, count)
	for i := range items {
		slot := mem.Read[uintptr](ptr + uintptr(i*ptrSize))
		items[i] = FromNativePointer[N, M, PM](slot)
	}
	return items
}

// ToBlittableArray copies a slice of fixed-layout values into one native
// block. This is the direct path for value types with no entity wrapper,
// vectors, colors, keyframes and the like.
func ToBlittableArray[T any](items []T) uintptr {
	if len(items) == 0 {
		return 0
	}
	base := mem.Allocate(mem.SizeOf[T]() * len(items))
	mem.WriteArray(base, items, 0, len(items))
	return base
}

// FromBlittableArray copies count fixed-layout values out of native
// memory.
func FromBlittableArray[T any](ptr uintptr, count int) []T {
	if ptr == 0 || count <= 0 {
		return nil
	}
	items := make([]T, count)
	mem.ReadArray(ptr, items, 0, count)
	return items
}
