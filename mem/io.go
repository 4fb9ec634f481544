package mem

import (
	"reflect"
	"unsafe"
)

// Read copies one T out of native memory. T must be a fixed-layout value
// type whose Go representation matches the native struct byte for byte.
func Read[T any](ptr uintptr) T {
	return *(*T)(unsafe.Pointer(ptr))
}

// Write copies v into native memory at ptr.
func Write[T any](ptr uintptr, v T) {
	*(*T)(unsafe.Pointer(ptr)) = v
}

// ReadArray copies count elements from the native array at ptr into
// dst[start:]. A null pointer or non-positive count copies nothing.
func ReadArray[T any](ptr uintptr, dst []T, start, count int) {
	if ptr == 0 || count <= 0 {
		return
	}
	src := unsafe.Slice((*T)(unsafe.Pointer(ptr)), count)
	copy(dst[start:start+count], src)
}

// WriteArray copies count elements of src[start:] into the native array at
// ptr. A null pointer or non-positive count copies nothing.
func WriteArray[T any](ptr uintptr, src []T, start, count int) {
	if ptr == 0 || count <= 0 {
		return
	}
	dst := unsafe.Slice((*T)(unsafe.Pointer(ptr)), count)
	copy(dst, src[start:start+count])
}

// SizeOf reports the size of T in bytes, which for blittable mirrors is
// also the native struct size and flat-array stride.
func SizeOf[T any]() int {
	var zero T
	return int(reflect.TypeOf(&zero).Elem().Size())
}
