package marshal

import (
	"github.com/meshforge/assimp-go/mem"
)

// FreeBlock releases a single flat allocation, a blittable array or a raw
// payload. Null is a no-op.
func FreeBlock(ptr uintptr) {
	mem.Free(ptr)
}

// FreeNativeArray walks a contiguous struct array, invoking free on each
// element in place with freeContainer=false so element cleanup releases
// only child allocations, then releases the array block itself.
func FreeNativeArray(ptr uintptr, count, stride int, free FreeFunc) {
	if ptr == 0 {
		return
	}
	if free != nil {
		for i := 0; i < count; i++ {
			free(ptr+uintptr(i*stride), false)
		}
	}
	mem.Free(ptr)
}

// FreeNativeArrayOfPtrs walks a pointer array, invoking free on each
// non-null slot with freeContainer=true so each element's own block is
// released, then releases the pointer array.
func FreeNativeArrayOfPtrs(ptr uintptr, count int, free FreeFunc) {
	if ptr == 0 {
		return
	}
	for i := 0; i < count; i++ {
		slot := mem.Read[uintptr](ptr + uintptr(i*ptrSize))
		if slot == 0 {
			continue
		}
		if free != nil {
			free(slot, true)
		} else {
			mem.Free(slot)
		}
	}
	mem.Free(ptr)
}
