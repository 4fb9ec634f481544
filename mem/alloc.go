package mem

import (
	"sync"
	"unsafe"
)

// DefaultAlignment is applied by Allocate. It matches the strictest
// alignment any native struct in the pinned ABI requires.
const DefaultAlignment = 16

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

var (
	blockMu sync.Mutex
	blocks  = make(map[uintptr][]byte)
)

// Allocate returns the address of a zeroed block of at least size bytes,
// aligned to DefaultAlignment. A size of zero or less yields a null
// pointer, the valid empty case.
func Allocate(size int) uintptr {
	return AllocateAligned(size, DefaultAlignment)
}

// AllocateAligned returns the address of a zeroed block of at least size
// bytes aligned to align, which must be a power of two. The raw block
// address is stored in the word immediately before the returned address so
// Free can recover it.
func AllocateAligned(size, align int) uintptr {
	if size <= 0 {
		return 0
	}
	if align <= 0 || align&(align-1) != 0 {
		panic("mem: alignment must be a power of two")
	}

	// Length rounded to a pointer-size multiple so the backing slice itself
	// is pointer-aligned and the header word write is aligned.
	total := alignUpInt(size+align-1+ptrSize, ptrSize)
	buf := make([]byte, total)
	raw := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	aligned := alignUp(raw+uintptr(ptrSize), uintptr(align))
	*(*uintptr)(unsafe.Pointer(aligned - uintptr(ptrSize))) = raw

	// The table entry is what keeps the backing block reachable; deleting
	// it in Free is what releases the memory.
	blockMu.Lock()
	blocks[raw] = buf
	blockMu.Unlock()
	return aligned
}

// Free releases a block previously returned by Allocate or
// AllocateAligned. Freeing a null pointer is a no-op. Double-free and
// freeing foreign addresses are not defended against.
func Free(ptr uintptr) {
	if ptr == 0 {
		return
	}
	raw := *(*uintptr)(unsafe.Pointer(ptr - uintptr(ptrSize)))
	blockMu.Lock()
	delete(blocks, raw)
	blockMu.Unlock()
}

// Clear zeroes size bytes starting at ptr.
func Clear(ptr uintptr, size int) {
	if ptr == 0 || size <= 0 {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size)
	clear(b)
}

// IsAligned reports whether ptr is aligned to align.
func IsAligned(ptr uintptr, align int) bool {
	if align <= 0 || align&(align-1) != 0 {
		return false
	}
	return ptr&uintptr(align-1) == 0
}

// AllocationCount returns the number of live blocks. Intended for leak
// accounting in tests and shutdown checks.
func AllocationCount() int {
	blockMu.Lock()
	defer blockMu.Unlock()
	return len(blocks)
}

func alignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}

func alignUpInt(v, align int) int {
	return (v + align - 1) &^ (align - 1)
}
