package mem

import (
	"math/rand"
	"testing"
	"unsafe"
)

func TestAllocateAlignment(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8, 16, 32} {
		for _, size := range []int{1, 3, 7, 16, 100, 4096} {
			ptr := AllocateAligned(size, align)
			if ptr == 0 {
				t.Fatalf("AllocateAligned(%d, %d) returned null", size, align)
			}
			if ptr%uintptr(align) != 0 {
				t.Errorf("AllocateAligned(%d, %d) = %#x, not %d-aligned", size, align, ptr, align)
			}
			Free(ptr)
		}
	}
}

func TestAllocateZeroed(t *testing.T) {
	ptr := Allocate(64)
	defer Free(ptr)
	b := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), 64)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want zero", i, v)
		}
	}
}

func TestAllocateEmpty(t *testing.T) {
	if ptr := Allocate(0); ptr != 0 {
		t.Errorf("Allocate(0) = %#x, want null", ptr)
	}
	if ptr := Allocate(-4); ptr != 0 {
		t.Errorf("Allocate(-4) = %#x, want null", ptr)
	}
}

func TestAllocateBadAlignment(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-power-of-two alignment")
		}
	}()
	AllocateAligned(16, 3)
}

func TestFreeNull(t *testing.T) {
	Free(0) // must not panic
}

// Allocates many blocks with random sizes and alignments, fills each with a
// distinct guard pattern, and verifies no allocation tramples another's
// bytes or header before freeing everything.
func TestGuardPatternsAndLeaks(t *testing.T) {
	baseline := AllocationCount()
	rng := rand.New(rand.NewSource(1))

	const n = 200
	aligns := []int{1, 2, 4, 8, 16, 32}
	ptrs := make([]uintptr, n)
	sizes := make([]int, n)

	for i := 0; i < n; i++ {
		sizes[i] = 1 + rng.Intn(256)
		ptrs[i] = AllocateAligned(sizes[i], aligns[rng.Intn(len(aligns))])
		b := unsafe.Slice((*byte)(unsafe.Pointer(ptrs[i])), sizes[i])
		for j := range b {
			b[j] = byte(i)
		}
	}

	if got := AllocationCount() - baseline; got != n {
		t.Fatalf("AllocationCount delta = %d, want %d", got, n)
	}

	for i := 0; i < n; i++ {
		b := unsafe.Slice((*byte)(unsafe.Pointer(ptrs[i])), sizes[i])
		for j, v := range b {
			if v != byte(i) {
				t.Fatalf("block %d byte %d = %#x, want %#x", i, j, v, byte(i))
			}
		}
	}

	for _, p := range ptrs {
		Free(p)
	}
	if got := AllocationCount(); got != baseline {
		t.Errorf("AllocationCount = %d after freeing all, want %d", got, baseline)
	}
}

func TestClear(t *testing.T) {
	ptr := Allocate(32)
	defer Free(ptr)
	b := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), 32)
	for i := range b {
		b[i] = 0xAB
	}
	Clear(ptr, 32)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %#x after Clear", i, v)
		}
	}
	Clear(0, 32) // null is a no-op
}

func TestIsAligned(t *testing.T) {
	tests := []struct {
		ptr   uintptr
		align int
		want  bool
	}{
		{0x1000, 16, true},
		{0x1008, 16, false},
		{0x1008, 8, true},
		{0x1001, 1, true},
		{0x1000, 3, false}, // not a power of two
		{0x1000, 0, false},
	}
	for _, tt := range tests {
		if got := IsAligned(tt.ptr, tt.align); got != tt.want {
			t.Errorf("IsAligned(%#x, %d) = %v, want %v", tt.ptr, tt.align, got, tt.want)
		}
	}
}
