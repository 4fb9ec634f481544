package marshal

import (
	"bytes"
	"testing"

	"github.com/meshforge/assimp-go/mem"
)

// record exercises the slow path: it owns a child allocation, so its
// native form carries a raw pointer.
type record struct {
	Value uint32
	Blob  []byte
}

type nativeRecord struct {
	Value      uint32
	Payload    uintptr
	PayloadLen uint32
}

func (r *record) ToNative(addr uintptr) nativeRecord {
	return nativeRecord{
		Value:      r.Value,
		Payload:    ToBlittableArray(r.Blob),
		PayloadLen: uint32(len(r.Blob)),
	}
}

func (r *record) FromNative(n *nativeRecord) {
	r.Value = n.Value
	r.Blob = FromBlittableArray[byte](n.Payload, int(n.PayloadLen))
}

func freeRecord(ptr uintptr, freeContainer bool) {
	n := mem.Read[nativeRecord](ptr)
	mem.Free(n.Payload)
	if freeContainer {
		mem.Free(ptr)
	}
}

// blip exercises the fast path: identical layout to its mirror and no
// owned allocations.
type blip struct{ X, Y float32 }

type nativeBlip struct{ X, Y float32 }

func (b *blip) ToNative(addr uintptr) nativeBlip { return nativeBlip(*b) }
func (b *blip) FromNative(n *nativeBlip)         { *b = blip(*n) }
func (b *blip) Blittable() bool                  { return true }

func TestPointerRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	r := &record{Value: 7, Blob: []byte("payload")}
	ptr := ToNativePointer[nativeRecord](r)
	if ptr == 0 {
		t.Fatal("got null pointer for non-nil value")
	}

	got := FromNativePointer[nativeRecord, record](ptr)
	if got.Value != 7 || !bytes.Equal(got.Blob, r.Blob) {
		t.Fatalf("round trip: %+v", got)
	}

	freeRecord(ptr, true)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

func TestPointerNilSymmetry(t *testing.T) {
	if ptr := ToNativePointer[nativeRecord, record](nil); ptr != 0 {
		t.Errorf("nil value marshaled to %#x", ptr)
	}
	if got := FromNativePointer[nativeRecord, record](0); got != nil {
		t.Errorf("null pointer unmarshaled to %+v", got)
	}
}

func TestContiguousArrayRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	items := []record{
		{Value: 1, Blob: []byte("a")},
		{Value: 2, Blob: nil}, // empty child is a null payload
		{Value: 3, Blob: []byte("ccc")},
	}
	base := ToNativeArray[nativeRecord](items)

	// Elements must be laid out at the native stride.
	stride := mem.SizeOf[nativeRecord]()
	for i := range items {
		n := mem.Read[nativeRecord](base + uintptr(i*stride))
		if n.Value != items[i].Value {
			t.Errorf("element %d: Value = %d", i, n.Value)
		}
	}
	if n := mem.Read[nativeRecord](base + uintptr(stride)); n.Payload != 0 {
		t.Error("empty blob did not marshal to null payload")
	}

	got := FromNativeArray[nativeRecord, record](base, len(items))
	for i := range items {
		if got[i].Value != items[i].Value || !bytes.Equal(got[i].Blob, items[i].Blob) {
			t.Errorf("element %d: %+v", i, got[i])
		}
	}

	FreeNativeArray(base, len(items), stride, freeRecord)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

func TestEmptyArraySymmetry(t *testing.T) {
	if base := ToNativeArray[nativeRecord, record](nil); base != 0 {
		t.Errorf("empty slice marshaled to %#x", base)
	}
	if got := FromNativeArray[nativeRecord, record](0, 0); got != nil {
		t.Errorf("null array unmarshaled to %v", got)
	}
	if base := ToNativeArrayOfPtrs[nativeRecord, record](nil); base != 0 {
		t.Errorf("empty ptr slice marshaled to %#x", base)
	}
	if got := FromNativeArrayOfPtrs[nativeRecord, record](0, 0); got != nil {
		t.Errorf("null ptr array unmarshaled to %v", got)
	}
}

func TestArrayOfPtrsRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	items := []*record{
		{Value: 10, Blob: []byte("x")},
		nil,
		{Value: 30, Blob: []byte("zzz")},
	}
	base := ToNativeArrayOfPtrs[nativeRecord](items)

	if slot := mem.Read[uintptr](base + uintptr(ptrSize)); slot != 0 {
		t.Error("nil element did not marshal to null slot")
	}

	got := FromNativeArrayOfPtrs[nativeRecord, record](base, len(items))
	if got[1] != nil {
		t.Error("null slot did not unmarshal to nil")
	}
	if got[0].Value != 10 || got[2].Value != 30 || !bytes.Equal(got[2].Blob, []byte("zzz")) {
		t.Errorf("round trip: %+v %+v", got[0], got[2])
	}

	FreeNativeArrayOfPtrs(base, len(items), freeRecord)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

// span is blittable and wider than a pointer slot, so the two array
// shapes lay it out at different strides.
type span struct{ Lo, Hi uint64 }

type nativeSpan struct{ Lo, Hi uint64 }

func (s *span) ToNative(addr uintptr) nativeSpan { return nativeSpan(*s) }
func (s *span) FromNative(n *nativeSpan)         { *s = span(*n) }
func (s *span) Blittable() bool                  { return true }

func TestWrongStrideDecodesGarbage(t *testing.T) {
	before := mem.AllocationCount()

	items := []*span{
		{Lo: 0x1111, Hi: 0x2222},
		{Lo: 0x3333, Hi: 0x4444},
		{Lo: 0x5555, Hi: 0x6666},
		{Lo: 0x7777, Hi: 0x8888},
	}
	base := ToNativeArrayOfPtrs[nativeSpan](items)

	// The block holds len(items) pointer slots. Decoding it as a flat
	// struct array misreads slot addresses as element data.
	count := len(items) * ptrSize / mem.SizeOf[nativeSpan]()
	got := FromNativeArray[nativeSpan, span](base, count)
	for i, g := range got {
		if g == *items[i] {
			t.Errorf("element %d decoded intact through the wrong stride", i)
		}
	}

	// The same block read at the pointer shape is lossless.
	back := FromNativeArrayOfPtrs[nativeSpan, span](base, len(items))
	for i := range items {
		if *back[i] != *items[i] {
			t.Errorf("element %d: %+v", i, back[i])
		}
	}

	FreeNativeArrayOfPtrs(base, len(items), nil)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

func TestBlittableFastPath(t *testing.T) {
	before := mem.AllocationCount()

	items := []blip{{1, 2}, {3, 4}, {5, 6}}
	base := ToNativeArray[nativeBlip](items)
	if n := mem.AllocationCount(); n != before+1 {
		t.Fatalf("blittable array used %d blocks, want 1", n-before)
	}

	// Raw native reads must see the same bytes the entities held.
	raw := FromBlittableArray[nativeBlip](base, len(items))
	for i, n := range raw {
		if n != (nativeBlip{items[i].X, items[i].Y}) {
			t.Errorf("element %d: %+v", i, n)
		}
	}

	got := FromNativeArray[nativeBlip, blip](base, len(items))
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("round trip element %d: %+v", i, got[i])
		}
	}

	FreeNativeArray(base, len(items), mem.SizeOf[nativeBlip](), nil)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

func TestBlittableArrayHelpers(t *testing.T) {
	vals := []float64{1.5, -2.25, 3.125}
	ptr := ToBlittableArray(vals)
	defer mem.Free(ptr)

	got := FromBlittableArray[float64](ptr, len(vals))
	for i := range vals {
		if got[i] != vals[i] {
			t.Errorf("element %d: %v", i, got[i])
		}
	}
}
