package libassimp

import (
	"testing"
	"unsafe"

	"github.com/meshforge/assimp-go/mem"
)

func nativeCString(t *testing.T, s string) uintptr {
	t.Helper()
	addr := mem.Allocate(len(s) + 1)
	mem.WriteArray(addr, []byte(s), 0, len(s))
	return addr
}

// fakeFormatDesc lays out an aiExportFormatDesc block: three C string
// pointers.
func fakeFormatDesc(t *testing.T, id, descr, ext string) uintptr {
	t.Helper()
	ptrSize := int(unsafe.Sizeof(uintptr(0)))
	desc := mem.Allocate(3 * ptrSize)
	mem.Write(desc, nativeCString(t, id))
	mem.Write(desc+uintptr(ptrSize), nativeCString(t, descr))
	mem.Write(desc+uintptr(2*ptrSize), nativeCString(t, ext))
	return desc
}

func freeFakeDesc(desc uintptr) {
	ptrSize := uintptr(unsafe.Sizeof(uintptr(0)))
	for i := uintptr(0); i < 3; i++ {
		mem.Free(mem.Read[uintptr](desc + i*ptrSize))
	}
	mem.Free(desc)
}

func TestExportFormatsReleasesDescriptors(t *testing.T) {
	before := mem.AllocationCount()

	descs := []uintptr{
		fakeFormatDesc(t, "obj", "Wavefront OBJ", "obj"),
		fakeFormatDesc(t, "glb2", "Binary glTF 2", "glb"),
	}
	released := make(map[uintptr]int)
	l := &Library{
		log:                  Logger(),
		getExportFormatCount: func() uintptr { return uintptr(len(descs)) },
		getExportFormatDesc:  func(i uintptr) uintptr { return descs[i] },
		releaseExportFormat: func(d uintptr) {
			released[d]++
			freeFakeDesc(d)
		},
	}

	got := l.ExportFormats()
	if len(got) != 2 {
		t.Fatalf("got %d formats", len(got))
	}
	if got[0].ID != "obj" || got[0].Description != "Wavefront OBJ" || got[0].FileExtension != "obj" {
		t.Errorf("format 0: %+v", got[0])
	}
	if got[1].ID != "glb2" || got[1].FileExtension != "glb" {
		t.Errorf("format 1: %+v", got[1])
	}

	for _, d := range descs {
		if released[d] != 1 {
			t.Errorf("descriptor %#x released %d times", d, released[d])
		}
	}
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}
