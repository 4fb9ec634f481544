package assimp

import (
	"io/fs"
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// aiFileIO and aiFile mirror the native custom file IO tables. The proc
// fields hold C function pointers created from Go callbacks; UserData
// carries a pin handle, not an address.
type aiFileIO struct {
	OpenProc  native.Ptr
	CloseProc native.Ptr
	UserData  native.Ptr
}

type aiFile struct {
	ReadProc     native.Ptr
	WriteProc    native.Ptr
	TellProc     native.Ptr
	FileSizeProc native.Ptr
	SeekProc     native.Ptr
	FlushProc    native.Ptr
	UserData     native.Ptr
}

// aiOrigin values for the seek callback.
const (
	originSet = 0
	originCur = 1
	originEnd = 2
)

// virtualFile is one open read-only stream served from an fs.FS.
type virtualFile struct {
	data []byte
	pos  int
}

// fileIO owns one native aiFileIO table and the streams opened through
// it. The native importer may open several sidecar files per import.
type fileIO struct {
	fsys  fs.FS
	mu    sync.Mutex
	open  map[uintptr]uintptr // aiFile address -> pin handle
	self  uintptr
	table uintptr
}

var (
	cbOnce  sync.Once
	cbOpen  uintptr
	cbClose uintptr
	cbRead  uintptr
	cbWrite uintptr
	cbTell  uintptr
	cbSize  uintptr
	cbSeek  uintptr
	cbFlush uintptr
)

// initCallbacks builds the shared C-callable trampolines once. Callback
// slots are a finite resource, so every fileIO reuses the same set and
// dispatches through pin handles.
func initCallbacks() {
	cbOnce.Do(func() {
		cbOpen = purego.NewCallback(openCallback)
		cbClose = purego.NewCallback(closeCallback)
		cbRead = purego.NewCallback(readCallback)
		cbWrite = purego.NewCallback(writeCallback)
		cbTell = purego.NewCallback(tellCallback)
		cbSize = purego.NewCallback(sizeCallback)
		cbSeek = purego.NewCallback(seekCallback)
		cbFlush = purego.NewCallback(flushCallback)
	})
}

func newFileIO(fsys fs.FS) *fileIO {
	initCallbacks()
	f := &fileIO{fsys: fsys, open: make(map[uintptr]uintptr)}
	f.self = mem.Pin(f)
	f.table = mem.Allocate(mem.SizeOf[aiFileIO]())
	mem.Write(f.table, aiFileIO{
		OpenProc:  cbOpen,
		CloseProc: cbClose,
		UserData:  f.self,
	})
	return f
}

func (f *fileIO) addr() uintptr { return f.table }

// release frees the table, any stream the native side failed to close,
// and the pins backing them.
func (f *fileIO) release() {
	f.mu.Lock()
	for fileAddr, h := range f.open {
		mem.Unpin(h)
		mem.Free(fileAddr)
	}
	f.open = nil
	f.mu.Unlock()
	mem.Unpin(f.self)
	mem.Free(f.table)
}

func fileAt(filePtr uintptr) *virtualFile {
	if filePtr == 0 {
		return nil
	}
	n := mem.Read[aiFile](filePtr)
	vf, _ := mem.Pinned(n.UserData).(*virtualFile)
	return vf
}

func openCallback(ioPtr, pathPtr, modePtr uintptr) uintptr {
	if ioPtr == 0 {
		return 0
	}
	table := mem.Read[aiFileIO](ioPtr)
	owner, _ := mem.Pinned(table.UserData).(*fileIO)
	if owner == nil {
		return 0
	}
	if strings.ContainsAny(goString(modePtr), "wa+") {
		return 0 // read-only file system
	}

	path := strings.ReplaceAll(goString(pathPtr), "\\", "/")
	data, err := fs.ReadFile(owner.fsys, path)
	if err != nil {
		return 0
	}

	h := mem.Pin(&virtualFile{data: data})
	fileAddr := mem.Allocate(mem.SizeOf[aiFile]())
	mem.Write(fileAddr, aiFile{
		ReadProc:     cbRead,
		WriteProc:    cbWrite,
		TellProc:     cbTell,
		FileSizeProc: cbSize,
		SeekProc:     cbSeek,
		FlushProc:    cbFlush,
		UserData:     h,
	})

	owner.mu.Lock()
	if owner.open == nil {
		owner.mu.Unlock()
		mem.Unpin(h)
		mem.Free(fileAddr)
		return 0
	}
	owner.open[fileAddr] = h
	owner.mu.Unlock()
	return fileAddr
}

func closeCallback(ioPtr, filePtr uintptr) uintptr {
	if ioPtr == 0 || filePtr == 0 {
		return 0
	}
	table := mem.Read[aiFileIO](ioPtr)
	owner, _ := mem.Pinned(table.UserData).(*fileIO)
	n := mem.Read[aiFile](filePtr)
	mem.Unpin(n.UserData)
	mem.Free(filePtr)
	if owner != nil {
		owner.mu.Lock()
		delete(owner.open, filePtr)
		owner.mu.Unlock()
	}
	return 0
}

func readCallback(filePtr, bufPtr, size, count uintptr) uintptr {
	vf := fileAt(filePtr)
	if vf == nil || bufPtr == 0 || size == 0 {
		return 0
	}
	// Whole elements only; count is clamped before the multiply so the
	// byte total cannot wrap.
	remain := len(vf.data) - vf.pos
	if max := uintptr(remain) / size; count > max {
		count = max
	}
	if count == 0 {
		return 0
	}
	want := int(size * count)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(bufPtr)), want)
	n := copy(dst, vf.data[vf.pos:vf.pos+want])
	vf.pos += n
	return uintptr(n) / size
}

func writeCallback(filePtr, bufPtr, size, count uintptr) uintptr {
	return 0 // read-only file system
}

func tellCallback(filePtr uintptr) uintptr {
	vf := fileAt(filePtr)
	if vf == nil {
		return 0
	}
	return uintptr(vf.pos)
}

func sizeCallback(filePtr uintptr) uintptr {
	vf := fileAt(filePtr)
	if vf == nil {
		return 0
	}
	return uintptr(len(vf.data))
}

func seekCallback(filePtr, offset, origin uintptr) uintptr {
	const fail = ^uintptr(0) // aiReturn_FAILURE
	vf := fileAt(filePtr)
	if vf == nil {
		return fail
	}
	var pos int
	switch origin {
	case originSet:
		pos = int(offset)
	case originCur:
		pos = vf.pos + int(offset)
	case originEnd:
		pos = len(vf.data) + int(offset)
	default:
		return fail
	}
	if pos < 0 || pos > len(vf.data) {
		return fail
	}
	vf.pos = pos
	return 0
}

func flushCallback(filePtr uintptr) uintptr {
	return 0
}

// goString copies a NUL-terminated native string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(ptr + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
}
