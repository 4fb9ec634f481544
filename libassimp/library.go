package libassimp

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	apperr "github.com/meshforge/assimp-go/errors"
)

// aiReturn values from the flat C API.
const (
	aiReturnSuccess     int32 = 0
	aiReturnFailure     int32 = -1
	aiReturnOutOfMemory int32 = -3
)

// ExportFormat describes one format the native exporter can write.
type ExportFormat struct {
	ID            string
	Description   string
	FileExtension string
}

// Library is an opened Assimp shared library with its C entry points
// bound. All methods are safe for concurrent use; the native library
// serializes internally where it must.
type Library struct {
	handle uintptr
	log    *zap.Logger

	importFile           func(file string, flags uint32) uintptr
	importFileEx         func(file string, flags uint32, fileIO uintptr) uintptr
	importFileFromMemory func(buf unsafe.Pointer, length uint32, flags uint32, hint string) uintptr
	releaseImport        func(scene uintptr)
	applyPostProcessing  func(scene uintptr, flags uint32) uintptr
	exportScene          func(scene uintptr, formatID string, file string, preprocessing uint32) int32
	getErrorString       func() string
	isExtensionSupported func(ext string) int32
	getVersionMajor      func() uint32
	getVersionMinor      func() uint32
	getVersionPatch      func() uint32
	getExportFormatCount func() uintptr
	getExportFormatDesc  func(index uintptr) uintptr
	releaseExportFormat  func(desc uintptr)
}

// Open loads the Assimp shared library and binds its symbols. With no
// arguments the platform's default library names are tried in order;
// otherwise each given path is tried.
func Open(paths ...string) (*Library, error) {
	if len(paths) == 0 {
		paths = defaultLibraryNames()
	}
	if len(paths) == 0 {
		return nil, apperr.Unsupported(apperr.PhaseLoad, "no candidate library names for this platform")
	}

	var handle uintptr
	var lastErr error
	var opened string
	for _, p := range paths {
		h, err := openLibrary(p)
		if err == nil {
			handle, opened = h, p
			break
		}
		lastErr = err
	}
	if handle == 0 {
		return nil, apperr.Load("unable to open assimp shared library", lastErr)
	}

	l := &Library{handle: handle, log: Logger()}
	l.bind()
	major, minor, patch := l.Version()
	l.log.Info("assimp library loaded",
		zap.String("path", opened),
		zap.Uint32("major", major),
		zap.Uint32("minor", minor),
		zap.Uint32("patch", patch))
	return l, nil
}

func (l *Library) bind() {
	purego.RegisterLibFunc(&l.importFile, l.handle, "aiImportFile")
	purego.RegisterLibFunc(&l.importFileEx, l.handle, "aiImportFileEx")
	purego.RegisterLibFunc(&l.importFileFromMemory, l.handle, "aiImportFileFromMemory")
	purego.RegisterLibFunc(&l.releaseImport, l.handle, "aiReleaseImport")
	purego.RegisterLibFunc(&l.applyPostProcessing, l.handle, "aiApplyPostProcessing")
	purego.RegisterLibFunc(&l.exportScene, l.handle, "aiExportScene")
	purego.RegisterLibFunc(&l.getErrorString, l.handle, "aiGetErrorString")
	purego.RegisterLibFunc(&l.isExtensionSupported, l.handle, "aiIsExtensionSupported")
	purego.RegisterLibFunc(&l.getVersionMajor, l.handle, "aiGetVersionMajor")
	purego.RegisterLibFunc(&l.getVersionMinor, l.handle, "aiGetVersionMinor")
	purego.RegisterLibFunc(&l.getVersionPatch, l.handle, "aiGetVersionPatch")
	purego.RegisterLibFunc(&l.getExportFormatCount, l.handle, "aiGetExportFormatCount")
	purego.RegisterLibFunc(&l.getExportFormatDesc, l.handle, "aiGetExportFormatDescription")
	purego.RegisterLibFunc(&l.releaseExportFormat, l.handle, "aiReleaseExportFormatDescription")
}

// Close releases the library handle. Scene pointers obtained from this
// library are invalid afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}

// ImportFile reads an asset from disk and returns the native scene
// pointer. The scene is owned by the library; release it with
// ReleaseImport.
func (l *Library) ImportFile(path string, flags uint32) (uintptr, error) {
	scene := l.importFile(path, flags)
	if scene == 0 {
		return 0, apperr.Native(apperr.PhaseImport, l.ErrorString())
	}
	l.log.Debug("imported file", zap.String("path", path), zap.Uint32("flags", flags))
	return scene, nil
}

// ImportFileEx reads an asset from disk through a caller-supplied file
// IO table, an aiFileIO struct in native memory. A null table falls back
// to the library's own file handling.
func (l *Library) ImportFileEx(path string, flags uint32, fileIO uintptr) (uintptr, error) {
	scene := l.importFileEx(path, flags, fileIO)
	if scene == 0 {
		return 0, apperr.Native(apperr.PhaseImport, l.ErrorString())
	}
	return scene, nil
}

// ImportFileFromMemory reads an asset from a byte buffer. hint is the
// file extension without the dot, used to pick an importer when the
// content is ambiguous.
func (l *Library) ImportFileFromMemory(data []byte, flags uint32, hint string) (uintptr, error) {
	if len(data) == 0 {
		return 0, apperr.InvalidData(apperr.PhaseImport, nil, "empty input buffer")
	}
	scene := l.importFileFromMemory(unsafe.Pointer(&data[0]), uint32(len(data)), flags, hint)
	runtime.KeepAlive(data)
	if scene == 0 {
		return 0, apperr.Native(apperr.PhaseImport, l.ErrorString())
	}
	return scene, nil
}

// ReleaseImport frees a scene returned by the import or post-processing
// calls. Null is a no-op.
func (l *Library) ReleaseImport(scene uintptr) {
	if scene == 0 {
		return
	}
	l.releaseImport(scene)
}

// ApplyPostProcessing runs additional post-process steps on an imported
// scene. On failure the input scene has been released by the library and
// must not be touched again.
func (l *Library) ApplyPostProcessing(scene uintptr, flags uint32) (uintptr, error) {
	if scene == 0 {
		return 0, apperr.NilPointer(apperr.PhaseImport, "scene")
	}
	out := l.applyPostProcessing(scene, flags)
	if out == 0 {
		return 0, apperr.Native(apperr.PhaseImport, l.ErrorString())
	}
	return out, nil
}

// ExportScene writes a scene to disk in the given format. The scene may
// be either library-owned or marshaled from managed data.
func (l *Library) ExportScene(scene uintptr, formatID, path string, preprocessing uint32) error {
	if scene == 0 {
		return apperr.NilPointer(apperr.PhaseExport, "scene")
	}
	switch ret := l.exportScene(scene, formatID, path, preprocessing); ret {
	case aiReturnSuccess:
		l.log.Debug("exported scene", zap.String("format", formatID), zap.String("path", path))
		return nil
	case aiReturnOutOfMemory:
		return apperr.New(apperr.PhaseExport, apperr.KindAllocation).
			Detail("native exporter ran out of memory").Build()
	default:
		return apperr.Native(apperr.PhaseExport, l.ErrorString())
	}
}

// ErrorString returns the last error reported by the native library.
func (l *Library) ErrorString() string {
	return l.getErrorString()
}

// IsExtensionSupported reports whether an importer exists for the given
// file extension, dot included, for example ".fbx".
func (l *Library) IsExtensionSupported(ext string) bool {
	return l.isExtensionSupported(ext) != 0
}

// Version reports the native library version.
func (l *Library) Version() (major, minor, patch uint32) {
	return l.getVersionMajor(), l.getVersionMinor(), l.getVersionPatch()
}

// ExportFormats lists the formats the native exporter can write.
func (l *Library) ExportFormats() []ExportFormat {
	count := int(l.getExportFormatCount())
	out := make([]ExportFormat, 0, count)
	for i := 0; i < count; i++ {
		desc := l.getExportFormatDesc(uintptr(i))
		if desc == 0 {
			continue
		}
		// struct aiExportFormatDesc holds three C string pointers.
		id := *(*uintptr)(unsafe.Pointer(desc))
		descr := *(*uintptr)(unsafe.Pointer(desc + unsafe.Sizeof(uintptr(0))))
		ext := *(*uintptr)(unsafe.Pointer(desc + 2*unsafe.Sizeof(uintptr(0))))
		out = append(out, ExportFormat{
			ID:            cString(id),
			Description:   cString(descr),
			FileExtension: cString(ext),
		})
		// Each descriptor is library-owned and must go back through
		// its own release call once copied.
		l.releaseExportFormat(desc)
	}
	return out
}

// cString copies a NUL-terminated native string.
func cString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(ptr + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
}
