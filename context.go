package assimp

import (
	"io/fs"
	"strings"

	"go.uber.org/zap"

	apperr "github.com/meshforge/assimp-go/errors"
	"github.com/meshforge/assimp-go/libassimp"
	"github.com/meshforge/assimp-go/scene"
)

// Context is the high-level entry point: it owns an opened native
// library and converts between files on disk and managed scenes.
type Context struct {
	lib *libassimp.Library
	log *zap.Logger
}

// NewContext opens the native library using its default names and wraps
// it. Close the context when done.
func NewContext() (*Context, error) {
	lib, err := libassimp.Open()
	if err != nil {
		return nil, err
	}
	return WrapLibrary(lib), nil
}

// NewContextWithLibrary opens the native library from an explicit path.
func NewContextWithLibrary(path string) (*Context, error) {
	lib, err := libassimp.Open(path)
	if err != nil {
		return nil, err
	}
	return WrapLibrary(lib), nil
}

// WrapLibrary builds a context around an already opened library. The
// context takes ownership and closes it.
func WrapLibrary(lib *libassimp.Library) *Context {
	return &Context{lib: lib, log: Logger()}
}

// Close releases the native library.
func (c *Context) Close() error {
	return c.lib.Close()
}

// Library exposes the underlying flat API for callers that need calls
// the facade does not cover.
func (c *Context) Library() *libassimp.Library {
	return c.lib
}

// ImportFile reads an asset from disk, applies the requested
// post-processing, and deep copies the result into a managed scene. The
// native copy is released before returning.
func (c *Context) ImportFile(path string, flags PostProcessSteps) (*scene.Scene, error) {
	ptr, err := c.lib.ImportFile(path, uint32(flags))
	if err != nil {
		return nil, err
	}
	defer c.lib.ReleaseImport(ptr)

	s, err := scene.FromNativeScene(ptr)
	if err != nil {
		return nil, err
	}
	c.log.Debug("imported scene",
		zap.String("path", path),
		zap.Int("meshes", len(s.Meshes)),
		zap.Int("materials", len(s.Materials)),
		zap.Int("animations", len(s.Animations)))
	return s, nil
}

// ImportFileFromMemory reads an asset from a byte buffer. hint is the
// file extension without the dot; pass it when the format cannot be
// sniffed from content alone.
func (c *Context) ImportFileFromMemory(data []byte, flags PostProcessSteps, hint string) (*scene.Scene, error) {
	ptr, err := c.lib.ImportFileFromMemory(data, uint32(flags), hint)
	if err != nil {
		return nil, err
	}
	defer c.lib.ReleaseImport(ptr)
	return scene.FromNativeScene(ptr)
}

// ImportFileFS reads an asset and its sidecar files, material libraries
// and referenced textures included, from fsys instead of the host file
// system.
func (c *Context) ImportFileFS(fsys fs.FS, path string, flags PostProcessSteps) (*scene.Scene, error) {
	fio := newFileIO(fsys)
	defer fio.release()

	ptr, err := c.lib.ImportFileEx(path, uint32(flags), fio.addr())
	if err != nil {
		return nil, err
	}
	defer c.lib.ReleaseImport(ptr)
	return scene.FromNativeScene(ptr)
}

// ExportScene marshals a managed scene into native memory and writes it
// to disk in the given format. The marshaled copy is freed before
// returning regardless of the outcome.
func (c *Context) ExportScene(s *scene.Scene, formatID, path string, preprocessing PostProcessSteps) error {
	if s == nil {
		return apperr.NilPointer(apperr.PhaseExport, "scene")
	}
	ptr := scene.ToNativeScene(s)
	defer scene.FreeNativeScene(ptr, true)
	return c.lib.ExportScene(ptr, formatID, path, uint32(preprocessing))
}

// IsExtensionSupported reports whether an importer exists for the file
// extension; the leading dot may be omitted.
func (c *Context) IsExtensionSupported(ext string) bool {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return c.lib.IsExtensionSupported(ext)
}

// Version reports the native library version.
func (c *Context) Version() (major, minor, patch uint32) {
	return c.lib.Version()
}

// ExportFormats lists the formats the native exporter can write.
func (c *Context) ExportFormats() []libassimp.ExportFormat {
	return c.lib.ExportFormats()
}
