// Package libassimp loads the native Assimp shared library at runtime
// and exposes its flat C API.
//
// Scene pointers returned by the import calls are owned by the native
// library and must be handed back to ReleaseImport; they are never freed
// through the managed allocator. Conversely, scene graphs written by the
// managed marshaler are never passed to ReleaseImport.
//
// The binding resolves symbols with purego, so no C toolchain or headers
// are needed at build time. Only platforms with dlopen support can open
// the library; elsewhere Open fails with an unsupported error.
package libassimp
