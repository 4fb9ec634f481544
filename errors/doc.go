// Package errors provides structured error types for the binding.
//
// Errors carry a Phase (load, import, export, marshal, unmarshal) and a
// Kind (allocation, native, not_found, ...) so callers can match on error
// class with errors.Is rather than parsing messages:
//
//	[import] native: FBX parser error ...
//	[export] invalid_data at scene.meshes[2]: face with no indices
//
// The pure marshaling core does not return recoverable errors; allocation
// failure and layout mismatch are fatal by design. This package serves the
// boundary packages that talk to the native library.
package errors
