// Package native declares bit-exact Go mirrors of the Assimp C structs.
//
// Field order, width, and alignment of every struct here are dictated by
// the native library's ABI for the pinned generation (Assimp 5.3, 64-bit
// targets) and must not be rearranged; a mismatch silently corrupts
// memory rather than erroring. Pointer-typed C fields are mirrored as Ptr
// so struct offsets match the C layout.
//
// There is no marshaling logic in this package. Entity conversion lives
// in package scene; this package only owns the layouts, the AiString
// codec, and float32 linear algebra for the value types.
package native
