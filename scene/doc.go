// Package scene holds the managed asset model and its conversions to and
// from the native structs in package native.
//
// Every entity follows the same contract: ToNative builds the mirror
// struct and allocates whatever that struct points at, FromNative deep
// copies out of native memory, and a matching FreeNativeX releases
// exactly what ToNative allocated. Ownership is strictly tree shaped; the
// one back edge, a node's parent pointer, is written during marshaling
// but never freed or followed through.
//
// The node graph converts recursively: marshaling a node allocates and
// writes all of its descendants, stamping each child's parent field with
// the address its parent will occupy. Unmarshaling rebuilds the Go parent
// references from the containment structure and ignores the native
// parent addresses entirely.
package scene
