// Package marshal is the generic bridge between Go entity values and
// native struct memory.
//
// Entity types opt in by implementing the Marshaler/Unmarshaler pair for
// their native mirror type, and the engine handles the four array shapes
// the native ABI uses:
//
//	contiguous values        N[0] N[1] N[2] ...          one block
//	array of pointers        P[0] P[1] P[2] -> N         block of slots,
//	                                                     one block per element
//
// in both directions. Blittable element types (no native pointers inside)
// take a bulk-copy fast path; everything else goes element by element
// through the entity's own conversion.
//
// Native output is always allocated through package mem, so every block
// produced here is released through the matching Free helpers and nothing
// else.
package marshal
