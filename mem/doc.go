// Package mem implements the unmanaged allocator and raw struct I/O that
// back the marshaling engine.
//
// # Allocation
//
// Allocate returns blocks aligned to DefaultAlignment (16, the strictest
// alignment the native structs need for SIMD-friendly fields); the Go
// allocator guarantees no alignment for arbitrary sizes, so blocks are
// over-allocated and the original block address is hidden in the word
// immediately before the returned aligned address:
//
//	raw                    aligned
//	 │                        │
//	 ▼                        ▼
//	 ┌──────────┬────────────┬──────────────────────────┐
//	 │ slack    │ raw addr   │ caller bytes (size)      │
//	 └──────────┴────────────┴──────────────────────────┘
//	              ptr width
//
// Free reads that header word back and releases the original block.
// Backing storage is Go memory pinned in a process-wide table; the table
// entry is the block's lifetime. Freeing a null pointer is a no-op, and
// allocation failure is fatal, never an error return.
//
// # Struct I/O
//
// Read and Write copy fixed-layout values directly between Go values and
// raw addresses with no per-field conversion. They are only correct for
// blittable types: structs whose Go layout is byte-identical to the
// native struct they mirror.
//
// # Pinning
//
// Pin stores arbitrary Go values in a table keyed by opaque handles so
// callback user-data pointers handed to the native library stay valid for
// as long as the native side may call back.
//
// Every operation is a synchronous memory copy; the only locks guard the
// block table and the pin table.
package mem
