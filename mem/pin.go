package mem

import "sync"

// The pin table holds Go values the native library must be able to refer
// back to through void* user-data parameters: open streams, callback
// closures, function-pointer table owners. Handles are opaque non-zero
// integers, never real addresses.

var (
	pinMu   sync.Mutex
	pinned  = make(map[uintptr]any)
	pinNext uintptr
)

// Pin stores v in the process-wide pin table and returns its handle.
func Pin(v any) uintptr {
	pinMu.Lock()
	defer pinMu.Unlock()
	pinNext++
	h := pinNext
	pinned[h] = v
	return h
}

// Pinned returns the value for a handle produced by Pin, or nil for an
// unknown handle.
func Pinned(h uintptr) any {
	pinMu.Lock()
	defer pinMu.Unlock()
	return pinned[h]
}

// Unpin removes a handle from the table. Unknown handles are a no-op.
func Unpin(h uintptr) {
	pinMu.Lock()
	defer pinMu.Unlock()
	delete(pinned, h)
}

// PinnedCount returns the number of live pins.
func PinnedCount() int {
	pinMu.Lock()
	defer pinMu.Unlock()
	return len(pinned)
}

// ResetPins clears the pin table. Intended for explicit teardown at
// process shutdown in long-running hosts; outstanding native callbacks
// must be quiesced first.
func ResetPins() {
	pinMu.Lock()
	defer pinMu.Unlock()
	pinned = make(map[uintptr]any)
}
