package native

// MaxStringLength is the AiString buffer capacity (MAXLEN in the C
// headers), including the terminator byte the C side expects.
const MaxStringLength = 1024

// AiString mirrors aiString: a length-prefixed UTF-8 byte buffer of fixed
// capacity. Length counts bytes, not runes. The struct is blittable; no
// heap allocation is involved in marshaling it.
type AiString struct {
	Length uint32
	Data   [MaxStringLength]byte
}

// NewAiString builds an AiString from s, truncating to the buffer
// capacity minus the terminator.
func NewAiString(s string) AiString {
	var a AiString
	a.Set(s)
	return a
}

// Set replaces the string content, truncating to MaxStringLength-1 bytes.
func (a *AiString) Set(s string) {
	n := len(s)
	if n > MaxStringLength-1 {
		n = MaxStringLength - 1
	}
	a.Length = uint32(n)
	copy(a.Data[:n], s)
	// Terminate and wipe the tail so stale bytes never leak across reuse.
	for i := n; i < MaxStringLength; i++ {
		a.Data[i] = 0
	}
}

// String returns the Go string value.
func (a *AiString) String() string {
	n := a.Length
	if n > MaxStringLength {
		n = MaxStringLength
	}
	return string(a.Data[:n])
}
