// Package errbuf implements the bounded, append-only error code
// buffer used throughout the config core: once full, the newest
// error clobbers the last slot rather than displacing the oldest
// ones, so the most actionable (latest) diagnostic always survives.
//
// The fixed-capacity, no-reallocation shape follows bc/fountain's
// degree/part bookkeeping in the teacher repo, where collections are
// sized once and never grown.
package errbuf

import "aethercfg/errcode"

// Buffer is a fixed-capacity, sticky-top ring of error codes.
type Buffer struct {
	codes []errcode.Code
	cap   int
}

// New constructs a Buffer with the given capacity. Capacity must be
// at least 1.
func New(capacity int) *Buffer {
	if capacity < 1 {
		panic("errbuf: capacity must be at least 1")
	}
	return &Buffer{codes: make([]errcode.Code, 0, capacity), cap: capacity}
}

// Append adds a code to the buffer. If the buffer is full, the code
// overwrites the last (most recently appended) slot instead of being
// dropped, and earlier entries are left untouched.
func (b *Buffer) Append(c errcode.Code) {
	if len(b.codes) < b.cap {
		b.codes = append(b.codes, c)
		return
	}
	b.codes[b.cap-1] = c
}

// Any reports whether the buffer holds at least one code.
func (b *Buffer) Any() bool {
	return len(b.codes) > 0
}

// Len reports the number of codes currently held.
func (b *Buffer) Len() int {
	return len(b.codes)
}

// Codes returns the buffer's codes in append order. The returned
// slice must not be mutated by the caller.
func (b *Buffer) Codes() []errcode.Code {
	return b.codes
}

// Reset empties the buffer without releasing its backing storage.
func (b *Buffer) Reset() {
	b.codes = b.codes[:0]
}
