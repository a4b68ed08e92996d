// Package bitspan implements fixed-width bit extraction from a
// big-endian bit-packed byte buffer, as used by the bit-frame wire
// format (bit 0 is the most significant bit of byte 0).
package bitspan

import "fmt"

// Span identifies a contiguous run of bits in a byte buffer: Pos bits
// from the start, Width bits wide. A Width of 0 means "no bit
// mapping" — the setting the span belongs to is text-only.
type Span struct {
	Pos   int
	Width int
}

// None is the sentinel span for settings with no bit-frame mapping.
var None = Span{}

// Overlaps reports whether two non-zero-width spans share any bit.
func (s Span) Overlaps(o Span) bool {
	if s.Width == 0 || o.Width == 0 {
		return false
	}
	return s.Pos < o.Pos+o.Width && o.Pos < s.Pos+s.Width
}

// End returns the exclusive bit offset one past the span.
func (s Span) End() int {
	return s.Pos + s.Width
}

// ByteLen returns the minimum buffer length in bytes required to hold
// the span.
func (s Span) ByteLen() int {
	return (s.End() + 7) / 8
}

// Extract reads the Width bits at Pos from src, interpreting src as a
// big-endian bit stream, and returns them zero-extended in a uint64.
//
// Extract panics if Width is 0 or greater than 64, or if src is too
// short to hold the span; callers (bitframe.Parse) validate the
// buffer length up front so this never happens on a well-formed frame.
func Extract(src []byte, s Span) uint64 {
	if s.Width <= 0 || s.Width > 64 {
		panic(fmt.Sprintf("bitspan: invalid width %d", s.Width))
	}
	if need := s.ByteLen(); len(src) < need {
		panic(fmt.Sprintf("bitspan: buffer too short: need %d bytes, have %d", need, len(src)))
	}

	var acc uint64
	remaining := s.Width
	bitPos := s.Pos
	for remaining > 0 {
		byteIdx := bitPos / 8
		bitOff := bitPos % 8
		avail := 8 - bitOff
		take := avail
		if take > remaining {
			take = remaining
		}
		b := src[byteIdx]
		// Shift the byte so the wanted bits are at the low end, then mask.
		shift := avail - take
		chunk := (b >> shift) & (1<<take - 1)
		acc = acc<<take | uint64(chunk)
		remaining -= take
		bitPos += take
	}
	return acc
}

// PutUint64 writes the low Width bits of v into dst at Pos, using the
// same big-endian bit-stream convention as Extract. It is the inverse
// operation, used by tests to build fixture frames and to check the
// Extract round trip.
func PutUint64(dst []byte, s Span, v uint64) {
	if s.Width <= 0 || s.Width > 64 {
		panic(fmt.Sprintf("bitspan: invalid width %d", s.Width))
	}
	if need := s.ByteLen(); len(dst) < need {
		panic(fmt.Sprintf("bitspan: buffer too short: need %d bytes, have %d", need, len(dst)))
	}
	v &= mask(s.Width)

	remaining := s.Width
	bitPos := s.Pos
	for remaining > 0 {
		byteIdx := bitPos / 8
		bitOff := bitPos % 8
		avail := 8 - bitOff
		take := avail
		if take > remaining {
			take = remaining
		}
		shift := avail - take
		// Extract the `take` highest bits still pending in v.
		chunkShift := remaining - take
		chunk := byte((v >> chunkShift) & (1<<take - 1))
		clearMask := byte(1<<take-1) << shift
		dst[byteIdx] = dst[byteIdx]&^clearMask | chunk<<shift
		remaining -= take
		bitPos += take
	}
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}
