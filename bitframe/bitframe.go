// Package bitframe implements the bit-frame parser: validates a
// fixed-size byte buffer, then walks the schema extracting one u64
// per bit-mapped setting and storing it little-endian into that
// setting's buffer for MESSAGE-mode validation.
//
// Grounded on picobin/picobin.go's length-checked item-header reads
// and driver/otp/otp.go's row-indexed register reads — both validate
// a buffer bound before touching it, then iterate a fixed table.
package bitframe

import (
	"encoding/binary"

	"aethercfg/bitspan"
	"aethercfg/errbuf"
	"aethercfg/errcode"
	"aethercfg/schema"
)

// errBufCapacity bounds the parsing error buffer. The bit-frame
// parser can raise at most one error (pointer or size) before
// returning, so a small buffer is always enough.
const errBufCapacity = 4

// Parse validates data as a MESSAGE-mode bit-frame payload against
// sch. On a pointer or size error it returns immediately without
// touching any setting, per spec.md §4.4. On success every setting
// with bits.Width > 0 has SetValue called with 8 little-endian bytes
// holding the extracted value; width-0 (text-only) settings are left
// untouched.
func Parse(data []byte, sch *schema.Schema) *errbuf.Buffer {
	errs := errbuf.New(errBufCapacity)

	if data == nil {
		errs.Append(errcode.New(errcode.Parsing, errcode.InvalidMessagePointer, 0))
		return errs
	}
	if min := sch.MinFrameBytes(); len(data) < min {
		errs.Append(errcode.WithInt24(errcode.Parsing, errcode.InsufficientMessageSize, int32(len(data))))
		return errs
	}

	for _, s := range sch.Settings() {
		if s.Bits().Width == 0 {
			continue
		}
		v := bitspan.Extract(data, s.Bits())
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		s.SetValue(buf[:])
	}
	return errs
}
