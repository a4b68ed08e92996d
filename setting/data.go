// Package setting implements the schema entry type (id, tag path,
// bit-span, validator, applier) that §3/§4.5/§4.6 of the config
// core describe, plus the sum type of admissible validated values.
//
// The typed-decode-then-dispatch shape follows bc/urtypes.Parse in
// the teacher repo: a validator produces one of a closed set of
// payload shapes, and the consumer (here, an Applier) must agree on
// which one it's getting.
package setting

import "fmt"

// Kind identifies which variant a Data value holds.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindI8:
		return "i8"
	case KindU8:
		return "u8"
	case KindI16:
		return "i16"
	case KindU16:
		return "u16"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	default:
		return "invalid"
	}
}

// Data is a tagged value produced by a Validator and consumed by an
// Applier. The admissible variants are {string, bool, i8, u8, i16,
// u16, i32, u32}; the variant tag is fixed by the schema entry that
// produced it, so producer and consumer always agree.
type Data struct {
	kind Kind
	i    int64
	s    string
}

func StringData(s string) Data { return Data{kind: KindString, s: s} }
func BoolData(b bool) Data {
	var i int64
	if b {
		i = 1
	}
	return Data{kind: KindBool, i: i}
}
func I8Data(v int8) Data   { return Data{kind: KindI8, i: int64(v)} }
func U8Data(v uint8) Data  { return Data{kind: KindU8, i: int64(v)} }
func I16Data(v int16) Data { return Data{kind: KindI16, i: int64(v)} }
func U16Data(v uint16) Data { return Data{kind: KindU16, i: int64(v)} }
func I32Data(v int32) Data { return Data{kind: KindI32, i: int64(v)} }
func U32Data(v uint32) Data { return Data{kind: KindU32, i: int64(v)} }

// Kind reports which variant d holds.
func (d Data) Kind() Kind { return d.kind }

func (d Data) mustBe(k Kind) {
	if d.kind != k {
		panic(fmt.Sprintf("setting: Data holds %s, not %s", d.kind, k))
	}
}

func (d Data) String() string { d.mustBe(KindString); return d.s }
func (d Data) Bool() bool     { d.mustBe(KindBool); return d.i != 0 }
func (d Data) I8() int8       { d.mustBe(KindI8); return int8(d.i) }
func (d Data) U8() uint8      { d.mustBe(KindU8); return uint8(d.i) }
func (d Data) I16() int16     { d.mustBe(KindI16); return int16(d.i) }
func (d Data) U16() uint16    { d.mustBe(KindU16); return uint16(d.i) }
func (d Data) I32() int32     { d.mustBe(KindI32); return int32(d.i) }
func (d Data) U32() uint32    { d.mustBe(KindU32); return uint32(d.i) }
