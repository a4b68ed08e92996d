package setting

import (
	"encoding/binary"
	"strconv"

	"aethercfg/errcode"
)

// Mode selects how a Validator interprets a raw buffer: FILE mode
// parses ASCII text (from the tag-tree payload), MESSAGE mode
// reinterprets raw bytes (from the bit-frame payload).
type Mode int

const (
	FileMode Mode = iota
	MessageMode
)

// ValidationError wraps a validation-category errcode.Kind, returned
// by a Validator or by Setting.Validate.
type ValidationError struct {
	Kind errcode.Kind
}

func (e *ValidationError) Error() string {
	return errcode.New(errcode.Validation, e.Kind, 0).Error()
}

func valErr(k errcode.Kind) error { return &ValidationError{Kind: k} }

// Validator maps a setting's raw buffer to a typed Data value, or
// reports a validation error. It never sees an unset (empty) buffer;
// Setting.Validate reports SETTING_UNSET itself before ever calling
// the bound validator.
type Validator func(buf []byte, mode Mode) (Data, error)

// signed is the set of admissible signed integer setting types.
type signed interface{ ~int8 | ~int16 | ~int32 }

// unsigned is the set of admissible unsigned integer setting types.
type unsigned interface{ ~uint8 | ~uint16 | ~uint32 }

// RangeSigned builds a range validator over a signed integer type: in
// FILE mode the buffer is parsed as an ASCII decimal, in MESSAGE mode
// the first sizeof(T) buffer bytes are reinterpreted as a
// little-endian T, then the result is range-checked against
// [min, max].
func RangeSigned[T signed](min, max T, wrap func(T) Data) Validator {
	size := sizeOf[T]()
	return func(buf []byte, mode Mode) (Data, error) {
		var x int64
		switch mode {
		case FileMode:
			s := string(buf)
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
					if s != "" && s[0] == '-' {
						return Data{}, valErr(errcode.BelowTypeRange)
					}
					return Data{}, valErr(errcode.AboveTypeRange)
				}
				return Data{}, valErr(errcode.OutOfTypeRange)
			}
			x = v
		case MessageMode:
			x = signExtend(leUint(buf, size), size)
		}
		lo, hi := typeRange(size, true)
		if x < lo {
			return Data{}, valErr(errcode.BelowTypeRange)
		}
		if x > hi {
			return Data{}, valErr(errcode.AboveTypeRange)
		}
		if x < int64(min) {
			return Data{}, valErr(errcode.BelowMinThreshold)
		}
		if x > int64(max) {
			return Data{}, valErr(errcode.AboveMaxThreshold)
		}
		return wrap(T(x)), nil
	}
}

// RangeUnsigned builds a range validator over an unsigned integer
// type, with the same FILE/MESSAGE dispatch as RangeSigned.
func RangeUnsigned[T unsigned](min, max T, wrap func(T) Data) Validator {
	size := sizeOf[T]()
	return func(buf []byte, mode Mode) (Data, error) {
		var x uint64
		switch mode {
		case FileMode:
			s := string(buf)
			if len(s) > 0 && s[0] == '-' {
				return Data{}, valErr(errcode.NegativeValue)
			}
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
					return Data{}, valErr(errcode.AboveTypeRange)
				}
				return Data{}, valErr(errcode.OutOfTypeRange)
			}
			x = v
		case MessageMode:
			x = leUint(buf, size)
		}
		_, hi := typeRange(size, false)
		if x > uint64(hi) {
			return Data{}, valErr(errcode.AboveTypeRange)
		}
		if x < uint64(min) {
			return Data{}, valErr(errcode.BelowMinThreshold)
		}
		if x > uint64(max) {
			return Data{}, valErr(errcode.AboveMaxThreshold)
		}
		return wrap(T(x)), nil
	}
}

// Bool builds a validator for boolean settings: the value must be 0
// or 1 (as ASCII in FILE mode, as a raw byte in MESSAGE mode); min/max
// are not meaningful for bool.
func Bool() Validator {
	return func(buf []byte, mode Mode) (Data, error) {
		var x uint64
		switch mode {
		case FileMode:
			s := string(buf)
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return Data{}, valErr(errcode.OutOfTypeRange)
			}
			x = v
		case MessageMode:
			x = leUint(buf, 1)
		}
		if x != 0 && x != 1 {
			return Data{}, valErr(errcode.OutOfTypeRange)
		}
		return BoolData(x == 1), nil
	}
}

// Name builds a validator for free-text name settings: the buffer
// must be non-empty and contain only [A-Za-z0-9()_-].
func Name() Validator {
	return func(buf []byte, mode Mode) (Data, error) {
		if len(buf) == 0 {
			return Data{}, valErr(errcode.MissingValue)
		}
		for _, b := range buf {
			if !isNameByte(b) {
				return Data{}, valErr(errcode.ContainsInvalidCharacter)
			}
		}
		return StringData(string(buf)), nil
	}
}

func isNameByte(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return true
	case b == '(', b == ')', b == '_', b == '-':
		return true
	default:
		return false
	}
}

// EnumOption pairs a FILE-mode text label with its MESSAGE-mode
// integer discriminant.
type EnumOption struct {
	Label string
	Value int
}

// Enum builds a validator over a closed set of options: in FILE mode
// the buffer must match one option's Label exactly, in MESSAGE mode
// the buffer's integer value must match one option's Value.
func Enum(wrap func(int) Data, options ...EnumOption) Validator {
	return func(buf []byte, mode Mode) (Data, error) {
		if len(buf) == 0 {
			return Data{}, valErr(errcode.MissingValue)
		}
		switch mode {
		case FileMode:
			s := string(buf)
			for _, opt := range options {
				if opt.Label == s {
					return wrap(opt.Value), nil
				}
			}
			return Data{}, valErr(errcode.InvalidOption)
		case MessageMode:
			v := int(leUint(buf, 1))
			for _, opt := range options {
				if opt.Value == v {
					return wrap(opt.Value), nil
				}
			}
			return Data{}, valErr(errcode.InvalidOption)
		}
		return Data{}, valErr(errcode.InvalidOption)
	}
}

func sizeOf[T any]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	default:
		return 8
	}
}

func typeRange(size int, signedType bool) (lo, hi int64) {
	bits := uint(size * 8)
	if signedType {
		hi = 1<<(bits-1) - 1
		lo = -(1 << (bits - 1))
		return lo, hi
	}
	return 0, int64(uint64(1)<<bits - 1)
}

func leUint(buf []byte, size int) uint64 {
	var b [8]byte
	n := copy(b[:], buf)
	_ = n
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b[:2]))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b[:4]))
	default:
		return binary.LittleEndian.Uint64(b[:8])
	}
}

func signExtend(x uint64, size int) int64 {
	bits := uint(size * 8)
	v := int64(x)
	if bits < 64 && v&(1<<(bits-1)) != 0 {
		v -= 1 << bits
	}
	return v
}
