package setting

import (
	"aethercfg/bitspan"
	"aethercfg/errcode"
	"aethercfg/record"
	"aethercfg/tagpath"
)

// MaxBufferLen is the maximum number of raw payload bytes a Setting
// captures during parse.
const MaxBufferLen = 32

// ID is the dense enumeration identifier that names a Setting; it is
// stable across releases and appears verbatim in error code payloads.
type ID int

// Necessity marks whether a missing setting is a validation error.
type Necessity int

const (
	Required Necessity = iota
	Optional
)

// Applier writes a validated Data value into the master record.
type Applier func(d Data, rec *record.MasterRecord)

// Setting is one schema entry: a binding of a tag path and/or a
// bit-span to a validator and an applier over one field of the
// master record, plus the mutable parse/validate state captured for
// one processing run.
//
// Mirrors the schema-entry-as-struct-with-mutable-scratch-state shape
// of bc/urtypes' decode path, generalized from a one-shot CBOR parse
// to the repeated parse/validate/apply/reset cycle this core needs.
type Setting struct {
	id        ID
	tags      tagpath.Path
	bits      bitspan.Span
	necessity Necessity
	validator Validator
	applier   Applier

	buffer [MaxBufferLen]byte
	bufLen int

	cached   Data
	cachedOK bool
}

// New constructs a Setting. bits may be bitspan.None for a text-only
// setting.
func New(id ID, tags tagpath.Path, bits bitspan.Span, necessity Necessity, v Validator, a Applier) *Setting {
	return &Setting{
		id:        id,
		tags:      tags,
		bits:      bits,
		necessity: necessity,
		validator: v,
		applier:   a,
	}
}

func (s *Setting) ID() ID                  { return s.id }
func (s *Setting) Tags() tagpath.Path      { return s.tags }
func (s *Setting) Tag(d int) string        { return s.tags[d] }
func (s *Setting) Bits() bitspan.Span      { return s.bits }
func (s *Setting) Necessity() Necessity    { return s.necessity }

// Equal reports whether two settings share the same id; schemas
// identify settings by id alone.
func (s *Setting) Equal(o *Setting) bool { return s.id == o.id }

// SetValue copies up to MaxBufferLen bytes from src into the
// setting's buffer, overwriting any previous value, and records the
// number of bytes copied (content beyond MaxBufferLen is silently not
// copied; it is the caller's job to raise EXCEEDS_MAX_VALUE_LENGTH).
func (s *Setting) SetValue(src []byte) {
	n := copy(s.buffer[:], src)
	s.bufLen = n
}

// IsSet reports whether a value has been observed in the current
// payload.
func (s *Setting) IsSet() bool { return s.bufLen > 0 }

// Buffer returns the captured raw bytes.
func (s *Setting) Buffer() []byte { return s.buffer[:s.bufLen] }

// Reset clears the captured buffer and any cached validated value,
// as done between processing runs.
func (s *Setting) Reset() {
	s.bufLen = 0
	s.cachedOK = false
}

// Validate runs the bound validator over the captured buffer and
// caches its result. It returns an error carrying errcode.SettingUnset
// if no value was captured this run (without calling the validator),
// or the validator's own ValidationError otherwise.
func (s *Setting) Validate(mode Mode) error {
	s.cachedOK = false
	if !s.IsSet() {
		return &ValidationError{Kind: errcode.SettingUnset}
	}
	d, err := s.validator(s.Buffer(), mode)
	if err != nil {
		return err
	}
	s.cached = d
	s.cachedOK = true
	return nil
}

// Apply calls the bound applier with the cached value from the last
// successful Validate call. Apply must not be called unless the last
// Validate returned nil; callers (settinghandler) enforce this.
func (s *Setting) Apply(rec *record.MasterRecord) {
	s.applier(s.cached, rec)
}
