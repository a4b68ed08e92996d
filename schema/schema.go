// Package schema implements the declarative schema table: the
// concrete mapping from tag paths and bit-spans to typed settings
// that instantiates the rest of the config core.
//
// Grounded on driver/otp's INDEX_* row table and picobin's
// blockItem* constant table in the teacher repo — both are, in their
// own domains, "the concrete mapping table that instantiates
// everything".
package schema

import (
	"fmt"

	"aethercfg/setting"
)

// minFrameBytesFloor is the smallest bit-frame size the parser will
// ever accept, per spec.md §4.4, even for a schema that binds fewer
// bits than that.
const minFrameBytesFloor = 64

// Schema is an ordered, immutable-after-construction table of
// settings. Order matters: settinghandler visits settings in
// schema-declaration order, and the default schema exploits that (see
// Default's doc comment).
type Schema struct {
	settings []*setting.Setting
}

// New builds a Schema from entries, in the given order. It panics if
// two entries share an id, share a complete tag path, or have
// overlapping non-zero bit spans — all are schema-construction bugs,
// not payload errors, so they surface immediately rather than as
// ErrorCodes.
func New(entries ...*setting.Setting) *Schema {
	ids := make(map[setting.ID]bool, len(entries))
	paths := make(map[[4]string]bool, len(entries))
	for i, e := range entries {
		if ids[e.ID()] {
			panic(fmt.Sprintf("schema: duplicate setting id %d", e.ID()))
		}
		ids[e.ID()] = true
		if paths[e.Tags()] {
			panic(fmt.Sprintf("schema: duplicate tag path %v", e.Tags()))
		}
		paths[e.Tags()] = true
		for _, o := range entries[:i] {
			if e.Bits().Overlaps(o.Bits()) {
				panic(fmt.Sprintf("schema: settings %d and %d have overlapping bit spans", e.ID(), o.ID()))
			}
		}
	}
	return &Schema{settings: entries}
}

// Settings returns the schema's settings in declaration order. The
// returned slice must not be appended to or reordered by the caller.
func (s *Schema) Settings() []*setting.Setting {
	return s.settings
}

// MinFrameBytes is the minimum bit-frame length this schema requires,
// resolving spec.md §9 Open Question 3: it's the larger of the fixed
// 64-byte floor and the byte length needed to reach the end of the
// schema's furthest-reaching bit span, computed from the schema's
// spans on each call rather than hardcoded.
func (s *Schema) MinFrameBytes() int {
	min := minFrameBytesFloor
	for _, e := range s.settings {
		if n := e.Bits().ByteLen(); n > min {
			min = n
		}
	}
	return min
}
