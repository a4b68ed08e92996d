// Package tagtree implements the tag-tree parser: a single-pass,
// depth-tracked ASCII tag scanner that matches nested tag paths
// against a schema and captures matched text into each setting's
// buffer.
//
// The scanner and the depth/match bookkeeping are folded into one
// pass rather than split into a separate tokenizer and walker —
// following nonstandard/parse.go's single-pass, cursor-tracked
// descriptor line scanner in the teacher repo, generalized from
// line-oriented dispatch to tag-oriented dispatch.
package tagtree

import (
	"aethercfg/errbuf"
	"aethercfg/errcode"
	"aethercfg/schema"
	"aethercfg/tagpath"
)

// maxValueLen is the largest tag-tree value the parser accepts
// without raising EXCEEDS_MAX_VALUE_LENGTH, per spec.md §6.
const maxValueLen = 32

// errBufCapacity bounds the parsing error buffer. Parsing errors are
// rare relative to the number of settings; a handful of slots is
// always enough to keep the most recent ones under saturation.
const errBufCapacity = 16

type cursor struct {
	line, col int
}

func (c *cursor) advance(b byte) {
	switch b {
	case '\n':
		c.line++
		c.col = 1
	case '\r':
	default:
		c.col++
	}
}

// Parse walks data as a tag-tree document against sch: OPEN tags look
// like <name>, CLOSE tags like </anything> (the closing name is never
// checked against the opening one — an unbalanced close is reported
// as a depth imbalance at end-of-input, not rejected immediately),
// and any run of bytes between tags is TEXT content.
//
// Matched settings have SetValue called with their captured content;
// Parse itself never validates or applies — that's setting.Validate
// and settinghandler's job. The returned buffer is never nil.
func Parse(data []byte, sch *schema.Schema) *errbuf.Buffer {
	errs := errbuf.New(errBufCapacity)

	if len(data) == 0 {
		errs.Append(errcode.WithPosition(errcode.Parsing, errcode.EmptyConfig, 1, 1))
		return errs
	}

	settings := sch.Settings()
	matchedDepth := make([]int, len(settings))

	d := 0
	sel := -1
	sawAnyTag := false
	cur := cursor{line: 1, col: 1}

	i := 0
	for i < len(data) {
		if data[i] == '<' {
			if i+1 < len(data) && data[i+1] == '/' {
				i += consumeClose(data[i:], &cur)
				d--
				continue
			}
			var name string
			name, i = consumeOpen(data, i, &cur)
			sawAnyTag = true
			if d < tagpath.Depth {
				for si, s := range settings {
					tags := s.Tags()
					if matchedDepth[si] == d && tags[d] == name {
						matchedDepth[si] = d + 1
						sel = si
					}
				}
			}
			d++
			continue
		}

		start := i
		startPos := cur
		for i < len(data) && data[i] != '<' {
			cur.advance(data[i])
			i++
		}
		content := data[start:i]

		if sel >= 0 && matchedDepth[sel] == d {
			tags := settings[sel].Tags()
			if d == tagpath.Depth || tags[d] == "" {
				if len(content) > maxValueLen {
					errs.Append(errcode.WithPosition(errcode.Parsing, errcode.ExceedsMaxValueLength, startPos.line, startPos.col))
				}
				settings[sel].SetValue(content)
				matchedDepth[sel] = 0
			}
		}
	}

	switch {
	case d > 0:
		errs.Append(errcode.WithInt24(errcode.Parsing, errcode.MissingClosingTag, int32(d)))
	case d < 0:
		errs.Append(errcode.WithInt24(errcode.Parsing, errcode.MissingOpeningTag, int32(-d)))
	}
	if !sawAnyTag {
		errs.Append(errcode.New(errcode.Parsing, errcode.NoTagsFound, 0))
	}

	return errs
}

// consumeOpen scans an OPEN tag starting at data[i] == '<' and
// returns the tag name and the index just past its closing '>'.
func consumeOpen(data []byte, i int, cur *cursor) (name string, next int) {
	cur.advance(data[i])
	i++
	start := i
	for i < len(data) && data[i] != '>' {
		cur.advance(data[i])
		i++
	}
	name = string(data[start:i])
	if i < len(data) {
		cur.advance(data[i])
		i++
	}
	return name, i
}

// consumeClose scans a CLOSE tag starting at data[0:2] == "</" and
// returns the number of bytes consumed. The closing name, if any, is
// never inspected.
func consumeClose(data []byte, cur *cursor) int {
	cur.advance(data[0])
	cur.advance(data[1])
	i := 2
	for i < len(data) && data[i] != '>' {
		cur.advance(data[i])
		i++
	}
	if i < len(data) {
		cur.advance(data[i])
		i++
	}
	return i
}
