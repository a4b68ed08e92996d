// Package tagpath implements the fixed-depth tag path used to locate
// a setting inside the tag-tree payload: an ordered sequence of short
// ASCII tokens, compared elementwise with no implicit truncation.
package tagpath

import "fmt"

// MaxTagLen is the maximum length of a single tag token.
const MaxTagLen = 64

// Depth is the fixed upper nesting depth of the default schema.
const Depth = 4

// Path is a fixed-depth sequence of tags. Unused trailing slots are
// the empty string, the sentinel for "no tag at this depth".
type Path [Depth]string

// New builds a Path from the given tags, zero-filling any remaining
// depth. It panics if more than Depth tags are given or a tag exceeds
// MaxTagLen, both programmer errors in schema construction.
func New(tags ...string) Path {
	if len(tags) > Depth {
		panic(fmt.Sprintf("tagpath: %d tags exceeds max depth %d", len(tags), Depth))
	}
	var p Path
	for i, t := range tags {
		if len(t) > MaxTagLen {
			panic(fmt.Sprintf("tagpath: tag %q exceeds max length %d", t, MaxTagLen))
		}
		p[i] = t
	}
	return p
}

// Len reports the number of non-empty leading tags.
func (p Path) Len() int {
	n := 0
	for _, t := range p {
		if t == "" {
			break
		}
		n++
	}
	return n
}

// Leaf returns the last non-empty element, or "" if the path is empty.
func (p Path) Leaf() string {
	n := p.Len()
	if n == 0 {
		return ""
	}
	return p[n-1]
}

// Append returns a new path one tag deeper. It panics if p is already
// at Depth.
func (p Path) Append(tag string) Path {
	n := p.Len()
	if n >= Depth {
		panic("tagpath: path already at max depth")
	}
	p[n] = tag
	return p
}

// Compose concatenates p and o into a new path. It panics if the
// combined depth exceeds Depth.
func (p Path) Compose(o Path) Path {
	n := p.Len()
	m := o.Len()
	if n+m > Depth {
		panic(fmt.Sprintf("tagpath: composed depth %d exceeds max %d", n+m, Depth))
	}
	var out Path
	copy(out[:], p[:n])
	copy(out[n:], o[:m])
	return out
}

// Equal reports exact elementwise equality; it never truncates.
func (p Path) Equal(o Path) bool {
	return p == o
}

func (p Path) String() string {
	s := ""
	for i, t := range p {
		if t == "" {
			break
		}
		if i > 0 {
			s += "."
		}
		s += t
	}
	return s
}
