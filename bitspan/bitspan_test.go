package bitspan

import "testing"

func TestExtractMSBFirst(t *testing.T) {
	tests := []struct {
		src  []byte
		span Span
		want uint64
	}{
		{[]byte{0x80}, Span{0, 1}, 1},
		{[]byte{0x01}, Span{7, 1}, 1},
		{[]byte{0xff}, Span{0, 8}, 0xff},
		{[]byte{0x01, 0x80}, Span{7, 2}, 3},
		{[]byte{0x00, 0x00, 0x00, 0x01}, Span{24, 8}, 1},
	}
	for _, test := range tests {
		got := Extract(test.src, test.span)
		if got != test.want {
			t.Errorf("Extract(% x, %+v) = %d, want %d", test.src, test.span, got, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for p := 0; p <= 512-1; p++ {
		for w := 1; w <= 64; w++ {
			if p+w > 512 {
				continue
			}
			span := Span{p, w}
			buf := make([]byte, 64)
			v := uint64(0x9a9a9a9a9a9a9a9a) & mask(w)
			PutUint64(buf, span, v)
			got := Extract(buf, span)
			if got != v {
				t.Fatalf("round trip at pos=%d width=%d: put %x got %x", p, w, v, got)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := Span{0, 4}
	b := Span{3, 4}
	c := Span{4, 4}
	if !a.Overlaps(b) {
		t.Error("expected overlap")
	}
	if a.Overlaps(c) {
		t.Error("expected no overlap")
	}
	if a.Overlaps(None) || None.Overlaps(a) {
		t.Error("zero-width span must never overlap")
	}
}

func TestByteLen(t *testing.T) {
	if got := (Span{0, 1}).ByteLen(); got != 1 {
		t.Errorf("ByteLen() = %d, want 1", got)
	}
	if got := (Span{143, 1}).ByteLen(); got != 18 {
		t.Errorf("ByteLen() = %d, want 18", got)
	}
}
