package errcode

import "testing"

func TestPackingRoundTrip(t *testing.T) {
	cats := []Category{Unspecified, Parsing, Validation, Verification}
	kinds := []Kind{0, 1, 7, 17, 31}
	datas := []uint32{0, 1, 0xabc, 0xffffff, 1 << 23}
	for _, cat := range cats {
		for _, kind := range kinds {
			for _, data := range datas {
				c := New(cat, kind, data)
				if got := c.Category(); got != cat {
					t.Fatalf("Category() = %v, want %v", got, cat)
				}
				if got := c.Kind(); got != kind {
					t.Fatalf("Kind() = %v, want %v", got, kind)
				}
				if got := c.Data(); got != data {
					t.Fatalf("Data() = %#x, want %#x", got, data)
				}
			}
		}
	}
}

func TestPosition(t *testing.T) {
	c := WithPosition(Parsing, ExceedsMaxValueLength, 12, 34)
	line, col := c.Position()
	if line != 12 || col != 34 {
		t.Fatalf("Position() = (%d,%d), want (12,34)", line, col)
	}
}

func TestBytes(t *testing.T) {
	c := WithBytes(Validation, OutOfTypeRange, 0x11, 0x22, 0x33)
	b1, b2, b3 := c.Bytes()
	if b1 != 0x11 || b2 != 0x22 || b3 != 0x33 {
		t.Fatalf("Bytes() = %x %x %x", b1, b2, b3)
	}
}

func TestID(t *testing.T) {
	c := WithID(Validation, SettingUnset, 42)
	if got := c.ID(); got != 42 {
		t.Fatalf("ID() = %d, want 42", got)
	}
}

func TestInt24SignExtension(t *testing.T) {
	c := WithInt24(Parsing, InsufficientMessageSize, -1)
	if got := c.Int24(); got != -1 {
		t.Fatalf("Int24() = %d, want -1", got)
	}
	c2 := WithInt24(Parsing, InsufficientMessageSize, 64)
	if got := c2.Int24(); got != 64 {
		t.Fatalf("Int24() = %d, want 64", got)
	}
}

func TestErrorString(t *testing.T) {
	c := New(Validation, AboveMaxThreshold, 3)
	s := c.Error()
	if s == "" {
		t.Fatal("Error() returned empty string")
	}
}
