package hwid

import "testing"

func TestIDString(t *testing.T) {
	id := ID{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}
	if got, want := id.String(), "deadbeef00010203"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
