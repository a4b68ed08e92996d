package serialframe

import (
	"bytes"
	"io"
	"testing"
)

type fakePort struct {
	io.Reader
}

func (fakePort) Write(p []byte) (int, error) { return len(p), nil }
func (fakePort) Close() error                { return nil }

func TestNextReadsLengthPrefixedFrame(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	wire := append([]byte{0x00, 0x04}, payload...)
	s := &Source{port: fakePort{Reader: bytes.NewReader(wire)}}

	got, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %v, want %v", got, payload)
	}
}

func TestNextShortRead(t *testing.T) {
	s := &Source{port: fakePort{Reader: bytes.NewReader([]byte{0x00, 0x04, 0x01})}}
	if _, err := s.Next(); err == nil {
		t.Fatal("Next succeeded on a truncated frame")
	}
}
