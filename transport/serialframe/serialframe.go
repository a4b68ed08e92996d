// Package serialframe is the MESSAGE-mode transport collaborator
// named out-of-core in spec.md §1/§9: it reads length-prefixed
// bit-frame payloads off a UART and hands raw bytes to
// config.Handler.Process, never touching the schema itself.
//
// Grounded on cmd/controller/platform_rpi.go's hardware-adapter
// wiring style: one small package per physical collaborator,
// constructed once by the caller and passed in as a plain value.
package serialframe

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tarm/serial"
)

// Source reads length-prefixed bit-frame payloads from a serial port:
// a big-endian uint16 byte count followed by that many payload bytes.
type Source struct {
	port io.ReadWriteCloser
}

// Open opens the named serial port at the given baud rate.
func Open(name string, baud int) (*Source, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("serialframe: open %s: %w", name, err)
	}
	return &Source{port: port}, nil
}

// Next blocks until one complete frame has arrived and returns its
// payload bytes.
func (s *Source) Next() ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(s.port, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("serialframe: read length: %w", err)
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.port, buf); err != nil {
		return nil, fmt.Errorf("serialframe: read frame: %w", err)
	}
	return buf, nil
}

// Close releases the underlying serial port.
func (s *Source) Close() error { return s.port.Close() }
