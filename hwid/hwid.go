// Package hwid reads the device's stable hardware identifier and
// polls USB cable presence. Two backends exist behind the same
// Reader interface, selected at build time: a periph.io-backed
// implementation for linux, and a dummy stand-in for everywhere else,
// mirroring cmd/controller/platform_rpi.go / platform_dummy.go's
// split in the teacher repo.
package hwid

import (
	"encoding/hex"

	"aethercfg/record"
)

// ID is the device's EUI-64 hardware identifier.
type ID [record.EUILen]byte

func (id ID) String() string { return hex.EncodeToString(id[:]) }

// Reader reads the hardware identifier and polls USB presence.
type Reader interface {
	ReadID() (ID, error)
	USBPresent() (bool, error)
	Close() error
}
