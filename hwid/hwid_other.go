//go:build !linux

package hwid

// dummyReader stands in for linuxReader on platforms with no
// periph.io backend, mirroring cmd/controller/platform_dummy.go.
type dummyReader struct{}

// Open returns a dummy Reader: zero identifier, USB never present.
func Open(busName, usbPinName string, addr uint16) (Reader, error) {
	return dummyReader{}, nil
}

func (dummyReader) ReadID() (ID, error)       { return ID{}, nil }
func (dummyReader) USBPresent() (bool, error) { return false, nil }
func (dummyReader) Close() error              { return nil }
