//go:build linux

package hwid

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// linuxReader reads the EUI-64 off an I2C EEPROM and polls a GPIO pin
// for USB presence.
type linuxReader struct {
	bus    i2c.BusCloser
	dev    i2c.Dev
	usbPin gpio.PinIO
}

// Open initializes the periph.io host and opens the I2C bus and GPIO
// pin the hardware identifier and USB-presence signal live on.
func Open(busName, usbPinName string, addr uint16) (Reader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hwid: host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("hwid: open i2c bus %s: %w", busName, err)
	}
	pin := gpioreg.ByName(usbPinName)
	if pin == nil {
		bus.Close()
		return nil, fmt.Errorf("hwid: no such gpio pin %q", usbPinName)
	}
	if err := pin.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		bus.Close()
		return nil, fmt.Errorf("hwid: configure usb pin: %w", err)
	}
	return &linuxReader{bus: bus, dev: i2c.Dev{Bus: bus, Addr: addr}, usbPin: pin}, nil
}

func (r *linuxReader) ReadID() (ID, error) {
	var id ID
	if err := r.dev.Tx(nil, id[:]); err != nil {
		return ID{}, fmt.Errorf("hwid: read eui: %w", err)
	}
	return id, nil
}

func (r *linuxReader) USBPresent() (bool, error) {
	return r.usbPin.Read() == gpio.High, nil
}

func (r *linuxReader) Close() error { return r.bus.Close() }
