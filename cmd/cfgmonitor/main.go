// Command cfgmonitor runs continuously on the device: it reads
// bit-frame configuration payloads off a serial link, applies them
// through the standard processing pipeline, and persists the latest
// accepted record to flash.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"aethercfg/config"
	"aethercfg/hwid"
	"aethercfg/record"
	"aethercfg/schema"
	"aethercfg/store"
	"aethercfg/transport/serialframe"
	"aethercfg/verify"
)

var (
	port      = flag.String("port", "/dev/ttyAMA0", "serial port to read config frames from")
	baud      = flag.Int("baud", 115200, "serial baud rate")
	statePath = flag.String("state", "/var/lib/aethercfg/current.bin", "path to persist the accepted record")
	i2cBus    = flag.String("i2c-bus", "", "I2C bus the hardware id EEPROM is on (empty picks the default bus)")
	usbPin    = flag.String("usb-pin", "GPIO4", "GPIO pin reporting USB cable presence")
	hwidAddr  = flag.Uint("hwid-addr", 0x50, "I2C address of the hardware id EEPROM")
)

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v", err)
		os.Exit(2)
	}
}

func run() error {
	log.Println("aethercfg: monitor starting...")

	src, err := serialframe.Open(*port, *baud)
	if err != nil {
		return err
	}
	defer src.Close()

	id, err := hwid.Open(*i2cBus, *usbPin, uint16(*hwidAddr))
	if err != nil {
		return err
	}
	defer id.Close()

	deviceID, err := id.ReadID()
	if err != nil {
		return err
	}
	log.Printf("aethercfg: hardware id %s", deviceID)

	st := store.Open(*statePath)
	h := config.New(schema.Default(), verify.Default(), func(line string) {
		log.Println(line)
	})

	for {
		payload, err := src.Next()
		if err != nil {
			return err
		}

		rec, _, _ := st.Load()
		// A record with no device name yet (freshly reset, or never
		// configured) falls back to the hardware id until a payload
		// sets device_name explicitly.
		if rec.DeviceName == "" {
			rec.DeviceName = deviceID.String()
		}

		if ok := h.Process(payload, config.BitFrame, &rec); !ok {
			log.Println("aethercfg: rejected incoming frame")
			continue
		}
		if err := st.Save(rec); err != nil {
			log.Printf("aethercfg: failed to persist record: %v", err)
			continue
		}
		log.Println("aethercfg: applied new config")

		if rec.USBDetection == record.USBInterval {
			present, err := id.USBPresent()
			if err != nil {
				log.Printf("aethercfg: usb presence poll failed: %v", err)
				continue
			}
			log.Printf("aethercfg: usb present = %v", present)
		}
	}
}
