// Command cfgdump prints the currently persisted device record, or
// decodes a CBOR diagnostics snapshot captured from a device, as
// readable text.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"aethercfg/diagnostics"
	"aethercfg/store"
)

var (
	statePath    = flag.String("state", "/var/lib/aethercfg/current.bin", "path to the persisted record")
	snapshotPath = flag.String("snapshot", "", "path to a CBOR diagnostics snapshot to decode instead of -state")
)

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cfgdump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *snapshotPath != "" {
		data, err := os.ReadFile(*snapshotPath)
		if err != nil {
			return err
		}
		snap, err := diagnostics.Decode(data)
		if err != nil {
			return err
		}
		if snap.Record != nil {
			fmt.Printf("%+v\n", *snap.Record)
		}
		for _, code := range snap.Errors {
			fmt.Printf("error: 0x%08x\n", code)
		}
		return nil
	}

	st := store.Open(*statePath)
	rec, ok, err := st.Load()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no record persisted yet")
		return nil
	}
	fmt.Printf("%+v\n", rec)
	return nil
}
