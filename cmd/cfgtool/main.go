// Command cfgtool validates a tag-tree configuration file against
// the default schema and verification rules, and reports the
// resulting record or every rejection reason.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"aethercfg/config"
	"aethercfg/record"
	"aethercfg/schema"
	"aethercfg/verify"
)

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cfgtool <config-file>")
		os.Exit(2)
	}
	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "cfgtool: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	h := config.New(schema.Default(), verify.Default(), func(line string) {
		fmt.Println(line)
	})

	var rec record.MasterRecord
	if ok := h.Process(doc, config.TagTree, &rec); !ok {
		return fmt.Errorf("%s: rejected", path)
	}
	fmt.Printf("%+v\n", rec)
	return nil
}
