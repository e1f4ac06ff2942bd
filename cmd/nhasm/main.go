// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/nhasm/asm"
	"github.com/ezrec/nhasm/selftest"
	"github.com/ezrec/nhasm/tape"
	"github.com/ezrec/nhasm/translate"
)

const (
	SOURCE_EXT = ".nha" // Assembly source extension.
	BINARY_EXT = ".bin" // Binary listing extension.
)

var f = translate.From

// binaryPath returns the listing path for a source path, or false if the
// source extension is not recognized.
func binaryPath(source string) (binary string, ok bool) {
	base, ok := strings.CutSuffix(source, SOURCE_EXT)
	if !ok {
		return
	}

	binary = base + BINARY_EXT
	return
}

// assemble encodes source into a new binary listing. The listing is closed
// whether or not assembly succeeds, keeping every line encoded before a
// failure.
func assemble(source string, binary string, verbose bool) (err error) {
	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	ouf, err := tape.Create(binary)
	if err != nil {
		return
	}
	defer func() {
		close_err := ouf.Close()
		if err == nil {
			err = close_err
		}
	}()

	assembler := &asm.Assembler{Verbose: verbose}
	err = assembler.Assemble(inf, ouf)

	if verbose {
		log.Printf("%v: %v", binary, f("%d instructions", ouf.Count))
	}

	return
}

// selfTest runs the built in fixtures, returning false if any failed.
func selfTest(output io.Writer) (passed bool) {
	passed = true
	for _, report := range selftest.RunAll(selftest.Cases) {
		_, err := report.WriteTo(output)
		if err != nil {
			log.Printf("%v", err)
		}
		if !report.Passed {
			passed = false
		}
	}

	return
}

func main() {
	var output string
	var verbose bool

	flag.StringVar(&output, "o", "", "Binary listing to write (default: source with "+BINARY_EXT+" extension)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		translate.Fprint(flag.CommandLine.Output(), "Usage: %v [-v] [-o output%v] test | file%v\n", os.Args[0], BINARY_EXT, SOURCE_EXT)
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	source := flag.Arg(0)

	if source == "test" {
		if !selfTest(os.Stdout) {
			os.Exit(1)
		}
		return
	}

	binary, ok := binaryPath(source)
	if !ok {
		log.Fatalf("%v: %v", source, f("unrecognized command or file type"))
	}
	if len(output) != 0 {
		binary = output
	}

	err := assemble(source, binary, verbose)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
}
