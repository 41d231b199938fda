// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/ezrec/lc2k/cpu"
	"github.com/ezrec/lc2k/translate"
)

const (
	OUTPUT_MODE = 0o644 // Permissions of the machine code file.
)

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func usage() {
	translate.Fprintf(flag.CommandLine.Output(), "error: usage: %v [-v] <assembly-code-file> <machine-code-file>\n", os.Args[0])
	flag.PrintDefaults()
}

// writeProgram writes the machine code to a temporary file and renames it
// into place, so a failed run never leaves a partial output file.
func writeProgram(output string, prog *cpu.Program) (err error) {
	ouf, err := os.CreateTemp(filepath.Dir(output), "."+filepath.Base(output)+".*")
	if err != nil {
		return
	}
	tmpname := ouf.Name()
	atexit.Register(func() { os.Remove(tmpname) })

	defer func() {
		if err != nil {
			ouf.Close()
			os.Remove(tmpname)
		}
	}()

	_, err = prog.WriteTo(ouf)
	if err != nil {
		return
	}

	err = ouf.Chmod(OUTPUT_MODE)
	if err != nil {
		return
	}

	err = ouf.Close()
	if err != nil {
		return
	}

	return os.Rename(tmpname, output)
}

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = usage

	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() != 2 {
		flag.Usage()
		atexit.Exit(1)
	}

	input := flag.Arg(0)
	output := flag.Arg(1)

	err := assembleFile(input, output, verbose)
	if err != nil {
		fatalf("error: %v", err)
	}
}

// assembleFile assembles the input file into the output machine code file.
// On error the output file is not created.
func assembleFile(input, output string, verbose bool) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", input, err)
	}

	err = writeProgram(output, prog)
	if err != nil {
		return fmt.Errorf("%v: %w", output, err)
	}

	return
}
