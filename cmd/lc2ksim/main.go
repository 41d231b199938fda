// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/lc2k/emulator"
	"github.com/ezrec/lc2k/translate"
)

// exprList collects repeated -expect flags.
type exprList []string

func (el *exprList) String() string {
	return strings.Join(*el, ", ")
}

func (el *exprList) Set(expr string) error {
	*el = append(*el, expr)
	return nil
}

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func usage() {
	translate.Fprintf(flag.CommandLine.Output(), "error: usage: %v [-v] [-q] [-expect EXPR]... <machine-code-file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var verbose bool
	var quiet bool
	var expects exprList

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Only print the final state")
	flag.Var(&expects, "expect", "Expression that must hold once halted (may be repeated)")
	flag.Usage = usage

	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(1)
	}

	input := flag.Arg(0)

	inf, err := os.Open(input)
	if err != nil {
		fatalf("error: can't open file %v: %v", input, err)
	}
	defer inf.Close()

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })
	defer out.Flush()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Tracer = &emulator.DumpTracer{Output: out, Quiet: quiet}

	err = emu.Load(inf)
	if err != nil {
		fatalf("error: %v: %v", input, err)
	}

	err = emu.Run()
	if err != nil {
		fatalf("error: %v: %v", input, err)
	}

	err = emu.Expect(expects...)
	if err != nil {
		fatalf("error: %v: %v", input, err)
	}
}
