// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"

	"github.com/ezrec/lc2k/cpu"
)

//go:generate go tool mockgen -destination=mock_tracer_test.go -package=emulator github.com/ezrec/lc2k/emulator Tracer

// Tracer observes the machine as the emulator runs.
type Tracer interface {
	// Load is called once memory has been loaded.
	Load(state *cpu.Cpu) error
	// Step is called before each instruction executes.
	Step(state *cpu.Cpu) error
	// Halt is called after the halt instruction executes.
	Halt(state *cpu.Cpu) error
}

// DumpTracer writes the loaded memory, a state dump before each instruction,
// and the final state of the machine.
type DumpTracer struct {
	Output io.Writer // Destination of the dumps.
	Quiet  bool      // If set, no dump is written before each instruction.
}

func (dt *DumpTracer) Load(state *cpu.Cpu) (err error) {
	for n := range state.Loaded {
		_, err = fmt.Fprintf(dt.Output, "memory[%d]=%d\n", n, int32(state.Memory[n]))
		if err != nil {
			return
		}
	}

	return
}

func (dt *DumpTracer) Step(state *cpu.Cpu) (err error) {
	if dt.Quiet {
		return
	}

	_, err = io.WriteString(dt.Output, state.String())
	return
}

func (dt *DumpTracer) Halt(state *cpu.Cpu) (err error) {
	_, err = fmt.Fprintf(dt.Output, "machine halted\ntotal of %d instructions executed\nfinal state of machine:\n", state.Ticks)
	if err != nil {
		return
	}

	_, err = io.WriteString(dt.Output, state.String())
	return
}
