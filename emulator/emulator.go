// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"log"

	"github.com/ezrec/lc2k/cpu"
)

// Emulator state. CPU + loaded program + tracing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Source listing of the loaded program, if known.
	Tracer   Tracer       // Observer of the machine state, if set.
}

// NewEmulator creates a new emulator with a full sized memory.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(cpu.MEMORY_SIZE),
		Program: &cpu.Program{},
	}

	return
}

// Load reads machine code into memory and resets the machine.
func (emu *Emulator) Load(input io.Reader) (err error) {
	words, err := cpu.ReadWords(input)
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{}

	return emu.load(words)
}

// LoadProgram places an assembled program into memory and resets the machine.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	emu.Program = prog

	return emu.load(prog.Binary())
}

func (emu *Emulator) load(words []cpu.Word) (err error) {
	err = emu.Cpu.Load(words)
	if err != nil {
		return
	}

	emu.Reset()

	if emu.Tracer != nil {
		err = emu.Tracer.Load(emu.Cpu)
	}

	return
}

// Reset the machine state, keeping memory.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the current instruction, or 0.
func (emu *Emulator) LineNo() int {
	stmt := emu.Program.Debug(emu.Cpu.Pc)
	if stmt == nil {
		return 0
	}

	return stmt.LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu.Halted {
		done = true
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Tracer != nil {
		err = emu.Tracer.Step(emu.Cpu)
		if err != nil {
			return
		}
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	if emu.Cpu.Halted {
		done = true
		if emu.Verbose {
			log.Printf("emulator: halted after %d instructions", emu.Cpu.Ticks)
		}
		if emu.Tracer != nil {
			err = emu.Tracer.Halt(emu.Cpu)
		}
	}

	return
}

// Run executes until the machine halts.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
