// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
	"strings"
)

const (
	MEMORY_SIZE = 65536 // Maximum number of words in memory.
)

// Cpu is the simulation context for the LC-2K machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int             // Current program counter.
	Register [NUM_REGS]int32 // Register bank.
	Memory   []Word          // Memory image.
	Loaded   int             // Number of words loaded into memory.
	Halted   bool            // Set once a halt has executed.

	Ticks int // Instructions executed.
}

// NewCpu creates a new CPU with a specifically sized memory.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make([]Word, size),
	}

	return
}

// Reset the CPU state.
// - Clears the registers and the program counter.
// - Zeros the instruction counter.
// Memory is left as loaded.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// Load replaces the memory contents with a program image.
func (cpu *Cpu) Load(words []Word) (err error) {
	if len(words) > len(cpu.Memory) {
		err = ErrMemoryFull
		return
	}

	clear(cpu.Memory)
	cpu.Loaded = copy(cpu.Memory, words)

	return
}

// address computes a checked effective memory address.
func (cpu *Cpu) address(reg int, field uint16) (addr int, err error) {
	addr = int(cpu.Register[reg]) + int(SignExtend16(field))
	if addr < 0 || addr >= len(cpu.Memory) {
		err = ErrAddress(addr)
	}
	return
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		return
	}

	if cpu.Pc < 0 || cpu.Pc >= len(cpu.Memory) {
		err = ErrPcRange
		return
	}

	word := cpu.Memory[cpu.Pc]
	op, reg_a, reg_b, field := word.Decode()

	if cpu.Verbose {
		log.Printf("cpu: %d: %v", cpu.Pc, word)
	}

	switch op {
	case OP_ADD, OP_NOR:
		dest := int(field)
		if dest >= NUM_REGS {
			err = &ErrOperand{Operand: fmt.Sprint(dest), Err: ErrRegisterRange}
			return
		}
		if op == OP_ADD {
			cpu.Register[dest] = cpu.Register[reg_a] + cpu.Register[reg_b]
		} else {
			cpu.Register[dest] = ^(cpu.Register[reg_a] | cpu.Register[reg_b])
		}
	case OP_LW:
		var addr int
		addr, err = cpu.address(reg_a, field)
		if err != nil {
			return
		}
		cpu.Register[reg_b] = int32(cpu.Memory[addr])
	case OP_SW:
		var addr int
		addr, err = cpu.address(reg_a, field)
		if err != nil {
			return
		}
		cpu.Memory[addr] = Word(cpu.Register[reg_b])
	case OP_BEQ:
		if cpu.Register[reg_a] == cpu.Register[reg_b] {
			cpu.Pc += int(SignExtend16(field))
		}
	case OP_JALR:
		// Link first, so jalr with regA == regB jumps to the link address.
		cpu.Register[reg_b] = int32(cpu.Pc + 1)
		cpu.Pc = int(cpu.Register[reg_a])
	case OP_HALT:
		cpu.Halted = true
	case OP_NOOP:
	default:
		// Unreachable while the opcode field is 3 bits wide.
		err = ErrOpcode(word)
		return
	}

	cpu.Pc++
	cpu.Ticks++

	return
}

// String returns the current machine state as a state dump.
func (cpu *Cpu) String() string {
	var text strings.Builder

	fmt.Fprintf(&text, "\n@@@\nstate:\n")
	fmt.Fprintf(&text, "\tpc %d\n", cpu.Pc)
	fmt.Fprintf(&text, "\tmemory:\n")
	for n := range cpu.Loaded {
		fmt.Fprintf(&text, "\t\tmem[ %d ] %d\n", n, int32(cpu.Memory[n]))
	}
	fmt.Fprintf(&text, "\tregisters:\n")
	for n, reg := range cpu.Register {
		fmt.Fprintf(&text, "\t\treg[ %d ] %d\n", n, reg)
	}
	fmt.Fprintf(&text, "end state\n")

	return text.String()
}
