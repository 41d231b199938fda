// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lc2k/cpu"
)

// memory exposes the machine memory to expressions as an indexable value.
type memory struct {
	words []cpu.Word
}

var _ starlark.Indexable = (*memory)(nil)

func (mem *memory) String() string        { return fmt.Sprintf("memory(%d)", len(mem.words)) }
func (mem *memory) Type() string          { return "memory" }
func (mem *memory) Freeze()               {}
func (mem *memory) Truth() starlark.Bool  { return len(mem.words) > 0 }
func (mem *memory) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: memory") }
func (mem *memory) Len() int              { return len(mem.words) }

func (mem *memory) Index(i int) starlark.Value {
	return starlark.MakeInt(int(int32(mem.words[i])))
}

// Check evaluates a boolean expression against the machine state.
//
// The expression may refer to:
//   - pc: the program counter
//   - reg: the eight registers
//   - mem: the full memory
//   - loaded: the number of loaded words
//   - count: the number of instructions executed
//   - halted: whether the machine has halted
func (emu *Emulator) Check(expr string) (ok bool, err error) {
	thread := starlark.Thread{Name: "check"}
	opts := syntax.FileOptions{}

	regs := make(starlark.Tuple, 0, cpu.NUM_REGS)
	for _, reg := range emu.Cpu.Register {
		regs = append(regs, starlark.MakeInt(int(reg)))
	}

	pred := starlark.StringDict{
		"pc":     starlark.MakeInt(emu.Cpu.Pc),
		"reg":    regs,
		"mem":    &memory{words: emu.Cpu.Memory},
		"loaded": starlark.MakeInt(emu.Cpu.Loaded),
		"count":  starlark.MakeInt(emu.Cpu.Ticks),
		"halted": starlark.Bool(emu.Cpu.Halted),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expect", prog, pred)
	if err != nil {
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = ErrExpect(expr)
		return
	}

	ok = bool(rc.Truth())
	return
}

// Expect checks each expression, returning the first that does not hold.
func (emu *Emulator) Expect(exprs ...string) (err error) {
	for _, expr := range exprs {
		var ok bool
		ok, err = emu.Check(expr)
		if err != nil {
			return
		}
		if !ok {
			err = ErrExpect(expr)
			return
		}
	}

	return
}
