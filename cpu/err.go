// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/lc2k/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcRange            = errors.New(f("program counter out of range"))
	ErrMemoryRange        = errors.New(f("memory address out of range"))
	ErrMemoryFull         = errors.New(f("program exceeds memory"))
	ErrOpcodeUnrecognized = errors.New(f("unrecognized opcode"))

	// Assembler errors
	ErrLabelDuplicate = errors.New(f("duplicated definition of label"))
	ErrLabelInvalid   = errors.New(f("label invalid"))
	ErrRegisterRange  = errors.New(f("outside of the register range"))
	ErrOffsetRange    = errors.New(f("offset out of range"))
	ErrOpcodeUnknown  = errors.New(f("unknown opcode"))
	ErrLineTooLong    = errors.New(f("line too long"))
	ErrMachineCode    = errors.New(f("malformed machine code"))
)

// ErrLabelMissing is returned when a label is used but never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v undefined", string(el))
}

// ErrLabel describes why a label name was rejected.
type ErrLabel struct {
	Label string
	Err   error
}

func (err *ErrLabel) Error() string {
	return f("label '%v' %v", err.Label, err.Err)
}

func (err *ErrLabel) Unwrap() error {
	return err.Err
}

// ErrOperand reports the operand text that failed to encode.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err *ErrOperand) Error() string {
	return f("'%v' %v", err.Operand, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrOpcode is an opcode field that the machine cannot execute.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("unrecognized opcode %d in word %d", Word(eo).Opcode(), int32(eo))
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeUnrecognized
}

// ErrAddress is a memory access outside of the machine memory.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of range", int(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrMemoryRange
}

// ErrSyntax locates an assembly error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseWord is a machine code line that is not a decimal word.
type ErrParseWord struct {
	Address int
	Text    string
}

func (err *ErrParseWord) Error() string {
	return f("error in reading address %d: '%v'", err.Address, err.Text)
}

func (err *ErrParseWord) Unwrap() error {
	return ErrMachineCode
}
