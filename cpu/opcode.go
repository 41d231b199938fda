// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

const (
	NUM_REGS   = 8      // Number of machine registers.
	OFFSET_MIN = -32768 // Smallest signed 16-bit offset.
	OFFSET_MAX = 32767  // Largest signed 16-bit offset.

	OPCODE_SHIFT = 22
	REG_A_SHIFT  = 19
	REG_B_SHIFT  = 16
	FIELD_MASK   = 0x7    // Mask of the opcode and register fields.
	OFFSET_MASK  = 0xffff // Mask of the offset field.
)

// Opcode is an instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode,CodeClass
const (
	OP_ADD  = Opcode(0) // add
	OP_NOR  = Opcode(1) // nor
	OP_LW   = Opcode(2) // lw
	OP_SW   = Opcode(3) // sw
	OP_BEQ  = Opcode(4) // beq
	OP_JALR = Opcode(5) // jalr
	OP_HALT = Opcode(6) // halt
	OP_NOOP = Opcode(7) // noop
	OP_FILL = Opcode(8) // .fill
)

// CodeClass is the encoding class of an opcode.
type CodeClass int

const (
	CLASS_R    = CodeClass(0) // register
	CLASS_I    = CodeClass(1) // immediate
	CLASS_J    = CodeClass(2) // jump
	CLASS_O    = CodeClass(3) // none
	CLASS_FILL = CodeClass(4) // literal
)

var opcodeMap = map[string]Opcode{
	"add":   OP_ADD,
	"nor":   OP_NOR,
	"lw":    OP_LW,
	"sw":    OP_SW,
	"beq":   OP_BEQ,
	"jalr":  OP_JALR,
	"halt":  OP_HALT,
	"noop":  OP_NOOP,
	".fill": OP_FILL,
}

// ParseOpcode converts a mnemonic to its opcode.
func ParseOpcode(mnemonic string) (op Opcode, err error) {
	op, ok := opcodeMap[mnemonic]
	if !ok {
		err = &ErrOperand{Operand: mnemonic, Err: ErrOpcodeUnknown}
	}
	return
}

// Class returns the encoding class of the opcode.
func (op Opcode) Class() CodeClass {
	switch op {
	case OP_ADD, OP_NOR:
		return CLASS_R
	case OP_LW, OP_SW, OP_BEQ:
		return CLASS_I
	case OP_JALR:
		return CLASS_J
	case OP_HALT, OP_NOOP:
		return CLASS_O
	default:
		return CLASS_FILL
	}
}

// Word is a single machine word.
type Word int32

// checkRegister verifies a register index.
func checkRegister(reg int) (err error) {
	if reg < 0 || reg >= NUM_REGS {
		err = &ErrOperand{Operand: fmt.Sprint(reg), Err: ErrRegisterRange}
	}
	return
}

// checkOffset verifies a signed 16-bit value.
func checkOffset(offset int) (err error) {
	if offset < OFFSET_MIN || offset > OFFSET_MAX {
		err = &ErrOperand{Operand: fmt.Sprint(offset), Err: ErrOffsetRange}
	}
	return
}

// makeRegs creates the opcode and register fields shared by all instructions.
func makeRegs(op Opcode, reg_a, reg_b int) (word Word, err error) {
	err = checkRegister(reg_a)
	if err != nil {
		return
	}
	err = checkRegister(reg_b)
	if err != nil {
		return
	}

	word = Word(int(op)<<OPCODE_SHIFT | reg_a<<REG_A_SHIFT | reg_b<<REG_B_SHIFT)
	return
}

// MakeWordR creates a register class (add, nor) instruction.
func MakeWordR(op Opcode, reg_a, reg_b, dest int) (word Word, err error) {
	if op.Class() != CLASS_R {
		err = &ErrOperand{Operand: op.String(), Err: ErrOpcodeUnknown}
		return
	}
	err = checkRegister(dest)
	if err != nil {
		return
	}
	word, err = makeRegs(op, reg_a, reg_b)
	if err != nil {
		return
	}
	word |= Word(dest)
	return
}

// MakeWordI creates an immediate class (lw, sw, beq) instruction.
// The offset is stored as 16-bit two's complement.
func MakeWordI(op Opcode, reg_a, reg_b, offset int) (word Word, err error) {
	if op.Class() != CLASS_I {
		err = &ErrOperand{Operand: op.String(), Err: ErrOpcodeUnknown}
		return
	}
	word, err = makeRegs(op, reg_a, reg_b)
	if err != nil {
		return
	}
	err = checkOffset(offset)
	if err != nil {
		return
	}
	word |= Word(offset & OFFSET_MASK)
	return
}

// MakeWordJ creates a jump class (jalr) instruction.
func MakeWordJ(op Opcode, reg_a, reg_b int) (word Word, err error) {
	if op.Class() != CLASS_J {
		err = &ErrOperand{Operand: op.String(), Err: ErrOpcodeUnknown}
		return
	}
	return makeRegs(op, reg_a, reg_b)
}

// MakeWordO creates an instruction without operands (halt, noop).
func MakeWordO(op Opcode) (word Word, err error) {
	if op.Class() != CLASS_O {
		err = &ErrOperand{Operand: op.String(), Err: ErrOpcodeUnknown}
		return
	}
	return Word(int(op) << OPCODE_SHIFT), nil
}

// MakeWordFill creates a data word.
func MakeWordFill(value int) (word Word, err error) {
	err = checkOffset(value)
	if err != nil {
		return
	}
	return Word(value), nil
}

// SignExtend16 converts a 16-bit two's complement field to a signed value.
func SignExtend16(field uint16) int32 {
	value := int32(field)
	if value&(1<<15) != 0 {
		value -= 1 << 16
	}
	return value
}

// Opcode returns bits 24-22 of the word.
func (word Word) Opcode() Opcode {
	return Opcode((word >> OPCODE_SHIFT) & FIELD_MASK)
}

// Decode returns the opcode, both register fields and the raw low 16 bits.
func (word Word) Decode() (op Opcode, reg_a, reg_b int, field uint16) {
	op = word.Opcode()
	reg_a = int((word >> REG_A_SHIFT) & FIELD_MASK)
	reg_b = int((word >> REG_B_SHIFT) & FIELD_MASK)
	field = uint16(word & OFFSET_MASK)
	return
}

// Offset returns the sign extended offset field.
func (word Word) Offset() int32 {
	_, _, _, field := word.Decode()
	return SignExtend16(field)
}

// String returns the assembly language representation of the word.
func (word Word) String() (out string) {
	op, reg_a, reg_b, field := word.Decode()

	switch op.Class() {
	case CLASS_R:
		out = fmt.Sprintf("%v %d %d %d", op, reg_a, reg_b, field&FIELD_MASK)
	case CLASS_I:
		out = fmt.Sprintf("%v %d %d %d", op, reg_a, reg_b, SignExtend16(field))
	case CLASS_J:
		out = fmt.Sprintf("%v %d %d", op, reg_a, reg_b)
	default:
		out = op.String()
	}

	return
}
