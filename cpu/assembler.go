// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"io"
	"log"
)

// Assembler is a two pass assembler for the LC-2K system.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Label   LabelTable // Map of labels to addresses.
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// Assemble encodes already split lines into a Program.
func (asm *Assembler) Assemble(lines []Line) (prog *Program, err error) {
	var line *Line

	defer func() {
		if err != nil && line != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
		}
	}()

	asm.Label.Reset()

	// Pass 1: every line takes one address.
	for address := range lines {
		line = &lines[address]
		if len(line.Label) == 0 {
			continue
		}
		err = asm.Label.Define(line.Label, address)
		if err != nil {
			return
		}
	}

	if asm.Verbose {
		for label, address := range asm.Label.All() {
			log.Printf("%v = %v\n", label, address)
		}
	}

	// Pass 2: encode against the completed label table.
	prog = &Program{
		Statements: make([]Statement, 0, len(lines)),
	}

	for address := range lines {
		line = &lines[address]

		var stmt Statement
		stmt, err = asm.encode(line, address)
		if err != nil {
			prog = nil
			return
		}

		if asm.Verbose {
			log.Printf("(address %d): %d (hex 0x%x)\n", address, stmt.Word, uint32(stmt.Word))
		}

		prog.Statements = append(prog.Statements, stmt)
	}

	line = nil

	return
}

// encode converts a single line at an address into a statement.
func (asm *Assembler) encode(line *Line, address int) (stmt Statement, err error) {
	stmt = Statement{
		LineNo:  line.LineNo,
		Address: address,
		Line:    line.Text,
		Opcode:  OP_NOOP,
	}

	// Blank, comment and label-only lines keep their address as a noop.
	if line.Empty() {
		stmt.Word, err = MakeWordO(OP_NOOP)
		return
	}

	op, err := ParseOpcode(line.Opcode)
	if err != nil {
		return
	}
	stmt.Opcode = op

	switch op.Class() {
	case CLASS_R:
		var reg_a, reg_b, dest int
		reg_a, reg_b, err = asm.registers(line)
		if err != nil {
			return
		}
		dest, err = parseRegister(line.Args[2])
		if err != nil {
			return
		}
		stmt.Word, err = MakeWordR(op, reg_a, reg_b, dest)
	case CLASS_I:
		var reg_a, reg_b, offset int
		reg_a, reg_b, err = asm.registers(line)
		if err != nil {
			return
		}
		offset, err = asm.offset(line.Args[2], op == OP_BEQ, address)
		if err != nil {
			return
		}
		stmt.Word, err = MakeWordI(op, reg_a, reg_b, offset)
	case CLASS_J:
		var reg_a, reg_b int
		reg_a, reg_b, err = asm.registers(line)
		if err != nil {
			return
		}
		stmt.Word, err = MakeWordJ(op, reg_a, reg_b)
	case CLASS_O:
		stmt.Word, err = MakeWordO(op)
	case CLASS_FILL:
		var value int
		value, err = asm.offset(line.Args[0], false, address)
		if err != nil {
			return
		}
		stmt.Word, err = MakeWordFill(value)
	}

	return
}

// registers parses the regA and regB operands.
func (asm *Assembler) registers(line *Line) (reg_a, reg_b int, err error) {
	reg_a, err = parseRegister(line.Args[0])
	if err != nil {
		return
	}
	reg_b, err = parseRegister(line.Args[1])
	return
}

// offset resolves an offset or value operand. Labels used as branch
// targets become displacements from the instruction after address.
func (asm *Assembler) offset(text string, relative bool, address int) (value int, err error) {
	operand, err := ParseOperand(text)
	if err != nil {
		return
	}

	value, err = operand.Resolve(&asm.Label)
	if err != nil {
		return
	}

	if _, ok := operand.(Symbol); ok && relative {
		value = value - address - 1
	}

	return
}
