// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"strconv"
)

// Operand is an offset or value field: either a Literal or a Symbol.
type Operand interface {
	// Resolve returns the value of the operand.
	Resolve(labels *LabelTable) (value int, err error)
	String() string
}

// Literal is a decimal value given in the source text.
type Literal int

// Symbol is a label reference.
type Symbol string

// ParseOperand classifies operand text as a literal or a symbol.
func ParseOperand(text string) (operand Operand, err error) {
	value, err := strconv.ParseInt(text, 10, 64)
	switch {
	case err == nil:
		if value < OFFSET_MIN || value > OFFSET_MAX {
			err = &ErrOperand{Operand: text, Err: ErrOffsetRange}
			return
		}
		operand = Literal(value)
	case errors.Is(err, strconv.ErrRange):
		err = &ErrOperand{Operand: text, Err: ErrOffsetRange}
	default:
		err = nil
		operand = Symbol(text)
	}
	return
}

func (lit Literal) Resolve(labels *LabelTable) (value int, err error) {
	return int(lit), nil
}

func (lit Literal) String() string {
	return strconv.Itoa(int(lit))
}

func (sym Symbol) Resolve(labels *LabelTable) (value int, err error) {
	return labels.Resolve(string(sym))
}

func (sym Symbol) String() string {
	return string(sym)
}

// parseRegister converts register operand text to a register index.
func parseRegister(text string) (reg int, err error) {
	reg, err = strconv.Atoi(text)
	if err != nil {
		err = &ErrOperand{Operand: text, Err: ErrRegisterRange}
		return
	}
	err = checkRegister(reg)
	return
}
