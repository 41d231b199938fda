// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Statement is a line of assembled code with its source location.
type Statement struct {
	LineNo  int
	Address int
	Line    string
	Opcode  Opcode
	Word    Word
}

// Program is an assembled program in address order.
type Program struct {
	Statements []Statement
}

// Debug returns the statement assembled at an address, or nil.
// Statements are stored in address order, one per address.
func (prog *Program) Debug(address int) (stmt *Statement) {
	if address < 0 || address >= len(prog.Statements) {
		return
	}

	stmt = &prog.Statements[address]
	if stmt.Address != address {
		stmt = nil
	}

	return
}

// Binary returns the machine words of the program.
func (prog *Program) Binary() (words []Word) {
	for _, word := range prog.Words() {
		words = append(words, word)
	}

	return
}

// Words iterates over the address and word of each statement.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(address int, word Word) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.Word) {
				return
			}
		}
	}
}

// WriteTo writes the program as machine code, one decimal word per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for _, word := range prog.Words() {
		var count int
		count, err = fmt.Fprintf(bw, "%d\n", int32(word))
		n += int64(count)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

// ReadWords reads machine code, one decimal word per line.
func ReadWords(input io.Reader) (words []Word, err error) {
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		var value int64
		value, err = strconv.ParseInt(text, 10, 32)
		if err != nil {
			err = &ErrParseWord{Address: len(words), Text: text}
			return
		}
		words = append(words, Word(value))
	}

	err = scanner.Err()
	return
}
