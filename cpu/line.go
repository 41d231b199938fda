// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	MAX_LINE_LENGTH = 1000 // Maximum line length, including the newline.
)

// Line is a single line of assembly text split into its fields.
type Line struct {
	LineNo int       // Line number, starting at 1.
	Text   string    // Original line text.
	Label  string    // Label, empty if the line begins with whitespace.
	Opcode string    // Opcode mnemonic, empty for blank or label-only lines.
	Args   [3]string // Operand fields.
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// ParseLine splits a line of text into label, opcode and operands.
// Anything past the third operand is a comment.
func ParseLine(text string) (line Line) {
	line.Text = text

	words := strings.FieldsFunc(text, isSpace)
	if len(text) > 0 && !isSpace(rune(text[0])) {
		line.Label = words[0]
		words = words[1:]
	}

	if len(words) > 0 {
		line.Opcode = words[0]
		words = words[1:]
	}

	copy(line.Args[:], words)

	return
}

// Empty returns true if the line holds no instruction.
func (line *Line) Empty() bool {
	return len(line.Opcode) == 0
}

// ReadLines reads and splits all lines of assembly text.
func ReadLines(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if len(text) >= MAX_LINE_LENGTH {
			err = &ErrSyntax{LineNo: lineno, Line: text[:32], Err: ErrLineTooLong}
			return
		}

		line := ParseLine(text)
		line.LineNo = lineno
		lines = append(lines, line)
	}

	err = scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		err = &ErrSyntax{LineNo: lineno + 1, Err: ErrLineTooLong}
	}

	return
}
