// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the machine and the assembler for the LC-2K system.
//
// The machine consists of a program counter, eight 32-bit general-purpose
// registers (r0-r7, all writable) and a flat word-addressed memory. Each
// instruction is a single 32-bit word; bits 24-22 hold one of eight opcodes.
//
// The assembler is a two pass assembler. The first pass binds every label to
// the address of its line, the second pass encodes each line into a word, so
// forward references to labels are permitted.
package cpu
