package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOpcode(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Opcode{OP_ADD, OP_NOR, OP_LW, OP_SW, OP_BEQ, OP_JALR, OP_HALT, OP_NOOP, OP_FILL} {
		parsed, err := ParseOpcode(op.String())
		assert.NoError(err, op.String())
		assert.Equal(op, parsed)
	}

	_, err := ParseOpcode("ADD")
	assert.ErrorIs(err, ErrOpcodeUnknown)
	_, err = ParseOpcode("")
	assert.ErrorIs(err, ErrOpcodeUnknown)
}

func TestOpcodeClass(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(CLASS_R, OP_ADD.Class())
	assert.Equal(CLASS_R, OP_NOR.Class())
	assert.Equal(CLASS_I, OP_LW.Class())
	assert.Equal(CLASS_I, OP_SW.Class())
	assert.Equal(CLASS_I, OP_BEQ.Class())
	assert.Equal(CLASS_J, OP_JALR.Class())
	assert.Equal(CLASS_O, OP_HALT.Class())
	assert.Equal(CLASS_O, OP_NOOP.Class())
	assert.Equal(CLASS_FILL, OP_FILL.Class())
	assert.Equal("immediate", CLASS_I.String())
}

func TestMakeWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		make func() (Word, error)
		word Word
	}){
		{"add 0 1 2", func() (Word, error) { return MakeWordR(OP_ADD, 0, 1, 2) }, 65538},
		{"nor 1 2 3", func() (Word, error) { return MakeWordR(OP_NOR, 1, 2, 3) }, 4849667},
		{"lw 0 1 5", func() (Word, error) { return MakeWordI(OP_LW, 0, 1, 5) }, 8454149},
		{"sw 7 7 -1", func() (Word, error) { return MakeWordI(OP_SW, 7, 7, -1) }, 16777215},
		{"beq 0 1 0", func() (Word, error) { return MakeWordI(OP_BEQ, 0, 1, 0) }, 16842752},
		{"beq 0 0 -3", func() (Word, error) { return MakeWordI(OP_BEQ, 0, 0, -3) }, 16842749},
		{"jalr 4 7", func() (Word, error) { return MakeWordJ(OP_JALR, 4, 7) }, 23527424},
		{"halt", func() (Word, error) { return MakeWordO(OP_HALT) }, 25165824},
		{"noop", func() (Word, error) { return MakeWordO(OP_NOOP) }, 29360128},
		{".fill -1", func() (Word, error) { return MakeWordFill(-1) }, -1},
	}

	for _, entry := range table {
		word, err := entry.make()
		assert.NoError(err, entry.name)
		assert.Equal(entry.word, word, entry.name)
	}
}

func TestMakeWordClass(t *testing.T) {
	assert := assert.New(t)

	_, err := MakeWordR(OP_LW, 0, 0, 0)
	assert.ErrorIs(err, ErrOpcodeUnknown)
	_, err = MakeWordI(OP_ADD, 0, 0, 0)
	assert.ErrorIs(err, ErrOpcodeUnknown)
	_, err = MakeWordJ(OP_HALT, 0, 0)
	assert.ErrorIs(err, ErrOpcodeUnknown)
	_, err = MakeWordO(OP_JALR)
	assert.ErrorIs(err, ErrOpcodeUnknown)
}

func TestMakeWordRegisterRange(t *testing.T) {
	assert := assert.New(t)

	for reg := -2; reg <= 9; reg++ {
		valid := reg >= 0 && reg <= 7

		_, err := MakeWordR(OP_ADD, reg, 0, 0)
		assert.Equal(valid, err == nil, "regA %d", reg)
		_, err = MakeWordR(OP_ADD, 0, reg, 0)
		assert.Equal(valid, err == nil, "regB %d", reg)
		_, err = MakeWordR(OP_NOR, 0, 0, reg)
		assert.Equal(valid, err == nil, "dest %d", reg)
		_, err = MakeWordI(OP_LW, reg, 0, 0)
		assert.Equal(valid, err == nil, "lw %d", reg)
		_, err = MakeWordJ(OP_JALR, 0, reg)
		if !valid {
			assert.ErrorIs(err, ErrRegisterRange, "jalr %d", reg)
		}
	}
}

func TestMakeWordOffsetRange(t *testing.T) {
	assert := assert.New(t)

	for _, offset := range []int{-100000, -32769, -32768, -1, 0, 1, 32767, 32768, 100000} {
		valid := offset >= -32768 && offset <= 32767

		_, err := MakeWordI(OP_BEQ, 0, 0, offset)
		assert.Equal(valid, err == nil, "offset %d", offset)
		_, err = MakeWordFill(offset)
		assert.Equal(valid, err == nil, "fill %d", offset)
		if !valid {
			assert.ErrorIs(err, ErrOffsetRange)
		}
	}
}

func TestSignExtend16(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int32(0), SignExtend16(0))
	assert.Equal(int32(32767), SignExtend16(0x7fff))
	assert.Equal(int32(-32768), SignExtend16(0x8000))
	assert.Equal(int32(-3), SignExtend16(0xfffd))
	assert.Equal(int32(-1), SignExtend16(0xffff))
}

func TestWordDecode(t *testing.T) {
	assert := assert.New(t)

	word, err := MakeWordI(OP_SW, 5, 6, -300)
	assert.NoError(err)

	op, reg_a, reg_b, field := word.Decode()
	assert.Equal(OP_SW, op)
	assert.Equal(5, reg_a)
	assert.Equal(6, reg_b)
	assert.Equal(uint16(0xfed4), field)
	assert.Equal(int32(-300), word.Offset())

	// Unused bits are zero.
	word, err = MakeWordJ(OP_JALR, 7, 7)
	assert.NoError(err)
	assert.Equal(Word(0), word&0xffff)
	assert.Equal(Word(0), word & ^Word(0x1ffffff))
}

func TestWordString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add 0 1 2", Word(65538).String())
	assert.Equal("beq 0 0 -3", Word(16842749).String())
	assert.Equal("jalr 4 7", Word(23527424).String())
	assert.Equal("halt", Word(25165824).String())
	assert.Equal("noop", Word(29360128).String())
}
