package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	P := MODE_POSITION
	I := MODE_IMMEDIATE

	table := []struct {
		word   int64
		opcode Opcode
		modes  [MODE_PARAMS]Mode
	}{
		{1002, OP_MUL, [3]Mode{P, I, P}},
		{1, OP_ADD, [3]Mode{P, P, P}},
		{99, OP_HALT, [3]Mode{P, P, P}},
		{1101, OP_ADD, [3]Mode{I, I, P}},
		{1108, OP_EQ, [3]Mode{I, I, P}},
		{10004, OP_OUT, [3]Mode{P, P, I}},
		{105, OP_JT, [3]Mode{I, P, P}},
		{11107, OP_LT, [3]Mode{I, I, I}},
		{204, OP_OUT, [3]Mode{Mode(2), P, P}},
	}

	for _, entry := range table {
		inst := Decode(entry.word)
		assert.Equal(entry.word, inst.Word)
		assert.Equal(entry.opcode, inst.Opcode, "word %d", entry.word)
		assert.Equal(entry.modes, inst.Modes, "word %d", entry.word)
	}
}

func TestDecode_Unknown(t *testing.T) {
	assert := assert.New(t)

	inst := Decode(42)
	assert.Equal(Opcode(42), inst.Opcode)
	assert.False(inst.Opcode.Valid())
	assert.Equal(0, inst.Opcode.Width())
	assert.Nil(inst.Opcode.Params())

	inst = Decode(-1)
	assert.False(inst.Opcode.Valid())
}

func TestOpcode_Width(t *testing.T) {
	assert := assert.New(t)

	widths := map[Opcode]int{
		OP_ADD:  4,
		OP_MUL:  4,
		OP_IN:   2,
		OP_OUT:  2,
		OP_JT:   3,
		OP_JF:   3,
		OP_LT:   4,
		OP_EQ:   4,
		OP_HALT: 1,
	}

	for op, width := range widths {
		assert.True(op.Valid(), op.String())
		assert.Equal(width, op.Width(), op.String())
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("mul.position.immediate.position", Decode(1002).String())
	assert.Equal("out.immediate", Decode(104).String())
	assert.Equal("halt", Decode(99).String())
	assert.Equal("Opcode(42)", Decode(42).String())
	assert.Equal("Mode(7)", Mode(7).String())
	assert.Equal("blocked", STATE_BLOCKED.String())
	assert.Equal("State(9)", State(9).String())
}

func TestMode_Names(t *testing.T) {
	assert := assert.New(t)

	table := map[Mode]string{
		MODE_POSITION:  "position",
		MODE_IMMEDIATE: "immediate",
		Mode(-1):       "Mode(-1)",
		Mode(2):        "Mode(2)",
	}

	for mode, name := range table {
		assert.Equal(name, mode.String())
		assert.Equal(mode == MODE_POSITION || mode == MODE_IMMEDIATE, mode.Valid(), name)
	}

	states := map[State]string{
		STATE_RUNNING: "running",
		STATE_BLOCKED: "blocked",
		STATE_HALTED:  "halted",
		State(-1):     "State(-1)",
		State(3):      "State(3)",
	}

	for state, name := range states {
		assert.Equal(name, state.String())
	}
}
