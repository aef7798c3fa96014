package intcode

import (
	"fmt"
)

// Opcode is the operation selector held in the low two decimal digits of
// an instruction word.
type Opcode int

const (
	OP_ADD    = Opcode(1)  // add
	OP_MUL    = Opcode(2)  // mul
	OP_IN     = Opcode(3)  // in
	OP_OUT    = Opcode(4)  // out
	OP_JT     = Opcode(5)  // jt
	OP_JF     = Opcode(6)  // jf
	OP_LT     = Opcode(7)  // lt
	OP_EQ     = Opcode(8)  // eq
	OP_HALT   = Opcode(99) // halt
	OP_MODULO = 100        // Divisor separating opcode from mode digits.
)

// Mode is a per-parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
)

// MODE_PARAMS is the number of mode digits decoded from every word.
const MODE_PARAMS = 3

// Valid returns true for the supported addressing modes.
func (mode Mode) Valid() bool {
	return mode == MODE_POSITION || mode == MODE_IMMEDIATE
}

// Param is the role of an instruction parameter.
type Param int

const (
	PARAM_VALUE = Param(0) // Read through the addressing mode.
	PARAM_DEST  = Param(1) // Absolute write address.
)

// effect is the control flow outcome of executing an instruction.
type effect int

const (
	effectNext  effect = iota // Advance past the instruction.
	effectJump                // Set ip to the returned target.
	effectBlock               // Stay on the instruction; input needed.
	effectHalt                // Stop the program.
)

// operation is one entry of the instruction table. The exec function
// receives resolved values for PARAM_VALUE and addresses for PARAM_DEST;
// destination addresses are already validated against memory.
type operation struct {
	name   string
	params []Param
	exec   func(eng *Engine, args []int64) (eff effect, target int64)
}

func boolWord(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

var _value_value_dest = []Param{PARAM_VALUE, PARAM_VALUE, PARAM_DEST}

var _operations = map[Opcode]*operation{
	OP_ADD: {"add", _value_value_dest, func(eng *Engine, args []int64) (effect, int64) {
		eng.memory[args[2]] = args[0] + args[1]
		return effectNext, 0
	}},
	OP_MUL: {"mul", _value_value_dest, func(eng *Engine, args []int64) (effect, int64) {
		eng.memory[args[2]] = args[0] * args[1]
		return effectNext, 0
	}},
	OP_IN: {"in", []Param{PARAM_DEST}, func(eng *Engine, args []int64) (effect, int64) {
		value, ok := eng.input.Pop()
		if !ok {
			return effectBlock, 0
		}
		eng.memory[args[0]] = value
		return effectNext, 0
	}},
	OP_OUT: {"out", []Param{PARAM_VALUE}, func(eng *Engine, args []int64) (effect, int64) {
		eng.output.Send(args[0])
		return effectNext, 0
	}},
	OP_JT: {"jt", []Param{PARAM_VALUE, PARAM_VALUE}, func(eng *Engine, args []int64) (effect, int64) {
		if args[0] != 0 {
			return effectJump, args[1]
		}
		return effectNext, 0
	}},
	OP_JF: {"jf", []Param{PARAM_VALUE, PARAM_VALUE}, func(eng *Engine, args []int64) (effect, int64) {
		if args[0] == 0 {
			return effectJump, args[1]
		}
		return effectNext, 0
	}},
	OP_LT: {"lt", _value_value_dest, func(eng *Engine, args []int64) (effect, int64) {
		eng.memory[args[2]] = boolWord(args[0] < args[1])
		return effectNext, 0
	}},
	OP_EQ: {"eq", _value_value_dest, func(eng *Engine, args []int64) (effect, int64) {
		eng.memory[args[2]] = boolWord(args[0] == args[1])
		return effectNext, 0
	}},
	OP_HALT: {"halt", nil, func(eng *Engine, args []int64) (effect, int64) {
		return effectHalt, 0
	}},
}

func (op Opcode) String() string {
	oper, ok := _operations[op]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return oper.name
}

// Valid returns true if the opcode is in the instruction set.
func (op Opcode) Valid() bool {
	_, ok := _operations[op]
	return ok
}

// Params returns the parameter roles of the opcode, or nil if it is unknown.
func (op Opcode) Params() []Param {
	oper, ok := _operations[op]
	if !ok {
		return nil
	}
	return oper.params
}

// Width returns the number of words the instruction occupies,
// or 0 if the opcode is unknown.
func (op Opcode) Width() int {
	oper, ok := _operations[op]
	if !ok {
		return 0
	}
	return 1 + len(oper.params)
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Word   int64
	Opcode Opcode
	Modes  [MODE_PARAMS]Mode
}

// Decode splits an instruction word into its opcode and parameter modes.
// Missing mode digits decode as MODE_POSITION.
func Decode(word int64) (inst Instruction) {
	inst.Word = word
	inst.Opcode = Opcode(word % OP_MODULO)

	digits := word / OP_MODULO
	for n := range inst.Modes {
		inst.Modes[n] = Mode(digits % 10)
		digits /= 10
	}

	return
}

// String returns the mnemonic and the modes of the parameters the opcode uses.
func (inst Instruction) String() (out string) {
	out = inst.Opcode.String()
	for n := range inst.Opcode.Params() {
		out += "." + inst.Modes[n].String()
	}
	return
}
