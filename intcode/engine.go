package intcode

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog"

	"github.com/ezrec/intcode/io"
)

// State is the execution state of an engine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_BLOCKED = State(1) // blocked
	STATE_HALTED  = State(2) // halted
)

// Engine is one independently owned intcode machine.
// Memory, instruction pointer and queues are never shared between engines.
type Engine struct {
	Logger zerolog.Logger // Trace level logs every instruction.

	Ticks int // Instructions retired since load.

	memory Memory
	ip     int
	state  State
	fault  error

	input  io.Queue
	output io.Queue
}

// Load creates an engine that owns a copy of image as its memory.
func Load(image []int64) (eng *Engine) {
	eng = &Engine{
		Logger: zerolog.Nop(),
		memory: Memory(image).Clone(),
	}

	return
}

// Clone returns an engine with a deep copy of all of this engine's state.
func (eng *Engine) Clone() (clone *Engine) {
	clone = &Engine{
		Logger: eng.Logger,
		Ticks:  eng.Ticks,
		memory: eng.memory.Clone(),
		ip:     eng.ip,
		state:  eng.state,
		fault:  eng.fault,
		input:  eng.input.Clone(),
		output: eng.output.Clone(),
	}

	return
}

// Write appends a value to the input queue.
func (eng *Engine) Write(value int64) {
	eng.input.Send(value)
}

// Read removes and returns the head of the output queue.
func (eng *Engine) Read() (value int64, ok bool) {
	return eng.output.Pop()
}

// Outputs returns an iterator draining the output queue.
func (eng *Engine) Outputs() iter.Seq[int64] {
	return eng.output.Receive()
}

// Input returns the input queue.
func (eng *Engine) Input() *io.Queue {
	return &eng.input
}

// Output returns the output queue.
func (eng *Engine) Output() *io.Queue {
	return &eng.output
}

// Ip returns the instruction pointer.
func (eng *Engine) Ip() int {
	return eng.ip
}

// State returns the state left by the last Execute or Step.
func (eng *Engine) State() State {
	return eng.state
}

// Err returns the fault that stopped the engine, if any.
func (eng *Engine) Err() error {
	return eng.fault
}

// Len returns the size of memory in words.
func (eng *Engine) Len() int {
	return len(eng.memory)
}

// Memory returns a copy of the current memory contents.
func (eng *Engine) Memory() Memory {
	return eng.memory.Clone()
}

// Peek reads a memory word.
func (eng *Engine) Peek(addr int) (value int64, err error) {
	return eng.memory.Load(int64(addr))
}

// Poke writes a memory word.
func (eng *Engine) Poke(addr int, value int64) (err error) {
	return eng.memory.Store(int64(addr), value)
}

// String returns the engine state as a string.
func (eng *Engine) String() string {
	word := "----"
	if w, err := eng.memory.Load(int64(eng.ip)); err == nil {
		word = fmt.Sprintf("%v (%v)", w, Decode(w))
	}
	return fmt.Sprintf("state: %v\n   ip: %d\n word: %v\n   in: %v\n  out: %v\n",
		eng.state, eng.ip, word, eng.input.Values(), eng.output.Values())
}

// Fetch decodes the instruction at the instruction pointer.
func (eng *Engine) Fetch() (inst Instruction, err error) {
	word, err := eng.memory.Load(int64(eng.ip))
	if err != nil {
		return
	}

	inst = Decode(word)
	return
}

// operands resolves the parameters of an instruction.
// PARAM_VALUE parameters are read through their mode, PARAM_DEST parameters
// are taken as absolute addresses whatever their mode digit says.
func (eng *Engine) operands(inst Instruction, params []Param) (args []int64, err error) {
	args = make([]int64, len(params))
	for n, param := range params {
		var raw int64
		raw, err = eng.memory.Load(int64(eng.ip + 1 + n))
		if err != nil {
			return
		}

		mode := inst.Modes[n]
		switch param {
		case PARAM_DEST:
			if !mode.Valid() {
				err = ErrMissingDestination
				return
			}
			if !eng.memory.Valid(raw) {
				err = ErrAddress(raw)
				return
			}
			args[n] = raw
		case PARAM_VALUE:
			switch mode {
			case MODE_IMMEDIATE:
				args[n] = raw
			case MODE_POSITION:
				args[n], err = eng.memory.Load(raw)
				if err != nil {
					return
				}
			default:
				err = ErrUnknownMode
				return
			}
		}
	}

	return
}

// Step executes a single instruction.
// A faulted engine keeps returning its fault; a halted engine stays halted.
func (eng *Engine) Step() (state State, err error) {
	if eng.fault != nil {
		return eng.state, eng.fault
	}

	if eng.state == STATE_HALTED {
		return STATE_HALTED, nil
	}

	eng.state = STATE_RUNNING

	inst, err := eng.Fetch()
	defer func() {
		if err != nil {
			err = &ErrFault{Ip: eng.ip, Word: inst.Word, Err: err}
			eng.fault = err
			eng.Logger.Debug().Err(err).Msg("fault")
		}
		state = eng.state
	}()
	if err != nil {
		return
	}

	oper, ok := _operations[inst.Opcode]
	if !ok {
		err = ErrUnknownOpcode
		return
	}

	args, err := eng.operands(inst, oper.params)
	if err != nil {
		return
	}

	eng.Logger.Trace().Int("ip", eng.ip).Stringer("inst", inst).Ints64("args", args).Msg("step")

	eff, target := oper.exec(eng, args)
	switch eff {
	case effectNext:
		eng.ip += 1 + len(oper.params)
	case effectJump:
		// A jump to the end of memory faults on the next fetch.
		if target < 0 || target > int64(len(eng.memory)) {
			err = ErrAddress(target)
			return
		}
		eng.ip = int(target)
	case effectBlock:
		eng.state = STATE_BLOCKED
		return
	case effectHalt:
		eng.state = STATE_HALTED
	}

	eng.Ticks++

	return
}

// Execute runs instructions from the instruction pointer until the program
// halts, blocks waiting for input, or faults. It never returns STATE_RUNNING
// without an error.
func (eng *Engine) Execute() (state State, err error) {
	for {
		state, err = eng.Step()
		if err != nil || state != STATE_RUNNING {
			break
		}
	}

	if err == nil {
		eng.Logger.Debug().Int("ip", eng.ip).Stringer("state", state).Int("ticks", eng.Ticks).Msg("execute")
	}

	return
}
