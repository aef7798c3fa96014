package intcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FUZZ_STEP_LIMIT bounds fuzzed programs that loop forever.
const FUZZ_STEP_LIMIT = 256

func FuzzEngine(f *testing.F) {
	f.Add(int64(1), int64(0), int64(0), int64(0), int64(99), int64(0))
	f.Add(int64(3), int64(0), int64(4), int64(0), int64(99), int64(145))
	f.Add(int64(1105), int64(1), int64(0), int64(99), int64(0), int64(0))
	f.Add(int64(1108), int64(-1), int64(-1), int64(0), int64(4), int64(8))
	f.Add(int64(42), int64(0), int64(0), int64(0), int64(0), int64(0))
	f.Add(int64(20001), int64(0), int64(0), int64(0), int64(99), int64(0))

	f.Fuzz(func(t *testing.T, w0, w1, w2, w3, w4 int64, input int64) {
		assert := assert.New(t)

		image := []int64{w0, w1, w2, w3, w4, 99, 0, 0}
		eng := Load(image)
		eng.Write(input)

		var state State
		var err error
		for range FUZZ_STEP_LIMIT {
			state, err = eng.Step()
			if err != nil || state != STATE_RUNNING {
				break
			}
		}

		assert.Equal(len(image), eng.Len(), "memory never resizes")

		if err != nil {
			var fault *ErrFault
			assert.ErrorAs(err, &fault)
			known := errors.Is(err, ErrUnknownOpcode) ||
				errors.Is(err, ErrUnknownMode) ||
				errors.Is(err, ErrOutOfBounds) ||
				errors.Is(err, ErrMissingDestination)
			assert.True(known, "%v", err)
			return
		}

		switch state {
		case STATE_BLOCKED:
			inst, ferr := eng.Fetch()
			assert.NoError(ferr)
			assert.Equal(OP_IN, inst.Opcode, "blocked only on input")
			assert.True(eng.Input().Empty())
		case STATE_HALTED:
			inst, ferr := eng.Fetch()
			assert.NoError(ferr)
			assert.Equal(OP_HALT, inst.Opcode)
		case STATE_RUNNING:
			assert.True(eng.Ip() >= 0 && eng.Ip() <= eng.Len())
		default:
			t.Fatalf("unexpected state %v", state)
		}
	})
}
