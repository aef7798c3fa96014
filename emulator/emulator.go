// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs a single intcode engine against a tape.
package emulator

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
)

// Emulator state. Engine + queued inputs + tape.
type Emulator struct {
	*intcode.Engine // Reference to the engine.

	Logger zerolog.Logger

	Inputs io.Queue // Values supplied before any tape input.
	Tape   io.Tape  // Tape IO channel.
}

// NewEmulator creates a new emulator running a copy of image.
func NewEmulator(image []int64) (emu *Emulator) {
	emu = &Emulator{
		Engine: intcode.Load(image),
		Logger: zerolog.Nop(),
	}

	return
}

// SetLogger sets the logger of the emulator and its engine.
func (emu *Emulator) SetLogger(logger zerolog.Logger) {
	emu.Logger = logger
	emu.Engine.Logger = logger
}

// Tick resumes the engine once. Output is moved to the tape, even when
// the engine faults, and when the engine blocks a single input value is
// supplied from Inputs or, once those are used up, the tape.
func (emu *Emulator) Tick() (done bool, err error) {
	defer func() {
		var fault *intcode.ErrFault
		if err != nil && !errors.As(err, &fault) {
			err = &ErrRuntime{Ip: emu.Engine.Ip(), Err: err}
		}
	}()

	state, err := emu.Engine.Execute()

	_, _, relayErr := io.Relay(&emu.Tape, emu.Engine.Output())
	if relayErr != nil {
		err = errors.Join(err, relayErr)
	}
	if err != nil {
		return
	}

	switch state {
	case intcode.STATE_HALTED:
		done = true
	case intcode.STATE_BLOCKED:
		value, ok := internal.IterPullOne(internal.IterSeqConcat(emu.Inputs.Receive(), emu.Tape.Receive()))
		if !ok {
			err = emu.Tape.Err()
			if err == nil {
				err = ErrInputExhausted
			}
			return
		}
		emu.Logger.Debug().Int64("value", value).Msg("input")
		emu.Engine.Write(value)
	}

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	emu.Logger.Debug().Int("ticks", emu.Engine.Ticks).Msg("halted")
	return
}
