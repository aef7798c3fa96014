// Package pipeline wires intcode engines into amplifier pipelines.
//
// Every stage is loaded from its own copy of the same program image and is
// given a distinct phase as its first input. Run drives the stages as a ring,
// relaying each stage's output into the next stage's input until the final
// stage halts. Chain runs the stages once each, in order, without feedback.
//
// Scheduling is cooperative and single threaded: exactly one stage executes
// at any time, and a stage gives up control by halting or by blocking on an
// empty input queue.
package pipeline

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoStages = errors.New(f("no stages"))
	ErrNoOutput = errors.New(f("final stage produced no output"))
	ErrStalled  = errors.New(f("pipeline stalled waiting for input"))
	ErrSpent    = errors.New(f("pipeline already run"))
)

// ErrStage reports the stage that failed a pipeline run.
type ErrStage struct {
	Stage int
	Err   error
}

func (err *ErrStage) Error() string {
	return f("stage %d: %v", err.Stage, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}

// Pipeline is a sequence of independently owned engines.
// A Pipeline runs once.
type Pipeline struct {
	Logger zerolog.Logger
	Stages []*intcode.Engine
	Turns  int // Stage executions performed.

	spent bool
}

// New loads one stage per phase from image and queues each phase as the
// first input of its stage.
func New(image []int64, phases []int64) (pl *Pipeline) {
	pl = &Pipeline{
		Logger: zerolog.Nop(),
		Stages: make([]*intcode.Engine, len(phases)),
	}

	for n, phase := range phases {
		stage := intcode.Load(image)
		stage.Write(phase)
		pl.Stages[n] = stage
	}

	return
}

// SetLogger sets the logger of the pipeline and of every stage.
func (pl *Pipeline) SetLogger(logger zerolog.Logger) {
	pl.Logger = logger
	for n, stage := range pl.Stages {
		stage.Logger = logger.With().Int("stage", n).Logger()
	}
}

func (pl *Pipeline) start() (err error) {
	if len(pl.Stages) == 0 {
		return ErrNoStages
	}

	if pl.spent {
		return ErrSpent
	}
	pl.spent = true

	return
}

// Run feeds signal to the first stage and drives the stages round robin as
// a ring until the final stage halts. The result is the last value the final
// stage produced. A fault in any stage aborts the run.
func (pl *Pipeline) Run(signal int64) (result int64, err error) {
	err = pl.start()
	if err != nil {
		return
	}

	count := len(pl.Stages)
	final := count - 1

	pl.Stages[0].Write(signal)

	var produced bool
	var idle int
	for current := 0; ; current = (current + 1) % count {
		stage := pl.Stages[current]
		next := pl.Stages[(current+1)%count]

		ticks := stage.Ticks
		var state intcode.State
		state, err = stage.Execute()
		pl.Turns++
		if err != nil {
			err = &ErrStage{Stage: current, Err: err}
			return
		}

		var relayed int
		var last int64
		relayed, last, err = io.Relay(next.Input(), stage.Output())
		if err != nil {
			err = &ErrStage{Stage: current, Err: err}
			return
		}

		pl.Logger.Debug().Int("stage", current).Stringer("state", state).Int("relayed", relayed).Msg("turn")

		if current == final {
			if relayed > 0 {
				result = last
				produced = true
			}
			if state == intcode.STATE_HALTED {
				if !produced {
					err = &ErrStage{Stage: current, Err: ErrNoOutput}
				}
				return
			}
		}

		// A full ring of turns without progress will never make progress.
		if relayed == 0 && stage.Ticks == ticks {
			idle++
		} else {
			idle = 0
		}
		if idle >= count {
			err = &ErrStage{Stage: current, Err: ErrStalled}
			return
		}
	}
}

// Chain feeds signal through the stages once, in order: each stage runs to
// halt and its last output becomes the next stage's signal.
func (pl *Pipeline) Chain(signal int64) (result int64, err error) {
	err = pl.start()
	if err != nil {
		return
	}

	for n, stage := range pl.Stages {
		stage.Write(signal)

		var state intcode.State
		state, err = stage.Execute()
		pl.Turns++
		if err != nil {
			err = &ErrStage{Stage: n, Err: err}
			return
		}
		if state != intcode.STATE_HALTED {
			err = &ErrStage{Stage: n, Err: ErrStalled}
			return
		}

		var produced bool
		for value := range stage.Outputs() {
			signal = value
			produced = true
		}
		if !produced {
			err = &ErrStage{Stage: n, Err: ErrNoOutput}
			return
		}

		pl.Logger.Debug().Int("stage", n).Int64("signal", signal).Msg("chain")
	}

	result = signal
	return
}
