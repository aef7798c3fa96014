package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Execution faults
	ErrUnknownOpcode      = errors.New(f("unknown opcode"))
	ErrUnknownMode        = errors.New(f("unknown addressing mode"))
	ErrOutOfBounds        = errors.New(f("address out of bounds"))
	ErrMissingDestination = errors.New(f("missing destination"))
)

// ErrFault reports the location of a fault that aborted execution.
type ErrFault struct {
	Ip   int
	Word int64
	Err  error
}

func (err *ErrFault) Error() string {
	return f("ip %d word %d: %v", err.Ip, err.Word, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrAddress is an address that does not fall inside memory.
type ErrAddress int64

func (err ErrAddress) Error() string {
	return f("address %d", int64(err))
}

func (err ErrAddress) Unwrap() error {
	return ErrOutOfBounds
}
