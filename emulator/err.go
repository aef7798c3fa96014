package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrInputExhausted = errors.New(f("input exhausted"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
