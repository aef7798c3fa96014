package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
)

// ErrValueSyntax is a tape token that is not an integer.
type ErrValueSyntax string

func (err ErrValueSyntax) Error() string {
	return f("'%v' is not a value", string(err))
}
