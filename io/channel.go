// Package io provides the value channels attached to intcode engines.
// Queues are the unbounded FIFOs each engine owns for input and output,
// and Tapes move values between an engine and byte streams.
package io

import (
	"iter"
)

// Channel defines the interface for all value channels.
// Values are received and sent in strict FIFO order.
type Channel interface {
	// Rewind discards any pending state in the channel.
	Rewind()
	// Receive returns an iterator that yields (and consumes) values.
	Receive() iter.Seq[int64]
	// Send appends a single value to the channel.
	Send(value int64) error
}

// Relay moves every value currently available on src to dst, in order.
// Returns the number of values moved and the last value moved.
func Relay(dst Channel, src Channel) (count int, last int64, err error) {
	for value := range src.Receive() {
		err = dst.Send(value)
		if err != nil {
			return
		}
		count++
		last = value
	}

	return
}
