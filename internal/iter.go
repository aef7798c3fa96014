package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterPullOne returns the first value of a sequence, if any.
func IterPullOne[T any](seq iter.Seq[T]) (value T, ok bool) {
	for val := range seq {
		return val, true
	}
	return
}
