package io

import (
	"iter"
	"slices"
)

// Queue implements an unbounded FIFO of values.
// The zero value is an empty queue ready for use.
type Queue struct {
	ReadIndex int
	Data      []int64
}

var _ Channel = (*Queue)(nil)

// Rewind empties the queue.
func (q *Queue) Rewind() {
	q.ReadIndex = 0
	q.Data = q.Data[:0]
}

// Len returns the number of pending values.
func (q *Queue) Len() int {
	return len(q.Data) - q.ReadIndex
}

// Empty returns true if no values are pending.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// Send appends a value to the tail of the queue. It never fails.
func (q *Queue) Send(value int64) (err error) {
	q.Data = append(q.Data, value)
	return
}

// Peek returns the head of the queue without removing it.
func (q *Queue) Peek() (value int64, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[q.ReadIndex], true
}

// Pop removes and returns the head of the queue.
func (q *Queue) Pop() (value int64, ok bool) {
	value, ok = q.Peek()
	if !ok {
		return
	}

	q.ReadIndex++
	if q.ReadIndex == len(q.Data) {
		// Drained; reuse the backing array.
		q.Rewind()
	}

	return
}

// Receive returns an iterator that pops values until the queue is empty.
// Values sent while iterating are also yielded.
func (q *Queue) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for {
			value, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Values returns a copy of the pending values, head first.
func (q *Queue) Values() []int64 {
	return slices.Clone(q.Data[q.ReadIndex:])
}

// Clone returns an independent copy of the queue.
func (q *Queue) Clone() Queue {
	return Queue{Data: q.Values()}
}
