package io

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_Order(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	assert.True(q.Empty())

	for _, v := range []int64{3, -1, 4, 1, 5} {
		assert.NoError(q.Send(v))
	}
	assert.Equal(5, q.Len())

	value, ok := q.Peek()
	assert.True(ok)
	assert.Equal(int64(3), value)
	assert.Equal(5, q.Len())

	value, ok = q.Pop()
	assert.True(ok)
	assert.Equal(int64(3), value)

	assert.Equal([]int64{-1, 4, 1, 5}, slices.Collect(q.Receive()))
	assert.True(q.Empty())

	value, ok = q.Pop()
	assert.False(ok)
	assert.Equal(int64(0), value)
}

func TestQueue_InterleavedSendPop(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Send(1)
	q.Send(2)
	v, _ := q.Pop()
	assert.Equal(int64(1), v)
	q.Send(3)
	v, _ = q.Pop()
	assert.Equal(int64(2), v)
	v, _ = q.Pop()
	assert.Equal(int64(3), v)
	assert.True(q.Empty())
	assert.Equal(0, q.ReadIndex)
}

func TestQueue_ReceiveStop(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Send(10)
	q.Send(20)

	for v := range q.Receive() {
		assert.Equal(int64(10), v)
		break
	}
	assert.Equal([]int64{20}, q.Values())
}

func TestQueue_Clone(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Send(1)
	q.Send(2)
	q.Pop()

	c := q.Clone()
	c.Send(9)
	q.Send(5)

	assert.Equal([]int64{2, 5}, q.Values())
	assert.Equal([]int64{2, 9}, c.Values())
}

func TestQueue_Rewind(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Send(1)
	q.Rewind()
	assert.True(q.Empty())
	assert.Empty(q.Values())
}

func TestRelay(t *testing.T) {
	assert := assert.New(t)

	src := &Queue{}
	dst := &Queue{}
	dst.Send(100)
	for _, v := range []int64{1, 2, 3} {
		src.Send(v)
	}

	count, last, err := Relay(dst, src)
	assert.NoError(err)
	assert.Equal(3, count)
	assert.Equal(int64(3), last)
	assert.True(src.Empty())
	assert.Equal([]int64{100, 1, 2, 3}, dst.Values())

	count, last, err = Relay(dst, src)
	assert.NoError(err)
	assert.Equal(0, count)
	assert.Equal(int64(0), last)
}
