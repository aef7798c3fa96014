package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int64{1, 2}), slices.Values([]int64{}), slices.Values([]int64{3}))
	assert.Equal([]int64{1, 2, 3}, slices.Collect(seq))

	var first []int64
	for v := range seq {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal([]int64{1, 2}, first)
}

func TestIterPullOne(t *testing.T) {
	assert := assert.New(t)

	v, ok := IterPullOne(slices.Values([]int64{7, 8}))
	assert.True(ok)
	assert.Equal(int64(7), v)

	v, ok = IterPullOne(slices.Values([]int64(nil)))
	assert.False(ok)
	assert.Equal(int64(0), v)
}
