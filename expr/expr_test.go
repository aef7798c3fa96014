package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInts(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		expr  string
		words []int64
	}{
		{"[9,8,7,6,5]", []int64{9, 8, 7, 6, 5}},
		{"1", []int64{1}},
		{"-42", []int64{-42}},
		{"range(5, 10)", []int64{5, 6, 7, 8, 9}},
		{"(1, 2)", []int64{1, 2}},
		{"[x * 2 for x in range(3)]", []int64{0, 2, 4}},
		{"[]", nil},
		{"[BASE, BASE + 1]", []int64{100, 101}},
		{"[1 << 40]", []int64{1 << 40}},
	}

	predefine := map[string]int64{"BASE": 100}

	for _, entry := range table {
		words, err := Ints(entry.expr, predefine)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.words, words, entry.expr)
	}
}

func TestInts_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		expr string
		err  error
	}{
		{"'abc'", nil},
		{"[1, 'x']", ErrNotInteger},
		{"None", ErrNotInteger},
		{"[1 << 70]", ErrOverflow},
		{"[", nil},
		{"UNDEFINED", nil},
	}

	for _, entry := range table {
		words, err := Ints(entry.expr, nil)
		assert.Error(err, entry.expr)
		assert.Nil(words, entry.expr)

		var exprErr *ErrExpression
		assert.ErrorAs(err, &exprErr, entry.expr)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.expr)
		}
	}
}

func TestInt(t *testing.T) {
	assert := assert.New(t)

	word, err := Int("12 * 100 + 2", nil)
	assert.NoError(err)
	assert.Equal(int64(1202), word)

	word, err = Int("NOUN", map[string]int64{"NOUN": 12})
	assert.NoError(err)
	assert.Equal(int64(12), word)

	_, err = Int("[1]", nil)
	assert.ErrorIs(err, ErrNotInteger)
}
