// Package expr evaluates Starlark expressions into lists of machine words.
//
// Phase settings and input sequences may be given as plain lists
// ("[9,8,7,6,5]"), single integers ("1"), or any Starlark expression that
// yields an integer or an iterable of integers ("range(5, 10)",
// "[x * 2 for x in range(3)]"). Predefined names are available to the
// expression as integers.
package expr

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNotInteger = errors.New(f("not an integer"))
	ErrOverflow   = errors.New(f("integer overflows 64 bits"))
)

// ErrExpression reports an expression that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// Eval evaluates an expression with the given predefined integers.
func Eval(expr string, predefine map[string]int64) (value starlark.Value, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range predefine {
		pred[key] = starlark.MakeInt64(value)
	}

	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", prog, pred)
	if err != nil {
		return
	}

	value, ok := dict["rc"]
	if !ok {
		err = ErrNotInteger
		return
	}

	return
}

// toInt64 converts a Starlark integer to a machine word.
func toInt64(value starlark.Value) (word int64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrNotInteger
		return
	}

	word, ok = st_int.Int64()
	if !ok {
		err = ErrOverflow
		return
	}

	return
}

// Int evaluates an expression that must yield a single integer.
func Int(expr string, predefine map[string]int64) (word int64, err error) {
	value, err := Eval(expr, predefine)
	if err != nil {
		return
	}

	word, err = toInt64(value)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
	}

	return
}

// Ints evaluates an expression yielding an integer or an iterable of
// integers, and returns the values in order.
func Ints(expr string, predefine map[string]int64) (words []int64, err error) {
	value, err := Eval(expr, predefine)
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			words = nil
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	if _, ok := value.(starlark.Int); ok {
		var word int64
		word, err = toInt64(value)
		words = []int64{word}
		return
	}

	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrNotInteger
		return
	}
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		var word int64
		word, err = toInt64(item)
		if err != nil {
			return
		}
		words = append(words, word)
	}

	return
}
