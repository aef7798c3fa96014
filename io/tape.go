package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tape provides sequential value I/O over byte streams.
// Input is read as integers separated by commas or white space;
// output is written as one decimal integer per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Err returns the first error that stopped input, if any.
// End of input is not an error.
func (tc *Tape) Err() error {
	return tc.err
}

// Next reads the next value from the input stream.
func (tc *Tape) Next() (value int64, ok bool) {
	if tc.err != nil || tc.Input == nil {
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(scanValues)
	}

	if !tc.scanner.Scan() {
		tc.err = tc.scanner.Err()
		return
	}

	word := tc.scanner.Text()
	value, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		tc.err = ErrValueSyntax(word)
		return
	}

	return value, true
}

// Receive returns an iterator that yields values from the input stream
// until it is exhausted or a token fails to parse.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for {
			value, ok := tc.Next()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)

	return
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanValues is a bufio.SplitFunc returning comma or space separated words.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
	}

	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}
