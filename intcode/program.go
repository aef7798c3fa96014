package intcode

import (
	"io"
	"strconv"
	"strings"
)

// PROGRAM_SEPARATOR separates words in program text.
const PROGRAM_SEPARATOR = ","

// Parse converts comma separated program text into a memory image.
// Tokens that are not integers are skipped.
func Parse(text string) (image []int64) {
	for _, word := range strings.Split(text, PROGRAM_SEPARATOR) {
		value, err := strconv.ParseInt(strings.TrimSpace(word), 10, 64)
		if err != nil {
			continue
		}
		image = append(image, value)
	}

	return
}

// ReadProgram reads and parses program text.
func ReadProgram(r io.Reader) (image []int64, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return
	}

	image = Parse(string(text))
	return
}

// Format renders a memory image as program text.
func Format(image []int64) string {
	words := make([]string, len(image))
	for n, value := range image {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, PROGRAM_SEPARATOR)
}
