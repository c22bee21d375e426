package tokenizer

import "fmt"

// InvalidTokenError is returned when the input contains a character outside the
// recognized symbol, letter and digit set.
type InvalidTokenError struct {
	Char rune
	Pos  int
}

func (err InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d", err.Char, err.Pos)
}

// InvalidIntegerError is returned when a digit run cannot be read as an unsigned
// 32-bit integer, either because it is too large or because it mixes in letters.
type InvalidIntegerError struct {
	Literal string
	Pos     int
}

func (err InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid integer %q at position %d", err.Literal, err.Pos)
}
