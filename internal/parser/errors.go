package parser

import "fmt"

// UnknownPrimitiveError is returned for an identifier outside the fixed primitive set.
type UnknownPrimitiveError struct {
	Name string
	Pos  int
}

func (err UnknownPrimitiveError) Error() string {
	return fmt.Sprintf("unknown primitive %q at position %d", err.Name, err.Pos)
}

// MissingParameterError is returned when a primitive is used without a parameter it requires.
type MissingParameterError struct {
	Primitive string
	Parameter string
	Pos       int
}

func (err MissingParameterError) Error() string {
	return fmt.Sprintf("%s at position %d requires the %q parameter", err.Primitive, err.Pos, err.Parameter)
}

// InvalidParameterError is returned for a parameter list that cannot be read: an unknown
// key, a value of the wrong kind or a stray token.
type InvalidParameterError struct {
	Primitive string
	Parameter string
	Reason    string
	Pos       int
}

func (err InvalidParameterError) Error() string {
	if err.Parameter == "" {
		return fmt.Sprintf("invalid parameters for %s at position %d: %s", err.Primitive, err.Pos, err.Reason)
	}
	return fmt.Sprintf("invalid parameter %q for %s at position %d: %s", err.Parameter, err.Primitive, err.Pos, err.Reason)
}

// UnterminatedError is returned when an opening parenthesis is never closed.
type UnterminatedError struct {
	Primitive string
	Pos       int
}

func (err UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated %s starting at position %d: missing ')'", err.Primitive, err.Pos)
}
