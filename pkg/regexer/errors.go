package regexer

import (
	"github.com/KromDaniel/regexer/internal/parser"
	"github.com/KromDaniel/regexer/internal/tokenizer"
)

// Errors returned by Compile. Match them with errors.As; the returned error carries a
// stack trace around the typed value.
type (
	// InvalidTokenError: the input contains a character outside the recognized set.
	InvalidTokenError = tokenizer.InvalidTokenError
	// InvalidIntegerError: a digit run does not fit an unsigned 32-bit integer.
	InvalidIntegerError = tokenizer.InvalidIntegerError
	// UnknownPrimitiveError: an identifier is not one of the known primitives.
	UnknownPrimitiveError = parser.UnknownPrimitiveError
	// MissingParameterError: a required parameter such as glob's rest is absent.
	MissingParameterError = parser.MissingParameterError
	// InvalidParameterError: a parameter list cannot be read.
	InvalidParameterError = parser.InvalidParameterError
	// UnterminatedError: a parameter list or group is never closed.
	UnterminatedError = parser.UnterminatedError
)
