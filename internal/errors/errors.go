// Package errors attaches call stacks to errors raised by the compiler and the CLI,
// and converts panics into such errors.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New records the caller's stack on err. The original error stays reachable through
// errors.As. New(nil) is nil.
func New(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// Errorf formats a message into an error carrying the caller's stack.
func Errorf(message string, args ...any) error {
	err := fmt.Errorf(message, args...)
	return goerrors.Wrap(err, 1)
}

// ErrorWithExitCode carries the process exit status for the CLI.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (err ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err ErrorWithExitCode) Unwrap() error {
	return err.Err
}

// WithStackTraceAndPrefix is New with a formatted prefix added to the message.
// A nil err stays nil.
func WithStackTraceAndPrefix(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// ErrorWithStackTrace renders err followed by the innermost recorded stack, for --verbose output.
func ErrorWithStackTrace(err error) string {
	if err == nil {
		return ""
	}

	return goError(err).ErrorStack()
}

func goError(err error) *goerrors.Error {
	goerr := &goerrors.Error{Err: err}

	for {
		if goError := new(goerrors.Error); errors.As(err, &goError) {
			goerr = goError
		}

		if err = errors.Unwrap(err); err == nil {
			break
		}
	}

	return goerr
}

// Recover must be deferred. A recovered panic value is turned into a stack-carrying
// error and handed to onPanic.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}

		onPanic(New(err))
	}
}
