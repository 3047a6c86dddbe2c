package errs

import (
	"errors"
	"fmt"
)

// Error is a formatted error derived from a package-level sentinel. Every
// instance created through WithArgs or Wrap compares equal to its sentinel
// under errors.Is.
//
// Example usage:
//
//	err := ErrUnknownOption.WithArgs("--verbose")
//	if errors.Is(err, ErrUnknownOption) { ... }
type Error struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The message format
	format string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
}

// New creates a sentinel error with a printf-style format
func New(format string) *Error {
	return &Error{
		sentinel: errors.New(format),
		format:   format,
	}
}

// Error returns the message, formatted with args if provided
func (e *Error) Error() string {
	msg := e.format
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	return &Error{
		sentinel: e.sentinel,
		format:   e.format,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *Error) Wrap(err error) *Error {
	return &Error{
		sentinel: e.sentinel,
		format:   e.format,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel || target == e
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}
