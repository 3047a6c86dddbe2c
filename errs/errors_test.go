package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_WithArgs(t *testing.T) {
	err := ErrUnknownOption.WithArgs("--foo")
	assert.Equal(t, "Unknown option '--foo'.", err.Error())
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.False(t, errors.Is(err, ErrMissingOption))
	assert.Equal(t, []interface{}{"--foo"}, err.Args())
}

func TestError_WithoutArgs(t *testing.T) {
	assert.Equal(t, "long option prefix must not be empty", ErrEmptyPrefix.Error())
}

func TestError_Wrap(t *testing.T) {
	cause := errors.New("EOF found when expecting closing quote")
	err := ErrTokenizing.WithArgs(`prog "a`).Wrap(cause)

	assert.Equal(t, `Could not split command line 'prog "a': EOF found when expecting closing quote`, err.Error())
	assert.True(t, errors.Is(err, ErrTokenizing))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestError_IsThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("building: %w", ErrEmptyName)
	assert.True(t, errors.Is(err, ErrEmptyName))

	var target *Error
	assert.True(t, errors.As(err, &target))
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"integer", ErrExpectedInteger.WithArgs("--", "a", "x"), "Expected integer for '--a', got 'x'."},
		{"choice", ErrExpectedChoice.WithArgs("{+,-}", "--", "op", "%"), "Expected one of {+,-} for '--op', got '%'."},
		{"empty", ErrEmptyValue.WithArgs("--", "x"), "Empty values are not allowed for '--x'."},
		{"missing option", ErrMissingOption.WithArgs("--", "b"), "Missing option '--b'."},
		{"missing argument", ErrMissingArgument.WithArgs("USER"), "Missing argument 'USER'."},
		{"unexpected", ErrUnexpectedPositional.WithArgs("c"), "Unexpected positional argument 'c'."},
		{"help", ErrHelpNotFound.WithArgs("a ", "z"), "Could not find help for 'a z'."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
