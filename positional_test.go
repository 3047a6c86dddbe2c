package goargs

import (
	"errors"
	"testing"

	"github.com/napalu/goargs/errs"
	"github.com/stretchr/testify/assert"
)

func TestStringArg(t *testing.T) {
	ctx := defaultContext()
	a := NewStringArg("USER", WithDescription("Who to greet."))

	assert.False(t, a.HasValue())
	assert.False(t, a.IsVariadic())
	assert.True(t, a.Parse(ctx, "--not-an-option"))
	assert.Equal(t, "--not-an-option", a.Value())
	assert.True(t, a.WasParsed())
	assert.True(t, a.HasValue())

	withDefault := NewStringArg("USER", WithDefault("world"))
	assert.True(t, withDefault.HasValue())
	assert.Equal(t, "world", withDefault.Value())
}

func TestVariadicArg(t *testing.T) {
	ctx := defaultContext()
	a := NewVariadicArg("FILES")

	assert.True(t, a.HasValue())
	assert.True(t, a.HasDefaultValue())
	assert.True(t, a.IsVariadic())
	assert.Empty(t, a.Value())

	for _, v := range []string{"a", "b", "c"} {
		assert.True(t, a.Parse(ctx, v))
	}
	assert.Equal(t, []string{"a", "b", "c"}, a.Value())

	a.reset()
	assert.Empty(t, a.Value())
	assert.False(t, a.WasParsed())
}

func TestFloatArg(t *testing.T) {
	ctx := defaultContext()
	a := NewFloatArg("X")

	assert.True(t, a.Parse(ctx, "2.5"))
	assert.Equal(t, 2.5, a.Value())

	assert.False(t, a.Parse(ctx, "abc"))
	assert.Equal(t, "Expected number for 'X', got 'abc'.", ctx.Message())
	assert.True(t, errors.Is(ctx.Err(), errs.ErrExpectedNumber))

	withDefault := NewFloatArg("Y", WithDefault(1))
	assert.Equal(t, 1.0, withDefault.Value())
}

func TestPositional_ConfigErrors(t *testing.T) {
	assert.True(t, errors.Is(NewStringArg("   ").base().err, errs.ErrBlankMetaVar))
	assert.True(t, errors.Is(NewStringArg("").base().err, errs.ErrBlankMetaVar))
	assert.True(t, errors.Is(NewStringArg("X", WithShortName("x")).base().err, errs.ErrUnsupportedSetting))
	assert.True(t, errors.Is(NewVariadicArg("X", WithDefault("a")).base().err, errs.ErrDefaultTypeMismatch))
	assert.True(t, errors.Is(NewFloatArg("X", WithDefault("1")).base().err, errs.ErrDefaultTypeMismatch))
	assert.NoError(t, NewStringArg(" X ").base().err)
}

func TestPositional_Hints(t *testing.T) {
	tests := []struct {
		name string
		arg  Positional
		hint string
		help string
	}{
		{"required", NewStringArg("USER", WithDescription("Who to greet.")), "<USER>\n", "USER:\n  Who to greet.\n"},
		{"optional", NewStringArg("USER", WithDefault("world")), "[USER]\n", "USER:\n"},
		{"variadic", NewVariadicArg("CMD", WithDescription("Path.")), "[...CMD]\n", "...CMD:\n  Path.\n"},
		{"float", NewFloatArg("X"), "<X>\n", "X:\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hint, render(tt.arg.WriteHint))
			assert.Equal(t, tt.help, render(tt.arg.WriteHelp))
		})
	}
}
