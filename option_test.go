package goargs

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(write func(tb layout.TextBuilder)) string {
	tb := layout.NewBuilder()
	write(tb)
	return tb.Build()
}

func TestFlag_Parse(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		isShort   bool
		wantOk    bool
		wantValue bool
	}{
		{"long", "verbose", false, true, true},
		{"negated", "no-verbose", false, true, false},
		{"short", "v", true, true, true},
		{"short with suffix", "vv", true, false, false},
		{"long with suffix", "verbosee", false, false, false},
		{"long with value", "verbose=1", false, false, false},
		{"negated short", "no-v", true, false, false},
		{"other", "quiet", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := defaultContext()
			f := NewFlag("verbose", WithShortName("v"))
			assert.Equal(t, tt.wantOk, f.Parse(ctx, tt.arg, tt.isShort))
			assert.Equal(t, tt.wantOk, f.WasParsed())
			assert.Equal(t, tt.wantValue, f.Value())
			assert.False(t, ctx.HasError())
		})
	}
}

func TestFlag_Default(t *testing.T) {
	f := NewFlag("color", WithDefault(true))
	assert.True(t, f.Value())
	assert.True(t, f.DefaultValue())
	assert.True(t, f.HasValue())
	assert.True(t, f.HasDefaultValue())
	assert.True(t, f.IsValueOptional())
	assert.False(t, f.HasMetaVar())
	assert.Equal(t, "", f.MetaVar())

	assert.True(t, f.Parse(defaultContext(), "no-color", false))
	assert.False(t, f.Value())

	f.reset()
	assert.True(t, f.Value())
	assert.False(t, f.WasParsed())
}

func TestFlagGroup(t *testing.T) {
	a := NewFlag("a", WithDefault(true))
	b := NewFlag("b")
	g := NewFlagGroup("all", []*Flag{a, b})

	assert.False(t, a.Value(), "group default is applied to members on construction")
	assert.False(t, b.Value())
	assert.Equal(t, []*Flag{a, b}, g.Members())

	ctx := defaultContext()
	assert.True(t, g.Parse(ctx, "all", false))
	assert.True(t, g.Value())
	assert.True(t, a.Value())
	assert.True(t, b.Value())
	assert.False(t, a.WasParsed())

	assert.True(t, g.Parse(ctx, "no-all", false))
	assert.False(t, a.Value())
	assert.False(t, b.Value())

	enabled := NewFlagGroup("on", []*Flag{b}, WithDefault(true))
	assert.True(t, enabled.Value())
	assert.True(t, b.Value())
}

func TestFlagGroup_NilMember(t *testing.T) {
	g := NewFlagGroup("all", []*Flag{nil})
	assert.True(t, errors.Is(g.base().err, errs.ErrFlagGroupMember))
}

func TestInt_Parse(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		isShort   bool
		wantOk    bool
		wantValue int64
		wantErr   string
	}{
		{name: "long", arg: "a=3", wantOk: true, wantValue: 3},
		{name: "short", arg: "a3", isShort: true, wantOk: true, wantValue: 3},
		{name: "negative", arg: "a=-7", wantOk: true, wantValue: -7},
		{name: "max", arg: "a=9223372036854775807", wantOk: true, wantValue: 9223372036854775807},
		{name: "long without equals", arg: "a3"},
		{name: "bare long", arg: "a"},
		{name: "other name", arg: "b=3"},
		{name: "not a number", arg: "a=x", wantErr: "Expected integer for '--a', got 'x'."},
		{name: "trailing garbage", arg: "a=3x", wantErr: "Expected integer for '--a', got '3x'."},
		{name: "plus sign", arg: "a=+1", wantErr: "Expected integer for '--a', got '+1'."},
		{name: "empty", arg: "a=", wantErr: "Expected integer for '--a', got ''."},
		{name: "empty short", arg: "a", isShort: true, wantErr: "Expected integer for '--a', got ''."},
		{name: "overflow", arg: "a=9223372036854775808", wantErr: "Expected integer for '--a', got '9223372036854775808'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := defaultContext()
			i := NewInt("a", WithShortName("a"))
			ok := i.Parse(ctx, tt.arg, tt.isShort)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantOk, i.WasParsed())
			if tt.wantErr != "" {
				require.True(t, ctx.HasError())
				assert.Equal(t, tt.wantErr, ctx.Message())
				assert.True(t, errors.Is(ctx.Err(), errs.ErrExpectedInteger))
				return
			}
			assert.False(t, ctx.HasError())
			if tt.wantOk {
				assert.Equal(t, tt.wantValue, i.Value())
			}
		})
	}
}

func TestInt_Default(t *testing.T) {
	required := NewInt("count")
	assert.False(t, required.HasValue())
	assert.False(t, required.HasDefaultValue())
	assert.Equal(t, "COUNT", required.MetaVar())

	withDefault := NewInt("count", WithDefault(5))
	assert.True(t, withDefault.HasValue())
	assert.Equal(t, int64(5), withDefault.Value())

	assert.True(t, withDefault.Parse(defaultContext(), "count=9", false))
	assert.Equal(t, int64(9), withDefault.Value())
	assert.Equal(t, int64(5), withDefault.DefaultValue())

	wrong := NewInt("count", WithDefault("five"))
	assert.True(t, errors.Is(wrong.base().err, errs.ErrDefaultTypeMismatch))
}

func TestString_Parse(t *testing.T) {
	ctx := defaultContext()
	s := NewString("name", WithShortName("n"))

	assert.True(t, s.Parse(ctx, "name=hello world", false))
	assert.Equal(t, "hello world", s.Value())

	assert.True(t, s.Parse(ctx, "nfoo=bar", true))
	assert.Equal(t, "foo=bar", s.Value())

	assert.True(t, s.Parse(ctx, "name=", false))
	assert.Equal(t, "", s.Value())
	assert.True(t, s.WasParsed())

	assert.False(t, s.Parse(ctx, "names=x", false))
	assert.False(t, ctx.HasError())
}

func TestString_Default(t *testing.T) {
	s := NewString("user", WithDefault("root"))
	assert.Equal(t, "root", s.Value())
	assert.True(t, s.HasValue())

	wrong := NewString("user", WithDefault(42))
	assert.True(t, errors.Is(wrong.base().err, errs.ErrDefaultTypeMismatch))
}

func TestChoice_Parse(t *testing.T) {
	ctx := defaultContext()
	c := NewChoice("op", []string{"+", "-", "*", "/"})

	assert.False(t, c.HasValue())
	assert.Equal(t, "", c.Value())
	assert.Equal(t, -1, c.Index())

	assert.True(t, c.Parse(ctx, "op=*", false))
	assert.Equal(t, "*", c.Value())
	assert.Equal(t, 2, c.Index())

	assert.False(t, c.Parse(ctx, "op=%", false))
	assert.Equal(t, "Expected one of {+,-,*,/} for '--op', got '%'.", ctx.Message())
	assert.True(t, errors.Is(ctx.Err(), errs.ErrExpectedChoice))
}

func TestChoice_Default(t *testing.T) {
	tests := []struct {
		name    string
		def     ConfigureArgFunc
		want    string
		wantErr error
	}{
		{"index", WithDefault(1), "-", nil},
		{"index clamped", WithDefault(10), "/", nil},
		{"negative index clamped", WithDefault(-1), "/", nil},
		{"first index", WithDefault(0), "+", nil},
		{"candidate", WithDefault("*"), "*", nil},
		{"unknown candidate", WithDefault("%"), "+", errs.ErrUnknownChoiceDefault},
		{"wrong type", WithDefault(1.5), "+", errs.ErrDefaultTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChoice("op", []string{"+", "-", "*", "/"}, tt.def)
			assert.Equal(t, tt.want, c.Value())
			assert.Equal(t, tt.want, c.DefaultValue())
			if tt.wantErr != nil {
				assert.True(t, errors.Is(c.base().err, tt.wantErr))
			} else {
				assert.NoError(t, c.base().err)
			}
		})
	}
}

func TestChoice_Empty(t *testing.T) {
	c := NewChoice("op", nil, WithDefault(0))
	assert.True(t, errors.Is(c.base().err, errs.ErrEmptyChoices))
	assert.False(t, c.HasValue())
	assert.Equal(t, "", c.Value())
}

func TestCollection_Parse(t *testing.T) {
	for n := 0; n < 5; n++ {
		ctx := defaultContext()
		c := NewCollection("x", WithShortName("x"))
		var want []string
		for i := 0; i < n; i++ {
			v := strings.Repeat("v", i+1)
			want = append(want, v)
			if i%2 == 0 {
				require.True(t, c.Parse(ctx, "x="+v, false))
			} else {
				require.True(t, c.Parse(ctx, "x"+v, true))
			}
		}
		assert.Len(t, c.Value(), n)
		assert.Equal(t, want, c.Value())
		assert.True(t, c.HasValue())
	}
}

func TestCollection_EmptyValues(t *testing.T) {
	ctx := defaultContext()
	strict := NewCollection("x")
	assert.False(t, strict.Parse(ctx, "x=", false))
	assert.Equal(t, "Empty values are not allowed for '--x'.", ctx.Message())

	ctx = defaultContext()
	assert.False(t, strict.Parse(ctx, "x", false))
	assert.False(t, ctx.HasError())

	lenient := NewCollection("x", WithEmptyValues(true))
	assert.True(t, lenient.IsValueOptional())
	assert.True(t, lenient.AcceptsEmptyValues())
	assert.True(t, lenient.Parse(ctx, "x=", false))
	assert.True(t, lenient.Parse(ctx, "x", false))
	assert.True(t, lenient.Parse(ctx, "x=a", false))
	assert.Equal(t, []string{"", "", "a"}, lenient.Value())
}

func TestCollection_Default(t *testing.T) {
	c := NewCollection("tag", WithDefault([]string{"latest"}))
	assert.Equal(t, []string{"latest"}, c.Value())

	assert.True(t, c.Parse(defaultContext(), "tag=v1", false))
	assert.Equal(t, []string{"v1"}, c.Value())

	c.reset()
	assert.Equal(t, []string{"latest"}, c.Value())
}

func TestTime_Parse(t *testing.T) {
	ctx := defaultContext()
	opt := NewTime("since")

	assert.True(t, opt.Parse(ctx, "since=2024-03-01", false))
	assert.Equal(t, 2024, opt.Value().Year())
	assert.Equal(t, time.March, opt.Value().Month())

	assert.False(t, opt.Parse(ctx, "since=yesterday-ish", false))
	assert.Equal(t, "Expected date/time for '--since', got 'yesterday-ish'.", ctx.Message())
}

func TestTime_Default(t *testing.T) {
	def := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	opt := NewTime("since", WithDefault(def))
	assert.Equal(t, def, opt.Value())

	fromString := NewTime("since", WithDefault("2021-06-15"))
	assert.NoError(t, fromString.base().err)
	assert.Equal(t, 2021, fromString.Value().Year())
}

func TestOption_WasParsedImpliesHasValue(t *testing.T) {
	tests := []struct {
		opt Option
		arg string
	}{
		{NewFlag("f"), "f"},
		{NewFlagGroup("g", nil), "no-g"},
		{NewInt("i"), "i=1"},
		{NewString("s"), "s=x"},
		{NewChoice("c", []string{"x"}), "c=x"},
		{NewCollection("l"), "l=x"},
		{NewTime("t"), "t=2024-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.opt.Name(), func(t *testing.T) {
			require.True(t, tt.opt.Parse(defaultContext(), tt.arg, false))
			assert.True(t, tt.opt.WasParsed())
			assert.True(t, tt.opt.HasValue())
		})
	}
}

func TestOption_ConfigErrors(t *testing.T) {
	assert.True(t, errors.Is(NewInt("").base().err, errs.ErrEmptyName))
	assert.True(t, errors.Is(NewInt("a", WithMetaVar("  ")).base().err, errs.ErrBlankMetaVar))
	assert.True(t, errors.Is(NewString("a", WithEmptyValues(true)).base().err, errs.ErrUnsupportedSetting))
	assert.True(t, errors.Is(NewFlag("a", WithDefault("yes")).base().err, errs.ErrDefaultTypeMismatch))
	assert.NoError(t, NewInt("a", WithMetaVar("N")).base().err)
}

func TestOption_Hints(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		hint string
		help string
	}{
		{
			name: "flag",
			opt:  NewFlag("verbose", WithShortName("v"), WithDescription("Be chatty.")),
			hint: "--verbose, -v\n",
			help: "--verbose, -v,\n--no-verbose\n  Be chatty.\n",
		},
		{
			name: "flag without short name",
			opt:  NewFlag("color"),
			hint: "--color\n",
			help: "--color, --no-color\n",
		},
		{
			name: "int",
			opt:  NewInt("a", WithShortName("a"), WithMetaVar("A"), WithDescription("First operand.")),
			hint: "--a=<A>, -a<A>\n",
			help: "--a=<A>, -a<A>\n  First operand.\n",
		},
		{
			name: "string without short name",
			opt:  NewString("name"),
			hint: "--name=<NAME>\n",
			help: "--name=<NAME>\n",
		},
		{
			name: "choice",
			opt:  NewChoice("op", []string{"+", "-"}, WithShortName("op")),
			hint: "--op={+,-}, -op{+,-}\n",
			help: "--op={+,-}, -op{+,-}\n",
		},
		{
			name: "collection accepting empty values",
			opt:  NewCollection("x", WithShortName("x"), WithEmptyValues(true)),
			hint: "--x=[X], -x[X]\n",
			help: "--x=[X], -x[X]\n",
		},
		{
			name: "time",
			opt:  NewTime("since", WithMetaVar("DATE")),
			hint: "--since=<DATE>\n",
			help: "--since=<DATE>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hint, render(tt.opt.WriteHint))
			assert.Equal(t, tt.help, render(tt.opt.WriteHelp))
		})
	}
}
