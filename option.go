package goargs

import (
	"strings"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/layout"
)

// Option is a named command-line option. The set of implementations is
// closed: Flag, FlagGroup, Int, String, Choice, Collection and Time.
type Option interface {
	// Name is the long name matched after the long prefix
	Name() string
	// ShortName is matched after the short prefix, empty if the option has none
	ShortName() string
	// MetaVar names the value in hints, empty for flags
	MetaVar() string
	// HasMetaVar reports whether the option takes a value
	HasMetaVar() bool
	Description() string
	// Owner is the command the option is attached to, nil before attachment
	Owner() *Command
	// WasParsed reports whether the last parse assigned the option a value
	WasParsed() bool
	// HasValue reports whether the option was parsed or has a default
	HasValue() bool
	HasDefaultValue() bool
	// IsValueOptional reports whether the value may be omitted
	IsValueOptional() bool
	// Parse consumes arg, the token without its prefix. It returns false
	// without touching ctx when arg does not name the option and false with
	// an error recorded in ctx when the value is invalid.
	Parse(ctx *Context, arg string, isShort bool) bool
	WriteHint(tb layout.TextBuilder)
	WriteHelp(tb layout.TextBuilder)

	base() *option
	reset()
}

type option struct {
	name        string
	shortName   string
	metaVar     string
	description string
	takesValue  bool
	wasParsed   bool
	owner       *Command
	err         error
}

func newOption(name string, configs []ConfigureArgFunc, takesValue bool) (option, *ArgConfig) {
	cfg, err := newArgConfig(configs)
	o := option{
		name:        name,
		shortName:   cfg.ShortName,
		metaVar:     cfg.MetaVar,
		description: cfg.Description,
		takesValue:  takesValue,
		err:         err,
	}
	switch {
	case o.err != nil:
	case name == "":
		o.err = errs.ErrEmptyName
	case takesValue && cfg.MetaVar != "" && strings.Trim(cfg.MetaVar, " ") == "":
		o.err = errs.ErrBlankMetaVar.WithArgs(name)
	}

	return o, cfg
}

// fail keeps the first configuration error
func (o *option) fail(err error) {
	if o.err == nil && err != nil {
		o.err = err
	}
}

func (o *option) base() *option {
	return o
}

func (o *option) Name() string {
	return o.name
}

func (o *option) ShortName() string {
	return o.shortName
}

func (o *option) MetaVar() string {
	if !o.takesValue {
		return ""
	}
	if o.metaVar == "" {
		return strings.ToUpper(o.name)
	}
	return o.metaVar
}

func (o *option) HasMetaVar() bool {
	return o.takesValue
}

func (o *option) Description() string {
	return o.description
}

func (o *option) Owner() *Command {
	return o.owner
}

func (o *option) WasParsed() bool {
	return o.wasParsed
}

func (o *option) context() *Context {
	if o.owner != nil && o.owner.ctx != nil {
		return o.owner.ctx
	}
	return defaultContext()
}

// parseNamed consumes the option name from arg and hands the remaining value
// text to parseValue. The long form of a value option requires '=' unless the
// value is optional and absent.
func (o *option) parseNamed(arg string, isShort, valueOptional bool, parseValue func(value string) bool) bool {
	var value string
	if isShort {
		if o.shortName == "" || !strings.HasPrefix(arg, o.shortName) {
			return false
		}
		value = arg[len(o.shortName):]
	} else {
		if !strings.HasPrefix(arg, o.name) {
			return false
		}
		value = arg[len(o.name):]
		if o.takesValue {
			switch {
			case strings.HasPrefix(value, "="):
				value = value[1:]
			case value == "" && valueOptional:
			default:
				return false
			}
		}
	}

	if !parseValue(value) {
		return false
	}
	o.wasParsed = true

	return true
}

// writeValueHint renders --name=VALUE, -sVALUE
func (o *option) writeValueHint(tb layout.TextBuilder, value string) {
	ctx := o.context()
	if ctx.HasShortPrefix() && o.shortName != "" {
		tb.PutText(ctx.Prefix() + o.name + "=" + value + ", " + ctx.ShortPrefix() + o.shortName + value)
	} else {
		tb.PutText(ctx.Prefix() + o.name + "=" + value)
	}
}

func (o *option) writeDescription(tb layout.TextBuilder) {
	if o.description == "" {
		return
	}
	tb.NewLine()
	tb.Indent()
	tb.PutText(o.description)
	tb.DeIndent()
}

func metaVarHint(metaVar string, optional bool) string {
	if optional {
		return "[" + metaVar + "]"
	}
	return "<" + metaVar + ">"
}
