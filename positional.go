package goargs

import (
	"strconv"
	"strings"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/layout"
)

// Positional is an argument matched by position rather than by name. The set
// of implementations is closed: StringArg, VariadicArg and FloatArg. Only the
// last positional of a command should be variadic.
type Positional interface {
	// MetaVar names the argument in hints, help and error messages
	MetaVar() string
	Description() string
	// Owner is the command the argument is attached to, nil before attachment
	Owner() *Command
	WasParsed() bool
	HasValue() bool
	HasDefaultValue() bool
	// IsVariadic reports whether the argument consumes all remaining positional tokens
	IsVariadic() bool
	// Parse consumes one token, recording an error in ctx when it is invalid
	Parse(ctx *Context, arg string) bool
	WriteHint(tb layout.TextBuilder)
	WriteHelp(tb layout.TextBuilder)

	base() *positional
	reset()
}

type positional struct {
	metaVar     string
	description string
	wasParsed   bool
	owner       *Command
	err         error
}

func newPositional(metaVar string, configs []ConfigureArgFunc) (positional, *ArgConfig) {
	cfg, err := newArgConfig(configs)
	p := positional{
		metaVar:     metaVar,
		description: cfg.Description,
		err:         err,
	}
	switch {
	case p.err != nil:
	case strings.Trim(metaVar, " ") == "":
		p.err = errs.ErrBlankMetaVar.WithArgs(metaVar)
	case cfg.ShortName != "":
		p.err = errs.ErrUnsupportedSetting.WithArgs("WithShortName", metaVar)
	case cfg.MetaVar != "":
		p.err = errs.ErrUnsupportedSetting.WithArgs("WithMetaVar", metaVar)
	case cfg.emptyValuesSet:
		p.err = errs.ErrUnsupportedSetting.WithArgs("WithEmptyValues", metaVar)
	}

	return p, cfg
}

func (p *positional) fail(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func (p *positional) base() *positional {
	return p
}

func (p *positional) MetaVar() string {
	return p.metaVar
}

func (p *positional) Description() string {
	return p.description
}

func (p *positional) Owner() *Command {
	return p.owner
}

func (p *positional) WasParsed() bool {
	return p.wasParsed
}

// writeHint renders <META>, [META] or [...META]
func (p *positional) writeHint(tb layout.TextBuilder, hasDefault, variadic bool) {
	switch {
	case hasDefault && variadic:
		tb.PutText("[..." + p.metaVar + "]")
	case hasDefault:
		tb.PutText("[" + p.metaVar + "]")
	default:
		tb.PutText("<" + p.metaVar + ">")
	}
}

func (p *positional) writeHelp(tb layout.TextBuilder, variadic bool) {
	if variadic {
		tb.PutText("..." + p.metaVar + ":")
	} else {
		tb.PutText(p.metaVar + ":")
	}
	if p.description != "" {
		tb.NewLine()
		tb.Indent()
		tb.PutText(p.description)
		tb.DeIndent()
	}
}

// StringArg stores one positional token verbatim
type StringArg struct {
	positional
	value        string
	defaultValue string
	hasDefault   bool
}

// NewStringArg describes a single positional argument. Without WithDefault
// the argument is required.
func NewStringArg(metaVar string, configs ...ConfigureArgFunc) *StringArg {
	p, cfg := newPositional(metaVar, configs)
	a := &StringArg{positional: p, hasDefault: cfg.HasDefault}
	if cfg.HasDefault {
		def, err := defaultString(metaVar, cfg)
		a.fail(err)
		a.defaultValue = def
	}

	return a
}

func (a *StringArg) Value() string {
	if a.wasParsed {
		return a.value
	}
	return a.defaultValue
}

func (a *StringArg) DefaultValue() string {
	return a.defaultValue
}

func (a *StringArg) HasValue() bool {
	return a.wasParsed || a.hasDefault
}

func (a *StringArg) HasDefaultValue() bool {
	return a.hasDefault
}

func (a *StringArg) IsVariadic() bool {
	return false
}

func (a *StringArg) Parse(ctx *Context, arg string) bool {
	a.value = arg
	a.wasParsed = true
	return true
}

func (a *StringArg) WriteHint(tb layout.TextBuilder) {
	a.writeHint(tb, a.hasDefault, false)
}

func (a *StringArg) WriteHelp(tb layout.TextBuilder) {
	a.writeHelp(tb, false)
}

func (a *StringArg) reset() {
	a.value = ""
	a.wasParsed = false
}

// VariadicArg collects every remaining positional token. It always has a
// value, empty unless a []string default is configured.
type VariadicArg struct {
	positional
	values        []string
	defaultValues []string
}

// NewVariadicArg describes a trailing argument list
func NewVariadicArg(metaVar string, configs ...ConfigureArgFunc) *VariadicArg {
	p, cfg := newPositional(metaVar, configs)
	a := &VariadicArg{positional: p}
	def, err := defaultStrings(metaVar, cfg)
	a.fail(err)
	a.defaultValues = def

	return a
}

func (a *VariadicArg) Value() []string {
	if a.wasParsed {
		return a.values
	}
	return a.defaultValues
}

func (a *VariadicArg) DefaultValue() []string {
	return a.defaultValues
}

func (a *VariadicArg) HasValue() bool {
	return true
}

func (a *VariadicArg) HasDefaultValue() bool {
	return true
}

func (a *VariadicArg) IsVariadic() bool {
	return true
}

func (a *VariadicArg) Parse(ctx *Context, arg string) bool {
	a.values = append(a.values, arg)
	a.wasParsed = true
	return true
}

func (a *VariadicArg) WriteHint(tb layout.TextBuilder) {
	a.writeHint(tb, true, true)
}

func (a *VariadicArg) WriteHelp(tb layout.TextBuilder) {
	a.writeHelp(tb, true)
}

func (a *VariadicArg) reset() {
	a.values = nil
	a.wasParsed = false
}

// FloatArg parses one positional token as a 64-bit floating point number
type FloatArg struct {
	positional
	value        float64
	defaultValue float64
	hasDefault   bool
}

// NewFloatArg describes a numeric positional argument. Without WithDefault
// the argument is required.
func NewFloatArg(metaVar string, configs ...ConfigureArgFunc) *FloatArg {
	p, cfg := newPositional(metaVar, configs)
	a := &FloatArg{positional: p, hasDefault: cfg.HasDefault}
	if cfg.HasDefault {
		def, err := defaultFloat(metaVar, cfg)
		a.fail(err)
		a.defaultValue = def
	}

	return a
}

func (a *FloatArg) Value() float64 {
	if a.wasParsed {
		return a.value
	}
	return a.defaultValue
}

func (a *FloatArg) DefaultValue() float64 {
	return a.defaultValue
}

func (a *FloatArg) HasValue() bool {
	return a.wasParsed || a.hasDefault
}

func (a *FloatArg) HasDefaultValue() bool {
	return a.hasDefault
}

func (a *FloatArg) IsVariadic() bool {
	return false
}

func (a *FloatArg) Parse(ctx *Context, arg string) bool {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return ctx.Fail(errs.ErrExpectedNumber.WithArgs(a.metaVar, arg))
	}
	a.value = v
	a.wasParsed = true
	return true
}

func (a *FloatArg) WriteHint(tb layout.TextBuilder) {
	a.writeHint(tb, a.hasDefault, false)
}

func (a *FloatArg) WriteHelp(tb layout.TextBuilder) {
	a.writeHelp(tb, false)
}

func (a *FloatArg) reset() {
	a.value = 0
	a.wasParsed = false
}
