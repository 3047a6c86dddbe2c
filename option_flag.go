package goargs

import (
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/layout"
)

// Flag is a boolean option. --name sets it, --no-name clears it and the
// short form -s sets it. A flag always has a value, false unless configured
// otherwise with WithDefault.
type Flag struct {
	option
	value        bool
	defaultValue bool
}

// NewFlag describes a boolean flag
func NewFlag(name string, configs ...ConfigureArgFunc) *Flag {
	f := newFlag(name, configs)
	return &f
}

func newFlag(name string, configs []ConfigureArgFunc) Flag {
	o, cfg := newOption(name, configs, false)
	f := Flag{option: o}
	def, err := defaultBool(name, cfg)
	f.fail(err)
	if cfg.emptyValuesSet {
		f.fail(errs.ErrUnsupportedSetting.WithArgs("WithEmptyValues", name))
	}
	f.defaultValue = def
	f.value = def

	return f
}

// Value returns the current state of the flag
func (f *Flag) Value() bool {
	return f.value
}

func (f *Flag) DefaultValue() bool {
	return f.defaultValue
}

// SetValue sets the flag without marking it parsed
func (f *Flag) SetValue(value bool) {
	f.value = value
}

func (f *Flag) HasValue() bool {
	return true
}

func (f *Flag) HasDefaultValue() bool {
	return true
}

func (f *Flag) IsValueOptional() bool {
	return true
}

func (f *Flag) Parse(ctx *Context, arg string, isShort bool) bool {
	return f.parseFlag(arg, isShort, f.SetValue)
}

func (f *Flag) parseFlag(arg string, isShort bool, set func(bool)) bool {
	switch {
	case isShort:
		if f.shortName == "" || arg != f.shortName {
			return false
		}
		set(true)
	case arg == f.name:
		set(true)
	case arg == "no-"+f.name:
		set(false)
	default:
		return false
	}
	f.wasParsed = true

	return true
}

func (f *Flag) WriteHint(tb layout.TextBuilder) {
	ctx := f.context()
	if ctx.HasShortPrefix() && f.shortName != "" {
		tb.PutText(ctx.Prefix() + f.name + ", " + ctx.ShortPrefix() + f.shortName)
	} else {
		tb.PutText(ctx.Prefix() + f.name)
	}
}

func (f *Flag) WriteHelp(tb layout.TextBuilder) {
	ctx := f.context()
	f.WriteHint(tb)
	tb.PutText(", ")
	if ctx.HasShortPrefix() && f.shortName != "" {
		tb.NewLine()
	}
	tb.PutText(ctx.Prefix() + "no-" + f.name)
	f.writeDescription(tb)
}

func (f *Flag) reset() {
	f.value = f.defaultValue
	f.wasParsed = false
}

// FlagGroup is a flag whose value is copied to each of its member flags,
// whenever it is set and when its default is applied.
type FlagGroup struct {
	Flag
	members []*Flag
}

// NewFlagGroup describes a flag controlling members. Members keep their own
// names and can still be set individually after the group.
func NewFlagGroup(name string, members []*Flag, configs ...ConfigureArgFunc) *FlagGroup {
	g := &FlagGroup{
		Flag:    newFlag(name, configs),
		members: append([]*Flag(nil), members...),
	}
	for _, m := range g.members {
		if m == nil {
			g.fail(errs.ErrFlagGroupMember.WithArgs(name))
			g.members = nil
			break
		}
	}
	g.propagate()

	return g
}

// Members returns the flags controlled by the group
func (g *FlagGroup) Members() []*Flag {
	return g.members
}

// SetValue sets the group and all of its members
func (g *FlagGroup) SetValue(value bool) {
	g.Flag.SetValue(value)
	for _, m := range g.members {
		m.SetValue(value)
	}
}

func (g *FlagGroup) Parse(ctx *Context, arg string, isShort bool) bool {
	return g.parseFlag(arg, isShort, g.SetValue)
}

func (g *FlagGroup) propagate() {
	g.SetValue(g.value)
}
