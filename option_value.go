package goargs

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/layout"
)

// Int is an option holding a base-10 signed 64-bit integer
type Int struct {
	option
	value        int64
	defaultValue int64
	hasDefault   bool
}

// NewInt describes an integer option. Without WithDefault the option is required.
func NewInt(name string, configs ...ConfigureArgFunc) *Int {
	o, cfg := newOption(name, configs, true)
	i := &Int{option: o, hasDefault: cfg.HasDefault}
	if cfg.HasDefault {
		def, err := defaultInt(name, cfg)
		i.fail(err)
		i.defaultValue = def
	}
	if cfg.emptyValuesSet {
		i.fail(errs.ErrUnsupportedSetting.WithArgs("WithEmptyValues", name))
	}

	return i
}

// Value returns the parsed value, or the default when the option was not parsed
func (i *Int) Value() int64 {
	if i.wasParsed {
		return i.value
	}
	return i.defaultValue
}

func (i *Int) DefaultValue() int64 {
	return i.defaultValue
}

func (i *Int) HasValue() bool {
	return i.wasParsed || i.hasDefault
}

func (i *Int) HasDefaultValue() bool {
	return i.hasDefault
}

func (i *Int) IsValueOptional() bool {
	return false
}

func (i *Int) Parse(ctx *Context, arg string, isShort bool) bool {
	return i.parseNamed(arg, isShort, false, func(value string) bool {
		n, ok := parseInt64(value)
		if !ok {
			return ctx.Fail(errs.ErrExpectedInteger.WithArgs(ctx.Prefix(), i.name, value))
		}
		i.value = n
		return true
	})
}

func (i *Int) WriteHint(tb layout.TextBuilder) {
	i.writeValueHint(tb, metaVarHint(i.MetaVar(), false))
}

func (i *Int) WriteHelp(tb layout.TextBuilder) {
	i.WriteHint(tb)
	i.writeDescription(tb)
}

func (i *Int) reset() {
	i.value = 0
	i.wasParsed = false
}

// parseInt64 accepts an optional '-' followed by decimal digits and nothing else
func parseInt64(s string) (int64, bool) {
	if s == "" || s[0] == '+' {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String is an option holding text verbatim
type String struct {
	option
	value        string
	defaultValue string
	hasDefault   bool
}

// NewString describes a text option. Without WithDefault the option is required.
func NewString(name string, configs ...ConfigureArgFunc) *String {
	o, cfg := newOption(name, configs, true)
	s := &String{option: o, hasDefault: cfg.HasDefault}
	if cfg.HasDefault {
		def, err := defaultString(name, cfg)
		s.fail(err)
		s.defaultValue = def
	}
	if cfg.emptyValuesSet {
		s.fail(errs.ErrUnsupportedSetting.WithArgs("WithEmptyValues", name))
	}

	return s
}

func (s *String) Value() string {
	if s.wasParsed {
		return s.value
	}
	return s.defaultValue
}

func (s *String) DefaultValue() string {
	return s.defaultValue
}

func (s *String) HasValue() bool {
	return s.wasParsed || s.hasDefault
}

func (s *String) HasDefaultValue() bool {
	return s.hasDefault
}

func (s *String) IsValueOptional() bool {
	return false
}

func (s *String) Parse(ctx *Context, arg string, isShort bool) bool {
	return s.parseNamed(arg, isShort, false, func(value string) bool {
		s.value = value
		return true
	})
}

func (s *String) WriteHint(tb layout.TextBuilder) {
	s.writeValueHint(tb, metaVarHint(s.MetaVar(), false))
}

func (s *String) WriteHelp(tb layout.TextBuilder) {
	s.WriteHint(tb)
	s.writeDescription(tb)
}

func (s *String) reset() {
	s.value = ""
	s.wasParsed = false
}

// Choice is an option whose value must be one of an ordered set of candidates
type Choice struct {
	option
	choices    []string
	valueIdx   int
	defaultIdx int
	hasDefault bool
}

// NewChoice describes an option accepting one of choices. WithDefault takes
// either a candidate index or a candidate. An index outside the candidates,
// negative ones included, selects the last candidate.
func NewChoice(name string, choices []string, configs ...ConfigureArgFunc) *Choice {
	o, cfg := newOption(name, configs, true)
	c := &Choice{
		option:     o,
		choices:    append([]string(nil), choices...),
		hasDefault: cfg.HasDefault,
	}
	if len(c.choices) == 0 {
		c.fail(errs.ErrEmptyChoices.WithArgs(name))
		c.hasDefault = false
		return c
	}
	if cfg.emptyValuesSet {
		c.fail(errs.ErrUnsupportedSetting.WithArgs("WithEmptyValues", name))
	}
	if cfg.HasDefault {
		switch def := cfg.Default.(type) {
		case string:
			idx := c.index(def)
			if idx < 0 {
				c.fail(errs.ErrUnknownChoiceDefault.WithArgs(def, name))
				idx = 0
			}
			c.defaultIdx = idx
		default:
			n, err := defaultInt(name, cfg)
			c.fail(err)
			if n < 0 || n >= int64(len(c.choices)) {
				c.defaultIdx = len(c.choices) - 1
			} else {
				c.defaultIdx = int(n)
			}
		}
	}

	return c
}

// Choices returns the candidates in declaration order
func (c *Choice) Choices() []string {
	return c.choices
}

// Value returns the chosen candidate, the default candidate when the option
// was not parsed, or an empty string when neither exists
func (c *Choice) Value() string {
	switch {
	case c.wasParsed:
		return c.choices[c.valueIdx]
	case c.hasDefault:
		return c.choices[c.defaultIdx]
	default:
		return ""
	}
}

// Index returns the position of Value among the candidates, -1 without a value
func (c *Choice) Index() int {
	switch {
	case c.wasParsed:
		return c.valueIdx
	case c.hasDefault:
		return c.defaultIdx
	default:
		return -1
	}
}

func (c *Choice) DefaultValue() string {
	if !c.hasDefault {
		return ""
	}
	return c.choices[c.defaultIdx]
}

func (c *Choice) HasValue() bool {
	return c.wasParsed || c.hasDefault
}

func (c *Choice) HasDefaultValue() bool {
	return c.hasDefault
}

func (c *Choice) IsValueOptional() bool {
	return false
}

func (c *Choice) Parse(ctx *Context, arg string, isShort bool) bool {
	return c.parseNamed(arg, isShort, false, func(value string) bool {
		idx := c.index(value)
		if idx < 0 {
			return ctx.Fail(errs.ErrExpectedChoice.WithArgs(c.choiceString(), ctx.Prefix(), c.name, value))
		}
		c.valueIdx = idx
		return true
	})
}

func (c *Choice) WriteHint(tb layout.TextBuilder) {
	c.writeValueHint(tb, c.choiceString())
}

func (c *Choice) WriteHelp(tb layout.TextBuilder) {
	c.WriteHint(tb)
	c.writeDescription(tb)
}

func (c *Choice) reset() {
	c.valueIdx = 0
	c.wasParsed = false
}

func (c *Choice) index(value string) int {
	for i, choice := range c.choices {
		if choice == value {
			return i
		}
	}
	return -1
}

// choiceString renders {a,b,c}
func (c *Choice) choiceString() string {
	return "{" + strings.Join(c.choices, ",") + "}"
}

// Collection accumulates every occurrence of the option in order. It always
// has a value, empty unless a []string default is configured; the first
// parsed occurrence replaces the default.
type Collection struct {
	option
	values        []string
	defaultValues []string
	acceptEmpty   bool
}

// NewCollection describes a repeatable option
func NewCollection(name string, configs ...ConfigureArgFunc) *Collection {
	o, cfg := newOption(name, configs, true)
	c := &Collection{option: o, acceptEmpty: cfg.AcceptEmpty}
	def, err := defaultStrings(name, cfg)
	c.fail(err)
	c.defaultValues = def

	return c
}

func (c *Collection) Value() []string {
	if c.wasParsed {
		return c.values
	}
	return c.defaultValues
}

func (c *Collection) DefaultValue() []string {
	return c.defaultValues
}

// AcceptsEmptyValues reports whether empty values are accepted
func (c *Collection) AcceptsEmptyValues() bool {
	return c.acceptEmpty
}

func (c *Collection) HasValue() bool {
	return true
}

func (c *Collection) HasDefaultValue() bool {
	return true
}

func (c *Collection) IsValueOptional() bool {
	return c.acceptEmpty
}

func (c *Collection) Parse(ctx *Context, arg string, isShort bool) bool {
	return c.parseNamed(arg, isShort, c.acceptEmpty, func(value string) bool {
		if value == "" && !c.acceptEmpty {
			return ctx.Fail(errs.ErrEmptyValue.WithArgs(ctx.Prefix(), c.name))
		}
		c.values = append(c.values, value)
		return true
	})
}

func (c *Collection) WriteHint(tb layout.TextBuilder) {
	c.writeValueHint(tb, metaVarHint(c.MetaVar(), c.acceptEmpty))
}

func (c *Collection) WriteHelp(tb layout.TextBuilder) {
	c.WriteHint(tb)
	c.writeDescription(tb)
}

func (c *Collection) reset() {
	c.values = nil
	c.wasParsed = false
}

// Time is an option holding a date and/or time in any layout dateparse
// recognizes, e.g. 2024-03-01, "Mar 1 2024 10:00" or 1709287200
type Time struct {
	option
	value        time.Time
	defaultValue time.Time
	hasDefault   bool
}

// NewTime describes a date/time option. Without WithDefault the option is required.
func NewTime(name string, configs ...ConfigureArgFunc) *Time {
	o, cfg := newOption(name, configs, true)
	t := &Time{option: o, hasDefault: cfg.HasDefault}
	if cfg.HasDefault {
		def, err := defaultTime(name, cfg)
		t.fail(err)
		t.defaultValue = def
	}
	if cfg.emptyValuesSet {
		t.fail(errs.ErrUnsupportedSetting.WithArgs("WithEmptyValues", name))
	}

	return t
}

func (t *Time) Value() time.Time {
	if t.wasParsed {
		return t.value
	}
	return t.defaultValue
}

func (t *Time) DefaultValue() time.Time {
	return t.defaultValue
}

func (t *Time) HasValue() bool {
	return t.wasParsed || t.hasDefault
}

func (t *Time) HasDefaultValue() bool {
	return t.hasDefault
}

func (t *Time) IsValueOptional() bool {
	return false
}

func (t *Time) Parse(ctx *Context, arg string, isShort bool) bool {
	return t.parseNamed(arg, isShort, false, func(value string) bool {
		parsed, err := dateparse.ParseAny(value)
		if err != nil {
			return ctx.Fail(errs.ErrExpectedTime.WithArgs(ctx.Prefix(), t.name, value))
		}
		t.value = parsed
		return true
	})
}

func (t *Time) WriteHint(tb layout.TextBuilder) {
	t.writeValueHint(tb, metaVarHint(t.MetaVar(), false))
}

func (t *Time) WriteHelp(tb layout.TextBuilder) {
	t.WriteHint(tb)
	t.writeDescription(tb)
}

func (t *Time) reset() {
	t.value = time.Time{}
	t.wasParsed = false
}
