package goargs

import "github.com/napalu/goargs/errs"

// Context is the state shared by every node of a parser tree: the option
// prefixes and the error slot. There is exactly one per tree.
type Context struct {
	prefix      string
	shortPrefix string
	err         error
}

// NewContext returns a Context with the given prefixes. An empty short prefix
// disables short options.
func NewContext(prefix, shortPrefix string) *Context {
	return &Context{
		prefix:      prefix,
		shortPrefix: shortPrefix,
	}
}

func defaultContext() *Context {
	return NewContext(DefaultPrefix, DefaultShortPrefix)
}

// Prefix returns the long option prefix
func (c *Context) Prefix() string {
	return c.prefix
}

// ShortPrefix returns the short option prefix
func (c *Context) ShortPrefix() string {
	return c.shortPrefix
}

// HasShortPrefix reports whether short options are enabled
func (c *Context) HasShortPrefix() bool {
	return c.shortPrefix != ""
}

// SamePrefixes reports whether long and short options share one prefix
func (c *Context) SamePrefixes() bool {
	return c.prefix == c.shortPrefix
}

// Err returns the error recorded during the last parse
func (c *Context) Err() error {
	return c.err
}

// HasError reports whether a parse error has been recorded
func (c *Context) HasError() bool {
	return c.err != nil
}

// Message returns the text of the recorded error, or an empty string
func (c *Context) Message() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}

// Fail records err unless an error is already present and returns false, so
// value parsers can write `return ctx.Fail(...)`.
func (c *Context) Fail(err error) bool {
	if c.err == nil {
		c.err = err
	}
	return false
}

func (c *Context) clear() {
	c.err = nil
}

func (c *Context) unexpectedPositional(arg string) bool {
	return c.Fail(errs.ErrUnexpectedPositional.WithArgs(arg))
}
