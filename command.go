package goargs

import (
	"strings"

	"github.com/napalu/goargs/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Command is a node of a parser tree: a name, its options, its positional
// arguments and its subcommands. The root of a tree is owned by a Parser.
type Command struct {
	name        string
	description string
	options     *orderedmap.OrderedMap[string, Option]
	positionals []Positional
	subcommands *orderedmap.OrderedMap[string, *Command]
	parent      *Command
	ctx         *Context
	wasUsed     bool
	root        bool
	err         error

	// root-only settings
	prefix      string
	shortPrefix string
	converter   NameConversionFunc
}

// NewCommand creates a Command. Configuration errors are kept on the command
// and reported when the tree is built by NewParserWith.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := newCommand(name)
	cmd.Set(configs...)

	return cmd
}

func newCommand(name string) *Command {
	cmd := &Command{
		name:        name,
		options:     orderedmap.New[string, Option](),
		subcommands: orderedmap.New[string, *Command](),
		prefix:      DefaultPrefix,
		shortPrefix: DefaultShortPrefix,
	}
	if name == "" {
		cmd.err = errs.ErrEmptyName
	}

	return cmd
}

// Set applies configs to the command, keeping the first error for
// NewParserWith. Once the command belongs to a built parser tree the tree is
// frozen: Set changes nothing and returns ErrAlreadyBuilt.
func (c *Command) Set(configs ...ConfigureCommandFunc) error {
	if c.ctx != nil {
		return errs.ErrAlreadyBuilt.WithArgs(c.name)
	}
	for _, config := range configs {
		var err error
		config(c, &err)
		if err != nil && c.err == nil {
			c.err = err
		}
	}

	return c.err
}

// Name returns the token which selects the command
func (c *Command) Name() string {
	return c.name
}

func (c *Command) Description() string {
	return c.description
}

// Parent returns the enclosing command, nil for the root
func (c *Command) Parent() *Command {
	return c.parent
}

// Path returns the names from the root to this command, separated by spaces
func (c *Command) Path() string {
	if c.parent == nil {
		return c.name
	}
	return c.parent.Path() + " " + c.name
}

// Context returns the state shared by the tree, nil until the tree is built
func (c *Command) Context() *Context {
	return c.ctx
}

// Options returns the options in declaration order
func (c *Command) Options() []Option {
	out := make([]Option, 0, c.options.Len())
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Option returns the option with the given long name
func (c *Command) Option(name string) (Option, bool) {
	return c.options.Get(name)
}

// Positionals returns the positional arguments in declaration order
func (c *Command) Positionals() []Positional {
	return c.positionals
}

// Subcommands returns the direct subcommands in declaration order
func (c *Command) Subcommands() []*Command {
	out := make([]*Command, 0, c.subcommands.Len())
	for pair := c.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Subcommand returns the direct subcommand with the given name
func (c *Command) Subcommand(name string) (*Command, bool) {
	return c.subcommands.Get(name)
}

// Lookup resolves a path of subcommand names below c. Segments may also be
// joined with '.', so Lookup("remote.add") equals Lookup("remote", "add").
// An empty path returns c.
func (c *Command) Lookup(path ...string) (*Command, bool) {
	node := c
	for _, segment := range splitPath(path) {
		next, ok := node.Subcommand(segment)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// WasUsed reports whether the last parse ended in this command: its name
// matched and no subcommand took over the remaining tokens.
func (c *Command) WasUsed() bool {
	return c.wasUsed
}

// Invoked reports whether the command was used by a successful parse and all
// of its own options and positionals have a value.
func (c *Command) Invoked() bool {
	if !c.wasUsed || c.ctx == nil || c.ctx.HasError() {
		return false
	}
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.HasValue() {
			return false
		}
	}
	for _, p := range c.positionals {
		if !p.HasValue() {
			return false
		}
	}
	return true
}

func (c *Command) fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

func (c *Command) addOption(opt Option) error {
	if opt == nil {
		return errs.ErrNilArgument.WithArgs("option", c.name)
	}
	b := opt.base()
	if b.owner != nil {
		return errs.ErrAlreadyAttached.WithArgs(b.name, b.owner.name)
	}
	if b.err != nil {
		return b.err
	}
	if _, exists := c.options.Get(b.name); exists {
		return errs.ErrOptionAlreadyExists.WithArgs(b.name, c.name)
	}
	b.owner = c
	c.options.Set(b.name, opt)

	return nil
}

func (c *Command) addPositional(p Positional) error {
	if p == nil {
		return errs.ErrNilArgument.WithArgs("positional", c.name)
	}
	b := p.base()
	if b.owner != nil {
		return errs.ErrAlreadyAttached.WithArgs(b.metaVar, b.owner.name)
	}
	if b.err != nil {
		return b.err
	}
	b.owner = c
	c.positionals = append(c.positionals, p)

	return nil
}

func (c *Command) addSubcommand(sub *Command) error {
	if sub == nil {
		return errs.ErrNilArgument.WithArgs("command", c.name)
	}
	if sub.parent != nil || sub.root {
		owner := sub.name
		if sub.parent != nil {
			owner = sub.parent.name
		}
		return errs.ErrAlreadyAttached.WithArgs(sub.name, owner)
	}
	for node := c; node != nil; node = node.parent {
		if node == sub {
			return errs.ErrAlreadyAttached.WithArgs(sub.name, c.name)
		}
	}
	if sub.err != nil {
		return sub.err
	}
	if _, exists := c.subcommands.Get(sub.name); exists {
		return errs.ErrCommandAlreadyExists.WithArgs(sub.name, c.name)
	}
	sub.parent = c
	c.subcommands.Set(sub.name, sub)

	return nil
}

func splitPath(path []string) []string {
	var segments []string
	for _, p := range path {
		for _, s := range strings.Split(p, ".") {
			if s != "" {
				segments = append(segments, s)
			}
		}
	}
	return segments
}
