package goargs

import (
	"strings"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/parse"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func (p *Parser) build() error {
	p.ctx = NewContext(p.prefix, p.shortPrefix)
	return p.bind(p.Command)
}

// bind shares the context with cmd, applies name conversion and checks the
// names of cmd and everything below it
func (p *Parser) bind(cmd *Command) error {
	if cmd.err != nil {
		return cmd.err
	}
	cmd.ctx = p.ctx

	if p.converter != nil {
		converted := orderedmap.New[string, Option]()
		for pair := cmd.options.Oldest(); pair != nil; pair = pair.Next() {
			b := pair.Value.base()
			b.name = p.converter(b.name)
			if b.name == "" {
				return errs.ErrEmptyName
			}
			if _, exists := converted.Get(b.name); exists {
				return errs.ErrOptionAlreadyExists.WithArgs(b.name, cmd.name)
			}
			converted.Set(b.name, pair.Value)
		}
		cmd.options = converted
	}

	shortNames := make(map[string]string, cmd.options.Len())
	for pair := cmd.options.Oldest(); pair != nil; pair = pair.Next() {
		b := pair.Value.base()
		if b.err != nil {
			return b.err
		}
		if b.shortName == "" {
			continue
		}
		if other, exists := shortNames[b.shortName]; exists {
			return errs.ErrShortNameConflict.WithArgs(b.shortName, b.name, other, cmd.name)
		}
		shortNames[b.shortName] = b.name
	}
	for _, pos := range cmd.positionals {
		if err := pos.base().err; err != nil {
			return err
		}
	}

	for pair := cmd.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		if err := p.bind(pair.Value); err != nil {
			return err
		}
	}

	return nil
}

// reset restores every value of the tree to its default and clears the error slot
func (p *Parser) reset() {
	p.ctx.clear()
	var groups []*FlagGroup
	walk(p.Command, func(cmd *Command) {
		cmd.wasUsed = false
		for pair := cmd.options.Oldest(); pair != nil; pair = pair.Next() {
			pair.Value.reset()
			if g, ok := pair.Value.(*FlagGroup); ok {
				groups = append(groups, g)
			}
		}
		for _, pos := range cmd.positionals {
			pos.reset()
		}
	})
	// groups go last so members attached before their group see the group default
	for _, g := range groups {
		g.propagate()
	}
}

func walk(cmd *Command, fn func(*Command)) {
	fn(cmd)
	for pair := cmd.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		walk(pair.Value, fn)
	}
}

func selected(cmd *Command) *Command {
	if cmd.wasUsed {
		return cmd
	}
	for pair := cmd.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		if found := selected(pair.Value); found != nil {
			return found
		}
	}
	return nil
}

// parse matches the tokens from the current state position on. The current
// token must be the command name, otherwise parse returns false and leaves no
// trace. Once a subcommand takes over the remaining tokens, the outcome is the
// subcommand's and this command is no longer marked as used.
func (c *Command) parse(ctx *Context, state parse.State) bool {
	if state.Pos() < 0 || state.CurrentArg() != c.name {
		return false
	}

	c.wasUsed = true
	positionalOnly := false
	positionalIdx := 0

	for state.Advance() {
		token := state.CurrentArg()

		if !positionalOnly {
			switch {
			case token == PositionalSeparator:
				positionalOnly = true
				continue
			case strings.HasPrefix(token, ctx.Prefix()):
				if !c.parseOption(ctx, token, token[len(ctx.Prefix()):], false) {
					return false
				}
				continue
			case ctx.HasShortPrefix() && strings.HasPrefix(token, ctx.ShortPrefix()):
				if !c.parseOption(ctx, token, token[len(ctx.ShortPrefix()):], true) {
					return false
				}
				continue
			}

			for pair := c.subcommands.Oldest(); pair != nil; pair = pair.Next() {
				if pair.Value.parse(ctx, state.Fork()) {
					c.wasUsed = false
					return true
				}
				if ctx.HasError() {
					return false
				}
			}
			positionalOnly = true
		}

		if positionalIdx >= len(c.positionals) {
			return ctx.unexpectedPositional(token)
		}
		pos := c.positionals[positionalIdx]
		if !pos.Parse(ctx, token) {
			return false
		}
		if !pos.IsVariadic() {
			positionalIdx++
		}
	}

	return c.validate(ctx)
}

// parseOption offers arg to each option in declaration order. When both
// prefixes are the same, each option is tried in the detected form first and
// then in the other one.
func (c *Command) parseOption(ctx *Context, token, arg string, isShort bool) bool {
	samePrefixes := ctx.SamePrefixes()
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value
		if opt.Parse(ctx, arg, isShort) {
			return true
		}
		if ctx.HasError() {
			return false
		}
		if samePrefixes {
			if opt.Parse(ctx, arg, !isShort) {
				return true
			}
			if ctx.HasError() {
				return false
			}
		}
	}

	return ctx.Fail(errs.ErrUnknownOption.WithArgs(token))
}

func (c *Command) validate(ctx *Context) bool {
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.HasValue() {
			return ctx.Fail(errs.ErrMissingOption.WithArgs(ctx.Prefix(), pair.Value.Name()))
		}
	}
	for _, pos := range c.positionals {
		if !pos.HasValue() {
			return ctx.Fail(errs.ErrMissingArgument.WithArgs(pos.MetaVar()))
		}
	}

	return !ctx.HasError()
}
