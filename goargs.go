// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package goargs parses command lines into typed options, positional
// arguments and nested subcommands, and renders hints and help pages for them.
//
// A parser tree is described first and built once:
//
//	a := goargs.NewInt("a", goargs.WithShortName("a"), goargs.WithDescription("first operand"))
//	op := goargs.NewChoice("op", []string{"+", "-"}, goargs.WithDefault(0))
//	parser, err := goargs.NewParserWith("calc", goargs.WithOption(a, op))
//	if err != nil {
//		// the tree is inconsistent, e.g. two options share a name
//	}
//	if !parser.Parse(os.Args) {
//		fmt.Fprintln(os.Stderr, parser.Message())
//	}
//
// Parse errors never panic; the first one aborts the parse and is kept in the
// Context shared by every command of the tree.
package goargs

import (
	"io"
	"os"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/parse"
	"github.com/napalu/goargs/layout"
)

// Parser owns the root command of a tree and the Context shared by the tree.
// A Parser must not be used from several goroutines at once.
type Parser struct {
	*Command
}

// NewParserWith builds a parser tree rooted at a command named name, which is
// matched against the first token. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	remote := goargs.NewCommand("remote",
//		goargs.WithCommandDescription("Manage remotes"),
//		goargs.WithPositional(goargs.NewStringArg("NAME")))
//	parser, err := goargs.NewParserWith("git",
//		goargs.WithOption(goargs.NewFlag("verbose", goargs.WithShortName("v"))),
//		goargs.WithSubcommand(remote),
//		goargs.WithHelpCommand(goargs.NewHelpCommand()))
func NewParserWith(name string, configs ...ConfigureCommandFunc) (*Parser, error) {
	root := newCommand(name)
	root.root = true

	var err error
	for _, config := range configs {
		config(root, &err)
		if err != nil {
			return nil, err
		}
	}

	p := &Parser{Command: root}
	if err = p.build(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewParser returns a parser without options, positionals or subcommands. It
// accepts exactly the token list []string{name}.
func NewParser(name, description string) *Parser {
	root := newCommand(name)
	root.root = true
	root.description = description
	p := &Parser{Command: root}
	root.ctx = NewContext(root.prefix, root.shortPrefix)

	return p
}

// Parse resets all values of the tree and matches args against it. args[0]
// must equal the root name. It returns false when the tokens do not fit the
// tree; Err then describes the problem, unless args was empty or args[0] did
// not match.
func (p *Parser) Parse(args []string) bool {
	p.reset()
	if len(args) == 0 {
		return false
	}

	state := parse.NewState(args)
	state.Advance()

	return p.parse(p.ctx, state)
}

// ParseString splits cmdLine using shell quoting rules and parses the result
func (p *Parser) ParseString(cmdLine string) bool {
	args, err := parse.Split(cmdLine)
	if err != nil {
		p.reset()
		return p.ctx.Fail(errs.ErrTokenizing.WithArgs(cmdLine).Wrap(err))
	}

	return p.Parse(args)
}

// Err returns the error of the last parse, nil if there was none
func (p *Parser) Err() error {
	return p.ctx.Err()
}

// HasError reports whether the last parse recorded an error
func (p *Parser) HasError() bool {
	return p.ctx.HasError()
}

// Message returns the text of the last parse error, or an empty string
func (p *Parser) Message() string {
	return p.ctx.Message()
}

// Prefix returns the long option prefix of the tree
func (p *Parser) Prefix() string {
	return p.ctx.Prefix()
}

// ShortPrefix returns the short option prefix of the tree
func (p *Parser) ShortPrefix() string {
	return p.ctx.ShortPrefix()
}

// Selected returns the command in which the last parse ended, nil when the
// root name did not match
func (p *Parser) Selected() *Command {
	return selected(p.Command)
}

// PrintHint writes the one-line usage hint of the root command to w
func (p *Parser) PrintHint(w io.Writer) error {
	tb := builderFor(w)
	p.WriteHint(tb)
	_, err := io.WriteString(w, tb.Build())

	return err
}

// PrintHelp writes the help page of the root command to w, listing options in
// full and subcommands by their hint. When w is a terminal, text wraps at its width.
func (p *Parser) PrintHelp(w io.Writer) error {
	tb := builderFor(w)
	p.WriteHelp(tb, false, true)
	_, err := io.WriteString(w, tb.Build())

	return err
}

func builderFor(w io.Writer) *layout.Builder {
	if f, ok := w.(*os.File); ok {
		return layout.NewBuilder(layout.WithTerminalWidth(f.Fd()))
	}
	return layout.NewBuilder()
}
