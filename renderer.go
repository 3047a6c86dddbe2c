package goargs

import (
	"strings"

	"github.com/napalu/goargs/layout"
)

// WriteHint renders the one-line usage of the command:
//
//	name [...OPTIONS] [sub1|sub2 ...] [--] <REQUIRED> [OPTIONAL] [...VARIADIC]
func (c *Command) WriteHint(tb layout.TextBuilder) {
	tb.PutText(c.name)
	if c.options.Len() > 0 {
		tb.PutText(" [...OPTIONS]")
	}
	if c.subcommands.Len() > 0 {
		names := make([]string, 0, c.subcommands.Len())
		for pair := c.subcommands.Oldest(); pair != nil; pair = pair.Next() {
			names = append(names, pair.Key)
		}
		tb.PutText(" [" + strings.Join(names, "|") + " ...]")
	}
	if len(c.positionals) > 0 {
		tb.PutText(" [--]")
		for _, pos := range c.positionals {
			tb.PutText(" ")
			pos.WriteHint(tb)
		}
	}
}

// WriteHelp renders the help page of the command: its hint and description,
// the positionals that have a description, then the OPTIONS and SUBCOMMANDS
// sections. briefOptions lists options by hint only; briefSubcommands lists
// subcommands by hint instead of rendering their help recursively.
func (c *Command) WriteHelp(tb layout.TextBuilder, briefOptions, briefSubcommands bool) {
	c.WriteHint(tb)
	tb.Spacer()

	if c.description != "" {
		tb.Indent()
		tb.PutText(c.description)
		tb.DeIndent()
		tb.Spacer()
	}

	for _, pos := range c.positionals {
		if pos.Description() != "" {
			pos.WriteHelp(tb)
			tb.Spacer()
		}
	}

	if c.options.Len() > 0 {
		tb.PutText("OPTIONS:")
		tb.NewLine()
		for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
			tb.Indent()
			if briefOptions {
				pair.Value.WriteHint(tb)
				tb.DeIndent()
				tb.NewLine()
			} else {
				pair.Value.WriteHelp(tb)
				tb.DeIndent()
				tb.Spacer()
			}
		}
		if briefOptions {
			tb.Spacer()
		}
	}

	if c.subcommands.Len() > 0 {
		tb.PutText("SUBCOMMANDS:")
		tb.NewLine()
		for pair := c.subcommands.Oldest(); pair != nil; pair = pair.Next() {
			tb.Indent()
			if briefSubcommands {
				pair.Value.WriteHint(tb)
				tb.DeIndent()
				tb.NewLine()
			} else {
				pair.Value.WriteHelp(tb, briefOptions, briefSubcommands)
				tb.DeIndent()
				tb.Spacer()
			}
		}
		if briefSubcommands {
			tb.Spacer()
		}
	}
}
