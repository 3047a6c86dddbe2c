package goargs

import "github.com/napalu/goargs/errs"

// WithCommandDescription sets the description shown in help output
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.description = description
	}
}

// WithOption attaches options to the command. An option can be attached to
// one command only; its long and short names must be unique within the command.
func WithOption(options ...Option) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		for _, opt := range options {
			if e := cmd.addOption(opt); e != nil {
				*err = e
				return
			}
		}
	}
}

// WithPositional attaches positional arguments to the command. Positionals are
// filled in the order they are attached.
func WithPositional(positionals ...Positional) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		for _, p := range positionals {
			if e := cmd.addPositional(p); e != nil {
				*err = e
				return
			}
		}
	}
}

// WithSubcommand attaches subcommands. Subcommands are tried in the order they
// are attached.
func WithSubcommand(subcommands ...*Command) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		for _, sub := range subcommands {
			if e := cmd.addSubcommand(sub); e != nil {
				*err = e
				return
			}
		}
	}
}

// WithHelpCommand attaches a help subcommand rendering help for this command
// and the commands below it.
func WithHelpCommand(help *HelpCommand) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		if help == nil {
			*err = errs.ErrNilArgument.WithArgs("help command", cmd.name)
			return
		}
		*err = cmd.addSubcommand(help.Command)
	}
}

// WithPrefixes sets the long and short option prefixes of the whole tree. An
// empty short prefix disables short options. Root command only.
func WithPrefixes(prefix, shortPrefix string) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		if !cmd.root {
			*err = errs.ErrRootOnly.WithArgs("prefixes", cmd.name)
			return
		}
		if prefix == "" {
			*err = errs.ErrEmptyPrefix
			return
		}
		cmd.prefix = prefix
		cmd.shortPrefix = shortPrefix
	}
}

// WithNameConverter converts every option long name of the tree when the
// tree is built, e.g. WithNameConverter(ToKebabCase) turns "dryRun" into
// "dry-run". Root command only.
func WithNameConverter(converter NameConversionFunc) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		if !cmd.root {
			*err = errs.ErrRootOnly.WithArgs("name conversion", cmd.name)
			return
		}
		cmd.converter = converter
	}
}
