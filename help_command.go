package goargs

import (
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/layout"
)

const (
	// PrintBrief lists subcommands by their hint
	PrintBrief = "brief"
	// PrintFull renders the help of every subcommand recursively
	PrintFull = "full"
)

// HelpCommand is a subcommand named "help" which renders the help of the
// command it is attached to, or of a command below it:
//
//	prog help remote add
//	prog help --print=full remote.add
type HelpCommand struct {
	*Command
	print *Choice
	path  *VariadicArg
}

// NewHelpCommand describes a help subcommand. Attach it with WithHelpCommand.
func NewHelpCommand() *HelpCommand {
	h := &HelpCommand{
		print: NewChoice("print", []string{PrintBrief, PrintFull},
			WithShortName("P"),
			WithMetaVar("TYPE"),
			WithDescription("Print all subcommands and their options. (default: brief)"),
			WithDefault(0)),
		path: NewVariadicArg("CMD",
			WithDescription("The path to the command to print the help message for.")),
	}
	h.Command = NewCommand("help",
		WithCommandDescription("Prints this help message."),
		WithOption(h.print),
		WithPositional(h.path))

	return h
}

// Print returns the selected print mode, PrintBrief or PrintFull
func (h *HelpCommand) Print() string {
	return h.print.Value()
}

// Target returns the command path requested on the command line
func (h *HelpCommand) Target() []string {
	return h.path.Value()
}

// Resolve returns the command whose help was requested
func (h *HelpCommand) Resolve() (*Command, error) {
	node, _, err := h.resolve()
	return node, err
}

// resolve walks the requested path from the parent of the help command. It
// also returns the names of the resolved commands between the parent and the
// target, each followed by a space.
func (h *HelpCommand) resolve() (*Command, string, error) {
	node := h.parent
	if node == nil {
		node = h.Command
	}

	segments := deque.New()
	// empty segments are kept so that `help ""` reports a missing command
	for _, token := range h.path.Value() {
		for _, segment := range strings.Split(token, ".") {
			segments.PushBack(segment)
		}
	}

	pathUntilLast := ""
	for segments.Len() > 0 {
		v, _ := segments.PopFront()
		segment := v.(string)
		next, ok := node.Subcommand(segment)
		if !ok {
			return nil, pathUntilLast, errs.ErrHelpNotFound.WithArgs(pathUntilLast, segment)
		}
		if segments.Len() > 0 {
			pathUntilLast += segment + " "
		}
		node = next
	}

	return node, pathUntilLast, nil
}

// Write renders the requested help into tb. Options are always shown in
// full; subcommands are listed by hint unless --print=full was given. An
// unknown path renders a single "Could not find help" line.
func (h *HelpCommand) Write(tb layout.TextBuilder) {
	node, prefix, err := h.resolve()
	if err != nil {
		tb.PutText(err.Error())
		tb.NewLine()
		return
	}

	tb.PutText(prefix)
	node.WriteHelp(tb, false, h.Print() == PrintBrief)
}
