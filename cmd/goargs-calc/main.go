package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/napalu/goargs"
	"github.com/napalu/goargs/completion"
	"github.com/napalu/goargs/layout"
)

const programName = "goargs-calc"

type calc struct {
	parser *goargs.Parser
	logger *log.Logger

	a, b    *goargs.Int
	op      *goargs.Choice
	verbose *goargs.Flag

	mean *goargs.Command
	x, y *goargs.FloatArg

	days     *goargs.Command
	from, to *goargs.Time

	complete *goargs.Command
	shell    *goargs.Choice

	help *goargs.HelpCommand
}

func newCalc() (*calc, error) {
	c := &calc{
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: programName,
		}),
		a:       goargs.NewInt("a", goargs.WithShortName("a"), goargs.WithDescription("First operand.")),
		b:       goargs.NewInt("b", goargs.WithShortName("b"), goargs.WithDescription("Second operand.")),
		op:      goargs.NewChoice("op", []string{"+", "-", "*", "/"}, goargs.WithShortName("o"), goargs.WithDefault("+"), goargs.WithDescription("Operation applied to the operands.")),
		verbose: goargs.NewFlag("verbose", goargs.WithShortName("v"), goargs.WithDescription("Log each step.")),
		x:       goargs.NewFloatArg("X", goargs.WithDescription("First number.")),
		y:       goargs.NewFloatArg("Y", goargs.WithDefault(0), goargs.WithDescription("Second number. (default: 0)")),
		from:    goargs.NewTime("from", goargs.WithDescription("First day, e.g. 2024-03-01.")),
		to:      goargs.NewTime("to", goargs.WithDefault(time.Now()), goargs.WithDescription("Last day. (default: today)")),
		shell:   goargs.NewChoice("shell", completion.SupportedShells, goargs.WithDefault(0), goargs.WithDescription("Target shell.")),
		help:    goargs.NewHelpCommand(),
	}
	c.mean = goargs.NewCommand("mean",
		goargs.WithCommandDescription("Prints the arithmetic mean of X and Y."),
		goargs.WithPositional(c.x, c.y))
	c.days = goargs.NewCommand("days",
		goargs.WithCommandDescription("Counts the days between two dates."),
		goargs.WithOption(c.from, c.to))
	c.complete = goargs.NewCommand("completion",
		goargs.WithCommandDescription("Prints a shell completion script."),
		goargs.WithOption(c.shell))

	var err error
	c.parser, err = goargs.NewParserWith(programName,
		goargs.WithCommandDescription("Applies an operation to two integers."),
		goargs.WithOption(c.a, c.b, c.op, c.verbose),
		goargs.WithSubcommand(c.mean, c.days, c.complete),
		goargs.WithHelpCommand(c.help))
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *calc) run(args []string) int {
	if !c.parser.Parse(args) {
		if c.parser.HasError() {
			c.logger.Error(c.parser.Message())
		}
		_ = c.parser.PrintHint(os.Stderr)
		return 1
	}
	if c.verbose.Value() {
		c.logger.SetLevel(log.DebugLevel)
	}

	switch c.parser.Selected() {
	case c.help.Command:
		tb := layout.NewBuilder(layout.WithTerminalWidth(os.Stdout.Fd()))
		c.help.Write(tb)
		fmt.Print(tb.Build())
	case c.mean:
		x, y := c.x.Value(), c.y.Value()
		c.logger.Debug("averaging", "x", x, "y", y)
		fmt.Println((x + y) / 2)
	case c.days:
		d := c.to.Value().Sub(c.from.Value())
		fmt.Println(int(d.Hours() / 24))
	case c.complete:
		script, err := c.parser.GenerateCompletion(c.shell.Value())
		if err != nil {
			c.logger.Error("could not generate completion", "shell", c.shell.Value(), "error", err)
			return 1
		}
		fmt.Print(script)
	default:
		return c.runOperation()
	}

	return 0
}

func (c *calc) runOperation() int {
	a, b := c.a.Value(), c.b.Value()
	c.logger.Debug("applying operation", "a", a, "b", b, "op", c.op.Value())

	var result int64
	switch c.op.Value() {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			c.logger.Error("division by zero")
			return 1
		}
		result = a / b
	}
	fmt.Println(result)

	return 0
}

func main() {
	c, err := newCalc()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// the root command matches its own name, not the path the binary was started from
	os.Exit(c.run(append([]string{programName}, os.Args[1:]...)))
}
