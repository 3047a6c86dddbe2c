// Package layout accumulates help text into word-wrapped, indented lines.
package layout

import (
	"strings"

	"github.com/napalu/goargs/internal/term"
	"golang.org/x/text/width"
)

const (
	// DefaultIndent is emitted once per indentation level
	DefaultIndent = "  "
	// DefaultMaxWidth is the column at which lines wrap
	DefaultMaxWidth = 80
)

const spaceChars = " \f\n\r\t\v"

// TextBuilder receives a stream of text and layout instructions and turns them
// into one normalized string.
type TextBuilder interface {
	// PutText appends text to the current line, wrapping at word boundaries
	PutText(text string)
	// NewLine flushes the current line
	NewLine()
	// Spacer flushes the current line and ensures one blank line follows it
	Spacer()
	// Indent increases the indentation depth
	Indent()
	// DeIndent decreases the indentation depth, stopping at zero
	DeIndent()
	// Build returns the accumulated text and resets the builder
	Build() string
}

// ConfigureBuilderFunc configures a Builder
type ConfigureBuilderFunc func(b *Builder)

// Builder is the default TextBuilder
type Builder struct {
	indent       string
	indentOnWrap bool
	maxWidth     int
	level        int
	indentWidth  int
	text         strings.Builder
	current      string
	endsBlank    bool
}

// NewBuilder returns a Builder indenting with two spaces, adding an extra
// indentation level to wrapped lines and wrapping at 80 columns.
func NewBuilder(configs ...ConfigureBuilderFunc) *Builder {
	b := &Builder{
		indent:       DefaultIndent,
		indentOnWrap: true,
		maxWidth:     DefaultMaxWidth,
	}
	for _, cfg := range configs {
		cfg(b)
	}

	return b
}

// WithIndent sets the string emitted per indentation level
func WithIndent(indent string) ConfigureBuilderFunc {
	return func(b *Builder) {
		b.indent = indent
	}
}

// WithIndentOnWrap controls whether wrapped continuation lines get one extra
// indentation level
func WithIndentOnWrap(indentOnWrap bool) ConfigureBuilderFunc {
	return func(b *Builder) {
		b.indentOnWrap = indentOnWrap
	}
}

// WithMaxWidth sets the wrap column. Values below 1 are ignored.
func WithMaxWidth(maxWidth int) ConfigureBuilderFunc {
	return func(b *Builder) {
		if maxWidth > 0 {
			b.maxWidth = maxWidth
		}
	}
}

// WithTerminalWidth wraps at the width of the terminal attached to fd, keeping
// the current maximum when fd is not a terminal.
func WithTerminalWidth(fd uintptr) ConfigureBuilderFunc {
	return func(b *Builder) {
		b.maxWidth = term.Width(nil, int(fd), b.maxWidth)
	}
}

// MaxWidth returns the wrap column
func (b *Builder) MaxWidth() int {
	return b.maxWidth
}

func (b *Builder) PutText(text string) {
	for i, segment := range strings.Split(text, "\n") {
		if i > 0 {
			b.NewLine()
		}
		b.putLine(segment)
	}
}

func (b *Builder) NewLine() {
	if strings.TrimLeft(b.current, spaceChars) != "" {
		if b.text.Len() > 0 {
			b.text.WriteByte('\n')
		}
		b.text.WriteString(strings.TrimRight(b.current, spaceChars))
		b.endsBlank = false
	}
	b.current = ""
	b.indentWidth = 0
}

func (b *Builder) Spacer() {
	b.NewLine()
	if b.text.Len() > 0 && !b.endsBlank {
		b.text.WriteByte('\n')
		b.endsBlank = true
	}
}

func (b *Builder) Indent() {
	b.level++
}

func (b *Builder) DeIndent() {
	if b.level > 0 {
		b.level--
	}
}

func (b *Builder) Build() string {
	out := b.text.String()
	if out == "" {
		out = b.current
	} else {
		out += "\n" + b.current
	}
	out = strings.Trim(out, spaceChars)
	b.reset()

	return out + "\n"
}

func (b *Builder) reset() {
	b.text.Reset()
	b.current = ""
	b.level = 0
	b.indentWidth = 0
	b.endsBlank = false
}

func (b *Builder) putLine(text string) {
	for {
		wrapped := b.current != "" &&
			displayWidth(b.current)-b.indentWidth >= b.maxWidth &&
			(isSpace(b.current[len(b.current)-1]) || (text != "" && isSpace(text[0])))
		if wrapped {
			b.NewLine()
		}
		b.putIndent(wrapped)

		idx := strings.IndexAny(text, spaceChars)
		if idx < 0 {
			b.current += text
			return
		}
		if idx > 0 {
			b.current += text[:idx] + " "
		} else if !wrapped {
			b.current += " "
		}
		text = text[idx+1:]
	}
}

func (b *Builder) putIndent(wrapped bool) {
	if b.current != "" {
		return
	}
	b.indentWidth = b.level * displayWidth(b.indent)
	if wrapped && b.indentOnWrap {
		b.indentWidth += displayWidth(b.indent)
		b.current += b.indent
	}
	b.current += strings.Repeat(b.indent, b.level)
}

func isSpace(c byte) bool {
	return strings.IndexByte(spaceChars, c) >= 0
}

// displayWidth counts terminal columns, two for East Asian wide and fullwidth runes
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}
