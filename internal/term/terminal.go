package term

import (
	"golang.org/x/term"
)

// Terminal reports terminal properties of a file descriptor
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// IsTerminal checks if fd is attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the visible dimensions of the terminal attached to fd
func (t *DefaultTerminal) GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

// Width returns the column count of the terminal attached to fd, or fallback
// when fd is not a terminal or its size cannot be determined. A nil terminal
// means DefaultTerminal.
func Width(t Terminal, fd int, fallback int) int {
	if t == nil {
		t = &DefaultTerminal{}
	}
	if !t.IsTerminal(fd) {
		return fallback
	}
	w, _, err := t.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}

	return w
}
