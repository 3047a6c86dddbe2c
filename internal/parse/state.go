package parse

// State is a cursor over a token list
type State interface {
	Pos() int           // Get the current position
	CurrentArg() string // Get the current argument
	Advance() bool      // Advance to the next argument
	Fork() State        // Copy the cursor, sharing the argument list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first argument
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Fork returns an independent cursor at the same position
func (s *DefaultState) Fork() State {
	return &DefaultState{
		pos:  s.pos,
		args: s.args,
	}
}
