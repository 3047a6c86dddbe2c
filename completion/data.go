// Package completion renders shell completion scripts for a command tree.
package completion

// CompletionValue represents a possible value for a flag with its description
type CompletionValue struct {
	Pattern     string // The literal value
	Description string // Human-readable description
}

// FlagPair represents a short and long version of the same flag. Names are
// stored without prefixes.
type FlagPair struct {
	Long        string
	Short       string
	Description string
	// TakesValue is set for options written as --name=value
	TakesValue bool
	// Negatable is set for boolean flags which also accept --no-name
	Negatable bool
	Values    []CompletionValue
}

// CompletionData holds all the data needed for shell completion. Commands are
// space-separated paths below the program, e.g. "remote add". The empty path
// keys the program itself in CommandFlags.
type CompletionData struct {
	Prefix              string
	ShortPrefix         string
	Commands            []string
	CommandDescriptions map[string]string
	Flags               []FlagPair
	CommandFlags        map[string][]FlagPair
}

// FlagsFor returns the flags accepted directly by the command at path
func (d CompletionData) FlagsFor(path string) []FlagPair {
	if path == "" {
		return d.Flags
	}
	return d.CommandFlags[path]
}

// Children returns the direct subcommand names of the command at path
func (d CompletionData) Children(path string) []string {
	var children []string
	for _, cmd := range d.Commands {
		parent, name := splitPath(cmd)
		if parent == path {
			children = append(children, name)
		}
	}
	return children
}

// Paths returns the program path followed by every command path
func (d CompletionData) Paths() []string {
	return append([]string{""}, d.Commands...)
}

func splitPath(path string) (parent, name string) {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == ' ' {
			return path[:i], path[i+1:]
		}
	}
	return "", path
}
