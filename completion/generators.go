package completion

import (
	"github.com/napalu/goargs/errs"
)

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// SupportedShells lists the shells GetGenerator knows about
var SupportedShells = []string{"bash", "zsh", "fish", "powershell"}

// GetGenerator returns the generator for shell
func GetGenerator(shell string) (Generator, error) {
	switch shell {
	case "bash":
		return &BashGenerator{}, nil
	case "zsh":
		return &ZshGenerator{}, nil
	case "fish":
		return &FishGenerator{}, nil
	case "powershell", "pwsh":
		return &PowerShellGenerator{}, nil
	default:
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}
}
