package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $known = @(%s)
    $cmd = ''
    $elements = $commandAst.CommandElements | Select-Object -Skip 1
    foreach ($element in $elements) {
        if ($element.Extent.EndOffset -ge $cursorPosition) { break }
        $candidate = ("$cmd " + $element.ToString()).Trim()
        if ($known -contains $candidate) { $cmd = $candidate }
    }

    $suggestions = switch ("$cmd") {`, escapePowerShell(programName), quotePowerShellList(data.Commands)))

	for _, path := range data.Paths() {
		var entries []string
		for _, child := range data.Children(path) {
			full := strings.TrimSpace(path + " " + child)
			entries = append(entries, fmt.Sprintf("[CompletionResult]::new('%s', '%s', [CompletionResultType]::Command, '%s')",
				escapePowerShell(child), escapePowerShell(child), escapePowerShell(orName(data.CommandDescriptions[full], child))))
		}
		for _, f := range data.FlagsFor(path) {
			for _, w := range flagWords(data, f) {
				entries = append(entries, fmt.Sprintf("[CompletionResult]::new('%s', '%s', [CompletionResultType]::ParameterName, '%s')",
					escapePowerShell(w), escapePowerShell(w), escapePowerShell(orName(f.Description, w))))
			}
			if f.TakesValue {
				for _, v := range f.Values {
					w := data.Prefix + f.Long + "=" + v.Pattern
					entries = append(entries, fmt.Sprintf("[CompletionResult]::new('%s', '%s', [CompletionResultType]::ParameterValue, '%s')",
						escapePowerShell(w), escapePowerShell(v.Pattern), escapePowerShell(orName(v.Description, v.Pattern))))
				}
			}
		}
		if len(entries) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        '%s' {
            %s
        }`, escapePowerShell(path), strings.Join(entries, "\n            ")))
	}

	script.WriteString(`
    }

    $suggestions | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}

func quotePowerShellList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + escapePowerShell(item) + "'"
	}
	return strings.Join(quoted, ", ")
}

// orName returns desc, or name when desc is empty; CompletionResult rejects empty tooltips
func orName(desc, name string) string {
	if desc == "" {
		return name
	}
	return desc
}
