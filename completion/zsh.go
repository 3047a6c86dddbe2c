package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := identifier(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

function _%s() {
    local cmd="" candidate word cur flag
    local -a subcmds flags values
    local -A known
`, programName, fn))

	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(`    known[%q]=1
`, cmd))
	}

	script.WriteString(`
    for word in ${words[2,CURRENT-1]}; do
        candidate="${cmd:+$cmd }$word"
        (( ${+known[$candidate]} )) && cmd="$candidate"
    done
    cur="${words[CURRENT]}"

    if [[ "$cur" == *=* ]]; then
        flag="${cur%%=*}"
        case "${cmd}@${flag}" in`)

	for _, path := range data.Paths() {
		for _, f := range data.FlagsFor(path) {
			if !f.TakesValue || len(f.Values) == 0 {
				continue
			}
			vals := make([]string, len(f.Values))
			for i, v := range f.Values {
				vals[i] = fmt.Sprintf(`"%s:%s"`, escapeZsh(v.Pattern), escapeZsh(v.Description))
			}
			script.WriteString(fmt.Sprintf(`
            "%s@%s%s")
                values=(%s)
                ;;`, path, data.Prefix, f.Long, strings.Join(vals, " ")))
		}
	}

	script.WriteString(`
        esac
        compset -P '*='
        _describe 'values' values
        return
    fi

    case "${cmd}" in`)

	for _, path := range data.Paths() {
		var flagEntries, subEntries []string
		for _, f := range data.FlagsFor(path) {
			for _, w := range flagWords(data, f) {
				flagEntries = append(flagEntries, fmt.Sprintf(`"%s:%s"`, escapeZsh(w), escapeZsh(f.Description)))
			}
		}
		for _, child := range data.Children(path) {
			full := strings.TrimSpace(path + " " + child)
			subEntries = append(subEntries, fmt.Sprintf(`"%s:%s"`, escapeZsh(child), escapeZsh(data.CommandDescriptions[full])))
		}
		if len(flagEntries) == 0 && len(subEntries) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        "%s")
            flags=(%s)
            subcmds=(%s)
            ;;`, path, strings.Join(flagEntries, " "), strings.Join(subEntries, " ")))
	}

	script.WriteString(fmt.Sprintf(`
    esac

    if [[ "$cur" == -* ]]; then
        _describe -S '' 'options' flags
    else
        _describe 'commands' subcmds
    fi
}

compdef _%s %s
`, fn, programName))

	return script.String()
}
