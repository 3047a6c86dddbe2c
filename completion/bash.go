package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := identifier(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

__%[1]s_commands=(`, fn))
	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(` "%s"`, cmd))
	}
	script.WriteString(fmt.Sprintf(` )

function __%[1]s_is_command() {
    local c
    for c in "${__%[1]s_commands[@]}"; do
        [[ "$c" == "$1" ]] && return 0
    done
    return 1
}

function __%[1]s_completion() {
    local cur prev flag value cmd candidate i
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd=""

    # Resolve the command path typed so far
    for ((i=1; i < COMP_CWORD; i++)); do
        candidate="${cmd:+$cmd }${COMP_WORDS[i]}"
        if __%[1]s_is_command "$candidate"; then
            cmd="$candidate"
        fi
    done

    # Split --name=value, bash may already have broken the word at '='
    flag=""
    if [[ "$cur" == *=* ]]; then
        flag="${cur%%%%=*}"
        value="${cur#*=}"
    elif [[ "$prev" == "=" && $COMP_CWORD -ge 2 ]]; then
        flag="${COMP_WORDS[COMP_CWORD-2]}"
        value="$cur"
    fi

    if [[ -n "$flag" ]]; then
        case "${cmd}@${flag}" in`, fn))

	for _, path := range data.Paths() {
		for _, f := range data.FlagsFor(path) {
			if !f.TakesValue || len(f.Values) == 0 {
				continue
			}
			script.WriteString(fmt.Sprintf(`
            "%s@%s%s")
                COMPREPLY=( $(compgen -W "%s" -- "$value") )
                return
                ;;`, path, data.Prefix, f.Long, escapeBash(strings.Join(patterns(f.Values), " "))))
		}
	}

	script.WriteString(`
        esac
        return
    fi

    if [[ "$cur" == -* ]]; then
        case "${cmd}" in`)

	for _, path := range data.Paths() {
		var words []string
		for _, f := range data.FlagsFor(path) {
			words = append(words, flagWords(data, f)...)
		}
		if len(words) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
            "%s")
                COMPREPLY=( $(compgen -W "%s" -- "$cur") )
                ;;`, path, escapeBash(strings.Join(words, " "))))
	}

	script.WriteString(`
        esac
        [[ "${COMPREPLY[0]}" == *= ]] && compopt -o nospace
        return
    fi

    case "${cmd}" in`)

	for _, path := range data.Paths() {
		children := data.Children(path)
		if len(children) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        "%s")
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            ;;`, path, strings.Join(children, " ")))
	}

	script.WriteString(fmt.Sprintf(`
    esac
}

complete -F __%s_completion %s
`, fn, programName))

	return script.String()
}
