package completion

import (
	"strings"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, "`", "\\`")
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, ":", "\\:")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// identifier turns a program name into something usable as a shell function name
func identifier(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}

// flagWords returns the spellings of f a user can type
func flagWords(data CompletionData, f FlagPair) []string {
	var words []string
	if f.TakesValue {
		words = append(words, data.Prefix+f.Long+"=")
	} else {
		words = append(words, data.Prefix+f.Long)
	}
	if f.Negatable {
		words = append(words, data.Prefix+"no-"+f.Long)
	}
	if f.Short != "" && data.ShortPrefix != "" {
		words = append(words, data.ShortPrefix+f.Short)
	}
	return words
}

func patterns(values []CompletionValue) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Pattern
	}
	return out
}
