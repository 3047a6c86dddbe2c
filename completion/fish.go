package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := identifier(programName)

	// __fish_<prog>_path prints the command path typed so far
	script.WriteString(fmt.Sprintf(`function __fish_%[1]s_path
    set -l known %[2]s
    set -l cmd ""
    for word in (commandline -opc)[2..-1]
        set -l candidate (string trim -- "$cmd $word")
        if contains -- $candidate $known
            set cmd $candidate
        end
    end
    echo $cmd
end

function __fish_%[1]s_at
    test (__fish_%[1]s_path) = "$argv[1]"
end

complete -c %[3]s -f
`, fn, quoteFishList(data.Commands), programName))

	for _, path := range data.Paths() {
		condition := fmt.Sprintf("__fish_%s_at '%s'", fn, escapeFish(path))

		for _, child := range data.Children(path) {
			full := strings.TrimSpace(path + " " + child)
			script.WriteString(fmt.Sprintf("complete -c %s -n \"%s\" -a '%s' -d '%s'\n",
				programName, condition, escapeFish(child), escapeFish(data.CommandDescriptions[full])))
		}

		for _, f := range data.FlagsFor(path) {
			line := fmt.Sprintf("complete -c %s -n \"%s\" -l %s", programName, condition, f.Long)
			if f.Short != "" {
				line = fmt.Sprintf("%s -s %s", line, f.Short)
			}
			if f.TakesValue {
				line += " -r"
				if len(f.Values) > 0 {
					line = fmt.Sprintf("%s -a '%s'", line, escapeFish(strings.Join(patterns(f.Values), " ")))
				}
			}
			line = fmt.Sprintf("%s -d '%s'", line, escapeFish(f.Description))
			script.WriteString(line + "\n")

			if f.Negatable {
				script.WriteString(fmt.Sprintf("complete -c %s -n \"%s\" -l no-%s -d '%s'\n",
					programName, condition, f.Long, escapeFish(f.Description)))
			}
		}
	}

	return script.String()
}

func quoteFishList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + escapeFish(item) + "'"
	}
	return strings.Join(quoted, " ")
}
