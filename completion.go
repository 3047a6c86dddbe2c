package goargs

import (
	"github.com/napalu/goargs/completion"
)

// CompletionData flattens the tree for the shell completion generators
func (p *Parser) CompletionData() completion.CompletionData {
	data := completion.CompletionData{
		Prefix:              p.ctx.Prefix(),
		ShortPrefix:         p.ctx.ShortPrefix(),
		CommandDescriptions: map[string]string{},
		CommandFlags:        map[string][]completion.FlagPair{},
		Flags:               flagPairs(p.Command),
	}

	var visit func(cmd *Command, path string)
	visit = func(cmd *Command, path string) {
		for pair := cmd.subcommands.Oldest(); pair != nil; pair = pair.Next() {
			sub := pair.Value
			subPath := sub.name
			if path != "" {
				subPath = path + " " + sub.name
			}
			data.Commands = append(data.Commands, subPath)
			data.CommandDescriptions[subPath] = sub.description
			if flags := flagPairs(sub); len(flags) > 0 {
				data.CommandFlags[subPath] = flags
			}
			visit(sub, subPath)
		}
	}
	visit(p.Command, "")

	return data
}

// GenerateCompletion renders the completion script of the tree for shell,
// one of completion.SupportedShells
func (p *Parser) GenerateCompletion(shell string) (string, error) {
	gen, err := completion.GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return gen.Generate(p.name, p.CompletionData()), nil
}

func flagPairs(cmd *Command) []completion.FlagPair {
	var flags []completion.FlagPair
	for pair := cmd.options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value
		fp := completion.FlagPair{
			Long:        opt.Name(),
			Short:       opt.ShortName(),
			Description: opt.Description(),
			TakesValue:  opt.HasMetaVar(),
		}
		switch o := opt.(type) {
		case *Flag, *FlagGroup:
			fp.Negatable = true
		case *Choice:
			for _, choice := range o.Choices() {
				fp.Values = append(fp.Values, completion.CompletionValue{Pattern: choice})
			}
		}
		flags = append(flags, fp)
	}
	return flags
}
