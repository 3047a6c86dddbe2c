package goargs

import (
	"errors"
	"testing"

	"github.com/napalu/goargs/completion"
	"github.com/napalu/goargs/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_CompletionData(t *testing.T) {
	add := NewCommand("add",
		WithCommandDescription("Add a remote."),
		WithOption(NewString("url", WithDescription("Remote URL."))))
	remote := NewCommand("remote", WithCommandDescription("Manage remotes."), WithSubcommand(add))
	p, err := NewParserWith("git",
		WithOption(
			NewFlag("verbose", WithShortName("v")),
			NewChoice("color", []string{"auto", "never"}, WithDefault("auto"))),
		WithSubcommand(remote),
		WithHelpCommand(NewHelpCommand()))
	require.NoError(t, err)

	data := p.CompletionData()
	assert.Equal(t, "--", data.Prefix)
	assert.Equal(t, "-", data.ShortPrefix)
	assert.Equal(t, []string{"remote", "remote add", "help"}, data.Commands)
	assert.Equal(t, "Add a remote.", data.CommandDescriptions["remote add"])
	assert.Equal(t, []completion.FlagPair{
		{Long: "verbose", Short: "v", Negatable: true},
		{Long: "color", TakesValue: true, Values: []completion.CompletionValue{{Pattern: "auto"}, {Pattern: "never"}}},
	}, data.Flags)
	assert.Equal(t, []completion.FlagPair{
		{Long: "url", Description: "Remote URL.", TakesValue: true},
	}, data.FlagsFor("remote add"))
	assert.Empty(t, data.FlagsFor("remote"))
	assert.Equal(t, []string{"add"}, data.Children("remote"))
}

func TestParser_GenerateCompletion(t *testing.T) {
	p, err := NewParserWith("calc",
		WithPrefixes("/", ""),
		WithOption(NewInt("a")),
		WithSubcommand(NewCommand("sum")))
	require.NoError(t, err)

	for _, shell := range completion.SupportedShells {
		t.Run(shell, func(t *testing.T) {
			script, err := p.GenerateCompletion(shell)
			require.NoError(t, err)
			assert.Contains(t, script, "calc")
			assert.Contains(t, script, "sum")
		})
	}

	script, err := p.GenerateCompletion("bash")
	require.NoError(t, err)
	assert.Contains(t, script, "/a=")

	_, err = p.GenerateCompletion("csh")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedShell))
}
