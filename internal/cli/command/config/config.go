package config

import (
	"strings"

	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config.command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetAPIKeyCommand(t, cfg),
			c.newSetModelCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetToneCommand(t, cfg),
		},
	}
}

// valueArg reads the value either from the named flag or from the first
// positional argument, so "set-lang es" and "set-lang --lang es" both work.
func valueArg(command *cli.Command, flag string) string {
	if v := command.String(flag); v != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(strings.Join(command.Args().Slice(), " "))
}
