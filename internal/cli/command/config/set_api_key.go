package config

import (
	"context"

	"github.com/thomas-vilte/commitwise/internal/config"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/urfave/cli/v3"
)

const minAPIKeyLength = 10

func (c *ConfigCommandFactory) newSetAPIKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-key",
		Aliases:   []string{"set-api-key"},
		Usage:     t.GetMessage("config.set_key_usage", 0, nil),
		ArgsUsage: "<key>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   t.GetMessage("config.key_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			apiKey := valueArg(command, "key")
			if len(apiKey) < minAPIKeyLength || apiKey == config.PlaceholderAPIKey {
				return domainErrors.NewAppError(domainErrors.TypeValidation, t.GetMessage("config.invalid_key", 0, nil), nil).
					WithSuggestion("https://aistudio.google.com/app/apikey")
			}

			previous := cfg.GeminiAPIKey
			cfg.GeminiAPIKey = apiKey
			if err := config.SaveConfig(cfg); err != nil {
				cfg.GeminiAPIKey = previous
				return err
			}

			out := command.Root().Writer
			ui.PrintSuccess(out, t.GetMessage("config.key_saved", 0, nil))
			if cfg.APIKeySource() == "env" {
				ui.PrintWarning(out, t.GetMessage("config.key_env_override", 0, nil))
			}
			return nil
		},
	}
}
