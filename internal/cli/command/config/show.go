package config

import (
	"context"

	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer

			ui.PrintSectionBanner(out, t.GetMessage("config.current", 0, nil))
			ui.PrintKeyValue(out, t.GetMessage("config.label_file", 0, nil), cfg.PathFile)
			ui.PrintKeyValue(out, t.GetMessage("config.label_language", 0, nil), cfg.ActiveLanguage())
			ui.PrintKeyValue(out, t.GetMessage("status.model", 0, nil), string(cfg.ActiveModel()))
			ui.PrintKeyValue(out, t.GetMessage("config.label_tone", 0, nil), cfg.Tone().String())
			ui.PrintKeyValue(out, t.GetMessage("config.label_addr", 0, nil), cfg.ListenAddress())
			if env := cfg.EnvironmentName(); env != "" {
				ui.PrintKeyValue(out, t.GetMessage("status.environment", 0, nil), env)
			}

			keyLabel := t.GetMessage("config.label_key", 0, nil)
			if !cfg.HasAPIKey() {
				ui.PrintKeyValue(out, keyLabel, t.GetMessage("status.key_missing", 0, nil))
				ui.PrintInfo(out, t.GetMessage("config.key_tip", 0, nil))
				return nil
			}

			source := t.GetMessage("status.source_"+cfg.APIKeySource(), 0, nil)
			ui.PrintKeyValue(out, keyLabel, maskKey(cfg.APIKey())+" ("+source+")")
			return nil
		},
	}
}

// maskKey keeps the last four characters of key visible.
func maskKey(key string) string {
	const visible = 4
	if len(key) <= visible {
		return "****"
	}
	return "****" + key[len(key)-visible:]
}
