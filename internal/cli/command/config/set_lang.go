package config

import (
	"context"

	"github.com/thomas-vilte/commitwise/internal/cli/completion_helper"
	"github.com/thomas-vilte/commitwise/internal/config"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "set-lang",
		Usage:         t.GetMessage("config.set_lang_usage", 0, nil),
		ArgsUsage:     "<en|es>",
		ShellComplete: completion_helper.LanguageComplete,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("config.lang_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := valueArg(command, "lang")
			if !config.IsSupportedLanguage(lang) {
				return domainErrors.ErrInvalidLanguage.WithContext("lang", lang)
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			// confirm in the language just chosen
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.lang_saved", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}
