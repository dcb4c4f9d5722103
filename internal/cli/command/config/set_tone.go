package config

import (
	"context"

	"github.com/thomas-vilte/commitwise/internal/cli/completion_helper"
	"github.com/thomas-vilte/commitwise/internal/config"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetToneCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "set-tone",
		Usage:         t.GetMessage("config.set_tone_usage", 0, nil),
		ArgsUsage:     "<tone>",
		ShellComplete: completion_helper.ToneComplete,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tone",
				Aliases: []string{"t"},
				Usage:   t.GetMessage("generate.tone_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			raw := valueArg(command, "tone")
			tone, ok := models.ParseTone(raw)
			if !ok {
				return domainErrors.ErrInvalidTone.WithContext("tone", raw)
			}

			cfg.DefaultTone = tone.String()
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.tone_saved", 0, map[string]interface{}{
				"Tone": tone,
			}))
			return nil
		},
	}
}
