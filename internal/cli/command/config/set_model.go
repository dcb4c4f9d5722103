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

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "set-model",
		Usage:         t.GetMessage("config.set_model_usage", 0, nil),
		ArgsUsage:     "<model>",
		ShellComplete: completion_helper.ModelComplete,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("config.model_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			model := config.Model(valueArg(command, "model"))
			if !config.IsSupportedModel(model) {
				return domainErrors.ErrInvalidModel.WithContext("model", string(model))
			}

			cfg.Model = model
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.model_saved", 0, map[string]interface{}{
				"Model": model,
			}))
			return nil
		},
	}
}
