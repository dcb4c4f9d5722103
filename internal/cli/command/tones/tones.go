package tones

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/urfave/cli/v3"
)

type TonesCommandFactory struct{}

func NewTonesCommandFactory() *TonesCommandFactory {
	return &TonesCommandFactory{}
}

func (f *TonesCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "tones",
		Usage: t.GetMessage("tones.command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer
			current := cfg.Tone()

			for _, tone := range models.Tones() {
				line := "  " + tone.String()
				if tone == current {
					line = ui.Success.Sprint("* "+tone.String()) + " " +
						ui.Dim.Sprint(t.GetMessage("tones.default_marker", 0, nil))
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
