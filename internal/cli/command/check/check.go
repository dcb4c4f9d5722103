package check

import (
	"context"
	"os"

	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/urfave/cli/v3"
)

// cliHost is what the terminal reports as its host; it always runs locally.
const cliHost = "localhost"

// StatusReporter is satisfied by services.StatusService.
type StatusReporter interface {
	Status(host string) models.ConfigStatus
	Ping(ctx context.Context) (string, error)
}

type CheckCommandFactory struct {
	status StatusReporter
}

func NewCheckCommandFactory(status StatusReporter) *CheckCommandFactory {
	return &CheckCommandFactory{status: status}
}

func (f *CheckCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "check",
		Aliases:     []string{"doctor"},
		Usage:       t.GetMessage("check.command_usage", 0, nil),
		Description: t.GetMessage("check.command_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "live",
				Usage: t.GetMessage("check.live_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer

			ui.PrintSectionBanner(out, t.GetMessage("check.title", 0, nil))
			ui.PrintStatus(out, f.status.Status(cliHost), cfg.APIKeySource(), t)

			if !command.Bool("live") {
				return nil
			}

			spinner := ui.NewSmartSpinner(os.Stderr, t.GetMessage("check.contacting", 0, nil))
			spinner.Start()
			text, err := f.status.Ping(ctx)
			spinner.Stop()
			if err != nil {
				return err
			}

			ui.PrintSuccess(out, t.GetMessage("check.live_ok", 0, nil))
			ui.PrintKeyValue(out, t.GetMessage("check.response", 0, nil), `"`+text+`"`)
			return nil
		},
	}
}
