package generate

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/commitwise/internal/cli/completion_helper"
	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/logger"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/services"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/thomas-vilte/commitwise/internal/view"
	"github.com/urfave/cli/v3"
)

type GenerateCommandFactory struct {
	generator view.Generator
	clipboard view.Clipboard

	// MarkdownStyle is passed to the renderer; empty picks one from the
	// terminal.
	MarkdownStyle string

	// StatusOutput receives the spinner and other non-result output.
	StatusOutput io.Writer
}

func NewGenerateCommandFactory(generator view.Generator, clipboard view.Clipboard) *GenerateCommandFactory {
	return &GenerateCommandFactory{
		generator:    generator,
		clipboard:    clipboard,
		StatusOutput: os.Stderr,
	}
}

func (f *GenerateCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "generate",
		Aliases:       []string{"g"},
		Usage:         t.GetMessage("generate.command_usage", 0, nil),
		Description:   t.GetMessage("generate.command_description", 0, nil),
		ArgsUsage:     t.GetMessage("generate.args_usage", 0, nil),
		Flags:         f.createFlags(cfg, t),
		Action:        f.createAction(t),
		ShellComplete: completion_helper.ToneComplete,
	}
}

func (f *GenerateCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "tone",
			Aliases: []string{"t"},
			Value:   cfg.Tone().String(),
			Usage:   t.GetMessage("generate.tone_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "copy",
			Aliases: []string{"c"},
			Usage:   t.GetMessage("generate.copy_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: t.GetMessage("generate.json_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "stats",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("generate.stats_flag_usage", 0, nil),
		},
	}
}

func (f *GenerateCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		out := command.Root().Writer
		input := strings.Join(command.Args().Slice(), " ")

		rawTone := command.String("tone")
		tone, ok := models.ParseTone(rawTone)
		if !ok {
			tone = models.Tone(rawTone)
		}

		model := view.NewModel(f.generator)
		model.SetInput(input)
		model.SetTone(tone)

		jsonOutput := command.Bool("json")
		if !jsonOutput {
			spinner := ui.NewSmartSpinner(f.StatusOutput, t.GetMessage("generate.analyzing", 0, nil))
			model.OnChange(func(s models.AppState) {
				if s.Loading {
					spinner.Start()
				} else {
					spinner.Stop()
				}
			})
		}

		var usage *models.TokenUsage
		if command.Bool("stats") {
			ctx = services.WithUsageReporter(ctx, func(u *models.TokenUsage) { usage = u })
		}

		logger.Debug(ctx, "generate command", "tone", tone, "input_length", len(input))

		if err := model.Generate(ctx); err != nil {
			return err
		}

		state := model.State()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(state.Result); err != nil {
				return err
			}
		} else {
			renderer, err := ui.NewRenderer(out, f.MarkdownStyle)
			if err != nil {
				return err
			}
			if err := renderer.PrintCommitResult(state.Result, t); err != nil {
				return err
			}
		}

		ui.PrintTokenUsage(f.StatusOutput, usage, t)

		if command.Bool("copy") {
			if _, err := model.Copy(f.clipboard); err != nil {
				return err
			}
			// keep stdout parseable in JSON mode
			ackOut := out
			if jsonOutput {
				ackOut = f.StatusOutput
			}
			ui.PrintSuccess(ackOut, t.GetMessage("web.copied", 0, nil))
		}

		return nil
	}
}
