package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/thomas-vilte/commitwise/internal/ai"
	"github.com/thomas-vilte/commitwise/internal/ai/gemini"
	"github.com/thomas-vilte/commitwise/internal/cli/command/check"
	"github.com/thomas-vilte/commitwise/internal/cli/command/completion"
	"github.com/thomas-vilte/commitwise/internal/cli/command/config"
	"github.com/thomas-vilte/commitwise/internal/cli/command/generate"
	"github.com/thomas-vilte/commitwise/internal/cli/command/serve"
	"github.com/thomas-vilte/commitwise/internal/cli/command/tones"
	"github.com/thomas-vilte/commitwise/internal/cli/registry"
	cfg "github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/logger"
	"github.com/thomas-vilte/commitwise/internal/services"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/thomas-vilte/commitwise/internal/version"
	"github.com/thomas-vilte/commitwise/internal/web"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx := context.Background()

	app, translations, err := initializeApp(ctx, os.Args)
	if err != nil {
		ui.HandleAppError(os.Stderr, err, nil)
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp(ctx context.Context, args []string) (*cli.Command, *i18n.Translations, error) {
	configPath := configPathFromArgs(args)
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("could not determine the home directory: %w", err)
		}
		configPath = homeDir
	}

	cfgApp, err := cfg.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	if err := cfgApp.ApplyEnv(); err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.ActiveLanguage(), "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	// both stay nil interfaces when the key is missing; the services then
	// report ErrAPIKeyMissing without touching the network
	var (
		generator ai.CommitGenerator
		checker   ai.ConnectivityChecker
	)
	if cfgApp.HasAPIKey() {
		provider, err := gemini.NewGeminiProvider(ctx, cfgApp)
		if err != nil {
			slog.Warn("gemini provider unavailable", "error", err)
		} else {
			generator, checker = provider, provider
		}
	}

	commitService := services.NewCommitService(cfgApp, generator)
	statusService := services.NewStatusService(cfgApp, checker)

	webServer, err := web.NewServer(commitService, statusService, translations)
	if err != nil {
		return nil, nil, err
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"serve", serve.NewServeCommandFactory(webServer)},
		{"generate", generate.NewGenerateCommandFactory(commitService, ui.SystemClipboard{})},
		{"check", check.NewCheckCommandFactory(statusService)},
		{"tones", tones.NewTonesCommandFactory()},
		{"config", config.NewConfigCommandFactory()},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, nil, err
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd.Root())
		},
	})

	return &cli.Command{
		Name:                  "commitwise",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flags.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flags.verbose", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: translations.GetMessage("flags.log_json", 0, nil),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: translations.GetMessage("flags.config", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			l := logger.Setup(logger.Options{
				Debug:   cmd.Bool("debug"),
				Verbose: cmd.Bool("verbose"),
				JSON:    cmd.Bool("log-json"),
			})
			l.Debug("configuration loaded",
				"path", cfgApp.PathFile,
				"model", cfgApp.ActiveModel(),
				"key_source", cfgApp.APIKeySource())
			return logger.WithLogger(ctx, l), nil
		},
	}, translations, nil
}

// configPathFromArgs finds --config before the command line is parsed, since
// the configuration decides the language of every usage string.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		case arg == "--":
			return ""
		}
	}
	return ""
}
