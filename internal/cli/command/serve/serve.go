package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/ui"
	"github.com/urfave/cli/v3"
)

// Server is the web front-end started by the command.
type Server interface {
	ListenAndServe(ctx context.Context, addr string) error
}

type ServeCommandFactory struct {
	server Server
}

func NewServeCommandFactory(server Server) *ServeCommandFactory {
	return &ServeCommandFactory{server: server}
}

func (f *ServeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Usage:       t.GetMessage("serve.command_usage", 0, nil),
		Description: t.GetMessage("serve.command_description", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Value:   cfg.ListenAddress(),
				Usage:   t.GetMessage("serve.addr_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			addr := command.String("addr")
			out := command.Root().Writer

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !cfg.HasAPIKey() {
				ui.PrintWarning(out, t.GetMessage("serve.no_api_key_warning", 0, nil))
			}
			ui.PrintInfo(out, t.GetMessage("serve.listening", 0, map[string]interface{}{
				"URL": displayURL(addr),
			}))

			if err := f.server.ListenAndServe(ctx, addr); err != nil {
				return err
			}

			ui.PrintSuccess(out, t.GetMessage("serve.stopped", 0, nil))
			return nil
		},
	}
}

// displayURL turns a listen address such as ":8080" into a clickable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return fmt.Sprintf("http://localhost%s", addr)
	}
	return "http://" + addr
}
