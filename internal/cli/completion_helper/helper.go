package completion_helper

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints every flag of the current command for shell
// completion.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(cmd.Root().Writer, "-"+name)
			} else {
				_, _ = fmt.Fprintln(cmd.Root().Writer, "--"+name)
			}
		}
	}
}

var toneKeys = []string{"professional", "concise", "fun", "conventional"}

// ToneComplete suggests the short tone keys, which need no shell quoting.
func ToneComplete(ctx context.Context, cmd *cli.Command) {
	for _, key := range toneKeys {
		_, _ = fmt.Fprintln(cmd.Root().Writer, key)
	}
	DefaultFlagComplete(ctx, cmd)
}

// ModelComplete suggests the supported Gemini models.
func ModelComplete(_ context.Context, cmd *cli.Command) {
	for _, m := range config.SupportedModels() {
		_, _ = fmt.Fprintln(cmd.Root().Writer, m)
	}
}

// LanguageComplete suggests the supported UI languages.
func LanguageComplete(_ context.Context, cmd *cli.Command) {
	for _, lang := range config.SupportedLanguages() {
		_, _ = fmt.Fprintln(cmd.Root().Writer, lang)
	}
}
