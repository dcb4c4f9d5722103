package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/urfave/cli/v3"
)

func TestToneKeysParse(t *testing.T) {
	for _, key := range toneKeys {
		_, ok := models.ParseTone(key)
		assert.True(t, ok, key)
	}
}

func TestCompleters(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &cli.Command{
			Writer: &buf,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "tone", Aliases: []string{"t"}},
				&cli.BoolFlag{Name: "copy"},
			},
		}

		DefaultFlagComplete(context.Background(), cmd)

		assert.Equal(t, "--tone\n-t\n--copy\n", buf.String())
	})

	t.Run("models", func(t *testing.T) {
		var buf bytes.Buffer
		ModelComplete(context.Background(), &cli.Command{Writer: &buf})

		assert.Contains(t, buf.String(), "gemini-3-flash-preview\n")
		assert.Contains(t, buf.String(), "gemini-2.5-flash-lite\n")
	})

	t.Run("languages", func(t *testing.T) {
		var buf bytes.Buffer
		LanguageComplete(context.Background(), &cli.Command{Writer: &buf})

		assert.Equal(t, "en\nes\n", buf.String())
	})
}
