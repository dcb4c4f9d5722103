package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/models"
)

// Renderer renders Markdown to a terminal.
type Renderer struct {
	gr     *glamour.TermRenderer
	writer io.Writer
}

// NewRenderer creates a Renderer writing to w (os.Stdout when nil). An empty
// style picks one from the terminal background.
func NewRenderer(w io.Writer, style string) (*Renderer, error) {
	if w == nil {
		w = os.Stdout
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	gr, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Renderer{gr: gr, writer: w}, nil
}

// Render renders a complete markdown string to the writer.
func (r *Renderer) Render(markdown string) error {
	out, err := r.gr.Render(markdown)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = fmt.Fprint(r.writer, out)
	return err
}

// CommitMarkdown lays out a result as the terminal shows it: the ready-to-run
// git command followed by the rationale.
func CommitMarkdown(result *models.CommitResult, t *i18n.Translations) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(t.GetMessage("ui.suggested_commit", 0, nil))
	b.WriteString("\n\n```sh\n")
	b.WriteString(result.CommitCommand())
	b.WriteString("\n```\n\n")
	b.WriteString("**")
	b.WriteString(t.GetMessage("ui.why_this_message", 0, nil))
	b.WriteString("** ")
	b.WriteString(result.Description)
	b.WriteString("\n")
	return b.String()
}

// PrintCommitResult renders result as Markdown.
func (r *Renderer) PrintCommitResult(result *models.CommitResult, t *i18n.Translations) error {
	if result == nil {
		return nil
	}
	return r.Render(CommitMarkdown(result, t))
}
