package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/models"
)

// PrintTokenUsage prints the token counts of a generation call.
func PrintTokenUsage(w io.Writer, usage *models.TokenUsage, t *i18n.Translations) {
	if usage == nil {
		return
	}
	cyan := color.New(color.FgCyan)
	_, _ = fmt.Fprint(w, cyan.Sprint("📊 "))
	_, _ = fmt.Fprintf(w, "%s: ", t.GetMessage("ui.token_usage", 0, nil))
	_, _ = fmt.Fprintf(w, "%s %d | ", t.GetMessage("ui.input", 0, nil), usage.InputTokens)
	_, _ = fmt.Fprintf(w, "%s %d | ", t.GetMessage("ui.output", 0, nil), usage.OutputTokens)
	_, _ = fmt.Fprintf(w, "%s %d\n", t.GetMessage("ui.total", 0, nil), usage.TotalTokens)
	if usage.CostUSD > 0 {
		_, _ = fmt.Fprintf(w, "💰 %s: $%.6f\n", t.GetMessage("ui.cost", 0, nil), usage.CostUSD)
	}
	if usage.DurationMs > 0 {
		_, _ = fmt.Fprintf(w, "⏱️  %s: %dms\n", t.GetMessage("ui.duration", 0, nil), usage.DurationMs)
	}
}
