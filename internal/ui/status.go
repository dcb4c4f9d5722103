package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/models"
)

// PrintStatus prints the credential badge plus the model and environment.
// source is where the key was found ("env", "file" or empty).
func PrintStatus(w io.Writer, status models.ConfigStatus, source string, t *i18n.Translations) {
	if status.Configured {
		dot := color.New(color.FgGreen).Sprint("●")
		label := t.GetMessage("status.key_detected", 0, nil)
		if source != "" {
			label += " " + Dim.Sprintf("(%s)", t.GetMessage("status.source_"+source, 0, nil))
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", dot, Success.Sprint(label))
	} else {
		dot := color.New(color.FgRed).Sprint("●")
		_, _ = fmt.Fprintf(w, "%s %s\n", dot, Error.Sprint(t.GetMessage("status.key_missing", 0, nil)))
	}

	PrintKeyValue(w, t.GetMessage("status.model", 0, nil), status.Model)
	PrintKeyValue(w, t.GetMessage("status.environment", 0, nil), status.Environment)
}
