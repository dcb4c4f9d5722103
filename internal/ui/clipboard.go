package ui

import (
	"github.com/atotto/clipboard"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
)

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return domainErrors.ErrClipboard.WithSuggestion("No clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return domainErrors.ErrClipboard.WithError(err)
	}
	return nil
}
