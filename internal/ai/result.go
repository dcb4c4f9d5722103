package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/regex"
)

// rawCommitResult mirrors models.CommitResult with pointer fields so that a
// missing key and an explicit null are told apart from an empty string.
type rawCommitResult struct {
	Message     *string `json:"message"`
	Description *string `json:"description"`
}

// ParseCommitResult validates the model reply against the two-field schema.
// It fails closed: missing, null, mistyped or unknown fields, trailing data
// and a blank message are all rejected.
func ParseCommitResult(text string) (*models.CommitResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.ErrEmptyAIResponse
	}

	if m := regex.MarkdownJSONBlock.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	var raw rawCommitResult
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.ErrInvalidAIOutput.WithError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.ErrInvalidAIOutput.WithError(fmt.Errorf("unexpected data after JSON object"))
	}

	if raw.Message == nil {
		return nil, errors.ErrInvalidAIOutput.WithError(fmt.Errorf(`missing required field "message"`))
	}
	if raw.Description == nil {
		return nil, errors.ErrInvalidAIOutput.WithError(fmt.Errorf(`missing required field "description"`))
	}
	if strings.TrimSpace(*raw.Message) == "" {
		return nil, errors.ErrInvalidAIOutput.WithError(fmt.Errorf(`field "message" is empty`))
	}

	return &models.CommitResult{
		Message:     *raw.Message,
		Description: *raw.Description,
	}, nil
}
