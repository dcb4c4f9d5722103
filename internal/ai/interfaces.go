package ai

import (
	"context"

	"github.com/thomas-vilte/commitwise/internal/models"
)

// CommitGenerator turns a free-text change description into a commit message.
type CommitGenerator interface {
	// GenerateCommitMessage performs exactly one model call. The result is
	// either complete or nil; partial results are never returned.
	GenerateCommitMessage(ctx context.Context, description string, tone models.Tone) (*models.CommitResult, *models.TokenUsage, error)
}

// ConnectivityChecker performs the live smoke-test call.
type ConnectivityChecker interface {
	// Ping returns the raw text produced by the model.
	Ping(ctx context.Context) (string, error)
}

// Provider is implemented by backends that support both operations.
type Provider interface {
	CommitGenerator
	ConnectivityChecker

	// GetModelName returns the name of the current model (e.g.: "gemini-2.5-flash")
	GetModelName() string

	// GetProviderName returns the name of the provider (e.g.: "gemini")
	GetProviderName() string
}
