package services

import (
	"context"
	"strings"

	"github.com/thomas-vilte/commitwise/internal/ai"
	"github.com/thomas-vilte/commitwise/internal/config"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/logger"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/regex"
	"github.com/thomas-vilte/commitwise/internal/services/cost"
)

type usageReporterKey struct{}

// UsageFunc receives the token usage of a successful generation.
type UsageFunc func(*models.TokenUsage)

// WithUsageReporter returns a context whose generations report their token
// usage to fn.
func WithUsageReporter(ctx context.Context, fn UsageFunc) context.Context {
	return context.WithValue(ctx, usageReporterKey{}, fn)
}

func usageReporter(ctx context.Context) UsageFunc {
	if fn, ok := ctx.Value(usageReporterKey{}).(UsageFunc); ok {
		return fn
	}
	return nil
}

// CommitService validates a generation request locally and forwards it to
// the AI backend.
type CommitService struct {
	cfg       *config.Config
	generator ai.CommitGenerator
	costs     *cost.Calculator
}

// NewCommitService builds the service. generator may be nil when no API key
// is configured; every request then fails before reaching the network.
func NewCommitService(cfg *config.Config, generator ai.CommitGenerator) *CommitService {
	return &CommitService{
		cfg:       cfg,
		generator: generator,
		costs:     cost.NewCalculator(),
	}
}

// Generate checks, in order: non-blank input, a known tone, a usable API key.
// Only then is the generator called, exactly once. The input is forwarded
// as typed.
func (s *CommitService) Generate(ctx context.Context, input string, tone models.Tone) (*models.CommitResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(input) == "" {
		return nil, domainErrors.ErrEmptyInput
	}

	if !tone.IsValid() {
		return nil, domainErrors.ErrInvalidTone.WithContext("tone", string(tone))
	}

	if s.cfg == nil || !s.cfg.HasAPIKey() {
		log.Warn("generation requested without an API key")
		return nil, domainErrors.ErrAPIKeyMissing
	}

	if s.generator == nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "AI provider not initialized", nil)
	}

	log.Debug("generating commit message", "tone", tone, "input_length", len(input))

	result, usage, err := s.generator.GenerateCommitMessage(ctx, input, tone)
	if err != nil {
		return nil, err
	}

	if usage != nil && result != nil {
		s.costs.Annotate(usage)
		log.Info("commit message generated",
			"tone", tone,
			"type", regex.ConventionalType(result.Message),
			"model", usage.Model,
			"tokens", usage.TotalTokens,
			"cost_usd", usage.CostUSD,
			"duration_ms", usage.DurationMs)
		if report := usageReporter(ctx); report != nil {
			report(usage)
		}
	}

	return result, nil
}
