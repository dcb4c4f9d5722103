package gemini

import (
	"context"
	"net/http"
	"time"

	"github.com/thomas-vilte/commitwise/internal/ai"
	"github.com/thomas-vilte/commitwise/internal/config"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/logger"
	"github.com/thomas-vilte/commitwise/internal/models"
	"google.golang.org/genai"
)

const providerName = "gemini"

var _ ai.Provider = (*GeminiProvider)(nil)

// GeminiProvider talks to the Gemini API. It is safe for concurrent use.
type GeminiProvider struct {
	Client *genai.Client
	model  string
}

type options struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises the underlying SDK client.
type Option func(*options)

// WithBaseURL points the client at a different endpoint (used by tests and
// proxies).
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithHTTPClient replaces the HTTP client used by the SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// NewGeminiProvider creates the SDK client for the configured key and model.
func NewGeminiProvider(ctx context.Context, cfg *config.Config, opts ...Option) (*GeminiProvider, error) {
	if !cfg.HasAPIKey() {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey(),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, domainErrors.ErrAIGeneration.WithError(err).
			WithSuggestion("Check that the API key and network settings are valid")
	}

	return &GeminiProvider{
		Client: client,
		model:  string(cfg.ActiveModel()),
	}, nil
}

// GenerateCommitMessage implements ai.CommitGenerator.
func (g *GeminiProvider) GenerateCommitMessage(ctx context.Context, description string, tone models.Tone) (*models.CommitResult, *models.TokenUsage, error) {
	log := logger.FromContext(ctx)

	prompt, err := ai.BuildCommitPrompt(tone, description)
	if err != nil {
		return nil, nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to build prompt", err)
	}

	genConfig := GetGenerateConfig(g.model, "application/json", commitResultSchema())
	genConfig.SystemInstruction = genai.NewContentFromText(ai.CommitSystemInstruction, genai.RoleUser)

	log.Debug("calling gemini", "model", g.model, "tone", tone, "prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.Client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	duration := time.Since(start)
	if err != nil {
		appErr := classifyError(err)
		log.Error("gemini generation failed", "error", err, "type", appErr.Type, "duration_ms", duration.Milliseconds())
		return nil, nil, appErr
	}

	usage := extractUsage(resp)
	if usage != nil {
		usage.Model = g.model
		usage.DurationMs = duration.Milliseconds()
	}

	result, err := ai.ParseCommitResult(formatResponse(resp))
	if err != nil {
		log.Warn("gemini returned an unusable response", "error", err, "duration_ms", duration.Milliseconds())
		return nil, usage, err
	}

	log.Debug("gemini generation finished", "duration_ms", duration.Milliseconds())
	return result, usage, nil
}

// Ping implements ai.ConnectivityChecker.
func (g *GeminiProvider) Ping(ctx context.Context) (string, error) {
	resp, err := g.Client.Models.GenerateContent(ctx, g.model, genai.Text(ai.PingPrompt), GetGenerateConfig(g.model, "", nil))
	if err != nil {
		return "", classifyError(err)
	}
	return formatResponse(resp), nil
}

// GetModelName implements ai.Provider
func (g *GeminiProvider) GetModelName() string {
	return g.model
}

// GetProviderName implements ai.Provider
func (g *GeminiProvider) GetProviderName() string {
	return providerName
}
