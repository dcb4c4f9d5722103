package gemini

import (
	"errors"
	"net/http"
	"strings"

	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/models"
	"google.golang.org/genai"
)

// extractUsage extracts usage metadata from the Gemini response
func extractUsage(resp *genai.GenerateContentResponse) *models.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &models.TokenUsage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
	}
}

// GetGenerateConfig returns the generation settings for modelName. A JSON
// responseType with a schema constrains the output shape server-side.
func GetGenerateConfig(modelName string, responseType string, schema *genai.Schema) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: int32(1024),
	}

	if responseType == "application/json" {
		config.ResponseMIMEType = "application/json"
		if schema != nil {
			config.ResponseSchema = schema
		}
	}

	// commit subjects do not need deep reasoning; keep gemini-3 latency low
	if strings.HasPrefix(modelName, "gemini-3") {
		config.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingLevel: genai.ThinkingLevelLow,
		}
	}

	return config
}

// commitResultSchema is the response schema for models.CommitResult.
func commitResultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"message":     {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
		},
		Required:         []string{"message", "description"},
		PropertyOrdering: []string{"message", "description"},
	}
}

// formatResponse concatenates the text parts of every candidate, skipping
// thought summaries.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			formattedContent.WriteString(part.Text)
		}
	}
	return formattedContent.String()
}

// classifyError maps SDK errors onto the application error taxonomy.
func classifyError(err error) *domainErrors.AppError {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	code, message, ok := apiErrorDetails(err)
	if !ok {
		return domainErrors.ErrAIGeneration.WithError(err)
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return domainErrors.ErrAPIKeyInvalid.WithError(err).WithContext("status", code)
	case code == http.StatusBadRequest && mentionsAPIKey(message):
		return domainErrors.ErrAPIKeyInvalid.WithError(err).WithContext("status", code)
	case code == http.StatusTooManyRequests:
		return domainErrors.ErrQuotaExceeded.WithError(err).WithContext("status", code)
	default:
		return domainErrors.ErrAIGeneration.WithError(err).WithContext("status", code)
	}
}

func apiErrorDetails(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}
	return 0, "", false
}

func mentionsAPIKey(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "api key") || strings.Contains(m, "api_key")
}

func float32Ptr(f float32) *float32 {
	return &f
}
