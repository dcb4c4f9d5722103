package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeValidation    ErrorType = "VALIDATION"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if status, ok := e.Context["status"].(int); ok && status != 0 {
			msg += fmt.Sprintf(" - HTTP %d", status)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same kind. Copies made with
// the With* helpers still match the sentinel they were derived from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// UserMessage renders err the way the UI shows it inline: the message, the
// underlying cause when there is one, then the remediation hint.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(appErr.Message)
	if appErr.Err != nil {
		b.WriteString(": ")
		b.WriteString(appErr.Err.Error())
	}
	if appErr.Suggestion != "" {
		b.WriteString(". ")
		b.WriteString(strings.ReplaceAll(appErr.Suggestion, "\n", " "))
	}
	return b.String()
}

// Validation errors
var (
	ErrEmptyInput = NewAppError(TypeValidation, "Please describe your changes first", nil)

	ErrInvalidTone = NewAppError(TypeValidation, "Unknown tone", nil).
			WithSuggestion("Use one of: Professional, Concise, Fun/Creative, Conventional Commits")

	ErrGenerationInProgress = NewAppError(TypeValidation, "A commit message is already being generated", nil).
				WithSuggestion("Wait for the current request to finish")

	ErrNothingToCopy = NewAppError(TypeValidation, "There is no commit message to copy yet", nil).
				WithSuggestion("Generate a message first")
)

// Configuration errors
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "Missing API_KEY", nil).
				WithSuggestion("Set API_KEY in your environment or .env file, or run: commitwise config set-key <key>")

	ErrInvalidModel = NewAppError(TypeConfiguration, "Unsupported Gemini model", nil).
			WithSuggestion("Run: commitwise config set-model with one of the supported models")

	ErrInvalidLanguage = NewAppError(TypeConfiguration, "Unsupported language", nil).
				WithSuggestion("Supported languages are: en, es")
)

// AI errors
var (
	ErrAPIKeyInvalid = NewAppError(TypeAI, "Invalid API Key", nil).
				WithSuggestion("Check your Google AI Studio settings: https://aistudio.google.com/app/apikey")

	ErrQuotaExceeded = NewAppError(TypeAI, "AI quota exceeded or rate limited", nil).
				WithSuggestion("Wait a few minutes and try again, or check your API quota")

	ErrAIGeneration = NewAppError(TypeAI, "Failed to generate commit message", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrEmptyAIResponse = NewAppError(TypeAI, "No response from AI", nil).
				WithSuggestion("This is likely a temporary issue, please try again")

	ErrInvalidAIOutput = NewAppError(TypeAI, "Failed to generate commit message: invalid AI output format", nil).
				WithSuggestion("This is likely a temporary issue, please try again")
)

// Internal errors
var (
	ErrClipboard = NewAppError(TypeInternal, "Failed to copy to clipboard", nil).
			WithSuggestion("Copy the message manually from the output above")

	ErrRenderPage = NewAppError(TypeInternal, "Failed to render page", nil)
)
