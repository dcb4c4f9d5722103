package ai

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/thomas-vilte/commitwise/internal/models"
)

// CommitSystemInstruction is sent as the system instruction on every
// generation call.
const CommitSystemInstruction = `You are an expert software engineer who writes perfect Git commit messages.
Your task is to take a raw description of code changes and turn it into a high-quality commit message.

Tone Guide:
- Professional: Clear, standard industry wording.
- Concise: Extremely short but informative.
- Fun: Add a bit of personality or an emoji.
- Conventional: Follow the Conventional Commits spec (feat:, fix:, docs:, etc.).

Always return a JSON object with two fields:
1. "message": The primary commit subject line.
2. "description": A brief 1-2 sentence explanation of why this change was made.`

// PingPrompt is the fixed prompt of the connectivity smoke-test.
const PingPrompt = "Write a one-sentence inspiring slogan for a successful software deployment."

const commitPromptTemplate = `Generate a {{.Tone}} commit message for these changes: {{.Input}}`

// PromptData holds the parameters for template rendering
type PromptData struct {
	Tone  models.Tone
	Input string
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

// BuildCommitPrompt renders the user message. The input is embedded verbatim.
func BuildCommitPrompt(tone models.Tone, input string) (string, error) {
	return RenderPrompt("commit", commitPromptTemplate, PromptData{
		Tone:  tone,
		Input: input,
	})
}
