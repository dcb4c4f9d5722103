package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConventionalType(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"fix: resolve login authentication bug", "fix"},
		{"feat(api)!: drop v1 endpoints", "feat"},
		{"chore(deps): bump genai", "chore"},
		{"Fixed the login bug", ""},
		{"fixes: typo", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ConventionalType(tt.message))
		})
	}
}

func TestMarkdownJSONBlock(t *testing.T) {
	m := MarkdownJSONBlock.FindStringSubmatch("```json\n{\"message\":\"fix: x\"}\n```")
	if assert.NotNil(t, m) {
		assert.Equal(t, `{"message":"fix: x"}`, m[1])
	}
	assert.Nil(t, MarkdownJSONBlock.FindStringSubmatch(`{"message":"fix: x"}`))
}
