package regex

import "regexp"

var (
	// Commit patterns
	ConventionalCommit = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\(([^)]+)\))?(!)?:\s*(.+)`)

	// AI and JSON parsing
	MarkdownJSONBlock = regexp.MustCompile("(?s)^```(?:json)?\\s*\n?(.*?)\\s*```$")
)

// ConventionalType returns the type prefix of a Conventional Commits subject
// ("fix" for "fix(auth): ..."), or "" when message does not follow the format.
func ConventionalType(message string) string {
	m := ConventionalCommit.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return m[1]
}
