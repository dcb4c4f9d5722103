package models

// CommitResult is the structured output expected from the generation call.
type CommitResult struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

// CommitCommand returns the message as it would be typed in a terminal.
func (r CommitResult) CommitCommand() string {
	return `git commit -m "` + r.Message + `"`
}
