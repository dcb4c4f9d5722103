package models

// Phase is where the generate flow currently is.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "idle"
	}
}

// AppState is the single record rendered by the UI. At most one of Result
// and Error is set at any time.
type AppState struct {
	Input   string        `json:"input"`
	Tone    Tone          `json:"tone"`
	Loading bool          `json:"loading"`
	Result  *CommitResult `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Phase derives the flow phase from the state fields.
func (s AppState) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Result != nil:
		return PhaseSuccess
	case s.Error != "":
		return PhaseFailure
	default:
		return PhaseIdle
	}
}

// ConfigStatus feeds the credential and environment badges.
type ConfigStatus struct {
	Configured  bool   `json:"configured"`
	Environment string `json:"environment"`
	Model       string `json:"model"`
}
