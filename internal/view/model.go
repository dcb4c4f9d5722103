// Package view holds the state machine behind every front-end: the web page
// and the generate command both drive a Model.
package view

import (
	"context"
	"strings"
	"sync"

	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/models"
)

// CopiedMessage is the acknowledgment shown after a successful copy.
const CopiedMessage = "Copied to clipboard!"

// Generator produces a commit message for the current input and tone.
type Generator interface {
	Generate(ctx context.Context, input string, tone models.Tone) (*models.CommitResult, error)
}

// Clipboard receives the copied message.
type Clipboard interface {
	WriteAll(text string) error
}

// Listener is called with the new state after every transition.
type Listener func(models.AppState)

// Model owns the AppState. Each transition replaces the state value as a
// whole; readers get copies.
type Model struct {
	mu        sync.Mutex
	state     models.AppState
	generator Generator
	listener  Listener
}

// NewModel starts in Idle with the default tone.
func NewModel(generator Generator) *Model {
	return &Model{
		generator: generator,
		state:     models.AppState{Tone: models.DefaultTone},
	}
}

// OnChange registers the listener, replacing any previous one.
func (m *Model) OnChange(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = l
}

// State returns a copy of the current state.
func (m *Model) State() models.AppState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyState(m.state)
}

func (m *Model) SetInput(text string) {
	m.update(func(s *models.AppState) { s.Input = text })
}

func (m *Model) SetTone(tone models.Tone) {
	m.update(func(s *models.AppState) { s.Tone = tone })
}

// Generate runs one generation for the current input and tone. It returns
// the error that was also stored in the state, or nil on success.
func (m *Model) Generate(ctx context.Context) error {
	m.mu.Lock()
	if m.state.Loading {
		m.mu.Unlock()
		return domainErrors.ErrGenerationInProgress
	}

	// validation happens before Loading is entered
	if isBlank(m.state.Input) {
		next := m.state
		next.Result = nil
		next.Error = domainErrors.UserMessage(domainErrors.ErrEmptyInput)
		m.commitLocked(next)
		return domainErrors.ErrEmptyInput
	}

	next := m.state
	next.Loading = true
	next.Result = nil
	next.Error = ""
	input, tone := next.Input, next.Tone
	m.commitLocked(next)

	result, err := m.generator.Generate(ctx, input, tone)
	if err == nil && result == nil {
		err = domainErrors.ErrEmptyAIResponse
	}

	m.mu.Lock()
	next = m.state
	next.Loading = false
	if err != nil {
		next.Result = nil
		next.Error = domainErrors.UserMessage(err)
	} else {
		res := *result
		next.Result = &res
		next.Error = ""
	}
	m.commitLocked(next)

	return err
}

// Copy writes the displayed message to clipboard and returns the
// acknowledgment text.
func (m *Model) Copy(clipboard Clipboard) (string, error) {
	state := m.State()
	if state.Result == nil {
		return "", domainErrors.ErrNothingToCopy
	}
	if err := clipboard.WriteAll(state.Result.Message); err != nil {
		return "", err
	}
	return CopiedMessage, nil
}

func (m *Model) update(fn func(*models.AppState)) {
	m.mu.Lock()
	next := m.state
	fn(&next)
	m.commitLocked(next)
}

// commitLocked stores next, releases the lock and notifies the listener.
// The caller must hold m.mu.
func (m *Model) commitLocked(next models.AppState) {
	m.state = next
	l := m.listener
	snapshot := copyState(next)
	m.mu.Unlock()

	if l != nil {
		l(snapshot)
	}
}

func copyState(s models.AppState) models.AppState {
	if s.Result != nil {
		res := *s.Result
		s.Result = &res
	}
	return s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
