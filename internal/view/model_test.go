package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitwise/internal/config"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/services"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// blockingGenerator parks inside Generate until release is closed.
type blockingGenerator struct {
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) Generate(_ context.Context, _ string, _ models.Tone) (*models.CommitResult, error) {
	close(g.entered)
	<-g.release
	return &models.CommitResult{Message: "chore: done", Description: "Finished."}, nil
}

func newModelWithMock(cfg *config.Config) (*Model, *services.MockCommitGenerator) {
	gen := new(services.MockCommitGenerator)
	return NewModel(services.NewCommitService(cfg, gen)), gen
}

func configured() *config.Config {
	return &config.Config{GeminiAPIKey: "test-key", Language: config.LangEN}
}

func TestNewModel(t *testing.T) {
	m := NewModel(nil)

	state := m.State()
	assert.Equal(t, models.ToneConventional, state.Tone)
	assert.Equal(t, models.PhaseIdle, state.Phase())
}

func TestModel_Generate(t *testing.T) {
	t.Run("scenario: fixed login bug", func(t *testing.T) {
		// arrange
		m, gen := newModelWithMock(configured())
		expected := &models.CommitResult{
			Message:     "fix: resolve login authentication bug",
			Description: "Corrects token refresh handling.",
		}
		gen.On("GenerateCommitMessage", mock.Anything, "fixed login bug", models.ToneConventional).
			Return(expected, nil, nil).Once()

		var phases []models.Phase
		m.OnChange(func(s models.AppState) { phases = append(phases, s.Phase()) })

		// act
		m.SetInput("fixed login bug")
		m.SetTone(models.ToneConventional)
		err := m.Generate(context.Background())

		// assert
		require.NoError(t, err)
		state := m.State()
		require.NotNil(t, state.Result)
		assert.Equal(t, *expected, *state.Result)
		assert.Empty(t, state.Error)
		assert.False(t, state.Loading)
		assert.Equal(t, []models.Phase{models.PhaseIdle, models.PhaseIdle, models.PhaseLoading, models.PhaseSuccess}, phases)
		gen.AssertExpectations(t)
	})

	t.Run("empty input sets the error and clears the result", func(t *testing.T) {
		// arrange
		m, gen := newModelWithMock(configured())
		gen.On("GenerateCommitMessage", mock.Anything, "first", models.ToneConventional).
			Return(&models.CommitResult{Message: "feat: first", Description: "d"}, nil, nil).Once()
		m.SetInput("first")
		require.NoError(t, m.Generate(context.Background()))

		// act
		m.SetInput("   ")
		err := m.Generate(context.Background())

		// assert
		assert.True(t, errors.Is(err, domainErrors.ErrEmptyInput))
		state := m.State()
		assert.Nil(t, state.Result)
		assert.Equal(t, "Please describe your changes first", state.Error)
		assert.Equal(t, models.PhaseFailure, state.Phase())
		gen.AssertNumberOfCalls(t, "GenerateCommitMessage", 1)
	})

	t.Run("missing key shows the remediation without a call", func(t *testing.T) {
		m, gen := newModelWithMock(&config.Config{GeminiAPIKey: "undefined"})
		m.SetInput("fixed login bug")

		err := m.Generate(context.Background())

		assert.True(t, errors.Is(err, domainErrors.ErrAPIKeyMissing))
		state := m.State()
		assert.Contains(t, state.Error, "Missing API_KEY")
		assert.Contains(t, state.Error, "Set API_KEY in your environment")
		assert.False(t, state.Loading)
		gen.AssertNotCalled(t, "GenerateCommitMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("generation failure replaces a previous result", func(t *testing.T) {
		m, gen := newModelWithMock(configured())
		gen.On("GenerateCommitMessage", mock.Anything, "one", models.ToneConventional).
			Return(&models.CommitResult{Message: "feat: one", Description: "d"}, nil, nil).Once()
		gen.On("GenerateCommitMessage", mock.Anything, "two", models.ToneConventional).
			Return(nil, nil, domainErrors.ErrInvalidAIOutput).Once()

		m.SetInput("one")
		require.NoError(t, m.Generate(context.Background()))
		m.SetInput("two")
		err := m.Generate(context.Background())

		assert.True(t, errors.Is(err, domainErrors.ErrInvalidAIOutput))
		state := m.State()
		assert.Nil(t, state.Result)
		assert.Contains(t, state.Error, "Failed to generate commit message")
	})

	t.Run("transport error text is surfaced", func(t *testing.T) {
		m, gen := newModelWithMock(configured())
		gen.On("GenerateCommitMessage", mock.Anything, "x", models.ToneConventional).
			Return(nil, nil, domainErrors.ErrAIGeneration.WithError(errors.New("dial tcp: connection refused"))).Once()

		m.SetInput("x")
		_ = m.Generate(context.Background())

		assert.Contains(t, m.State().Error, "dial tcp: connection refused")
	})

	t.Run("second trigger while loading is rejected", func(t *testing.T) {
		// arrange
		gen := &blockingGenerator{entered: make(chan struct{}), release: make(chan struct{})}
		m := NewModel(gen)
		m.SetInput("slow change")

		done := make(chan error, 1)
		go func() { done <- m.Generate(context.Background()) }()
		<-gen.entered

		// act
		err := m.Generate(context.Background())

		// assert
		assert.True(t, errors.Is(err, domainErrors.ErrGenerationInProgress))
		assert.True(t, m.State().Loading)

		close(gen.release)
		require.NoError(t, <-done)
		assert.Equal(t, models.PhaseSuccess, m.State().Phase())
	})
}

func TestModel_Copy(t *testing.T) {
	t.Run("copies the exact message", func(t *testing.T) {
		// arrange
		m, gen := newModelWithMock(configured())
		gen.On("GenerateCommitMessage", mock.Anything, "fixed login bug", models.ToneConventional).
			Return(&models.CommitResult{Message: "fix: resolve login authentication bug", Description: "d"}, nil, nil).Once()
		m.SetInput("fixed login bug")
		require.NoError(t, m.Generate(context.Background()))
		clip := &fakeClipboard{}

		// act
		ack, err := m.Copy(clip)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "Copied to clipboard!", ack)
		assert.Equal(t, "fix: resolve login authentication bug", clip.text)
	})

	t.Run("nothing to copy", func(t *testing.T) {
		m := NewModel(nil)
		clip := &fakeClipboard{}

		ack, err := m.Copy(clip)

		assert.Empty(t, ack)
		assert.True(t, errors.Is(err, domainErrors.ErrNothingToCopy))
		assert.Empty(t, clip.text)
	})

	t.Run("clipboard failure", func(t *testing.T) {
		m, gen := newModelWithMock(configured())
		gen.On("GenerateCommitMessage", mock.Anything, "a", models.ToneConventional).
			Return(&models.CommitResult{Message: "feat: a", Description: "d"}, nil, nil).Once()
		m.SetInput("a")
		require.NoError(t, m.Generate(context.Background()))

		_, err := m.Copy(&fakeClipboard{err: domainErrors.ErrClipboard})

		assert.True(t, errors.Is(err, domainErrors.ErrClipboard))
	})
}

func TestModel_StateIsACopy(t *testing.T) {
	m, gen := newModelWithMock(configured())
	gen.On("GenerateCommitMessage", mock.Anything, "a", models.ToneConventional).
		Return(&models.CommitResult{Message: "feat: a", Description: "d"}, nil, nil).Once()
	m.SetInput("a")
	require.NoError(t, m.Generate(context.Background()))

	state := m.State()
	state.Result.Message = "tampered"

	assert.Equal(t, "feat: a", m.State().Result.Message)
}
