package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestOptionsLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Options{}.Level())
	assert.Equal(t, slog.LevelInfo, Options{Verbose: true}.Level())
	assert.Equal(t, slog.LevelDebug, Options{Debug: true, Verbose: true}.Level())
}

func TestPrettyHandler(t *testing.T) {
	t.Run("filters below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

		l.Info("hidden")
		l.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "[WARN]  shown")
	})

	t.Run("renders attributes and groups", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.With("model", "gemini-2.5-flash").WithGroup("req").Info("generated", "tone", "Concise", "path", "/api/generate")

		out := buf.String()
		assert.Contains(t, out, "[INFO]  generated")
		assert.Contains(t, out, "model=gemini-2.5-flash")
		assert.Contains(t, out, "req.tone=Concise")
		assert.Contains(t, out, "req.path=/api/generate")
	})

	t.Run("quotes values with spaces", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.Error("failed", "error", "Missing API_KEY here")

		assert.Contains(t, buf.String(), `error="Missing API_KEY here"`)
	})
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	l := Setup(Options{JSON: true, Verbose: true, Writer: &buf})
	l.Info("listening", "addr", ":8080")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "listening", rec["msg"])
	assert.Equal(t, ":8080", rec["addr"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithLogger(context.Background(), base)
	ctx = With(ctx, "request_id", "abc")
	Info(ctx, "handled")
	Error(ctx, "boom", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "request_id=abc")
	assert.Contains(t, out, "[ERROR] boom")
	assert.Contains(t, out, "error=")
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
