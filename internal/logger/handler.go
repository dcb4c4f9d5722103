package logger

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// PrettyHandler writes one colored line per record for terminal use.
type PrettyHandler struct {
	opts   *slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []string
	prefix string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{
		opts: opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelWarn
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString(formatLevel(r.Level))
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	fields := make([]string, 0, len(h.attrs)+r.NumAttrs())
	fields = append(fields, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.formatAttr(h.prefix, a)...)
		return true
	})
	if len(fields) > 0 {
		buf.WriteString(" ")
		buf.WriteString(strings.Join(fields, " "))
	}

	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			buf.WriteString(" ")
			buf.WriteString(color.HiBlackString("(%s:%d)", filepath.Base(frame.File), frame.Line))
		}
	}

	buf.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := h.clone()
	for _, a := range attrs {
		next.attrs = append(next.attrs, h.formatAttr(h.prefix, a)...)
	}
	return next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	attrs := make([]string, len(h.attrs))
	copy(attrs, h.attrs)
	return &PrettyHandler{
		opts:   h.opts,
		mu:     h.mu,
		w:      h.w,
		attrs:  attrs,
		prefix: h.prefix,
	}
}

func formatLevel(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return color.HiBlackString("[DEBUG]")
	case level < slog.LevelWarn:
		return color.CyanString("[INFO] ")
	case level < slog.LevelError:
		return color.YellowString("[WARN] ")
	default:
		return color.RedString("[ERROR]")
	}
}

func (h *PrettyHandler) formatAttr(prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}
	if a.Equal(slog.Attr{}) {
		return nil
	}

	if a.Value.Kind() == slog.KindGroup {
		var out []string
		for _, ga := range a.Value.Group() {
			out = append(out, h.formatAttr(prefix+a.Key+".", ga)...)
		}
		return out
	}

	key := prefix + a.Key
	var val string
	switch a.Value.Kind() {
	case slog.KindDuration:
		val = a.Value.Duration().Round(time.Millisecond).String()
	case slog.KindString:
		val = a.Value.String()
		if strings.ContainsAny(val, " \t\n\"") {
			val = `"` + strings.ReplaceAll(val, `"`, `\"`) + `"`
		}
	default:
		val = a.Value.String()
	}

	switch a.Key {
	case "error", "err":
		return []string{color.RedString("%s=%s", key, val)}
	case "duration_ms", "duration":
		return []string{color.MagentaString("%s=%s", key, val)}
	case "status", "tokens", "total_tokens":
		return []string{color.GreenString("%s=%s", key, val)}
	case "tone", "model":
		return []string{color.CyanString("%s=%s", key, val)}
	default:
		return []string{color.HiBlackString("%s=%s", key, val)}
	}
}
