// Package web serves the browser front-end and its JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/thomas-vilte/commitwise/internal/logger"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
	maxBodyBytes      = 64 << 10
)

// StatusReporter answers the configuration check and runs the live ping.
type StatusReporter interface {
	Status(host string) models.ConfigStatus
	Ping(ctx context.Context) (string, error)
}

// Server renders the generator and smoke-test pages. Every request gets its
// own view model; only the generator, status reporter and translations are
// shared.
type Server struct {
	generator view.Generator
	status    StatusReporter
	trans     *i18n.Translations
	templates *template.Template
}

func NewServer(generator view.Generator, status StatusReporter, trans *i18n.Translations) (*Server, error) {
	if trans == nil {
		return nil, errors.New("translations are required")
	}

	funcs := template.FuncMap{
		"t": func(id string) string {
			return trans.GetMessage(id, 0, nil)
		},
	}

	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return &Server{
		generator: generator,
		status:    status,
		trans:     trans,
		templates: tmpl,
	}, nil
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /generate", s.handleGenerateForm)
	mux.HandleFunc("GET /check", s.handleCheckPage)
	mux.HandleFunc("POST /check", s.handleCheckForm)

	mux.HandleFunc("POST /api/generate", s.handleAPIGenerate)
	mux.HandleFunc("GET /api/status", s.handleAPIStatus)
	mux.HandleFunc("POST /api/check", s.handleAPICheck)
	mux.HandleFunc("GET /api/tones", s.handleAPITones)

	return requestLogger(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	log := logger.FromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("web server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error serving on %s: %w", addr, err)
	case <-ctx.Done():
	}

	log.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
