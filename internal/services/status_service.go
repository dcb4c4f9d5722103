package services

import (
	"context"
	"net"
	"strings"

	"github.com/thomas-vilte/commitwise/internal/ai"
	"github.com/thomas-vilte/commitwise/internal/config"
	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/logger"
	"github.com/thomas-vilte/commitwise/internal/models"
)

const (
	EnvironmentProduction = "Production"
	EnvironmentLocalhost  = "Localhost"

	// EmptyPingText replaces an empty smoke-test reply.
	EmptyPingText = "Connection verified, but no text was returned."
)

// StatusService answers "is the tool configured" and runs the live
// connectivity check.
type StatusService struct {
	cfg     *config.Config
	checker ai.ConnectivityChecker
}

func NewStatusService(cfg *config.Config, checker ai.ConnectivityChecker) *StatusService {
	return &StatusService{
		cfg:     cfg,
		checker: checker,
	}
}

// Status reports the configuration badges for a request addressed to host.
// No network call is made.
func (s *StatusService) Status(host string) models.ConfigStatus {
	status := models.ConfigStatus{
		Environment: EnvironmentFor(host),
		Model:       string(config.DefaultModel()),
	}
	if s.cfg == nil {
		return status
	}

	status.Configured = s.cfg.HasAPIKey()
	status.Model = string(s.cfg.ActiveModel())
	if env := s.cfg.EnvironmentName(); env != "" {
		status.Environment = env
	}
	return status
}

// Ping performs one live call. An unconfigured key fails without a call.
func (s *StatusService) Ping(ctx context.Context) (string, error) {
	if s.cfg == nil || !s.cfg.HasAPIKey() {
		return "", domainErrors.ErrAPIKeyMissing
	}
	if s.checker == nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "AI provider not initialized", nil)
	}

	text, err := s.checker.Ping(ctx)
	if err != nil {
		logger.Error(ctx, "connectivity check failed", err)
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return EmptyPingText, nil
	}
	return text, nil
}

// EnvironmentFor labels loopback hosts as Localhost and everything else as
// Production. host may carry a port.
func EnvironmentFor(host string) string {
	h := host
	if splitHost, _, err := net.SplitHostPort(host); err == nil {
		h = splitHost
	}
	h = strings.Trim(h, "[]")

	if strings.EqualFold(h, "localhost") {
		return EnvironmentLocalhost
	}
	if ip := net.ParseIP(h); ip != nil && ip.IsLoopback() {
		return EnvironmentLocalhost
	}
	return EnvironmentProduction
}
