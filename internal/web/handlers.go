package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	domainErrors "github.com/thomas-vilte/commitwise/internal/errors"
	"github.com/thomas-vilte/commitwise/internal/logger"
	"github.com/thomas-vilte/commitwise/internal/models"
	"github.com/thomas-vilte/commitwise/internal/view"
)

type pageData struct {
	Lang      string
	Status    models.ConfigStatus
	State     models.AppState
	Tones     []models.Tone
	PingText  string
	PingError string
}

type generateRequest struct {
	Input string `json:"input"`
	Tone  string `json:"tone"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type checkResponse struct {
	Text string `json:"text"`
}

func (s *Server) newPage(r *http.Request) pageData {
	return pageData{
		Lang:   s.trans.Language(),
		Status: s.status.Status(r.Host),
		State:  models.AppState{Tone: models.DefaultTone},
		Tones:  models.Tones(),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "index.html", s.newPage(r))
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	state, _ := s.generate(r, r.PostForm.Get("input"), r.PostForm.Get("tone"))

	page := s.newPage(r)
	page.State = state
	s.render(w, r, "index.html", page)
}

func (s *Server) handleCheckPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "check.html", s.newPage(r))
}

func (s *Server) handleCheckForm(w http.ResponseWriter, r *http.Request) {
	page := s.newPage(r)

	text, err := s.status.Ping(r.Context())
	if err != nil {
		page.PingError = domainErrors.UserMessage(err)
	} else {
		page.PingText = text
	}

	s.render(w, r, "check.html", page)
}

func (s *Server) handleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	state, err := s.generate(r, req.Input, req.Tone)
	if err != nil {
		writeJSON(w, r, statusForError(err), errorResponse{Error: state.Error})
		return
	}

	writeJSON(w, r, http.StatusOK, state.Result)
}

func (s *Server) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.status.Status(r.Host))
}

func (s *Server) handleAPICheck(w http.ResponseWriter, r *http.Request) {
	text, err := s.status.Ping(r.Context())
	if err != nil {
		writeJSON(w, r, statusForError(err), errorResponse{Error: domainErrors.UserMessage(err)})
		return
	}
	writeJSON(w, r, http.StatusOK, checkResponse{Text: text})
}

func (s *Server) handleAPITones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.Tones())
}

// generate drives a fresh view model through one generation. A blank tone
// selects the default; an unknown one is passed through so the service
// rejects it.
func (s *Server) generate(r *http.Request, input, rawTone string) (models.AppState, error) {
	model := view.NewModel(s.generator)
	model.SetInput(input)

	if strings.TrimSpace(rawTone) != "" {
		tone, ok := models.ParseTone(rawTone)
		if !ok {
			tone = models.Tone(rawTone)
		}
		model.SetTone(tone)
	}

	err := model.Generate(r.Context())
	return model.State(), err
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error(r.Context(), "template render failed", domainErrors.ErrRenderPage.WithError(err), "template", name)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "failed to encode response", err)
	}
}

// statusForError maps the error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrAPIKeyMissing):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainErrors.ErrAPIKeyInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, domainErrors.ErrGenerationInProgress):
		return http.StatusConflict
	}

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case domainErrors.TypeValidation:
			return http.StatusBadRequest
		case domainErrors.TypeAI:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}
