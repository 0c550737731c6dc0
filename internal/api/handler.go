// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/uvquiz/backend/internal/domain/quiz"
	"github.com/uvquiz/backend/internal/service"
	"github.com/uvquiz/backend/internal/session"
	"github.com/uvquiz/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	quiz   *service.QuizService
	notes  *store.NoteRepository
	themes *store.ThemeRepository
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(q *service.QuizService, notes *store.NoteRepository, themes *store.ThemeRepository, logger *slog.Logger) *Handler {
	return &Handler{
		quiz:   q,
		notes:  notes,
		themes: themes,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg} with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// IncompleteResponse is returned when a test still has unanswered questions.
type IncompleteResponse struct {
	Error      string `json:"error" example:"test incomplete: 2 unanswered questions"`
	Unanswered int    `json:"unanswered" example:"2"`
}

// handleError maps domain and store errors to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}

	var incomplete *session.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		respondJSON(w, http.StatusConflict, IncompleteResponse{
			Error:      incomplete.Error(),
			Unanswered: incomplete.Unanswered,
		})
	case errors.Is(err, quiz.ErrEmptySelection),
		errors.Is(err, quiz.ErrQuestionCount),
		errors.Is(err, session.ErrOutOfRange),
		errors.Is(err, session.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNoCurrentTest):
		respondError(w, http.StatusConflict, "no current test")
	case errors.Is(err, store.ErrNotFound), errors.Is(err, session.ErrDeleted):
		respondError(w, http.StatusNotFound, entity+" not found")
	default:
		h.logger.Error("request failed", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
