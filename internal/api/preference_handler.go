package api

import (
	"errors"
	"net/http"
	"strings"
)

// ── Request / Response types ────────────────────────────────────────────────

type NoteRequest struct {
	Note string `json:"note" example:"Remember: QNH is sea level pressure."`
}

func (r *NoteRequest) Validate() error {
	if strings.TrimSpace(r.Note) == "" {
		return errors.New("note is required")
	}
	return nil
}

type ThemeResponse struct {
	Mode string `json:"mode" example:"light"`
	Icon string `json:"icon" example:"bxs:moon"`
}

type NoteResponse struct {
	QuestionID string `json:"question_id" example:"q-050-001"`
	Note       string `json:"note"`
}

// ── Notes ───────────────────────────────────────────────────────────────────

// listNotes returns every note of the profile keyed by question ID.
// @Summary      List notes
// @Tags         Notes
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Success      200  {object}  map[string]string
// @Router       /notes [get]
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.All(r.Context(), profileFrom(r))
	if h.handleError(w, err, "notes") {
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

// getNote returns the note of a question, empty if none was written.
// @Summary      Get a note
// @Tags         Notes
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Param        questionID    path    string  true   "Question ID"
// @Success      200  {object}  NoteResponse
// @Router       /notes/{questionID} [get]
func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("questionID")
	note, err := h.notes.Find(r.Context(), profileFrom(r), id)
	if h.handleError(w, err, "note") {
		return
	}
	respondJSON(w, http.StatusOK, NoteResponse{QuestionID: id, Note: note})
}

// saveNote writes the note of a question.
// @Summary      Save a note
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        X-Profile-ID  header  string       false  "Profile"
// @Param        questionID    path    string       true   "Question ID"
// @Param        body          body    NoteRequest  true   "Note"
// @Success      200  {object}  NoteResponse
// @Failure      400  {object}  map[string]string
// @Router       /notes/{questionID} [put]
func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	id := r.PathValue("questionID")
	if h.handleError(w, h.notes.Save(r.Context(), profileFrom(r), id, req.Note), "note") {
		return
	}
	respondJSON(w, http.StatusOK, NoteResponse{QuestionID: id, Note: req.Note})
}

// deleteNote removes the note of a question.
// @Summary      Delete a note
// @Tags         Notes
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Param        questionID    path    string  true   "Question ID"
// @Success      204
// @Router       /notes/{questionID} [delete]
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.notes.Delete(r.Context(), profileFrom(r), r.PathValue("questionID")), "note") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Theme ───────────────────────────────────────────────────────────────────

// getTheme returns the saved display theme.
// @Summary      Get theme
// @Tags         Theme
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Success      200  {object}  ThemeResponse
// @Router       /theme [get]
func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themes.Get(r.Context(), profileFrom(r))
	if h.handleError(w, err, "theme") {
		return
	}
	respondJSON(w, http.StatusOK, ThemeResponse{Mode: theme.Mode, Icon: theme.Icon})
}

// toggleTheme switches between the light and dark themes.
// @Summary      Toggle theme
// @Tags         Theme
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Success      200  {object}  ThemeResponse
// @Router       /theme/toggle [post]
func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themes.Toggle(r.Context(), profileFrom(r))
	if h.handleError(w, err, "theme") {
		return
	}
	respondJSON(w, http.StatusOK, ThemeResponse{Mode: theme.Mode, Icon: theme.Icon})
}
