package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/uvquiz/backend/internal/chrono"
	"github.com/uvquiz/backend/internal/domain/quiz"
	"github.com/uvquiz/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateTestRequest struct {
	UV        string   `json:"uv" example:"050"`
	Database  string   `json:"database" example:"H"`
	Subtopics []string `json:"subtopics,omitempty"`
	Count     int      `json:"count" example:"20"`
}

func (r *CreateTestRequest) Validate() error {
	if r.UV == "" {
		return errors.New("uv is required")
	}
	if r.Database == "" {
		return errors.New("database is required")
	}
	return nil
}

// TestSummary is one entry of the historic list.
type TestSummary struct {
	ID        string     `json:"id" example:"m1x2y3z4abcd1234"`
	Mode      string     `json:"mode" example:"TEST"`
	Database  string     `json:"database" example:"HELICOPTERE"`
	UV        string     `json:"uv" example:"050 - Météorologie"`
	CreatedAt time.Time  `json:"created_at"`
	SaveAt    *time.Time `json:"save_at,omitempty"`
	Questions int        `json:"questions" example:"20"`
	Answered  int        `json:"answered" example:"12"`
	Score     *int       `json:"score,omitempty" example:"80"`
	TimeSpent string     `json:"time_spent" example:"00:12:45"`
	Completed bool       `json:"completed"`
}

func summarize(t *quiz.Test) TestSummary {
	return TestSummary{
		ID:        t.ID,
		Mode:      string(t.Mode),
		Database:  string(t.Database),
		UV:        t.UV,
		CreatedAt: t.CreatedAt,
		SaveAt:    t.SaveAt,
		Questions: len(t.Questions),
		Answered:  len(t.UserAnswers),
		Score:     t.Score,
		TimeSpent: chrono.FormatSeconds(t.Elapsed()),
		Completed: t.Score != nil,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createTest samples a new test and makes it the current one.
// @Summary      Create a test
// @Description  Filters the UV question bank, shuffles it and keeps the requested number of questions.
// @Tags         Tests
// @Accept       json
// @Produce      json
// @Param        X-Profile-ID  header  string             false  "Profile"
// @Param        body          body    CreateTestRequest  true   "Test filters"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  map[string]string
// @Router       /tests [post]
func (h *Handler) createTest(w http.ResponseWriter, r *http.Request) {
	var req CreateTestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sel := service.Selection{UV: req.UV, DatabaseKey: req.Database, Subtopics: req.Subtopics}
	sess, err := h.quiz.CreateTest(r.Context(), profileFrom(r), sel, req.Count)
	if h.handleError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusCreated, newSessionResponse(sess.View()))
}

// listTests lists saved tests, newest first.
// @Summary      List saved tests
// @Tags         Tests
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Success      200  {array}  TestSummary
// @Router       /tests [get]
func (h *Handler) listTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.quiz.ListTests(r.Context(), profileFrom(r))
	if h.handleError(w, err, "tests") {
		return
	}

	resp := make([]TestSummary, 0, len(tests))
	for _, t := range tests {
		resp = append(resp, summarize(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

// getTest returns a saved test as stored.
// @Summary      Get a test
// @Tags         Tests
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Param        testID        path    string  true   "Test ID"
// @Success      200  {object}  quiz.Test
// @Failure      404  {object}  map[string]string
// @Router       /tests/{testID} [get]
func (h *Handler) getTest(w http.ResponseWriter, r *http.Request) {
	t, err := h.quiz.GetTest(r.Context(), profileFrom(r), r.PathValue("testID"))
	if h.handleError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// deleteTest removes a saved test.
// @Summary      Delete a test
// @Tags         Tests
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Param        testID        path    string  true   "Test ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tests/{testID} [delete]
func (h *Handler) deleteTest(w http.ResponseWriter, r *http.Request) {
	err := h.quiz.DeleteTest(r.Context(), profileFrom(r), r.PathValue("testID"))
	if h.handleError(w, err, "test") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// openTest resumes a saved test.
// @Summary      Open a test
// @Tags         Tests
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Param        testID        path    string  true   "Test ID"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /tests/{testID}/open [post]
func (h *Handler) openTest(w http.ResponseWriter, r *http.Request) {
	sess, err := h.quiz.OpenTest(r.Context(), profileFrom(r), r.PathValue("testID"))
	if h.handleError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(sess.View()))
}

// retest starts a new test from a saved test's parameters.
// @Summary      Retake a test
// @Tags         Tests
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Param        testID        path    string  true   "Test ID"
// @Success      201  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /tests/{testID}/retest [post]
func (h *Handler) retest(w http.ResponseWriter, r *http.Request) {
	sess, err := h.quiz.Retest(r.Context(), profileFrom(r), r.PathValue("testID"))
	if h.handleError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusCreated, newSessionResponse(sess.View()))
}

// getResult reviews a completed test.
// @Summary      Test result
// @Tags         Tests
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Param        testID        path    string  true   "Test ID"
// @Success      200  {object}  service.Result
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  IncompleteResponse
// @Router       /tests/{testID}/result [get]
func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	res, err := h.quiz.Result(r.Context(), profileFrom(r), r.PathValue("testID"))
	if h.handleError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusOK, res)
}
