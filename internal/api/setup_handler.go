package api

import (
	"net/http"

	"github.com/uvquiz/backend/internal/domain/subject"
	"github.com/uvquiz/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type UVResponse struct {
	ID    string `json:"id" example:"050"`
	Name  string `json:"name" example:"Météorologie"`
	Label string `json:"label" example:"050 - Météorologie"`
}

type SubjectStatsResponse struct {
	UV       string          `json:"uv" example:"050"`
	Database string          `json:"database" example:"H"`
	Subjects []subject.Stats `json:"subjects"`
}

type AvailableResponse struct {
	UV        string `json:"uv" example:"050"`
	Database  string `json:"database" example:"H"`
	Available int    `json:"available" example:"42"`
}

// selectionFrom reads the setup filters from the query string. Without any
// subtopic parameter no subtopic filter applies; "?subtopic=" selects none.
func selectionFrom(r *http.Request) service.Selection {
	q := r.URL.Query()
	sel := service.Selection{
		UV:          r.PathValue("uv"),
		DatabaseKey: q.Get("database"),
	}
	if raw, ok := q["subtopic"]; ok {
		sel.Subtopics = make([]string, 0, len(raw))
		for _, s := range raw {
			if s != "" {
				sel.Subtopics = append(sel.Subtopics, s)
			}
		}
	}
	return sel
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listUVs lists the UVs offered by the catalog.
// @Summary      List UVs
// @Tags         Setup
// @Produce      json
// @Success      200  {array}  UVResponse
// @Router       /uvs [get]
func (h *Handler) listUVs(w http.ResponseWriter, r *http.Request) {
	uvs := h.quiz.UVs(r.Context())

	resp := make([]UVResponse, 0, len(uvs))
	for _, uv := range uvs {
		resp = append(resp, UVResponse{ID: uv.ID, Name: uv.Name, Label: uv.Label()})
	}
	respondJSON(w, http.StatusOK, resp)
}

// subjectStats counts available questions per subject and subtopic.
// @Summary      Subject statistics
// @Tags         Setup
// @Produce      json
// @Param        uv        path   string  true   "UV id"
// @Param        database  query  string  false  "Database key (H or A)"
// @Success      200  {object}  SubjectStatsResponse
// @Router       /uvs/{uv}/subjects [get]
func (h *Handler) subjectStats(w http.ResponseWriter, r *http.Request) {
	uv := r.PathValue("uv")
	db := r.URL.Query().Get("database")

	respondJSON(w, http.StatusOK, SubjectStatsResponse{
		UV:       uv,
		Database: db,
		Subjects: h.quiz.SubjectStats(r.Context(), uv, db),
	})
}

// availableQuestions reports how many questions match the filters, which
// bounds the desired count of a new test.
// @Summary      Count available questions
// @Tags         Setup
// @Produce      json
// @Param        uv        path   string    true   "UV id"
// @Param        database  query  string    false  "Database key (H or A)"
// @Param        subtopic  query  []string  false  "Selected subtopic codes"  collectionFormat(multi)
// @Success      200  {object}  AvailableResponse
// @Router       /uvs/{uv}/questions [get]
func (h *Handler) availableQuestions(w http.ResponseWriter, r *http.Request) {
	sel := selectionFrom(r)

	respondJSON(w, http.StatusOK, AvailableResponse{
		UV:        sel.UV,
		Database:  sel.DatabaseKey,
		Available: len(h.quiz.Available(r.Context(), sel)),
	})
}
