package api

import "net/http"

// RegisterRoutes mounts every API route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// UVs and setup
	mux.HandleFunc("GET /uvs", h.listUVs)
	mux.HandleFunc("GET /uvs/{uv}/subjects", h.subjectStats)
	mux.HandleFunc("GET /uvs/{uv}/questions", h.availableQuestions)

	// Tests
	mux.HandleFunc("POST /tests", h.createTest)
	mux.HandleFunc("GET /tests", h.listTests)
	mux.HandleFunc("GET /tests/{testID}", h.getTest)
	mux.HandleFunc("DELETE /tests/{testID}", h.deleteTest)
	mux.HandleFunc("POST /tests/{testID}/open", h.openTest)
	mux.HandleFunc("POST /tests/{testID}/retest", h.retest)
	mux.HandleFunc("GET /tests/{testID}/result", h.getResult)

	// Current session
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("POST /session/navigate", h.navigate)
	mux.HandleFunc("POST /session/next", h.next)
	mux.HandleFunc("POST /session/prev", h.prev)
	mux.HandleFunc("POST /session/answers", h.submitAnswer)
	mux.HandleFunc("POST /session/pause", h.pause)
	mux.HandleFunc("POST /session/complete", h.complete)

	// Notes
	mux.HandleFunc("GET /notes", h.listNotes)
	mux.HandleFunc("GET /notes/{questionID}", h.getNote)
	mux.HandleFunc("PUT /notes/{questionID}", h.saveNote)
	mux.HandleFunc("DELETE /notes/{questionID}", h.deleteNote)

	// Theme
	mux.HandleFunc("GET /theme", h.getTheme)
	mux.HandleFunc("POST /theme/toggle", h.toggleTheme)
}
