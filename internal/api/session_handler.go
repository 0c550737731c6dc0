package api

import (
	"errors"
	"net/http"

	"github.com/uvquiz/backend/internal/chrono"
	"github.com/uvquiz/backend/internal/domain/answer"
	"github.com/uvquiz/backend/internal/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type NavigateRequest struct {
	Index int `json:"index" example:"3"`
}

func (r *NavigateRequest) Validate() error {
	if r.Index < 0 {
		return errors.New("index must not be negative")
	}
	return nil
}

type SubmitAnswerRequest struct {
	Option *int `json:"option" example:"1"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.Option == nil {
		return errors.New("option is required")
	}
	if *r.Option < 0 {
		return errors.New("option must not be negative")
	}
	return nil
}

// TimerRequest carries the client's timer, either in seconds or as the
// displayed "hh:mm:ss" text. Time wins when both are set.
type TimerRequest struct {
	Elapsed int    `json:"elapsed" example:"754"`
	Time    string `json:"time,omitempty" example:"00:12:34"`
}

func (r *TimerRequest) Validate() error {
	if r.Time != "" {
		secs, err := chrono.ParseTimeString(r.Time)
		if err != nil {
			return err
		}
		r.Elapsed = secs
	}
	if r.Elapsed < 0 {
		return errors.New("elapsed must not be negative")
	}
	return nil
}

// OptionView hides which option is correct until the question is answered.
type OptionView struct {
	Text    string `json:"text" example:"1013.25 hPa"`
	Correct *bool  `json:"correct,omitempty"`
}

type QuestionView struct {
	ID          string       `json:"id" example:"q-050-001"`
	Subtopic    string       `json:"subtopic" example:"050-01"`
	Database    string       `json:"database" example:"H"`
	Question    string       `json:"question" example:"Standard sea level pressure?"`
	Options     []OptionView `json:"options"`
	Explanation string       `json:"explanation,omitempty"`
}

type SessionResponse struct {
	TestID     string             `json:"test_id" example:"m1x2y3z4abcd1234"`
	State      session.State      `json:"state" example:"in_progress"`
	Index      int                `json:"index" example:"0"`
	Total      int                `json:"total" example:"20"`
	Answered   int                `json:"answered" example:"0"`
	Question   QuestionView       `json:"question"`
	Validation *answer.Resolution `json:"validation,omitempty"`
	Nav        []session.NavState `json:"nav"`
	Elapsed    int                `json:"elapsed" example:"0"`
	Time       string             `json:"time" example:"00:00:00"`
}

type AnswerResponse struct {
	Recorded bool            `json:"recorded"`
	Session  SessionResponse `json:"session"`
}

func newSessionResponse(v session.View) SessionResponse {
	revealed := v.Validation != nil
	q := QuestionView{
		ID:       v.Question.ID,
		Subtopic: v.Question.Subtopic,
		Database: v.Question.Database,
		Question: v.Question.Text,
		Options:  make([]OptionView, len(v.Question.Options)),
	}
	for i, opt := range v.Question.Options {
		q.Options[i] = OptionView{Text: opt.Text}
		if revealed {
			correct := opt.Correct
			q.Options[i].Correct = &correct
		}
	}
	if revealed {
		q.Explanation = v.Question.Explanation
	}

	return SessionResponse{
		TestID:     v.TestID,
		State:      v.State,
		Index:      v.Index,
		Total:      v.Total,
		Answered:   v.Answered,
		Question:   q,
		Validation: v.Validation,
		Nav:        v.Nav,
		Elapsed:    v.Elapsed,
		Time:       chrono.FormatSeconds(v.Elapsed),
	}
}

// current resolves the profile's current session, answering on failure.
func (h *Handler) current(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := h.quiz.Current(r.Context(), profileFrom(r))
	if h.handleError(w, err, "current test") {
		return nil, false
	}
	return sess, true
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession returns the view of the current question.
// @Summary      Current session
// @Tags         Session
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Success      200  {object}  SessionResponse
// @Failure      409  {object}  map[string]string  "no current test"
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.current(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(sess.View()))
}

// navigate jumps to a question.
// @Summary      Go to question
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        X-Profile-ID  header  string           false  "Profile"
// @Param        body          body    NavigateRequest  true   "Target index"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "no current test"
// @Router       /session/navigate [post]
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	sess, ok := h.current(w, r)
	if !ok {
		return
	}

	v, err := sess.Navigate(req.Index)
	if h.handleError(w, err, "question") {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(v))
}

// next moves to the following question, staying on the last one.
// @Summary      Next question
// @Tags         Session
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Success      200  {object}  SessionResponse
// @Failure      409  {object}  map[string]string  "no current test"
// @Router       /session/next [post]
func (h *Handler) next(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.current(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(sess.Next()))
}

// prev moves to the previous question, staying on the first one.
// @Summary      Previous question
// @Tags         Session
// @Produce      json
// @Param        X-Profile-ID  header  string  false  "Profile"
// @Success      200  {object}  SessionResponse
// @Failure      409  {object}  map[string]string  "no current test"
// @Router       /session/prev [post]
func (h *Handler) prev(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.current(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(sess.Prev()))
}

// submitAnswer answers the current question. Answers are final: a second
// submission is ignored and reported with recorded=false.
// @Summary      Answer current question
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        X-Profile-ID  header  string               false  "Profile"
// @Param        body          body    SubmitAnswerRequest  true   "Chosen option index"
// @Success      200  {object}  AnswerResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "no current test"
// @Router       /session/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	sess, ok := h.current(w, r)
	if !ok {
		return
	}

	recorded, err := sess.Answer(r.Context(), *req.Option)
	if h.handleError(w, err, "question") {
		return
	}
	respondJSON(w, http.StatusOK, AnswerResponse{
		Recorded: recorded,
		Session:  newSessionResponse(sess.View()),
	})
}

// pause saves the test for later with the elapsed time.
// @Summary      Pause test
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        X-Profile-ID  header  string        false  "Profile"
// @Param        body          body    TimerRequest  true   "Elapsed time"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "no current test"
// @Router       /session/pause [post]
func (h *Handler) pause(w http.ResponseWriter, r *http.Request) {
	var req TimerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	sess, ok := h.current(w, r)
	if !ok {
		return
	}

	if h.handleError(w, sess.Pause(r.Context(), req.Elapsed), "test") {
		return
	}
	h.logger.Info("test paused", "test_id", sess.TestID(), "elapsed", req.Elapsed)
	respondJSON(w, http.StatusOK, newSessionResponse(sess.View()))
}

// complete scores the test. Every question must be answered.
// @Summary      Complete test
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        X-Profile-ID  header  string        false  "Profile"
// @Param        body          body    TimerRequest  true   "Elapsed time"
// @Success      200  {object}  session.Result
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  IncompleteResponse  "unanswered questions or no current test"
// @Router       /session/complete [post]
func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	var req TimerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	sess, ok := h.current(w, r)
	if !ok {
		return
	}

	if h.handleError(w, sess.Complete(r.Context(), req.Elapsed), "test") {
		return
	}
	res, err := sess.Result()
	if h.handleError(w, err, "test") {
		return
	}
	h.logger.Info("test completed", "test_id", sess.TestID(), "score", res.PctCorrect, "passed", res.Passed)
	respondJSON(w, http.StatusOK, res)
}
