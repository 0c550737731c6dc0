// Package session drives one in-progress test: navigation between
// questions, answer recording, pause and completion.
//
// A Session is safe for concurrent use; every mutation is serialized and
// persisted as a whole test.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/uvquiz/backend/internal/chrono"
	"github.com/uvquiz/backend/internal/domain/answer"
	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/quiz"
)

type State string

const (
	StateInProgress State = "in_progress"
	StatePaused     State = "paused"
	StateCompleted  State = "completed"
	StateDeleted    State = "deleted"
)

var (
	ErrOutOfRange   = errors.New("index out of range")
	ErrDeleted      = errors.New("test has been deleted")
	ErrIncomplete   = errors.New("test incomplete")
	ErrInvalidInput = errors.New("invalid input")
)

// IncompleteError is returned when completing a test that still has
// unanswered questions, or when reviewing a test that was never completed.
// Unanswered is 0 for a fully answered test that is only paused.
type IncompleteError struct {
	Unanswered int
}

func (e *IncompleteError) Error() string {
	if e.Unanswered == 0 {
		return "test incomplete: not completed yet"
	}
	return fmt.Sprintf("test incomplete: %d unanswered questions", e.Unanswered)
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

// Store persists tests. *store.TestRepository satisfies it.
type Store interface {
	Save(ctx context.Context, profile string, t *quiz.Test) error
	Delete(ctx context.Context, profile, id string) error
	SetCurrent(ctx context.Context, profile, id string) error
}

type Session struct {
	mu      sync.Mutex
	profile string
	test    *quiz.Test
	current int
	state   State
	store   Store
	now     func() time.Time
}

// Open attaches a session to an existing test, positioned on the first
// question. A test that already carries a score opens as completed.
func Open(profile string, t *quiz.Test, s Store) *Session {
	state := StateInProgress
	if t.Score != nil {
		state = StateCompleted
	}
	if t.UserAnswers == nil {
		t.UserAnswers = make(map[int]int)
	}
	return &Session{
		profile: profile,
		test:    t,
		state:   state,
		store:   s,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Start persists a freshly created test, makes it the current test and
// opens a session on it.
func Start(ctx context.Context, profile string, t *quiz.Test, s Store) (*Session, error) {
	if err := s.Save(ctx, profile, t); err != nil {
		return nil, fmt.Errorf("save test: %w", err)
	}
	if err := s.SetCurrent(ctx, profile, t.ID); err != nil {
		return nil, fmt.Errorf("set current test: %w", err)
	}
	return Open(profile, t, s), nil
}

func (s *Session) TestID() string {
	return s.test.ID
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// RecordAnswer stores optionIndex for questionIndex. The first answer is
// final: if the question is already answered nothing changes and false is
// returned.
func (s *Session) RecordAnswer(ctx context.Context, questionIndex, optionIndex int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDeleted {
		return false, ErrDeleted
	}
	if questionIndex < 0 || questionIndex >= len(s.test.Questions) {
		return false, fmt.Errorf("question %d: %w", questionIndex, ErrOutOfRange)
	}
	if s.test.HasAnswer(questionIndex) {
		return false, nil
	}
	if n := len(s.test.Questions[questionIndex].Options); optionIndex < 0 || optionIndex >= n {
		return false, fmt.Errorf("%w: option %d of %d", ErrInvalidInput, optionIndex, n)
	}

	s.test.UserAnswers[questionIndex] = optionIndex
	if err := s.store.Save(ctx, s.profile, s.test); err != nil {
		delete(s.test.UserAnswers, questionIndex)
		return false, fmt.Errorf("save answer: %w", err)
	}
	if s.state == StatePaused {
		s.state = StateInProgress
	}
	return true, nil
}

// Answer records optionIndex for the current question.
func (s *Session) Answer(ctx context.Context, optionIndex int) (bool, error) {
	s.mu.Lock()
	idx := s.current
	s.mu.Unlock()
	return s.RecordAnswer(ctx, idx, optionIndex)
}

// Navigate moves to target. Out-of-range targets are rejected and the
// position is left unchanged.
func (s *Session) Navigate(target int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDeleted {
		return View{}, ErrDeleted
	}
	if target < 0 || target >= len(s.test.Questions) {
		return View{}, fmt.Errorf("question %d: %w", target, ErrOutOfRange)
	}
	s.current = target
	return s.view(), nil
}

// Next moves forward one question, staying on the last one.
func (s *Session) Next() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current+1 < len(s.test.Questions) {
		s.current++
	}
	return s.view()
}

// Prev moves back one question, staying on the first one.
func (s *Session) Prev() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current-1 >= 0 {
		s.current--
	}
	return s.view()
}

// Complete finalizes the test: elapsed time is frozen, the save time is
// stamped and the score attached. Every question must be answered.
func (s *Session) Complete(ctx context.Context, elapsed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDeleted {
		return ErrDeleted
	}
	if n := s.test.Unanswered(); n > 0 {
		return &IncompleteError{Unanswered: n}
	}

	prev := *s.test
	pct, _ := answer.Percentages(s.test.Questions, s.test.UserAnswers)
	s.freeze(elapsed)
	s.test.Score = &pct

	if err := s.store.Save(ctx, s.profile, s.test); err != nil {
		*s.test = prev
		return fmt.Errorf("save completed test: %w", err)
	}
	s.state = StateCompleted
	return nil
}

// Pause saves partial progress. It is allowed at any point.
func (s *Session) Pause(ctx context.Context, elapsed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDeleted {
		return ErrDeleted
	}

	prev := *s.test
	s.freeze(elapsed)
	if err := s.store.Save(ctx, s.profile, s.test); err != nil {
		*s.test = prev
		return fmt.Errorf("save paused test: %w", err)
	}
	if s.state != StateCompleted {
		s.state = StatePaused
	}
	return nil
}

func (s *Session) freeze(elapsed int) {
	if elapsed < 0 {
		elapsed = 0
	}
	now := s.now()
	s.test.TimeElapsed = &elapsed
	s.test.SaveAt = &now
}

// Retest creates, persists and opens a new test built from this test's
// parameters and question pool. This session is left untouched.
func (s *Session) Retest(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.test.Retake(nil)
	if err != nil {
		return nil, err
	}
	return Start(ctx, s.profile, next, s.store)
}

// Delete removes the test from the collection.
func (s *Session) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDeleted {
		return ErrDeleted
	}
	if err := s.store.Delete(ctx, s.profile, s.test.ID); err != nil {
		return err
	}
	s.state = StateDeleted
	return nil
}

// Test returns the underlying test. Callers must not mutate it.
func (s *Session) Test() *quiz.Test {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.test
}

// NavState is the grid marker of a question.
type NavState string

const (
	NavUnanswered NavState = "unanswered"
	NavCorrect    NavState = "correct"
	NavIncorrect  NavState = "incorrect"
)

// View is what a client renders for the current question. Validation is
// nil until the question has been answered; once set the question is
// read-only.
type View struct {
	TestID     string             `json:"test_id"`
	State      State              `json:"state"`
	Index      int                `json:"index"`
	Total      int                `json:"total"`
	Answered   int                `json:"answered"`
	Question   question.Question  `json:"question"`
	Validation *answer.Resolution `json:"validation,omitempty"`
	Nav        []NavState         `json:"nav"`
	Elapsed    int                `json:"elapsed"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() View {
	t := s.test
	v := View{
		TestID:   t.ID,
		State:    s.state,
		Index:    s.current,
		Total:    len(t.Questions),
		Answered: len(t.UserAnswers),
		Nav:      make([]NavState, len(t.Questions)),
		Elapsed:  t.Elapsed(),
	}
	for i, q := range t.Questions {
		r := answer.Indices(q, t.UserAnswers, i)
		switch {
		case !r.Answered:
			v.Nav[i] = NavUnanswered
		case r.IsCorrect():
			v.Nav[i] = NavCorrect
		default:
			v.Nav[i] = NavIncorrect
		}
	}
	if len(t.Questions) == 0 {
		return v
	}
	q := t.Questions[s.current]
	v.Question = q
	if r := answer.Indices(q, t.UserAnswers, s.current); r.Answered {
		v.Validation = &r
	}
	return v
}

// Card is one reviewed question of a result.
type Card struct {
	Index      int               `json:"index"`
	Question   question.Question `json:"question"`
	Resolution answer.Resolution `json:"resolution"`
	Correct    bool              `json:"correct"`
}

type Result struct {
	TestID       string    `json:"test_id"`
	UV           string    `json:"uv"`
	Database     string    `json:"database"`
	Mode         string    `json:"mode"`
	Correct      int       `json:"correct"`
	Total        int       `json:"total"`
	PctCorrect   int       `json:"pct_correct"`
	PctIncorrect int       `json:"pct_incorrect"`
	Passed       bool      `json:"passed"`
	TimeSpent    string    `json:"time_spent"`
	Cards        []Card    `json:"cards"`
	SaveAt       time.Time `json:"save_at"`
}

// Result scores the test. Results exist only for completed tests.
func (s *Session) Result() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildResult(s.test)
}

// BuildResult scores a completed test.
func BuildResult(t *quiz.Test) (Result, error) {
	if n := t.Unanswered(); n > 0 || t.Score == nil {
		return Result{}, &IncompleteError{Unanswered: n}
	}

	correct, total := answer.Score(t.Questions, t.UserAnswers)
	pc, pi := answer.Percentages(t.Questions, t.UserAnswers)

	res := Result{
		TestID:       t.ID,
		UV:           t.UV,
		Database:     string(t.Database),
		Mode:         string(t.Mode),
		Correct:      correct,
		Total:        total,
		PctCorrect:   pc,
		PctIncorrect: pi,
		Passed:       answer.Passed(pc),
		TimeSpent:    chrono.FormatSeconds(t.Elapsed()),
		Cards:        make([]Card, len(t.Questions)),
	}
	if t.SaveAt != nil {
		res.SaveAt = *t.SaveAt
	}

	resolutions := answer.BuildAnswerMap(t.Questions, t.UserAnswers)
	for i, q := range t.Questions {
		r := resolutions[i]
		res.Cards[i] = Card{Index: i, Question: q, Resolution: r, Correct: r.IsCorrect()}
	}
	return res, nil
}
