package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/quiz"
	"github.com/uvquiz/backend/internal/session"
	"github.com/uvquiz/backend/internal/store"
)

// fakeStore records what the session persists.
type fakeStore struct {
	saved   map[string]quiz.Test
	saves   int
	current string
	deleted []string
	failErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string]quiz.Test)}
}

func (f *fakeStore) Save(_ context.Context, _ string, t *quiz.Test) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.saves++
	cp := *t
	cp.UserAnswers = make(map[int]int, len(t.UserAnswers))
	for k, v := range t.UserAnswers {
		cp.UserAnswers[k] = v
	}
	f.saved[t.ID] = cp
	return nil
}

func (f *fakeStore) Delete(_ context.Context, _ string, id string) error {
	if _, ok := f.saved[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.saved, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) SetCurrent(_ context.Context, _ string, id string) error {
	f.current = id
	return nil
}

// newTest builds a test with n questions and remembers each question's
// correct option index after shuffling.
func newTest(t *testing.T, n int) *quiz.Test {
	t.Helper()
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID: string(rune('a' + i)),
			Options: []question.Option{
				{Text: "right", Correct: true},
				{Text: "wrong 1"},
				{Text: "wrong 2"},
			},
		}
	}
	test, err := quiz.New(quiz.Params{DatabaseKey: "H", DesiredCount: n}, qs)
	if err != nil {
		t.Fatalf("create test: %v", err)
	}
	return test
}

func start(t *testing.T, n int) (*session.Session, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	s, err := session.Start(context.Background(), "p", newTest(t, n), fs)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return s, fs
}

func correctOf(s *session.Session, idx int) int {
	return s.Test().Questions[idx].CorrectIndex()
}

func wrongOf(s *session.Session, idx int) int {
	return (correctOf(s, idx) + 1) % 3
}

func TestStart_PersistsAndSetsCurrent(t *testing.T) {
	s, fs := start(t, 3)

	if fs.current != s.TestID() {
		t.Errorf("current = %q, want %q", fs.current, s.TestID())
	}
	if _, ok := fs.saved[s.TestID()]; !ok {
		t.Error("expected test to be saved")
	}
	if s.State() != session.StateInProgress {
		t.Errorf("state = %q", s.State())
	}
}

func TestRecordAnswer_FirstWriteWins(t *testing.T) {
	ctx := context.Background()
	s, fs := start(t, 3)

	ok, err := s.RecordAnswer(ctx, 1, 2)
	if err != nil || !ok {
		t.Fatalf("first answer: ok=%v err=%v", ok, err)
	}
	savesAfterFirst := fs.saves

	ok, err = s.RecordAnswer(ctx, 1, 0)
	if err != nil {
		t.Fatalf("second answer: %v", err)
	}
	if ok {
		t.Error("expected second answer to be ignored")
	}
	if got := s.Test().UserAnswers[1]; got != 2 {
		t.Errorf("stored answer = %d, want 2", got)
	}
	if fs.saves != savesAfterFirst {
		t.Error("expected no persistence for an ignored answer")
	}
	if got := fs.saved[s.TestID()].UserAnswers[1]; got != 2 {
		t.Errorf("persisted answer = %d, want 2", got)
	}
}

func TestRecordAnswer_InvalidIndices(t *testing.T) {
	ctx := context.Background()
	s, _ := start(t, 2)

	if _, err := s.RecordAnswer(ctx, 2, 0); !errors.Is(err, session.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := s.RecordAnswer(ctx, -1, 0); !errors.Is(err, session.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := s.RecordAnswer(ctx, 0, 3); !errors.Is(err, session.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(s.Test().UserAnswers) != 0 {
		t.Error("expected no answers recorded")
	}
}

func TestRecordAnswer_SaveFailureRollsBack(t *testing.T) {
	s, fs := start(t, 2)
	fs.failErr = errors.New("disk full")

	if _, err := s.RecordAnswer(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error")
	}
	if s.Test().HasAnswer(0) {
		t.Error("expected answer to be rolled back")
	}
}

func TestNavigate(t *testing.T) {
	ctx := context.Background()
	s, _ := start(t, 3)
	s.RecordAnswer(ctx, 2, correctOf(s, 2))

	v, err := s.Navigate(2)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if v.Index != 2 || v.Validation == nil || !v.Validation.IsCorrect() {
		t.Errorf("view = %+v, want validated correct answer on 2", v)
	}

	if _, err := s.Navigate(3); !errors.Is(err, session.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := s.Navigate(-1); !errors.Is(err, session.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if s.View().Index != 2 {
		t.Error("expected position to be unchanged after rejected navigation")
	}
	if len(s.Test().UserAnswers) != 1 {
		t.Error("navigation must not touch answers")
	}
}

func TestNextPrev_Clamp(t *testing.T) {
	s, _ := start(t, 2)

	if v := s.Prev(); v.Index != 0 {
		t.Errorf("prev from first = %d", v.Index)
	}
	if v := s.Next(); v.Index != 1 {
		t.Errorf("next = %d", v.Index)
	}
	if v := s.Next(); v.Index != 1 {
		t.Errorf("next from last = %d", v.Index)
	}
}

func TestAnswer_UsesCurrentQuestion(t *testing.T) {
	ctx := context.Background()
	s, _ := start(t, 3)
	s.Navigate(1)

	if ok, err := s.Answer(ctx, wrongOf(s, 1)); !ok || err != nil {
		t.Fatalf("answer: ok=%v err=%v", ok, err)
	}

	v := s.View()
	if v.Validation == nil || v.Validation.IsCorrect() {
		t.Errorf("expected an incorrect validation, got %+v", v.Validation)
	}
	if v.Nav[1] != session.NavIncorrect || v.Nav[0] != session.NavUnanswered {
		t.Errorf("nav = %v", v.Nav)
	}
}

func TestComplete_Scenario(t *testing.T) {
	ctx := context.Background()
	s, fs := start(t, 5)

	for i := 0; i < 3; i++ {
		s.RecordAnswer(ctx, i, correctOf(s, i))
	}
	s.RecordAnswer(ctx, 3, wrongOf(s, 3))

	err := s.Complete(ctx, 90)
	var inc *session.IncompleteError
	if !errors.As(err, &inc) || inc.Unanswered != 1 {
		t.Fatalf("expected 1 unanswered, got %v", err)
	}
	if !errors.Is(err, session.ErrIncomplete) {
		t.Error("expected errors.Is(err, ErrIncomplete)")
	}
	if s.Test().Score != nil || s.Test().SaveAt != nil {
		t.Error("failed completion must not change the test")
	}

	s.RecordAnswer(ctx, 4, wrongOf(s, 4))
	if err := s.Complete(ctx, 120); err != nil {
		t.Fatalf("complete: %v", err)
	}

	saved := fs.saved[s.TestID()]
	if saved.Score == nil || *saved.Score != 60 {
		t.Errorf("score = %v, want 60", saved.Score)
	}
	if saved.TimeElapsed == nil || *saved.TimeElapsed != 120 {
		t.Errorf("time elapsed = %v, want 120", saved.TimeElapsed)
	}
	if saved.SaveAt == nil {
		t.Error("expected save time to be stamped")
	}
	if s.State() != session.StateCompleted {
		t.Errorf("state = %q", s.State())
	}
}

func TestPause_AllowedWhenIncomplete(t *testing.T) {
	ctx := context.Background()
	s, fs := start(t, 4)
	s.RecordAnswer(ctx, 0, 0)

	if err := s.Pause(ctx, 33); err != nil {
		t.Fatalf("pause: %v", err)
	}

	saved := fs.saved[s.TestID()]
	if saved.TimeElapsed == nil || *saved.TimeElapsed != 33 || saved.SaveAt == nil {
		t.Errorf("expected frozen time and save stamp, got %+v", saved)
	}
	if saved.Score != nil {
		t.Error("pause must not attach a score")
	}
	if s.State() != session.StatePaused {
		t.Errorf("state = %q", s.State())
	}

	s.RecordAnswer(ctx, 1, 0)
	if s.State() != session.StateInProgress {
		t.Errorf("expected resume on answer, state = %q", s.State())
	}
}

func TestRetest(t *testing.T) {
	ctx := context.Background()
	s, fs := start(t, 3)
	s.RecordAnswer(ctx, 0, 0)

	next, err := s.Retest(ctx)
	if err != nil {
		t.Fatalf("retest: %v", err)
	}
	if next.TestID() == s.TestID() {
		t.Fatal("expected a new test")
	}
	if len(next.Test().UserAnswers) != 0 || len(next.Test().Questions) != 3 {
		t.Errorf("unexpected retest content: %+v", next.Test())
	}
	if fs.current != next.TestID() {
		t.Error("expected retest to become current")
	}
	if len(fs.saved[s.TestID()].UserAnswers) != 1 {
		t.Error("expected original test to be untouched")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s, fs := start(t, 2)

	if err := s.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := fs.saved[s.TestID()]; ok {
		t.Error("expected test to be removed")
	}
	if s.State() != session.StateDeleted {
		t.Errorf("state = %q", s.State())
	}
	if _, err := s.RecordAnswer(ctx, 0, 0); !errors.Is(err, session.ErrDeleted) {
		t.Errorf("expected ErrDeleted, got %v", err)
	}
	if err := s.Delete(ctx); !errors.Is(err, session.ErrDeleted) {
		t.Errorf("expected ErrDeleted, got %v", err)
	}
}

func TestResult(t *testing.T) {
	ctx := context.Background()
	s, _ := start(t, 4)

	if _, err := s.Result(); !errors.Is(err, session.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}

	for i := 0; i < 3; i++ {
		s.RecordAnswer(ctx, i, correctOf(s, i))
	}
	s.RecordAnswer(ctx, 3, wrongOf(s, 3))
	s.Complete(ctx, 3725)

	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.Correct != 3 || res.Total != 4 || res.PctCorrect != 75 || res.PctIncorrect != 25 {
		t.Errorf("result = %+v", res)
	}
	if !res.Passed {
		t.Error("75% should pass")
	}
	if res.TimeSpent != "01:02:05" {
		t.Errorf("time spent = %q", res.TimeSpent)
	}
	if len(res.Cards) != 4 || res.Cards[3].Correct {
		t.Errorf("cards = %+v", res.Cards)
	}
}

func TestResult_PausedAfterAnsweringAll(t *testing.T) {
	ctx := context.Background()
	s, _ := start(t, 2)

	for i := 0; i < 2; i++ {
		s.RecordAnswer(ctx, i, correctOf(s, i))
	}
	if err := s.Pause(ctx, 10); err != nil {
		t.Fatalf("pause: %v", err)
	}

	_, err := s.Result()
	var incomplete *session.IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteError for a paused test, got %v", err)
	}
	if incomplete.Unanswered != 0 {
		t.Errorf("unanswered = %d, want 0", incomplete.Unanswered)
	}

	if err := s.Complete(ctx, 20); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := s.Result(); err != nil {
		t.Errorf("result after completion: %v", err)
	}
}

func TestOpen_CompletedTest(t *testing.T) {
	test := newTest(t, 1)
	score := 100
	test.Score = &score

	s := session.Open("p", test, newFakeStore())
	if s.State() != session.StateCompleted {
		t.Errorf("state = %q, want completed", s.State())
	}
}
