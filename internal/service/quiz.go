// internal/service/quiz.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/uvquiz/backend/internal/catalog"
	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/quiz"
	"github.com/uvquiz/backend/internal/domain/subject"
	"github.com/uvquiz/backend/internal/session"
	"github.com/uvquiz/backend/internal/store"
)

// Catalog is the read side of the question catalog. *catalog.Loader
// satisfies it.
type Catalog interface {
	UVs(ctx context.Context) []subject.UV
	FindUV(ctx context.Context, id string) *subject.UV
	Bank(ctx context.Context, uv string) catalog.Bank
}

// Selection is the filter state chosen before a test exists.
// A nil Subtopics means no subtopic filter; an empty, non-nil slice means
// nothing is selected and yields no questions.
type Selection struct {
	UV          string
	DatabaseKey string
	Subtopics   []string
}

// QuizService wires the catalog, the test store and the session state
// machine. It keeps one open session per profile instead of package-level
// globals, so profiles never share state.
type QuizService struct {
	catalog Catalog
	tests   *store.TestRepository
	notes   *store.NoteRepository
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session.Session // profile → open session
}

func NewQuizService(c Catalog, tests *store.TestRepository, notes *store.NoteRepository, logger *slog.Logger) *QuizService {
	return &QuizService{
		catalog:  c,
		tests:    tests,
		notes:    notes,
		logger:   logger,
		sessions: make(map[string]*session.Session),
	}
}

// ── Setup ───────────────────────────────────────────────────────────────────

func (s *QuizService) UVs(ctx context.Context) []subject.UV {
	return s.catalog.UVs(ctx)
}

// SubjectStats counts the questions available per subject and subtopic
// for a UV and database.
func (s *QuizService) SubjectStats(ctx context.Context, uv, databaseKey string) []subject.Stats {
	bank := s.catalog.Bank(ctx, uv)
	filtered := question.FilterByDatabase(bank.Questions, databaseKey)
	return subject.CountPerSubject(filtered, bank.Subjects)
}

// Available returns the questions matching a selection.
func (s *QuizService) Available(ctx context.Context, sel Selection) []question.Question {
	bank := s.catalog.Bank(ctx, sel.UV)
	qs := question.FilterByDatabase(bank.Questions, sel.DatabaseKey)
	if sel.Subtopics != nil {
		qs = question.FilterBySubtopic(qs, question.SubtopicSet(sel.Subtopics...))
	}
	return qs
}

// CreateTest samples a new test from the selection, persists it, makes it
// the current test and opens a session on it.
func (s *QuizService) CreateTest(ctx context.Context, profile string, sel Selection, desiredCount int) (*session.Session, error) {
	source := s.Available(ctx, sel)

	params := quiz.Params{
		Mode:         quiz.ModeTest,
		DatabaseKey:  sel.DatabaseKey,
		UV:           s.catalog.FindUV(ctx, sel.UV),
		Subtopics:    sel.Subtopics,
		DesiredCount: desiredCount,
	}

	t, err := quiz.New(params, source)
	if err != nil {
		return nil, err
	}

	sess, err := session.Start(ctx, profile, t, s.tests)
	if err != nil {
		return nil, err
	}
	s.register(profile, sess)

	s.logger.Info("test created",
		"profile", profile,
		"test_id", t.ID,
		"uv", sel.UV,
		"questions", len(t.Questions),
	)
	return sess, nil
}

// ── Sessions ────────────────────────────────────────────────────────────────

func (s *QuizService) register(profile string, sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[profile] = sess
}

func (s *QuizService) unregister(profile, testID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[profile]; ok && sess.TestID() == testID {
		delete(s.sessions, profile)
	}
}

// Current returns the session of the profile's current test. A missing
// pointer yields store.ErrNoCurrentTest and a dangling one store.ErrNotFound.
func (s *QuizService) Current(ctx context.Context, profile string) (*session.Session, error) {
	id, err := s.tests.CurrentID(ctx, profile)
	if err != nil {
		return nil, err
	}

	if sess := s.lookup(profile, id); sess != nil {
		return sess, nil
	}

	t, err := s.tests.Current(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent request may have opened the same test meanwhile.
	if sess, ok := s.sessions[profile]; ok && live(sess, id) {
		return sess, nil
	}
	sess := session.Open(profile, t, s.tests)
	s.sessions[profile] = sess
	return sess, nil
}

// lookup returns the registered session of profile if it is still open on
// test id.
func (s *QuizService) lookup(profile, id string) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[profile]; ok && live(sess, id) {
		return sess
	}
	return nil
}

func live(sess *session.Session, id string) bool {
	return sess.TestID() == id && sess.State() != session.StateDeleted
}

// OpenTest makes a saved test current and opens a session on it.
func (s *QuizService) OpenTest(ctx context.Context, profile, id string) (*session.Session, error) {
	t, err := s.tests.Get(ctx, profile, id)
	if err != nil {
		return nil, err
	}
	if err := s.tests.SetCurrent(ctx, profile, id); err != nil {
		return nil, fmt.Errorf("set current test: %w", err)
	}
	sess := session.Open(profile, t, s.tests)
	s.register(profile, sess)
	return sess, nil
}

// Retest starts a new test from a saved test's parameters. The original
// test is left untouched.
func (s *QuizService) Retest(ctx context.Context, profile, id string) (*session.Session, error) {
	t, err := s.tests.Get(ctx, profile, id)
	if err != nil {
		return nil, err
	}
	next, err := session.Open(profile, t, s.tests).Retest(ctx)
	if err != nil {
		return nil, err
	}
	s.register(profile, next)

	s.logger.Info("test retaken", "profile", profile, "from", id, "test_id", next.TestID())
	return next, nil
}

// DeleteTest removes a saved test. Confirmation is the caller's concern.
func (s *QuizService) DeleteTest(ctx context.Context, profile, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[profile]
	s.mu.Unlock()

	if ok && sess.TestID() == id {
		err := sess.Delete(ctx)
		if errors.Is(err, session.ErrDeleted) {
			err = store.ErrNotFound
		}
		s.unregister(profile, id)
		return err
	}
	return s.tests.Delete(ctx, profile, id)
}

// ── History ─────────────────────────────────────────────────────────────────

func (s *QuizService) ListTests(ctx context.Context, profile string) ([]*quiz.Test, error) {
	return s.tests.List(ctx, profile)
}

func (s *QuizService) GetTest(ctx context.Context, profile, id string) (*quiz.Test, error) {
	return s.tests.Get(ctx, profile, id)
}

// Result is a scored test with the profile's notes for its questions.
type Result struct {
	session.Result
	Notes map[string]string `json:"notes"`
}

// Result reviews a saved test. Incomplete tests have no result.
func (s *QuizService) Result(ctx context.Context, profile, id string) (Result, error) {
	t, err := s.tests.Get(ctx, profile, id)
	if err != nil {
		return Result{}, err
	}
	res, err := session.BuildResult(t)
	if err != nil {
		return Result{}, err
	}

	all, err := s.notes.All(ctx, profile)
	if err != nil {
		return Result{}, err
	}
	notes := make(map[string]string)
	for _, q := range t.Questions {
		if n, ok := all[q.ID]; ok {
			notes[q.ID] = n
		}
	}
	return Result{Result: res, Notes: notes}, nil
}
