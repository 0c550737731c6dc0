package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/id"
)

var (
	ErrEmptySelection = errors.New("the question selection contains no question")
	ErrQuestionCount  = errors.New("invalid number of questions")
)

// Test is one quiz attempt: a fixed, shuffled snapshot of questions and
// the answers recorded so far.
type Test struct {
	ID          string              `json:"id"`
	Mode        Mode                `json:"mode"`
	Database    Database            `json:"database"`
	UV          string              `json:"uv"`
	CreatedAt   time.Time           `json:"created_at"`
	Questions   []question.Question `json:"questions"`
	UserAnswers map[int]int         `json:"user_answers"`
	TimeElapsed *int                `json:"time_elapsed,omitempty"` // seconds
	SaveAt      *time.Time          `json:"save_at,omitempty"`
	Score       *int                `json:"score,omitempty"` // percentage, set on completion
	Params      Params              `json:"params"`
}

// New builds a test from the filtered source questions.
func New(params Params, source []question.Question) (*Test, error) {
	return NewWithRand(params, source, nil)
}

// NewWithRand builds a test using r for shuffling (nil uses the global
// generator). Question order and each question's option order are shuffled
// independently, then the first DesiredCount questions are kept.
func NewWithRand(params Params, source []question.Question, r *rand.Rand) (*Test, error) {
	if len(source) == 0 {
		return nil, ErrEmptySelection
	}
	if params.DesiredCount < 1 || params.DesiredCount > len(source) {
		return nil, fmt.Errorf("%w: enter a number between 1 and %d", ErrQuestionCount, len(source))
	}

	shuffled := question.Shuffle(source, r)[:params.DesiredCount]
	for i := range shuffled {
		shuffled[i] = question.ShuffleOptions(shuffled[i], r)
	}

	if params.Mode == "" {
		params.Mode = ModeTest
	}

	uv := ""
	if params.UV != nil {
		uv = params.UV.Label()
	}

	return &Test{
		ID:          id.GenerateID(),
		Mode:        params.Mode,
		Database:    DatabaseFromKey(params.DatabaseKey),
		UV:          uv,
		CreatedAt:   time.Now().UTC(),
		Questions:   shuffled,
		UserAnswers: make(map[int]int),
		Params:      params,
	}, nil
}

// Retake builds a fresh test over the same questions and parameters.
// The receiver is left untouched.
func (t *Test) Retake(r *rand.Rand) (*Test, error) {
	params := t.Params
	params.DesiredCount = len(t.Questions)
	return NewWithRand(params, t.Questions, r)
}

// HasAnswer reports whether question idx has been answered.
func (t *Test) HasAnswer(idx int) bool {
	_, ok := t.UserAnswers[idx]
	return ok
}

// Unanswered returns how many questions have no answer yet.
func (t *Test) Unanswered() int {
	return len(t.Questions) - len(t.UserAnswers)
}

// IsComplete reports whether every question has been answered.
func (t *Test) IsComplete() bool {
	return t.Unanswered() == 0
}

// Elapsed returns the frozen elapsed time in seconds, zero if never saved.
func (t *Test) Elapsed() int {
	if t.TimeElapsed == nil {
		return 0
	}
	return *t.TimeElapsed
}
