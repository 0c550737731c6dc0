package question

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// NoCorrectOption is the index reported for a question that has no option
// flagged as correct.
const NoCorrectOption = -1

// Option is one possible answer to a Question.
type Option struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Question is a multiple-choice question from a UV question bank.
// Database is empty when the question applies to every database.
type Question struct {
	ID          string   `json:"id" yaml:"id"`
	Subtopic    string   `json:"subtopic" yaml:"subtopic"`
	Database    string   `json:"database" yaml:"database"`
	Text        string   `json:"question" yaml:"question"`
	Options     []Option `json:"options" yaml:"options"`
	Explanation string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// CorrectIndex returns the position of the first option flagged correct,
// or NoCorrectOption.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt.Correct {
			return i
		}
	}
	return NoCorrectOption
}

// Validate reports malformed questions: no options, or not exactly one
// correct option.
func (q Question) Validate() error {
	if len(q.Options) == 0 {
		return fmt.Errorf("question %s: no options", q.ID)
	}
	correct := 0
	for _, opt := range q.Options {
		if opt.Correct {
			correct++
		}
	}
	switch {
	case correct == 0:
		return fmt.Errorf("question %s: %w", q.ID, ErrNoCorrectOption)
	case correct > 1:
		return fmt.Errorf("question %s: %d options marked correct", q.ID, correct)
	}
	return nil
}

// ErrNoCorrectOption marks a question whose options are all incorrect.
var ErrNoCorrectOption = errors.New("no option marked correct")

// ShuffleOptions returns a copy of q with its options in random order.
// Each option keeps its text and correct flag together. A nil r uses the
// global generator.
func ShuffleOptions(q Question, r *rand.Rand) Question {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	shuffle(r, len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	q.Options = opts
	return q
}

// Shuffle returns a new slice with the questions in random order.
func Shuffle(questions []Question, r *rand.Rand) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	shuffle(r, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func shuffle(r *rand.Rand, n int, swap func(i, j int)) {
	if r == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Shuffle(n, swap)
}
