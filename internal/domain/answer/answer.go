// Package answer evaluates user answers against a question set.
//
// Answers are keyed by question index. Correctness is resolved from the
// options' correct flags, never from a fixed position, since option order
// is shuffled per test.
package answer

import (
	"math"

	"github.com/uvquiz/backend/internal/domain/question"
)

// PassMark is the percentage at or above which a test counts as passed.
const PassMark = 75

// Resolution holds the user's and the correct option index for one question.
// UserIndex is meaningless when Answered is false. CorrectIndex is
// question.NoCorrectOption for malformed questions.
type Resolution struct {
	UserIndex    int  `json:"user_index"`
	Answered     bool `json:"answered"`
	CorrectIndex int  `json:"correct_index"`
}

// IsCorrect reports whether the question was answered with its correct option.
func (r Resolution) IsCorrect() bool {
	return r.Answered && r.CorrectIndex != question.NoCorrectOption && r.UserIndex == r.CorrectIndex
}

// Indices resolves a single question against the answer map.
func Indices(q question.Question, userAnswers map[int]int, idx int) Resolution {
	user, ok := userAnswers[idx]
	return Resolution{
		UserIndex:    user,
		Answered:     ok,
		CorrectIndex: q.CorrectIndex(),
	}
}

// BuildAnswerMap resolves every question index.
func BuildAnswerMap(questions []question.Question, userAnswers map[int]int) map[int]Resolution {
	m := make(map[int]Resolution, len(questions))
	for i, q := range questions {
		m[i] = Indices(q, userAnswers, i)
	}
	return m
}

// Score returns the number of correctly answered questions and the total.
func Score(questions []question.Question, userAnswers map[int]int) (correct, total int) {
	for _, r := range BuildAnswerMap(questions, userAnswers) {
		if r.IsCorrect() {
			correct++
		}
	}
	return correct, len(questions)
}

// Percentages returns the rounded percentage of correct answers and its
// complement. An empty question set yields (0, 100).
func Percentages(questions []question.Question, userAnswers map[int]int) (pctCorrect, pctIncorrect int) {
	correct, total := Score(questions, userAnswers)
	if total == 0 {
		return 0, 100
	}
	pctCorrect = int(math.Floor(float64(correct)*100/float64(total) + 0.5))
	return pctCorrect, 100 - pctCorrect
}

// Passed reports whether a percentage reaches PassMark.
func Passed(pct int) bool {
	return pct >= PassMark
}
