package answer_test

import (
	"testing"

	"github.com/uvquiz/backend/internal/domain/answer"
	"github.com/uvquiz/backend/internal/domain/question"
)

// fiveQuestions builds questions whose correct option sits at index i%3.
func fiveQuestions() []question.Question {
	qs := make([]question.Question, 5)
	for i := range qs {
		opts := []question.Option{{Text: "a"}, {Text: "b"}, {Text: "c"}}
		opts[i%3].Correct = true
		qs[i] = question.Question{ID: string(rune('A' + i)), Options: opts}
	}
	return qs
}

func TestScore_Scenario(t *testing.T) {
	qs := fiveQuestions()
	// 0,1,2 correct; 3 wrong; 4 unanswered
	answers := map[int]int{0: 0, 1: 1, 2: 2, 3: 2}

	correct, total := answer.Score(qs, answers)
	if correct != 3 || total != 5 {
		t.Errorf("Score = (%d, %d), want (3, 5)", correct, total)
	}

	pc, pi := answer.Percentages(qs, answers)
	if pc != 60 || pi != 40 {
		t.Errorf("Percentages = (%d, %d), want (60, 40)", pc, pi)
	}
}

func TestPercentages_EmptySet(t *testing.T) {
	pc, pi := answer.Percentages(nil, nil)
	if pc != 0 || pi != 100 {
		t.Errorf("Percentages = (%d, %d), want (0, 100)", pc, pi)
	}
}

func TestPercentages_Rounding(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"one third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"half up", 1, 8, 13}, // 12.5
		{"all", 4, 4, 100},
		{"none", 0, 4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			qs := make([]question.Question, tc.total)
			answers := make(map[int]int)
			for i := range qs {
				qs[i] = question.Question{Options: []question.Option{{Text: "x", Correct: true}, {Text: "y"}}}
				if i < tc.correct {
					answers[i] = 0
				} else {
					answers[i] = 1
				}
			}
			pc, pi := answer.Percentages(qs, answers)
			if pc != tc.want {
				t.Errorf("pctCorrect = %d, want %d", pc, tc.want)
			}
			if pc+pi != 100 {
				t.Errorf("percentages sum to %d", pc+pi)
			}
		})
	}
}

func TestBuildAnswerMap(t *testing.T) {
	qs := fiveQuestions()
	m := answer.BuildAnswerMap(qs, map[int]int{1: 1})

	if len(m) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(m))
	}
	if r := m[1]; !r.Answered || r.UserIndex != 1 || r.CorrectIndex != 1 || !r.IsCorrect() {
		t.Errorf("entry 1 = %+v, want answered correctly", r)
	}
	if r := m[0]; r.Answered || r.IsCorrect() {
		t.Errorf("entry 0 = %+v, want unanswered", r)
	}
}

func TestNoCorrectOption_NeverMatches(t *testing.T) {
	qs := []question.Question{
		{ID: "bad", Options: []question.Option{{Text: "a"}, {Text: "b"}}},
	}

	m := answer.BuildAnswerMap(qs, map[int]int{0: 0})
	if m[0].CorrectIndex != question.NoCorrectOption {
		t.Errorf("CorrectIndex = %d, want sentinel", m[0].CorrectIndex)
	}

	correct, total := answer.Score(qs, map[int]int{0: 0})
	if correct != 0 || total != 1 {
		t.Errorf("Score = (%d, %d), want (0, 1)", correct, total)
	}

	// A stray -1 answer must not match the sentinel either.
	correct, _ = answer.Score(qs, map[int]int{0: -1})
	if correct != 0 {
		t.Errorf("sentinel answer scored as correct")
	}
}

func TestScore_CorrectNeverExceedsAnswered(t *testing.T) {
	qs := fiveQuestions()
	answers := map[int]int{0: 0, 2: 2}

	correct, total := answer.Score(qs, answers)
	if correct > len(answers) || len(answers) > total {
		t.Errorf("invariant broken: correct=%d answered=%d total=%d", correct, len(answers), total)
	}
}

func TestPassed(t *testing.T) {
	if answer.Passed(74) {
		t.Error("74 should fail")
	}
	if !answer.Passed(75) {
		t.Error("75 should pass")
	}
}
