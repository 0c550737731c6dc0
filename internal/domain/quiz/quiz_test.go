package quiz_test

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/quiz"
	"github.com/uvquiz/backend/internal/domain/subject"
)

func createQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:       "q" + strconv.Itoa(i),
			Subtopic: "s",
			Text:     "Question " + strconv.Itoa(i),
			Options: []question.Option{
				{Text: "right " + strconv.Itoa(i), Correct: true},
				{Text: "wrong a"},
				{Text: "wrong b"},
				{Text: "wrong c"},
			},
		}
	}
	return qs
}

func params(n int) quiz.Params {
	return quiz.Params{DatabaseKey: "H", DesiredCount: n}
}

func TestNew_TakesDesiredCount(t *testing.T) {
	source := createQuestions(10)

	test, err := quiz.New(params(4), source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(test.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(test.Questions))
	}

	inSource := make(map[string]bool)
	for _, q := range source {
		inSource[q.ID] = true
	}
	seen := make(map[string]bool)
	for _, q := range test.Questions {
		if !inSource[q.ID] {
			t.Errorf("question %s not drawn from source", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}

	if len(test.UserAnswers) != 0 {
		t.Errorf("expected no answers, got %d", len(test.UserAnswers))
	}
	if test.ID == "" {
		t.Error("expected non-empty ID")
	}
	if test.Mode != quiz.ModeTest {
		t.Errorf("mode = %q, want TEST", test.Mode)
	}
	if test.Score != nil || test.SaveAt != nil || test.TimeElapsed != nil {
		t.Error("expected score, save time and elapsed time to be unset")
	}
}

func TestNew_ShufflesOptionsPreservingPairing(t *testing.T) {
	source := createQuestions(20)
	test, err := quiz.NewWithRand(params(20), source, rand.New(rand.NewPCG(7, 8)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved := false
	for _, q := range test.Questions {
		ci := q.CorrectIndex()
		if ci == question.NoCorrectOption {
			t.Fatalf("question %s lost its correct option", q.ID)
		}
		if q.Options[ci].Text != "right "+q.ID[1:] {
			t.Errorf("question %s: correct flag on %q", q.ID, q.Options[ci].Text)
		}
		if ci != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("expected option order to be shuffled for at least one question")
	}

	for _, q := range source {
		if !q.Options[0].Correct {
			t.Fatal("source options were mutated")
		}
	}
}

func TestNew_RandomizesAcrossTests(t *testing.T) {
	source := createQuestions(20)
	first, _ := quiz.New(params(20), source)

	for i := 0; i < 10; i++ {
		next, _ := quiz.New(params(20), source)
		if !sameOrder(first.Questions, next.Questions) {
			return
		}
	}
	t.Error("expected questions to be randomized across tests")
}

func TestNew_Boundaries(t *testing.T) {
	source := createQuestions(5)

	for _, n := range []int{0, -1, 6} {
		if _, err := quiz.New(params(n), source); !errors.Is(err, quiz.ErrQuestionCount) {
			t.Errorf("count %d: expected ErrQuestionCount, got %v", n, err)
		}
	}

	for _, n := range []int{1, 5} {
		if _, err := quiz.New(params(n), source); err != nil {
			t.Errorf("count %d: unexpected error %v", n, err)
		}
	}
}

func TestNew_EmptySource(t *testing.T) {
	for _, n := range []int{0, 1, 10} {
		if _, err := quiz.New(params(n), nil); !errors.Is(err, quiz.ErrEmptySelection) {
			t.Errorf("count %d: expected ErrEmptySelection, got %v", n, err)
		}
	}
}

func TestNew_Metadata(t *testing.T) {
	p := quiz.Params{
		DatabaseKey:  "A",
		UV:           &subject.UV{ID: "UV1", Name: "Air law"},
		DesiredCount: 1,
	}
	test, err := quiz.New(p, createQuestions(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if test.Database != quiz.DatabaseAirplane {
		t.Errorf("database = %q, want AVION", test.Database)
	}
	if test.UV != "UV1 - Air law" {
		t.Errorf("uv = %q", test.UV)
	}

	noUV, _ := quiz.New(params(1), createQuestions(1))
	if noUV.UV != "" {
		t.Errorf("expected empty uv label, got %q", noUV.UV)
	}
	if noUV.Database != quiz.DatabaseHelicopter {
		t.Errorf("database = %q, want HELICOPTERE", noUV.Database)
	}
}

func TestRetake(t *testing.T) {
	original, _ := quiz.New(params(6), createQuestions(10))
	original.UserAnswers[0] = 1
	score := 50
	original.Score = &score

	retake, err := original.Retake(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if retake.ID == original.ID {
		t.Error("expected a new ID")
	}
	if len(retake.Questions) != 6 {
		t.Errorf("expected 6 questions, got %d", len(retake.Questions))
	}
	if len(retake.UserAnswers) != 0 || retake.Score != nil {
		t.Error("expected retake to start without answers or score")
	}
	if len(original.UserAnswers) != 1 || original.Score == nil {
		t.Error("expected original to be untouched")
	}
	if retake.Params.DatabaseKey != "H" {
		t.Errorf("expected params to carry over, got %+v", retake.Params)
	}
}

func TestUnanswered(t *testing.T) {
	test, _ := quiz.New(params(3), createQuestions(3))
	if test.Unanswered() != 3 || test.IsComplete() {
		t.Fatal("expected 3 unanswered")
	}

	test.UserAnswers[0] = 0
	test.UserAnswers[1] = 0
	test.UserAnswers[2] = 0
	if !test.IsComplete() {
		t.Error("expected test to be complete")
	}
}

func TestDatabaseFromKey(t *testing.T) {
	if quiz.DatabaseFromKey("H") != quiz.DatabaseHelicopter {
		t.Error("H should map to HELICOPTERE")
	}
	for _, k := range []string{"A", "", "x"} {
		if quiz.DatabaseFromKey(k) != quiz.DatabaseAirplane {
			t.Errorf("%q should map to AVION", k)
		}
	}
}

func sameOrder(a, b []question.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
