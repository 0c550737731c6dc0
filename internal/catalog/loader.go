package catalog

import (
	"context"
	"log/slog"

	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/subject"
	"github.com/uvquiz/backend/internal/worker"
)

// Bank is everything needed to set up a test for one UV.
type Bank struct {
	Questions []question.Question
	Subjects  []subject.Subject
}

type fetched struct {
	questions []question.Question
	subjects  []subject.Subject
}

// Loader wraps a Source and turns every fetch failure into absent data:
// errors are logged and an empty result is returned, so callers filter and
// count over empty collections instead of failing.
type Loader struct {
	src    Source
	pool   *worker.Pool[fetched]
	logger *slog.Logger
}

func NewLoader(src Source, workers int, logger *slog.Logger) *Loader {
	return &Loader{
		src:    src,
		pool:   worker.NewPool[fetched](workers, workers*2),
		logger: logger,
	}
}

// Close stops the fetch workers.
func (l *Loader) Close() {
	l.pool.Close()
}

func (l *Loader) UVs(ctx context.Context) []subject.UV {
	uvs, err := l.src.UVs(ctx)
	if err != nil {
		l.logger.Error("error fetching uv list", "error", err)
		return []subject.UV{}
	}
	return uvs
}

// FindUV returns the UV with the given id, or nil if the list is
// unavailable or does not contain it.
func (l *Loader) FindUV(ctx context.Context, id string) *subject.UV {
	for _, uv := range l.UVs(ctx) {
		if uv.ID == id {
			return &uv
		}
	}
	return nil
}

// Bank fetches the question bank and the subject metadata of uv in
// parallel. Either half may come back empty.
func (l *Loader) Bank(ctx context.Context, uv string) Bank {
	questionsCh := l.pool.Submit(ctx, "questions:"+uv, func(ctx context.Context) (fetched, error) {
		qs, err := l.src.Questions(ctx, uv)
		return fetched{questions: qs}, err
	})
	subjectsCh := l.pool.Submit(ctx, "subjects:"+uv, func(ctx context.Context) (fetched, error) {
		ss, err := l.src.Subjects(ctx, uv)
		return fetched{subjects: ss}, err
	})

	bank := Bank{
		Questions: []question.Question{},
		Subjects:  []subject.Subject{},
	}

	if res := <-questionsCh; res.Err != nil {
		l.logger.Error("error fetching questions", "uv", uv, "error", res.Err)
	} else if res.Output.questions != nil {
		bank.Questions = res.Output.questions
	}

	if res := <-subjectsCh; res.Err != nil {
		l.logger.Error("error fetching uv metadata", "uv", uv, "error", res.Err)
	} else if res.Output.subjects != nil {
		bank.Subjects = res.Output.subjects
	}

	for _, q := range bank.Questions {
		if err := q.Validate(); err != nil {
			l.logger.Warn("malformed question", "uv", uv, "error", err)
		}
	}
	return bank
}
