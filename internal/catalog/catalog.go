// Package catalog fetches the read-only reference data a quiz is built
// from: the UV list, each UV's question bank and its subject metadata.
package catalog

import (
	"context"
	"fmt"

	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/subject"
)

// Source is a catalog backend.
type Source interface {
	UVs(ctx context.Context) ([]subject.UV, error)
	Questions(ctx context.Context, uv string) ([]question.Question, error)
	Subjects(ctx context.Context, uv string) ([]subject.Subject, error)
}

// FetchError is returned when the catalog backend cannot be reached or
// answers with something unusable.
type FetchError struct {
	Resource string
	Status   int // HTTP status, 0 when no response was received
	Wrapped  error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("fetch %s: HTTP status %d", e.Resource, e.Status)
	case e.Wrapped != nil:
		return fmt.Sprintf("fetch %s: %v", e.Resource, e.Wrapped)
	}
	return fmt.Sprintf("fetch %s failed", e.Resource)
}

func (e *FetchError) Unwrap() error {
	return e.Wrapped
}
