package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/subject"
)

// HTTPSource reads the catalog from the REST backend.
type HTTPSource struct {
	baseURL string       // e.g. "http://localhost:3000"
	client  *http.Client // reused across calls
}

// Compile-time check: *HTTPSource satisfies the Source interface.
var _ Source = (*HTTPSource)(nil)

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) UVs(ctx context.Context) ([]subject.UV, error) {
	var uvs []subject.UV
	if err := s.get(ctx, "/api/uvs", "uv list", &uvs); err != nil {
		return nil, err
	}
	return uvs, nil
}

func (s *HTTPSource) Questions(ctx context.Context, uv string) ([]question.Question, error) {
	var qs []question.Question
	if err := s.get(ctx, "/api/questions/"+url.PathEscape(uv), "questions of "+uv, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *HTTPSource) Subjects(ctx context.Context, uv string) ([]subject.Subject, error) {
	var subjects []subject.Subject
	if err := s.get(ctx, "/api/subjects/"+url.PathEscape(uv), "metadata of "+uv, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *HTTPSource) get(ctx context.Context, path, resource string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return &FetchError{Resource: resource, Wrapped: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &FetchError{Resource: resource, Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Resource: resource, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Resource: resource, Wrapped: err}
	}
	return nil
}
