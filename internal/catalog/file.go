package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uvquiz/backend/internal/domain/question"
	"github.com/uvquiz/backend/internal/domain/subject"
)

// fileUV is one UV entry of a YAML catalog file:
//
//	uvs:
//	  - id: "050"
//	    name: Meteorology
//	    subjects: [...]
//	    questions: [...]
type fileUV struct {
	ID        string              `yaml:"id"`
	Name      string              `yaml:"name"`
	Subjects  []subject.Subject   `yaml:"subjects"`
	Questions []question.Question `yaml:"questions"`
}

type fileCatalog struct {
	UVs []fileUV `yaml:"uvs"`
}

// FileSource serves a catalog loaded once from a YAML file, for offline use.
type FileSource struct {
	uvs  []subject.UV
	byID map[string]fileUV
}

var _ Source = (*FileSource)(nil)

func LoadFile(path string) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return ParseYAML(raw)
}

func ParseYAML(raw []byte) (*FileSource, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}

	src := &FileSource{byID: make(map[string]fileUV, len(fc.UVs))}
	for _, uv := range fc.UVs {
		if uv.ID == "" {
			return nil, fmt.Errorf("catalog: uv without id")
		}
		if _, dup := src.byID[uv.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate uv %q", uv.ID)
		}
		src.byID[uv.ID] = uv
		src.uvs = append(src.uvs, subject.UV{ID: uv.ID, Name: uv.Name})
	}
	return src, nil
}

func (s *FileSource) UVs(context.Context) ([]subject.UV, error) {
	out := make([]subject.UV, len(s.uvs))
	copy(out, s.uvs)
	return out, nil
}

func (s *FileSource) Questions(_ context.Context, uv string) ([]question.Question, error) {
	entry, ok := s.byID[uv]
	if !ok {
		return nil, &FetchError{Resource: "questions of " + uv, Status: 404}
	}
	out := make([]question.Question, len(entry.Questions))
	copy(out, entry.Questions)
	return out, nil
}

func (s *FileSource) Subjects(_ context.Context, uv string) ([]subject.Subject, error) {
	entry, ok := s.byID[uv]
	if !ok {
		return nil, &FetchError{Resource: "metadata of " + uv, Status: 404}
	}
	out := make([]subject.Subject, len(entry.Subjects))
	copy(out, entry.Subjects)
	return out, nil
}
