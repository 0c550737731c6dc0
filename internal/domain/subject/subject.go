package subject

import "github.com/uvquiz/backend/internal/domain/question"

// Subject is reference metadata for one subject of a UV.
// It is authoritative for counting: subtopics without questions still
// appear in the stats.
type Subject struct {
	Code      string     `json:"code" yaml:"code"`
	Name      string     `json:"name" yaml:"name"`
	Subtopics []Subtopic `json:"subtopics" yaml:"subtopics"`
}

type Subtopic struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Stats is the number of available questions for one subject.
type Stats struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Total     int             `json:"total"`
	Subtopics []SubtopicStats `json:"subtopics"`
}

type SubtopicStats struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountPerSubject aggregates questions into per-subject, per-subtopic
// counts. Output order follows metadata; questions whose subtopic is not
// listed in metadata are not counted.
func CountPerSubject(questions []question.Question, metadata []Subject) []Stats {
	perSubtopic := countPerSubtopic(questions)

	stats := make([]Stats, 0, len(metadata))
	for _, subj := range metadata {
		s := Stats{
			Code:      subj.Code,
			Name:      subj.Name,
			Subtopics: make([]SubtopicStats, 0, len(subj.Subtopics)),
		}
		for _, sub := range subj.Subtopics {
			count := perSubtopic[sub.Code]
			s.Subtopics = append(s.Subtopics, SubtopicStats{
				Code:  sub.Code,
				Name:  sub.Name,
				Count: count,
			})
			s.Total += count
		}
		stats = append(stats, s)
	}
	return stats
}

func countPerSubtopic(questions []question.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range questions {
		counts[q.Subtopic]++
	}
	return counts
}

// UV is a subject unit, the top-level partition of the question bank.
type UV struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Label renders the UV as "<id> - <name>".
func (u UV) Label() string {
	return u.ID + " - " + u.Name
}
