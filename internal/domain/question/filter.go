package question

// FilterByDatabase keeps the questions tagged with key plus the untagged
// ones, which apply to every database.
func FilterByDatabase(questions []Question, key string) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Database == "" || q.Database == key {
			out = append(out, q)
		}
	}
	return out
}

// FilterBySubtopic keeps the questions whose subtopic is in subtopics.
// An empty set selects nothing.
func FilterBySubtopic(questions []Question, subtopics map[string]struct{}) []Question {
	out := make([]Question, 0)
	if len(subtopics) == 0 {
		return out
	}
	for _, q := range questions {
		if _, ok := subtopics[q.Subtopic]; ok {
			out = append(out, q)
		}
	}
	return out
}

// SubtopicSet builds the set argument of FilterBySubtopic.
func SubtopicSet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}
