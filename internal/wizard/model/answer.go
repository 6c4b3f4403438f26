package model

// AnswerUnknown is the sentinel value meaning "user declined to answer",
// distinct from the question simply being unanswered (absent from the map).
const AnswerUnknown = "unknown"

// Answers maps question IDs to answer values. Values are strings, booleans,
// or the AnswerUnknown sentinel; insertion order is irrelevant.
type Answers map[string]any

// Set records a concrete answer, overwriting any prior value including the
// unknown sentinel.
func (a Answers) Set(questionID string, value any) {
	a[questionID] = value
}

// IsUnknown reports whether the question currently carries the sentinel.
func (a Answers) IsUnknown(questionID string) bool {
	v, ok := a[questionID]
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && s == AnswerUnknown
}

// ToggleUnknown flips the sentinel for a question: if the sentinel is set the
// entry is removed (back to unanswered), otherwise the sentinel replaces
// whatever value was there. Returns true when the sentinel was set.
func (a Answers) ToggleUnknown(questionID string) bool {
	if a.IsUnknown(questionID) {
		delete(a, questionID)
		return false
	}
	a[questionID] = AnswerUnknown
	return true
}

// Clone returns an independent copy so history entries and persisted
// snapshots round-trip without sharing the live map.
func (a Answers) Clone() Answers {
	if a == nil {
		return nil
	}
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// CountUnknown returns how many answers carry the sentinel.
func (a Answers) CountUnknown() int {
	n := 0
	for k := range a {
		if a.IsUnknown(k) {
			n++
		}
	}
	return n
}
