// Package question supplies the ordered question list for each case type.
// The wizard treats it as an external collaborator: loads may be slow or
// fail, and failures are soft.
package question

import (
	"context"

	"caseflow/internal/wizard/model"
	"caseflow/pkg/platform/sentinel"
)

// Provider returns the ordered question list for a case type.
type Provider interface {
	Questions(ctx context.Context, caseID string) ([]model.Question, error)
}

// Catalog is the built-in provider backed by a static taxonomy.
type Catalog struct {
	cases map[string][]model.Question
}

// NewCatalog returns the default case taxonomy.
func NewCatalog() *Catalog {
	return &Catalog{cases: defaultCases()}
}

// Questions returns a copy of the case's list, or sentinel.ErrNotFound for an
// unknown case type.
func (c *Catalog) Questions(ctx context.Context, caseID string) ([]model.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, ok := c.cases[caseID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := make([]model.Question, len(list))
	copy(out, list)
	return out, nil
}

// CaseIDs lists the known case types.
func (c *Catalog) CaseIDs() []string {
	ids := make([]string, 0, len(c.cases))
	for id := range c.cases {
		ids = append(ids, id)
	}
	return ids
}

func defaultCases() map[string][]model.Question {
	return map[string][]model.Question{
		"motor": {
			{ID: "collision_type", Type: model.QuestionChoice, Text: "What kind of collision was it?",
				Options: []string{"rear-ended", "head-on", "side-impact", "single-vehicle"}},
			{ID: "at_fault", Type: model.QuestionYesNo, Text: "Were you found at fault?"},
			{ID: "injured", Type: model.QuestionYesNo, Text: "Were you injured?"},
			{ID: "weeks_off_work", Type: model.QuestionNumber, Text: "How many weeks of work did you miss?",
				Min: 0, Max: 104},
			{ID: "vehicle_totaled", Type: model.QuestionYesNo, Text: "Was your vehicle totaled?"},
		},
		"medical": {
			{ID: "treatment_type", Type: model.QuestionChoice, Text: "What kind of treatment went wrong?",
				Options: []string{"surgery", "medication", "diagnosis", "birth"}},
			{ID: "permanent_harm", Type: model.QuestionYesNo, Text: "Did the harm leave lasting effects?"},
			{ID: "second_opinion", Type: model.QuestionYesNo, Text: "Has another doctor reviewed what happened?"},
			{ID: "months_since", Type: model.QuestionNumber, Text: "How many months ago did this happen?",
				Min: 0, Max: 120},
		},
		"employment": {
			{ID: "issue_type", Type: model.QuestionChoice, Text: "What happened at work?",
				Options: []string{"wrongful-termination", "discrimination", "unpaid-wages", "harassment"}},
			{ID: "still_employed", Type: model.QuestionYesNo, Text: "Do you still work there?"},
			{ID: "reported_internally", Type: model.QuestionYesNo, Text: "Did you report it internally?"},
			{ID: "years_employed", Type: model.QuestionNumber, Text: "How many years did you work there?",
				Min: 0, Max: 60},
			{ID: "details", Type: model.QuestionText, Text: "Briefly describe what happened."},
		},
	}
}
