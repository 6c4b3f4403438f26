// Package model holds the canonical wizard state types. Everything the
// navigation engine snapshots, persists, or encodes into a deep link lives
// here so the codec, store, history and machine packages agree on one shape.
package model

// Step is the coarse-grained current page of the wizard. Steps are a closed
// set; dispatch on them with exhaustive switches, never raw strings.
type Step string

const (
	StepLanding            Step = "landing"
	StepCaseSelect         Step = "caseSelect"
	StepJurisdictionSelect Step = "jurisdictionSelect"
	StepQuestionnaire      Step = "questionnaire"
	StepContact            Step = "contact"
	StepResults            Step = "results"
)

// Legacy step names written by earlier snapshot schemas. "questions" resumes
// as the questionnaire; "estimate" predates the results split and is not a
// resumable point, so snapshots carrying it are discarded.
const (
	legacyStepQuestions Step = "questions"
	legacyStepEstimate  Step = "estimate"
)

// IsValid reports whether the step is a recognized canonical step.
func (s Step) IsValid() bool {
	switch s {
	case StepLanding, StepCaseSelect, StepJurisdictionSelect, StepQuestionnaire, StepContact, StepResults:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no forward transition exists from the step.
func (s Step) IsTerminal() bool {
	return s == StepResults
}

// IsResumable reports whether a persisted snapshot at this step is worth
// restoring. Landing and results are not resumable points.
func (s Step) IsResumable() bool {
	switch s {
	case StepCaseSelect, StepJurisdictionSelect, StepQuestionnaire, StepContact:
		return true
	default:
		return false
	}
}

// IsPrimaryWizard reports whether the step is part of the core select/answer
// flow. Overlay flags are force-closed when history navigation lands on one
// of these, so a stale modal cannot reappear while paging through questions.
func (s Step) IsPrimaryWizard() bool {
	switch s {
	case StepCaseSelect, StepJurisdictionSelect, StepQuestionnaire:
		return true
	default:
		return false
	}
}

// String returns the string representation of the step.
func (s Step) String() string {
	return string(s)
}

// TranslateStep maps a raw persisted step name, including legacy schema
// names, onto a canonical step. ok is false when the name is unknown or maps
// to a non-resumable legacy step.
func TranslateStep(raw string) (Step, bool) {
	s := Step(raw)
	if s.IsValid() {
		return s, true
	}
	switch s {
	case legacyStepQuestions:
		return StepQuestionnaire, true
	case legacyStepEstimate:
		return "", false
	default:
		return "", false
	}
}
