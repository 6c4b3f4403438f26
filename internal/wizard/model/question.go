package model

// QuestionType classifies how a question is asked and answered.
type QuestionType string

const (
	QuestionChoice QuestionType = "choice"
	QuestionYesNo  QuestionType = "yesno"
	QuestionNumber QuestionType = "number"
	QuestionText   QuestionType = "text"
)

// IsValid reports whether the type is a recognized question type.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionChoice, QuestionYesNo, QuestionNumber, QuestionText:
		return true
	default:
		return false
	}
}

// Question is one entry of a case type's ordered question list.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Text    string       `json:"text"`
	Options []string     `json:"options,omitempty"`
	Min     int          `json:"min,omitempty"`
	Max     int          `json:"max,omitempty"`
}
