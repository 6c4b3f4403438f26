// Package lead flattens a completed wizard session into an outbound lead and
// records it locally.
package lead

import (
	"time"

	"github.com/google/uuid"

	"caseflow/internal/wizard/model"
)

// Lead is the flattened submission payload: contact, case, jurisdiction,
// answers and valuation in one record.
type Lead struct {
	ID           uuid.UUID       `json:"id"`
	SessionID    uuid.UUID       `json:"sessionId"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	CaseID       string          `json:"caseId"`
	Jurisdiction string          `json:"jurisdiction,omitempty"`
	Language     model.Locale    `json:"language"`
	Answers      model.Answers   `json:"answers"`
	Valuation    model.Valuation `json:"valuation"`
	Device       string          `json:"device,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// New assembles a lead from a session's final state.
func New(sessionID uuid.UUID, state model.ApplicationState, valuation model.Valuation, device string) *Lead {
	return &Lead{
		ID:           uuid.New(),
		SessionID:    sessionID,
		Name:         state.Contact.Name,
		Email:        state.Contact.Email,
		Phone:        state.Contact.Phone,
		CaseID:       state.SelectedCase,
		Jurisdiction: state.SelectedJurisdiction,
		Language:     state.Language,
		Answers:      state.Answers.Clone(),
		Valuation:    valuation,
		Device:       device,
		CreatedAt:    time.Now(),
	}
}
