package handler

import "caseflow/internal/wizard/service"

// CreateSessionRequest boots a session. Hash is the URL fragment the client
// arrived with, empty for a plain visit.
type CreateSessionRequest struct {
	ClientID string `json:"clientId"`
	Hash     string `json:"hash,omitempty"`
}

// SessionResponse pairs the boot snapshot with the session token every later
// call must present.
type SessionResponse struct {
	Token string `json:"token"`
	service.Snapshot
}

type SelectCaseRequest struct {
	CaseID string `json:"caseId"`
}

type SelectJurisdictionRequest struct {
	Name string `json:"name"`
}

type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"value"`
}

type ToggleUnknownRequest struct {
	QuestionID string `json:"questionId"`
}

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Consent bool   `json:"consent"`
}

type SetLanguageRequest struct {
	Language string `json:"language"`
}

type OpenHelpRequest struct {
	Topic string `json:"topic,omitempty"`
}

type ShowLegalRequest struct {
	Page string `json:"page"`
}

// ResizeRequest carries a content height measurement from the embedded frame.
type ResizeRequest struct {
	Height int `json:"height"`
}
