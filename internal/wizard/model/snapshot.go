package model

import (
	"encoding/json"
	"time"

	"caseflow/pkg/platform/sentinel"
)

// MaxSnapshotAge is how long an in-progress snapshot stays resumable.
const MaxSnapshotAge = 24 * time.Hour

// PersistedSnapshot is the resumable subset of ApplicationState plus a write
// timestamp. Never written for landing or results.
type PersistedSnapshot struct {
	Step                 Step      `json:"step"`
	SelectedCase         string    `json:"selectedCase,omitempty"`
	SelectedJurisdiction string    `json:"selectedJurisdiction,omitempty"`
	QuestionIndex        int       `json:"questionIndex"`
	Language             Locale    `json:"language"`
	Answers              Answers   `json:"answers"`
	Contact              Contact   `json:"contact"`
	SavedAt              time.Time `json:"savedAt"`
}

// SnapshotOf extracts the resumable subset from a state, stamped now.
func SnapshotOf(state ApplicationState, now time.Time) PersistedSnapshot {
	return PersistedSnapshot{
		Step:                 state.Step,
		SelectedCase:         state.SelectedCase,
		SelectedJurisdiction: state.SelectedJurisdiction,
		QuestionIndex:        state.QuestionIndex,
		Language:             state.Language,
		Answers:              state.Answers.Clone(),
		Contact:              state.Contact,
		SavedAt:              now,
	}
}

// Expired reports whether the snapshot is past the resumable window.
func (p PersistedSnapshot) Expired(now time.Time) bool {
	return now.Sub(p.SavedAt) > MaxSnapshotAge
}

// persistedRecord mirrors PersistedSnapshot with a raw step so legacy step
// names survive unmarshaling long enough to be translated.
type persistedRecord struct {
	Step                 string    `json:"step"`
	SelectedCase         string    `json:"selectedCase,omitempty"`
	SelectedJurisdiction string    `json:"selectedJurisdiction,omitempty"`
	QuestionIndex        int       `json:"questionIndex"`
	Language             string    `json:"language"`
	Answers              Answers   `json:"answers"`
	Contact              Contact   `json:"contact"`
	SavedAt              time.Time `json:"savedAt"`
}

// EncodeSnapshot serializes a snapshot for storage.
func EncodeSnapshot(p PersistedSnapshot) ([]byte, error) {
	return json.Marshal(p)
}

// DecodeSnapshot parses stored bytes and applies the load-time rules: legacy
// step translation, resumable-step filtering, and expiry. Invalid or expired
// data returns sentinel.ErrExpired / ErrInvalidState so stores can clear the
// slot without surfacing an error to the caller.
func DecodeSnapshot(raw []byte, now time.Time) (*PersistedSnapshot, error) {
	var rec persistedRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, sentinel.ErrInvalidState
	}

	step, ok := TranslateStep(rec.Step)
	if !ok || !step.IsResumable() {
		return nil, sentinel.ErrInvalidState
	}

	snap := PersistedSnapshot{
		Step:                 step,
		SelectedCase:         rec.SelectedCase,
		SelectedJurisdiction: rec.SelectedJurisdiction,
		QuestionIndex:        rec.QuestionIndex,
		Language:             ParseLocale(rec.Language),
		Answers:              rec.Answers,
		Contact:              rec.Contact,
		SavedAt:              rec.SavedAt,
	}
	if snap.Answers == nil {
		snap.Answers = Answers{}
	}
	if snap.Expired(now) {
		return nil, sentinel.ErrExpired
	}
	return &snap, nil
}

// Valuation is the estimate produced by the valuation engine after contact
// submission. Treated as opaque by the navigation core.
type Valuation struct {
	Value     float64  `json:"value"`
	LowRange  float64  `json:"lowRange"`
	HighRange float64  `json:"highRange"`
	Factors   []string `json:"factors"`
	Warnings  []string `json:"warnings,omitempty"`
}
