package model

// ApplicationState is the canonical snapshot unit. The machine owns the only
// live copy; everything handed to the history stack or the persistence store
// is a clone.
type ApplicationState struct {
	Step                 Step    `json:"step"`
	SelectedCase         string  `json:"selectedCase,omitempty"`
	SelectedJurisdiction string  `json:"selectedJurisdiction,omitempty"`
	QuestionIndex        int     `json:"questionIndex"`
	Answers              Answers `json:"answers"`
	Language             Locale  `json:"language"`
	Contact              Contact `json:"contact"`
}

// NewApplicationState returns the default boot state.
func NewApplicationState() ApplicationState {
	return ApplicationState{
		Step:     StepLanding,
		Answers:  Answers{},
		Language: DefaultLocale,
	}
}

// Clone returns a deep copy; answers must not alias the live map.
func (s ApplicationState) Clone() ApplicationState {
	out := s
	out.Answers = s.Answers.Clone()
	return out
}

// LegalPage identifies a static legal page shown as an overlay.
type LegalPage string

const (
	LegalNone    LegalPage = ""
	LegalPrivacy LegalPage = "privacy"
	LegalTerms   LegalPage = "terms"
)

// OverlayState is secondary state orthogonal to Step. It rides along in
// history entries but never advances the step on its own.
type OverlayState struct {
	HelpOpen        bool   `json:"helpOpen"`
	HelpTopic       string `json:"helpTopic,omitempty"`
	MissingDataOpen bool   `json:"missingDataOpen"`
	// MissingDataWarned is the one-shot latch: once the missing-data warning
	// has been shown it never fires again for the session, no matter how many
	// questions are toggled to unknown.
	MissingDataWarned bool      `json:"missingDataWarned"`
	LegalPage         LegalPage `json:"legalPage,omitempty"`
}

// CloseAll clears every visible overlay. The shown-once latch survives; it
// records history, not visibility.
func (o *OverlayState) CloseAll() {
	o.HelpOpen = false
	o.HelpTopic = ""
	o.MissingDataOpen = false
	o.LegalPage = LegalNone
}

// AnyOpen reports whether any overlay is currently visible.
func (o OverlayState) AnyOpen() bool {
	return o.HelpOpen || o.MissingDataOpen || o.LegalPage != LegalNone
}

// HistoryEntry is one unit on the navigable history stack: a full state
// snapshot plus overlay flags and the URL hash derived from them. Entries
// must restore without information loss, so State is always a deep clone.
type HistoryEntry struct {
	State   ApplicationState `json:"state"`
	Overlay OverlayState     `json:"overlay"`
	Hash    string           `json:"hash"`
}
