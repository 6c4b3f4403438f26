package machine

import (
	"caseflow/internal/wizard/deeplink"
	"caseflow/internal/wizard/model"
)

// BootSource records which initializer produced the boot state.
type BootSource int

const (
	BootDefault BootSource = iota
	BootDeepLink
	BootSnapshot
	BootRouteCase
)

// Boot initializes the machine with the three-way priority rule: a decodable
// deep link wins, then a resumable snapshot, then the landing default. The
// caller passes nil for initializers it skipped; when the hash decodes, the
// store must not even have been consulted.
//
// Boot seeds the history stack by replacing (not pushing): the document the
// user arrived on is already the current entry.
func (m *Machine) Boot(link *deeplink.Link, snapshot *model.PersistedSnapshot) ([]Effect, BootSource) {
	if link != nil {
		return m.bootFromLink(link), BootDeepLink
	}
	if snapshot != nil {
		return m.bootFromSnapshot(snapshot), BootSnapshot
	}
	m.state = model.NewApplicationState()
	return []Effect{replace()}, BootDefault
}

// BootWithCase is the route-parameter initializer used when the path prefix
// suppresses hash deep-linking: the case ID arrives as a route parameter and
// the session starts at jurisdiction selection, mutually exclusive with hash
// parsing.
func (m *Machine) BootWithCase(caseID string) ([]Effect, BootSource) {
	if caseID == "" {
		effects, _ := m.Boot(nil, nil)
		return effects, BootDefault
	}

	m.state = model.NewApplicationState()
	m.state.SelectedCase = caseID
	m.state.Step = model.StepJurisdictionSelect

	return []Effect{loadQuestions(caseID), replace()}, BootRouteCase
}

func (m *Machine) bootFromLink(link *deeplink.Link) []Effect {
	m.state = model.NewApplicationState()
	m.state.Step = link.Step
	m.state.SelectedCase = link.SelectedCase
	m.state.SelectedJurisdiction = link.SelectedJurisdiction
	m.state.QuestionIndex = link.QuestionIndex
	m.state.Language = link.Language
	m.overlay.LegalPage = link.LegalPage

	effects := []Effect{replace()}
	if link.SelectedCase != "" {
		// The cursor from the link is validated against the list once it
		// arrives; out-of-range falls back to the first question.
		effects = append([]Effect{loadQuestions(link.SelectedCase)}, effects...)
	}
	return effects
}

func (m *Machine) bootFromSnapshot(snapshot *model.PersistedSnapshot) []Effect {
	m.state = model.NewApplicationState()
	m.state.Step = snapshot.Step
	m.state.SelectedCase = snapshot.SelectedCase
	m.state.SelectedJurisdiction = snapshot.SelectedJurisdiction
	m.state.QuestionIndex = snapshot.QuestionIndex
	m.state.Language = snapshot.Language
	m.state.Answers = snapshot.Answers.Clone()
	if m.state.Answers == nil {
		m.state.Answers = model.Answers{}
	}
	m.state.Contact = snapshot.Contact

	effects := []Effect{replace()}
	if snapshot.SelectedCase != "" {
		effects = append([]Effect{loadQuestions(snapshot.SelectedCase)}, effects...)
	}
	return effects
}
