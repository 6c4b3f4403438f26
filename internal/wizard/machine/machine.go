// Package machine implements the wizard's navigation state machine.
//
// The machine owns the canonical step and its sub-state. Every transition is
// two-phase: commit the next in-memory state, then return the queued effects
// (history push/replace, snapshot save/clear, question load) for the caller
// to run in order. Pop-driven restorations run in the Restoring mode, which
// suppresses exactly one push/save pair; ordering is a property of the
// returned effects, never of a timer.
//
// The machine is not safe for concurrent use; the owning session serializes
// access, mirroring the single event queue it models.
package machine

import (
	"errors"

	"caseflow/internal/wizard/deeplink"
	"caseflow/internal/wizard/model"
	dErrors "caseflow/pkg/domain-errors"
)

// Mode distinguishes ordinary transitions from pop-driven restorations.
type Mode int

const (
	// ModeNormal: transitions emit their push/save effects.
	ModeNormal Mode = iota

	// ModeRestoring: the state being applied already has its entry on the
	// stack, so push/save effects are swallowed. The mode closes as soon as
	// the restoration's updates are committed.
	ModeRestoring
)

// Retry-oriented messages for collaborator failures. Step-scoped, never fatal.
const (
	msgQuestionsUnavailable = "We could not load the questions for this case. Please try again."
	msgValuationUnavailable = "We could not compute your estimate. Please try again."
	msgLeadUnavailable      = "We could not send your request. Please try again or contact us directly."
)

// Machine is the navigation state machine for one wizard session.
type Machine struct {
	mode      Mode
	state     model.ApplicationState
	overlay   model.OverlayState
	questions []model.Question
	valuation *model.Valuation

	// lastError is the step-scoped, user-facing message left by a rejected
	// guard or a failed collaborator. Cleared by the next accepted transition.
	lastError string

	// suppressed counts pushes swallowed by pop restorations, for the
	// history invariant checks and metrics.
	suppressed int
}

// New returns a machine at the default landing state.
func New() *Machine {
	return &Machine{state: model.NewApplicationState()}
}

// State returns a deep copy of the canonical state.
func (m *Machine) State() model.ApplicationState { return m.state.Clone() }

// Overlay returns the current overlay flags.
func (m *Machine) Overlay() model.OverlayState { return m.overlay }

// Questions returns the loaded question list for the selected case.
func (m *Machine) Questions() []model.Question { return m.questions }

// Valuation returns the stored estimate, nil before submission.
func (m *Machine) Valuation() *model.Valuation { return m.valuation }

// Err returns the step-scoped user-facing error message, if any.
func (m *Machine) Err() string { return m.lastError }

// Mode returns the current transition mode.
func (m *Machine) Mode() Mode { return m.mode }

// SuppressedPushes returns how many pushes restorations have swallowed.
func (m *Machine) SuppressedPushes() int { return m.suppressed }

// Entry builds the history entry for the committed state. Always a deep
// clone so the entry restores without information loss.
func (m *Machine) Entry() model.HistoryEntry {
	return model.HistoryEntry{
		State:   m.state.Clone(),
		Overlay: m.overlay,
		Hash:    deeplink.Encode(m.state, m.overlay),
	}
}

// stepEffects returns the push+save pair for a step-changing transition,
// or nothing while a restoration is in flight.
func (m *Machine) stepEffects() []Effect {
	if m.mode == ModeRestoring {
		return nil
	}
	return []Effect{push(), save()}
}

// SelectCase starts a case: clears answers, resets the cursor, schedules the
// question-list load, and moves to jurisdiction selection. Valid from landing
// and case selection.
func (m *Machine) SelectCase(caseID string) ([]Effect, error) {
	if caseID == "" {
		return nil, m.reject("please choose a case type")
	}
	switch m.state.Step {
	case model.StepLanding, model.StepCaseSelect:
	default:
		return nil, m.rejectStep("selectCase", m.state.Step)
	}

	m.lastError = ""
	m.state.SelectedCase = caseID
	m.state.SelectedJurisdiction = ""
	m.state.Answers = model.Answers{}
	m.state.QuestionIndex = 0
	m.questions = nil
	m.state.Step = model.StepJurisdictionSelect

	return append([]Effect{loadQuestions(caseID)}, m.stepEffects()...), nil
}

// SelectJurisdiction records the jurisdiction and enters the questionnaire.
// Requires a non-empty name; the legacy empty-jurisdiction mode is reachable
// only through deep links.
func (m *Machine) SelectJurisdiction(name string) ([]Effect, error) {
	if m.state.Step != model.StepJurisdictionSelect {
		return nil, m.rejectStep("selectJurisdiction", m.state.Step)
	}
	if name == "" {
		return nil, m.reject("please choose a jurisdiction")
	}

	m.lastError = ""
	m.state.SelectedJurisdiction = name
	m.state.Step = model.StepQuestionnaire

	return m.stepEffects(), nil
}

// Answer records a concrete answer for a question. Overwrites the unknown
// sentinel like any other prior value.
func (m *Machine) Answer(questionID string, value any) ([]Effect, error) {
	if m.state.Step != model.StepQuestionnaire {
		return nil, m.rejectStep("answer", m.state.Step)
	}
	if questionID == "" {
		return nil, m.reject("unknown question")
	}

	m.lastError = ""
	m.state.Answers.Set(questionID, value)

	return m.dataEffects(), nil
}

// ToggleUnknown flips the "prefer not to say" sentinel for a question. The
// first time any question is toggled to unknown, the missing-data warning
// opens; the latch ensures it never opens again this session.
func (m *Machine) ToggleUnknown(questionID string) ([]Effect, error) {
	if m.state.Step != model.StepQuestionnaire {
		return nil, m.rejectStep("toggleUnknown", m.state.Step)
	}
	if questionID == "" {
		return nil, m.reject("unknown question")
	}

	m.lastError = ""
	if m.state.Answers.ToggleUnknown(questionID) && !m.overlay.MissingDataWarned {
		m.overlay.MissingDataWarned = true
		m.overlay.MissingDataOpen = true
	}

	return m.dataEffects(), nil
}

// NextQuestion advances the cursor, or enters the contact step past the last
// question.
func (m *Machine) NextQuestion() ([]Effect, error) {
	if m.state.Step != model.StepQuestionnaire {
		return nil, m.rejectStep("nextQuestion", m.state.Step)
	}

	m.lastError = ""
	if m.state.QuestionIndex < len(m.questions)-1 {
		m.state.QuestionIndex++
	} else {
		m.state.Step = model.StepContact
	}

	return m.stepEffects(), nil
}

// PreviousQuestion moves the cursor back, or returns to jurisdiction
// selection from the first question.
func (m *Machine) PreviousQuestion() ([]Effect, error) {
	if m.state.Step != model.StepQuestionnaire {
		return nil, m.rejectStep("previousQuestion", m.state.Step)
	}

	m.lastError = ""
	if m.state.QuestionIndex > 0 {
		m.state.QuestionIndex--
	} else {
		m.state.Step = model.StepJurisdictionSelect
	}

	return m.stepEffects(), nil
}

// SubmitContact runs the contact guard and commits the contact data. The
// caller then drives the valuation and lead collaborators and finishes with
// CompleteSubmission or FailSubmission; the step stays at contact until the
// whole chain succeeds.
func (m *Machine) SubmitContact(contact model.Contact) error {
	if m.state.Step != model.StepContact {
		return m.rejectStep("submitContact", m.state.Step)
	}
	if err := contact.Validate(); err != nil {
		var de *dErrors.Error
		if errors.As(err, &de) {
			m.lastError = de.Message
		}
		return err
	}

	m.lastError = ""
	m.state.Contact = contact
	return nil
}

// CompleteSubmission stores the computed valuation and enters the terminal
// results step. The persisted slot is cleared: nothing is left to resume.
func (m *Machine) CompleteSubmission(valuation model.Valuation) []Effect {
	m.lastError = ""
	m.valuation = &valuation
	m.state.Step = model.StepResults

	if m.mode == ModeRestoring {
		return []Effect{clear()}
	}
	return []Effect{push(), clear()}
}

// FailSubmission records a collaborator failure during submission; the step
// does not change.
func (m *Machine) FailSubmission(kind SubmissionFailure) {
	switch kind {
	case FailureValuation:
		m.lastError = msgValuationUnavailable
	case FailureLead:
		m.lastError = msgLeadUnavailable
	}
}

// SubmissionFailure names which collaborator broke the submission chain.
type SubmissionFailure int

const (
	FailureValuation SubmissionFailure = iota
	FailureLead
)

// Reset returns to the landing step, clearing the selected case, answers and
// cursor. Language, contact data and the warning latch survive.
func (m *Machine) Reset() ([]Effect, error) {
	m.lastError = ""
	m.state.Step = model.StepLanding
	m.state.SelectedCase = ""
	m.state.SelectedJurisdiction = ""
	m.state.Answers = model.Answers{}
	m.state.QuestionIndex = 0
	m.questions = nil
	m.overlay.CloseAll()

	return m.stepEffects(), nil
}

// SetLanguage switches the UI locale; valid at any step.
func (m *Machine) SetLanguage(locale model.Locale) ([]Effect, error) {
	if !locale.IsValid() {
		return nil, m.reject("unsupported language")
	}

	m.lastError = ""
	m.state.Language = locale

	return m.dataEffects(), nil
}

// QuestionsLoaded delivers a question-list resolution. Keyed to the case that
// was active when the load was issued: a resolution for a case that is no
// longer selected is discarded, so the last issued load wins.
func (m *Machine) QuestionsLoaded(caseID string, questions []model.Question, err error) {
	if caseID != m.state.SelectedCase {
		return
	}
	if err != nil {
		m.lastError = msgQuestionsUnavailable
		return
	}

	m.questions = questions
	// Deep links may carry a cursor past the end of the list; fall back to
	// the first question rather than rejecting the link.
	if m.state.QuestionIndex >= len(questions) {
		m.state.QuestionIndex = 0
	}
}

// Restore applies a popped history entry. Runs in Restoring mode so the
// transition emits no push/save: the entry already sits on the stack. The
// mode closes as soon as the updates are committed; the only effect a restore
// can emit is a question reload when the entry points at a case whose list is
// not in memory.
func (m *Machine) Restore(entry model.HistoryEntry) []Effect {
	m.mode = ModeRestoring
	defer func() { m.mode = ModeNormal }()

	warned := m.overlay.MissingDataWarned

	needReload := entry.State.SelectedCase != "" &&
		(entry.State.SelectedCase != m.state.SelectedCase || m.questions == nil)

	m.state = entry.State.Clone()
	if m.state.Answers == nil {
		m.state.Answers = model.Answers{}
	}
	m.overlay = entry.Overlay
	// The warning latch is session history; a restored entry never rearms it.
	m.overlay.MissingDataWarned = warned || entry.Overlay.MissingDataWarned
	m.lastError = ""
	m.suppressed++

	if needReload {
		return []Effect{loadQuestions(m.state.SelectedCase)}
	}
	return nil
}

// dataEffects returns the replace+save pair for transitions that change
// state without changing step, or nothing during restoration.
func (m *Machine) dataEffects() []Effect {
	if m.mode == ModeRestoring {
		return nil
	}
	return []Effect{replace(), save()}
}

// OpenHelp shows the help panel with the given topic. Overlay-only: the
// current history entry is replaced, the step never moves.
func (m *Machine) OpenHelp(topic string) []Effect {
	m.overlay.HelpOpen = true
	m.overlay.HelpTopic = topic
	return m.overlayEffects()
}

// CloseHelp hides the help panel.
func (m *Machine) CloseHelp() []Effect {
	m.overlay.HelpOpen = false
	m.overlay.HelpTopic = ""
	return m.overlayEffects()
}

// DismissMissingData hides the missing-data warning. The latch stays set.
func (m *Machine) DismissMissingData() []Effect {
	m.overlay.MissingDataOpen = false
	return m.overlayEffects()
}

// ShowLegal opens a legal page. Pushed, not replaced: legal pages carry their
// own hash and should be reachable with the back button.
func (m *Machine) ShowLegal(page model.LegalPage) ([]Effect, error) {
	if page != model.LegalPrivacy && page != model.LegalTerms {
		return nil, m.reject("unknown legal page")
	}
	m.overlay.LegalPage = page
	if m.mode == ModeRestoring {
		return nil, nil
	}
	return []Effect{push()}, nil
}

// CloseLegal hides the legal page, restoring the underlying step's hash.
func (m *Machine) CloseLegal() []Effect {
	m.overlay.LegalPage = model.LegalNone
	if m.mode == ModeRestoring {
		return nil
	}
	return []Effect{push()}
}

func (m *Machine) overlayEffects() []Effect {
	if m.mode == ModeRestoring {
		return nil
	}
	return []Effect{replace()}
}

// reject records a guard failure without moving the step.
func (m *Machine) reject(message string) error {
	m.lastError = message
	return dErrors.New(dErrors.CodeGuardRejected, message)
}

// rejectStep records a transition attempted from the wrong step.
func (m *Machine) rejectStep(action string, step model.Step) error {
	return dErrors.Newf(dErrors.CodeGuardRejected, "%s is not valid from step %s", action, step)
}
