package service

import (
	"sync"

	"github.com/google/uuid"

	"caseflow/internal/embed"
	"caseflow/internal/wizard/history"
	"caseflow/internal/wizard/machine"
	"caseflow/internal/wizard/model"
)

// Session pairs one machine with its history stack. The mutex serializes
// transitions, standing in for the single event queue a browser tab has.
type Session struct {
	ID       uuid.UUID
	ClientID string

	mu      sync.Mutex
	machine *machine.Machine
	history *history.Stack

	// pending holds the effects produced by the pop callback until the
	// navigation call that triggered the pop can run them.
	pending []machine.Effect

	// resize carries the latest debounced height message for the hosting
	// page. Its own lock: the notifier posts from a timer goroutine.
	notifier *embed.Notifier
	resizeMu sync.Mutex
	resize   *embed.Message
}

func newSession(clientID string) *Session {
	sess := &Session{
		ID:       uuid.New(),
		ClientID: clientID,
		machine:  machine.New(),
		history:  history.NewStack(),
	}
	// The stack fires this synchronously inside Back/Forward, while the
	// session lock is already held; it must not lock again.
	sess.history.OnPop(func(entry model.HistoryEntry) {
		sess.pending = sess.machine.Restore(entry)
	})
	sess.notifier = embed.NewNotifier(embed.SinkFunc(func(msg embed.Message) {
		sess.resizeMu.Lock()
		sess.resize = &msg
		sess.resizeMu.Unlock()
	}), 0)
	return sess
}

func (sess *Session) takePending() []machine.Effect {
	effects := sess.pending
	sess.pending = nil
	return effects
}

// Snapshot is the session view returned from every call: the full state, the
// loaded questions, the current hash, and any step-scoped message.
type Snapshot struct {
	SessionID            uuid.UUID          `json:"sessionId"`
	Step                 model.Step         `json:"step"`
	SelectedCase         string             `json:"selectedCase,omitempty"`
	SelectedJurisdiction string             `json:"selectedJurisdiction,omitempty"`
	QuestionIndex        int                `json:"questionIndex"`
	Answers              model.Answers      `json:"answers"`
	Language             model.Locale       `json:"language"`
	Contact              model.Contact      `json:"contact,omitempty"`
	Overlay              model.OverlayState `json:"overlay"`
	Questions            []model.Question   `json:"questions,omitempty"`
	Valuation            *model.Valuation   `json:"valuation,omitempty"`
	Hash                 string             `json:"hash"`
	Message              string             `json:"message,omitempty"`
}

// snapshotLocked builds the session view. Callers hold the session lock.
func (s *Service) snapshotLocked(sess *Session) Snapshot {
	state := sess.machine.State()
	return Snapshot{
		SessionID:            sess.ID,
		Step:                 state.Step,
		SelectedCase:         state.SelectedCase,
		SelectedJurisdiction: state.SelectedJurisdiction,
		QuestionIndex:        state.QuestionIndex,
		Answers:              state.Answers,
		Language:             state.Language,
		Contact:              state.Contact,
		Overlay:              sess.machine.Overlay(),
		Questions:            sess.machine.Questions(),
		Valuation:            sess.machine.Valuation(),
		Hash:                 sess.history.CurrentHash(),
		Message:              sess.machine.Err(),
	}
}
