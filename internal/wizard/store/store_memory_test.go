package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"caseflow/internal/wizard/model"
)

type SnapshotStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *SnapshotStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestSnapshotStoreSuite(t *testing.T) {
	suite.Run(t, new(SnapshotStoreSuite))
}

func questionnaireState() model.ApplicationState {
	state := model.NewApplicationState()
	state.Step = model.StepQuestionnaire
	state.SelectedCase = "motor"
	state.SelectedJurisdiction = "California"
	state.QuestionIndex = 2
	state.Answers = model.Answers{"q1": "rear-ended", "q2": true}
	return state
}

// TestSaveAndLoad verifies the basic persist/resume round trip.
func (s *SnapshotStoreSuite) TestSaveAndLoad() {
	s.Run("round-trips a resumable state", func() {
		state := questionnaireState()
		s.Require().NoError(s.store.Save(s.ctx, "client-1", state))

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Require().NotNil(snap)
		s.Equal(model.StepQuestionnaire, snap.Step)
		s.Equal("motor", snap.SelectedCase)
		s.Equal("California", snap.SelectedJurisdiction)
		s.Equal(2, snap.QuestionIndex)
		s.Equal("rear-ended", snap.Answers["q1"])
		s.Equal(true, snap.Answers["q2"])
	})

	s.Run("save is idempotent", func() {
		state := questionnaireState()
		s.Require().NoError(s.store.Save(s.ctx, "client-1", state))
		s.Require().NoError(s.store.Save(s.ctx, "client-1", state))

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Require().NotNil(snap)
		s.Equal(state.QuestionIndex, snap.QuestionIndex)
	})

	s.Run("returns nil for an unknown client", func() {
		snap, err := s.store.Load(s.ctx, "nobody")
		s.Require().NoError(err)
		s.Nil(snap)
	})

	s.Run("clear empties the slot", func() {
		s.Require().NoError(s.store.Save(s.ctx, "client-1", questionnaireState()))
		s.Require().NoError(s.store.Clear(s.ctx, "client-1"))

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Nil(snap)
	})
}

// TestNonResumableSteps verifies landing and results are never persisted.
func (s *SnapshotStoreSuite) TestNonResumableSteps() {
	for _, step := range []model.Step{model.StepLanding, model.StepResults} {
		state := questionnaireState()
		state.Step = step
		s.Require().NoError(s.store.Save(s.ctx, "client-1", state))

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Nil(snap, "step %s must not persist", step)
	}
}

// TestExpiry verifies the 24h resumable window.
func (s *SnapshotStoreSuite) TestExpiry() {
	s.Run("25 hour old snapshot is discarded", func() {
		base := time.Now()
		saveClock := func() time.Time { return base.Add(-25 * time.Hour) }
		st := NewInMemoryWithClock(saveClock)
		s.Require().NoError(st.Save(s.ctx, "client-1", questionnaireState()))

		st.now = time.Now
		snap, err := st.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Nil(snap)
	})

	s.Run("23 hour old snapshot resumes", func() {
		base := time.Now()
		saveClock := func() time.Time { return base.Add(-23 * time.Hour) }
		st := NewInMemoryWithClock(saveClock)
		s.Require().NoError(st.Save(s.ctx, "client-1", questionnaireState()))

		st.now = time.Now
		snap, err := st.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.NotNil(snap)
	})
}

// TestCorruptAndLegacyPayloads verifies load-time tolerance rules.
func (s *SnapshotStoreSuite) TestCorruptAndLegacyPayloads() {
	s.Run("corrupt JSON is treated as absent and cleared", func() {
		s.store.put("client-1", []byte("{not json"))

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Nil(snap)

		s.store.mu.RLock()
		_, present := s.store.slots["client-1"]
		s.store.mu.RUnlock()
		s.False(present, "corrupt slot must be cleared")
	})

	s.Run("legacy questions step resumes as questionnaire", func() {
		raw := []byte(`{"step":"questions","selectedCase":"motor","questionIndex":1,"language":"en","savedAt":"` +
			time.Now().Format(time.RFC3339Nano) + `"}`)
		s.store.put("client-1", raw)

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Require().NotNil(snap)
		s.Equal(model.StepQuestionnaire, snap.Step)
	})

	s.Run("legacy estimate step is discarded", func() {
		raw := []byte(`{"step":"estimate","selectedCase":"motor","language":"en","savedAt":"` +
			time.Now().Format(time.RFC3339Nano) + `"}`)
		s.store.put("client-1", raw)

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Nil(snap)
	})

	s.Run("unknown step name is discarded", func() {
		raw := []byte(`{"step":"wat","savedAt":"` + time.Now().Format(time.RFC3339Nano) + `"}`)
		s.store.put("client-1", raw)

		snap, err := s.store.Load(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Nil(snap)
	})
}
