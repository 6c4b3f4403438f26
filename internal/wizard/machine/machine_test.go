package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"caseflow/internal/wizard/model"
	dErrors "caseflow/pkg/domain-errors"
)

type MachineSuite struct {
	suite.Suite
	m *Machine
}

func (s *MachineSuite) SetupTest() {
	s.m = New()
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineSuite))
}

func motorQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Type: model.QuestionChoice, Options: []string{"rear-ended", "head-on"}},
		{ID: "q2", Type: model.QuestionYesNo},
		{ID: "q3", Type: model.QuestionNumber, Min: 0, Max: 52},
	}
}

// advanceToQuestionnaire drives a fresh machine into the questionnaire with
// motor questions loaded.
func (s *MachineSuite) advanceToQuestionnaire() {
	_, err := s.m.SelectCase("motor")
	s.Require().NoError(err)
	s.m.QuestionsLoaded("motor", motorQuestions(), nil)
	_, err = s.m.SelectJurisdiction("California")
	s.Require().NoError(err)
}

func (s *MachineSuite) validContact() model.Contact {
	return model.Contact{
		Name:    "Jo Doe",
		Email:   "jo@example.com",
		Phone:   "(555) 123-4567",
		Consent: true,
	}
}

func kinds(effects []Effect) []EffectKind {
	out := make([]EffectKind, len(effects))
	for i, e := range effects {
		out[i] = e.Kind
	}
	return out
}

func (s *MachineSuite) TestSelectCase() {
	s.Run("from landing loads questions and enters jurisdiction selection", func() {
		effects, err := s.m.SelectCase("motor")
		s.Require().NoError(err)

		s.Equal(model.StepJurisdictionSelect, s.m.State().Step)
		s.Equal("motor", s.m.State().SelectedCase)
		s.Equal([]EffectKind{EffectLoadQuestions, EffectPush, EffectSave}, kinds(effects))
		s.Equal("motor", effects[0].CaseID)
	})

	s.Run("clears answers and cursor from a prior case", func() {
		s.SetupTest()
		s.advanceToQuestionnaire()
		_, err := s.m.Answer("q1", "rear-ended")
		s.Require().NoError(err)
		_, err = s.m.NextQuestion()
		s.Require().NoError(err)

		// Back out to landing and pick a different case.
		_, err = s.m.Reset()
		s.Require().NoError(err)
		_, err = s.m.SelectCase("medical")
		s.Require().NoError(err)

		s.Empty(s.m.State().Answers)
		s.Zero(s.m.State().QuestionIndex)
		s.Equal("medical", s.m.State().SelectedCase)
	})

	s.Run("rejected outside landing and case selection", func() {
		s.SetupTest()
		s.advanceToQuestionnaire()

		_, err := s.m.SelectCase("medical")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeGuardRejected))
		s.Equal(model.StepQuestionnaire, s.m.State().Step)
	})
}

func (s *MachineSuite) TestSelectJurisdiction() {
	s.Run("requires a non-empty name", func() {
		_, err := s.m.SelectCase("motor")
		s.Require().NoError(err)

		_, err = s.m.SelectJurisdiction("")
		s.Require().Error(err)
		s.Equal(model.StepJurisdictionSelect, s.m.State().Step)
		s.NotEmpty(s.m.Err())
	})

	s.Run("enters the questionnaire", func() {
		s.SetupTest()
		_, err := s.m.SelectCase("motor")
		s.Require().NoError(err)

		effects, err := s.m.SelectJurisdiction("California")
		s.Require().NoError(err)
		s.Equal(model.StepQuestionnaire, s.m.State().Step)
		s.Equal("California", s.m.State().SelectedJurisdiction)
		s.Equal([]EffectKind{EffectPush, EffectSave}, kinds(effects))
	})
}

func (s *MachineSuite) TestAnswerAndUnknownSentinel() {
	s.advanceToQuestionnaire()

	s.Run("records and overwrites answers", func() {
		_, err := s.m.Answer("q1", "rear-ended")
		s.Require().NoError(err)
		s.Equal("rear-ended", s.m.State().Answers["q1"])

		_, err = s.m.Answer("q1", "head-on")
		s.Require().NoError(err)
		s.Equal("head-on", s.m.State().Answers["q1"])
	})

	s.Run("concrete answer overwrites the sentinel without side effects", func() {
		_, err := s.m.ToggleUnknown("q2")
		s.Require().NoError(err)
		s.True(s.m.State().Answers.IsUnknown("q2"))

		_, err = s.m.Answer("q2", true)
		s.Require().NoError(err)
		s.Equal(true, s.m.State().Answers["q2"])
	})

	s.Run("toggle removes the sentinel back to unanswered", func() {
		_, err := s.m.ToggleUnknown("q3")
		s.Require().NoError(err)
		_, err = s.m.ToggleUnknown("q3")
		s.Require().NoError(err)
		_, ok := s.m.State().Answers["q3"]
		s.False(ok)
	})
}

// TestMissingDataWarningOneShot: the warning opens on the first unknown toggle
// of the session and never again, even for a different question.
func (s *MachineSuite) TestMissingDataWarningOneShot() {
	s.advanceToQuestionnaire()

	_, err := s.m.ToggleUnknown("q1")
	s.Require().NoError(err)
	s.True(s.m.Overlay().MissingDataOpen, "first toggle opens the warning")
	s.True(s.m.Overlay().MissingDataWarned)

	s.m.DismissMissingData()
	s.False(s.m.Overlay().MissingDataOpen)

	_, err = s.m.ToggleUnknown("q2")
	s.Require().NoError(err)
	s.False(s.m.Overlay().MissingDataOpen, "second toggle must not reopen the warning")
}

func (s *MachineSuite) TestQuestionPaging() {
	s.advanceToQuestionnaire()

	s.Run("next increments until the last question", func() {
		_, err := s.m.NextQuestion()
		s.Require().NoError(err)
		s.Equal(1, s.m.State().QuestionIndex)
		_, err = s.m.NextQuestion()
		s.Require().NoError(err)
		s.Equal(2, s.m.State().QuestionIndex)
	})

	s.Run("next past the last question enters contact", func() {
		_, err := s.m.NextQuestion()
		s.Require().NoError(err)
		s.Equal(model.StepContact, s.m.State().Step)
	})

	s.Run("previous from the first question returns to jurisdiction selection", func() {
		s.SetupTest()
		s.advanceToQuestionnaire()

		_, err := s.m.PreviousQuestion()
		s.Require().NoError(err)
		s.Equal(model.StepJurisdictionSelect, s.m.State().Step)
	})

	s.Run("previous decrements the cursor", func() {
		s.SetupTest()
		s.advanceToQuestionnaire()
		_, err := s.m.NextQuestion()
		s.Require().NoError(err)

		_, err = s.m.PreviousQuestion()
		s.Require().NoError(err)
		s.Zero(s.m.State().QuestionIndex)
		s.Equal(model.StepQuestionnaire, s.m.State().Step)
	})
}

// TestLastWriteWinsOnCaseSwitch: a stale question-list resolution for a case
// that is no longer selected must be discarded.
func (s *MachineSuite) TestLastWriteWinsOnCaseSwitch() {
	_, err := s.m.SelectCase("motor")
	s.Require().NoError(err)
	_, err = s.m.Reset()
	s.Require().NoError(err)
	_, err = s.m.SelectCase("medical")
	s.Require().NoError(err)

	medical := []model.Question{{ID: "m1", Type: model.QuestionText}}

	// The motor load resolves late, after medical was selected.
	s.m.QuestionsLoaded("medical", medical, nil)
	s.m.QuestionsLoaded("motor", motorQuestions(), nil)

	s.Require().Len(s.m.Questions(), 1)
	s.Equal("m1", s.m.Questions()[0].ID)
}

func (s *MachineSuite) TestQuestionLoadFailure() {
	_, err := s.m.SelectCase("motor")
	s.Require().NoError(err)

	s.m.QuestionsLoaded("motor", nil, errors.New("catalog down"))

	s.Equal(model.StepJurisdictionSelect, s.m.State().Step, "failure stays on the current step")
	s.NotEmpty(s.m.Err())
	s.Nil(s.m.Questions())
}

func (s *MachineSuite) TestSubmitContactGuards() {
	s.advanceToQuestionnaire()
	for range motorQuestions() {
		_, err := s.m.NextQuestion()
		s.Require().NoError(err)
	}
	s.Require().Equal(model.StepContact, s.m.State().Step)

	cases := []struct {
		name   string
		mutate func(*model.Contact)
	}{
		{"empty name", func(c *model.Contact) { c.Name = "" }},
		{"empty email", func(c *model.Contact) { c.Email = "" }},
		{"empty phone", func(c *model.Contact) { c.Phone = "" }},
		{"no consent", func(c *model.Contact) { c.Consent = false }},
		{"bad email format", func(c *model.Contact) { c.Email = "not-an-email" }},
		{"phone with wrong digit count", func(c *model.Contact) { c.Phone = "12345" }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			contact := s.validContact()
			tc.mutate(&contact)

			err := s.m.SubmitContact(contact)
			s.Require().Error(err)
			s.True(dErrors.Is(err, dErrors.CodeGuardRejected))
			s.Equal(model.StepContact, s.m.State().Step)
			s.NotEmpty(s.m.Err())
		})
	}

	s.Run("valid contact passes the guard", func() {
		s.Require().NoError(s.m.SubmitContact(s.validContact()))
		s.Equal(model.StepContact, s.m.State().Step, "step moves only on CompleteSubmission")
		s.Empty(s.m.Err())
	})

	s.Run("completion enters results and clears the slot", func() {
		effects := s.m.CompleteSubmission(model.Valuation{Value: 42000, LowRange: 30000, HighRange: 55000})
		s.Equal(model.StepResults, s.m.State().Step)
		s.Equal([]EffectKind{EffectPush, EffectClear}, kinds(effects))
		s.Require().NotNil(s.m.Valuation())
		s.InDelta(42000, s.m.Valuation().Value, 0.01)
	})
}

func (s *MachineSuite) TestFailSubmissionKeepsStep() {
	s.advanceToQuestionnaire()
	for range motorQuestions() {
		_, err := s.m.NextQuestion()
		s.Require().NoError(err)
	}
	s.Require().NoError(s.m.SubmitContact(s.validContact()))

	s.m.FailSubmission(FailureValuation)
	s.Equal(model.StepContact, s.m.State().Step)
	s.NotEmpty(s.m.Err())

	s.m.FailSubmission(FailureLead)
	s.Equal(model.StepContact, s.m.State().Step)
	s.NotEmpty(s.m.Err())
}

func (s *MachineSuite) TestReset() {
	s.advanceToQuestionnaire()
	_, err := s.m.Answer("q1", "rear-ended")
	s.Require().NoError(err)

	_, err = s.m.Reset()
	s.Require().NoError(err)

	state := s.m.State()
	s.Equal(model.StepLanding, state.Step)
	s.Empty(state.SelectedCase)
	s.Empty(state.Answers)
	s.Zero(state.QuestionIndex)
}

func (s *MachineSuite) TestSetLanguage() {
	s.Run("valid locale applies at any step", func() {
		effects, err := s.m.SetLanguage(model.LocaleES)
		s.Require().NoError(err)
		s.Equal(model.LocaleES, s.m.State().Language)
		s.Equal([]EffectKind{EffectReplace, EffectSave}, kinds(effects))
	})

	s.Run("unknown locale is rejected", func() {
		_, err := s.m.SetLanguage(model.Locale("zz"))
		s.Require().Error(err)
		s.Equal(model.LocaleES, s.m.State().Language)
	})
}

func (s *MachineSuite) TestOverlayOperations() {
	s.Run("help panel replaces, never pushes", func() {
		effects := s.m.OpenHelp("case-types")
		s.True(s.m.Overlay().HelpOpen)
		s.Equal([]EffectKind{EffectReplace}, kinds(effects))

		effects = s.m.CloseHelp()
		s.False(s.m.Overlay().HelpOpen)
		s.Equal([]EffectKind{EffectReplace}, kinds(effects))
	})

	s.Run("legal pages push their own entries", func() {
		effects, err := s.m.ShowLegal(model.LegalPrivacy)
		s.Require().NoError(err)
		s.Equal(model.LegalPrivacy, s.m.Overlay().LegalPage)
		s.Equal([]EffectKind{EffectPush}, kinds(effects))

		effects = s.m.CloseLegal()
		s.Equal(model.LegalNone, s.m.Overlay().LegalPage)
		s.Equal([]EffectKind{EffectPush}, kinds(effects))
	})

	s.Run("overlays never advance the step", func() {
		s.Equal(model.StepLanding, s.m.State().Step)
	})
}

// TestRestoreSuppressesExactlyOnePush: a pop restoration emits no push/save,
// and the transition after it pushes again.
func (s *MachineSuite) TestRestoreSuppressesExactlyOnePush() {
	_, err := s.m.SelectCase("motor")
	s.Require().NoError(err)
	s.m.QuestionsLoaded("motor", motorQuestions(), nil)
	entryAtJurisdiction := s.m.Entry()

	_, err = s.m.SelectJurisdiction("California")
	s.Require().NoError(err)

	effects := s.m.Restore(entryAtJurisdiction)
	s.Empty(kinds(effects), "restore must not push or save")
	s.Equal(1, s.m.SuppressedPushes())
	s.Equal(model.StepJurisdictionSelect, s.m.State().Step)
	s.Equal(ModeNormal, s.m.Mode(), "suppression window closes with the restore")

	// The next ordinary transition pushes normally.
	effects, err = s.m.SelectJurisdiction("California")
	s.Require().NoError(err)
	s.Equal([]EffectKind{EffectPush, EffectSave}, kinds(effects))
	s.Equal(1, s.m.SuppressedPushes(), "suppression must not leak")
}

// TestRestoreReloadsQuestionsForForeignCase: restoring an entry for a case
// whose list is not in memory schedules a reload, but still no push.
func (s *MachineSuite) TestRestoreReloadsQuestionsForForeignCase() {
	_, err := s.m.SelectCase("motor")
	s.Require().NoError(err)
	s.m.QuestionsLoaded("motor", motorQuestions(), nil)
	_, err = s.m.SelectJurisdiction("California")
	s.Require().NoError(err)
	entry := s.m.Entry()
	entry.State.SelectedCase = "medical"

	effects := s.m.Restore(entry)
	s.Equal([]EffectKind{EffectLoadQuestions}, kinds(effects))
	s.Equal("medical", effects[0].CaseID)
}

// TestRestoreRoundTripsAnswers: entries restore without information loss.
func (s *MachineSuite) TestRestoreRoundTripsAnswers() {
	s.advanceToQuestionnaire()
	_, err := s.m.Answer("q1", "rear-ended")
	s.Require().NoError(err)
	_, err = s.m.ToggleUnknown("q2")
	s.Require().NoError(err)
	entry := s.m.Entry()

	_, err = s.m.Reset()
	s.Require().NoError(err)
	s.Empty(s.m.State().Answers)

	s.m.Restore(entry)
	s.Equal("rear-ended", s.m.State().Answers["q1"])
	s.True(s.m.State().Answers.IsUnknown("q2"))
}
