package service

import (
	"context"

	"github.com/google/uuid"

	"caseflow/internal/lead"
	"caseflow/internal/platform/audit"
	"caseflow/internal/wizard/machine"
	"caseflow/internal/wizard/model"
	dErrors "caseflow/pkg/domain-errors"
)

// GetState returns the current session view without transitioning.
func (s *Service) GetState(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshotLocked(sess), nil
}

// transition runs one guarded machine call under the session lock, executes
// its effects, and records the outcome. A non-empty auditAction is published
// on acceptance, still under the lock.
func (s *Service) transition(
	ctx context.Context,
	sessionID uuid.UUID,
	action string,
	auditAction audit.Action,
	detail string,
	fn func(*machine.Machine) ([]machine.Effect, error),
) (Snapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	effects, err := fn(sess.machine)
	if err != nil {
		s.metrics.ObserveTransition(action, "rejected")
		return s.snapshotLocked(sess), err
	}
	s.runEffects(ctx, sess, effects)
	s.metrics.ObserveTransition(action, "accepted")
	if auditAction != "" {
		s.emit(ctx, sess, auditAction, detail)
	}
	return s.snapshotLocked(sess), nil
}

// SelectCase starts a case type.
func (s *Service) SelectCase(ctx context.Context, sessionID uuid.UUID, caseID string) (Snapshot, error) {
	return s.transition(ctx, sessionID, "selectCase", audit.ActionCaseSelected, caseID, func(m *machine.Machine) ([]machine.Effect, error) {
		return m.SelectCase(caseID)
	})
}

// SelectJurisdiction records the jurisdiction and enters the questionnaire.
func (s *Service) SelectJurisdiction(ctx context.Context, sessionID uuid.UUID, name string) (Snapshot, error) {
	return s.transition(ctx, sessionID, "selectJurisdiction", audit.ActionJurisdictionSet, name, func(m *machine.Machine) ([]machine.Effect, error) {
		return m.SelectJurisdiction(name)
	})
}

// Answer records a concrete answer for a question.
func (s *Service) Answer(ctx context.Context, sessionID uuid.UUID, questionID string, value any) (Snapshot, error) {
	return s.transition(ctx, sessionID, "answer", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.Answer(questionID, value)
	})
}

// ToggleUnknown flips the "prefer not to say" sentinel for a question.
func (s *Service) ToggleUnknown(ctx context.Context, sessionID uuid.UUID, questionID string) (Snapshot, error) {
	return s.transition(ctx, sessionID, "toggleUnknown", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.ToggleUnknown(questionID)
	})
}

// NextQuestion advances the questionnaire cursor.
func (s *Service) NextQuestion(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.transition(ctx, sessionID, "nextQuestion", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.NextQuestion()
	})
}

// PreviousQuestion moves the questionnaire cursor back.
func (s *Service) PreviousQuestion(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.transition(ctx, sessionID, "previousQuestion", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.PreviousQuestion()
	})
}

// Reset returns the session to the landing step.
func (s *Service) Reset(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.transition(ctx, sessionID, "reset", audit.ActionSessionReset, "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.Reset()
	})
}

// SetLanguage switches the UI locale.
func (s *Service) SetLanguage(ctx context.Context, sessionID uuid.UUID, locale model.Locale) (Snapshot, error) {
	return s.transition(ctx, sessionID, "setLanguage", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.SetLanguage(locale)
	})
}

// OpenHelp shows the help panel.
func (s *Service) OpenHelp(ctx context.Context, sessionID uuid.UUID, topic string) (Snapshot, error) {
	return s.transition(ctx, sessionID, "openHelp", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.OpenHelp(topic), nil
	})
}

// CloseHelp hides the help panel.
func (s *Service) CloseHelp(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.transition(ctx, sessionID, "closeHelp", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.CloseHelp(), nil
	})
}

// DismissMissingData hides the missing-data warning; the latch stays set.
func (s *Service) DismissMissingData(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.transition(ctx, sessionID, "dismissMissingData", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.DismissMissingData(), nil
	})
}

// ShowLegal opens a legal page overlay.
func (s *Service) ShowLegal(ctx context.Context, sessionID uuid.UUID, page model.LegalPage) (Snapshot, error) {
	return s.transition(ctx, sessionID, "showLegal", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.ShowLegal(page)
	})
}

// CloseLegal hides the legal page.
func (s *Service) CloseLegal(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.transition(ctx, sessionID, "closeLegal", "", "", func(m *machine.Machine) ([]machine.Effect, error) {
		return m.CloseLegal(), nil
	})
}

// SubmitContact runs the whole submission chain: contact guard, valuation,
// outbound lead, local lead record, then the terminal transition. Any
// collaborator failure leaves the step at contact with a retryable message.
func (s *Service) SubmitContact(ctx context.Context, sessionID uuid.UUID, contact model.Contact, rawUA string) (Snapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.machine.SubmitContact(contact); err != nil {
		s.metrics.ObserveTransition("submitContact", "rejected")
		return s.snapshotLocked(sess), err
	}
	s.emit(ctx, sess, audit.ActionContactSubmitted, "")

	state := sess.machine.State()
	estimate, err := s.valuation.Estimate(ctx, state.SelectedCase, state.Answers, state.SelectedJurisdiction)
	if err != nil {
		sess.machine.FailSubmission(machine.FailureValuation)
		s.metrics.ObserveTransition("submitContact", "valuation_failed")
		s.emit(ctx, sess, audit.ActionValuationFailed, err.Error())
		s.logger.WarnContext(ctx, "valuation failed",
			"session_id", sess.ID.String(),
			"case_id", state.SelectedCase,
			"error", err.Error(),
		)
		return s.snapshotLocked(sess), dErrors.New(dErrors.CodeUnavailable, sess.machine.Err())
	}
	if s.metrics != nil {
		s.metrics.Valuations.Inc()
	}
	s.emit(ctx, sess, audit.ActionValuationComputed, "")

	record := lead.New(sess.ID, sess.machine.State(), estimate, DeviceSummary(rawUA))
	if err := s.submitter.Submit(ctx, record); err != nil {
		sess.machine.FailSubmission(machine.FailureLead)
		if s.metrics != nil {
			s.metrics.Leads.WithLabelValues("failed").Inc()
		}
		s.emit(ctx, sess, audit.ActionLeadSubmitFailed, err.Error())
		s.logger.WarnContext(ctx, "lead submission failed",
			"session_id", sess.ID.String(),
			"error", err.Error(),
		)
		return s.snapshotLocked(sess), dErrors.New(dErrors.CodeUnavailable, sess.machine.Err())
	}

	// The outbound call succeeded; a local record failure is logged, not
	// surfaced, so the user still reaches their results.
	if err := s.leads.Save(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "lead record save failed",
			"session_id", sess.ID.String(),
			"lead_id", record.ID.String(),
			"error", err.Error(),
		)
	}

	effects := sess.machine.CompleteSubmission(estimate)
	s.runEffects(ctx, sess, effects)
	if s.metrics != nil {
		s.metrics.Leads.WithLabelValues("submitted").Inc()
	}
	s.metrics.ObserveTransition("submitContact", "accepted")
	s.emit(ctx, sess, audit.ActionLeadRecorded, record.ID.String())

	return s.snapshotLocked(sess), nil
}

// Back pops one history entry and restores it, suppressing exactly one push.
func (s *Service) Back(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.navigate(ctx, sessionID, "back", func(sess *Session) bool {
		return sess.history.Back()
	})
}

// Forward moves one history entry forward.
func (s *Service) Forward(ctx context.Context, sessionID uuid.UUID) (Snapshot, error) {
	return s.navigate(ctx, sessionID, "forward", func(sess *Session) bool {
		return sess.history.Forward()
	})
}

func (s *Service) navigate(ctx context.Context, sessionID uuid.UUID, action string, move func(*Session) bool) (Snapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !move(sess) {
		s.metrics.ObserveTransition(action, "rejected")
		return s.snapshotLocked(sess), dErrors.Newf(dErrors.CodeGuardRejected, "no %s entry", action)
	}

	// The pop callback has already applied Restore; run whatever reload it
	// queued.
	s.runEffects(ctx, sess, sess.takePending())
	if s.metrics != nil {
		s.metrics.SuppressedPushes.Inc()
	}
	s.metrics.ObserveTransition(action, "accepted")
	s.emit(ctx, sess, audit.ActionSessionRestored, action)

	return s.snapshotLocked(sess), nil
}
