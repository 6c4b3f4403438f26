// Package service orchestrates wizard sessions. It owns the session registry,
// serializes access per session, and runs the effects each machine transition
// returns, in order, against the history stack and the persistence store.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"caseflow/internal/lead"
	"caseflow/internal/platform/audit"
	"caseflow/internal/platform/metrics"
	"caseflow/internal/question"
	"caseflow/internal/valuation"
	"caseflow/internal/wizard/deeplink"
	"caseflow/internal/wizard/machine"
	"caseflow/internal/wizard/model"
	"caseflow/internal/wizard/store"
	dErrors "caseflow/pkg/domain-errors"
)

// Service drives wizard sessions end to end: boot, transitions, history
// navigation, and the contact submission chain.
type Service struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	store     store.Store
	questions question.Provider
	valuation valuation.Engine
	submitter lead.Submitter
	leads     lead.Store
	audit     audit.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// New wires the orchestrator. Metrics may be nil in tests.
func New(
	snapshots store.Store,
	questions question.Provider,
	engine valuation.Engine,
	submitter lead.Submitter,
	leads lead.Store,
	publisher audit.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		sessions:  make(map[uuid.UUID]*Session),
		store:     snapshots,
		questions: questions,
		valuation: engine,
		submitter: submitter,
		leads:     leads,
		audit:     publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateSession boots a new session with the three-way priority rule: a
// decodable hash wins, then the client's persisted snapshot, then the landing
// default. The store is consulted only when the hash does not decode.
func (s *Service) CreateSession(ctx context.Context, clientID, hash string) (Snapshot, error) {
	sess := newSession(clientID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	link := deeplink.Decode(hash)
	var snapshot *model.PersistedSnapshot
	if link == nil {
		loaded, err := s.store.Load(ctx, clientID)
		if err != nil {
			s.logger.WarnContext(ctx, "snapshot load failed, booting fresh",
				"client_id", clientID,
				"error", err.Error(),
			)
		} else {
			snapshot = loaded
		}
	}

	effects, source := sess.machine.Boot(link, snapshot)
	s.runEffects(ctx, sess, effects)
	s.register(ctx, sess, source)

	return s.snapshotLocked(sess), nil
}

// CreateSessionWithCase is the route-parameter initializer: the case ID comes
// from the path, hash parsing is suppressed entirely.
func (s *Service) CreateSessionWithCase(ctx context.Context, clientID, caseID string) (Snapshot, error) {
	sess := newSession(clientID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	effects, source := sess.machine.BootWithCase(caseID)
	s.runEffects(ctx, sess, effects)
	s.register(ctx, sess, source)

	return s.snapshotLocked(sess), nil
}

func (s *Service) register(ctx context.Context, sess *Session, source machine.BootSource) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ActiveSessions.Inc()
		switch source {
		case machine.BootDeepLink:
			s.metrics.DeepLinkBoots.Inc()
		case machine.BootSnapshot:
			s.metrics.SnapshotsResumed.Inc()
		}
	}

	action := audit.ActionSessionCreated
	switch source {
	case machine.BootDeepLink:
		action = audit.ActionDeepLinkBoot
	case machine.BootSnapshot:
		action = audit.ActionSnapshotResumed
	}
	s.emit(ctx, sess, action, "")

	s.logger.InfoContext(ctx, "session created",
		"session_id", sess.ID.String(),
		"step", sess.machine.State().Step.String(),
	)
}

// EndSession drops the session from the registry. The persisted snapshot is
// left alone so the client can resume later.
func (s *Service) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "session not found")
	}
	sess.notifier.Close()
	if s.metrics != nil {
		s.metrics.ActiveSessions.Dec()
	}
	return nil
}

// session looks up a live session.
func (s *Service) session(sessionID uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "session not found")
	}
	return sess, nil
}

// runEffects executes a transition's queued effects in order. Must be called
// with the session lock held (or before the session is shared).
func (s *Service) runEffects(ctx context.Context, sess *Session, effects []machine.Effect) {
	for _, effect := range effects {
		switch effect.Kind {
		case machine.EffectPush:
			sess.history.Push(sess.machine.Entry())
			if s.metrics != nil {
				s.metrics.HistoryPushes.Inc()
			}
		case machine.EffectReplace:
			sess.history.Replace(sess.machine.Entry())
			if s.metrics != nil {
				s.metrics.HistoryReplaces.Inc()
			}
		case machine.EffectSave:
			if err := s.store.Save(ctx, sess.ClientID, sess.machine.State()); err != nil {
				s.logger.WarnContext(ctx, "snapshot save failed",
					"session_id", sess.ID.String(),
					"error", err.Error(),
				)
				continue
			}
			if s.metrics != nil {
				s.metrics.SnapshotsSaved.Inc()
			}
		case machine.EffectClear:
			if err := s.store.Clear(ctx, sess.ClientID); err != nil {
				s.logger.WarnContext(ctx, "snapshot clear failed",
					"session_id", sess.ID.String(),
					"error", err.Error(),
				)
			}
		case machine.EffectLoadQuestions:
			qs, err := s.questions.Questions(ctx, effect.CaseID)
			if err != nil {
				s.logger.WarnContext(ctx, "question load failed",
					"session_id", sess.ID.String(),
					"case_id", effect.CaseID,
					"error", err.Error(),
				)
			}
			sess.machine.QuestionsLoaded(effect.CaseID, qs, err)
		}
	}
}

// emit publishes an audit event; failures are logged, never surfaced.
func (s *Service) emit(ctx context.Context, sess *Session, action audit.Action, detail string) {
	state := sess.machine.State()
	event := audit.Event{
		SessionID: sess.ID,
		Action:    action,
		Step:      state.Step.String(),
		CaseID:    state.SelectedCase,
		Detail:    detail,
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"action", string(action),
			"error", err.Error(),
		)
	}
}

// DeviceSummary condenses a User-Agent header into the short form recorded on
// leads, e.g. "Chrome 120 on Linux x86_64" or "Mobile Safari on iPhone".
func DeviceSummary(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := useragent.New(rawUA)
	name, version := ua.Browser()
	if name == "" {
		return ""
	}
	summary := name
	if version != "" {
		summary += " " + version
	}
	if os := ua.OS(); os != "" {
		summary += " on " + os
	}
	return summary
}
