package service

import (
	"context"

	"github.com/google/uuid"

	"caseflow/internal/embed"
	dErrors "caseflow/pkg/domain-errors"
)

// ReportHeight records a content height measurement from the embedded frame.
// Bursts collapse through the notifier's debounce; only the last height of a
// burst is published.
func (s *Service) ReportHeight(ctx context.Context, sessionID uuid.UUID, height int) error {
	if height < 0 {
		return dErrors.New(dErrors.CodeBadRequest, "height must not be negative")
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	sess.notifier.HeightChanged(height)
	return nil
}

// EmbedMessage returns the latest resize message for the hosting page to relay
// across the frame boundary, or nil when no height has been reported. A
// pending debounced report is flushed first so a poll right after a report
// sees it.
func (s *Service) EmbedMessage(ctx context.Context, sessionID uuid.UUID) (*embed.Message, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.notifier.Flush()

	sess.resizeMu.Lock()
	defer sess.resizeMu.Unlock()
	if sess.resize == nil {
		return nil, nil
	}
	msg := *sess.resize
	return &msg, nil
}
