// Package audit records wizard lifecycle events. Events are transport-agnostic
// so sinks can fan out; the Kafka publisher is the production sink.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action names the wizard event being recorded.
type Action string

const (
	ActionSessionCreated    Action = "session_created"
	ActionSessionRestored   Action = "session_restored"
	ActionSessionReset      Action = "session_reset"
	ActionSnapshotResumed   Action = "snapshot_resumed"
	ActionDeepLinkBoot      Action = "deep_link_boot"
	ActionCaseSelected      Action = "case_selected"
	ActionJurisdictionSet   Action = "jurisdiction_selected"
	ActionContactSubmitted  Action = "contact_submitted"
	ActionLeadRecorded      Action = "lead_recorded"
	ActionLeadSubmitFailed  Action = "lead_submit_failed"
	ActionValuationComputed Action = "valuation_computed"
	ActionValuationFailed   Action = "valuation_failed"
)

// Event is one audit record. Keep it flat and JSON-serializable.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID uuid.UUID `json:"sessionId"`
	Action    Action    `json:"action"`
	Step      string    `json:"step,omitempty"`
	CaseID    string    `json:"caseId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

// Publisher delivers audit events. Emit must never block a transition for
// long; failures are logged, not surfaced to the user.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher is used when Kafka is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Emit(ctx context.Context, event Event) error { return nil }
func (NoopPublisher) Close() error                                { return nil }

// MemoryPublisher appends events to a slice. Test double.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *MemoryPublisher) Emit(ctx context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *MemoryPublisher) Close() error { return nil }

// Events returns a copy of everything emitted so far.
func (p *MemoryPublisher) List() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
