package lead

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"caseflow/pkg/platform/sentinel"
)

// Store records accepted leads.
type Store interface {
	Save(ctx context.Context, l *Lead) error
	FindByID(ctx context.Context, id uuid.UUID) (*Lead, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Lead, error)
}

// InMemoryStore implements Store with a mutex-guarded map. Used when Postgres
// is not configured and as the test double.
type InMemoryStore struct {
	mu    sync.RWMutex
	leads map[uuid.UUID]*Lead
}

// NewInMemoryStore creates an empty lead store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{leads: make(map[uuid.UUID]*Lead)}
}

// Save records the lead.
func (s *InMemoryStore) Save(ctx context.Context, l *Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *l
	copied.Answers = l.Answers.Clone()
	s.leads[l.ID] = &copied
	return nil
}

// FindByID returns the lead or sentinel.ErrNotFound.
func (s *InMemoryStore) FindByID(ctx context.Context, id uuid.UUID) (*Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leads[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *l
	copied.Answers = l.Answers.Clone()
	return &copied, nil
}

// ListBySession returns every lead recorded for a session.
func (s *InMemoryStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Lead
	for _, l := range s.leads {
		if l.SessionID == sessionID {
			copied := *l
			copied.Answers = l.Answers.Clone()
			out = append(out, &copied)
		}
	}
	return out, nil
}
