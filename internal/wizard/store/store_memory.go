package store

import (
	"context"
	"sync"
	"time"

	"caseflow/internal/wizard/model"
)

// InMemory implements Store with a mutex-guarded map. Used when Redis is not
// configured and as the test double. Slots hold encoded bytes so the decode
// path (legacy steps, corruption handling) matches the Redis implementation.
type InMemory struct {
	mu    sync.RWMutex
	slots map[string][]byte
	now   clock
}

// NewInMemory creates an empty in-memory snapshot store.
func NewInMemory() *InMemory {
	return &InMemory{
		slots: make(map[string][]byte),
		now:   time.Now,
	}
}

// NewInMemoryWithClock creates a store with a pinned clock for expiry tests.
func NewInMemoryWithClock(now clock) *InMemory {
	s := NewInMemory()
	s.now = now
	return s
}

// Load returns the client's snapshot, clearing the slot when it holds
// expired, non-resumable, or corrupt data.
func (s *InMemory) Load(ctx context.Context, clientID string) (*model.PersistedSnapshot, error) {
	s.mu.RLock()
	raw, ok := s.slots[clientID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	snap, err := model.DecodeSnapshot(raw, s.now())
	if err != nil {
		_ = s.Clear(ctx, clientID)
		return nil, nil
	}
	return snap, nil
}

// Save writes the resumable subset of state; non-resumable steps are a no-op.
func (s *InMemory) Save(ctx context.Context, clientID string, state model.ApplicationState) error {
	if !state.Step.IsResumable() {
		return nil
	}
	raw, err := model.EncodeSnapshot(model.SnapshotOf(state, s.now()))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[clientID] = raw
	return nil
}

// Clear removes the client's slot.
func (s *InMemory) Clear(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, clientID)
	return nil
}

// put injects raw bytes, bypassing Save's rules. Test hook for corrupt and
// legacy payloads.
func (s *InMemory) put(clientID string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[clientID] = raw
}
