package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"caseflow/internal/wizard/model"
)

// Redis implements Store on a shared Redis instance. The key TTL mirrors the
// 24h snapshot window so abandoned slots evict themselves; Load still checks
// SavedAt because the TTL is advisory, not the source of truth.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    clock
}

// NewRedis creates a Redis-backed snapshot store. A non-positive ttl falls
// back to the resume window.
func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = model.MaxSnapshotAge
	}
	return &Redis{client: client, ttl: ttl, now: time.Now}
}

func key(clientID string) string {
	return KeyPrefix + clientID
}

// Load returns the client's snapshot, deleting the key when it holds expired,
// non-resumable, or corrupt data.
func (s *Redis) Load(ctx context.Context, clientID string) (*model.PersistedSnapshot, error) {
	raw, err := s.client.Get(ctx, key(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	snap, err := model.DecodeSnapshot(raw, s.now())
	if err != nil {
		_ = s.Clear(ctx, clientID)
		return nil, nil
	}
	return snap, nil
}

// Save writes the resumable subset of state with the snapshot TTL;
// non-resumable steps are a no-op.
func (s *Redis) Save(ctx context.Context, clientID string, state model.ApplicationState) error {
	if !state.Step.IsResumable() {
		return nil
	}
	raw, err := model.EncodeSnapshot(model.SnapshotOf(state, s.now()))
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(clientID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Clear removes the client's key.
func (s *Redis) Clear(ctx context.Context, clientID string) error {
	if err := s.client.Del(ctx, key(clientID)).Err(); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
