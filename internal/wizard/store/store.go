// Package store persists in-progress wizard snapshots across reloads.
//
// Load applies the resume rules (24h expiry, resumable steps only, legacy
// step translation) and never surfaces corrupt data: a bad slot is cleared
// and reported as absent. Save refuses non-resumable steps. The orchestrator,
// not the store, enforces deep-link-beats-snapshot ordering at boot.
package store

import (
	"context"
	"time"

	"caseflow/internal/wizard/model"
)

// KeyPrefix namespaces every persisted slot.
const KeyPrefix = "caseflow:snapshot:v2:"

// Store is the persistence contract consumed by the wizard service. One slot
// per client.
type Store interface {
	// Load returns the resumable snapshot for the client, or nil when the
	// slot is empty, expired, non-resumable, or corrupt. Only infrastructure
	// failures (e.g. Redis unreachable) surface as errors.
	Load(ctx context.Context, clientID string) (*model.PersistedSnapshot, error)

	// Save writes the resumable subset of state. No-op when the step is not
	// a resumable point (landing, results).
	Save(ctx context.Context, clientID string, state model.ApplicationState) error

	// Clear removes the slot. Clearing an absent slot is not an error.
	Clear(ctx context.Context, clientID string) error
}

// clock lets tests pin time; production code uses time.Now.
type clock func() time.Time
