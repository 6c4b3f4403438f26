package lead

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"caseflow/internal/wizard/model"
	"caseflow/pkg/platform/sentinel"
)

// PostgresStore implements Store on database/sql. Answers and the valuation
// are stored as JSONB; everything searchable gets its own column.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed lead store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the leads table when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS leads (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			case_id TEXT NOT NULL,
			jurisdiction TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT 'en',
			answers JSONB NOT NULL DEFAULT '{}',
			valuation JSONB NOT NULL DEFAULT '{}',
			device TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS leads_session_id_idx ON leads (session_id);
	`)
	if err != nil {
		return fmt.Errorf("migrate leads: %w", err)
	}
	return nil
}

// Save records the lead.
func (s *PostgresStore) Save(ctx context.Context, l *Lead) error {
	answers, err := json.Marshal(l.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	valuation, err := json.Marshal(l.Valuation)
	if err != nil {
		return fmt.Errorf("encode valuation: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO leads (id, session_id, name, email, phone, case_id, jurisdiction, language, answers, valuation, device, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		l.ID, l.SessionID, l.Name, l.Email, l.Phone, l.CaseID, l.Jurisdiction, string(l.Language),
		answers, valuation, l.Device, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// FindByID returns the lead or sentinel.ErrNotFound.
func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*Lead, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, name, email, phone, case_id, jurisdiction, language, answers, valuation, device, created_at
		FROM leads WHERE id = $1`, id)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return l, err
}

// ListBySession returns every lead recorded for a session, oldest first.
func (s *PostgresStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, name, email, phone, case_id, jurisdiction, language, answers, valuation, device, created_at
		FROM leads WHERE session_id = $1 ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []*Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(row scanner) (*Lead, error) {
	var l Lead
	var language string
	var answers, valuation []byte
	err := row.Scan(&l.ID, &l.SessionID, &l.Name, &l.Email, &l.Phone, &l.CaseID, &l.Jurisdiction,
		&language, &answers, &valuation, &l.Device, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(answers, &l.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if err := json.Unmarshal(valuation, &l.Valuation); err != nil {
		return nil, fmt.Errorf("decode valuation: %w", err)
	}
	l.Language = model.ParseLocale(language)
	return &l, nil
}
