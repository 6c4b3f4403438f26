//go:build integration

package lead

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"caseflow/internal/wizard/model"
	"caseflow/pkg/platform/sentinel"
	"caseflow/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	store *PostgresStore
}

func (s *PostgresStoreSuite) SetupSuite() {
	pg := containers.NewPostgresContainer(s.T())
	s.store = NewPostgresStore(pg.DB)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) sampleLead(sessionID uuid.UUID) *Lead {
	state := model.NewApplicationState()
	state.SelectedCase = "medical"
	state.SelectedJurisdiction = "New York"
	state.Language = model.LocaleES
	state.Answers.Set("permanent_harm", true)
	state.Answers.Set("weeks_off_work", model.AnswerUnknown)
	state.Contact = model.Contact{Name: "Ana Soto", Email: "ana@example.com", Phone: "5559876543", Consent: true}
	return New(sessionID, state, model.Valuation{
		Value: 117000, LowRange: 76050, HighRange: 157950,
		Factors:  []string{"permanent harm"},
		Warnings: []string{"1 answer marked unknown"},
	}, "Safari on iPhone")
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	sessionID := uuid.New()
	l := s.sampleLead(sessionID)

	s.Require().NoError(s.store.Save(ctx, l))

	got, err := s.store.FindByID(ctx, l.ID)
	s.Require().NoError(err)
	s.Equal(l.SessionID, got.SessionID)
	s.Equal(l.CaseID, got.CaseID)
	s.Equal(l.Jurisdiction, got.Jurisdiction)
	s.Equal(model.LocaleES, got.Language)
	s.Equal(model.AnswerUnknown, got.Answers["weeks_off_work"])
	s.Equal(l.Valuation.Factors, got.Valuation.Factors)
}

func (s *PostgresStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), uuid.New())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListBySession() {
	ctx := context.Background()
	sessionID := uuid.New()

	s.Require().NoError(s.store.Save(ctx, s.sampleLead(sessionID)))
	s.Require().NoError(s.store.Save(ctx, s.sampleLead(sessionID)))
	s.Require().NoError(s.store.Save(ctx, s.sampleLead(uuid.New())))

	got, err := s.store.ListBySession(ctx, sessionID)
	s.Require().NoError(err)
	s.Len(got, 2)
}
