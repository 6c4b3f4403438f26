//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"caseflow/internal/wizard/model"
	"caseflow/internal/wizard/store"
	"caseflow/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.Redis
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = store.NewRedis(s.redis.Client, 0)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func makeState() model.ApplicationState {
	state := model.NewApplicationState()
	state.Step = model.StepContact
	state.SelectedCase = "medical"
	state.SelectedJurisdiction = "New York"
	state.QuestionIndex = 4
	state.Answers = model.Answers{"q1": "surgery", "q2": model.AnswerUnknown}
	state.Contact = model.Contact{Name: "Jo Doe", Email: "jo@example.com"}
	return state
}

// TestRoundTrip verifies snapshots survive Redis serialization intact.
func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, "client-1", makeState()))

	snap, err := s.store.Load(ctx, "client-1")
	s.Require().NoError(err)
	s.Require().NotNil(snap)
	s.Equal(model.StepContact, snap.Step)
	s.Equal("medical", snap.SelectedCase)
	s.Equal("New York", snap.SelectedJurisdiction)
	s.Equal(4, snap.QuestionIndex)
	s.Equal("surgery", snap.Answers["q1"])
	s.True(snap.Answers.IsUnknown("q2"))
	s.Equal("Jo Doe", snap.Contact.Name)
}

// TestKeyTTL verifies the key carries the 24h TTL.
func (s *RedisStoreSuite) TestKeyTTL() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, "client-1", makeState()))

	ttl, err := s.redis.Client.TTL(ctx, store.KeyPrefix+"client-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, 23*time.Hour)
	s.LessOrEqual(ttl, 24*time.Hour)
}

// TestClearAndIsolation verifies Clear removes only the addressed slot.
func (s *RedisStoreSuite) TestClearAndIsolation() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, "client-1", makeState()))
	s.Require().NoError(s.store.Save(ctx, "client-2", makeState()))

	s.Require().NoError(s.store.Clear(ctx, "client-1"))

	snap, err := s.store.Load(ctx, "client-1")
	s.Require().NoError(err)
	s.Nil(snap)

	snap, err = s.store.Load(ctx, "client-2")
	s.Require().NoError(err)
	s.NotNil(snap)
}

// TestCorruptPayload verifies a mangled slot reads as absent and is deleted.
func (s *RedisStoreSuite) TestCorruptPayload() {
	ctx := context.Background()

	s.Require().NoError(s.redis.Client.Set(ctx, store.KeyPrefix+"client-1", "{broken", 0).Err())

	snap, err := s.store.Load(ctx, "client-1")
	s.Require().NoError(err)
	s.Nil(snap)

	exists, err := s.redis.Client.Exists(ctx, store.KeyPrefix+"client-1").Result()
	s.Require().NoError(err)
	s.Zero(exists)
}
