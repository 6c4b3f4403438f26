package lead

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"caseflow/internal/wizard/model"
	"caseflow/pkg/platform/circuit"
	"caseflow/pkg/platform/sentinel"
)

type SubmitterSuite struct {
	suite.Suite
}

func TestSubmitterSuite(t *testing.T) {
	suite.Run(t, new(SubmitterSuite))
}

func (s *SubmitterSuite) sampleLead() *Lead {
	state := model.NewApplicationState()
	state.SelectedCase = "motor"
	state.Contact = model.Contact{Name: "Dana Ruiz", Email: "dana@example.com", Phone: "5551234567", Consent: true}
	return New(uuid.New(), state, model.Valuation{Value: 21600}, "")
}

func (s *SubmitterSuite) TestSubmitPostsJSON() {
	var gotContentType atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType.Store(r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 0, nil)
	s.Require().NoError(sub.Submit(context.Background(), s.sampleLead()))
	s.Equal("application/json", gotContentType.Load())
}

func (s *SubmitterSuite) TestNonOKStatusIsUnavailable() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 0, nil)
	err := sub.Submit(context.Background(), s.sampleLead())
	s.Require().ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *SubmitterSuite) TestCircuitOpensAfterRepeatedFailures() {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 0, nil)
	for range 5 {
		s.Require().Error(sub.Submit(context.Background(), s.sampleLead()))
	}
	before := calls.Load()

	// Circuit is open: the next submit fails fast without hitting the wire.
	err := sub.Submit(context.Background(), s.sampleLead())
	s.Require().ErrorIs(err, sentinel.ErrUnavailable)
	s.Equal(before, calls.Load())
}

func (s *SubmitterSuite) TestCircuitClosesOnceEndpointRecovers() {
	var healthy atomic.Bool
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if healthy.Load() {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sub := NewHTTPSubmitter(srv.URL, 0, nil)
	sub.breaker = circuit.New("lead-intake",
		circuit.WithFailureThreshold(5),
		circuit.WithSuccessThreshold(2),
		circuit.WithOpenTimeout(time.Millisecond),
	)

	for range 5 {
		s.Require().Error(sub.Submit(context.Background(), s.sampleLead()))
	}
	s.Require().True(sub.breaker.IsOpen())
	wireCalls := calls.Load()

	healthy.Store(true)

	// Probes go out once per window; successful probes close the circuit.
	s.Require().Eventually(func() bool {
		return sub.Submit(context.Background(), s.sampleLead()) == nil && !sub.breaker.IsOpen()
	}, 2*time.Second, 5*time.Millisecond)
	s.Greater(calls.Load(), wireCalls)

	s.Require().NoError(sub.Submit(context.Background(), s.sampleLead()))
}
