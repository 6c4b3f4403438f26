package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"caseflow/internal/platform/metrics"
)

func TestMetricsObservesRouteLatency(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/wizard/sessions/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/wizard/sessions/abc", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	// One labeled series: the route pattern plus the status.
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}
