package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Transitions      *prometheus.CounterVec
	HistoryPushes    prometheus.Counter
	HistoryReplaces  prometheus.Counter
	SuppressedPushes prometheus.Counter
	SnapshotsSaved   prometheus.Counter
	SnapshotsResumed prometheus.Counter
	DeepLinkBoots    prometheus.Counter
	Valuations       prometheus.Counter
	Leads            *prometheus.CounterVec
	ActiveSessions   prometheus.Gauge
	RequestDuration  *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_transitions_total",
			Help: "Wizard state machine transitions by action and outcome",
		}, []string{"action", "outcome"}),
		HistoryPushes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_history_pushes_total",
			Help: "History entries pushed by the wizard engine",
		}),
		HistoryReplaces: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_history_replaces_total",
			Help: "History entries replaced in place by the wizard engine",
		}),
		SuppressedPushes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_history_suppressed_pushes_total",
			Help: "History pushes suppressed during pop-driven restorations",
		}),
		SnapshotsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_snapshots_saved_total",
			Help: "Progress snapshots written to the persistence store",
		}),
		SnapshotsResumed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_snapshots_resumed_total",
			Help: "Sessions booted from a persisted snapshot",
		}),
		DeepLinkBoots: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_deeplink_boots_total",
			Help: "Sessions booted from a deep link hash",
		}),
		Valuations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_valuations_total",
			Help: "Valuations computed on contact submission",
		}),
		Leads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_leads_total",
			Help: "Lead submissions by outcome",
		}, []string{"outcome"}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "caseflow_active_sessions",
			Help: "Wizard sessions currently held in memory",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "caseflow_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveTransition records a transition outcome. Nil-safe so tests can pass a
// nil Metrics without registering collectors.
func (m *Metrics) ObserveTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(action, outcome).Inc()
}
