package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	requests          *prometheus.CounterVec
	latency           *prometheus.HistogramVec
	attempts          *prometheus.CounterVec
	difficultyChanges *prometheus.CounterVec
	sessionsStarted   *prometheus.CounterVec
	sessionsEnded     prometheus.Counter
	tips              *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathpath_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mathpath_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathpath_attempts_total",
			Help: "Recorded attempts by outcome.",
		}, []string{"outcome"}),
		difficultyChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathpath_difficulty_changes_total",
			Help: "Recommended difficulty changes by direction and rule source.",
		}, []string{"direction", "source"}),
		sessionsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathpath_sessions_started_total",
			Help: "Sessions started by plan source.",
		}, []string{"source"}),
		sessionsEnded: f.NewCounter(prometheus.CounterOpts{
			Name: "mathpath_sessions_ended_total",
			Help: "Sessions ended through the API.",
		}),
		tips: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathpath_tutor_tips_total",
			Help: "Tutor tips emitted by type.",
		}, []string{"type"}),
	}
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
