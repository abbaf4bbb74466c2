// Package metrics exposes Prometheus instrumentation for the goals API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom buckets for latency histograms (seconds).
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithRegistry registers metrics on r instead of a fresh registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(m *Manager) {
		m.runtime = true
	}
}

// Manager owns the registry and every collector the service records to.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry
	runtime   bool

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	matchesComputed   prometheus.Counter
	matchCandidates   prometheus.Histogram
	connectionsSent   prometheus.Counter
	goalsCompleted    *prometheus.CounterVec
	rankingRecomputes prometheus.Counter
	evidenceUploads   *prometheus.CounterVec
	evidenceBytes     prometheus.Histogram
}

// NewManager creates a Manager with its own registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "goals",
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	if m.runtime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method",
		Buckets:   m.buckets,
	}, []string{"route", "method"})

	m.matchesComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "rankings_computed_total",
		Help:      "Match lists computed for users",
	})

	m.matchCandidates = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "candidates",
		Help:      "Number of candidate profiles scored per match list",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	m.connectionsSent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "connection_requests_total",
		Help:      "Connection requests sent between matched users",
	})

	m.goalsCompleted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "goals",
		Name:      "weekly_completed_total",
		Help:      "Weekly goals marked completed, by category",
	}, []string{"category"})

	m.rankingRecomputes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "rankings",
		Name:      "recomputes_total",
		Help:      "Ranking score recomputations triggered by goal completion changes",
	})

	m.evidenceUploads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "evidence",
		Name:      "uploads_total",
		Help:      "Evidence uploads by outcome",
	}, []string{"outcome"})

	m.evidenceBytes = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "evidence",
		Name:      "stored_bytes",
		Help:      "Size of stored evidence images after compression",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 8),
	})
}

// Registry exposes the underlying registry (tests gather from it).
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (m *Manager) RecordMatchRanking(candidates int) {
	if m == nil {
		return
	}
	m.matchesComputed.Inc()
	m.matchCandidates.Observe(float64(candidates))
}

func (m *Manager) RecordConnectionRequest() {
	if m == nil {
		return
	}
	m.connectionsSent.Inc()
}

func (m *Manager) RecordGoalCompleted(category string) {
	if m == nil {
		return
	}
	m.goalsCompleted.WithLabelValues(category).Inc()
}

func (m *Manager) RecordRankingRecompute() {
	if m == nil {
		return
	}
	m.rankingRecomputes.Inc()
}

// Evidence upload outcomes.
const (
	OutcomeStored   = "stored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeLimited  = "limited"
)

func (m *Manager) RecordEvidenceUpload(outcome string, storedBytes int) {
	if m == nil {
		return
	}
	m.evidenceUploads.WithLabelValues(outcome).Inc()
	if outcome == OutcomeStored {
		m.evidenceBytes.Observe(float64(storedBytes))
	}
}
