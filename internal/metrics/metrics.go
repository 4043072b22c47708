// Package metrics exposes Prometheus collectors for the ledger service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for IntentsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeWarning  = "warning"
	OutcomeRejected = "rejected"
)

// Metrics holds the service collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	SessionsActive   prometheus.Gauge
	IntentsTotal     *prometheus.CounterVec
	AdvisorReplies   *prometheus.CounterVec
	AdvisorLatency   prometheus.Histogram
	AlertsTotal      *prometheus.CounterVec
	SessionsSwept    prometheus.Counter
	DailyResetsTotal prometheus.Counter
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "edgefinder_sessions_active",
			Help: "Sessions currently held in memory",
		}),
		IntentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgefinder_intents_total",
				Help: "Session intents processed, by outcome",
			},
			[]string{"intent", "outcome"},
		),
		AdvisorReplies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgefinder_advisor_replies_total",
				Help: "Chat replies by source (remote or local)",
			},
			[]string{"source"},
		),
		AdvisorLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "edgefinder_advisor_latency_seconds",
			Help:    "Remote advisory call latency, failures included",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		}),
		AlertsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgefinder_alerts_total",
				Help: "Ledger alerts raised after cooldown",
			},
			[]string{"type"},
		),
		SessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgefinder_sessions_swept_total",
			Help: "Idle sessions removed by the sweeper",
		}),
		DailyResetsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgefinder_daily_resets_total",
			Help: "Daily risk reset runs",
		}),
	}

	m.registry.MustRegister(
		m.SessionsActive,
		m.IntentsTotal,
		m.AdvisorReplies,
		m.AdvisorLatency,
		m.AlertsTotal,
		m.SessionsSwept,
		m.DailyResetsTotal,
	)
	return m
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// --- Helper methods for recording metrics ---

// RecordIntent counts one processed intent.
func (m *Metrics) RecordIntent(intent, outcome string) {
	if m == nil {
		return
	}
	m.IntentsTotal.WithLabelValues(intent, outcome).Inc()
}

// RecordReply counts a chat reply from source.
func (m *Metrics) RecordReply(source string) {
	if m == nil {
		return
	}
	m.AdvisorReplies.WithLabelValues(source).Inc()
}

// ObserveAdvisor records how long a remote call took.
func (m *Metrics) ObserveAdvisor(d time.Duration) {
	if m == nil {
		return
	}
	m.AdvisorLatency.Observe(d.Seconds())
}

// RecordAlert counts a raised alert.
func (m *Metrics) RecordAlert(alertType string) {
	if m == nil {
		return
	}
	m.AlertsTotal.WithLabelValues(alertType).Inc()
}

// SetSessions sets the active session gauge.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.SessionsActive.Set(float64(n))
}

// RecordSweep counts sessions removed by one sweep.
func (m *Metrics) RecordSweep(removed int) {
	if m == nil {
		return
	}
	m.SessionsSwept.Add(float64(removed))
}

// RecordDailyReset counts one daily reset run.
func (m *Metrics) RecordDailyReset() {
	if m == nil {
		return
	}
	m.DailyResetsTotal.Inc()
}
