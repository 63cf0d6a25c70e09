package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for sync runs.
type Metrics struct {
	// Per-target attempts
	SyncAttempts  *prometheus.CounterVec
	ApplyDuration *prometheus.HistogramVec

	// Item metrics
	ItemsSynced        prometheus.Counter
	ItemsFailed        prometheus.Counter
	DegradedReferences prometheus.Counter

	// Audit persistence
	AuditFailures prometheus.Counter

	// Run metrics
	RunsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Passing a fresh registry keeps
// tests independent of the process-wide default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SyncAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menusync_target_attempts_total",
				Help: "Sync attempts per target tenant by outcome",
			},
			[]string{"operation", "status"},
		),

		ApplyDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "menusync_apply_duration_seconds",
				Help:    "Duration of applying a menu to one target tenant",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),

		ItemsSynced: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "menusync_items_synced_total",
				Help: "Menu items materialized on target tenants",
			},
		),

		ItemsFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "menusync_items_failed_total",
				Help: "Menu items that could not be materialized",
			},
		),

		DegradedReferences: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "menusync_degraded_references_total",
				Help: "Content references downgraded to custom links",
			},
		),

		AuditFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "menusync_audit_failures_total",
				Help: "Audit records that could not be persisted",
			},
		),

		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menusync_runs_total",
				Help: "Sync runs by trigger",
			},
			[]string{"trigger"},
		),
	}
}

// NewNop returns metrics registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveApply records one target attempt.
func (m *Metrics) ObserveApply(operation, strategy string, succeeded bool, items, failed, degraded int, took time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if !succeeded {
		status = "error"
	}
	m.SyncAttempts.WithLabelValues(operation, status).Inc()
	m.ApplyDuration.WithLabelValues(strategy).Observe(took.Seconds())
	m.ItemsSynced.Add(float64(items))
	m.ItemsFailed.Add(float64(failed))
	m.DegradedReferences.Add(float64(degraded))
}

// ObserveRun records the start of a sync run.
func (m *Metrics) ObserveRun(trigger string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(trigger).Inc()
}

// ObserveAuditFailure records an audit insert that failed.
func (m *Metrics) ObserveAuditFailure() {
	if m == nil {
		return
	}
	m.AuditFailures.Inc()
}
