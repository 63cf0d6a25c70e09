package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveApply(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveApply("sync", "override", true, 3, 1, 2, 10*time.Millisecond)
	m.ObserveApply("sync", "skip", false, 0, 0, 0, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncAttempts.WithLabelValues("sync", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncAttempts.WithLabelValues("sync", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ItemsSynced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ItemsFailed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DegradedReferences))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveApply("sync", "override", true, 1, 0, 0, time.Second)
		m.ObserveRun("manual")
		m.ObserveAuditFailure()
	})
}

func TestObserveRun(t *testing.T) {
	m := NewNop()
	m.ObserveRun("auto")
	m.ObserveRun("auto")
	m.ObserveAuditFailure()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("auto")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditFailures))
}
