// Package metrics exposes Prometheus collectors for menu synchronization: attempts per target by
// outcome, apply latency per conflict strategy, item and degraded-reference counts, and audit
// persistence failures. The start command serves them on /metrics.
package metrics
