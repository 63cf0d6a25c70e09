package auditlog

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule runs the retention job once a day at midnight.
const DefaultSchedule = "@daily"

// Purger is the part of the audit log the retention job needs.
type Purger interface {
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

// Retention periodically removes audit records older than the retention window.
type Retention struct {
	cron   *cron.Cron
	purger Purger
	days   int
	logger *zap.Logger
}

// NewRetention registers the purge job on schedule. An empty schedule uses DefaultSchedule.
func NewRetention(purger Purger, days int, schedule string, logger *zap.Logger) (*Retention, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if schedule == "" {
		schedule = DefaultSchedule
	}
	r := &Retention{
		cron:   cron.New(),
		purger: purger,
		days:   days,
		logger: logger,
	}
	if _, err := r.cron.AddFunc(schedule, func() {
		_, _ = r.RunOnce(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("invalid retention schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start starts the scheduler in the background.
func (r *Retention) Start() {
	r.cron.Start()
	r.logger.Info("Audit retention scheduler started", zap.Int("retention_days", r.days))
}

// Stop stops the scheduler and waits for a running purge to finish.
func (r *Retention) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("Audit retention scheduler stopped")
}

// RunOnce purges expired records immediately.
func (r *Retention) RunOnce(ctx context.Context) (int64, error) {
	deleted, err := r.purger.PurgeOlderThan(ctx, r.days)
	if err != nil {
		r.logger.Error("Audit retention purge failed", zap.Error(err))
		return 0, err
	}
	r.logger.Info("Audit retention purge completed", zap.Int64("deleted", deleted), zap.Int("retention_days", r.days))
	return deleted, nil
}
