package auditlog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultRetentionDays is used by PurgeOlderThan when it receives a non-positive day count.
const DefaultRetentionDays = 30

// ErrNotFound is returned by Get for unknown ids.
var ErrNotFound = errors.New("audit record not found")

// Stats summarizes audit records over a time range.
type Stats struct {
	Total       int64   `json:"total"`
	Succeeded   int64   `json:"succeeded"`
	Failed      int64   `json:"failed"`
	ItemsSynced int64   `json:"items_synced"`
	SuccessRate float64 `json:"success_rate"`
}

// Log is the single writer of the audit table.
type Log struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// New creates an audit log over db.
func New(db *gorm.DB, logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{db: db, logger: logger, now: time.Now}
}

// Migrate creates or updates the audit table.
func (l *Log) Migrate(ctx context.Context) error {
	return l.db.WithContext(ctx).AutoMigrate(&Record{})
}

// Append persists rec and returns its id. It never returns an error: a record missing source,
// target, menu or status is rejected, and storage failures are only logged, so callers can
// keep syncing when auditing is broken.
func (l *Log) Append(ctx context.Context, rec Record) (int64, bool) {
	if rec.SourceTenantID <= 0 || rec.TargetTenantID <= 0 || rec.MenuID <= 0 || rec.Status == "" {
		l.logger.Warn("Rejected incomplete audit record",
			zap.Int64("source_tenant_id", rec.SourceTenantID),
			zap.Int64("target_tenant_id", rec.TargetTenantID),
			zap.Int64("menu_id", rec.MenuID),
			zap.String("status", rec.Status),
		)
		return 0, false
	}
	rec.ID = 0
	if rec.Timestamp.IsZero() {
		rec.Timestamp = l.now()
	}
	rec.Timestamp = rec.Timestamp.UTC()
	if rec.Operation == "" {
		rec.Operation = OperationSync
	}

	if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
		l.logger.Error("Failed to write audit record",
			zap.Int64("source_tenant_id", rec.SourceTenantID),
			zap.Int64("target_tenant_id", rec.TargetTenantID),
			zap.Int64("menu_id", rec.MenuID),
			zap.Error(err),
		)
		return 0, false
	}
	return rec.ID, true
}

// Get returns the record with id.
func (l *Log) Get(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	if err := l.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("record %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read audit record %d: %w", id, err)
	}
	return &rec, nil
}

// Query returns one page of records matching f, newest first unless f says otherwise.
func (l *Log) Query(ctx context.Context, f Filter) ([]Record, error) {
	var out []Record
	q := f.apply(l.db.WithContext(ctx).Model(&Record{}))
	err := q.Order(f.orderClause()).Limit(f.limit()).Offset(f.offset()).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	return out, nil
}

// Count returns how many records match f. Paging fields are ignored.
func (l *Log) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	if err := f.apply(l.db.WithContext(ctx).Model(&Record{})).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count audit records: %w", err)
	}
	return total, nil
}

// Statistics aggregates the records inside r.
func (l *Log) Statistics(ctx context.Context, r Range) (Stats, error) {
	var row struct {
		Total       int64
		Succeeded   int64
		Failed      int64
		ItemsSynced int64
	}
	q := r.apply(l.db.WithContext(ctx).Model(&Record{}))
	err := q.Select(
		"COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS succeeded, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS failed, "+
			"COALESCE(SUM(items_synced), 0) AS items_synced",
		StatusSuccess, StatusError,
	).Scan(&row).Error
	if err != nil {
		return Stats{}, fmt.Errorf("failed to compute audit statistics: %w", err)
	}

	stats := Stats{
		Total:       row.Total,
		Succeeded:   row.Succeeded,
		Failed:      row.Failed,
		ItemsSynced: row.ItemsSynced,
	}
	stats.SuccessRate = SuccessRate(row.Succeeded, row.Total)
	return stats, nil
}

// SuccessRate returns succeeded/total as a percentage rounded to two decimals, or 0 without data.
func SuccessRate(succeeded, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(succeeded)/float64(total)*100*100) / 100
}

// PurgeOlderThan deletes records older than days and returns how many were removed.
func (l *Log) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days < 1 {
		days = DefaultRetentionDays
	}
	cutoff := l.now().UTC().AddDate(0, 0, -days)
	res := l.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&Record{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge audit records: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// PurgeAll deletes every record and returns how many were removed.
func (l *Log) PurgeAll(ctx context.Context) (int64, error) {
	res := l.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge audit records: %w", res.Error)
	}
	return res.RowsAffected, nil
}
