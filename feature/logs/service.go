package logs

import (
	"context"
	"time"

	"menu-sync/core/auditlog"

	"go.uber.org/zap"
)

// MaxPerPage caps the page size accepted from clients.
const MaxPerPage = 200

// Page is one page of audit records.
type Page struct {
	Logs       []auditlog.Record `json:"logs"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// Query is a paged log search as received from clients.
type Query struct {
	auditlog.Filter
	Page    int
	PerPage int
}

// Service reads and prunes the audit log.
type Service struct {
	log    *auditlog.Log
	logger *zap.Logger
}

// NewService creates a new log service.
func NewService(log *auditlog.Log, logger *zap.Logger) *Service {
	return &Service{log: log, logger: logger}
}

// List returns one page of records matching q.
func (s *Service) List(ctx context.Context, q Query) (*Page, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = auditlog.DefaultLimit
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	q.Limit = q.PerPage
	q.Offset = (q.Page - 1) * q.PerPage

	total, err := s.log.Count(ctx, q.Filter)
	if err != nil {
		return nil, err
	}
	records, err := s.log.Query(ctx, q.Filter)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []auditlog.Record{}
	}

	return &Page{
		Logs:       records,
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: int((total + int64(q.PerPage) - 1) / int64(q.PerPage)),
	}, nil
}

// Get returns one record.
func (s *Service) Get(ctx context.Context, id int64) (*auditlog.Record, error) {
	return s.log.Get(ctx, id)
}

// Stats aggregates the records between start and end.
func (s *Service) Stats(ctx context.Context, start, end *time.Time) (auditlog.Stats, error) {
	return s.log.Statistics(ctx, auditlog.Range{Start: start, End: end})
}

// Purge deletes records older than days.
func (s *Service) Purge(ctx context.Context, days int) (int64, error) {
	n, err := s.log.PurgeOlderThan(ctx, days)
	if err == nil {
		s.logger.Info("Audit log purged", zap.Int("older_than_days", days), zap.Int64("deleted", n))
	}
	return n, err
}

// PurgeAll deletes every record.
func (s *Service) PurgeAll(ctx context.Context) (int64, error) {
	n, err := s.log.PurgeAll(ctx)
	if err == nil {
		s.logger.Warn("Audit log cleared", zap.Int64("deleted", n))
	}
	return n, err
}
