package integrity

import (
	"context"
	"errors"
	"sync"

	"menu-sync/core/auditlog"
	"menu-sync/core/settings"
	"menu-sync/core/storage"
	"menu-sync/core/tenant/gormstore"
	"menu-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	folders []string
	db      *gorm.DB
	models  []any
	logger  *zap.Logger
}

// DefaultModels returns every table the service owns or reads.
func DefaultModels() []any {
	return append([]any{&auditlog.Record{}, &settings.Row{}}, gormstore.Models()...)
}

// NewService creates a new integrity service. With no models, DefaultModels is checked.
func NewService(client storage.Client, bucket string, folders []string, db *gorm.DB, logger *zap.Logger, models ...any) *Service {
	if len(models) == 0 {
		models = DefaultModels()
	}
	return &Service{
		client:  client,
		bucket:  bucket,
		folders: folders,
		db:      db,
		models:  models,
		logger:  logger,
	}
}

// ErrNoStorage is returned by the structure checks when no object storage is configured.
var ErrNoStorage = errors.New("object storage is not configured")

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema compares the database against the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.models...)
}

// RunAll runs every check concurrently. A failing check is reported under its
// own key and does not stop the others.
func (s *Service) RunAll(ctx context.Context) map[string]any {
	var mu sync.Mutex
	report := make(map[string]any, 2)
	set := func(key string, value any) {
		mu.Lock()
		report[key] = value
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		missing, err := s.CheckStructure(gctx)
		if err != nil {
			set("structure", map[string]any{"status": "error", "error": err.Error()})
			return nil
		}
		set("structure", map[string]any{"status": "ok", "missing": missing})
		return nil
	})
	g.Go(func() error {
		schema, err := s.CheckSchema()
		if err != nil {
			set("schema", map[string]any{"status": "error", "error": err.Error()})
			return nil
		}
		set("schema", schema)
		return nil
	})
	_ = g.Wait()

	return report
}
