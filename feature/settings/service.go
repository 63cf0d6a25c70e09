package settings

import (
	"context"
	"fmt"

	syncsettings "menu-sync/core/settings"
	"menu-sync/core/tenant"

	"go.uber.org/zap"
)

// Service reads and updates the persisted sync settings.
type Service struct {
	store  *syncsettings.Store
	dir    tenant.Directory
	logger *zap.Logger
}

// NewService creates a new settings service.
func NewService(store *syncsettings.Store, dir tenant.Directory, logger *zap.Logger) *Service {
	return &Service{store: store, dir: dir, logger: logger}
}

// Get returns the current settings.
func (s *Service) Get(ctx context.Context) (syncsettings.Settings, error) {
	return s.store.Load(ctx)
}

// Update applies change to the current settings and saves the result. change typically decodes a
// partial document over the current value.
func (s *Service) Update(ctx context.Context, change func(*syncsettings.Settings) error) (syncsettings.Settings, error) {
	current, err := s.store.Load(ctx)
	if err != nil {
		return syncsettings.Settings{}, err
	}
	if err := change(&current); err != nil {
		return syncsettings.Settings{}, err
	}
	saved, err := s.store.Save(ctx, current)
	if err != nil {
		return syncsettings.Settings{}, err
	}
	s.logger.Info("Sync settings updated",
		zap.Int64("source_tenant_id", saved.SourceTenantID),
		zap.Int64s("target_tenant_ids", saved.TargetTenantIDs),
		zap.String("sync_mode", string(saved.SyncMode)),
		zap.String("conflict_strategy", string(saved.ConflictStrategy)),
		zap.Bool("enabled", saved.Enabled),
	)
	return saved, nil
}

// Reset restores the configured defaults.
func (s *Service) Reset(ctx context.Context) (syncsettings.Settings, error) {
	st, err := s.store.Reset(ctx)
	if err == nil {
		s.logger.Info("Sync settings reset")
	}
	return st, err
}

// Tenants lists the tenants that can be picked as source or target.
func (s *Service) Tenants(ctx context.Context) ([]tenant.Info, error) {
	tenants, err := s.dir.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}
