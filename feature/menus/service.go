package menus

import (
	"context"
	"errors"
	"fmt"

	"menu-sync/core/auditlog"
	"menu-sync/core/menusync"
	"menu-sync/core/settings"
	"menu-sync/core/storage"
	"menu-sync/core/tenant"
	"menu-sync/core/utils"

	"go.uber.org/zap"
)

// ErrDisabled is returned by every write operation while synchronization is switched off.
var ErrDisabled = errors.New("menu synchronization is disabled")

// SettingsLoader reads the current sync settings.
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// Service exposes the sync engine to the HTTP and CLI surfaces, filling request gaps from the
// persisted settings.
type Service struct {
	engine   *menusync.Engine
	settings SettingsLoader
	platform tenant.Platform
	snaps    *Snapshots
	logger   *zap.Logger
}

// NewService creates a new menu sync service. client may be nil, which disables snapshots.
func NewService(engine *menusync.Engine, st SettingsLoader, platform tenant.Platform, client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	s := &Service{
		engine:   engine,
		settings: st,
		platform: platform,
		logger:   logger,
	}
	if client != nil {
		s.snaps = NewSnapshots(client, bucket, prefix)
	}
	return s
}

// SyncInput is a manual sync request. Zero values fall back to the settings.
type SyncInput struct {
	MenuID          int64             `json:"menu_id"`
	TargetTenantIDs []int64           `json:"target_tenant_ids,omitempty"`
	Strategy        menusync.Strategy `json:"conflict_strategy,omitempty"`
	ActorID         int64             `json:"-"`
}

// SyncAllResult maps every menu of the source to the result of its run.
type SyncAllResult struct {
	Results map[int64]*menusync.SyncResult `json:"results"`
	// Errors holds menus whose run did not start, keyed by menu id.
	Errors map[int64]string `json:"errors"`
}

func (s *Service) enabledSettings(ctx context.Context) (settings.Settings, error) {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !st.Enabled {
		return settings.Settings{}, ErrDisabled
	}
	return st, nil
}

func (s *Service) request(st settings.Settings, in SyncInput, operation string) menusync.SyncRequest {
	targets := in.TargetTenantIDs
	if len(targets) == 0 {
		targets = st.TargetTenantIDs
	}
	opts := st.Options()
	if in.Strategy != "" {
		opts.ConflictStrategy = in.Strategy
	}
	return menusync.SyncRequest{
		SourceTenantID:  st.SourceTenantID,
		MenuID:          in.MenuID,
		TargetTenantIDs: targets,
		Options:         opts,
		ActorID:         in.ActorID,
		Operation:       operation,
	}
}

// Sync runs one menu of the configured source tenant against the requested targets, or the
// configured targets when none are given.
func (s *Service) Sync(ctx context.Context, in SyncInput) (*menusync.SyncResult, error) {
	st, err := s.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.SyncMenu(ctx, s.request(st, in, auditlog.OperationSync))
}

// SyncAll syncs every menu of the source tenant, one after the other. A menu that cannot be
// synced is reported and the loop moves on.
func (s *Service) SyncAll(ctx context.Context, in SyncInput) (*SyncAllResult, error) {
	st, err := s.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}
	menus, err := s.ListMenus(ctx, st.SourceTenantID)
	if err != nil {
		return nil, err
	}

	out := &SyncAllResult{
		Results: make(map[int64]*menusync.SyncResult, len(menus)),
		Errors:  make(map[int64]string),
	}
	for _, m := range menus {
		in.MenuID = m.ID
		res, err := s.engine.SyncMenu(ctx, s.request(st, in, auditlog.OperationSync))
		if err != nil {
			s.logger.Warn("Menu sync did not start", zap.Int64("menu_id", m.ID), zap.Error(err))
			out.Errors[m.ID] = err.Error()
			continue
		}
		out.Results[m.ID] = res
	}
	return out, nil
}

// MenuUpdated handles a "menu updated" event. It returns nil, nil when the settings do not ask
// for an automatic sync of tenantID.
func (s *Service) MenuUpdated(ctx context.Context, tenantID, menuID int64) (*menusync.SyncResult, error) {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !st.AutoSyncEnabled(tenantID) {
		s.logger.Debug("Auto sync not applicable", zap.Int64("tenant_id", tenantID), zap.Int64("menu_id", menuID))
		return nil, nil
	}
	return s.engine.SyncMenu(ctx, s.request(st, SyncInput{MenuID: menuID}, auditlog.OperationAutoSync))
}

// ListMenus lists the menus of tenantID, or of the source tenant when tenantID is 0.
func (s *Service) ListMenus(ctx context.Context, tenantID int64) ([]tenant.Tree, error) {
	if tenantID == 0 {
		st, err := s.settings.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		tenantID = st.SourceTenantID
	}
	scope, err := s.platform.Enter(ctx, tenantID)
	if errors.Is(err, tenant.ErrTenantNotFound) {
		return nil, &menusync.NotFoundError{ID: tenantID, Err: menusync.ErrSourceNotFound}
	}
	if err != nil {
		return nil, err
	}
	defer scope.Leave()

	trees, err := scope.Trees().ListTrees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus of tenant %d: %w", tenantID, err)
	}
	return trees, nil
}

// Extract returns the portable form of menuID, read from tenantID or the source tenant.
func (s *Service) Extract(ctx context.Context, tenantID, menuID int64) (*menusync.PortableMenu, error) {
	if tenantID == 0 {
		st, err := s.settings.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		tenantID = st.SourceTenantID
	}
	return s.engine.ExtractMenu(ctx, tenantID, menuID)
}

// ApplyInput applies a portable menu to one target. A nil Options uses the settings.
type ApplyInput struct {
	Menu           *menusync.PortableMenu `json:"menu"`
	TargetTenantID int64                  `json:"target_tenant_id"`
	Options        *menusync.Options      `json:"options,omitempty"`
	ActorID        int64                  `json:"-"`
}

// Apply applies in.Menu to one target tenant.
func (s *Service) Apply(ctx context.Context, in ApplyInput) (menusync.SyncOutcome, error) {
	st, err := s.enabledSettings(ctx)
	if err != nil {
		return menusync.SyncOutcome{}, err
	}
	return s.apply(ctx, st, in, auditlog.OperationApply)
}

func (s *Service) apply(ctx context.Context, st settings.Settings, in ApplyInput, operation string) (menusync.SyncOutcome, error) {
	opts := st.Options()
	if in.Options != nil {
		opts = *in.Options
	}
	return s.engine.ApplyMenu(ctx, menusync.ApplyRequest{
		Menu:           in.Menu,
		TargetTenantID: in.TargetTenantID,
		Options:        opts,
		ActorID:        in.ActorID,
		Operation:      operation,
	})
}

// ExportSnapshot extracts menuID and stores it in object storage.
func (s *Service) ExportSnapshot(ctx context.Context, tenantID, menuID int64, format string) (SnapshotInfo, error) {
	if s.snaps == nil {
		return SnapshotInfo{}, ErrSnapshotsDisabled
	}
	menu, err := s.Extract(ctx, tenantID, menuID)
	if err != nil {
		return SnapshotInfo{}, err
	}
	info, err := s.snaps.Save(ctx, menu, format)
	if err != nil {
		return SnapshotInfo{}, err
	}
	s.logger.Info("Snapshot exported",
		zap.String("key", info.Key),
		zap.Int64("menu_id", menuID),
		zap.Int("items", len(menu.Items)),
	)
	return info, nil
}

// ListSnapshots lists stored snapshots, newest first.
func (s *Service) ListSnapshots(ctx context.Context, slug string) ([]SnapshotInfo, error) {
	if s.snaps == nil {
		return nil, ErrSnapshotsDisabled
	}
	return s.snaps.List(ctx, slug)
}

// DeleteSnapshot removes a stored snapshot.
func (s *Service) DeleteSnapshot(ctx context.Context, key string) error {
	if s.snaps == nil {
		return ErrSnapshotsDisabled
	}
	if err := s.snaps.Delete(ctx, key); err != nil {
		return err
	}
	s.logger.Info("Snapshot deleted", zap.String("key", key))
	return nil
}

// ImportInput applies a stored snapshot to targets. Empty targets use the settings.
type ImportInput struct {
	Key             string            `json:"key"`
	TargetTenantIDs []int64           `json:"target_tenant_ids,omitempty"`
	Options         *menusync.Options `json:"options,omitempty"`
	ActorID         int64             `json:"-"`
}

// ImportSnapshot downloads a snapshot and applies it to every target in order. Like a sync run,
// a failing target does not stop the others. Unlike a sync run, the snapshot's own source tenant
// is a valid target, which restores the menu there.
func (s *Service) ImportSnapshot(ctx context.Context, in ImportInput) (*menusync.SyncResult, error) {
	if s.snaps == nil {
		return nil, ErrSnapshotsDisabled
	}
	st, err := s.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}
	menu, err := s.snaps.Load(ctx, in.Key)
	if err != nil {
		return nil, err
	}

	targets := in.TargetTenantIDs
	if len(targets) == 0 {
		targets = st.TargetTenantIDs
	}
	if len(targets) == 0 {
		return nil, &menusync.ValidationError{Field: "target_tenant_ids", Reason: "at least one target is required"}
	}

	result := &menusync.SyncResult{
		Success: make(map[int64]menusync.SyncOutcome),
		Failed:  make(map[int64]string),
	}
	for _, targetID := range utils.UniqueIDs(targets) {
		if targetID <= 0 {
			continue
		}

		outcome, err := s.apply(ctx, st, ApplyInput{
			Menu:           menu,
			TargetTenantID: targetID,
			Options:        in.Options,
			ActorID:        in.ActorID,
		}, auditlog.OperationImport)
		if err != nil {
			// Only input validation fails here, and it fails the same way for every target.
			return nil, err
		}
		if outcome.Succeeded {
			result.Success[targetID] = outcome
		} else {
			result.Failed[targetID] = outcome.ErrorMessage
		}
	}

	s.logger.Info("Snapshot imported",
		zap.String("key", in.Key),
		zap.Int("succeeded", len(result.Success)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}
