package settings

import (
	"fmt"

	"menu-sync/core/menusync"
	"menu-sync/core/utils"
)

// Config is the "sync" configuration section. The settings fields only seed the store until the
// first save; the remaining fields are read at startup.
type Config struct {
	// SourceTenantID is the tenant whose menus are authoritative.
	SourceTenantID int64 `mapstructure:"source_tenant_id" default:"1"`
	// TargetTenantIDs is a comma separated list of tenant ids (e.g. "2,3,5").
	TargetTenantIDs string `mapstructure:"target_tenant_ids" default:""`
	// Mode is "auto" or "manual".
	Mode string `mapstructure:"mode" default:"manual"`
	// ConflictStrategy is "override", "skip" or "merge".
	ConflictStrategy     string `mapstructure:"conflict_strategy" default:"override"`
	SyncDisplaySlots     bool   `mapstructure:"sync_display_slots" default:"true"`
	PreserveCustomFields bool   `mapstructure:"preserve_custom_fields" default:"true"`
	Enabled              bool   `mapstructure:"enabled" default:"true"`

	// LogRetentionDays is how long audit records are kept.
	LogRetentionDays int `mapstructure:"log_retention_days" default:"30"`
	// RetentionSchedule is the cron expression of the retention job.
	RetentionSchedule string `mapstructure:"retention_schedule" default:"@daily"`
	// SnapshotPrefix is the object storage folder holding exported menus.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"snapshots"`
}

// Seed converts the configuration into the settings used before the first save.
func (c Config) Seed() (Settings, error) {
	targets, err := utils.ParseIDList(c.TargetTenantIDs)
	if err != nil {
		return Settings{}, fmt.Errorf("sync.target_tenant_ids: %w", err)
	}
	return Settings{
		SourceTenantID:       c.SourceTenantID,
		TargetTenantIDs:      targets,
		SyncMode:             Mode(c.Mode),
		ConflictStrategy:     menusync.Strategy(c.ConflictStrategy),
		SyncDisplaySlots:     c.SyncDisplaySlots,
		PreserveCustomFields: c.PreserveCustomFields,
		Enabled:              c.Enabled,
	}.Normalize(), nil
}
