package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menu-sync/core/menusync"
	"menu-sync/core/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rowID is the primary key of the single settings row.
const rowID = 1

// Row is the persisted settings row.
type Row struct {
	ID                   int64      `gorm:"column:id;primaryKey"`
	SourceTenantID       int64      `gorm:"column:source_tenant_id;not null"`
	TargetTenantIDs      []int64    `gorm:"column:target_tenant_ids;type:text;serializer:json"`
	SyncMode             string     `gorm:"column:sync_mode;type:varchar(16);not null"`
	ConflictStrategy     string     `gorm:"column:conflict_strategy;type:varchar(16);not null"`
	SyncDisplaySlots     bool       `gorm:"column:sync_display_slots;not null"`
	PreserveCustomFields bool       `gorm:"column:preserve_custom_fields;not null"`
	Enabled              bool       `gorm:"column:enabled;not null"`
	LastSync             *time.Time `gorm:"column:last_sync"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (Row) TableName() string { return "menu_sync_settings" }

func toRow(s Settings) Row {
	return Row{
		ID:                   rowID,
		SourceTenantID:       s.SourceTenantID,
		TargetTenantIDs:      s.TargetTenantIDs,
		SyncMode:             string(s.SyncMode),
		ConflictStrategy:     string(s.ConflictStrategy),
		SyncDisplaySlots:     s.SyncDisplaySlots,
		PreserveCustomFields: s.PreserveCustomFields,
		Enabled:              s.Enabled,
		LastSync:             s.LastSync,
	}
}

func fromRow(r Row) Settings {
	targets := r.TargetTenantIDs
	if targets == nil {
		targets = []int64{}
	}
	return Settings{
		SourceTenantID:       r.SourceTenantID,
		TargetTenantIDs:      targets,
		SyncMode:             Mode(r.SyncMode),
		ConflictStrategy:     menusync.Strategy(r.ConflictStrategy),
		SyncDisplaySlots:     r.SyncDisplaySlots,
		PreserveCustomFields: r.PreserveCustomFields,
		Enabled:              r.Enabled,
		LastSync:             r.LastSync,
	}
}

// Store persists the settings in a single row. Until something is saved, Load returns the
// seed settings given to NewStore.
type Store struct {
	db   *gorm.DB
	dir  tenant.Directory
	seed Settings
}

// NewStore creates a store. seed is normalized; an empty strategy or mode falls back to Defaults.
func NewStore(db *gorm.DB, dir tenant.Directory, seed Settings) *Store {
	def := Defaults()
	if seed.SyncMode == "" {
		seed.SyncMode = def.SyncMode
	}
	if seed.ConflictStrategy == "" {
		seed.ConflictStrategy = def.ConflictStrategy
	}
	if seed.SourceTenantID == 0 {
		seed.SourceTenantID = def.SourceTenantID
	}
	return &Store{db: db, dir: dir, seed: seed.Normalize()}
}

// Migrate creates or updates the settings table.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&Row{})
}

// Load returns the saved settings, or the seed when none were saved.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	var row Row
	err := s.db.WithContext(ctx).First(&row, rowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := s.seed
		seed.TargetTenantIDs = append([]int64{}, s.seed.TargetTenantIDs...)
		return seed, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return fromRow(row), nil
}

// Save validates and stores next. The last sync time is owned by the store and kept as is.
func (s *Store) Save(ctx context.Context, next Settings) (Settings, error) {
	next = next.Normalize()
	if err := Validate(ctx, next, s.dir); err != nil {
		return Settings{}, err
	}
	current, err := s.Load(ctx)
	if err != nil {
		return Settings{}, err
	}
	next.LastSync = current.LastSync
	if err := s.write(ctx, next); err != nil {
		return Settings{}, err
	}
	return next, nil
}

// Reset discards the saved settings and returns the seed.
func (s *Store) Reset(ctx context.Context) (Settings, error) {
	if err := s.db.WithContext(ctx).Delete(&Row{}, rowID).Error; err != nil {
		return Settings{}, fmt.Errorf("failed to reset settings: %w", err)
	}
	return s.Load(ctx)
}

// TouchLastSync records the completion time of a sync run.
func (s *Store) TouchLastSync(ctx context.Context, at time.Time) error {
	current, err := s.Load(ctx)
	if err != nil {
		return err
	}
	at = at.UTC()
	current.LastSync = &at
	return s.write(ctx, current)
}

func (s *Store) write(ctx context.Context, st Settings) error {
	row := toRow(st)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

var _ menusync.LastSyncRecorder = (*Store)(nil)
