package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menu-sync/core/menusync"
	"menu-sync/core/tenant"
	"menu-sync/core/utils"
)

// Mode selects whether menu updates on the source trigger a sync.
type Mode string

const (
	// ModeAuto syncs whenever a menu on the source tenant is updated.
	ModeAuto Mode = "auto"
	// ModeManual syncs only on request.
	ModeManual Mode = "manual"
)

// Settings is the process-wide sync configuration.
type Settings struct {
	SourceTenantID       int64             `json:"source_tenant_id"`
	TargetTenantIDs      []int64           `json:"target_tenant_ids"`
	SyncMode             Mode              `json:"sync_mode"`
	ConflictStrategy     menusync.Strategy `json:"conflict_strategy"`
	SyncDisplaySlots     bool              `json:"sync_display_slots"`
	PreserveCustomFields bool              `json:"preserve_custom_fields"`
	Enabled              bool              `json:"enabled"`
	LastSync             *time.Time        `json:"last_sync,omitempty"`
}

// Defaults returns the settings used before anything was saved.
func Defaults() Settings {
	return Settings{
		SourceTenantID:       1,
		TargetTenantIDs:      []int64{},
		SyncMode:             ModeManual,
		ConflictStrategy:     menusync.StrategyOverride,
		SyncDisplaySlots:     true,
		PreserveCustomFields: true,
		Enabled:              true,
	}
}

// Options returns the apply options carried by s.
func (s Settings) Options() menusync.Options {
	return menusync.Options{
		ConflictStrategy:     s.ConflictStrategy,
		SyncDisplaySlots:     s.SyncDisplaySlots,
		PreserveCustomFields: s.PreserveCustomFields,
	}
}

// AutoSyncEnabled reports whether a menu update on tenantID should trigger a sync.
func (s Settings) AutoSyncEnabled(tenantID int64) bool {
	return s.Enabled && s.SyncMode == ModeAuto && tenantID == s.SourceTenantID && len(s.TargetTenantIDs) > 0
}

// Normalize lower-cases enums and removes repeated target ids, keeping the first occurrence.
func (s Settings) Normalize() Settings {
	s.SyncMode = Mode(strings.ToLower(strings.TrimSpace(string(s.SyncMode))))
	s.ConflictStrategy = menusync.Strategy(strings.ToLower(strings.TrimSpace(string(s.ConflictStrategy))))
	s.TargetTenantIDs = utils.UniqueIDs(s.TargetTenantIDs)
	return s
}

// FieldError is a validation failure of one field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors lists every invalid field of a settings value.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "invalid settings: " + strings.Join(parts, "; ")
}

// Validate checks every field of s and returns ValidationErrors with one entry per invalid field,
// or nil. A failing tenant lookup is returned as a plain error.
func Validate(ctx context.Context, s Settings, dir tenant.Directory) error {
	var errs ValidationErrors

	if s.SourceTenantID <= 0 {
		errs = append(errs, &FieldError{Field: "source_tenant_id", Reason: "must be a positive integer"})
	} else {
		ok, err := dir.Exists(ctx, s.SourceTenantID)
		if err != nil {
			return fmt.Errorf("failed to validate source tenant: %w", err)
		}
		if !ok {
			errs = append(errs, &FieldError{Field: "source_tenant_id", Reason: fmt.Sprintf("tenant %d does not exist", s.SourceTenantID)})
		}
	}

	var bad []string
	for _, id := range s.TargetTenantIDs {
		if id <= 0 {
			bad = append(bad, fmt.Sprintf("%d is not a positive integer", id))
			continue
		}
		ok, err := dir.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to validate target tenant %d: %w", id, err)
		}
		if !ok {
			bad = append(bad, fmt.Sprintf("tenant %d does not exist", id))
		}
	}
	if len(bad) > 0 {
		errs = append(errs, &FieldError{Field: "target_tenant_ids", Reason: strings.Join(bad, ", ")})
	}

	if s.SyncMode != ModeAuto && s.SyncMode != ModeManual {
		errs = append(errs, &FieldError{Field: "sync_mode", Reason: fmt.Sprintf("must be %q or %q", ModeAuto, ModeManual)})
	}
	if !s.ConflictStrategy.Valid() {
		errs = append(errs, &FieldError{Field: "conflict_strategy", Reason: "must be one of override, skip, merge"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
