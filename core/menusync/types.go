package menusync

import (
	"menu-sync/core/tenant"
)

// Strategy decides what happens when the target already has a menu with the same slug.
type Strategy string

const (
	// StrategyOverride clears the existing menu's items and rebuilds them.
	StrategyOverride Strategy = "override"
	// StrategySkip leaves an existing menu untouched and fails the target.
	StrategySkip Strategy = "skip"
	// StrategyMerge updates matching items in place and keeps the rest.
	StrategyMerge Strategy = "merge"
)

// Strategies lists every supported conflict strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyOverride, StrategySkip, StrategyMerge}
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyOverride, StrategySkip, StrategyMerge:
		return true
	}
	return false
}

// PortableItem is one menu node detached from its tenant.
type PortableItem struct {
	// SourceItemID identifies the item inside the snapshot only.
	SourceItemID int64 `json:"source_item_id" yaml:"source_item_id"`

	// ParentSourceItemID is the SourceItemID of the parent, 0 for roots.
	ParentSourceItemID int64 `json:"parent_source_item_id" yaml:"parent_source_item_id"`

	// Position orders siblings.
	Position int `json:"position" yaml:"position"`

	Kind tenant.ItemKind `json:"kind" yaml:"kind"`

	// ReferenceType is the content type or taxonomy of a reference item.
	ReferenceType string `json:"reference_type,omitempty" yaml:"reference_type,omitempty"`

	// ReferenceID lives in the source tenant's id space.
	ReferenceID int64 `json:"reference_id,omitempty" yaml:"reference_id,omitempty"`

	Label          string            `json:"label" yaml:"label"`
	URL            string            `json:"url,omitempty" yaml:"url,omitempty"`
	LinkTarget     string            `json:"link_target,omitempty" yaml:"link_target,omitempty"`
	CSSClasses     []string          `json:"css_classes,omitempty" yaml:"css_classes,omitempty"`
	RelAttributes  string            `json:"rel,omitempty" yaml:"rel,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	TitleAttribute string            `json:"title_attribute,omitempty" yaml:"title_attribute,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// fields converts the item into store fields. Slices and maps are copied.
func (p PortableItem) fields() tenant.ItemFields {
	f := tenant.ItemFields{
		Kind:           p.Kind,
		ReferenceType:  p.ReferenceType,
		ReferenceID:    p.ReferenceID,
		Position:       p.Position,
		Label:          p.Label,
		URL:            p.URL,
		LinkTarget:     p.LinkTarget,
		RelAttributes:  p.RelAttributes,
		Description:    p.Description,
		TitleAttribute: p.TitleAttribute,
	}
	if len(p.CSSClasses) > 0 {
		f.CSSClasses = append([]string(nil), p.CSSClasses...)
	}
	if len(p.Attributes) > 0 {
		f.Attributes = make(map[string]string, len(p.Attributes))
		for k, v := range p.Attributes {
			f.Attributes[k] = v
		}
	}
	return f
}

// PortableMenu is a tenant-agnostic snapshot of a menu. Slug is the identity of the menu across
// tenants.
type PortableMenu struct {
	// SourceTenantID is where the snapshot was taken. References are resolved against it.
	SourceTenantID int64 `json:"source_tenant_id" yaml:"source_tenant_id"`

	// MenuID is the menu's id on the source tenant.
	MenuID int64 `json:"menu_id" yaml:"menu_id"`

	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`

	// DisplaySlots are the slots bound to this menu on the source, sorted by name.
	DisplaySlots []string `json:"display_slots" yaml:"display_slots"`

	// Items are in source order, which is not tree order.
	Items []PortableItem `json:"items" yaml:"items"`
}

// Options control how a portable menu is applied to a target.
type Options struct {
	ConflictStrategy Strategy `json:"conflict_strategy"`

	// SyncDisplaySlots binds the menu's display slots on the target.
	SyncDisplaySlots bool `json:"sync_display_slots"`

	// PreserveCustomFields keeps attribute keys already set on merged target items.
	PreserveCustomFields bool `json:"preserve_custom_fields"`
}

// ReferenceMapping maps source item ids to the item ids created or matched on a target.
type ReferenceMapping map[int64]int64

// SyncOutcome is the result of applying one menu to one target.
type SyncOutcome struct {
	TargetID  int64 `json:"target_id"`
	Succeeded bool  `json:"succeeded"`

	// ItemsSynced counts items created or updated on the target.
	ItemsSynced int `json:"items_synced"`

	// ItemsFailed counts items that could not be written or were rejected by a hook.
	ItemsFailed int `json:"items_failed"`

	// DegradedReferences counts references turned into custom links.
	DegradedReferences int `json:"degraded_references"`

	// MenuID is the menu's id on the target, 0 when nothing was written.
	MenuID int64 `json:"target_menu_id,omitempty"`

	// Plan summarizes merge actions. It is nil for other strategies.
	Plan *PlanSummary `json:"plan,omitempty"`

	// ConflictAborted is set when the conflict strategy refused to touch the target.
	ConflictAborted bool `json:"conflict_aborted,omitempty"`

	// ErrorMessage is set iff Succeeded is false.
	ErrorMessage string `json:"error_message,omitempty"`
}

// SyncResult partitions the attempted targets of one run.
type SyncResult struct {
	Success map[int64]SyncOutcome `json:"success"`
	Failed  map[int64]string      `json:"failed"`
}

func newSyncResult() *SyncResult {
	return &SyncResult{
		Success: make(map[int64]SyncOutcome),
		Failed:  make(map[int64]string),
	}
}

// SyncRequest describes one sync run.
type SyncRequest struct {
	SourceTenantID  int64
	MenuID          int64
	TargetTenantIDs []int64
	Options         Options
	// ActorID is recorded on every audit record, 0 for system triggers.
	ActorID int64
	// Operation is recorded on every audit record. Empty means "sync".
	Operation string
}

// ApplyRequest describes a standalone apply of a portable menu.
type ApplyRequest struct {
	Menu           *PortableMenu
	TargetTenantID int64
	Options        Options
	ActorID        int64
	// Operation is recorded on the audit record. Empty means "apply".
	Operation string
}
