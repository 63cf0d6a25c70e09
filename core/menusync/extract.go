package menusync

import (
	"context"
	"fmt"

	"menu-sync/core/tenant"

	"go.uber.org/zap"
)

// Extractor reads a menu from a tenant and turns it into a PortableMenu.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an extractor.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract snapshots menuID from scope. It only reads, and returns a NotFoundError wrapping
// ErrMenuNotFound when the menu does not exist on the scope's tenant.
func (e *Extractor) Extract(ctx context.Context, scope tenant.Scope, menuID int64) (*PortableMenu, error) {
	tree, err := scope.Trees().GetTreeByID(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu %d: %w", menuID, err)
	}
	if tree == nil {
		return nil, &NotFoundError{ID: menuID, Err: ErrMenuNotFound}
	}

	bindings, err := scope.Slots().GetSlotBindings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read display slots: %w", err)
	}
	slots := make([]string, 0)
	for _, slot := range sortedKeys(bindings) {
		if bindings[slot] == tree.ID {
			slots = append(slots, slot)
		}
	}

	raw, err := scope.Trees().ListItems(ctx, tree.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read items of menu %d: %w", menuID, err)
	}

	items := make([]PortableItem, 0, len(raw))
	for _, it := range raw {
		items = append(items, portableItem(it))
	}

	e.logger.Debug("Extracted menu",
		zap.Int64("tenant_id", scope.TenantID()),
		zap.Int64("menu_id", tree.ID),
		zap.Int("items", len(items)),
		zap.Strings("display_slots", slots),
	)

	return &PortableMenu{
		SourceTenantID: scope.TenantID(),
		MenuID:         tree.ID,
		Name:           cleanText(tree.Name),
		Slug:           tree.Slug,
		DisplaySlots:   slots,
		Items:          items,
	}, nil
}

func portableItem(it tenant.Item) PortableItem {
	return cleanItem(PortableItem{
		SourceItemID:       it.ID,
		ParentSourceItemID: it.ParentID,
		Position:           it.Position,
		Kind:               it.Kind,
		ReferenceType:      it.ReferenceType,
		ReferenceID:        it.ReferenceID,
		Label:              it.Label,
		URL:                it.URL,
		LinkTarget:         it.LinkTarget,
		CSSClasses:         it.CSSClasses,
		RelAttributes:      it.RelAttributes,
		Description:        it.Description,
		TitleAttribute:     it.TitleAttribute,
		Attributes:         it.Attributes,
	})
}
