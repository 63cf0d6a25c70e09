package menusync

import (
	"context"
	"errors"
	"fmt"

	"menu-sync/core/logger"
	"menu-sync/core/tenant"

	"go.uber.org/zap"
)

// Applier materializes a PortableMenu on one target tenant.
type Applier struct {
	platform tenant.Platform
	hooks    *Hooks
	logger   *zap.Logger
}

// NewApplier creates an applier. hooks may be nil.
func NewApplier(platform tenant.Platform, hooks *Hooks, logger *zap.Logger) *Applier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applier{platform: platform, hooks: hooks, logger: logger}
}

// Apply writes menu to targetID. source is an open scope on the menu's source tenant used to
// resolve references; with a nil source every reference degrades to a custom link.
// Apply never returns an error: failures end up in the outcome's ErrorMessage.
func (a *Applier) Apply(ctx context.Context, menu *PortableMenu, targetID int64, opts Options, resolver *Resolver, source tenant.Scope) SyncOutcome {
	outcome := SyncOutcome{TargetID: targetID}
	fail := func(err error) SyncOutcome {
		outcome.Succeeded = false
		outcome.ErrorMessage = err.Error()
		return outcome
	}

	if menu == nil || menu.Slug == "" {
		return fail(&ValidationError{Field: "menu", Reason: "portable menu must have a slug"})
	}
	if resolver == nil {
		resolver = NewResolver()
	}
	log := logger.WithSync(a.logger, menu.SourceTenantID, targetID, menu.MenuID)

	exists, err := a.platform.Exists(ctx, targetID)
	if err != nil {
		return fail(fmt.Errorf("failed to look up target tenant: %w", err))
	}
	if !exists {
		return fail(&NotFoundError{ID: targetID, Err: ErrTargetNotFound})
	}

	scope, err := a.platform.Enter(ctx, targetID)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			return fail(&NotFoundError{ID: targetID, Err: ErrTargetNotFound})
		}
		return fail(fmt.Errorf("failed to enter target tenant: %w", err))
	}
	defer scope.Leave()

	trees := scope.Trees()
	existing, err := trees.GetTreeBySlug(ctx, menu.Slug)
	if err != nil {
		return fail(fmt.Errorf("failed to look up menu %q: %w", menu.Slug, err))
	}

	if decision := ResolveConflict(opts.ConflictStrategy, existing, menu); !decision.Proceed {
		log.Info("Conflict strategy aborted apply",
			zap.String("strategy", string(opts.ConflictStrategy)),
			zap.String("reason", decision.Reason),
		)
		outcome.ConflictAborted = true
		return fail(&ConflictAbort{Reason: decision.Reason})
	}

	var current []tenant.Item
	if existing == nil {
		id, err := trees.CreateTree(ctx, menu.Name, menu.Slug)
		if err != nil {
			return fail(fmt.Errorf("failed to create menu %q: %w", menu.Slug, err))
		}
		outcome.MenuID = id
	} else {
		outcome.MenuID = existing.ID
		current, err = trees.ListItems(ctx, existing.ID)
		if err != nil {
			return fail(fmt.Errorf("failed to read existing items: %w", err))
		}
		if opts.ConflictStrategy == StrategyOverride {
			for _, it := range current {
				if err := trees.DeleteItem(ctx, it.ID); err != nil {
					return fail(fmt.Errorf("failed to clear existing item %d: %w", it.ID, err))
				}
			}
			current = nil
		}
	}

	prepared := a.prepare(ctx, menu, targetID, scope, source, resolver, &outcome, log)
	plan := buildPlan(prepared, current)
	if opts.ConflictStrategy == StrategyMerge {
		summary := plan.Summary
		outcome.Plan = &summary
	}

	currentByID := make(map[int64]tenant.Item, len(current))
	for _, it := range current {
		currentByID[it.ID] = it
	}

	mapping := make(ReferenceMapping, len(prepared))
	for i, p := range prepared {
		action := plan.Actions[i]
		parentID := mapping[p.item.ParentSourceItemID]

		switch action.Type {
		case ActionUpdate:
			fields := p.fields
			if opts.PreserveCustomFields {
				fields.Attributes = mergeAttributes(currentByID[action.TargetItemID].Attributes, fields.Attributes)
			}
			if parentID == action.TargetItemID {
				parentID = 0
			}
			if err := trees.UpdateItem(ctx, action.TargetItemID, parentID, fields); err != nil {
				outcome.ItemsFailed++
				log.Warn("Failed to update menu item",
					zap.Int64("source_item_id", p.item.SourceItemID),
					zap.Int64("target_item_id", action.TargetItemID),
					zap.Error(err),
				)
				continue
			}
			a.record(mapping, p.item.SourceItemID, action.TargetItemID)
			outcome.ItemsSynced++

		default:
			id, err := trees.CreateItem(ctx, outcome.MenuID, parentID, p.fields)
			if err != nil {
				outcome.ItemsFailed++
				log.Warn("Failed to create menu item",
					zap.Int64("source_item_id", p.item.SourceItemID),
					zap.Error(err),
				)
				continue
			}
			a.record(mapping, p.item.SourceItemID, id)
			outcome.ItemsSynced++
		}
	}

	if opts.SyncDisplaySlots && len(menu.DisplaySlots) > 0 {
		if err := bindSlots(ctx, scope, menu.DisplaySlots, outcome.MenuID); err != nil {
			log.Warn("Failed to bind display slots", zap.Strings("slots", menu.DisplaySlots), zap.Error(err))
		}
	}

	outcome.Succeeded = true
	log.Info("Applied menu",
		zap.Int64("target_menu_id", outcome.MenuID),
		zap.Int("items_synced", outcome.ItemsSynced),
		zap.Int("items_failed", outcome.ItemsFailed),
		zap.Int("degraded_references", outcome.DegradedReferences),
	)
	return outcome
}

// prepare orders the items parent first, runs the item hooks and resolves references.
// Items rejected by a hook are counted as failed and dropped.
func (a *Applier) prepare(ctx context.Context, menu *PortableMenu, targetID int64, target, source tenant.Scope, resolver *Resolver, outcome *SyncOutcome, log *zap.Logger) []preparedItem {
	ordered := materializationOrder(menu.Items)
	out := make([]preparedItem, 0, len(ordered))
	for _, item := range ordered {
		if err := a.hooks.runBeforeItem(ctx, targetID, &item); err != nil {
			outcome.ItemsFailed++
			log.Info("Item skipped by hook", zap.Int64("source_item_id", item.SourceItemID), zap.Error(err))
			continue
		}

		if item.Kind.IsReference() {
			id, found, err := resolver.Resolve(ctx, item.Kind, item.ReferenceType, item.ReferenceID, source, target)
			if err != nil {
				log.Warn("Reference lookup failed",
					zap.Int64("source_item_id", item.SourceItemID),
					zap.Error(err),
				)
			}
			if found {
				item.ReferenceID = id
			} else {
				degrade(&item)
				outcome.DegradedReferences++
			}
		} else if !item.Kind.Valid() {
			degrade(&item)
		}

		out = append(out, preparedItem{item: item, fields: item.fields()})
	}
	return out
}

// degrade turns an item into a custom link. Its URL is kept, since a reference item's URL is the
// best link the source had for it.
func degrade(item *PortableItem) {
	item.Kind = tenant.KindCustom
	item.ReferenceID = 0
	item.ReferenceType = ""
}

func (a *Applier) record(mapping ReferenceMapping, sourceID, targetID int64) {
	if sourceID == 0 {
		return
	}
	if _, dup := mapping[sourceID]; !dup {
		mapping[sourceID] = targetID
	}
}

// bindSlots points every slot at menuID. Bindings of other slots are kept.
func bindSlots(ctx context.Context, scope tenant.Scope, slots []string, menuID int64) error {
	bindings, err := scope.Slots().GetSlotBindings(ctx)
	if err != nil {
		return err
	}
	if bindings == nil {
		bindings = make(map[string]int64, len(slots))
	}
	for _, slot := range slots {
		bindings[slot] = menuID
	}
	return scope.Slots().SetSlotBindings(ctx, bindings)
}
