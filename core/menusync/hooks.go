package menusync

import "context"

// AfterExtractHook runs once per run on the freshly extracted menu, before any target is touched.
// It may edit the menu in place. An error aborts the run.
type AfterExtractHook interface {
	AfterExtract(ctx context.Context, menu *PortableMenu) error
}

// BeforeItemHook runs before each item is written to a target. It may edit the item's content
// fields; SourceItemID and ParentSourceItemID are restored afterwards. An error skips the item,
// which is counted as failed.
type BeforeItemHook interface {
	BeforeItem(ctx context.Context, targetID int64, item *PortableItem) error
}

// AfterExtractFunc adapts a function to AfterExtractHook.
type AfterExtractFunc func(ctx context.Context, menu *PortableMenu) error

// AfterExtract calls f.
func (f AfterExtractFunc) AfterExtract(ctx context.Context, menu *PortableMenu) error {
	return f(ctx, menu)
}

// BeforeItemFunc adapts a function to BeforeItemHook.
type BeforeItemFunc func(ctx context.Context, targetID int64, item *PortableItem) error

// BeforeItem calls f.
func (f BeforeItemFunc) BeforeItem(ctx context.Context, targetID int64, item *PortableItem) error {
	return f(ctx, targetID, item)
}

// Hooks holds the registered callbacks. The zero value and nil have no hooks.
type Hooks struct {
	afterExtract []AfterExtractHook
	beforeItem   []BeforeItemHook
}

// OnAfterExtract registers h.
func (h *Hooks) OnAfterExtract(hook AfterExtractHook) {
	h.afterExtract = append(h.afterExtract, hook)
}

// OnBeforeItem registers h.
func (h *Hooks) OnBeforeItem(hook BeforeItemHook) {
	h.beforeItem = append(h.beforeItem, hook)
}

func (h *Hooks) runAfterExtract(ctx context.Context, menu *PortableMenu) error {
	if h == nil {
		return nil
	}
	for _, hook := range h.afterExtract {
		if err := hook.AfterExtract(ctx, menu); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hooks) runBeforeItem(ctx context.Context, targetID int64, item *PortableItem) error {
	if h == nil {
		return nil
	}
	id, parent := item.SourceItemID, item.ParentSourceItemID
	defer func() {
		item.SourceItemID, item.ParentSourceItemID = id, parent
	}()
	for _, hook := range h.beforeItem {
		if err := hook.BeforeItem(ctx, targetID, item); err != nil {
			return err
		}
	}
	return nil
}
