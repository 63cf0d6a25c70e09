package menusync

import (
	"fmt"
	"strings"

	"menu-sync/core/tenant"
)

// ActionType is the kind of change planned for one item.
type ActionType string

const (
	// ActionCreate creates a new item on the target.
	ActionCreate ActionType = "create"
	// ActionUpdate rewrites a matching target item in place.
	ActionUpdate ActionType = "update"
	// ActionKeep leaves a target item without an incoming counterpart untouched.
	ActionKeep ActionType = "keep"
)

// Action is one planned change.
type Action struct {
	Type ActionType `json:"type"`

	// Key is the natural key the item was matched on.
	Key string `json:"key"`

	// SourceItemID is 0 for keep actions.
	SourceItemID int64 `json:"source_item_id,omitempty"`

	// TargetItemID is 0 for create actions.
	TargetItemID int64 `json:"target_item_id,omitempty"`
}

// PlanSummary counts planned actions by type.
type PlanSummary struct {
	Create int `json:"create"`
	Update int `json:"update"`
	Keep   int `json:"keep"`
}

// Plan lists the actions for one apply, in materialization order, followed by keep actions.
type Plan struct {
	Actions []Action    `json:"actions"`
	Summary PlanSummary `json:"summary"`
}

// preparedItem is an incoming item after hooks and reference resolution.
type preparedItem struct {
	item   PortableItem
	fields tenant.ItemFields
}

// itemKey identifies an item among its siblings, independent of tenant ids.
func itemKey(f tenant.ItemFields) string {
	if f.Kind.IsReference() && f.ReferenceID > 0 {
		return fmt.Sprintf("ref:%s:%s:%d", f.Kind, f.ReferenceType, f.ReferenceID)
	}
	return "link:" + strings.ToLower(strings.TrimSpace(f.URL)) + "|" + strings.TrimSpace(f.Label)
}

// buildPlan matches incoming items to existing target items by their key path from the root.
// Matched items are updated, the rest are created, and unmatched existing items are kept.
// With no existing items every item is created.
func buildPlan(incoming []preparedItem, existing []tenant.Item) *Plan {
	plan := &Plan{Actions: make([]Action, 0, len(incoming)+len(existing))}

	existingPaths := pathsOf(existing)
	candidates := make(map[string][]int64)
	for _, it := range existing {
		path := existingPaths[it.ID]
		candidates[path] = append(candidates[path], it.ID)
	}
	used := make(map[int64]bool)

	paths := make(map[int64]string, len(incoming))
	for _, p := range incoming {
		parentPath := ""
		if p.item.ParentSourceItemID != 0 {
			parentPath = paths[p.item.ParentSourceItemID]
		}
		path := parentPath + "/" + itemKey(p.fields)
		if p.item.SourceItemID != 0 {
			if _, seen := paths[p.item.SourceItemID]; !seen {
				paths[p.item.SourceItemID] = path
			}
		}

		action := Action{Type: ActionCreate, Key: path, SourceItemID: p.item.SourceItemID}
		for _, id := range candidates[path] {
			if !used[id] {
				used[id] = true
				action.Type = ActionUpdate
				action.TargetItemID = id
				break
			}
		}
		plan.add(action)
	}

	for _, it := range existing {
		if !used[it.ID] {
			plan.add(Action{Type: ActionKeep, Key: existingPaths[it.ID], TargetItemID: it.ID})
		}
	}
	return plan
}

func (p *Plan) add(a Action) {
	p.Actions = append(p.Actions, a)
	switch a.Type {
	case ActionCreate:
		p.Summary.Create++
	case ActionUpdate:
		p.Summary.Update++
	case ActionKeep:
		p.Summary.Keep++
	}
}

// pathsOf builds the key path of every stored item by walking its parents. A parent cycle or a
// missing parent ends the walk at the root.
func pathsOf(items []tenant.Item) map[int64]string {
	byID := make(map[int64]tenant.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make(map[int64]string, len(items))
	for _, it := range items {
		var keys []string
		seen := make(map[int64]bool)
		for cur, ok := it, true; ok && !seen[cur.ID]; cur, ok = byID[cur.ParentID] {
			seen[cur.ID] = true
			keys = append(keys, itemKey(cur.ItemFields))
			if cur.ParentID == 0 {
				break
			}
		}
		var b strings.Builder
		for i := len(keys) - 1; i >= 0; i-- {
			b.WriteString("/")
			b.WriteString(keys[i])
		}
		out[it.ID] = b.String()
	}
	return out
}

// mergeAttributes keeps every attribute already set on the target and adds the missing ones.
func mergeAttributes(existing, incoming map[string]string) map[string]string {
	if len(existing) == 0 {
		return incoming
	}
	out := make(map[string]string, len(existing)+len(incoming))
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range incoming {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}
