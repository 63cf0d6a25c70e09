package gormstore

import (
	"context"
	"fmt"
	"sync/atomic"

	"menu-sync/core/tenant"

	"gorm.io/gorm"
)

// scope binds every query to one tenant id.
type scope struct {
	db       *gorm.DB
	tenantID int64
	closed   atomic.Bool
}

func (s *scope) TenantID() int64 { return s.tenantID }

func (s *scope) Trees() tenant.TreeStore      { return treeStore{s} }
func (s *scope) Content() tenant.ContentStore { return contentStore{s} }
func (s *scope) Slots() tenant.SlotStore      { return slotStore{s} }

func (s *scope) Leave() { s.closed.Store(true) }

// query returns a tenant-filtered session, or an error once the scope was left.
func (s *scope) query(ctx context.Context, model any) (*gorm.DB, error) {
	if s.closed.Load() {
		return nil, tenant.ErrScopeClosed
	}
	return s.db.WithContext(ctx).Model(model).Where("tenant_id = ?", s.tenantID), nil
}

type treeStore struct{ s *scope }

func toTree(r MenuRow) *tenant.Tree {
	return &tenant.Tree{ID: r.ID, Name: r.Name, Slug: r.Slug}
}

func (t treeStore) GetTreeBySlug(ctx context.Context, slug string) (*tenant.Tree, error) {
	q, err := t.s.query(ctx, &MenuRow{})
	if err != nil {
		return nil, err
	}
	var row MenuRow
	if err := q.Where("slug = ?", slug).First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu %q: %w", slug, err)
	}
	return toTree(row), nil
}

func (t treeStore) GetTreeByID(ctx context.Context, id int64) (*tenant.Tree, error) {
	q, err := t.s.query(ctx, &MenuRow{})
	if err != nil {
		return nil, err
	}
	var row MenuRow
	if err := q.Where("id = ?", id).First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu %d: %w", id, err)
	}
	return toTree(row), nil
}

func (t treeStore) ListTrees(ctx context.Context) ([]tenant.Tree, error) {
	q, err := t.s.query(ctx, &MenuRow{})
	if err != nil {
		return nil, err
	}
	var rows []MenuRow
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	out := make([]tenant.Tree, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toTree(r))
	}
	return out, nil
}

func (t treeStore) CreateTree(ctx context.Context, name, slug string) (int64, error) {
	if _, err := t.s.query(ctx, &MenuRow{}); err != nil {
		return 0, err
	}
	row := MenuRow{TenantID: t.s.tenantID, Name: name, Slug: slug}
	if err := t.s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to create menu %q: %w", slug, err)
	}
	return row.ID, nil
}

func (t treeStore) DeleteItem(ctx context.Context, itemID int64) error {
	q, err := t.s.query(ctx, &MenuItemRow{})
	if err != nil {
		return err
	}
	res := q.Where("id = ?", itemID).Delete(&MenuItemRow{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete menu item %d: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item %d not found", itemID)
	}
	return nil
}

// checkPlacement verifies the tree belongs to the tenant and the parent, when set, belongs to the tree.
func (t treeStore) checkPlacement(ctx context.Context, treeID, parentID int64) error {
	tree, err := t.GetTreeByID(ctx, treeID)
	if err != nil {
		return err
	}
	if tree == nil {
		return fmt.Errorf("menu %d not found on tenant %d", treeID, t.s.tenantID)
	}
	if parentID == 0 {
		return nil
	}
	q, err := t.s.query(ctx, &MenuItemRow{})
	if err != nil {
		return err
	}
	var count int64
	if err := q.Where("id = ? AND menu_id = ?", parentID, treeID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up parent item %d: %w", parentID, err)
	}
	if count == 0 {
		return fmt.Errorf("parent item %d not found in menu %d", parentID, treeID)
	}
	return nil
}

func (t treeStore) CreateItem(ctx context.Context, treeID, parentID int64, f tenant.ItemFields) (int64, error) {
	if !f.Kind.Valid() {
		return 0, fmt.Errorf("invalid item kind %q", f.Kind)
	}
	if err := t.checkPlacement(ctx, treeID, parentID); err != nil {
		return 0, err
	}
	row := rowFromFields(f)
	row.TenantID = t.s.tenantID
	row.MenuID = treeID
	row.ParentID = parentID
	if err := t.s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to create menu item: %w", err)
	}
	return row.ID, nil
}

func (t treeStore) UpdateItem(ctx context.Context, itemID, parentID int64, f tenant.ItemFields) error {
	if !f.Kind.Valid() {
		return fmt.Errorf("invalid item kind %q", f.Kind)
	}
	q, err := t.s.query(ctx, &MenuItemRow{})
	if err != nil {
		return err
	}
	var existing MenuItemRow
	if err := q.Where("id = ?", itemID).First(&existing).Error; err != nil {
		if isNotFound(err) {
			return fmt.Errorf("menu item %d not found", itemID)
		}
		return fmt.Errorf("failed to load menu item %d: %w", itemID, err)
	}
	if parentID == itemID {
		return fmt.Errorf("menu item %d cannot be its own parent", itemID)
	}
	if err := t.checkPlacement(ctx, existing.MenuID, parentID); err != nil {
		return err
	}

	row := rowFromFields(f)
	row.ID = existing.ID
	row.TenantID = existing.TenantID
	row.MenuID = existing.MenuID
	row.ParentID = parentID
	// Save writes zero values too, so cleared fields are cleared on the target.
	if err := t.s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to update menu item %d: %w", itemID, err)
	}
	return nil
}

func (t treeStore) ListItems(ctx context.Context, treeID int64) ([]tenant.Item, error) {
	q, err := t.s.query(ctx, &MenuItemRow{})
	if err != nil {
		return nil, err
	}
	var rows []MenuItemRow
	if err := q.Where("menu_id = ?", treeID).Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list items of menu %d: %w", treeID, err)
	}
	out := make([]tenant.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, tenant.Item{
			ID:         r.ID,
			TreeID:     r.MenuID,
			ParentID:   r.ParentID,
			ItemFields: fieldsFromRow(r),
		})
	}
	return out, nil
}

func rowFromFields(f tenant.ItemFields) MenuItemRow {
	return MenuItemRow{
		Position:       f.Position,
		Kind:           string(f.Kind),
		ReferenceType:  f.ReferenceType,
		ReferenceID:    f.ReferenceID,
		Label:          f.Label,
		URL:            f.URL,
		LinkTarget:     f.LinkTarget,
		CSSClasses:     f.CSSClasses,
		RelAttributes:  f.RelAttributes,
		Description:    f.Description,
		TitleAttribute: f.TitleAttribute,
		Attributes:     f.Attributes,
	}
}

func fieldsFromRow(r MenuItemRow) tenant.ItemFields {
	return tenant.ItemFields{
		Kind:           tenant.ItemKind(r.Kind),
		ReferenceType:  r.ReferenceType,
		ReferenceID:    r.ReferenceID,
		Position:       r.Position,
		Label:          r.Label,
		URL:            r.URL,
		LinkTarget:     r.LinkTarget,
		CSSClasses:     r.CSSClasses,
		RelAttributes:  r.RelAttributes,
		Description:    r.Description,
		TitleAttribute: r.TitleAttribute,
		Attributes:     r.Attributes,
	}
}

type contentStore struct{ s *scope }

func (c contentStore) GetContentByID(ctx context.Context, id int64) (*tenant.Content, error) {
	q, err := c.s.query(ctx, &ContentRow{})
	if err != nil {
		return nil, err
	}
	var row ContentRow
	if err := q.Where("id = ?", id).First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content %d: %w", id, err)
	}
	return &tenant.Content{ID: row.ID, Slug: row.Slug, Type: row.Type}, nil
}

func (c contentStore) FindContentBySlug(ctx context.Context, slug, contentType string) (int64, bool, error) {
	q, err := c.s.query(ctx, &ContentRow{})
	if err != nil {
		return 0, false, err
	}
	var row ContentRow
	if err := q.Where("slug = ? AND type = ?", slug, contentType).Order("id ASC").First(&row).Error; err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find content %q: %w", slug, err)
	}
	return row.ID, true, nil
}

func (c contentStore) GetTermByID(ctx context.Context, id int64, taxonomy string) (*tenant.Term, error) {
	q, err := c.s.query(ctx, &TermRow{})
	if err != nil {
		return nil, err
	}
	var row TermRow
	if err := q.Where("id = ? AND taxonomy = ?", id, taxonomy).First(&row).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get term %d: %w", id, err)
	}
	return &tenant.Term{ID: row.ID, Slug: row.Slug, Taxonomy: row.Taxonomy}, nil
}

func (c contentStore) FindTermBySlug(ctx context.Context, slug, taxonomy string) (int64, bool, error) {
	q, err := c.s.query(ctx, &TermRow{})
	if err != nil {
		return 0, false, err
	}
	var row TermRow
	if err := q.Where("slug = ? AND taxonomy = ?", slug, taxonomy).Order("id ASC").First(&row).Error; err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find term %q: %w", slug, err)
	}
	return row.ID, true, nil
}

type slotStore struct{ s *scope }

func (sl slotStore) GetSlotBindings(ctx context.Context) (map[string]int64, error) {
	q, err := sl.s.query(ctx, &SlotBindingRow{})
	if err != nil {
		return nil, err
	}
	var rows []SlotBindingRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read slot bindings: %w", err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Slot] = r.MenuID
	}
	return out, nil
}

func (sl slotStore) SetSlotBindings(ctx context.Context, bindings map[string]int64) error {
	if _, err := sl.s.query(ctx, &SlotBindingRow{}); err != nil {
		return err
	}
	return sl.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", sl.s.tenantID).Delete(&SlotBindingRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear slot bindings: %w", err)
		}
		if len(bindings) == 0 {
			return nil
		}
		rows := make([]SlotBindingRow, 0, len(bindings))
		for slot, menuID := range bindings {
			rows = append(rows, SlotBindingRow{TenantID: sl.s.tenantID, Slot: slot, MenuID: menuID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to write slot bindings: %w", err)
		}
		return nil
	})
}
