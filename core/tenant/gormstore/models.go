package gormstore

import "time"

// TenantRow is one tenant (site) of the platform.
type TenantRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(191);not null"`
	Domain    string    `gorm:"column:domain;type:varchar(191)"`
	Active    bool      `gorm:"column:active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (TenantRow) TableName() string { return "tenants" }

// MenuRow is a menu container scoped to a tenant. Slug is unique per tenant.
type MenuRow struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID int64  `gorm:"column:tenant_id;not null;uniqueIndex:idx_menus_tenant_slug"`
	Name     string `gorm:"column:name;type:varchar(191);not null"`
	Slug     string `gorm:"column:slug;type:varchar(191);not null;uniqueIndex:idx_menus_tenant_slug"`
}

// TableName overrides the table name.
func (MenuRow) TableName() string { return "menus" }

// MenuItemRow is one node of a menu.
type MenuItemRow struct {
	ID             int64             `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID       int64             `gorm:"column:tenant_id;not null;index"`
	MenuID         int64             `gorm:"column:menu_id;not null;index:idx_menu_items_menu_position"`
	ParentID       int64             `gorm:"column:parent_id;not null;default:0"`
	Position       int               `gorm:"column:position;not null;default:0;index:idx_menu_items_menu_position"`
	Kind           string            `gorm:"column:kind;type:varchar(32);not null"`
	ReferenceType  string            `gorm:"column:reference_type;type:varchar(64)"`
	ReferenceID    int64             `gorm:"column:reference_id;not null;default:0"`
	Label          string            `gorm:"column:label;type:varchar(255)"`
	URL            string            `gorm:"column:url;type:text"`
	LinkTarget     string            `gorm:"column:link_target;type:varchar(16)"`
	CSSClasses     []string          `gorm:"column:css_classes;type:text;serializer:json"`
	RelAttributes  string            `gorm:"column:rel;type:varchar(255)"`
	Description    string            `gorm:"column:description;type:text"`
	TitleAttribute string            `gorm:"column:title_attribute;type:varchar(255)"`
	Attributes     map[string]string `gorm:"column:attributes;type:text;serializer:json"`
}

// TableName overrides the table name.
func (MenuItemRow) TableName() string { return "menu_items" }

// ContentRow is a content entry (page, post, product, ...).
type ContentRow struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID int64  `gorm:"column:tenant_id;not null;index:idx_contents_lookup"`
	Type     string `gorm:"column:type;type:varchar(64);not null;index:idx_contents_lookup"`
	Slug     string `gorm:"column:slug;type:varchar(191);not null;index:idx_contents_lookup"`
	Title    string `gorm:"column:title;type:varchar(255)"`
}

// TableName overrides the table name.
func (ContentRow) TableName() string { return "contents" }

// TermRow is a taxonomy term.
type TermRow struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID int64  `gorm:"column:tenant_id;not null;index:idx_terms_lookup"`
	Taxonomy string `gorm:"column:taxonomy;type:varchar(64);not null;index:idx_terms_lookup"`
	Slug     string `gorm:"column:slug;type:varchar(191);not null;index:idx_terms_lookup"`
	Name     string `gorm:"column:name;type:varchar(255)"`
}

// TableName overrides the table name.
func (TermRow) TableName() string { return "terms" }

// SlotBindingRow binds a named display slot to one menu of the tenant.
type SlotBindingRow struct {
	TenantID int64  `gorm:"column:tenant_id;primaryKey"`
	Slot     string `gorm:"column:slot;type:varchar(64);primaryKey"`
	MenuID   int64  `gorm:"column:menu_id;not null"`
}

// TableName overrides the table name.
func (SlotBindingRow) TableName() string { return "slot_bindings" }

// Models lists every table of the content store, in migration order.
func Models() []any {
	return []any{&TenantRow{}, &MenuRow{}, &MenuItemRow{}, &ContentRow{}, &TermRow{}, &SlotBindingRow{}}
}
