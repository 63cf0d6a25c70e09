package tenant

import (
	"context"
	"errors"
)

// ItemKind distinguishes what a menu item points at.
type ItemKind string

const (
	// KindContent references a content entry (page, post, ...) by id.
	KindContent ItemKind = "content-reference"
	// KindTaxonomy references a taxonomy term by id.
	KindTaxonomy ItemKind = "taxonomy-reference"
	// KindCustom is a free-form link; its URL is used verbatim.
	KindCustom ItemKind = "custom-link"
)

// IsReference reports whether items of this kind carry a reference id.
func (k ItemKind) IsReference() bool {
	return k == KindContent || k == KindTaxonomy
}

// Valid reports whether k is a known kind.
func (k ItemKind) Valid() bool {
	return k == KindContent || k == KindTaxonomy || k == KindCustom
}

var (
	// ErrScopeClosed is returned when a scope is used after Leave.
	ErrScopeClosed = errors.New("tenant scope already left")
	// ErrTenantNotFound is returned by Enter for unknown tenants.
	ErrTenantNotFound = errors.New("tenant not found")
)

// Info describes one tenant of the platform.
type Info struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// Tree is a menu container on one tenant.
type Tree struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ItemFields are the writable attributes of a menu item.
type ItemFields struct {
	Kind           ItemKind          `json:"kind"`
	ReferenceType  string            `json:"reference_type,omitempty"`
	ReferenceID    int64             `json:"reference_id,omitempty"`
	Position       int               `json:"position"`
	Label          string            `json:"label"`
	URL            string            `json:"url,omitempty"`
	LinkTarget     string            `json:"link_target,omitempty"`
	CSSClasses     []string          `json:"css_classes,omitempty"`
	RelAttributes  string            `json:"rel,omitempty"`
	Description    string            `json:"description,omitempty"`
	TitleAttribute string            `json:"title_attribute,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty"`
}

// Item is a stored menu item.
type Item struct {
	ID       int64 `json:"id"`
	TreeID   int64 `json:"tree_id"`
	ParentID int64 `json:"parent_id"`
	ItemFields
}

// Content is the natural-key view of a content entry.
type Content struct {
	ID   int64
	Slug string
	Type string
}

// Term is the natural-key view of a taxonomy term.
type Term struct {
	ID       int64
	Slug     string
	Taxonomy string
}

// TreeStore reads and writes menus of one tenant.
type TreeStore interface {
	// GetTreeBySlug returns nil, nil when no tree carries slug.
	GetTreeBySlug(ctx context.Context, slug string) (*Tree, error)
	// GetTreeByID returns nil, nil when the tree does not exist on this tenant.
	GetTreeByID(ctx context.Context, id int64) (*Tree, error)
	ListTrees(ctx context.Context) ([]Tree, error)
	CreateTree(ctx context.Context, name, slug string) (int64, error)
	DeleteItem(ctx context.Context, itemID int64) error
	CreateItem(ctx context.Context, treeID, parentID int64, fields ItemFields) (int64, error)
	UpdateItem(ctx context.Context, itemID, parentID int64, fields ItemFields) error
	// ListItems returns items ordered by position, then id.
	ListItems(ctx context.Context, treeID int64) ([]Item, error)
}

// ContentStore resolves content and taxonomy entries by id or natural key.
type ContentStore interface {
	// GetContentByID returns nil, nil when absent.
	GetContentByID(ctx context.Context, id int64) (*Content, error)
	// FindContentBySlug returns the first match by ascending id.
	FindContentBySlug(ctx context.Context, slug, contentType string) (int64, bool, error)
	// GetTermByID returns nil, nil when absent.
	GetTermByID(ctx context.Context, id int64, taxonomy string) (*Term, error)
	FindTermBySlug(ctx context.Context, slug, taxonomy string) (int64, bool, error)
}

// SlotStore reads and writes the display slot bindings of one tenant.
type SlotStore interface {
	GetSlotBindings(ctx context.Context) (map[string]int64, error)
	// SetSlotBindings replaces the whole binding set.
	SetSlotBindings(ctx context.Context, bindings map[string]int64) error
}

// Scope is an explicit handle on one tenant. Every read and write goes through a scope, so no
// "current tenant" state is shared between calls. Leave must be called exactly once.
type Scope interface {
	TenantID() int64
	Trees() TreeStore
	Content() ContentStore
	Slots() SlotStore
	Leave()
}

// Directory lists the tenants of the platform.
type Directory interface {
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]Info, error)
}

// Platform is the multi-tenant content store.
type Platform interface {
	Directory
	// Enter opens a scope on tenant id. It returns ErrTenantNotFound for unknown tenants.
	Enter(ctx context.Context, id int64) (Scope, error)
}
