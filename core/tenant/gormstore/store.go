package gormstore

import (
	"context"
	"errors"
	"fmt"

	"menu-sync/core/tenant"

	"gorm.io/gorm"
)

// Store is the relational multi-tenant content platform.
type Store struct {
	db *gorm.DB
}

// New creates a store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the content store tables.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(Models()...)
}

// Exists reports whether an active tenant with id exists.
func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	if id < 1 {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&TenantRow{}).Where("id = ? AND active = ?", id, true).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up tenant %d: %w", id, err)
	}
	return count > 0, nil
}

// List returns active tenants ordered by id.
func (s *Store) List(ctx context.Context) ([]tenant.Info, error) {
	var rows []TenantRow
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	out := make([]tenant.Info, 0, len(rows))
	for _, r := range rows {
		out = append(out, tenant.Info{ID: r.ID, Name: r.Name, Domain: r.Domain})
	}
	return out, nil
}

// Enter opens a scope on tenant id.
func (s *Store) Enter(ctx context.Context, id int64) (tenant.Scope, error) {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("tenant %d: %w", id, tenant.ErrTenantNotFound)
	}
	return &scope{db: s.db, tenantID: id}, nil
}

// CreateTenant registers a new tenant and returns its id.
func (s *Store) CreateTenant(ctx context.Context, name, domain string) (int64, error) {
	row := TenantRow{Name: name, Domain: domain, Active: true}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to create tenant: %w", err)
	}
	return row.ID, nil
}

// CreateContent adds a content entry on a tenant and returns its id.
func (s *Store) CreateContent(ctx context.Context, tenantID int64, contentType, slug, title string) (int64, error) {
	row := ContentRow{TenantID: tenantID, Type: contentType, Slug: slug, Title: title}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to create content: %w", err)
	}
	return row.ID, nil
}

// CreateTerm adds a taxonomy term on a tenant and returns its id.
func (s *Store) CreateTerm(ctx context.Context, tenantID int64, taxonomy, slug, name string) (int64, error) {
	row := TermRow{TenantID: tenantID, Taxonomy: taxonomy, Slug: slug, Name: name}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to create term: %w", err)
	}
	return row.ID, nil
}

var _ tenant.Platform = (*Store)(nil)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
