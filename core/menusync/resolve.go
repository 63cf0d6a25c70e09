package menusync

import (
	"context"
	"fmt"

	"menu-sync/core/tenant"
)

type memoKey struct {
	kind          tenant.ItemKind
	referenceType string
	referenceID   int64
	target        int64
}

type resolution struct {
	id    int64
	found bool
}

// Resolver maps content and taxonomy references from a source tenant to a target tenant by
// slug. Results are memoized, so a Resolver must live for one run only.
type Resolver struct {
	memo    map[memoKey]resolution
	lookups int
}

// NewResolver creates a resolver with an empty memo.
func NewResolver() *Resolver {
	return &Resolver{memo: make(map[memoKey]resolution)}
}

// Lookups returns how many references needed a store round trip.
func (r *Resolver) Lookups() int {
	return r.lookups
}

// Resolve returns the target id of the entry referenced by (kind, referenceType, referenceID) on
// source. found is false when the source entry does not exist or the target has no entry with the
// same slug. When several target entries share the slug the lowest id wins.
func (r *Resolver) Resolve(ctx context.Context, kind tenant.ItemKind, referenceType string, referenceID int64, source, target tenant.Scope) (int64, bool, error) {
	if !kind.IsReference() || referenceID <= 0 || source == nil || target == nil {
		return 0, false, nil
	}

	key := memoKey{kind: kind, referenceType: referenceType, referenceID: referenceID, target: target.TenantID()}
	if hit, ok := r.memo[key]; ok {
		return hit.id, hit.found, nil
	}

	id, found, err := r.lookup(ctx, kind, referenceType, referenceID, source, target)
	if err != nil {
		return 0, false, err
	}
	r.memo[key] = resolution{id: id, found: found}
	return id, found, nil
}

func (r *Resolver) lookup(ctx context.Context, kind tenant.ItemKind, referenceType string, referenceID int64, source, target tenant.Scope) (int64, bool, error) {
	r.lookups++
	switch kind {
	case tenant.KindContent:
		content, err := source.Content().GetContentByID(ctx, referenceID)
		if err != nil {
			return 0, false, fmt.Errorf("failed to read content %d on tenant %d: %w", referenceID, source.TenantID(), err)
		}
		if content == nil || content.Slug == "" {
			return 0, false, nil
		}
		contentType := referenceType
		if contentType == "" {
			contentType = content.Type
		}
		id, ok, err := target.Content().FindContentBySlug(ctx, content.Slug, contentType)
		if err != nil {
			return 0, false, fmt.Errorf("failed to find content %q on tenant %d: %w", content.Slug, target.TenantID(), err)
		}
		return id, ok, nil

	case tenant.KindTaxonomy:
		term, err := source.Content().GetTermByID(ctx, referenceID, referenceType)
		if err != nil {
			return 0, false, fmt.Errorf("failed to read term %d on tenant %d: %w", referenceID, source.TenantID(), err)
		}
		if term == nil || term.Slug == "" {
			return 0, false, nil
		}
		id, ok, err := target.Content().FindTermBySlug(ctx, term.Slug, referenceType)
		if err != nil {
			return 0, false, fmt.Errorf("failed to find term %q on tenant %d: %w", term.Slug, target.TenantID(), err)
		}
		return id, ok, nil
	}
	return 0, false, nil
}
