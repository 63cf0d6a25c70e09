package menusync

import (
	"context"
	"errors"
	"testing"
	"time"

	"menu-sync/core/auditlog"
	"menu-sync/core/database"
	"menu-sync/core/metrics"
	"menu-sync/core/tenant"
	"menu-sync/core/tenant/gormstore"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingPlatform counts scope entries and exits and can fail item writes by label.
type countingPlatform struct {
	tenant.Platform
	enters    int
	leaves    int
	failLabel string
}

func (p *countingPlatform) Enter(ctx context.Context, id int64) (tenant.Scope, error) {
	s, err := p.Platform.Enter(ctx, id)
	if err != nil {
		return nil, err
	}
	p.enters++
	return &countingScope{Scope: s, p: p}, nil
}

type countingScope struct {
	tenant.Scope
	p *countingPlatform
}

func (s *countingScope) Leave() {
	s.p.leaves++
	s.Scope.Leave()
}

func (s *countingScope) Trees() tenant.TreeStore {
	return failingTrees{TreeStore: s.Scope.Trees(), label: s.p.failLabel}
}

type failingTrees struct {
	tenant.TreeStore
	label string
}

func (f failingTrees) CreateItem(ctx context.Context, treeID, parentID int64, fields tenant.ItemFields) (int64, error) {
	if f.label != "" && fields.Label == f.label {
		return 0, errors.New("write rejected")
	}
	return f.TreeStore.CreateItem(ctx, treeID, parentID, fields)
}

type lastSyncSpy struct {
	at    time.Time
	calls int
}

func (l *lastSyncSpy) TouchLastSync(_ context.Context, at time.Time) error {
	l.calls++
	l.at = at
	return nil
}

type fixture struct {
	ctx      context.Context
	store    *gormstore.Store
	platform *countingPlatform
	audit    *auditlog.Log
	lastSync *lastSyncSpy
	metrics  *metrics.Metrics
	hooks    *Hooks
	engine   *Engine

	source  int64
	menuID  int64
	items   [3]int64
	aboutID int64
}

// newFixture creates a source tenant with the "Main" menu:
//
//	Home (custom "/")
//	  About (page "about")
//	Docs (custom "https://docs.example")
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := gormstore.New(db)
	require.NoError(t, store.Migrate(ctx))
	audit := auditlog.New(db, zap.NewNop())
	require.NoError(t, audit.Migrate(ctx))

	f := &fixture{
		ctx:      ctx,
		store:    store,
		platform: &countingPlatform{Platform: store},
		audit:    audit,
		lastSync: &lastSyncSpy{},
		metrics:  metrics.NewNop(),
		hooks:    &Hooks{},
	}
	f.engine = NewEngine(Deps{
		Platform: f.platform,
		Audit:    audit,
		LastSync: f.lastSync,
		Metrics:  f.metrics,
		Hooks:    f.hooks,
		Logger:   zap.NewNop(),
	})

	f.source, err = store.CreateTenant(ctx, "Source", "source.example")
	require.NoError(t, err)
	f.aboutID, err = store.CreateContent(ctx, f.source, "page", "about", "About")
	require.NoError(t, err)

	scope, err := store.Enter(ctx, f.source)
	require.NoError(t, err)
	defer scope.Leave()

	trees := scope.Trees()
	f.menuID, err = trees.CreateTree(ctx, "Main", "main")
	require.NoError(t, err)
	f.items[0], err = trees.CreateItem(ctx, f.menuID, 0, tenant.ItemFields{
		Kind: tenant.KindCustom, Position: 1, Label: "Home", URL: "/",
	})
	require.NoError(t, err)
	f.items[1], err = trees.CreateItem(ctx, f.menuID, f.items[0], tenant.ItemFields{
		Kind: tenant.KindContent, ReferenceType: "page", ReferenceID: f.aboutID, Position: 1,
		Label: "About", URL: "https://source.example/about", Attributes: map[string]string{"icon": "info"},
	})
	require.NoError(t, err)
	f.items[2], err = trees.CreateItem(ctx, f.menuID, 0, tenant.ItemFields{
		Kind: tenant.KindCustom, Position: 2, Label: "Docs", URL: "https://docs.example", CSSClasses: []string{"external"},
	})
	require.NoError(t, err)
	require.NoError(t, scope.Slots().SetSlotBindings(ctx, map[string]int64{"primary": f.menuID, "footer": f.menuID + 100}))
	return f
}

// newTarget creates a tenant, optionally with its own "about" page, and returns the tenant id
// and the page id.
func (f *fixture) newTarget(t *testing.T, name string, withAbout bool) (int64, int64) {
	t.Helper()
	id, err := f.store.CreateTenant(f.ctx, name, "")
	require.NoError(t, err)
	// Occupies an id so target ids never line up with source ids.
	_, err = f.store.CreateContent(f.ctx, id, "page", "contact", "Contact")
	require.NoError(t, err)
	var about int64
	if withAbout {
		about, err = f.store.CreateContent(f.ctx, id, "page", "about", "About")
		require.NoError(t, err)
	}
	return id, about
}

// targetItems lists the items of the "main" menu on tenant id, nil when it has no such menu.
func (f *fixture) targetItems(t *testing.T, id int64) []tenant.Item {
	t.Helper()
	scope, err := f.store.Enter(f.ctx, id)
	require.NoError(t, err)
	defer scope.Leave()
	tree, err := scope.Trees().GetTreeBySlug(f.ctx, "main")
	require.NoError(t, err)
	if tree == nil {
		return nil
	}
	items, err := scope.Trees().ListItems(f.ctx, tree.ID)
	require.NoError(t, err)
	return items
}

func byLabel(items []tenant.Item, label string) *tenant.Item {
	for i := range items {
		if items[i].Label == label {
			return &items[i]
		}
	}
	return nil
}

func (f *fixture) sync(t *testing.T, targets []int64, strategy Strategy) *SyncResult {
	t.Helper()
	res, err := f.engine.SyncMenu(f.ctx, SyncRequest{
		SourceTenantID:  f.source,
		MenuID:          f.menuID,
		TargetTenantIDs: targets,
		Options:         Options{ConflictStrategy: strategy, SyncDisplaySlots: true, PreserveCustomFields: true},
		ActorID:         42,
	})
	require.NoError(t, err)
	return res
}
