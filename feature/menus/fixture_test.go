package menus

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"menu-sync/core/auditlog"
	"menu-sync/core/database"
	"menu-sync/core/menusync"
	"menu-sync/core/metrics"
	"menu-sync/core/settings"
	"menu-sync/core/storage/mocks"
	"menu-sync/core/tenant"
	"menu-sync/core/tenant/gormstore"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	ctx      context.Context
	store    *gormstore.Store
	audit    *auditlog.Log
	settings *settings.Store
	client   *mocks.Client
	svc      *Service

	source  int64
	target  int64
	main    int64
	footer  int64
	aboutID int64
}

// newFixture builds a source tenant with two menus ("main" referencing the "about" page, and
// "footer") and one target tenant that has its own "about" page.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := gormstore.New(db)
	require.NoError(t, store.Migrate(ctx))
	audit := auditlog.New(db, zap.NewNop())
	require.NoError(t, audit.Migrate(ctx))

	f := &fixture{ctx: ctx, store: store, audit: audit, client: new(mocks.Client)}

	f.source, err = store.CreateTenant(ctx, "Source", "source.example")
	require.NoError(t, err)
	f.target, err = store.CreateTenant(ctx, "Target", "target.example")
	require.NoError(t, err)
	f.aboutID, err = store.CreateContent(ctx, f.source, "page", "about", "About")
	require.NoError(t, err)
	_, err = store.CreateContent(ctx, f.target, "page", "about", "About")
	require.NoError(t, err)

	scope, err := store.Enter(ctx, f.source)
	require.NoError(t, err)
	trees := scope.Trees()
	f.main, err = trees.CreateTree(ctx, "Main", "main")
	require.NoError(t, err)
	home, err := trees.CreateItem(ctx, f.main, 0, tenant.ItemFields{Kind: tenant.KindCustom, Position: 1, Label: "Home", URL: "/"})
	require.NoError(t, err)
	_, err = trees.CreateItem(ctx, f.main, home, tenant.ItemFields{
		Kind: tenant.KindContent, ReferenceType: "page", ReferenceID: f.aboutID, Position: 1, Label: "About",
	})
	require.NoError(t, err)
	f.footer, err = trees.CreateTree(ctx, "Footer", "footer")
	require.NoError(t, err)
	_, err = trees.CreateItem(ctx, f.footer, 0, tenant.ItemFields{Kind: tenant.KindCustom, Position: 1, Label: "Imprint", URL: "/imprint"})
	require.NoError(t, err)
	scope.Leave()

	f.settings = settings.NewStore(db, store, settings.Settings{
		SourceTenantID:       f.source,
		TargetTenantIDs:      []int64{f.target},
		SyncMode:             settings.ModeManual,
		ConflictStrategy:     menusync.StrategyOverride,
		SyncDisplaySlots:     true,
		PreserveCustomFields: true,
		Enabled:              true,
	})
	require.NoError(t, f.settings.Migrate(ctx))

	engine := menusync.NewEngine(menusync.Deps{
		Platform: store,
		Audit:    audit,
		LastSync: f.settings,
		Metrics:  metrics.NewNop(),
		Logger:   zap.NewNop(),
	})
	f.svc = NewService(engine, f.settings, store, f.client, "menu-sync", "snapshots", zap.NewNop())
	return f
}

// update changes the saved settings.
func (f *fixture) update(t *testing.T, change func(*settings.Settings)) {
	t.Helper()
	st, err := f.settings.Load(f.ctx)
	require.NoError(t, err)
	change(&st)
	_, err = f.settings.Save(f.ctx, st)
	require.NoError(t, err)
}

func (f *fixture) items(t *testing.T, tenantID int64, slug string) []tenant.Item {
	t.Helper()
	scope, err := f.store.Enter(f.ctx, tenantID)
	require.NoError(t, err)
	defer scope.Leave()
	tree, err := scope.Trees().GetTreeBySlug(f.ctx, slug)
	require.NoError(t, err)
	if tree == nil {
		return nil
	}
	items, err := scope.Trees().ListItems(f.ctx, tree.ID)
	require.NoError(t, err)
	return items
}

func (f *fixture) records(t *testing.T) []auditlog.Record {
	t.Helper()
	recs, err := f.audit.Query(f.ctx, auditlog.Filter{Order: "ASC"})
	require.NoError(t, err)
	return recs
}

// memoryBucket backs PutObject and GetObject of the mock client with a map.
type memoryBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fixture) memoryBucket() *memoryBucket {
	b := &memoryBucket{objects: make(map[string][]byte)}
	f.client.On("PutObject", mock.Anything, "menu-sync", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			b.mu.Lock()
			b.objects[args.String(2)] = data
			b.mu.Unlock()
		}).
		Return(minio.UploadInfo{}, nil)
	return b
}

func (b *memoryBucket) serve(client *mocks.Client, key string) {
	b.mu.Lock()
	data := b.objects[key]
	b.mu.Unlock()
	client.On("GetObject", mock.Anything, "menu-sync", key, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)
}
