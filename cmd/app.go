package cmd

import (
	"context"
	"fmt"

	"menu-sync/core/auditlog"
	"menu-sync/core/config"
	"menu-sync/core/database"
	"menu-sync/core/logger"
	"menu-sync/core/menusync"
	"menu-sync/core/metrics"
	"menu-sync/core/settings"
	"menu-sync/core/storage"
	"menu-sync/core/tenant/gormstore"
	"menu-sync/feature/menus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the wired components shared by the commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	platform *gormstore.Store
	audit    *auditlog.Log
	settings *settings.Store
	metrics  *metrics.Metrics
	engine   *menusync.Engine
	storage  storage.Client
}

// bootstrap loads the configuration and connects to the database. The storage client is only
// created when withStorage is set; m may be nil.
func bootstrap(withStorage bool, m *metrics.Metrics) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg = logg.With(zap.String("database", cfg.Database.Driver))

	seed, err := cfg.Sync.Seed()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		logger:   logg,
		db:       db,
		platform: gormstore.New(db),
		audit:    auditlog.New(db, logg.Named("audit")),
		metrics:  m,
	}
	a.settings = settings.NewStore(db, a.platform, seed)
	a.engine = menusync.NewEngine(menusync.Deps{
		Platform: a.platform,
		Audit:    a.audit,
		LastSync: a.settings,
		Metrics:  m,
		Logger:   logg.Named("engine"),
	})

	if withStorage {
		a.storage, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}
	return a, nil
}

// migrate creates the tables owned by the service. withPlatform also creates the content store.
func (a *app) migrate(ctx context.Context, withPlatform bool) error {
	if withPlatform {
		if err := a.platform.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate content store: %w", err)
		}
	}
	if err := a.audit.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate audit log: %w", err)
	}
	if err := a.settings.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate settings: %w", err)
	}
	return nil
}

// menuService wires the sync service. Snapshots are available only with a storage client.
func (a *app) menuService() *menus.Service {
	return menus.NewService(a.engine, a.settings, a.platform, a.storage,
		a.cfg.Storage.Bucket, a.cfg.Sync.SnapshotPrefix, a.logger.Named("menus"))
}

func (a *app) close() {
	_ = a.logger.Sync()
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
