package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"menu-sync/core/auditlog"
	"menu-sync/core/loader"
	"menu-sync/core/logger"
	"menu-sync/core/metrics"
	"menu-sync/core/middleware/auth"
	"menu-sync/core/middleware/rayid"
	"menu-sync/core/storage"

	"menu-sync/feature/integrity"
	"menu-sync/feature/logs"
	"menu-sync/feature/menus"
	syncsettings "menu-sync/feature/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "menu-sync/docs/swagger"
)

// @title Menu Sync API
// @version 1.0
// @description API for synchronizing navigation menus across the tenants of a multi-tenant platform.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the menu sync server",
	Long:  `Starts the HTTP server, the audit retention job and all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(true, metrics.New(prometheus.DefaultRegisterer))
		if err != nil {
			return err
		}
		defer a.close()
		logg := a.logger
		zap.ReplaceGlobals(logg)

		ctx := context.Background()
		if err := a.migrate(ctx, false); err != nil {
			return err
		}

		if a.cfg.Storage.CreateBucket {
			// Snapshots stay unusable until the bucket exists; the rest of the API does not need it.
			created, err := storage.EnsureBucket(ctx, a.storage, a.cfg.Storage.Bucket, a.cfg.Storage.Region)
			switch {
			case err != nil:
				logg.Warn("Snapshot bucket unavailable", zap.String("bucket", a.cfg.Storage.Bucket), zap.Error(err))
			case created:
				logg.Info("Created snapshot bucket", zap.String("bucket", a.cfg.Storage.Bucket))
			}
		}

		retention, err := auditlog.NewRetention(a.audit, a.cfg.Sync.LogRetentionDays, a.cfg.Sync.RetentionSchedule, logg.Named("retention"))
		if err != nil {
			return err
		}
		retention.Start()
		defer retention.Stop()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             a.cfg.Server.EffectiveBodyLimit(),
		})

		mgr := loader.NewManager()
		mgr.Register(menus.NewFeature(a.menuService(), a.cfg.Server.ActorHeader))
		mgr.Register(logs.NewFeature(a.audit, logg.Named("logs")))
		mgr.Register(syncsettings.NewFeature(a.settings, a.platform, logg.Named("settings")))
		mgr.Register(integrity.NewFeature(a.storage, a.cfg.Storage.Bucket, []string{a.cfg.Sync.SnapshotPrefix}, a.db, logg.Named("integrity")))

		// RayID first so everything below can be traced.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		if !a.cfg.Server.IsProtected() {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{
			ApiKey:    a.cfg.Server.ApiKey,
			SkipPaths: []string{"/swagger", "/metrics"},
		}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}
		for _, f := range mgr.Features() {
			logg.Debug("Feature loaded", zap.String("feature", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
