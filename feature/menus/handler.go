package menus

import (
	"errors"

	"menu-sync/core/logger"
	"menu-sync/core/menusync"
	"menu-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for menu synchronization.
type Handler struct {
	service     *Service
	actorHeader string
}

// NewHandler creates a new HTTP handler. actorHeader names the header carrying the acting user id.
func NewHandler(service *Service, actorHeader string) *Handler {
	if actorHeader == "" {
		actorHeader = "X-Actor-Id"
	}
	return &Handler{service: service, actorHeader: actorHeader}
}

// RegisterRoutes registers the menu sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/menusync")
	group.Post("/sync", h.HandleSync)
	group.Post("/sync-all", h.HandleSyncAll)
	group.Post("/events/menu-updated", h.HandleMenuUpdated)
	group.Get("/menus", h.HandleListMenus)
	group.Get("/menus/:id/extract", h.HandleExtract)
	group.Post("/apply", h.HandleApply)
	group.Get("/snapshots", h.HandleListSnapshots)
	group.Post("/snapshots", h.HandleExportSnapshot)
	group.Delete("/snapshots", h.HandleDeleteSnapshot)
	group.Post("/snapshots/import", h.HandleImportSnapshot)
}

func (h *Handler) actor(c *fiber.Ctx) int64 {
	id := utils.ToInt64(c.Get(h.actorHeader))
	if id < 0 {
		return 0
	}
	return id
}

// fail maps a service error to a status code and JSON body.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case menusync.IsValidation(err):
		status = fiber.StatusBadRequest
	case menusync.IsNotFound(err), errors.Is(err, ErrSnapshotNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrDisabled):
		status = fiber.StatusConflict
	case errors.Is(err, ErrSnapshotsDisabled):
		status = fiber.StatusServiceUnavailable
	}
	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

// HandleSync syncs one menu of the source tenant.
// @Summary Sync Menu
// @Description Copies one menu of the configured source tenant to the requested targets, or to the configured targets when none are given. Returns per-target success and failure.
// @Tags menusync
// @Accept json
// @Produce json
// @Param request body SyncInput true "Sync request"
// @Success 200 {object} menusync.SyncResult "Sync Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Menu or source tenant not found"
// @Failure 409 {object} map[string]string "Synchronization disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menusync/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in SyncInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.ActorID = h.actor(c)

	l.Info("Manual sync requested", zap.Int64("menu_id", in.MenuID), zap.Int64s("targets", in.TargetTenantIDs))
	res, err := h.service.Sync(c.UserContext(), in)
	if err != nil {
		return h.fail(c, l, "Sync failed", err)
	}
	return c.JSON(res)
}

// HandleSyncAll syncs every menu of the source tenant.
// @Summary Sync All Menus
// @Description Syncs every menu of the source tenant, one after the other.
// @Tags menusync
// @Accept json
// @Produce json
// @Param request body SyncInput false "Targets and strategy override (menu_id is ignored)"
// @Success 200 {object} SyncAllResult "Results per menu"
// @Failure 409 {object} map[string]string "Synchronization disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menusync/sync-all [post]
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in SyncInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	in.ActorID = h.actor(c)

	res, err := h.service.SyncAll(c.UserContext(), in)
	if err != nil {
		return h.fail(c, l, "Sync all failed", err)
	}
	l.Info("Sync all finished", zap.Int("menus", len(res.Results)), zap.Int("not_started", len(res.Errors)))
	return c.JSON(res)
}

// MenuUpdatedEvent is the payload of a menu update notification.
type MenuUpdatedEvent struct {
	TenantID int64 `json:"tenant_id"`
	MenuID   int64 `json:"menu_id"`
}

// HandleMenuUpdated reacts to a menu update on a tenant.
// @Summary Menu Updated Event
// @Description Triggers an automatic sync when the settings enable auto mode and the event comes from the source tenant.
// @Tags menusync
// @Accept json
// @Produce json
// @Param event body MenuUpdatedEvent true "Event"
// @Success 200 {object} map[string]interface{} "triggered flag and sync result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menusync/events/menu-updated [post]
func (h *Handler) HandleMenuUpdated(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var ev MenuUpdatedEvent
	if err := c.BodyParser(&ev); err != nil {
		return badBody(c)
	}

	res, err := h.service.MenuUpdated(c.UserContext(), ev.TenantID, ev.MenuID)
	if err != nil {
		return h.fail(c, l, "Auto sync failed", err)
	}
	if res == nil {
		return c.JSON(fiber.Map{"triggered": false})
	}
	return c.JSON(fiber.Map{"triggered": true, "result": res})
}

// HandleListMenus lists the menus of a tenant.
// @Summary List Menus
// @Description Lists the menus of a tenant. Defaults to the source tenant.
// @Tags menusync
// @Produce json
// @Param tenant_id query int false "Tenant id"
// @Success 200 {array} tenant.Tree "Menus"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menusync/menus [get]
func (h *Handler) HandleListMenus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	menus, err := h.service.ListMenus(c.UserContext(), int64(c.QueryInt("tenant_id")))
	if err != nil {
		return h.fail(c, l, "Listing menus failed", err)
	}
	return c.JSON(menus)
}

// HandleExtract returns the portable form of a menu.
// @Summary Extract Menu
// @Description Returns the tenant-agnostic form of a menu, as it would be applied to targets.
// @Tags menusync
// @Produce json
// @Param id path int true "Menu id"
// @Param tenant_id query int false "Tenant id, defaults to the source tenant"
// @Success 200 {object} menusync.PortableMenu "Portable menu"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Menu not found"
// @Router /menusync/menus/{id}/extract [get]
func (h *Handler) HandleExtract(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	menu, err := h.service.Extract(c.UserContext(), int64(c.QueryInt("tenant_id")), utils.ToInt64(c.Params("id")))
	if err != nil {
		return h.fail(c, l, "Extraction failed", err)
	}
	return c.JSON(menu)
}

// HandleApply applies a portable menu to one target.
// @Summary Apply Menu
// @Description Applies a portable menu to a single target tenant. Options default to the settings.
// @Tags menusync
// @Accept json
// @Produce json
// @Param request body ApplyInput true "Apply request"
// @Success 200 {object} menusync.SyncOutcome "Outcome, check succeeded"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Synchronization disabled"
// @Router /menusync/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in ApplyInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.ActorID = h.actor(c)

	outcome, err := h.service.Apply(c.UserContext(), in)
	if err != nil {
		return h.fail(c, l, "Apply failed", err)
	}
	return c.JSON(outcome)
}

// HandleDeleteSnapshot removes one stored snapshot.
// @Summary Delete Snapshot
// @Tags menusync
// @Produce json
// @Param key query string true "Snapshot key"
// @Success 200 {object} map[string]string "Deleted key"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 503 {object} map[string]string "Object storage not configured"
// @Router /menusync/snapshots [delete]
func (h *Handler) HandleDeleteSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key := c.Query("key")
	if err := h.service.DeleteSnapshot(c.UserContext(), key); err != nil {
		return h.fail(c, l, "Snapshot delete failed", err)
	}
	return c.JSON(fiber.Map{"deleted": key})
}

// HandleListSnapshots lists stored snapshots.
// @Summary List Snapshots
// @Description Lists stored menu snapshots, newest first.
// @Tags menusync
// @Produce json
// @Param slug query string false "Menu slug"
// @Success 200 {array} SnapshotInfo "Snapshots"
// @Failure 503 {object} map[string]string "Object storage not configured"
// @Router /menusync/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snaps, err := h.service.ListSnapshots(c.UserContext(), c.Query("slug"))
	if err != nil {
		return h.fail(c, l, "Listing snapshots failed", err)
	}
	if snaps == nil {
		snaps = []SnapshotInfo{}
	}
	return c.JSON(snaps)
}

// ExportRequest selects the menu to snapshot.
type ExportRequest struct {
	TenantID int64  `json:"tenant_id"`
	MenuID   int64  `json:"menu_id"`
	Format   string `json:"format"`
}

// HandleExportSnapshot stores a snapshot of a menu.
// @Summary Export Snapshot
// @Description Extracts a menu and stores it in object storage as JSON or YAML.
// @Tags menusync
// @Accept json
// @Produce json
// @Param request body ExportRequest true "Export request"
// @Success 201 {object} SnapshotInfo "Stored snapshot"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Menu not found"
// @Failure 503 {object} map[string]string "Object storage not configured"
// @Router /menusync/snapshots [post]
func (h *Handler) HandleExportSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	info, err := h.service.ExportSnapshot(c.UserContext(), req.TenantID, req.MenuID, req.Format)
	if err != nil {
		return h.fail(c, l, "Snapshot export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleImportSnapshot applies a stored snapshot.
// @Summary Import Snapshot
// @Description Downloads a snapshot and applies it to the requested targets. The snapshot's own source tenant is a valid target.
// @Tags menusync
// @Accept json
// @Produce json
// @Param request body ImportInput true "Import request"
// @Success 200 {object} menusync.SyncResult "Import Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 409 {object} map[string]string "Synchronization disabled"
// @Failure 503 {object} map[string]string "Object storage not configured"
// @Router /menusync/snapshots/import [post]
func (h *Handler) HandleImportSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in ImportInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.ActorID = h.actor(c)

	res, err := h.service.ImportSnapshot(c.UserContext(), in)
	if err != nil {
		return h.fail(c, l, "Snapshot import failed", err)
	}
	return c.JSON(res)
}
