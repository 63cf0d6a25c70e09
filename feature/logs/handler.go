package logs

import (
	"errors"
	"fmt"
	"time"

	"menu-sync/core/auditlog"
	"menu-sync/core/logger"
	"menu-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the audit log.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the log routes. Static paths come before /:id.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/logs")
	group.Get("/", h.HandleList)
	group.Get("/stats", h.HandleStats)
	group.Delete("/all", h.HandlePurgeAll)
	group.Delete("/", h.HandlePurge)
	group.Get("/:id", h.HandleGet)
}

// parseTime accepts RFC 3339 or a plain date. A plain end date covers the whole day.
func parseTime(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func parseRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	start, err := parseTime(c.Query("start"), false)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseTime(c.Query("end"), true)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// HandleList returns a page of audit records.
// @Summary List Sync Logs
// @Description Returns audit records of sync attempts, newest first by default.
// @Tags logs
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param per_page query int false "Page size (max 200)"
// @Param status query string false "success or error"
// @Param source query int false "Source tenant id"
// @Param target query int false "Target tenant id"
// @Param menu query int false "Menu id"
// @Param start query string false "From date (YYYY-MM-DD or RFC 3339)"
// @Param end query string false "To date, inclusive"
// @Param order_by query string false "id, timestamp, source_tenant_id, target_tenant_id or status"
// @Param order query string false "ASC or DESC"
// @Success 200 {object} Page "Logs"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /logs [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	q := Query{
		Filter: auditlog.Filter{
			SourceTenantID: utils.ToInt64(c.Query("source")),
			TargetTenantID: utils.ToInt64(c.Query("target")),
			MenuID:         utils.ToInt64(c.Query("menu")),
			Status:         c.Query("status"),
			Start:          start,
			End:            end,
			OrderBy:        c.Query("order_by"),
			Order:          c.Query("order"),
		},
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", auditlog.DefaultLimit),
	}

	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		l.Error("Listing logs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(page)
}

// HandleGet returns one audit record.
// @Summary Get Sync Log
// @Tags logs
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} auditlog.Record "Record"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /logs/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rec, err := h.service.Get(c.UserContext(), utils.ToInt64(c.Params("id")))
	if errors.Is(err, auditlog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Reading log failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rec)
}

// HandleStats returns aggregate statistics.
// @Summary Sync Statistics
// @Description Counts attempts, successes, failures and synced items, with the success rate in percent.
// @Tags logs
// @Produce json
// @Param start query string false "From date (YYYY-MM-DD or RFC 3339)"
// @Param end query string false "To date, inclusive"
// @Success 200 {object} auditlog.Stats "Statistics"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /logs/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	stats, err := h.service.Stats(c.UserContext(), start, end)
	if err != nil {
		l.Error("Computing statistics failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandlePurge deletes old records.
// @Summary Purge Old Logs
// @Tags logs
// @Produce json
// @Param older_than_days query int false "Age in days (default 30)"
// @Success 200 {object} map[string]interface{} "Deleted count"
// @Router /logs [delete]
func (h *Handler) HandlePurge(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	days := c.QueryInt("older_than_days", auditlog.DefaultRetentionDays)
	n, err := h.service.Purge(c.UserContext(), days)
	if err != nil {
		l.Error("Purge failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": n})
}

// HandlePurgeAll deletes every record.
// @Summary Clear Logs
// @Tags logs
// @Produce json
// @Success 200 {object} map[string]interface{} "Deleted count"
// @Router /logs/all [delete]
func (h *Handler) HandlePurgeAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := h.service.PurgeAll(c.UserContext())
	if err != nil {
		l.Error("Clearing logs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": n})
}
