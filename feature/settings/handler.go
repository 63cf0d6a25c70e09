package settings

import (
	"encoding/json"
	"errors"

	"menu-sync/core/logger"
	syncsettings "menu-sync/core/settings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync settings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the settings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/settings")
	group.Get("/", h.HandleGet)
	group.Put("/", h.HandleUpdate)
	group.Post("/reset", h.HandleReset)
	group.Get("/tenants", h.HandleTenants)
}

var errBadBody = errors.New("invalid request body")

// HandleGet returns the current settings.
// @Summary Get Sync Settings
// @Tags settings
// @Produce json
// @Success 200 {object} syncsettings.Settings "Settings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	st, err := h.service.Get(c.UserContext())
	if err != nil {
		l.Error("Loading settings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(st)
}

// HandleUpdate updates the settings. Fields missing from the body keep their current value.
// @Summary Update Sync Settings
// @Description Validates and saves the settings. Every invalid field is reported.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body syncsettings.Settings true "Settings, partial documents allowed"
// @Success 200 {object} syncsettings.Settings "Saved settings"
// @Failure 400 {object} map[string]interface{} "Validation errors"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body := c.Body()
	st, err := h.service.Update(c.UserContext(), func(s *syncsettings.Settings) error {
		if err := json.Unmarshal(body, s); err != nil {
			return errBadBody
		}
		return nil
	})

	var invalid syncsettings.ValidationErrors
	switch {
	case err == nil:
		return c.JSON(st)
	case errors.Is(err, errBadBody):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	case errors.As(err, &invalid):
		l.Warn("Rejected settings", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid settings",
			"fields": invalid,
		})
	default:
		l.Error("Saving settings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// HandleReset restores the configured defaults.
// @Summary Reset Sync Settings
// @Tags settings
// @Produce json
// @Success 200 {object} syncsettings.Settings "Default settings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	st, err := h.service.Reset(c.UserContext())
	if err != nil {
		l.Error("Resetting settings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(st)
}

// HandleTenants lists the tenants of the platform.
// @Summary List Tenants
// @Tags settings
// @Produce json
// @Success 200 {array} tenant.Info "Tenants"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings/tenants [get]
func (h *Handler) HandleTenants(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tenants, err := h.service.Tenants(c.UserContext())
	if err != nil {
		l.Error("Listing tenants failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tenants)
}
