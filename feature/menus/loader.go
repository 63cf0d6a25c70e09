package menus

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wraps an already wired service.
func NewFeature(svc *Service, actorHeader string) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc, actorHeader)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "menusync"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
