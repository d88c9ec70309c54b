package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
)

// HealthHandler liveness con la lectura del snapshot como comprobación.
type HealthHandler struct {
	store   ports.SnapshotStore
	service string
}

func NewHealthHandler(store ports.SnapshotStore, service string) *HealthHandler {
	return &HealthHandler{store: store, service: service}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if _, err := h.store.Get(); err != nil {
		c.Locals(localError, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": h.service})
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
