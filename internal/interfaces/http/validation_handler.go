package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/internal/application/inventory"
)

// ValidationHandler cola de validación (solo ADMIN).
type ValidationHandler struct {
	movements *inventory.MovementUseCase
	resolve   *inventory.ResolveMovementUseCase
}

func NewValidationHandler(movements *inventory.MovementUseCase, resolve *inventory.ResolveMovementUseCase) *ValidationHandler {
	return &ValidationHandler{movements: movements, resolve: resolve}
}

// ListPending godoc
// @Summary      Movimientos pendientes de validación
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/validations [get]
func (h *ValidationHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.movements.ListPending()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar movimiento
// @Description  Aplica el efecto sobre el stock. Con la política strict, una salida sin stock suficiente
// @Description  se rechaza con 409 INSUFFICIENT_STOCK y el movimiento sigue PENDING.
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.ResolutionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/validations/{id}/approve [post]
func (h *ValidationHandler) Approve(c *fiber.Ctx) error {
	out, err := h.resolve.Approve(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar movimiento
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.ResolutionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/validations/{id}/reject [post]
func (h *ValidationHandler) Reject(c *fiber.Ctx) error {
	out, err := h.resolve.Reject(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
