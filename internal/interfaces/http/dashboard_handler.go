package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/abdoulayediaw-ops/orsre/internal/application/analytics"
	"github.com/abdoulayediaw-ops/orsre/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
	ai *usecase.AIUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, ai *usecase.AIUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, ai: ai}
}

// GetSummary godoc
// @Summary      Indicadores del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetInsights godoc
// @Summary      Resumen narrativo del asistente IA
// @Description  Nunca falla: si el proveedor no responde a tiempo se devuelve un mensaje fijo con fallback=true.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightsDTO
// @Router       /api/dashboard/insights [get]
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	return c.JSON(h.ai.Insights(c.UserContext()))
}
