package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/internal/application/report"
)

// ReportHandler informe de stock en PDF.
type ReportHandler struct {
	uc *report.ReportUseCase
}

func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Informe de stock por almacén (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	f, err := h.uc.StockPDF(c.UserContext(), GetUserName(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}
