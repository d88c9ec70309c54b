package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/inventory"
	"github.com/abdoulayediaw-ops/orsre/internal/application/report"
)

// MovementHandler registro, consulta y exportación de movimientos (protegido).
type MovementHandler struct {
	uc     *inventory.MovementUseCase
	report *report.ReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase, reportUC *report.ReportUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, report: reportUC}
}

// Create godoc
// @Summary      Registrar movimiento
// @Description  El movimiento queda PENDING; el stock no cambia hasta la validación de un ADMIN.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "type, warehouseId, crop, bags, weight"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "PENDING | VALIDATED | REJECTED"
// @Param        warehouseId  query  string  false  "ID del almacén"
// @Param        type         query  string  false  "INBOUND | OUTBOUND"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var filter dto.MovementFilter
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar movimientos en CSV
// @Tags         movements
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/movements/export.csv [get]
func (h *MovementHandler) ExportCSV(c *fiber.Ctx) error {
	f, err := h.report.ExportCSV()
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// ExportXLSX godoc
// @Summary      Exportar movimientos en Excel
// @Tags         movements
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/movements/export.xlsx [get]
func (h *MovementHandler) ExportXLSX(c *fiber.Ctx) error {
	f, err := h.report.ExportXLSX()
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

func sendFile(c *fiber.Ctx, f *report.File) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+f.Name+`"`)
	return c.Send(f.Body)
}
