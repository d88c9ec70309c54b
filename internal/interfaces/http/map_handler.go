package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
)

// mapProvider lo implementa *geo.MapService.
type mapProvider interface {
	Markers() ([]dto.MapMarkerDTO, error)
	KML() ([]byte, error)
}

const kmlContentType = "application/vnd.google-earth.kml+xml"

// MapHandler proyección geográfica de los almacenes.
type MapHandler struct {
	svc mapProvider
}

func NewMapHandler(svc mapProvider) *MapHandler {
	return &MapHandler{svc: svc}
}

// Markers godoc
// @Summary      Marcadores de almacenes
// @Tags         map
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MapMarkerDTO
// @Router       /api/map/markers [get]
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	out, err := h.svc.Markers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// KML godoc
// @Summary      Almacenes en KML
// @Tags         map
// @Security     Bearer
// @Produce      application/vnd.google-earth.kml+xml
// @Success      200  {file}  file
// @Router       /api/map/warehouses.kml [get]
func (h *MapHandler) KML(c *fiber.Ctx) error {
	body, err := h.svc.KML()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, kmlContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="entrepots.kml"`)
	return c.Send(body)
}
