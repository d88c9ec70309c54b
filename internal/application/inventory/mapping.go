package inventory

import (
	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// ToMovementResponse proyecta el movimiento con el nombre del almacén resuelto.
func ToMovementResponse(d *entity.AppData, m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		Date:          m.Date,
		Type:          m.Type,
		WarehouseID:   m.WarehouseID,
		WarehouseName: d.WarehouseLabel(m.WarehouseID),
		Crop:          m.Crop,
		Bags:          m.Bags,
		Weight:        m.Weight,
		Status:        m.Status,
		CreatedBy:     m.CreatedBy,
		ResolvedBy:    m.ResolvedBy,
		ResolvedAt:    m.ResolvedAt,
	}
}
