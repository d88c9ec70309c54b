package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
type CreateMovementRequest struct {
	Type        string `json:"type"` // INBOUND | OUTBOUND (acepta ENTREE/SORTIE)
	WarehouseID string `json:"warehouseId"`
	Crop        string `json:"crop"`
	Bags        int64  `json:"bags"`
	Weight      int64  `json:"weight"` // kg
}

// MovementFilter filtros de GET /api/movements.
type MovementFilter struct {
	Status      string `query:"status"`
	WarehouseID string `query:"warehouseId"`
	Type        string `query:"type"`
}

// MovementResponse salida de un movimiento con el nombre del almacén resuelto.
type MovementResponse struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	Type          string     `json:"type"`
	WarehouseID   string     `json:"warehouseId"`
	WarehouseName string     `json:"warehouseName"`
	Crop          string     `json:"crop"`
	Bags          int64      `json:"bags"`
	Weight        int64      `json:"weight"`
	Status        string     `json:"status"`
	CreatedBy     string     `json:"createdBy"`
	ResolvedBy    string     `json:"resolvedBy,omitempty"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
}

// ResolutionResponse resultado de aprobar o rechazar.
type ResolutionResponse struct {
	Movement     MovementResponse `json:"movement"`
	StockBefore  int64            `json:"stockBefore"`
	StockAfter   int64            `json:"stockAfter"`
	StockChanged bool             `json:"stockChanged"`
	Warning      string           `json:"warning,omitempty"`
}
