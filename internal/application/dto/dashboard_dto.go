package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	WarehouseCount int             `json:"warehouse_count"`
	MovementCount  int             `json:"movement_count"`
	PendingCount   int             `json:"pending_count"`
	TotalStockKg   int64           `json:"total_stock_kg"`
	TotalStockTons decimal.Decimal `json:"total_stock_tons"` // kg/1000, un decimal
	Crops          []CropTotalDTO  `json:"crops"`            // ordenado por nombre
}

// CropTotalDTO total por cultivo para el gráfico.
type CropTotalDTO struct {
	Crop string          `json:"crop"`
	Kg   int64           `json:"kg"`
	Tons decimal.Decimal `json:"tons"` // redondeado a entero
}

// InsightsDTO resumen narrativo del asistente.
type InsightsDTO struct {
	Summary  string `json:"summary"`
	Fallback bool   `json:"fallback"`
}

// MapMarkerDTO marcador de un almacén para el mapa.
type MapMarkerDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Manager string  `json:"manager"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	TotalKg int64   `json:"total_kg"`
}
