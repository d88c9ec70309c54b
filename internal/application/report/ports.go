package report

import (
	"context"
	"time"
)

// StockReportData datos planos del informe PDF de stock.
type StockReportData struct {
	GeneratedAt    time.Time
	GeneratedBy    string
	Warehouses     []WarehouseStock
	Crops          []CropTotal
	TotalKg        int64
	TotalTons      string // kg/1000 con un decimal
	PendingCount   int
	WarehouseCount int
}

// WarehouseStock una sección del informe por almacén.
type WarehouseStock struct {
	Name    string
	Region  string
	Manager string
	Lines   []StockLine
	TotalKg int64
}

// StockLine cultivo y cantidad.
type StockLine struct {
	Crop string
	Kg   int64
}

// CropTotal total consolidado por cultivo.
type CropTotal struct {
	Crop string
	Kg   int64
	Tons string
}

// PDFGenerator puerto de salida para el informe de stock en PDF.
type PDFGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}
