package report

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"time"

	"github.com/abdoulayediaw-ops/orsre/internal/application/analytics"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// File artefacto descargable.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// ReportUseCase exportaciones de movimientos (CSV, XLSX) e informe de stock (PDF).
type ReportUseCase struct {
	store ports.SnapshotStore
	pdf   PDFGenerator
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se expone el informe.
func NewReportUseCase(store ports.SnapshotStore, pdf PDFGenerator) *ReportUseCase {
	return &ReportUseCase{store: store, pdf: pdf, now: time.Now}
}

// ExportCSV exporta todos los movimientos en CSV.
func (uc *ReportUseCase) ExportCSV() (*File, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, MovementRows(&d)); err != nil {
		return nil, err
	}
	return &File{Name: CSVFilename(uc.now()), ContentType: "text/csv; charset=utf-8", Body: buf.Bytes()}, nil
}

// ExportXLSX exporta todos los movimientos en una hoja de cálculo.
func (uc *ReportUseCase) ExportXLSX() (*File, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	body, err := BuildXLSX(MovementRows(&d))
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        XLSXFilename(uc.now()),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        body,
	}, nil
}

// StockPDF genera el informe de stock por almacén.
func (uc *ReportUseCase) StockPDF(ctx context.Context, requestedBy string) (*File, error) {
	if uc.pdf == nil {
		return nil, errors.New("report: generador PDF no configurado")
	}
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	body, err := uc.pdf.GenerateStockReport(ctx, BuildStockReportData(&d, requestedBy, now))
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        "rapport_stock_" + now.UTC().Format("2006-01-02") + ".pdf",
		ContentType: "application/pdf",
		Body:        body,
	}, nil
}

// BuildStockReportData arma los datos del PDF a partir del snapshot.
func BuildStockReportData(d *entity.AppData, requestedBy string, now time.Time) StockReportData {
	summary := analytics.Summarize(d)
	out := StockReportData{
		GeneratedAt:    now,
		GeneratedBy:    requestedBy,
		TotalKg:        summary.TotalStockKg,
		TotalTons:      summary.TotalStockTons.StringFixed(1),
		PendingCount:   summary.PendingCount,
		WarehouseCount: summary.WarehouseCount,
	}
	for i := range d.Warehouses {
		w := &d.Warehouses[i]
		ws := WarehouseStock{Name: w.Name, Region: w.Region, Manager: w.Manager, TotalKg: w.TotalKg()}
		for crop, kg := range w.Stock {
			ws.Lines = append(ws.Lines, StockLine{Crop: crop, Kg: kg})
		}
		sort.Slice(ws.Lines, func(a, b int) bool { return ws.Lines[a].Crop < ws.Lines[b].Crop })
		out.Warehouses = append(out.Warehouses, ws)
	}
	for _, c := range summary.Crops {
		out.Crops = append(out.Crops, CropTotal{Crop: c.Crop, Kg: c.Kg, Tons: c.Tons.String()})
	}
	return out
}
