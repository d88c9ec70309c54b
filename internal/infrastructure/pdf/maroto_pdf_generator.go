// Package pdf genera el informe de stock por almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ORSRE + título      │  Fecha + autor               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: almacenes / stock total / pendientes                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por almacén: nombre, región, responsable                   │
//	│     TABLA: Cultivo | kg                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES POR CULTIVO: Cultivo | kg | t                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/abdoulayediaw-ops/orsre/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 5, Green: 150, Blue: 105}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReport(_ context.Context, data report.StockReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport de stock ORSRE", true).
		WithAuthor(nonEmpty(data.GeneratedBy, "ORSRE"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, w := range data.Warehouses {
		m.AddRows(warehouseRows(w)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(cropTotalsRows(data.Crops)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data report.StockReportData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("ORSRE", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Rapport de stock par entrepôt", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Date : "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Par : "+nonEmpty(data.GeneratedBy, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func kpiRow(data report.StockReportData) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 5}),
		)
	}
	return row.New(14).Add(
		kpi("ENTREPÔTS", strconv.Itoa(data.WarehouseCount)),
		kpi("STOCK TOTAL", data.TotalTons+" t"),
		kpi("EN ATTENTE", strconv.Itoa(data.PendingCount)),
	)
}

func warehouseRows(w report.WarehouseStock) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(w.Name, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Région : %s   |   Responsable : %s", nonEmpty(w.Region, "—"), nonEmpty(w.Manager, "—")),
				props.Text{Size: 8, Color: colorGray}),
		)),
		tableHeader("Culture", "Poids (kg)"),
	}
	if len(w.Lines) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Aucun stock", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		)))
	}
	for _, l := range w.Lines {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(l.Crop, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(formatKg(l.Kg), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	rows = append(rows, row.New(6).Add(
		col.New(8).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(formatKg(w.TotalKg), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
	))
	return rows
}

func cropTotalsRows(crops []report.CropTotal) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("TOTAUX PAR CULTURE", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
		)),
		row.New(7).Add(
			col.New(6).Add(text.New("Culture", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New("kg", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("t", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
		),
	}
	for _, c := range crops {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(c.Crop, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(formatKg(c.Kg), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(c.Tons, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func tableHeader(left, right string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(left, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(4).Add(text.New(right, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatKg agrega separador de miles con espacio: 25000 -> "25 000".
func formatKg(kg int64) string {
	s := strconv.FormatInt(kg, 10)
	neg := false
	if kg < 0 {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
