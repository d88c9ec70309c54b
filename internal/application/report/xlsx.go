package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const movementSheet = "Mouvements"

// BuildXLSX genera el libro con la hoja Mouvements: cabecera en negrita y una fila por movimiento.
func BuildXLSX(rows []MovementRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", movementSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	header := make([]interface{}, len(MovementHeader))
	for i, h := range MovementHeader {
		header[i] = h
	}
	if err := writeRow(f, 1, header); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9EAD3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(MovementHeader), 1)
	if err != nil {
		return nil, fmt.Errorf("xlsx: celda cabecera: %w", err)
	}
	if err := f.SetCellStyle(movementSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: aplicar estilo: %w", err)
	}

	for i, r := range rows {
		values := []interface{}{
			r.ID,
			r.Date.UTC().Format("2006-01-02 15:04:05"),
			r.Type,
			r.Warehouse,
			r.Crop,
			r.Bags,
			r.Weight,
			r.Status,
			r.CreatedBy,
		}
		if err := writeRow(f, i+2, values); err != nil {
			return nil, err
		}
	}

	for _, w := range []struct {
		col   string
		width float64
	}{{"A", 40}, {"B", 20}, {"D", 30}} {
		if err := f.SetColWidth(movementSheet, w.col, w.col, w.width); err != nil {
			return nil, fmt.Errorf("xlsx: ancho columna %s: %w", w.col, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow escribe values desde la columna A de la fila indicada (1-based).
func writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", row, err)
	}
	if err := f.SetSheetRow(movementSheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", row, err)
	}
	return nil
}
