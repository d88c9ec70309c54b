package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// MovementHeader cabecera de las exportaciones de movimientos.
var MovementHeader = []string{"ID", "Date", "Type", "Warehouse", "Crop", "Bags", "Weight", "Status", "CreatedBy"}

// MovementRow fila aplanada de un movimiento con el almacén resuelto.
type MovementRow struct {
	ID        string
	Date      time.Time
	Type      string
	Warehouse string
	Crop      string
	Bags      int64
	Weight    int64
	Status    string
	CreatedBy string
}

// Strings celdas en el orden de MovementHeader.
func (r MovementRow) Strings() []string {
	return []string{
		r.ID,
		r.Date.UTC().Format(time.RFC3339),
		r.Type,
		r.Warehouse,
		r.Crop,
		strconv.FormatInt(r.Bags, 10),
		strconv.FormatInt(r.Weight, 10),
		r.Status,
		r.CreatedBy,
	}
}

// MovementRows proyecta todos los movimientos, más reciente primero por fecha.
func MovementRows(d *entity.AppData) []MovementRow {
	rows := make([]MovementRow, 0, len(d.Movements))
	for i := range d.Movements {
		m := &d.Movements[i]
		rows = append(rows, MovementRow{
			ID:        m.ID,
			Date:      m.Date,
			Type:      m.Type,
			Warehouse: d.WarehouseLabel(m.WarehouseID),
			Crop:      m.Crop,
			Bags:      m.Bags,
			Weight:    m.Weight,
			Status:    m.Status,
			CreatedBy: m.CreatedBy,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows
}

// WriteCSV escribe cabecera + una fila por movimiento. Los campos con comas,
// comillas o saltos de línea se entrecomillan.
func WriteCSV(w io.Writer, rows []MovementRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MovementHeader); err != nil {
		return fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Strings()); err != nil {
			return fmt.Errorf("csv: fila %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFilename nombre del archivo descargado: rapport_mouvements_YYYY-MM-DD.csv.
func CSVFilename(now time.Time) string {
	return "rapport_mouvements_" + now.UTC().Format("2006-01-02") + ".csv"
}

// XLSXFilename igual que CSVFilename con extensión .xlsx.
func XLSXFilename(now time.Time) string {
	return "rapport_mouvements_" + now.UTC().Format("2006-01-02") + ".xlsx"
}
