package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abdoulayediaw-ops/orsre/internal/application/state"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
)

var base = time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC)

func sampleData() entity.AppData {
	d := entity.AppData{
		Warehouses: []entity.Warehouse{{ID: "w1", Name: "Entrepôt, Central", Stock: map[string]int64{"Riz": 10, "Maïs": 5}}},
	}
	for i, id := range []string{"m1", "m2", "m3", "m4"} {
		d.Movements = append(d.Movements, entity.Movement{
			ID: id, Date: base.Add(time.Duration(i) * time.Hour), Type: entity.MovementTypeInbound,
			WarehouseID: "w1", Crop: "Riz", Bags: 1, Weight: 50, Status: entity.MovementStatusPending,
			CreatedBy: `Moussa "Chef"`,
		})
	}
	d.Movements[2].WarehouseID = "gone"
	return d
}

func TestWriteCSV_LineCountAndOrder(t *testing.T) {
	d := sampleData()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, MovementRows(&d)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(d.Movements)+1)
	assert.Equal(t, "ID,Date,Type,Warehouse,Crop,Bags,Weight,Status,CreatedBy", lines[0])

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"m4", "m3", "m2", "m1"}, []string{records[1][0], records[2][0], records[3][0], records[4][0]})
	assert.Equal(t, "Entrepôt, Central", records[1][3])
	assert.Equal(t, entity.UnknownWarehouse, records[2][3])
	assert.Equal(t, `Moussa "Chef"`, records[1][8])
	assert.Contains(t, lines[1], `"Entrepôt, Central"`)
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "ID,Date,Type,Warehouse,Crop,Bags,Weight,Status,CreatedBy\n", buf.String())
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "rapport_mouvements_2024-04-10.csv", CSVFilename(base))
	assert.Equal(t, "rapport_mouvements_2024-04-10.xlsx", XLSXFilename(base))
}

func TestBuildXLSX(t *testing.T) {
	d := sampleData()
	body, err := BuildXLSX(MovementRows(&d))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Mouvements")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, MovementHeader, rows[0])
	assert.Equal(t, "m4", rows[1][0])
	assert.Equal(t, "50", rows[1][6])
}

func TestWriteRow_InvalidRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", movementSheet))

	err := writeRow(f, 0, []interface{}{"x"})
	assert.Error(t, err)

	err = writeRow(f, 1, []interface{}{"x"})
	require.NoError(t, err)
	v, err := f.GetCellValue(movementSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

type stubPDF struct{ got StockReportData }

func (s *stubPDF) GenerateStockReport(_ context.Context, data StockReportData) ([]byte, error) {
	s.got = data
	return []byte("%PDF-1.4"), nil
}

func TestReportUseCase(t *testing.T) {
	store := state.NewStore(storage.NewMemoryRepository(), nil)
	require.NoError(t, store.Load(context.Background()))
	pdf := &stubPDF{}
	uc := NewReportUseCase(store, pdf)
	uc.now = func() time.Time { return base }

	csvFile, err := uc.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "rapport_mouvements_2024-04-10.csv", csvFile.Name)
	assert.Contains(t, string(csvFile.Body), "Entrepôt Central Diamniadio")

	xlsxFile, err := uc.ExportXLSX()
	require.NoError(t, err)
	assert.NotEmpty(t, xlsxFile.Body)

	pdfFile, err := uc.StockPDF(context.Background(), "Super Administrateur")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdfFile.ContentType)
	assert.Equal(t, int64(50000), pdf.got.TotalKg)
	assert.Equal(t, "50.0", pdf.got.TotalTons)
	require.Len(t, pdf.got.Warehouses, 2)
	assert.Equal(t, "Maïs", pdf.got.Warehouses[0].Lines[0].Crop)
}
