// Package analytics contiene las proyecciones de solo lectura del tablero.
package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

var kgPerTon = decimal.NewFromInt(1000)

// DashboardUseCase genera el resumen del tablero a partir del snapshot actual.
// No muta nada: lee una copia del store.
type DashboardUseCase struct {
	store ports.SnapshotStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store ports.SnapshotStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary devuelve conteos, stock total en kg y toneladas, y totales por cultivo.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	return Summarize(&d), nil
}

// Summarize proyección pura sobre un snapshot.
func Summarize(d *entity.AppData) *dto.DashboardSummaryDTO {
	byCrop := make(map[string]int64)
	for i := range d.Warehouses {
		for crop, q := range d.Warehouses[i].Stock {
			byCrop[crop] += q
		}
	}

	// Orden alfabético francés: "Anacarde, Arachide, Blé, Maïs, Riz".
	crops := make([]string, 0, len(byCrop))
	for c := range byCrop {
		crops = append(crops, c)
	}
	collate.New(language.French).SortStrings(crops)

	totals := make([]dto.CropTotalDTO, 0, len(crops))
	for _, c := range crops {
		totals = append(totals, dto.CropTotalDTO{
			Crop: c,
			Kg:   byCrop[c],
			Tons: ToTons(byCrop[c]).Round(0),
		})
	}

	total := d.TotalStockKg()
	return &dto.DashboardSummaryDTO{
		WarehouseCount: len(d.Warehouses),
		MovementCount:  len(d.Movements),
		PendingCount:   d.PendingCount(),
		TotalStockKg:   total,
		TotalStockTons: ToTons(total).Round(1),
		Crops:          totals,
	}
}

// ToTons convierte kg a toneladas sin redondear.
func ToTons(kg int64) decimal.Decimal {
	return decimal.NewFromInt(kg).Div(kgPerTon)
}
