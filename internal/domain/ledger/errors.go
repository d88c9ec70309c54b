package ledger

import (
	"fmt"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
)

// StockError detalle de una salida que dejaría el stock en negativo.
// errors.Is(err, domain.ErrInsufficientStock) es verdadero.
type StockError struct {
	WarehouseID string
	Crop        string
	Available   int64
	Requested   int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: %s en %s (disponible %d kg, solicitado %d kg)",
		domain.ErrInsufficientStock.Error(), e.Crop, e.WarehouseID, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error {
	return domain.ErrInsufficientStock
}

// OverflowError movimiento cuyo resultado no cabe en int64; el movimiento sigue PENDING.
// errors.Is(err, domain.ErrStockOverflow) es verdadero.
type OverflowError struct {
	WarehouseID string
	Crop        string
	Current     int64
	Delta       int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s en %s (actual %d kg, variación %d kg)",
		domain.ErrStockOverflow.Error(), e.Crop, e.WarehouseID, e.Current, e.Delta)
}

func (e *OverflowError) Unwrap() error {
	return domain.ErrStockOverflow
}
