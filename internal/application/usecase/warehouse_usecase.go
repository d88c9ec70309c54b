package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// WarehouseUseCase alta, consulta y baja de almacenes. El stock no se edita aquí.
type WarehouseUseCase struct {
	store ports.SnapshotStore
	log   *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(store ports.SnapshotStore, log *logger.Logger) *WarehouseUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &WarehouseUseCase{store: store, log: log.Component("warehouses")}
}

// Create crea un almacén con stock vacío.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Region = strings.TrimSpace(in.Region)
	in.Manager = strings.TrimSpace(in.Manager)
	if err := in.Validate(); err != nil {
		return nil, err
	}
	wh := entity.Warehouse{
		ID:      "w" + uuid.New().String(),
		Name:    in.Name,
		Region:  in.Region,
		Manager: in.Manager,
		Lat:     in.Lat,
		Lng:     in.Lng,
		Stock:   map[string]int64{},
	}
	err := uc.store.Run(ctx, func(d *entity.AppData) error {
		d.Warehouses = append(d.Warehouses, wh)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("warehouse_id", wh.ID).Str("name", wh.Name).Msg("almacén creado")
	out := toWarehouseResponse(&wh)
	return &out, nil
}

// List devuelve los almacenes; search filtra sin distinguir mayúsculas por nombre, región o responsable.
func (uc *WarehouseUseCase) List(filter dto.WarehouseFilter) ([]dto.WarehouseResponse, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]dto.WarehouseResponse, 0, len(d.Warehouses))
	for i := range d.Warehouses {
		w := &d.Warehouses[i]
		if q != "" && !matches(q, w.Name, w.Region, w.Manager) {
			continue
		}
		out = append(out, toWarehouseResponse(w))
	}
	return out, nil
}

// GetByID obtiene un almacén o domain.ErrWarehouseNotFound.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	i := d.FindWarehouse(id)
	if i < 0 {
		return nil, domain.ErrWarehouseNotFound
	}
	out := toWarehouseResponse(&d.Warehouses[i])
	return &out, nil
}

// Delete elimina el almacén. Se rechaza con ErrConflict mientras tenga movimientos PENDING,
// para que ninguna aprobación futura apunte a un almacén inexistente.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	err := uc.store.Run(ctx, func(d *entity.AppData) error {
		i := d.FindWarehouse(id)
		if i < 0 {
			return domain.ErrWarehouseNotFound
		}
		for _, m := range d.Movements {
			if m.WarehouseID == id && m.IsPending() {
				return fmt.Errorf("%w: el almacén tiene movimientos pendientes", domain.ErrConflict)
			}
		}
		d.Warehouses = append(d.Warehouses[:i], d.Warehouses[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("warehouse_id", id).Msg("almacén eliminado")
	return nil
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	stock := make(map[string]int64, len(w.Stock))
	for k, v := range w.Stock {
		stock[k] = v
	}
	return dto.WarehouseResponse{
		ID:      w.ID,
		Name:    w.Name,
		Region:  w.Region,
		Manager: w.Manager,
		Lat:     w.Lat,
		Lng:     w.Lng,
		Stock:   stock,
		TotalKg: w.TotalKg(),
	}
}

// sortedCrops claves de stock ordenadas, para salidas deterministas.
func sortedCrops(stock map[string]int64) []string {
	keys := make([]string, 0, len(stock))
	for k := range stock {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
