package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/ledger"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// MovementUseCase registro y consulta de movimientos. Crear no toca el stock.
type MovementUseCase struct {
	store   ports.SnapshotStore
	metrics Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewMovementUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewMovementUseCase(store ports.SnapshotStore, metrics Metrics, log *logger.Logger) *MovementUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{store: store, metrics: metrics, log: log.Component("movements"), now: time.Now}
}

// Create registra un movimiento PENDING al inicio de la lista. Cualquier usuario autenticado.
func (uc *MovementUseCase) Create(ctx context.Context, actor ledger.Actor, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	in.Type = entity.NormalizeMovementType(in.Type)
	in.Crop = entity.NormalizeCrop(in.Crop)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var out dto.MovementResponse
	err := uc.store.Run(ctx, func(d *entity.AppData) error {
		if d.FindWarehouse(in.WarehouseID) < 0 {
			return domain.ErrWarehouseNotFound
		}
		mv := entity.Movement{
			ID:          "m" + uuid.New().String(),
			Date:        uc.now().UTC(),
			Type:        in.Type,
			WarehouseID: in.WarehouseID,
			Crop:        in.Crop,
			Bags:        in.Bags,
			Weight:      in.Weight,
			Status:      entity.MovementStatusPending,
			CreatedBy:   actor.Name,
		}
		d.PrependMovement(mv)
		out = ToMovementResponse(d, &mv)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.MovementCreated(in.Type)
	uc.log.Info().
		Str("movement_id", out.ID).
		Str("type", out.Type).
		Str("warehouse_id", out.WarehouseID).
		Str("crop", out.Crop).
		Int64("weight_kg", out.Weight).
		Str("created_by", out.CreatedBy).
		Msg("movimiento registrado")
	return &out, nil
}

// List devuelve los movimientos filtrados, más reciente primero.
func (uc *MovementUseCase) List(filter dto.MovementFilter) ([]dto.MovementResponse, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	typ := entity.NormalizeMovementType(strings.ToUpper(strings.TrimSpace(filter.Type)))
	status := strings.ToUpper(strings.TrimSpace(filter.Status))

	out := make([]dto.MovementResponse, 0, len(d.Movements))
	for i := range d.Movements {
		m := &d.Movements[i]
		if status != "" && m.Status != status {
			continue
		}
		if filter.WarehouseID != "" && m.WarehouseID != filter.WarehouseID {
			continue
		}
		if typ != "" && m.Type != typ {
			continue
		}
		out = append(out, ToMovementResponse(&d, m))
	}
	SortNewestFirst(out)
	return out, nil
}

// ListPending movimientos que esperan validación (bandeja del administrador).
func (uc *MovementUseCase) ListPending() ([]dto.MovementResponse, error) {
	return uc.List(dto.MovementFilter{Status: entity.MovementStatusPending})
}

// GetByID devuelve un movimiento o domain.ErrMovementNotFound.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	i := d.FindMovement(id)
	if i < 0 {
		return nil, domain.ErrMovementNotFound
	}
	out := ToMovementResponse(&d, &d.Movements[i])
	return &out, nil
}

// SortNewestFirst ordena por fecha descendente; empates conservan el orden de la lista.
func SortNewestFirst(ms []dto.MovementResponse) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Date.After(ms[j].Date)
	})
}
