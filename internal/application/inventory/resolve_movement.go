package inventory

import (
	"context"
	"errors"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/ledger"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// ResolveMovementUseCase aprueba o rechaza movimientos PENDING a través del motor de ledger.
// Resolve y commit ocurren bajo el mismo lock del store: no hay doble aplicación.
type ResolveMovementUseCase struct {
	store   ports.SnapshotStore
	engine  *ledger.Engine
	metrics Metrics
	log     *logger.Logger
}

// NewResolveMovementUseCase construye el caso de uso.
func NewResolveMovementUseCase(store ports.SnapshotStore, engine *ledger.Engine, metrics Metrics, log *logger.Logger) *ResolveMovementUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ResolveMovementUseCase{store: store, engine: engine, metrics: metrics, log: log.Component("ledger")}
}

// Approve valida el movimiento y aplica su efecto sobre el stock según la política.
func (uc *ResolveMovementUseCase) Approve(ctx context.Context, actor ledger.Actor, movementID string) (*dto.ResolutionResponse, error) {
	return uc.resolve(ctx, actor, movementID, ledger.Approve)
}

// Reject rechaza el movimiento sin tocar el stock.
func (uc *ResolveMovementUseCase) Reject(ctx context.Context, actor ledger.Actor, movementID string) (*dto.ResolutionResponse, error) {
	return uc.resolve(ctx, actor, movementID, ledger.Reject)
}

func (uc *ResolveMovementUseCase) resolve(ctx context.Context, actor ledger.Actor, movementID string, decision ledger.Decision) (*dto.ResolutionResponse, error) {
	var (
		outcome ledger.Outcome
		resp    dto.ResolutionResponse
	)
	err := uc.store.Update(ctx, func(current *entity.AppData) (entity.AppData, error) {
		next, out, err := uc.engine.Resolve(ctx, current, movementID, decision, actor)
		if err != nil {
			return entity.AppData{}, err
		}
		outcome = out
		i := next.FindMovement(movementID)
		resp.Movement = ToMovementResponse(&next, &next.Movements[i])
		return next, nil
	})
	if err != nil {
		uc.metrics.MovementResolved(string(decision), resultFor(err))
		uc.log.Warn().
			Err(err).
			Str("movement_id", movementID).
			Str("decision", string(decision)).
			Str("actor", actor.Name).
			Str("policy", string(uc.engine.Policy())).
			Msg("resolución rechazada")
		return nil, err
	}

	resp.StockBefore = outcome.Before
	resp.StockAfter = outcome.After
	resp.StockChanged = outcome.StockChanged
	resp.Warning = outcome.Warning

	result := ResultApplied
	ev := uc.log.Info()
	if outcome.Warning != "" {
		result = ResultWarning
		ev = uc.log.Warn().Str("warning", outcome.Warning)
	}
	uc.metrics.MovementResolved(string(decision), result)
	ev.Str("movement_id", movementID).
		Str("decision", string(decision)).
		Str("status", outcome.Status).
		Str("warehouse_id", outcome.WarehouseID).
		Str("crop", outcome.Crop).
		Int64("stock_before", outcome.Before).
		Int64("stock_after", outcome.After).
		Str("actor", actor.Name).
		Msg("movimiento resuelto")
	return &resp, nil
}

func resultFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrStockOverflow):
		return ResultRefused
	case ledger.IsResolutionError(err):
		return ResultConflict
	default:
		return ResultError
	}
}
