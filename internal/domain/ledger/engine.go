package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/looplab/fsm"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

const (
	eventApprove = "approve"
	eventReject  = "reject"
)

// Actor quien resuelve el movimiento.
type Actor struct {
	ID   string
	Name string
	Role string
}

// Outcome resultado de una resolución aplicada.
type Outcome struct {
	MovementID   string
	Decision     Decision
	Status       string
	WarehouseID  string
	Crop         string
	Before       int64
	After        int64
	StockChanged bool
	Warning      string
}

// Engine aplica aprobaciones y rechazos sobre un snapshot. No guarda estado propio.
type Engine struct {
	policy Policy
	now    func() time.Time
}

// NewEngine crea el motor con la política indicada.
func NewEngine(policy Policy) *Engine {
	if policy == "" {
		policy = PolicyStrict
	}
	return &Engine{policy: policy, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Policy devuelve la política activa.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Resolve aprueba o rechaza el movimiento PENDING indicado y devuelve el snapshot nuevo.
// El snapshot de entrada nunca se modifica; ante error se devuelve un AppData vacío.
func (e *Engine) Resolve(ctx context.Context, snapshot *entity.AppData, movementID string, decision Decision, actor Actor) (entity.AppData, Outcome, error) {
	if actor.Role != entity.RoleAdmin {
		return entity.AppData{}, Outcome{}, domain.ErrForbidden
	}
	event, err := decision.event()
	if err != nil {
		return entity.AppData{}, Outcome{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	next, err := snapshot.Clone()
	if err != nil {
		return entity.AppData{}, Outcome{}, fmt.Errorf("ledger: clonar snapshot: %w", err)
	}
	mi := next.FindMovement(movementID)
	if mi < 0 {
		return entity.AppData{}, Outcome{}, domain.ErrMovementNotFound
	}
	mv := &next.Movements[mi]

	out := Outcome{
		MovementID:  mv.ID,
		Decision:    decision,
		WarehouseID: mv.WarehouseID,
		Crop:        mv.Crop,
	}

	// La causa de cancelación se captura aquí; el error de fsm solo indica que hubo cancelación.
	var cause error
	machine := fsm.NewFSM(
		mv.Status,
		fsm.Events{
			{Name: eventApprove, Src: []string{entity.MovementStatusPending}, Dst: entity.MovementStatusValidated},
			{Name: eventReject, Src: []string{entity.MovementStatusPending}, Dst: entity.MovementStatusRejected},
		},
		fsm.Callbacks{
			"before_" + eventApprove: func(_ context.Context, ev *fsm.Event) {
				if err := e.applyStock(&next, mv, &out); err != nil {
					cause = err
					ev.Cancel(err)
				}
			},
		},
	)

	if !machine.Can(event) {
		return entity.AppData{}, Outcome{}, domain.ErrAlreadyResolved
	}
	if err := machine.Event(ctx, event); err != nil {
		if cause != nil {
			return entity.AppData{}, Outcome{}, cause
		}
		return entity.AppData{}, Outcome{}, fmt.Errorf("ledger: transición %s: %w", event, err)
	}

	resolvedAt := e.now().UTC()
	mv.Status = machine.Current()
	mv.ResolvedBy = actor.Name
	mv.ResolvedAt = &resolvedAt
	out.Status = mv.Status
	return next, out, nil
}

// applyStock calcula q' y lo aplica según la política. Solo toca una entrada de un almacén.
func (e *Engine) applyStock(next *entity.AppData, mv *entity.Movement, out *Outcome) error {
	wi := next.FindWarehouse(mv.WarehouseID)
	if wi < 0 {
		return domain.ErrWarehouseNotFound
	}
	wh := &next.Warehouses[wi]
	crop := entity.NormalizeCrop(mv.Crop)
	q := wh.Quantity(crop)
	d := mv.Delta()
	if overflows(q, d) {
		return &OverflowError{WarehouseID: wh.ID, Crop: crop, Current: q, Delta: d}
	}
	q2 := q + d
	out.Before, out.After = q, q

	if mv.Type == entity.MovementTypeOutbound && q2 < 0 {
		serr := &StockError{WarehouseID: wh.ID, Crop: crop, Available: q, Requested: mv.Weight}
		switch e.policy {
		case PolicyLegacy:
			out.Warning = "stock no modificado: " + serr.Error()
			return nil
		case PolicyAllowNegative:
			out.Warning = fmt.Sprintf("stock negativo en %s/%s: %d kg", wh.ID, crop, q2)
		default:
			return serr
		}
	}

	if wh.Stock == nil {
		wh.Stock = make(map[string]int64)
	}
	wh.Stock[crop] = q2
	out.After = q2
	out.StockChanged = q2 != q
	return nil
}

// overflows indica si q+d sale del rango de int64.
func overflows(q, d int64) bool {
	if d > 0 {
		return q > math.MaxInt64-d
	}
	return q < math.MinInt64-d
}

// IsResolutionError indica si err es un rechazo esperado del motor (no un fallo interno).
func IsResolutionError(err error) bool {
	return errors.Is(err, domain.ErrMovementNotFound) ||
		errors.Is(err, domain.ErrAlreadyResolved) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrStockOverflow) ||
		errors.Is(err, domain.ErrWarehouseNotFound) ||
		errors.Is(err, domain.ErrForbidden)
}
