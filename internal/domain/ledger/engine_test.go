package ledger

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

var (
	admin    = Actor{ID: "1", Name: "Super Administrateur", Role: entity.RoleAdmin}
	fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newEngine(p Policy) *Engine {
	return NewEngine(p).WithClock(func() time.Time { return fixedNow })
}

func snapshotWith(stock map[string]int64, movements ...entity.Movement) entity.AppData {
	return entity.AppData{
		Users:      []entity.User{{ID: "1", Name: "Super Administrateur", Login: "orse", Role: entity.RoleAdmin}},
		Warehouses: []entity.Warehouse{{ID: "w1", Name: "Central", Stock: stock}, {ID: "w2", Name: "Sud", Stock: map[string]int64{}}},
		Movements:  movements,
	}
}

func pending(id, typ, crop string, weight int64) entity.Movement {
	return entity.Movement{ID: id, Type: typ, WarehouseID: "w1", Crop: crop, Bags: 10, Weight: weight, Status: entity.MovementStatusPending, CreatedBy: "Moussa"}
}

func TestResolve_ApproveInbound_IncreasesStock(t *testing.T) {
	for _, w := range []int64{1, 250, 1200, 99999} {
		snap := snapshotWith(map[string]int64{"Riz": 300}, pending("m1", entity.MovementTypeInbound, "Riz", w))

		next, out, err := newEngine(PolicyStrict).Resolve(context.Background(), &snap, "m1", Approve, admin)
		require.NoError(t, err)

		assert.Equal(t, 300+w, next.Warehouses[0].Stock["Riz"])
		assert.Equal(t, entity.MovementStatusValidated, next.Movements[0].Status)
		assert.Equal(t, "Super Administrateur", next.Movements[0].ResolvedBy)
		require.NotNil(t, next.Movements[0].ResolvedAt)
		assert.True(t, next.Movements[0].ResolvedAt.Equal(fixedNow))
		assert.True(t, out.StockChanged)
		assert.Equal(t, int64(300), out.Before)
		assert.Equal(t, 300+w, out.After)
		assert.Empty(t, out.Warning)

		// el snapshot de entrada queda intacto
		assert.Equal(t, int64(300), snap.Warehouses[0].Stock["Riz"])
		assert.Equal(t, entity.MovementStatusPending, snap.Movements[0].Status)
	}
}

func TestResolve_ApproveOutbound_Sufficient(t *testing.T) {
	cases := []struct{ stock, weight int64 }{{5000, 5000}, {5000, 1}, {12000, 7000}}
	for _, tc := range cases {
		snap := snapshotWith(map[string]int64{"Maize": tc.stock}, pending("m1", entity.MovementTypeOutbound, "Maize", tc.weight))

		next, _, err := newEngine(PolicyStrict).Resolve(context.Background(), &snap, "m1", Approve, admin)
		require.NoError(t, err)
		assert.Equal(t, tc.stock-tc.weight, next.Warehouses[0].Stock["Maize"])
		assert.Equal(t, entity.MovementStatusValidated, next.Movements[0].Status)
	}
}

func TestResolve_ApproveOutbound_InsufficientStrict(t *testing.T) {
	snap := snapshotWith(map[string]int64{"Maize": 5000}, pending("m1", entity.MovementTypeOutbound, "Maize", 6000))

	_, _, err := newEngine(PolicyStrict).Resolve(context.Background(), &snap, "m1", Approve, admin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var serr *StockError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, int64(5000), serr.Available)
	assert.Equal(t, int64(6000), serr.Requested)
	assert.Equal(t, "Maize", serr.Crop)

	assert.Equal(t, int64(5000), snap.Warehouses[0].Stock["Maize"])
	assert.Equal(t, entity.MovementStatusPending, snap.Movements[0].Status)
}

func TestResolve_ApproveOutbound_InsufficientLegacy(t *testing.T) {
	snap := snapshotWith(map[string]int64{"Maize": 5000}, pending("m1", entity.MovementTypeOutbound, "Maize", 6000))

	next, out, err := newEngine(PolicyLegacy).Resolve(context.Background(), &snap, "m1", Approve, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementStatusValidated, next.Movements[0].Status)
	assert.Equal(t, int64(5000), next.Warehouses[0].Stock["Maize"])
	assert.False(t, out.StockChanged)
	assert.NotEmpty(t, out.Warning)
}

func TestResolve_ApproveOutbound_AllowNegative(t *testing.T) {
	snap := snapshotWith(map[string]int64{"Maize": 5000}, pending("m1", entity.MovementTypeOutbound, "Maize", 6000))

	next, out, err := newEngine(PolicyAllowNegative).Resolve(context.Background(), &snap, "m1", Approve, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), next.Warehouses[0].Stock["Maize"])
	assert.Equal(t, entity.MovementStatusValidated, next.Movements[0].Status)
	assert.NotEmpty(t, out.Warning)
}

func TestResolve_OutboundOnMissingCrop_IsInsufficient(t *testing.T) {
	snap := snapshotWith(map[string]int64{}, pending("m1", entity.MovementTypeOutbound, "Blé", 1))

	_, _, err := newEngine(PolicyStrict).Resolve(context.Background(), &snap, "m1", Approve, admin)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestResolve_Reject_NoStockMutation(t *testing.T) {
	snap := snapshotWith(map[string]int64{"Riz": 10}, pending("m1", entity.MovementTypeOutbound, "Riz", 9999))

	next, out, err := newEngine(PolicyStrict).Resolve(context.Background(), &snap, "m1", Reject, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementStatusRejected, next.Movements[0].Status)
	assert.Equal(t, map[string]int64{"Riz": 10}, next.Warehouses[0].Stock)
	assert.False(t, out.StockChanged)
}

func TestResolve_SecondCall_AlreadyResolved(t *testing.T) {
	for _, first := range []Decision{Approve, Reject} {
		for _, second := range []Decision{Approve, Reject} {
			snap := snapshotWith(map[string]int64{}, pending("m1", entity.MovementTypeInbound, "Riz", 100))
			eng := newEngine(PolicyStrict)

			next, _, err := eng.Resolve(context.Background(), &snap, "m1", first, admin)
			require.NoError(t, err)
			stockAfterFirst := next.Warehouses[0].Stock["Riz"]

			_, _, err = eng.Resolve(context.Background(), &next, "m1", second, admin)
			assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
			assert.Equal(t, stockAfterFirst, next.Warehouses[0].Stock["Riz"])
		}
	}
}

func TestResolve_Preconditions(t *testing.T) {
	snap := snapshotWith(map[string]int64{}, pending("m1", entity.MovementTypeInbound, "Riz", 100))
	eng := newEngine(PolicyStrict)

	_, _, err := eng.Resolve(context.Background(), &snap, "nope", Approve, admin)
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)

	_, _, err = eng.Resolve(context.Background(), &snap, "m1", Approve, Actor{ID: "2", Name: "Moussa", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, _, err = eng.Resolve(context.Background(), &snap, "m1", Decision("MAYBE"), admin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	dangling := snapshotWith(map[string]int64{}, entity.Movement{ID: "m9", Type: entity.MovementTypeInbound, WarehouseID: "gone", Crop: "Riz", Weight: 1, Status: entity.MovementStatusPending})
	_, _, err = eng.Resolve(context.Background(), &dangling, "m9", Approve, admin)
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
	assert.Equal(t, entity.MovementStatusPending, dangling.Movements[0].Status)
}

// Entrada aprobada y un segundo movimiento rechazado sobre el mismo almacén.
func TestResolve_InboundThenIndependentReject(t *testing.T) {
	snap := snapshotWith(map[string]int64{},
		pending("m2", entity.MovementTypeOutbound, "Rice", 400),
		pending("m1", entity.MovementTypeInbound, "Rice", 1200),
	)
	eng := newEngine(PolicyStrict)

	next, _, err := eng.Resolve(context.Background(), &snap, "m1", Approve, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), next.Warehouses[0].Stock["Rice"])
	assert.Equal(t, entity.MovementStatusValidated, next.Movements[1].Status)

	final, _, err := eng.Resolve(context.Background(), &next, "m2", Reject, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementStatusRejected, final.Movements[0].Status)
	assert.Equal(t, map[string]int64{"Rice": 1200}, final.Warehouses[0].Stock)
	assert.Empty(t, final.Warehouses[1].Stock)
}

func TestResolve_CropKeyNormalized(t *testing.T) {
	snap := snapshotWith(map[string]int64{"Maïs": 100}, pending("m1", entity.MovementTypeInbound, "Mai\u0308s", 50))

	next, _, err := newEngine(PolicyStrict).Resolve(context.Background(), &snap, "m1", Approve, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(150), next.Warehouses[0].Stock["Maïs"])
	assert.Len(t, next.Warehouses[0].Stock, 1)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParsePolicy(" Legacy ")
	require.NoError(t, err)
	assert.Equal(t, PolicyLegacy, p)

	p, err = ParsePolicy("allow-negative")
	require.NoError(t, err)
	assert.Equal(t, PolicyAllowNegative, p)

	_, err = ParsePolicy("yolo")
	assert.Error(t, err)
}

func TestResolve_InboundOverflow_StaysPending(t *testing.T) {
	for _, p := range []Policy{PolicyStrict, PolicyAllowNegative, PolicyLegacy} {
		snap := snapshotWith(map[string]int64{"Maïs": 5000}, pending("m1", entity.MovementTypeInbound, "Maïs", math.MaxInt64))

		_, _, err := newEngine(p).Resolve(context.Background(), &snap, "m1", Approve, admin)
		require.Error(t, err, p)
		assert.ErrorIs(t, err, domain.ErrStockOverflow)
		assert.True(t, IsResolutionError(err))

		var oerr *OverflowError
		require.True(t, errors.As(err, &oerr))
		assert.Equal(t, int64(5000), oerr.Current)

		assert.Equal(t, int64(5000), snap.Warehouses[0].Stock["Maïs"])
		assert.Equal(t, entity.MovementStatusPending, snap.Movements[0].Status)
	}
}

func TestResolve_AllowNegative_Underflow(t *testing.T) {
	snap := snapshotWith(map[string]int64{"Riz": math.MinInt64 + 10}, pending("m1", entity.MovementTypeOutbound, "Riz", 100))

	_, _, err := newEngine(PolicyAllowNegative).Resolve(context.Background(), &snap, "m1", Approve, admin)
	assert.ErrorIs(t, err, domain.ErrStockOverflow)
	assert.Equal(t, entity.MovementStatusPending, snap.Movements[0].Status)
}

func TestResolve_InboundAtLimit(t *testing.T) {
	snap := snapshotWith(map[string]int64{"Riz": math.MaxInt64 - 100}, pending("m1", entity.MovementTypeInbound, "Riz", 100))

	next, _, err := newEngine(PolicyStrict).Resolve(context.Background(), &snap, "m1", Approve, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), next.Warehouses[0].Stock["Riz"])
}
