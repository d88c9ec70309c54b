package inventory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/state"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/ledger"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
)

var (
	adminActor = ledger.Actor{ID: "1", Name: "Super Administrateur", Role: entity.RoleAdmin}
	userActor  = ledger.Actor{ID: "2", Name: "Magasinier Kaolack", Role: entity.RoleUser}
)

type fakeMetrics struct {
	mu       sync.Mutex
	created  map[string]int
	resolved map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{created: map[string]int{}, resolved: map[string]int{}}
}

func (f *fakeMetrics) MovementCreated(t string) {
	f.mu.Lock()
	f.created[t]++
	f.mu.Unlock()
}

func (f *fakeMetrics) MovementResolved(decision, result string) {
	f.mu.Lock()
	f.resolved[decision+"/"+result]++
	f.mu.Unlock()
}

// newTestStore carga un snapshot propio en un store de memoria.
func newTestStore(t *testing.T, data entity.AppData) *state.Store {
	t.Helper()
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), &data))
	s := state.NewStore(repo, nil)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func twoWarehouses(w1Stock map[string]int64) entity.AppData {
	return entity.AppData{
		Users: []entity.User{{ID: "1", Name: "Super Administrateur", Login: "orse", Pass: "1234", Role: entity.RoleAdmin}},
		Warehouses: []entity.Warehouse{
			{ID: "w1", Name: "Entrepôt Central", Region: "Dakar", Manager: "Moussa", Stock: w1Stock},
			{ID: "w2", Name: "Base Sud", Region: "Kaolack", Manager: "Abdou", Stock: map[string]int64{}},
		},
	}
}

func TestMovementUseCase_Create(t *testing.T) {
	store := newTestStore(t, twoWarehouses(map[string]int64{"Riz": 100}))
	metrics := newFakeMetrics()
	uc := NewMovementUseCase(store, metrics, nil)

	first, err := uc.Create(context.Background(), userActor, dto.CreateMovementRequest{Type: "SORTIE", WarehouseID: "w1", Crop: " Riz ", Bags: 2, Weight: 100})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeOutbound, first.Type)
	assert.Equal(t, entity.MovementStatusPending, first.Status)
	assert.Equal(t, "Magasinier Kaolack", first.CreatedBy)
	assert.Equal(t, "Entrepôt Central", first.WarehouseName)
	assert.Equal(t, "Riz", first.Crop)
	assert.Regexp(t, `^m`, first.ID)

	second, err := uc.Create(context.Background(), userActor, dto.CreateMovementRequest{Type: "INBOUND", WarehouseID: "w2", Crop: "Blé", Weight: 50})
	require.NoError(t, err)

	d, err := store.Get()
	require.NoError(t, err)
	require.Len(t, d.Movements, 2)
	assert.Equal(t, second.ID, d.Movements[0].ID)
	assert.Equal(t, first.ID, d.Movements[1].ID)
	assert.Equal(t, int64(100), d.Warehouses[0].Stock["Riz"])
	assert.Empty(t, d.Warehouses[1].Stock)
	assert.Equal(t, 1, metrics.created[entity.MovementTypeOutbound])
}

func TestMovementUseCase_Create_Invalid(t *testing.T) {
	store := newTestStore(t, twoWarehouses(nil))
	uc := NewMovementUseCase(store, nil, nil)

	_, err := uc.Create(context.Background(), userActor, dto.CreateMovementRequest{Type: "INBOUND", WarehouseID: "w1", Crop: "Riz", Bags: -1, Weight: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), userActor, dto.CreateMovementRequest{Type: "INBOUND", WarehouseID: "w9", Crop: "Riz", Weight: 10})
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)

	d, _ := store.Get()
	assert.Empty(t, d.Movements)
}

func TestMovementUseCase_ListAndGet(t *testing.T) {
	base := twoWarehouses(map[string]int64{})
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	base.Movements = []entity.Movement{
		{ID: "a", Date: now.Add(-time.Hour), Type: entity.MovementTypeInbound, WarehouseID: "w1", Crop: "Riz", Weight: 1, Status: entity.MovementStatusPending},
		{ID: "b", Date: now, Type: entity.MovementTypeOutbound, WarehouseID: "w2", Crop: "Riz", Weight: 1, Status: entity.MovementStatusValidated},
		{ID: "c", Date: now.Add(-2 * time.Hour), Type: entity.MovementTypeInbound, WarehouseID: "gone", Crop: "Riz", Weight: 1, Status: entity.MovementStatusPending},
	}
	uc := NewMovementUseCase(newTestStore(t, base), nil, nil)

	all, err := uc.List(dto.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, entity.UnknownWarehouse, all[2].WarehouseName)

	pending, err := uc.ListPending()
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	byStatus, err := uc.List(dto.MovementFilter{Status: " pending"})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byType, err := uc.List(dto.MovementFilter{Type: "SORTIE"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "b", byType[0].ID)

	byType, err = uc.List(dto.MovementFilter{Type: "Outbound"})
	require.NoError(t, err)
	require.Len(t, byType, 1)

	byWh, err := uc.List(dto.MovementFilter{WarehouseID: "w1"})
	require.NoError(t, err)
	assert.Len(t, byWh, 1)

	got, err := uc.GetByID("b")
	require.NoError(t, err)
	assert.Equal(t, "Base Sud", got.WarehouseName)

	_, err = uc.GetByID("zzz")
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}
