package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

func TestWarehouseUseCase_CreateListGet(t *testing.T) {
	store := seededStore(t)
	uc := NewWarehouseUseCase(store, nil)

	created, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: " Silo Tamba ", Region: "Tambacounda", Manager: "Fatou Ndiaye", Lat: 13.77, Lng: -13.67})
	require.NoError(t, err)
	assert.Equal(t, "Silo Tamba", created.Name)
	assert.Empty(t, created.Stock)
	assert.Equal(t, int64(0), created.TotalKg)

	all, err := uc.List(dto.WarehouseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := uc.List(dto.WarehouseFilter{Search: "kaolack"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "w2", found[0].ID)

	byManager, err := uc.List(dto.WarehouseFilter{Search: "FATOU"})
	require.NoError(t, err)
	require.Len(t, byManager, 1)

	w1, err := uc.GetByID("w1")
	require.NoError(t, err)
	assert.Equal(t, int64(17000), w1.TotalKg)

	_, err = uc.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
}

func TestWarehouseUseCase_CreateInvalid(t *testing.T) {
	uc := NewWarehouseUseCase(seededStore(t), nil)
	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "  ", Region: "Dakar", Manager: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseUseCase_Delete(t *testing.T) {
	store := seededStore(t)
	uc := NewWarehouseUseCase(store, nil)

	require.NoError(t, store.Run(context.Background(), func(d *entity.AppData) error {
		d.PrependMovement(entity.Movement{ID: "mp", WarehouseID: "w2", Type: entity.MovementTypeInbound, Crop: "Riz", Weight: 1, Status: entity.MovementStatusPending})
		return nil
	}))

	err := uc.Delete(context.Background(), "w2")
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, uc.Delete(context.Background(), "w1"))
	_, err = uc.GetByID("w1")
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)

	assert.ErrorIs(t, uc.Delete(context.Background(), "w1"), domain.ErrWarehouseNotFound)
}
