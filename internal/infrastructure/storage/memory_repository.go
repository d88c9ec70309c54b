package storage

import (
	"context"
	"sync"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*MemoryRepository)(nil)

// MemoryRepository guarda el snapshot serializado en memoria (tests y STORE_DRIVER=memory).
// Guarda bytes y no el puntero para que Load nunca comparta estado con quien guardó.
type MemoryRepository struct {
	mu    sync.Mutex
	blob  []byte
	saves int
	failSave error
}

// NewMemoryRepository crea un repositorio vacío.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load implementa repository.SnapshotRepository.
func (r *MemoryRepository) Load(_ context.Context) (*entity.AppData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blob == nil {
		return nil, domain.ErrNotFound
	}
	return Decode(r.blob)
}

// Save implementa repository.SnapshotRepository.
func (r *MemoryRepository) Save(_ context.Context, data *entity.AppData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave != nil {
		return r.failSave
	}
	b, err := Encode(data)
	if err != nil {
		return err
	}
	r.blob = b
	r.saves++
	return nil
}

// Saves cuántas veces se persistió.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// SetFailSave fuerza un error en los Save siguientes (nil lo desactiva).
func (r *MemoryRepository) SetFailSave(err error) {
	r.mu.Lock()
	r.failSave = err
	r.mu.Unlock()
}
