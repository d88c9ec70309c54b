package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/repository"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// Store mantiene el snapshot en memoria y lo persiste entero en cada commit.
// Un mutex serializa a los escritores del proceso; entre procesos gana el último.
type Store struct {
	mu   sync.RWMutex
	repo repository.SnapshotRepository
	data entity.AppData
	log  *logger.Logger
}

// NewStore crea el store. Hay que llamar a Load antes de usarlo.
func NewStore(repo repository.SnapshotRepository, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{repo: repo, log: log.Component("store")}
}

// Load lee el snapshot una vez al arrancar. Si no existe, persiste el dataset inicial.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		seed := entity.Seed()
		if err := s.repo.Save(ctx, &seed); err != nil {
			return fmt.Errorf("store: guardar seed: %w", err)
		}
		s.data = seed
		s.log.Info().Int("warehouses", len(seed.Warehouses)).Msg("snapshot inicial creado")
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: cargar snapshot: %w", err)
	}
	data.Normalize()
	s.data = *data
	s.log.Info().
		Int("users", len(data.Users)).
		Int("warehouses", len(data.Warehouses)).
		Int("movements", len(data.Movements)).
		Msg("snapshot cargado")
	return nil
}

// Get devuelve una copia profunda del snapshot actual.
func (s *Store) Get() (entity.AppData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Commit persiste next y, solo si la escritura fue bien, lo publica como snapshot actual.
func (s *Store) Commit(ctx context.Context, next entity.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, next)
}

// Run ejecuta fn sobre una copia del snapshot y la confirma si fn no devuelve error.
// Con error la copia se descarta y el snapshot publicado no cambia.
func (s *Store) Run(ctx context.Context, fn func(d *entity.AppData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.data.Clone()
	if err != nil {
		return fmt.Errorf("store: clonar snapshot: %w", err)
	}
	if err := fn(&next); err != nil {
		return err
	}
	return s.commitLocked(ctx, next)
}

// Update como Run, pero fn devuelve el snapshot nuevo en lugar de mutar la copia.
func (s *Store) Update(ctx context.Context, fn func(current *entity.AppData) (entity.AppData, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(&s.data)
	if err != nil {
		return err
	}
	return s.commitLocked(ctx, next)
}

func (s *Store) commitLocked(ctx context.Context, next entity.AppData) error {
	if err := s.repo.Save(ctx, &next); err != nil {
		s.log.Error().Err(err).Msg("no se pudo persistir el snapshot")
		return fmt.Errorf("store: persistir snapshot: %w", err)
	}
	s.data = next
	return nil
}
