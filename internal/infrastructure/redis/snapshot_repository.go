package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/repository"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository guarda el snapshot JSON bajo una sola clave (SET/GET, sin expiración).
type SnapshotRepository struct {
	client goredis.UniversalClient
	key    string
}

// NewSnapshotRepository crea el repositorio sobre un cliente ya conectado.
func NewSnapshotRepository(client goredis.UniversalClient, key string) *SnapshotRepository {
	return &SnapshotRepository{client: client, key: key}
}

// Load implementa repository.SnapshotRepository.
func (r *SnapshotRepository) Load(ctx context.Context) (*entity.AppData, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return storage.Decode(b)
}

// Save implementa repository.SnapshotRepository.
func (r *SnapshotRepository) Save(ctx context.Context, data *entity.AppData) error {
	b, err := storage.Encode(data)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
