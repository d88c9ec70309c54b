package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/repository"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/postgres"
	infraredis "github.com/abdoulayediaw-ops/orsre/internal/infrastructure/redis"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
	"github.com/abdoulayediaw-ops/orsre/pkg/config"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// Open construye el repositorio del snapshot según STORE_DRIVER.
// El cierre devuelto libera la conexión (no-op para file y memory).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SnapshotRepository, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		return storage.NewMemoryRepository(), noop, nil

	case config.StoreDriverRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a Redis: %w", err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Str("key", cfg.Store.Key).Msg("snapshot en Redis")
		return infraredis.NewSnapshotRepository(client, cfg.Store.Key), func() { _ = client.Close() }, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewSnapshotRepository(pool, cfg.Store.Key)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("esquema app_snapshots: %w", err)
		}
		// la columna NUMERIC permite reportar el total sin decodificar el JSON
		total, err := repo.TotalStockKg(ctx)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			log.Info().Str("key", cfg.Store.Key).Msg("snapshot en PostgreSQL (vacío)")
		case err != nil:
			log.Warn().Err(err).Str("key", cfg.Store.Key).Msg("snapshot en PostgreSQL: total no disponible")
		default:
			log.Info().Str("key", cfg.Store.Key).Str("total_stock_kg", total.String()).Msg("snapshot en PostgreSQL")
		}
		return repo, pool.Close, nil

	default:
		log.Info().Str("path", cfg.Store.Path).Msg("snapshot en archivo JSON")
		return storage.NewFileRepository(cfg.Store.Path), noop, nil
	}
}
