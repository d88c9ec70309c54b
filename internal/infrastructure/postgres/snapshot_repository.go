package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/repository"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_snapshots (
	key            TEXT PRIMARY KEY,
	data           JSONB NOT NULL,
	total_stock_kg NUMERIC(18,0) NOT NULL DEFAULT 0,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const upsertSQL = `
INSERT INTO app_snapshots (key, data, total_stock_kg, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (key) DO UPDATE
SET data = EXCLUDED.data, total_stock_kg = EXCLUDED.total_stock_kg, updated_at = NOW()`

// SnapshotRepository guarda el snapshot en una fila de app_snapshots.
// total_stock_kg se guarda aparte para consultas SQL sin abrir el JSON.
type SnapshotRepository struct {
	pool *pgxpool.Pool
	tx   *TxRunner
	key  string
}

// NewSnapshotRepository construye el repositorio. Llamar a EnsureSchema al arrancar.
func NewSnapshotRepository(pool *pgxpool.Pool, key string) *SnapshotRepository {
	return &SnapshotRepository{pool: pool, tx: NewTxRunner(pool), key: key}
}

// EnsureSchema crea la tabla si no existe.
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear app_snapshots: %w", err)
	}
	return nil
}

// Load implementa repository.SnapshotRepository.
func (r *SnapshotRepository) Load(ctx context.Context) (*entity.AppData, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM app_snapshots WHERE key = $1`, r.key).Scan(&raw)
	// sin tabla todavía (EnsureSchema no corrió) equivale a snapshot ausente
	if errors.Is(err, pgx.ErrNoRows) || hasSQLState(err, sqlStateUndefinedTable) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer snapshot %s: %w", r.key, err)
	}
	return storage.Decode(raw)
}

// Save implementa repository.SnapshotRepository.
func (r *SnapshotRepository) Save(ctx context.Context, data *entity.AppData) error {
	b, err := storage.Encode(data)
	if err != nil {
		return err
	}
	total := decimal.NewFromInt(data.TotalStockKg())
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, upsertSQL, r.key, b, total); err != nil {
			return fmt.Errorf("guardar snapshot %s: %w", r.key, err)
		}
		return nil
	})
}

// TotalStockKg lee la columna NUMERIC sin decodificar el JSON.
func (r *SnapshotRepository) TotalStockKg(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT total_stock_kg FROM app_snapshots WHERE key = $1`, r.key).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, domain.ErrNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("leer total_stock_kg: %w", err)
	}
	return total, nil
}
