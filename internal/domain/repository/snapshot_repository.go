package repository

import (
	"context"

	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// SnapshotRepository persiste el agregado AppData completo bajo una clave fija.
// Load devuelve domain.ErrNotFound si todavía no hay snapshot guardado.
// Save reescribe el snapshot entero (sin parches ni merges).
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.AppData, error)
	Save(ctx context.Context, data *entity.AppData) error
}
