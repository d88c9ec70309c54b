package ports

import (
	"context"

	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// SnapshotStore acceso al snapshot AppData compartido.
// Get devuelve una copia; Run muta una copia y la confirma; Update recibe el
// snapshot actual en solo lectura y devuelve el nuevo.
type SnapshotStore interface {
	Get() (entity.AppData, error)
	Run(ctx context.Context, fn func(d *entity.AppData) error) error
	Update(ctx context.Context, fn func(current *entity.AppData) (entity.AppData, error)) error
}
