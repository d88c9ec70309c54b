package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*FileRepository)(nil)

// FileRepository guarda el snapshot como un archivo JSON.
// La escritura va a un temporal y luego rename, así nunca queda un archivo a medias.
type FileRepository struct {
	path string
}

// NewFileRepository crea el repositorio; el directorio se crea en el primer Save.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load implementa repository.SnapshotRepository.
func (r *FileRepository) Load(ctx context.Context) (*entity.AppData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", r.path, err)
	}
	return Decode(b)
}

// Save implementa repository.SnapshotRepository.
func (r *FileRepository) Save(ctx context.Context, data *entity.AppData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := Encode(data)
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", r.path, err)
	}
	return nil
}
