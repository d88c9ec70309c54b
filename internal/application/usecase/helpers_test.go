package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/application/state"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
)

// seededStore store de memoria con el dataset inicial.
func seededStore(t *testing.T) *state.Store {
	t.Helper()
	s := state.NewStore(storage.NewMemoryRepository(), nil)
	require.NoError(t, s.Load(context.Background()))
	return s
}
