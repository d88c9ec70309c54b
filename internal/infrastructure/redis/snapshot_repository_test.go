package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/pkg/config"
)

func newTestRepo(t *testing.T) (*SnapshotRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSnapshotRepository(client, "orsre_data"), mr
}

func TestSnapshotRepository_LoadMissing(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshotRepository_SaveAndLoad(t *testing.T) {
	repo, mr := newTestRepo(t)
	seed := entity.Seed()

	require.NoError(t, repo.Save(context.Background(), &seed))
	assert.True(t, mr.Exists("orsre_data"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Users, 2)
	assert.Equal(t, int64(25000), got.Warehouses[1].Quantity("Arachide"))
}

func TestSnapshotRepository_LegacyBlob(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("orsre_data", `{"users":[],"warehouses":[],"movements":[{"id":"m1","type":"ENTREE","status":"PENDING","date":"2024-01-01T00:00:00Z"}]}`))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeInbound, got.Movements[0].Type)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
