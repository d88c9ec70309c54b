package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORE_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverFile, cfg.Store.Driver)
	assert.Equal(t, "orsre_data", cfg.Store.Key)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "strict", cfg.Ledger.Policy)
	assert.Equal(t, AIProviderGemini, cfg.AI.Provider)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LEDGER_POLICY", "LEGACY")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("AI_TIMEOUT_SECONDS", "4")
	t.Setenv("SWAGGER_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, StoreDriverRedis, cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "legacy", cfg.Ledger.Policy)
	assert.Equal(t, AIProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, 4*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.App.SwaggerEnabled)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", "memory")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "orsre", Password: "p@ss:word", DBName: "orsre", SSLMode: "disable"}
	assert.Equal(t, "postgres://orsre:p%40ss%3Aword@db:5432/orsre?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
