package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "8082", cfg.OpsPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TODO_GRPC_PORT", "6000")
	t.Setenv("DB_DRIVER", "gorm")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "todos")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "6000", cfg.GRPCPort)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "host=db.internal port=5432 user=todo_user password=todo_pass dbname=todos sslmode=disable", cfg.DB.DSN())

	opts := cfg.DB.StoreOptions()
	assert.Equal(t, "gorm", opts.Driver)
	assert.Equal(t, 25, opts.Pool.MaxOpenConns)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "sqlite3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite3")
}

func TestMemoryDriverHasNoDSN(t *testing.T) {
	db := DatabaseConfig{Driver: "memory"}
	assert.Empty(t, db.DSN())
}
