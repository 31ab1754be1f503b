package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "STORAGE_BACKEND", "DATA_DIR", "INVENTORY_FILE",
		"TRANSACTIONS_FILE", "SQLITE_PATH", "ADMIN_USERNAME", "ADMIN_PASSWORD", "JWT_SECRET",
		"JWT_TTL", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg := LoadEnv()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, BackendCSV, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join("data", "inventory.csv"), cfg.Storage.InventoryFile)
	assert.Equal(t, filepath.Join("data", "transactions.csv"), cfg.Storage.TransactionsFile)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "1234", cfg.Admin.Password)
	assert.Equal(t, 8*time.Hour, cfg.JWT.TTL)
	assert.True(t, cfg.JWT.DefaultSecret())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.Logger.File)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/mart")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("INVENTORY_FILE", "")
	t.Setenv("TRANSACTIONS_FILE", "/tmp/txns.csv")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := LoadEnv()
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join("/srv/mart", "inventory.csv"), cfg.Storage.InventoryFile)
	assert.Equal(t, "/tmp/txns.csv", cfg.Storage.TransactionsFile)
	assert.Equal(t, filepath.Join("/srv/mart", "clevermart.db"), cfg.Storage.SQLitePath)
	assert.False(t, cfg.JWT.DefaultSecret())
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"90m", 90 * time.Minute},
		{"3600", time.Hour},
		{"010", 10 * time.Second},
		{"0x10", time.Minute},
		{"0", time.Minute},
		{"-5s", time.Minute},
		{"soon", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_TTL", tt.value)
			assert.Equal(t, tt.want, getEnvDuration("TEST_TTL", time.Minute))
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLEVERMART_TEST_ADDR=:9999\n"), 0o600))
	t.Setenv("HTTP_ADDR", "")
	t.Cleanup(func() { os.Unsetenv("CLEVERMART_TEST_ADDR") })

	Load(path)
	assert.Equal(t, ":9999", os.Getenv("CLEVERMART_TEST_ADDR"))
}
