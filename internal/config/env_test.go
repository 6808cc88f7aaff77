package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_DEVICE_IDENTIFIER", "11111111-2222-3333-4444-555555555555")
	t.Setenv("STORAGE_SETTINGS_PATH", "/tmp/settings.db")
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:/tmp/cache.db")
	t.Setenv("ADAPTER_ADDRESS", "https://vault.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "20s")
	t.Setenv("WORKERS_TIMEOUT_CHECK_INTERVAL", "45s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", cfg.App.DeviceIdentifier)
	assert.Equal(t, "/tmp/settings.db", cfg.Storage.Settings.Path)
	assert.Equal(t, "file:/tmp/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Workers.TimeoutCheckInterval)
}

func TestParseEnv_EmptyEnvironmentIsValid(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}
