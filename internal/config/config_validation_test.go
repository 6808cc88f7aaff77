package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceIdentifier: "b34b8a33-15a9-4476-8f30-d79cb35bd1f7",
			DeviceModel:      "test-device",
		},
		Adapter: ClientAdapter{
			HTTPAddress:    "https://vault.example.com",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{
			Settings: ClientSettings{Path: "settings.db"},
			DB:       ClientDB{DSN: "file:cache.db"},
		},
		Workers: ClientWorkers{TimeoutCheckInterval: 30 * time.Second},
	}
}

func TestClientConfigValidate_Valid(t *testing.T) {
	cfg := validClientConfig()
	require.NoError(t, cfg.validate())
}

func TestClientConfigValidate_MissingSettingsPath(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.Settings.Path = ""

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_MissingDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_MissingAdapterAddress(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.HTTPAddress = ""

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestClientConfigValidate_ZeroWorkerInterval(t *testing.T) {
	cfg := validClientConfig()
	cfg.Workers.TimeoutCheckInterval = 0

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}
