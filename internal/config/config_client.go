package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DeviceIdentifier is the stable UUID identifying this installation.
	DeviceIdentifier string
	// DeviceModel is the human-readable device description.
	DeviceModel string
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server API base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSettings contains settings store location for the client.
type ClientSettings struct {
	// Path is the bbolt database file path.
	Path string
}

// ClientDB contains cipher cache connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Settings holds the key-value settings store location.
	Settings ClientSettings
	// DB holds the cipher cache settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// TimeoutCheckInterval defines how often the vault timeout worker runs.
	TimeoutCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults (a generated device
// identifier when none is configured), and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceIdentifier: cfg.App.DeviceIdentifier,
			DeviceModel:      cfg.App.DeviceModel,
			Version:          cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Settings: ClientSettings{
				Path: cfg.Storage.Settings.Path,
			},
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			TimeoutCheckInterval: cfg.Workers.TimeoutCheckInterval,
		},
	}

	if clientCfg.App.DeviceIdentifier == "" {
		clientCfg.App.DeviceIdentifier = uuid.NewString()
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
