// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-vault-client application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the device identity
	// registered with the server and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all local persistence backends:
	// the key-value settings store and the vault cipher cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network address and timeout settings for the outbound
	// API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values describing this client
// installation.
type App struct {
	// DeviceIdentifier is the stable UUID identifying this installation to
	// the server (device registration, trusted-device flows). Generated on
	// first run when empty.
	// Env: APP_DEVICE_IDENTIFIER
	DeviceIdentifier string `env:"DEVICE_IDENTIFIER"`

	// DeviceModel is the human-readable device description sent alongside
	// the identifier when registering trusted-device keys.
	// Env: APP_DEVICE_MODEL
	DeviceModel string `env:"DEVICE_MODEL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all local storage backends used by
// the client.
type Storage struct {
	// Settings holds the key-value settings store location.
	Settings Settings `envPrefix:"SETTINGS_"`

	// DB holds the vault cipher cache database settings.
	DB DB `envPrefix:"DB_"`
}

// Settings holds the on-disk location of the key-value settings store.
type Settings struct {
	// Path is the file path of the bbolt database holding account state
	// and per-user settings (e.g. "~/.vault-client/settings.db").
	// Env: STORAGE_SETTINGS_PATH
	Path string `env:"PATH"`
}

// DB holds connection settings for the local cipher cache database.
type DB struct {
	// DSN is the SQLite Data Source Name used to open the cipher cache
	// (e.g. "file:vault-cache.db?_fk=1").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds network settings for the outbound API client.
type Adapter struct {
	// HTTPAddress is the base URL of the server API
	// (e.g. "https://vault.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// TimeoutCheckInterval defines how often the vault timeout worker
	// re-evaluates session timeouts for all known accounts.
	// Env: WORKERS_TIMEOUT_CHECK_INTERVAL
	TimeoutCheckInterval time.Duration `env:"TIMEOUT_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
