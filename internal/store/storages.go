package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/migrations"
)

// ClientStorages groups all client-side storage backends into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Settings is the bbolt-backed key-value settings store holding the
	// account registry and all per-user settings.
	Settings AppSettingsStore

	// VaultData is the SQLite-backed local cache of encrypted vault items.
	VaultData VaultDataStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens (or creates) the bbolt settings database at cfg.Settings.Path.
//  2. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  3. Runs pending cipher cache schema migrations via [migrations.Migrate].
//  4. Constructs and returns a [ClientStorages] value wired to both stores.
//
// Returns an error if either database cannot be opened or migration fails.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	settings, err := NewBoltSettingsStore(cfg.Settings, log)
	if err != nil {
		return nil, fmt.Errorf("settings store: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DB.DSN)
	if err != nil {
		_ = settings.Close()
		return nil, fmt.Errorf("cipher cache connection error: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		_ = settings.Close()
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Settings:  settings,
		VaultData: NewCipherCacheRepository(db, log),
	}, nil
}
