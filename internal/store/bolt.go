// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/models"
)

// Bucket layout of the settings database:
//
//	global          — pre-auth values and the serialized account registry
//	users/<userID>  — nested bucket per account holding all scoped settings
var (
	bucketGlobal = []byte("global")
	bucketUsers  = []byte("users")
)

// Keys inside the global bucket.
var (
	keyState              = []byte("state")
	keyPreAuthEnvironment = []byte("preauth_environment_urls")
	keyRememberedEmail    = []byte("remembered_email")
	keyRememberedOrgID    = []byte("remembered_org_identifier")
	keyAppTheme           = []byte("app_theme")
	keyAppLocale          = []byte("app_locale")
)

// Keys inside a per-user bucket.
var (
	keyEncryptionKeys     = []byte("encryption_keys")
	keyPasswordGenOptions = []byte("password_generation_options")
	keyUsernameGenOptions = []byte("username_generation_options")
	keyLastActiveTime     = []byte("last_active_time")
	keyVaultTimeout       = []byte("vault_timeout")
	keyTimeoutAction      = []byte("timeout_action")
	keyShouldTrustDevice  = []byte("should_trust_device")
	keyBiometricUnlock    = []byte("biometric_unlock_enabled")
	keyPinUnlock          = []byte("pin_unlock_enabled")
)

type boltSettingsStore struct {
	db        *bbolt.DB
	publisher *activeUserPublisher
	logger    *logger.Logger
}

// NewBoltSettingsStore opens (or creates) the bbolt settings database at
// cfg.Path, initialises the bucket layout, and seeds the active-user change
// publisher with the currently persisted active user id so that the first
// subscriber observes the present value, not a synthetic empty one.
func NewBoltSettingsStore(cfg config.ClientSettings, log *logger.Logger) (AppSettingsStore, error) {
	db, err := bbolt.Open(cfg.Path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpeningSettingsStore, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketGlobal); err != nil {
			return fmt.Errorf("create global bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketUsers); err != nil {
			return fmt.Errorf("create users bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrOpeningSettingsStore, err)
	}

	s := &boltSettingsStore{
		db:        db,
		publisher: newActiveUserPublisher(),
		logger:    log,
	}

	state, err := s.State(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if state != nil {
		s.publisher.publish(state.ActiveUserID)
	} else {
		s.publisher.publish("")
	}

	return s, nil
}

// Close releases the underlying bbolt handle and terminates all
// active-user-change subscriptions.
func (s *boltSettingsStore) Close() error {
	s.publisher.close()
	return s.db.Close()
}

// ActiveUserChanges implements [AppSettingsStore].
func (s *boltSettingsStore) ActiveUserChanges() (<-chan string, func()) {
	return s.publisher.subscribe()
}

// State implements [AppSettingsStore].
func (s *boltSettingsStore) State(_ context.Context) (*models.State, error) {
	var state *models.State
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketGlobal).Get(keyState)
		if raw == nil {
			return nil
		}

		state = &models.State{}
		if err := decodeValue(raw, state); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if state != nil && state.Accounts == nil {
		state.Accounts = make(map[string]models.Account)
	}
	return state, nil
}

// SetState implements [AppSettingsStore]. The active user id embedded in the
// new state is published after a successful write so subscribers never
// observe an id that failed to persist.
func (s *boltSettingsStore) SetState(_ context.Context, state *models.State) error {
	var activeUserID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGlobal)
		if state == nil {
			return bucket.Delete(keyState)
		}

		raw, err := encodeValue(state)
		if err != nil {
			return err
		}
		activeUserID = state.ActiveUserID
		return bucket.Put(keyState, raw)
	})
	if err != nil {
		return err
	}

	s.publisher.publish(activeUserID)
	return nil
}

// DeleteUserSettings implements [AppSettingsStore].
func (s *boltSettingsStore) DeleteUserSettings(_ context.Context, userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		users := tx.Bucket(bucketUsers)
		if users.Bucket([]byte(userID)) == nil {
			return nil
		}
		return users.DeleteBucket([]byte(userID))
	})
}

// getGlobal returns the raw bytes stored under key in the global bucket, or
// nil when absent. The returned slice is copied out of the transaction.
func (s *boltSettingsStore) getGlobal(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketGlobal).Get(key)
		if raw != nil {
			out = append([]byte(nil), raw...)
		}
		return nil
	})
	return out, err
}

// putGlobal stores raw bytes under key in the global bucket. A nil value
// deletes the key.
func (s *boltSettingsStore) putGlobal(key, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGlobal)
		if value == nil {
			return bucket.Delete(key)
		}
		return bucket.Put(key, value)
	})
}

// getUser returns the raw bytes stored under key in the user's bucket, or
// nil when either the bucket or the key is absent.
func (s *boltSettingsStore) getUser(userID string, key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		user := tx.Bucket(bucketUsers).Bucket([]byte(userID))
		if user == nil {
			return nil
		}
		raw := user.Get(key)
		if raw != nil {
			out = append([]byte(nil), raw...)
		}
		return nil
	})
	return out, err
}

// putUser stores raw bytes under key in the user's bucket, creating the
// bucket on first write. A nil value deletes the key.
func (s *boltSettingsStore) putUser(userID string, key, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		users := tx.Bucket(bucketUsers)

		if value == nil {
			user := users.Bucket([]byte(userID))
			if user == nil {
				return nil
			}
			return user.Delete(key)
		}

		user, err := users.CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return fmt.Errorf("create user bucket: %w", err)
		}
		return user.Put(key, value)
	})
}
