// Package keychain wraps the operating system's secure credential storage
// for device-bound key material. Device keys deliberately live here rather
// than in the general settings store: the keychain is the higher-security
// tier arbitrated by the OS.
package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=keychain.go -destination=../mock/device_key_store_mock.go -package=mock

// ErrDeviceKeyNotFound is returned when no device key is stored for the
// requested user. Callers that only probe for trust presence must treat it
// as "not trusted", not as a failure.
var ErrDeviceKeyNotFound = errors.New("device key not found")

// DeviceKeyStore is keyed secure storage for per-account device keys.
type DeviceKeyStore interface {
	// DeviceKey returns the device key stored for userID.
	// Returns [ErrDeviceKeyNotFound] when none is stored.
	DeviceKey(userID string) (models.KeyBlob, error)

	// SetDeviceKey stores (or replaces) the device key for userID.
	SetDeviceKey(userID string, key models.KeyBlob) error

	// DeleteDeviceKey removes the device key for userID.
	// Returns [ErrDeviceKeyNotFound] when none was stored.
	DeleteDeviceKey(userID string) error
}

// osKeychain is the production [DeviceKeyStore] backed by zalando/go-keyring
// (macOS Keychain, Windows Credential Manager, or the freedesktop Secret
// Service on Linux).
type osKeychain struct {
	service string
}

// NewOSKeychain returns a [DeviceKeyStore] storing entries under the given
// keychain service name (one entry per user id).
func NewOSKeychain(service string) DeviceKeyStore {
	return &osKeychain{service: service}
}

func (k *osKeychain) DeviceKey(userID string) (models.KeyBlob, error) {
	value, err := keyring.Get(k.service, userID)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrDeviceKeyNotFound
		}
		return "", fmt.Errorf("keychain get: %w", err)
	}

	return models.KeyBlob(value), nil
}

func (k *osKeychain) SetDeviceKey(userID string, key models.KeyBlob) error {
	if err := keyring.Set(k.service, userID, string(key)); err != nil {
		return fmt.Errorf("keychain set: %w", err)
	}
	return nil
}

func (k *osKeychain) DeleteDeviceKey(userID string) error {
	if err := keyring.Delete(k.service, userID); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrDeviceKeyNotFound
		}
		return fmt.Errorf("keychain delete: %w", err)
	}
	return nil
}
