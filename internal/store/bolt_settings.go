package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-client/models"
)

// encodeValue serializes a settings value to JSON bytes.
func encodeValue(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingSettingValue, err)
	}
	return raw, nil
}

// decodeValue deserializes JSON bytes into target.
func decodeValue(raw []byte, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodingSettingValue, err)
	}
	return nil
}

func encodeBool(b bool) []byte {
	if b {
		return []byte("1")
	}
	return []byte("0")
}

func decodeBool(raw []byte) bool {
	return len(raw) == 1 && raw[0] == '1'
}

// EncryptionKeys implements [AppSettingsStore].
func (s *boltSettingsStore) EncryptionKeys(_ context.Context, userID string) (*models.AccountEncryptionKeys, error) {
	raw, err := s.getUser(userID, keyEncryptionKeys)
	if err != nil || raw == nil {
		return nil, err
	}

	keys := &models.AccountEncryptionKeys{}
	if err := decodeValue(raw, keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// SetEncryptionKeys implements [AppSettingsStore].
func (s *boltSettingsStore) SetEncryptionKeys(_ context.Context, userID string, keys *models.AccountEncryptionKeys) error {
	if keys == nil {
		return s.putUser(userID, keyEncryptionKeys, nil)
	}

	raw, err := encodeValue(keys)
	if err != nil {
		return err
	}
	return s.putUser(userID, keyEncryptionKeys, raw)
}

// PasswordGenerationOptions implements [AppSettingsStore].
func (s *boltSettingsStore) PasswordGenerationOptions(_ context.Context, userID string) (*models.PasswordGenerationOptions, error) {
	raw, err := s.getUser(userID, keyPasswordGenOptions)
	if err != nil || raw == nil {
		return nil, err
	}

	opts := &models.PasswordGenerationOptions{}
	if err := decodeValue(raw, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// SetPasswordGenerationOptions implements [AppSettingsStore].
func (s *boltSettingsStore) SetPasswordGenerationOptions(_ context.Context, userID string, opts *models.PasswordGenerationOptions) error {
	if opts == nil {
		return s.putUser(userID, keyPasswordGenOptions, nil)
	}

	raw, err := encodeValue(opts)
	if err != nil {
		return err
	}
	return s.putUser(userID, keyPasswordGenOptions, raw)
}

// UsernameGenerationOptions implements [AppSettingsStore].
func (s *boltSettingsStore) UsernameGenerationOptions(_ context.Context, userID string) (*models.UsernameGenerationOptions, error) {
	raw, err := s.getUser(userID, keyUsernameGenOptions)
	if err != nil || raw == nil {
		return nil, err
	}

	opts := &models.UsernameGenerationOptions{}
	if err := decodeValue(raw, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// SetUsernameGenerationOptions implements [AppSettingsStore].
func (s *boltSettingsStore) SetUsernameGenerationOptions(_ context.Context, userID string, opts *models.UsernameGenerationOptions) error {
	if opts == nil {
		return s.putUser(userID, keyUsernameGenOptions, nil)
	}

	raw, err := encodeValue(opts)
	if err != nil {
		return err
	}
	return s.putUser(userID, keyUsernameGenOptions, raw)
}

// LastActiveTime implements [AppSettingsStore]. Timestamps are stored in
// RFC 3339 form with nanosecond precision.
func (s *boltSettingsStore) LastActiveTime(_ context.Context, userID string) (*time.Time, error) {
	raw, err := s.getUser(userID, keyLastActiveTime)
	if err != nil || raw == nil {
		return nil, err
	}

	at, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodingSettingValue, err)
	}
	return &at, nil
}

// SetLastActiveTime implements [AppSettingsStore].
func (s *boltSettingsStore) SetLastActiveTime(_ context.Context, userID string, at time.Time) error {
	return s.putUser(userID, keyLastActiveTime, []byte(at.Format(time.RFC3339Nano)))
}

// VaultTimeout implements [AppSettingsStore].
func (s *boltSettingsStore) VaultTimeout(_ context.Context, userID string) (*models.VaultTimeout, error) {
	raw, err := s.getUser(userID, keyVaultTimeout)
	if err != nil || raw == nil {
		return nil, err
	}

	timeout := new(models.VaultTimeout)
	if err := decodeValue(raw, timeout); err != nil {
		return nil, err
	}
	return timeout, nil
}

// SetVaultTimeout implements [AppSettingsStore].
func (s *boltSettingsStore) SetVaultTimeout(_ context.Context, userID string, timeout models.VaultTimeout) error {
	raw, err := encodeValue(timeout)
	if err != nil {
		return err
	}
	return s.putUser(userID, keyVaultTimeout, raw)
}

// TimeoutAction implements [AppSettingsStore].
func (s *boltSettingsStore) TimeoutAction(_ context.Context, userID string) (*models.TimeoutAction, error) {
	raw, err := s.getUser(userID, keyTimeoutAction)
	if err != nil || raw == nil {
		return nil, err
	}

	action := models.TimeoutAction(raw)
	return &action, nil
}

// SetTimeoutAction implements [AppSettingsStore].
func (s *boltSettingsStore) SetTimeoutAction(_ context.Context, userID string, action models.TimeoutAction) error {
	return s.putUser(userID, keyTimeoutAction, []byte(action))
}

// ShouldTrustDevice implements [AppSettingsStore].
func (s *boltSettingsStore) ShouldTrustDevice(_ context.Context, userID string) (bool, error) {
	raw, err := s.getUser(userID, keyShouldTrustDevice)
	if err != nil {
		return false, err
	}
	return decodeBool(raw), nil
}

// SetShouldTrustDevice implements [AppSettingsStore].
func (s *boltSettingsStore) SetShouldTrustDevice(_ context.Context, userID string, should bool) error {
	return s.putUser(userID, keyShouldTrustDevice, encodeBool(should))
}

// BiometricUnlockEnabled implements [AppSettingsStore].
func (s *boltSettingsStore) BiometricUnlockEnabled(_ context.Context, userID string) (bool, error) {
	raw, err := s.getUser(userID, keyBiometricUnlock)
	if err != nil {
		return false, err
	}
	return decodeBool(raw), nil
}

// SetBiometricUnlockEnabled implements [AppSettingsStore].
func (s *boltSettingsStore) SetBiometricUnlockEnabled(_ context.Context, userID string, enabled bool) error {
	return s.putUser(userID, keyBiometricUnlock, encodeBool(enabled))
}

// PinUnlockEnabled implements [AppSettingsStore].
func (s *boltSettingsStore) PinUnlockEnabled(_ context.Context, userID string) (bool, error) {
	raw, err := s.getUser(userID, keyPinUnlock)
	if err != nil {
		return false, err
	}
	return decodeBool(raw), nil
}

// SetPinUnlockEnabled implements [AppSettingsStore].
func (s *boltSettingsStore) SetPinUnlockEnabled(_ context.Context, userID string, enabled bool) error {
	return s.putUser(userID, keyPinUnlock, encodeBool(enabled))
}

// PreAuthEnvironmentURLs implements [AppSettingsStore].
func (s *boltSettingsStore) PreAuthEnvironmentURLs(_ context.Context) (*models.EnvironmentURLs, error) {
	raw, err := s.getGlobal(keyPreAuthEnvironment)
	if err != nil || raw == nil {
		return nil, err
	}

	urls := &models.EnvironmentURLs{}
	if err := decodeValue(raw, urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// SetPreAuthEnvironmentURLs implements [AppSettingsStore].
func (s *boltSettingsStore) SetPreAuthEnvironmentURLs(_ context.Context, urls models.EnvironmentURLs) error {
	raw, err := encodeValue(urls)
	if err != nil {
		return err
	}
	return s.putGlobal(keyPreAuthEnvironment, raw)
}

// RememberedEmail implements [AppSettingsStore].
func (s *boltSettingsStore) RememberedEmail(_ context.Context) (string, error) {
	raw, err := s.getGlobal(keyRememberedEmail)
	return string(raw), err
}

// SetRememberedEmail implements [AppSettingsStore].
func (s *boltSettingsStore) SetRememberedEmail(_ context.Context, email string) error {
	if email == "" {
		return s.putGlobal(keyRememberedEmail, nil)
	}
	return s.putGlobal(keyRememberedEmail, []byte(email))
}

// RememberedOrgIdentifier implements [AppSettingsStore].
func (s *boltSettingsStore) RememberedOrgIdentifier(_ context.Context) (string, error) {
	raw, err := s.getGlobal(keyRememberedOrgID)
	return string(raw), err
}

// SetRememberedOrgIdentifier implements [AppSettingsStore].
func (s *boltSettingsStore) SetRememberedOrgIdentifier(_ context.Context, identifier string) error {
	if identifier == "" {
		return s.putGlobal(keyRememberedOrgID, nil)
	}
	return s.putGlobal(keyRememberedOrgID, []byte(identifier))
}

// AppTheme implements [AppSettingsStore].
func (s *boltSettingsStore) AppTheme(_ context.Context) (string, error) {
	raw, err := s.getGlobal(keyAppTheme)
	return string(raw), err
}

// SetAppTheme implements [AppSettingsStore].
func (s *boltSettingsStore) SetAppTheme(_ context.Context, theme string) error {
	return s.putGlobal(keyAppTheme, []byte(theme))
}

// AppLocale implements [AppSettingsStore].
func (s *boltSettingsStore) AppLocale(_ context.Context) (string, error) {
	raw, err := s.getGlobal(keyAppLocale)
	return string(raw), err
}

// SetAppLocale implements [AppSettingsStore].
func (s *boltSettingsStore) SetAppLocale(_ context.Context, locale string) error {
	return s.putGlobal(keyAppLocale, []byte(locale))
}
