package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AppSettingsStore is the durable key-value settings layer underneath the
// state service. Every accessor is typed; a missing value is reported as a
// nil pointer (or zero value for booleans), never as an error. Values are
// namespaced per user id where a userID parameter is present and global
// otherwise.
//
// The store offers no transactional guarantee across separate accessor
// calls: a consumer reading two related keys may observe them at different
// points in time if concurrent writers exist. The state service's own
// serialization is the only write coordination in this process.
type AppSettingsStore interface {
	// State returns the persisted account registry blob, or nil when no
	// registry has ever been written.
	State(ctx context.Context) (*models.State, error)

	// SetState replaces the persisted account registry. Passing nil
	// deletes the blob. A change of the active user id embedded in the
	// state is published to ActiveUserChanges subscribers.
	SetState(ctx context.Context, state *models.State) error

	// ActiveUserChanges subscribes to active-user-id changes. The current
	// value is replayed immediately on subscribe; afterwards the latest
	// value is delivered on every change (intermediate values may be
	// dropped if the subscriber lags). The returned cancel func releases
	// the subscription.
	ActiveUserChanges() (<-chan string, func())

	// EncryptionKeys returns the stored key reference pair for the user,
	// or nil when absent. No completeness check happens here; AND
	// semantics are the state service's concern.
	EncryptionKeys(ctx context.Context, userID string) (*models.AccountEncryptionKeys, error)

	// SetEncryptionKeys stores the key reference pair for the user.
	// Passing nil deletes the stored pair.
	SetEncryptionKeys(ctx context.Context, userID string, keys *models.AccountEncryptionKeys) error

	// PasswordGenerationOptions returns the user's saved password
	// generator options, or nil when absent.
	PasswordGenerationOptions(ctx context.Context, userID string) (*models.PasswordGenerationOptions, error)

	// SetPasswordGenerationOptions stores the user's password generator
	// options. Passing nil deletes them.
	SetPasswordGenerationOptions(ctx context.Context, userID string, opts *models.PasswordGenerationOptions) error

	// UsernameGenerationOptions returns the user's saved username
	// generator options, or nil when absent.
	UsernameGenerationOptions(ctx context.Context, userID string) (*models.UsernameGenerationOptions, error)

	// SetUsernameGenerationOptions stores the user's username generator
	// options. Passing nil deletes them.
	SetUsernameGenerationOptions(ctx context.Context, userID string, opts *models.UsernameGenerationOptions) error

	// LastActiveTime returns the user's last recorded activity timestamp,
	// or nil when the user has never been stamped.
	LastActiveTime(ctx context.Context, userID string) (*time.Time, error)

	// SetLastActiveTime stamps the user's last activity moment.
	SetLastActiveTime(ctx context.Context, userID string, at time.Time) error

	// VaultTimeout returns the user's configured session timeout, or nil
	// when the user has never chosen one.
	VaultTimeout(ctx context.Context, userID string) (*models.VaultTimeout, error)

	// SetVaultTimeout stores the user's session timeout choice.
	SetVaultTimeout(ctx context.Context, userID string, timeout models.VaultTimeout) error

	// TimeoutAction returns the user's configured timeout action, or nil
	// when unset.
	TimeoutAction(ctx context.Context, userID string) (*models.TimeoutAction, error)

	// SetTimeoutAction stores the user's timeout action choice.
	SetTimeoutAction(ctx context.Context, userID string, action models.TimeoutAction) error

	// ShouldTrustDevice returns the user's deferred device-trust intent
	// flag. Absent reads as false.
	ShouldTrustDevice(ctx context.Context, userID string) (bool, error)

	// SetShouldTrustDevice stores the deferred device-trust intent flag.
	SetShouldTrustDevice(ctx context.Context, userID string, should bool) error

	// BiometricUnlockEnabled returns whether biometric unlock is enabled
	// for the user. Absent reads as false.
	BiometricUnlockEnabled(ctx context.Context, userID string) (bool, error)

	// SetBiometricUnlockEnabled stores the biometric unlock flag.
	SetBiometricUnlockEnabled(ctx context.Context, userID string, enabled bool) error

	// PinUnlockEnabled returns whether PIN unlock is enabled for the
	// user. Absent reads as false.
	PinUnlockEnabled(ctx context.Context, userID string) (bool, error)

	// SetPinUnlockEnabled stores the PIN unlock flag.
	SetPinUnlockEnabled(ctx context.Context, userID string, enabled bool) error

	// DeleteUserSettings removes every per-user value stored for userID in
	// one shot. Used by the logout cascade. Deleting a user that has no
	// stored values is a no-op, not an error.
	DeleteUserSettings(ctx context.Context, userID string) error

	// PreAuthEnvironmentURLs returns the environment configured before any
	// account exists (first-run server selection), or nil when unset.
	PreAuthEnvironmentURLs(ctx context.Context) (*models.EnvironmentURLs, error)

	// SetPreAuthEnvironmentURLs stores the pre-auth environment.
	SetPreAuthEnvironmentURLs(ctx context.Context, urls models.EnvironmentURLs) error

	// RememberedEmail returns the login email remembered across sessions,
	// or empty when none.
	RememberedEmail(ctx context.Context) (string, error)

	// SetRememberedEmail stores the remembered login email. Empty deletes.
	SetRememberedEmail(ctx context.Context, email string) error

	// RememberedOrgIdentifier returns the SSO organisation identifier
	// remembered across sessions, or empty when none.
	RememberedOrgIdentifier(ctx context.Context) (string, error)

	// SetRememberedOrgIdentifier stores the remembered org identifier.
	// Empty deletes.
	SetRememberedOrgIdentifier(ctx context.Context, identifier string) error

	// AppTheme returns the configured UI theme name, or empty for default.
	AppTheme(ctx context.Context) (string, error)

	// SetAppTheme stores the UI theme name.
	SetAppTheme(ctx context.Context, theme string) error

	// AppLocale returns the configured locale tag, or empty for system.
	AppLocale(ctx context.Context) (string, error)

	// SetAppLocale stores the locale tag.
	SetAppLocale(ctx context.Context, locale string) error

	// Close releases the underlying database handle.
	Close() error
}

// VaultDataStore is the per-user encrypted vault cache invoked by the logout
// cascade and refreshed by sync. Item payloads are opaque ciphertext.
type VaultDataStore interface {
	// SaveCiphers inserts or replaces cached vault items for their owning
	// users.
	SaveCiphers(ctx context.Context, ciphers ...models.Cipher) error

	// ListCiphers returns every cached vault item belonging to userID.
	ListCiphers(ctx context.Context, userID string) ([]models.Cipher, error)

	// DeleteDataForUser bulk-deletes every cached vault item belonging to
	// userID. Deleting a user with no cached data succeeds.
	DeleteDataForUser(ctx context.Context, userID string) error
}
