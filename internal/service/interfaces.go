package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StateService is the single authoritative façade all other components use
// to read and write account-scoped state. Every method that takes a userID
// accepts the empty string to mean "the currently active account"; the
// resolution rule is exactly [StateService.AccountIDOrActiveID], so an empty
// userID propagates whatever error active-account resolution raises.
//
// All methods are serialized: at most one method body executes at a time,
// so registry mutations never interleave. The settings store underneath is
// not independently synchronized; bypassing the state service to write it
// directly can race with these methods.
type StateService interface {
	// AddAccount inserts (or fully replaces — no merge semantics) the
	// account keyed by its own user id and makes it the active account.
	AddAccount(ctx context.Context, account models.Account) error

	// ActiveAccount returns the account the active pointer references.
	// Returns [ErrNoActiveAccount] when the pointer is unset or dangling.
	ActiveAccount(ctx context.Context) (models.Account, error)

	// ActiveAccountID returns the active account's user id.
	// Returns [ErrNoActiveAccount] when the pointer is unset or dangling.
	ActiveAccountID(ctx context.Context) (string, error)

	// Accounts returns every registered account ordered by user id.
	// Returns [ErrNoAccounts] when the registry is empty or uninitialised.
	Accounts(ctx context.Context) ([]models.Account, error)

	// AccountIDOrActiveID resolves the two-tier id convention: a non-empty
	// userID must exist in the registry (else [ErrNoAccounts]); an empty
	// userID defers to ActiveAccountID and propagates its error.
	AccountIDOrActiveID(ctx context.Context, userID string) (string, error)

	// SetActiveAccount atomically repoints the active pointer to userID.
	// No side data moves. Returns [ErrNoAccounts] when userID is unknown.
	SetActiveAccount(ctx context.Context, userID string) error

	// LogoutAccount removes the account from the registry and cascades
	// deletion of all its secondary state: settings-store values
	// (encryption keys, generation options, unlock flags, trust intent)
	// and the external vault data cache. When the removed account was
	// active, the account with the smallest remaining user id becomes
	// active, or none if the registry is now empty.
	//
	// The cascade is best-effort, not transactional: a failure partway
	// through can leave settings already cleared while the vault cache
	// deletion error propagates to the caller.
	LogoutAccount(ctx context.Context, userID string) error

	// SetAccountProfile replaces the stored profile of the account,
	// keeping the rest of the record intact. Used by profile refresh.
	SetAccountProfile(ctx context.Context, userID string, profile models.Profile) error

	// AccountEncryptionKeys returns the account's encryption key
	// reference pair. A pair with either component missing is reported
	// exactly like a fully absent pair: [ErrNoActiveAccount].
	AccountEncryptionKeys(ctx context.Context, userID string) (models.AccountEncryptionKeys, error)

	// SetAccountEncryptionKeys stores the account's key reference pair.
	SetAccountEncryptionKeys(ctx context.Context, userID string, keys models.AccountEncryptionKeys) error

	// Tokens returns the account's session token pair, or nil when the
	// account has no session on this device.
	Tokens(ctx context.Context, userID string) (*models.TokenPair, error)

	// SetTokens stores the account's session token pair in the registry.
	SetTokens(ctx context.Context, userID string, tokens models.TokenPair) error

	// PasswordGenerationOptions returns the account's saved password
	// generator options, or nil when none were saved.
	PasswordGenerationOptions(ctx context.Context, userID string) (*models.PasswordGenerationOptions, error)

	// SetPasswordGenerationOptions stores the account's password
	// generator options.
	SetPasswordGenerationOptions(ctx context.Context, userID string, opts models.PasswordGenerationOptions) error

	// UsernameGenerationOptions returns the account's saved username
	// generator options, or nil when none were saved.
	UsernameGenerationOptions(ctx context.Context, userID string) (*models.UsernameGenerationOptions, error)

	// SetUsernameGenerationOptions stores the account's username
	// generator options.
	SetUsernameGenerationOptions(ctx context.Context, userID string, opts models.UsernameGenerationOptions) error

	// LastActiveTime returns the account's last recorded activity moment,
	// or nil when never stamped.
	LastActiveTime(ctx context.Context, userID string) (*time.Time, error)

	// SetLastActiveTime stamps the account's last activity with at.
	SetLastActiveTime(ctx context.Context, userID string, at time.Time) error

	// VaultTimeout returns the account's configured session timeout, or
	// nil when the account never chose one.
	VaultTimeout(ctx context.Context, userID string) (*models.VaultTimeout, error)

	// SetVaultTimeout stores the account's session timeout choice.
	SetVaultTimeout(ctx context.Context, userID string, timeout models.VaultTimeout) error

	// TimeoutAction returns the account's configured timeout action, or
	// nil when unset (callers default to lock).
	TimeoutAction(ctx context.Context, userID string) (*models.TimeoutAction, error)

	// SetTimeoutAction stores the account's timeout action choice.
	SetTimeoutAction(ctx context.Context, userID string, action models.TimeoutAction) error

	// ShouldTrustDevice returns the account's deferred device-trust
	// intent flag. Absent reads as false.
	ShouldTrustDevice(ctx context.Context, userID string) (bool, error)

	// SetShouldTrustDevice stores the deferred device-trust intent flag.
	SetShouldTrustDevice(ctx context.Context, userID string, should bool) error
}

// VaultTimeoutService decides, per account, whether the elapsed idle time
// exceeds the configured timeout, and tracks the in-memory locked state of
// each account's session. Locking is an access gate; it never destroys the
// stored encryption key references, which is what distinguishes a locked
// account from a logged-out one.
type VaultTimeoutService interface {
	// HasPassedSessionTimeout reports whether the account's session has
	// idled past its configured timeout. A "never" timeout always reports
	// false. An account with no recorded last-active time reports false:
	// an account that was never marked active (e.g. freshly unlocked)
	// must not be locked by the policy.
	HasPassedSessionTimeout(ctx context.Context, userID string) (bool, error)

	// SetLastActiveTime stamps the account's activity with the current
	// clock reading. Called on background transitions and other activity
	// markers.
	SetLastActiveTime(ctx context.Context, userID string) error

	// LockVault gates the account's session behind re-authentication.
	LockVault(ctx context.Context, userID string)

	// UnlockVault marks the account's session as unlocked after a
	// successful biometric/PIN/master-password challenge.
	UnlockVault(ctx context.Context, userID string)

	// IsLocked reports the account's in-memory lock state. Every account
	// starts locked on process start.
	IsLocked(userID string) bool

	// SessionTimeoutAction returns the action to apply once the timeout
	// elapses, defaulting to lock when the account never chose one.
	SessionTimeoutAction(ctx context.Context, userID string) (models.TimeoutAction, error)
}

// TrustDeviceService establishes and revokes "this device is trusted for
// this account" status. Key material is produced by the external crypto
// client and stored in the platform keychain; the general settings store
// only ever holds the deferred-intent flag.
type TrustDeviceService interface {
	// ShouldTrustDevice returns the deferred-intent flag for the user.
	ShouldTrustDevice(ctx context.Context, userID string) (bool, error)

	// SetShouldTrustDevice records the intent to trust this device once
	// the surrounding authentication flow completes.
	SetShouldTrustDevice(ctx context.Context, userID string, should bool) error

	// TrustDevice establishes trust for the active account: obtains
	// device-bound key material from the crypto client, registers the
	// public identifiers with the server, and only then persists the
	// device key in the keychain. A server failure therefore leaves no
	// partial keychain write.
	TrustDevice(ctx context.Context) (*models.TrustDeviceResponse, error)

	// TrustDeviceIfNeeded performs TrustDevice only when the active
	// account's deferred-intent flag is set, then clears the flag
	// (one-shot semantics). Returns nil without error when the flag is
	// unset.
	TrustDeviceIfNeeded(ctx context.Context) (*models.TrustDeviceResponse, error)

	// IsDeviceTrusted reports whether a device key is present in the
	// keychain for the active account. Absence is a normal false, never
	// an error; other keychain failures propagate.
	IsDeviceTrusted(ctx context.Context) (bool, error)

	// RemoveTrustedDevice deletes the active account's device key from
	// the keychain. Deleting an absent key succeeds (idempotent delete).
	RemoveTrustedDevice(ctx context.Context) error
}

// AccountRefreshService reconciles locally cached account data with the
// server: session token renewal and profile refresh.
type AccountRefreshService interface {
	// RefreshTokensIfNeeded exchanges the account's refresh token for a
	// fresh pair when the access token has expired or is about to. A
	// still-valid access token makes this a no-op.
	RefreshTokensIfNeeded(ctx context.Context, userID string) error

	// RefreshProfile fetches the account's current server-side profile
	// and stores it in the registry.
	RefreshProfile(ctx context.Context, userID string) error
}

// CryptoClient is the narrow boundary to the external cryptographic SDK.
// This subsystem never inspects the blobs it returns.
type CryptoClient interface {
	// TrustDevice produces fresh device-bound key material for the
	// currently unlocked user.
	TrustDevice(ctx context.Context) (models.TrustDeviceResponse, error)
}
