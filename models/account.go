package models

// Account represents a single signed-in user known to this device.
// It aggregates the user's profile, per-account settings, and (when the
// account has an authenticated session) the token pair issued by the server.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// UserID is the stable server-assigned identifier of the user.
	// It keys every piece of per-account state held by the client.
	UserID string `json:"user_id"`

	// Profile holds identity attributes shown in the account switcher
	// and used by unlock flows.
	Profile Profile `json:"profile"`

	// Settings holds per-account configuration such as the server
	// environment this account authenticates against.
	Settings AccountSettings `json:"settings"`

	// Tokens is the session token pair for this account.
	// Nil until the account has authenticated on this device.
	Tokens *TokenPair `json:"tokens,omitempty"`
}

// Profile holds the non-secret identity attributes of an account.
type Profile struct {
	// Email is the login email of the account.
	Email string `json:"email"`

	// Name is the display name of the user. May be empty.
	Name string `json:"name,omitempty"`

	// AvatarColor is the hex colour used for the account avatar in the
	// account switcher (e.g. "#FF8D85"). May be empty.
	AvatarColor string `json:"avatar_color,omitempty"`

	// EmailVerified reports whether the server has confirmed the email.
	EmailVerified bool `json:"email_verified"`

	// HasPremium reports whether the account has an active premium
	// subscription.
	HasPremium bool `json:"has_premium"`

	// DecryptionOptions describes which vault-decryption methods are
	// available for this account.
	DecryptionOptions DecryptionOptions `json:"decryption_options"`
}

// DecryptionOptions describes how an account's vault can be decrypted on this
// device. The client never inspects key material itself; these flags only
// drive which unlock flows are offered.
type DecryptionOptions struct {
	// HasMasterPassword reports whether a master password exists for the
	// account. Accounts created through SSO with trusted-device encryption
	// may not have one.
	HasMasterPassword bool `json:"has_master_password"`

	// TrustedDeviceAllowed reports whether the account's organisation
	// permits trusted-device encryption.
	TrustedDeviceAllowed bool `json:"trusted_device_allowed,omitempty"`
}

// AccountSettings holds per-account configuration values.
type AccountSettings struct {
	// EnvironmentURLs is the set of server endpoints this account
	// authenticates and syncs against.
	EnvironmentURLs EnvironmentURLs `json:"environment_urls"`
}
