package models

import "time"

// VaultTimeout is the configured idle duration after which an unlocked vault
// session requires re-authentication, expressed in minutes. The negative
// sentinel VaultTimeoutNever disables the timeout entirely; any positive
// value is a valid custom duration.
type VaultTimeout int

const (
	// VaultTimeoutNever disables session timeout for the account.
	VaultTimeoutNever VaultTimeout = -1

	// VaultTimeoutImmediately times the session out as soon as the app
	// leaves the foreground.
	VaultTimeoutImmediately VaultTimeout = 0

	VaultTimeoutOneMinute      VaultTimeout = 1
	VaultTimeoutFiveMinutes    VaultTimeout = 5
	VaultTimeoutFifteenMinutes VaultTimeout = 15
	VaultTimeoutThirtyMinutes  VaultTimeout = 30
	VaultTimeoutOneHour        VaultTimeout = 60
	VaultTimeoutFourHours      VaultTimeout = 240
)

// Duration converts the timeout to a time.Duration. Calling Duration on
// VaultTimeoutNever is a programming error; callers must check Never first.
func (v VaultTimeout) Duration() time.Duration {
	return time.Duration(v) * time.Minute
}

// Never reports whether the timeout is disabled.
func (v VaultTimeout) Never() bool { return v < 0 }

// TimeoutAction is what happens to a session once its vault timeout elapses.
type TimeoutAction string

const (
	// TimeoutActionLock gates vault access behind re-authentication while
	// keeping the account's stored keys intact.
	TimeoutActionLock TimeoutAction = "lock"

	// TimeoutActionLogout removes the session entirely, cascading the same
	// cleanup as an explicit logout.
	TimeoutActionLogout TimeoutAction = "logout"
)
