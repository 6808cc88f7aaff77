package service

import "errors"

// Sentinel errors returned by the state layer. Both signal a local
// state-consistency condition to the caller; neither is retryable at this
// layer. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoAccounts is returned when the account registry is empty or
	// uninitialised and a query required at least one entry, or when an
	// explicitly requested user id does not exist in the registry.
	ErrNoAccounts = errors.New("no accounts found")

	// ErrNoActiveAccount is returned when the registry has entries but no
	// valid active pointer, or when a query specifically needs the active
	// account's keys or tokens and they are absent or incomplete.
	ErrNoActiveAccount = errors.New("no active account")
)
