package models

// State is the persisted account registry: every account known to this
// device plus the single optional active pointer. It is stored as one
// serialized blob and re-read on every query, so callers must tolerate
// external mutation between reads.
//
// Invariant: when ActiveUserID is non-empty it references a key present in
// Accounts. The state service enforces this on every mutation.
type State struct {
	// Accounts maps user id to the account record.
	Accounts map[string]Account `json:"accounts"`

	// ActiveUserID is the id of the account currently presented to the
	// UI, or empty when no account is active.
	ActiveUserID string `json:"active_user_id,omitempty"`
}

// NewState returns an empty registry ready for inserts.
func NewState() *State {
	return &State{Accounts: make(map[string]Account)}
}
