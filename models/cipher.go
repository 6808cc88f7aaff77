package models

import "time"

type (
	// CipherData is a string alias representing an encrypted vault item
	// payload. The actual structure and meaning of the data are unknown to
	// the cache; decryption happens in the external SDK.
	CipherData string

	// CipherName is the encrypted display name of a vault item.
	CipherName string
)

// Cipher is a single encrypted vault item cached locally for a user. The
// cache is a read model refreshed by sync and wiped on logout; the server
// copy is always authoritative.
type Cipher struct {
	// ID is the server-assigned cipher identifier.
	ID string `json:"id"`

	// UserID is the owning account.
	UserID string `json:"user_id"`

	// Type discriminates login/card/identity/note items. Opaque here.
	Type int `json:"type"`

	// Name is the encrypted item name.
	Name CipherName `json:"name"`

	// Data is the encrypted item payload.
	Data CipherData `json:"data"`

	// RevisionDate is the server-side last-modified timestamp, used by
	// sync to decide staleness.
	RevisionDate time.Time `json:"revision_date"`
}
