package models

// KeyBlob is an opaque encrypted key blob produced and consumed by the
// external crypto SDK. The state layer stores and returns these values
// verbatim; their internal structure is unknown to it.
type KeyBlob string

// IsZero reports whether the blob is empty.
func (k KeyBlob) IsZero() bool { return k == "" }

// String implements fmt.Stringer and redacts the blob so that key material
// cannot leak through logging or error formatting. Persistence goes through
// explicit string conversion, never through String.
func (k KeyBlob) String() string {
	if k == "" {
		return ""
	}
	return "[redacted]"
}

// AccountEncryptionKeys is the per-account encryption key reference pair.
// Both blobs are present together or the pair is considered absent; the state
// layer never reports a partial pair.
type AccountEncryptionKeys struct {
	// EncryptedPrivateKey is the account's encrypted asymmetric private key.
	EncryptedPrivateKey KeyBlob `json:"encrypted_private_key"`

	// EncryptedUserKey is the account's encrypted symmetric user key.
	EncryptedUserKey KeyBlob `json:"encrypted_user_key"`
}

// IsComplete reports whether both components of the pair are set.
func (k AccountEncryptionKeys) IsComplete() bool {
	return !k.EncryptedPrivateKey.IsZero() && !k.EncryptedUserKey.IsZero()
}
