// Package crypto implements the client-side cryptography of the
// trusted-device flow in a Zero-Knowledge scheme. It knows nothing about
// the network, the database, or account bookkeeping; its only job is to
// generate and protect key material.
//
// Trust establishment:
//
//	DeviceKey                 = random 256-bit symmetric key
//	device RSA pair           = generated per trust request
//	ProtectedUserKey          = RSA-OAEP(devicePub, userKey)
//	ProtectedDevicePublicKey  = AES-GCM(userKey, devicePubDER)
//	ProtectedDevicePrivateKey = AES-GCM(DeviceKey, devicePrivDER)
//
// DeviceKey itself never leaves the client; callers store it in the
// platform keychain. Everything else is safe to hand to the server.
package crypto

import (
	"context"

	"github.com/MKhiriev/go-vault-client/models"
)

// DeviceCryptoService produces and protects device-bound key material.
// It holds the unlocked user key in memory between SetUserKey and
// ClearUserKey; TrustDevice fails with [ErrVaultLocked] outside that window.
type DeviceCryptoService interface {
	// SetUserKey places the unlocked user key in memory after a successful
	// authentication or unlock.
	SetUserKey(key []byte)

	// ClearUserKey wipes the in-memory user key on lock or logout.
	ClearUserKey()

	// DeriveMasterKey stretches the master password into a 256-bit key
	// using Argon2id, salted with the account email so identical passwords
	// on different accounts produce different keys.
	DeriveMasterKey(masterPassword, email string) []byte

	// TrustDevice generates a fresh device key and device RSA pair and
	// returns the protected bundle described in the package documentation.
	TrustDevice(ctx context.Context) (models.TrustDeviceResponse, error)
}
