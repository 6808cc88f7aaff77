package models

// TrustDeviceResponse is the bundle of device-bound key material produced by
// the external crypto SDK when a device is trusted. All blobs are opaque to
// the client; DeviceKey is the only value retained locally (in the platform
// keychain), the protected keys are registered with the server.
type TrustDeviceResponse struct {
	// DeviceKey is the device-bound symmetric key. Stored in secure
	// platform storage, never in the general settings store.
	DeviceKey KeyBlob `json:"device_key"`

	// ProtectedUserKey is the account user key encrypted with the device key.
	ProtectedUserKey KeyBlob `json:"protected_user_key"`

	// ProtectedDevicePublicKey is the device public key encrypted with the
	// account user key.
	ProtectedDevicePublicKey KeyBlob `json:"protected_device_public_key"`

	// ProtectedDevicePrivateKey is the device private key encrypted with
	// the device key.
	ProtectedDevicePrivateKey KeyBlob `json:"protected_device_private_key"`
}
