package models

// TrustedDeviceKeysRequest is the body sent to the server when registering
// device-bound key material during trust establishment. All key fields are
// opaque blobs produced by the external crypto SDK.
type TrustedDeviceKeysRequest struct {
	// DeviceModel is the human-readable device description shown in the
	// user's device list.
	DeviceModel string `json:"device_model"`

	// ProtectedUserKey is the account user key encrypted with the device key.
	ProtectedUserKey KeyBlob `json:"protected_user_key"`

	// ProtectedDevicePublicKey is the device public key encrypted with the
	// account user key.
	ProtectedDevicePublicKey KeyBlob `json:"protected_device_public_key"`

	// ProtectedDevicePrivateKey is the device private key encrypted with
	// the device key.
	ProtectedDevicePrivateKey KeyBlob `json:"protected_device_private_key"`
}
