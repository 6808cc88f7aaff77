// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-vault-client/models"
)

// ErrVaultLocked is returned when an operation needs the in-memory user key
// but none has been set since the last lock.
var ErrVaultLocked = errors.New("vault is locked: no user key in memory")

// deviceCryptoService is the private implementation of [DeviceCryptoService].
type deviceCryptoService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	rsaBits int

	mu      sync.Mutex
	userKey []byte
}

// NewDeviceCryptoService constructs a [DeviceCryptoService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewDeviceCryptoService() DeviceCryptoService {
	return &deviceCryptoService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		rsaBits:      2048,
	}
}

// SetUserKey implements [DeviceCryptoService]. The key is copied so the
// caller's slice can be zeroed independently.
func (d *deviceCryptoService) SetUserKey(key []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.userKey = append([]byte(nil), key...)
}

// ClearUserKey implements [DeviceCryptoService]. The stored key is
// overwritten with zeros before the reference is dropped.
func (d *deviceCryptoService) ClearUserKey() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.userKey {
		d.userKey[i] = 0
	}
	d.userKey = nil
}

// DeriveMasterKey implements [DeviceCryptoService]. It derives a 256-bit key
// from the master password via Argon2id with the parameters stored in the
// receiver. The email acts as the salt, so the derivation is deterministic
// per account without any server round-trip.
func (d *deviceCryptoService) DeriveMasterKey(masterPassword, email string) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		[]byte(email),
		d.argonTime,
		d.argonMemory,
		d.argonThreads,
		d.argonKeyLen,
	)
}

// TrustDevice implements [DeviceCryptoService].
func (d *deviceCryptoService) TrustDevice(_ context.Context) (models.TrustDeviceResponse, error) {
	d.mu.Lock()
	userKey := append([]byte(nil), d.userKey...)
	d.mu.Unlock()

	if len(userKey) == 0 {
		return models.TrustDeviceResponse{}, ErrVaultLocked
	}

	deviceKey, err := randomBytes(32)
	if err != nil {
		return models.TrustDeviceResponse{}, fmt.Errorf("generate device key: %w", err)
	}

	devicePair, err := rsa.GenerateKey(rand.Reader, d.rsaBits)
	if err != nil {
		return models.TrustDeviceResponse{}, fmt.Errorf("generate device key pair: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&devicePair.PublicKey)
	if err != nil {
		return models.TrustDeviceResponse{}, fmt.Errorf("marshal device public key: %w", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(devicePair)
	if err != nil {
		return models.TrustDeviceResponse{}, fmt.Errorf("marshal device private key: %w", err)
	}

	protectedUserKey, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, &devicePair.PublicKey, userKey, nil)
	if err != nil {
		return models.TrustDeviceResponse{}, fmt.Errorf("protect user key: %w", err)
	}

	protectedPub, err := seal(userKey, pubDER)
	if err != nil {
		return models.TrustDeviceResponse{}, fmt.Errorf("protect device public key: %w", err)
	}
	protectedPriv, err := seal(deviceKey, privDER)
	if err != nil {
		return models.TrustDeviceResponse{}, fmt.Errorf("protect device private key: %w", err)
	}

	return models.TrustDeviceResponse{
		DeviceKey:                 models.KeyBlob(base64.StdEncoding.EncodeToString(deviceKey)),
		ProtectedUserKey:          models.KeyBlob(base64.StdEncoding.EncodeToString(protectedUserKey)),
		ProtectedDevicePublicKey:  models.KeyBlob(protectedPub),
		ProtectedDevicePrivateKey: models.KeyBlob(protectedPriv),
	}, nil
}

// randomBytes reads n bytes from the OS CSPRNG.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// seal encrypts plaintext with key using AES-256-GCM. A random 12-byte
// nonce is prepended to the ciphertext so the decryption side can locate
// it: blob = nonce ‖ ciphertext, Base64 (standard encoding).
func seal(key, plaintext []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// open reverses [seal]. An authentication-tag mismatch almost always means
// the wrong key was supplied.
func open(key []byte, encryptedB64 string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if len(blob) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
