package crypto

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"testing"
)

func TestDeriveMasterKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewDeviceCryptoService()

	password := "correct horse battery staple"

	k1 := svc.DeriveMasterKey(password, "user@example.com")
	k2 := svc.DeriveMasterKey(password, "user@example.com")

	if len(k1) != 32 {
		t.Fatalf("master key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected master keys to match for same password+email")
	}
}

func TestDeriveMasterKey_DiffersPerEmail(t *testing.T) {
	svc := NewDeviceCryptoService()

	k1 := svc.DeriveMasterKey("same password", "first@example.com")
	k2 := svc.DeriveMasterKey("same password", "second@example.com")

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected master keys to differ across emails")
	}
}

func TestTrustDevice_FailsWhenLocked(t *testing.T) {
	svc := NewDeviceCryptoService()

	_, err := svc.TrustDevice(context.Background())
	if !errors.Is(err, ErrVaultLocked) {
		t.Fatalf("TrustDevice error = %v, want ErrVaultLocked", err)
	}
}

func TestTrustDevice_FailsAfterClearUserKey(t *testing.T) {
	svc := NewDeviceCryptoService()

	svc.SetUserKey(bytes.Repeat([]byte{0x42}, 32))
	svc.ClearUserKey()

	_, err := svc.TrustDevice(context.Background())
	if !errors.Is(err, ErrVaultLocked) {
		t.Fatalf("TrustDevice error = %v, want ErrVaultLocked", err)
	}
}

func TestTrustDevice_RoundTrip(t *testing.T) {
	svc := NewDeviceCryptoService().(*deviceCryptoService)
	svc.rsaBits = 1024 // keep the test fast; production uses 2048

	userKey := bytes.Repeat([]byte{0x42}, 32)
	svc.SetUserKey(userKey)

	trust, err := svc.TrustDevice(context.Background())
	if err != nil {
		t.Fatalf("TrustDevice error: %v", err)
	}

	deviceKey, err := base64.StdEncoding.DecodeString(string(trust.DeviceKey))
	if err != nil {
		t.Fatalf("decode device key: %v", err)
	}
	if len(deviceKey) != 32 {
		t.Fatalf("device key length = %d, want 32", len(deviceKey))
	}

	// The device key must unwrap the protected private key.
	privDER, err := open(deviceKey, string(trust.ProtectedDevicePrivateKey))
	if err != nil {
		t.Fatalf("open protected private key: %v", err)
	}
	parsed, err := x509.ParsePKCS8PrivateKey(privDER)
	if err != nil {
		t.Fatalf("parse private key: %v", err)
	}
	devicePriv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		t.Fatalf("private key type = %T, want *rsa.PrivateKey", parsed)
	}

	// The recovered private key must unwrap the protected user key.
	protectedUserKey, err := base64.StdEncoding.DecodeString(string(trust.ProtectedUserKey))
	if err != nil {
		t.Fatalf("decode protected user key: %v", err)
	}
	gotUserKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, devicePriv, protectedUserKey, nil)
	if err != nil {
		t.Fatalf("unwrap user key: %v", err)
	}
	if !bytes.Equal(gotUserKey, userKey) {
		t.Fatalf("unwrapped user key does not match the original")
	}

	// The user key must unwrap the protected public key.
	pubDER, err := open(userKey, string(trust.ProtectedDevicePublicKey))
	if err != nil {
		t.Fatalf("open protected public key: %v", err)
	}
	if _, err = x509.ParsePKIXPublicKey(pubDER); err != nil {
		t.Fatalf("parse public key: %v", err)
	}
}

func TestTrustDevice_FreshKeysPerCall(t *testing.T) {
	svc := NewDeviceCryptoService().(*deviceCryptoService)
	svc.rsaBits = 1024

	svc.SetUserKey(bytes.Repeat([]byte{0x01}, 32))

	t1, err := svc.TrustDevice(context.Background())
	if err != nil {
		t.Fatalf("TrustDevice error: %v", err)
	}
	t2, err := svc.TrustDevice(context.Background())
	if err != nil {
		t.Fatalf("TrustDevice error: %v", err)
	}

	if t1.DeviceKey == t2.DeviceKey {
		t.Fatalf("expected distinct device keys per trust request")
	}
}

func TestSealOpen_WrongKeyFails(t *testing.T) {
	key := bytes.Repeat([]byte{0x0F}, 32)
	wrong := bytes.Repeat([]byte{0xF0}, 32)

	blob, err := seal(key, []byte("payload"))
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}

	if _, err = open(wrong, blob); err == nil {
		t.Fatalf("expected decryption with the wrong key to fail")
	}
}
