// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

// ── UpdateTrustedDeviceKeys ─────────────────────────────────────────────────

func TestUpdateTrustedDeviceKeys_Success(t *testing.T) {
	req := models.TrustedDeviceKeysRequest{
		DeviceModel:               "pixel-9",
		ProtectedUserKey:          "2.protected-user-key",
		ProtectedDevicePublicKey:  "2.protected-public",
		ProtectedDevicePrivateKey: "2.protected-private",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/devices/device-123/keys", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var got models.TrustedDeviceKeysRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("test-token")

	err := a.UpdateTrustedDeviceKeys(context.Background(), "device-123", req)
	require.NoError(t, err)
}

func TestUpdateTrustedDeviceKeys_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	err := a.UpdateTrustedDeviceKeys(context.Background(), "device-123", models.TrustedDeviceKeysRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateTrustedDeviceKeys_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	err := a.UpdateTrustedDeviceKeys(context.Background(), "device-123", models.TrustedDeviceKeysRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── RefreshIdentityToken ────────────────────────────────────────────────────

func TestRefreshIdentityToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "old-refresh", body["refresh_token"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	tokens, err := a.RefreshIdentityToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
	assert.Equal(t, "new-access", a.Token(), "adapter should adopt the refreshed token")
}

func TestRefreshIdentityToken_Revoked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("refresh token revoked"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.RefreshIdentityToken(context.Background(), "revoked")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── SyncAccountProfile ──────────────────────────────────────────────────────

func TestSyncAccountProfile_Success(t *testing.T) {
	want := models.Profile{
		Email:         "alice@example.com",
		Name:          "Alice",
		EmailVerified: true,
		HasPremium:    true,
		DecryptionOptions: models.DecryptionOptions{
			HasMasterPassword: true,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts/user-1/profile", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	got, err := a.SyncAccountProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSyncAccountProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such account"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.SyncAccountProfile(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
