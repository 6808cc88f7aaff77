// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called whenever the
	// active account (or its access token) changes.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// UpdateTrustedDeviceKeys registers the device's protected key bundle
	// with the server under the given device identifier. Called during
	// trust establishment, strictly before any local keychain write.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	UpdateTrustedDeviceKeys(ctx context.Context, deviceIdentifier string, req models.TrustedDeviceKeysRequest) error

	// RefreshIdentityToken exchanges a refresh token for a fresh token
	// pair. Returns [ErrUnauthorized] (wrapped) when the refresh token has
	// been revoked or expired.
	RefreshIdentityToken(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// SyncAccountProfile fetches the current server-side profile of the
	// given user, used to refresh locally cached profile attributes.
	SyncAccountProfile(ctx context.Context, userID string) (models.Profile, error)
}
