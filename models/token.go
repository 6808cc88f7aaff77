package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair holds the session tokens issued to an account by the identity
// server. The access token is a JWT; the refresh token is an opaque string.
type TokenPair struct {
	// AccessToken is the short-lived bearer token attached to API requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token exchanged for a fresh access
	// token when the current one expires.
	RefreshToken string `json:"refresh_token"`
}

// ExpiresAt extracts the "exp" claim from the access token without verifying
// the signature. Signature verification is the server's job; the client only
// needs the expiry to decide when to refresh.
//
// Returns an error if the token cannot be parsed or carries no expiry claim.
func (t TokenPair) ExpiresAt() (time.Time, error) {
	parser := jwt.NewParser()

	token, _, err := parser.ParseUnverified(t.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read access token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("access token carries no expiry claim")
	}

	return exp.Time, nil
}

// NeedsRefresh reports whether the access token has expired or will expire
// within leeway. An unparsable token is reported as needing refresh rather
// than returned as an error: the caller's recovery is the same either way.
func (t TokenPair) NeedsRefresh(leeway time.Duration) bool {
	exp, err := t.ExpiresAt()
	if err != nil {
		return true
	}
	return time.Now().Add(leeway).After(exp)
}
