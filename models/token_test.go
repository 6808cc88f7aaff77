package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWithClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestTokenPair_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	pair := TokenPair{AccessToken: tokenWithClaims(t, jwt.MapClaims{
		"sub": "user-a",
		"exp": exp.Unix(),
	})}

	got, err := pair.ExpiresAt()
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestTokenPair_ExpiresAt_MissingClaim(t *testing.T) {
	pair := TokenPair{AccessToken: tokenWithClaims(t, jwt.MapClaims{"sub": "user-a"})}

	_, err := pair.ExpiresAt()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expiry")
}

func TestTokenPair_ExpiresAt_Unparsable(t *testing.T) {
	pair := TokenPair{AccessToken: "not-a-jwt"}

	_, err := pair.ExpiresAt()
	require.Error(t, err)
}

func TestTokenPair_NeedsRefresh(t *testing.T) {
	leeway := 30 * time.Second

	fresh := TokenPair{AccessToken: tokenWithClaims(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})}
	assert.False(t, fresh.NeedsRefresh(leeway))

	expired := TokenPair{AccessToken: tokenWithClaims(t, jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	})}
	assert.True(t, expired.NeedsRefresh(leeway))

	// Valid now, but inside the leeway window.
	nearExpiry := TokenPair{AccessToken: tokenWithClaims(t, jwt.MapClaims{
		"exp": time.Now().Add(10 * time.Second).Unix(),
	})}
	assert.True(t, nearExpiry.NeedsRefresh(leeway))
}

func TestTokenPair_NeedsRefresh_UnparsableTokenRefreshes(t *testing.T) {
	pair := TokenPair{AccessToken: "garbage"}
	assert.True(t, pair.NeedsRefresh(time.Second))
}
