package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/models"
)

func newTestSettings(t *testing.T) AppSettingsStore {
	t.Helper()

	s, err := NewBoltSettingsStore(config.ClientSettings{
		Path: filepath.Join(t.TempDir(), "settings.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// ── State blob ───────────────────────────────────────────────────────────────

func TestBoltSettings_State_NilWhenNeverWritten(t *testing.T) {
	s := newTestSettings(t)

	state, err := s.State(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestBoltSettings_State_RoundTrip(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	in := models.NewState()
	in.Accounts["user-a"] = models.Account{
		UserID:  "user-a",
		Profile: models.Profile{Email: "a@example.com"},
		Tokens:  &models.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}
	in.ActiveUserID = "user-a"

	require.NoError(t, s.SetState(ctx, in))

	out, err := s.State(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "user-a", out.ActiveUserID)
	require.Contains(t, out.Accounts, "user-a")
	assert.Equal(t, "a@example.com", out.Accounts["user-a"].Profile.Email)
	require.NotNil(t, out.Accounts["user-a"].Tokens)
	assert.Equal(t, "refresh", out.Accounts["user-a"].Tokens.RefreshToken)
}

func TestBoltSettings_State_NilDeletes(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetState(ctx, models.NewState()))
	require.NoError(t, s.SetState(ctx, nil))

	state, err := s.State(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestBoltSettings_State_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	s, err := NewBoltSettingsStore(config.ClientSettings{Path: path}, logger.Nop())
	require.NoError(t, err)

	in := models.NewState()
	in.Accounts["user-a"] = models.Account{UserID: "user-a"}
	in.ActiveUserID = "user-a"
	require.NoError(t, s.SetState(ctx, in))
	require.NoError(t, s.Close())

	reopened, err := NewBoltSettingsStore(config.ClientSettings{Path: path}, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	out, err := reopened.State(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "user-a", out.ActiveUserID)

	// The reopened store replays the persisted active id to subscribers.
	ch, cancel := reopened.ActiveUserChanges()
	defer cancel()
	select {
	case got := <-ch:
		assert.Equal(t, "user-a", got)
	case <-time.After(time.Second):
		t.Fatal("expected replay of the persisted active user id")
	}
}

// ── Per-user values ──────────────────────────────────────────────────────────

func TestBoltSettings_EncryptionKeys_RoundTripAndDelete(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	got, err := s.EncryptionKeys(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, got, "absent pair reads as nil, not an error")

	keys := &models.AccountEncryptionKeys{
		EncryptedPrivateKey: "enc-priv",
		EncryptedUserKey:    "enc-user",
	}
	require.NoError(t, s.SetEncryptionKeys(ctx, "user-a", keys))

	got, err = s.EncryptionKeys(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *keys, *got)

	require.NoError(t, s.SetEncryptionKeys(ctx, "user-a", nil))
	got, err = s.EncryptionKeys(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBoltSettings_ValuesAreNamespacedPerUser(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetVaultTimeout(ctx, "user-a", models.VaultTimeoutFiveMinutes))

	timeout, err := s.VaultTimeout(ctx, "user-b")
	require.NoError(t, err)
	assert.Nil(t, timeout)
}

func TestBoltSettings_LastActiveTime_PreservesInstant(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 14, 9, 30, 15, 123456789, time.UTC)
	require.NoError(t, s.SetLastActiveTime(ctx, "user-a", at))

	got, err := s.LastActiveTime(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(at), "stored instant must survive with nanosecond precision")
}

func TestBoltSettings_TimeoutAction_RoundTrip(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	action, err := s.TimeoutAction(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, action)

	require.NoError(t, s.SetTimeoutAction(ctx, "user-a", models.TimeoutActionLogout))

	action, err = s.TimeoutAction(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, action)
	assert.Equal(t, models.TimeoutActionLogout, *action)
}

func TestBoltSettings_BoolFlags_AbsentReadsFalse(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	should, err := s.ShouldTrustDevice(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, should)

	require.NoError(t, s.SetShouldTrustDevice(ctx, "user-a", true))
	should, err = s.ShouldTrustDevice(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, should)

	require.NoError(t, s.SetBiometricUnlockEnabled(ctx, "user-a", true))
	biometric, err := s.BiometricUnlockEnabled(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, biometric)

	pin, err := s.PinUnlockEnabled(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, pin)
}

func TestBoltSettings_GenerationOptions_RoundTrip(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	pw := &models.PasswordGenerationOptions{Length: 24, Numbers: true, Special: true}
	require.NoError(t, s.SetPasswordGenerationOptions(ctx, "user-a", pw))

	gotPw, err := s.PasswordGenerationOptions(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, gotPw)
	assert.Equal(t, *pw, *gotPw)

	un := &models.UsernameGenerationOptions{Type: "word", WordCapitalize: true}
	require.NoError(t, s.SetUsernameGenerationOptions(ctx, "user-a", un))

	gotUn, err := s.UsernameGenerationOptions(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, gotUn)
	assert.Equal(t, *un, *gotUn)
}

func TestBoltSettings_DeleteUserSettings_RemovesEverything(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetVaultTimeout(ctx, "user-a", models.VaultTimeoutOneHour))
	require.NoError(t, s.SetShouldTrustDevice(ctx, "user-a", true))
	require.NoError(t, s.SetEncryptionKeys(ctx, "user-a", &models.AccountEncryptionKeys{
		EncryptedPrivateKey: "p", EncryptedUserKey: "u",
	}))
	// Another user's values must survive the deletion.
	require.NoError(t, s.SetVaultTimeout(ctx, "user-b", models.VaultTimeoutFiveMinutes))

	require.NoError(t, s.DeleteUserSettings(ctx, "user-a"))

	timeout, err := s.VaultTimeout(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, timeout)

	should, err := s.ShouldTrustDevice(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, should)

	keys, err := s.EncryptionKeys(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, keys)

	timeout, err = s.VaultTimeout(ctx, "user-b")
	require.NoError(t, err)
	require.NotNil(t, timeout)
	assert.Equal(t, models.VaultTimeoutFiveMinutes, *timeout)
}

func TestBoltSettings_DeleteUserSettings_UnknownUserIsNoOp(t *testing.T) {
	s := newTestSettings(t)

	require.NoError(t, s.DeleteUserSettings(context.Background(), "user-never-seen"))
}

// ── Global values ────────────────────────────────────────────────────────────

func TestBoltSettings_PreAuthEnvironmentURLs(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	urls, err := s.PreAuthEnvironmentURLs(ctx)
	require.NoError(t, err)
	assert.Nil(t, urls)

	in := models.EnvironmentURLs{
		Base: "https://vault.example.com",
		API:  "https://api.vault.example.com",
	}
	require.NoError(t, s.SetPreAuthEnvironmentURLs(ctx, in))

	urls, err = s.PreAuthEnvironmentURLs(ctx)
	require.NoError(t, err)
	require.NotNil(t, urls)
	assert.Equal(t, in, *urls)
}

func TestBoltSettings_RememberedValues(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	email, err := s.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)

	require.NoError(t, s.SetRememberedEmail(ctx, "a@example.com"))
	email, err = s.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email)

	// Empty value deletes.
	require.NoError(t, s.SetRememberedEmail(ctx, ""))
	email, err = s.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)

	require.NoError(t, s.SetRememberedOrgIdentifier(ctx, "acme-sso"))
	org, err := s.RememberedOrgIdentifier(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acme-sso", org)
}

func TestBoltSettings_AppThemeAndLocale(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetAppTheme(ctx, "dark"))
	require.NoError(t, s.SetAppLocale(ctx, "en-GB"))

	theme, err := s.AppTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	locale, err := s.AppLocale(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en-GB", locale)
}

// ── Active user change notifications ─────────────────────────────────────────

func TestBoltSettings_ActiveUserChanges_PublishAfterWrite(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	ch, cancel := s.ActiveUserChanges()
	defer cancel()

	// Fresh store replays the synthetic empty id.
	select {
	case got := <-ch:
		assert.Equal(t, "", got)
	case <-time.After(time.Second):
		t.Fatal("expected initial replay")
	}

	state := models.NewState()
	state.Accounts["user-a"] = models.Account{UserID: "user-a"}
	state.ActiveUserID = "user-a"
	require.NoError(t, s.SetState(ctx, state))

	select {
	case got := <-ch:
		assert.Equal(t, "user-a", got)
	case <-time.After(time.Second):
		t.Fatal("expected active user change notification")
	}
}
