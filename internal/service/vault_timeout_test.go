package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/mock"
	"github.com/MKhiriev/go-vault-client/models"
)

// newTestTimeoutSvc wires the timeout policy over a mocked state service and
// pins the clock to a fixed instant.
func newTestTimeoutSvc(t *testing.T, ctrl *gomock.Controller) (*vaultTimeoutService, *mock.MockStateService, time.Time) {
	t.Helper()

	mockState := mock.NewMockStateService(ctrl)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	svc := NewVaultTimeoutService(mockState, logger.Nop()).(*vaultTimeoutService)
	svc.now = func() time.Time { return now }

	return svc, mockState, now
}

func timeoutPtr(v models.VaultTimeout) *models.VaultTimeout { return &v }

// ── HasPassedSessionTimeout ──────────────────────────────────────────────────

func TestVaultTimeout_NoConfiguredTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _ := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().VaultTimeout(ctx, "user-a").Return(nil, nil)

	passed, err := svc.HasPassedSessionTimeout(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, passed, "an account that never chose a timeout must not time out")
}

func TestVaultTimeout_NeverSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _ := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().VaultTimeout(ctx, "user-a").Return(timeoutPtr(models.VaultTimeoutNever), nil)

	passed, err := svc.HasPassedSessionTimeout(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestVaultTimeout_NeverStampedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _ := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().VaultTimeout(ctx, "user-a").Return(timeoutPtr(models.VaultTimeoutFiveMinutes), nil)
	mockState.EXPECT().LastActiveTime(ctx, "user-a").Return(nil, nil)

	passed, err := svc.HasPassedSessionTimeout(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, passed, "an account with no recorded activity must not be locked by the policy")
}

func TestVaultTimeout_ElapsedExactlyAtBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, now := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	last := now.Add(-5 * time.Minute)
	mockState.EXPECT().VaultTimeout(ctx, "user-a").Return(timeoutPtr(models.VaultTimeoutFiveMinutes), nil)
	mockState.EXPECT().LastActiveTime(ctx, "user-a").Return(&last, nil)

	passed, err := svc.HasPassedSessionTimeout(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, passed, "exactly elapsed timeout counts as passed")
}

func TestVaultTimeout_NotYetElapsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, now := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	last := now.Add(-4 * time.Minute)
	mockState.EXPECT().VaultTimeout(ctx, "user-a").Return(timeoutPtr(models.VaultTimeoutFiveMinutes), nil)
	mockState.EXPECT().LastActiveTime(ctx, "user-a").Return(&last, nil)

	passed, err := svc.HasPassedSessionTimeout(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestVaultTimeout_Immediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, now := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().VaultTimeout(ctx, "user-a").Return(timeoutPtr(models.VaultTimeoutImmediately), nil)
	mockState.EXPECT().LastActiveTime(ctx, "user-a").Return(&now, nil)

	passed, err := svc.HasPassedSessionTimeout(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, passed, "immediate timeout passes as soon as activity is stamped")
}

func TestVaultTimeout_StateErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _ := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().VaultTimeout(ctx, "user-a").Return(nil, errors.New("store closed"))

	_, err := svc.HasPassedSessionTimeout(ctx, "user-a")
	require.Error(t, err)
}

// ── Lock state ───────────────────────────────────────────────────────────────

func TestVaultTimeout_LockedByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestTimeoutSvc(t, ctrl)

	assert.True(t, svc.IsLocked("user-a"))
	assert.True(t, svc.IsLocked("user-b"))
}

func TestVaultTimeout_UnlockAndLockAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	svc.UnlockVault(ctx, "user-a")
	assert.False(t, svc.IsLocked("user-a"))
	assert.True(t, svc.IsLocked("user-b"), "lock state is per account")

	svc.LockVault(ctx, "user-a")
	assert.True(t, svc.IsLocked("user-a"))
}

// ── SetLastActiveTime / SessionTimeoutAction ─────────────────────────────────

func TestVaultTimeout_SetLastActiveTimeUsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, now := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().SetLastActiveTime(ctx, "user-a", now).Return(nil)

	require.NoError(t, svc.SetLastActiveTime(ctx, "user-a"))
}

func TestVaultTimeout_SessionTimeoutActionDefaultsToLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _ := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().TimeoutAction(ctx, "user-a").Return(nil, nil)

	action, err := svc.SessionTimeoutAction(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, models.TimeoutActionLock, action)
}

func TestVaultTimeout_SessionTimeoutActionConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _ := newTestTimeoutSvc(t, ctrl)
	ctx := context.Background()

	logout := models.TimeoutActionLogout
	mockState.EXPECT().TimeoutAction(ctx, "user-a").Return(&logout, nil)

	action, err := svc.SessionTimeoutAction(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, models.TimeoutActionLogout, action)
}
