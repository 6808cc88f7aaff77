package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/mock"
	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
)

const tickInterval = 10 * time.Millisecond

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestTimeoutWorker_LocksTimedOutAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mock.NewMockStateService(ctrl)
	mockTimeout := mock.NewMockVaultTimeoutService(ctrl)

	locked := make(chan struct{})

	mockState.EXPECT().Accounts(gomock.Any()).
		Return([]models.Account{{UserID: "user-a"}}, nil).AnyTimes()
	mockTimeout.EXPECT().IsLocked("user-a").Return(false).AnyTimes()
	mockTimeout.EXPECT().HasPassedSessionTimeout(gomock.Any(), "user-a").Return(true, nil).AnyTimes()
	mockTimeout.EXPECT().SessionTimeoutAction(gomock.Any(), "user-a").
		Return(models.TimeoutActionLock, nil).AnyTimes()
	mockTimeout.EXPECT().LockVault(gomock.Any(), "user-a").
		Do(func(context.Context, string) {
			select {
			case locked <- struct{}{}:
			default:
			}
		}).AnyTimes()

	w := NewTimeoutWorker(mockState, mockTimeout, logger.Nop())
	w.Start(context.Background(), tickInterval)
	defer w.Stop()

	waitFor(t, locked, "vault lock")
}

func TestTimeoutWorker_LogsOutWhenActionIsLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mock.NewMockStateService(ctrl)
	mockTimeout := mock.NewMockVaultTimeoutService(ctrl)

	loggedOut := make(chan struct{})

	mockState.EXPECT().Accounts(gomock.Any()).
		Return([]models.Account{{UserID: "user-a"}}, nil).AnyTimes()
	mockTimeout.EXPECT().IsLocked("user-a").Return(false).AnyTimes()
	mockTimeout.EXPECT().HasPassedSessionTimeout(gomock.Any(), "user-a").Return(true, nil).AnyTimes()
	mockTimeout.EXPECT().SessionTimeoutAction(gomock.Any(), "user-a").
		Return(models.TimeoutActionLogout, nil).AnyTimes()
	mockState.EXPECT().LogoutAccount(gomock.Any(), "user-a").
		DoAndReturn(func(context.Context, string) error {
			select {
			case loggedOut <- struct{}{}:
			default:
			}
			return nil
		}).AnyTimes()

	w := NewTimeoutWorker(mockState, mockTimeout, logger.Nop())
	w.Start(context.Background(), tickInterval)
	defer w.Stop()

	waitFor(t, loggedOut, "account logout")
}

func TestTimeoutWorker_SkipsAlreadyLockedAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mock.NewMockStateService(ctrl)
	mockTimeout := mock.NewMockVaultTimeoutService(ctrl)

	checked := make(chan struct{})

	mockState.EXPECT().Accounts(gomock.Any()).
		Return([]models.Account{{UserID: "user-a"}}, nil).AnyTimes()
	mockTimeout.EXPECT().IsLocked("user-a").
		DoAndReturn(func(string) bool {
			select {
			case checked <- struct{}{}:
			default:
			}
			return true
		}).AnyTimes()
	// No HasPassedSessionTimeout / action expectations: a locked account
	// must not be evaluated further.

	w := NewTimeoutWorker(mockState, mockTimeout, logger.Nop())
	w.Start(context.Background(), tickInterval)
	defer w.Stop()

	waitFor(t, checked, "lock-state check")
}

func TestTimeoutWorker_EmptyRegistryIsQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mock.NewMockStateService(ctrl)
	mockTimeout := mock.NewMockVaultTimeoutService(ctrl)

	swept := make(chan struct{})

	mockState.EXPECT().Accounts(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.Account, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return nil, service.ErrNoAccounts
		}).AnyTimes()

	w := NewTimeoutWorker(mockState, mockTimeout, logger.Nop())
	w.Start(context.Background(), tickInterval)
	defer w.Stop()

	waitFor(t, swept, "registry sweep")
}

func TestTimeoutWorker_StopIsIdempotentAndRestartable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mock.NewMockStateService(ctrl)
	mockTimeout := mock.NewMockVaultTimeoutService(ctrl)

	mockState.EXPECT().Accounts(gomock.Any()).Return(nil, service.ErrNoAccounts).AnyTimes()

	w := NewTimeoutWorker(mockState, mockTimeout, logger.Nop())

	// Stopping a never-started worker must not block or panic.
	w.Stop()

	w.Start(context.Background(), tickInterval)
	w.Stop()
	w.Stop()

	// Start after Stop spins up a fresh job.
	w.Start(context.Background(), tickInterval)
	w.Stop()
}
