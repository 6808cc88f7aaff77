package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/models"
)

type vaultTimeoutService struct {
	stateService StateService
	logger       *logger.Logger
	now          func() time.Time

	mu       sync.Mutex
	unlocked map[string]bool
}

// NewVaultTimeoutService constructs the timeout policy engine over the state
// service. Every account starts locked; unlock state lives only in memory
// and does not survive a process restart.
func NewVaultTimeoutService(stateService StateService, log *logger.Logger) VaultTimeoutService {
	return &vaultTimeoutService{
		stateService: stateService,
		logger:       log,
		now:          time.Now,
		unlocked:     make(map[string]bool),
	}
}

func (v *vaultTimeoutService) HasPassedSessionTimeout(ctx context.Context, userID string) (bool, error) {
	timeout, err := v.stateService.VaultTimeout(ctx, userID)
	if err != nil {
		return false, err
	}
	// No configured timeout behaves like "never": the policy only applies
	// once the user has chosen one.
	if timeout == nil || timeout.Never() {
		return false, nil
	}

	lastActive, err := v.stateService.LastActiveTime(ctx, userID)
	if err != nil {
		return false, err
	}
	// Never-stamped accounts are not timed out: do not lock an account
	// that was just unlocked and has not yet recorded activity.
	if lastActive == nil {
		return false, nil
	}

	return v.now().Sub(*lastActive) >= timeout.Duration(), nil
}

func (v *vaultTimeoutService) SetLastActiveTime(ctx context.Context, userID string) error {
	return v.stateService.SetLastActiveTime(ctx, userID, v.now())
}

func (v *vaultTimeoutService) LockVault(_ context.Context, userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.unlocked, userID)
	v.logger.Debug().Str("user_id", userID).Msg("vault locked")
}

func (v *vaultTimeoutService) UnlockVault(_ context.Context, userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.unlocked[userID] = true
	v.logger.Debug().Str("user_id", userID).Msg("vault unlocked")
}

func (v *vaultTimeoutService) IsLocked(userID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return !v.unlocked[userID]
}

func (v *vaultTimeoutService) SessionTimeoutAction(ctx context.Context, userID string) (models.TimeoutAction, error) {
	action, err := v.stateService.TimeoutAction(ctx, userID)
	if err != nil {
		return "", err
	}
	if action == nil {
		return models.TimeoutActionLock, nil
	}
	return *action, nil
}
