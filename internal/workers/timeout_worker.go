package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/models"
)

type timeoutWorker struct {
	stateService   service.StateService
	timeoutService service.VaultTimeoutService
	logger         *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTimeoutWorker creates a worker that evaluates vault timeouts for every
// known account on a ticker. The worker is idle until Start is called.
func NewTimeoutWorker(stateService service.StateService, timeoutService service.VaultTimeoutService, log *logger.Logger) Worker {
	return &timeoutWorker{
		stateService:   stateService,
		timeoutService: timeoutService,
		logger:         log,
	}
}

// Start implements [Worker]. If interval is zero or negative it defaults to
// 30 seconds.
func (w *timeoutWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (w *timeoutWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// sweep checks every registered account once and applies the configured
// timeout action to those whose session has idled out. Per-account failures
// are logged and do not stop the sweep.
func (w *timeoutWorker) sweep(ctx context.Context) {
	accounts, err := w.stateService.Accounts(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNoAccounts) {
			w.logger.Error().Err(err).Msg("timeout sweep: list accounts")
		}
		return
	}

	for _, account := range accounts {
		w.sweepAccount(ctx, account.UserID)
	}
}

func (w *timeoutWorker) sweepAccount(ctx context.Context, userID string) {
	if w.timeoutService.IsLocked(userID) {
		return
	}

	passed, err := w.timeoutService.HasPassedSessionTimeout(ctx, userID)
	if err != nil {
		w.logger.Error().Err(err).Str("user_id", userID).Msg("timeout sweep: check session")
		return
	}
	if !passed {
		return
	}

	action, err := w.timeoutService.SessionTimeoutAction(ctx, userID)
	if err != nil {
		w.logger.Error().Err(err).Str("user_id", userID).Msg("timeout sweep: read action")
		return
	}

	switch action {
	case models.TimeoutActionLogout:
		if err := w.stateService.LogoutAccount(ctx, userID); err != nil {
			w.logger.Error().Err(err).Str("user_id", userID).Msg("timeout sweep: logout")
			return
		}
	default:
		w.timeoutService.LockVault(ctx, userID)
	}

	w.logger.Info().Str("user_id", userID).Str("action", string(action)).Msg("session timed out")
}
