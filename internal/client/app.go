package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/internal/store"
	"github.com/MKhiriev/go-vault-client/internal/workers"
)

// App is the headless client runtime implementing [Client].
type App struct {
	services      *service.ClientServices
	serverAdapter adapter.ServerAdapter
	settings      store.AppSettingsStore
	timeoutWorker workers.Worker
	workersCfg    config.ClientWorkers
	logger        *logger.Logger
}

// NewApp assembles the runtime from already-constructed collaborators.
func NewApp(
	services *service.ClientServices,
	serverAdapter adapter.ServerAdapter,
	settings store.AppSettingsStore,
	timeoutWorker workers.Worker,
	workersCfg config.ClientWorkers,
	log *logger.Logger,
) (*App, error) {
	if services == nil || serverAdapter == nil || settings == nil || timeoutWorker == nil {
		return nil, errors.New("client app: missing collaborators")
	}

	return &App{
		services:      services,
		serverAdapter: serverAdapter,
		settings:      settings,
		timeoutWorker: timeoutWorker,
		workersCfg:    workersCfg,
		logger:        log,
	}, nil
}

// Run implements [Client]. It blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	changes, cancel := a.settings.ActiveUserChanges()
	defer cancel()

	a.timeoutWorker.Start(ctx, a.workersCfg.TimeoutCheckInterval)
	defer a.timeoutWorker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case userID, ok := <-changes:
			if !ok {
				return nil
			}
			a.onActiveUserChange(ctx, userID)
		}
	}
}

// onActiveUserChange swaps the adapter's session to follow the active
// account. The subscription replays the current value on startup, so this
// also restores the session of the account that was active last run.
func (a *App) onActiveUserChange(ctx context.Context, userID string) {
	if userID == "" {
		a.serverAdapter.SetToken("")
		return
	}

	tokens, err := a.services.State.Tokens(ctx, userID)
	if err != nil {
		if !errors.Is(err, service.ErrNoAccounts) && !errors.Is(err, service.ErrNoActiveAccount) {
			a.logger.Error().Err(err).Str("user_id", userID).Msg("load tokens for active account")
		}
		a.serverAdapter.SetToken("")
		return
	}
	if tokens == nil {
		a.serverAdapter.SetToken("")
		return
	}

	a.serverAdapter.SetToken(tokens.AccessToken)

	if err = a.services.AccountRefresh.RefreshTokensIfNeeded(ctx, userID); err != nil {
		a.logger.Warn().Err(err).Str("user_id", userID).Msg("refresh session tokens")
	}

	a.logger.Debug().Str("user_id", userID).Msg("active account session restored")
}
