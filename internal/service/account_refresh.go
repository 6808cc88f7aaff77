package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/logger"
)

// tokenRefreshLeeway is how long before actual expiry an access token is
// already treated as stale, absorbing clock skew between client and server.
const tokenRefreshLeeway = 30 * time.Second

type accountRefreshService struct {
	stateService StateService
	adapter      adapter.ServerAdapter
	logger       *logger.Logger
}

// NewAccountRefreshService constructs the token/profile reconciliation
// service over the state service and the server adapter.
func NewAccountRefreshService(stateService StateService, serverAdapter adapter.ServerAdapter, log *logger.Logger) AccountRefreshService {
	return &accountRefreshService{stateService: stateService, adapter: serverAdapter, logger: log}
}

func (a *accountRefreshService) RefreshTokensIfNeeded(ctx context.Context, userID string) error {
	id, err := a.stateService.AccountIDOrActiveID(ctx, userID)
	if err != nil {
		return err
	}

	tokens, err := a.stateService.Tokens(ctx, id)
	if err != nil {
		return err
	}
	if tokens == nil {
		return ErrNoActiveAccount
	}

	if !tokens.NeedsRefresh(tokenRefreshLeeway) {
		return nil
	}

	fresh, err := a.adapter.RefreshIdentityToken(ctx, tokens.RefreshToken)
	if err != nil {
		return fmt.Errorf("refresh identity token: %w", err)
	}

	if err = a.stateService.SetTokens(ctx, id, fresh); err != nil {
		return err
	}

	a.logger.Debug().Str("user_id", id).Msg("session tokens refreshed")

	return nil
}

func (a *accountRefreshService) RefreshProfile(ctx context.Context, userID string) error {
	id, err := a.stateService.AccountIDOrActiveID(ctx, userID)
	if err != nil {
		return err
	}

	profile, err := a.adapter.SyncAccountProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("sync account profile: %w", err)
	}

	return a.stateService.SetAccountProfile(ctx, id, profile)
}
