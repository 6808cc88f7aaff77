package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter] pointed at
// the configured server base URL. A zero request timeout defaults to 15s.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	if cfg.HTTPAddress == "" {
		return nil, fmt.Errorf("%w: empty server address", ErrBadRequest)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(timeout)

	return &httpServerAdapter{client: cli, logger: log}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) UpdateTrustedDeviceKeys(ctx context.Context, deviceIdentifier string, req models.TrustedDeviceKeysRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token()).
		SetBody(req).
		Put("/api/devices/" + deviceIdentifier + "/keys")
	if err != nil {
		return fmt.Errorf("update trusted device keys request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RefreshIdentityToken(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var tokens models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		SetResult(&tokens).
		Post("/api/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	h.SetToken(tokens.AccessToken)

	return tokens, nil
}

func (h *httpServerAdapter) SyncAccountProfile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&profile).
		Get("/api/accounts/" + userID + "/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("sync profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}
