package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/keychain"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/models"
)

type trustDeviceService struct {
	stateService StateService
	adapter      adapter.ServerAdapter
	deviceKeys   keychain.DeviceKeyStore
	cryptoClient CryptoClient
	appCfg       config.ClientApp
	logger       *logger.Logger
}

// NewTrustDeviceService constructs the trusted-device flow coordinator.
func NewTrustDeviceService(
	stateService StateService,
	serverAdapter adapter.ServerAdapter,
	deviceKeys keychain.DeviceKeyStore,
	cryptoClient CryptoClient,
	appCfg config.ClientApp,
	log *logger.Logger,
) TrustDeviceService {
	return &trustDeviceService{
		stateService: stateService,
		adapter:      serverAdapter,
		deviceKeys:   deviceKeys,
		cryptoClient: cryptoClient,
		appCfg:       appCfg,
		logger:       log,
	}
}

func (t *trustDeviceService) ShouldTrustDevice(ctx context.Context, userID string) (bool, error) {
	return t.stateService.ShouldTrustDevice(ctx, userID)
}

func (t *trustDeviceService) SetShouldTrustDevice(ctx context.Context, userID string, should bool) error {
	return t.stateService.SetShouldTrustDevice(ctx, userID, should)
}

// TrustDevice keeps a strict ordering: crypto material first, then the
// server registration, and the keychain write only after the server call
// succeeded, so a remote failure leaves no partial local trust state.
func (t *trustDeviceService) TrustDevice(ctx context.Context) (*models.TrustDeviceResponse, error) {
	userID, err := t.stateService.ActiveAccountID(ctx)
	if err != nil {
		return nil, err
	}

	trust, err := t.cryptoClient.TrustDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("crypto trust device: %w", err)
	}

	err = t.adapter.UpdateTrustedDeviceKeys(ctx, t.appCfg.DeviceIdentifier, models.TrustedDeviceKeysRequest{
		DeviceModel:               t.appCfg.DeviceModel,
		ProtectedUserKey:          trust.ProtectedUserKey,
		ProtectedDevicePublicKey:  trust.ProtectedDevicePublicKey,
		ProtectedDevicePrivateKey: trust.ProtectedDevicePrivateKey,
	})
	if err != nil {
		return nil, fmt.Errorf("register trusted device keys: %w", err)
	}

	if err = t.deviceKeys.SetDeviceKey(userID, trust.DeviceKey); err != nil {
		return nil, fmt.Errorf("store device key: %w", err)
	}

	t.logger.Info().Str("user_id", userID).Msg("device trusted")

	return &trust, nil
}

func (t *trustDeviceService) TrustDeviceIfNeeded(ctx context.Context) (*models.TrustDeviceResponse, error) {
	userID, err := t.stateService.ActiveAccountID(ctx)
	if err != nil {
		return nil, err
	}

	should, err := t.stateService.ShouldTrustDevice(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !should {
		return nil, nil
	}

	trust, err := t.TrustDevice(ctx)
	if err != nil {
		return nil, err
	}

	// One-shot intent: the flag never survives consumption.
	if err = t.stateService.SetShouldTrustDevice(ctx, userID, false); err != nil {
		return nil, err
	}

	return trust, nil
}

func (t *trustDeviceService) IsDeviceTrusted(ctx context.Context) (bool, error) {
	userID, err := t.stateService.ActiveAccountID(ctx)
	if err != nil {
		return false, err
	}

	_, err = t.deviceKeys.DeviceKey(userID)
	if err != nil {
		if errors.Is(err, keychain.ErrDeviceKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (t *trustDeviceService) RemoveTrustedDevice(ctx context.Context) error {
	userID, err := t.stateService.ActiveAccountID(ctx)
	if err != nil {
		return err
	}

	if err = t.deviceKeys.DeleteDeviceKey(userID); err != nil {
		if errors.Is(err, keychain.ErrDeviceKeyNotFound) {
			return nil
		}
		return err
	}

	return nil
}
