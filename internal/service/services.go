package service

import (
	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/keychain"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/store"
)

// ClientServices groups every client-side service into a single value that
// can be passed around the application wiring.
type ClientServices struct {
	State          StateService
	VaultTimeout   VaultTimeoutService
	TrustDevice    TrustDeviceService
	AccountRefresh AccountRefreshService
}

// NewClientServices wires the service layer over the storage layer, the
// server adapter, the platform keychain, and the external crypto client.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	deviceKeys keychain.DeviceKeyStore,
	cryptoClient CryptoClient,
	appCfg config.ClientApp,
	log *logger.Logger,
) *ClientServices {
	stateSvc := NewStateService(storages.Settings, storages.VaultData, log)

	return &ClientServices{
		State:          stateSvc,
		VaultTimeout:   NewVaultTimeoutService(stateSvc, log),
		TrustDevice:    NewTrustDeviceService(stateSvc, serverAdapter, deviceKeys, cryptoClient, appCfg, log),
		AccountRefresh: NewAccountRefreshService(stateSvc, serverAdapter, log),
	}
}
