package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/client"
	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/crypto"
	"github.com/MKhiriev/go-vault-client/internal/keychain"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/service"
	"github.com/MKhiriev/go-vault-client/internal/store"
	"github.com/MKhiriev/go-vault-client/internal/workers"
)

const keychainService = "go-vault-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.Settings.Close(); err != nil {
			log.Error().Err(err).Msg("close settings store")
		}
	}()

	deviceKeys := keychain.NewOSKeychain(keychainService)
	cryptoClient := crypto.NewDeviceCryptoService()

	services := service.NewClientServices(storages, serverAdapter, deviceKeys, cryptoClient, cfg.App, log)
	timeoutWorker := workers.NewTimeoutWorker(services.State, services.VaultTimeout, log)

	app, err := client.NewApp(services, serverAdapter, storages.Settings, timeoutWorker, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
