package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server API base URL
//	-s settings store file path
//	-d cipher cache database DSN
//	-c/-config json file path with configs
//	-device-id device identifier UUID
//	-device-model device model description
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-timeout-check-interval vault timeout worker interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var settingsPath string
	var databaseDSN string
	var jsonConfigPath string
	var deviceIdentifier string
	var deviceModel string
	var requestTimeout time.Duration
	var timeoutCheckInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Server API base URL")
	flag.StringVar(&settingsPath, "s", "", "Settings store file path")
	flag.StringVar(&databaseDSN, "d", "", "Cipher cache database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&deviceIdentifier, "device-id", "", "Device identifier UUID")
	flag.StringVar(&deviceModel, "device-model", "", "Device model description")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&timeoutCheckInterval, "timeout-check-interval", 0, "Vault timeout worker interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceIdentifier: deviceIdentifier,
			DeviceModel:      deviceModel,
		},
		Storage: Storage{
			Settings: Settings{
				Path: settingsPath,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			TimeoutCheckInterval: timeoutCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
