// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// KDFIterations is the PBKDF2 work factor, 0 for the default.
	KDFIterations int
	// LogFile is the resolved log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientSecrets contains secret store settings.
type ClientSecrets struct {
	Backend      string
	ServiceName  string
	FileDir      string
	FilePassword string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DataDir is the app-local directory.
	DataDir string
	// DB holds local database settings.
	DB ClientDB
	// Secrets holds secret store settings.
	Secrets ClientSecrets
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync runs.
	SyncInterval time.Duration
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
	// DownloadConcurrency bounds parallel cache-warming downloads.
	DownloadConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. Paths left empty are resolved under the data
// directory, which itself defaults to "<user config dir>/pad".
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("%w: resolve data dir: %v", ErrInvalidStorageConfigs, err)
		}
		dataDir = filepath.Join(base, "pad")
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = filepath.Join(dataDir, "pad.db")
	}

	logFile := cfg.App.LogFile
	if logFile == "" {
		logFile = filepath.Join(dataDir, "pad.log")
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			KDFIterations: cfg.App.KDFIterations,
			LogFile:       logFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DataDir: dataDir,
			DB:      ClientDB{DSN: dsn},
			Secrets: ClientSecrets{
				Backend:      cfg.Storage.Secrets.Backend,
				ServiceName:  cfg.Storage.Secrets.ServiceName,
				FileDir:      filepath.Join(dataDir, "keyring"),
				FilePassword: cfg.Storage.Secrets.FilePassword,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:        cfg.Workers.SyncInterval,
			ProbeInterval:       cfg.Workers.ProbeInterval,
			DownloadConcurrency: cfg.Workers.DownloadConcurrency,
		},
	}

	return clientCfg, clientCfg.validate()
}
