// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the Pad
// client. It is populated by merging values from defaults, an optional JSON
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the request signing key
	// and the key-derivation work factor.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local cache database and the
	// secret store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote Pad server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of the background sync and connectivity jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign request bodies sent to the server
	// (HashSHA256 header). Signing is skipped when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// KDFIterations overrides the PBKDF2 work factor. Zero means the
	// production default. Every device of an account must agree on it.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// LogFile is the path of the JSON log file. Empty means
	// "<data dir>/pad.log".
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DataDir is the app-local directory that scopes the cache database,
	// the log file and the file-backed keyring.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`

	// Secrets holds the secret store settings.
	Secrets Secrets `envPrefix:"SECRETS_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite data source name. Empty means "<data dir>/pad.db".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Secrets holds settings of the keyring-backed secret store.
type Secrets struct {
	// Backend selects the keyring backend: "keychain", "secret-service",
	// "kwallet", "wincred", "pass" or "file". Empty lets keyring pick.
	// Env: STORAGE_SECRETS_BACKEND
	Backend string `env:"BACKEND"`

	// ServiceName namespaces the stored secrets.
	// Env: STORAGE_SECRETS_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// FilePassword protects the file backend. Only used with Backend "file".
	// Env: STORAGE_SECRETS_FILE_PASSWORD
	FilePassword string `env:"FILE_PASSWORD"`
}

// Adapter holds settings of the outbound connection to the Pad server.
type Adapter struct {
	// HTTPAddress is the Pad server base address, e.g. "https://pad.example.com".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is the period of the background full sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is the period of the connectivity probe.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// DownloadConcurrency bounds parallel file downloads while warming the
	// file cache.
	// Env: WORKERS_DOWNLOAD_CONCURRENCY
	DownloadConcurrency int `env:"DOWNLOAD_CONCURRENCY"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Secrets: Secrets{ServiceName: "pad"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval:        5 * time.Minute,
			ProbeInterval:       10 * time.Second,
			DownloadConcurrency: 4,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. flagCfg carries the values bound to command-line flags and may be
// nil.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
