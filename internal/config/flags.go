// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// that the flags write into once fs is parsed. Zero values mean "not set".
//
// Flags:
//
//	--config               JSON file path with configs
//	--server               Pad server address
//	--request-timeout      outbound request timeout (e.g. "15s")
//	--data-dir             app-local data directory
//	--dsn                  SQLite DSN of the local cache
//	--secrets-backend      keyring backend
//	--hash-key             request signing key
//	--sync-interval        background sync period
//	--probe-interval       connectivity probe period
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Pad server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Storage.DataDir, "data-dir", "", "Data directory")
	fs.StringVar(&cfg.Storage.DB.DSN, "dsn", "", "Local cache SQLite DSN")
	fs.StringVar(&cfg.Storage.Secrets.Backend, "secrets-backend", "", "Keyring backend (keychain, secret-service, kwallet, wincred, pass, file)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Request signing key")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.DurationVar(&cfg.Workers.ProbeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 10s)")

	return cfg
}
