// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

var knownSecretBackends = map[string]struct{}{
	"":               {},
	"keychain":       {},
	"secret-service": {},
	"kwallet":        {},
	"wincred":        {},
	"pass":           {},
	"file":           {},
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if _, ok := knownSecretBackends[cfg.Storage.Secrets.Backend]; !ok {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Secrets.Backend == "file" && cfg.Storage.Secrets.FilePassword == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ProbeInterval <= 0 || cfg.Workers.DownloadConcurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.KDFIterations < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
