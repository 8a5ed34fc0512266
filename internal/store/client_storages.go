// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pad/internal/config"
	"github.com/MKhiriev/go-pad/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// Cache is the SQLite-backed local cache.
	Cache LocalCacheStore
	// Secrets holds the salt, the key test payload and the auth token.
	Secrets SecretStore
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite file at cfg.DB.DSN, creating it if needed;
//  2. runs pending schema migrations via [DB.Migrate];
//  3. opens the configured keyring backend.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	secrets, err := NewSecretStore(cfg.Secrets)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("secret store: %w", err)
	}

	return &ClientStorages{
		Cache:   NewLocalCacheStore(db, logger),
		Secrets: secrets,
	}, nil
}
