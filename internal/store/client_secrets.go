// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-pad/internal/config"
)

type keyringSecretStore struct {
	mu   sync.Mutex
	ring keyring.Keyring
}

// NewSecretStore opens the configured keyring backend. An empty backend lets
// keyring pick the first one available on the platform.
func NewSecretStore(cfg config.ClientSecrets) (SecretStore, error) {
	keyringCfg := keyring.Config{
		ServiceName:             cfg.ServiceName,
		FileDir:                 cfg.FileDir,
		FilePasswordFunc:        keyring.FixedStringPrompt(cfg.FilePassword),
		KeychainName:            cfg.ServiceName,
		LibSecretCollectionName: cfg.ServiceName,
		KWalletAppID:            cfg.ServiceName,
		KWalletFolder:           cfg.ServiceName,
		WinCredPrefix:           cfg.ServiceName,
		PassPrefix:              cfg.ServiceName,
	}
	if cfg.Backend != "" {
		keyringCfg.AllowedBackends = []keyring.BackendType{keyring.BackendType(cfg.Backend)}
	}

	ring, err := keyring.Open(keyringCfg)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}

	return NewKeyringSecretStore(ring), nil
}

// NewKeyringSecretStore wraps an opened keyring.
func NewKeyringSecretStore(ring keyring.Keyring) SecretStore {
	return &keyringSecretStore{ring: ring}
}

func (k *keyringSecretStore) Save(key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	err := k.ring.Set(keyring.Item{
		Key:   key,
		Data:  value,
		Label: "Pad " + key,
	})
	if err != nil {
		return fmt.Errorf("save secret %s: %w", key, err)
	}

	return nil
}

func (k *keyringSecretStore) Load(key string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	item, err := k.ring.Get(key)
	if isSecretMissing(err) {
		return nil, fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("load secret %s: %w", key, err)
	}

	return item.Data, nil
}

func (k *keyringSecretStore) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	err := k.ring.Remove(key)
	if err != nil && !isSecretMissing(err) {
		return fmt.Errorf("delete secret %s: %w", key, err)
	}

	return nil
}

func (k *keyringSecretStore) Exists(key string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	_, err := k.ring.Get(key)
	if isSecretMissing(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check secret %s: %w", key, err)
	}

	return true, nil
}

// isSecretMissing reports a missing key. The file backend surfaces it as a
// filesystem error on remove.
func isSecretMissing(err error) bool {
	return errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, fs.ErrNotExist)
}
