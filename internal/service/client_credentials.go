// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pad/internal/store"
	"github.com/MKhiriev/go-pad/models"
)

// credentials is the account's key-verification material: the KDF salt and
// the encrypted known plaintext. Neither is secret on its own.
type credentials struct {
	Salt []byte
	Test models.EncryptedPayload
}

// credentialsFromState extracts the credentials from a remote snapshot.
// ok is false when the account has no encryption set up.
func credentialsFromState(state models.RemoteState) (creds credentials, ok bool, err error) {
	if state.EncryptionSalt == nil || state.EncryptionTest == nil || *state.EncryptionSalt == "" {
		return credentials{}, false, nil
	}
	salt, err := base64.StdEncoding.DecodeString(*state.EncryptionSalt)
	if err != nil {
		return credentials{}, false, fmt.Errorf("decode remote salt: %w", err)
	}
	return credentials{Salt: salt, Test: *state.EncryptionTest}, true, nil
}

// loadCredentials reads the cached credentials. It returns
// store.ErrSecretNotFound unless both salt and test payload are present.
func loadCredentials(secrets store.SecretStore) (credentials, error) {
	rawSalt, err := secrets.Load(store.SecretEncryptionSalt)
	if err != nil {
		return credentials{}, err
	}
	rawTest, err := secrets.Load(store.SecretEncryptionTest)
	if err != nil {
		return credentials{}, err
	}

	salt, err := base64.StdEncoding.DecodeString(string(rawSalt))
	if err != nil || len(salt) == 0 {
		return credentials{}, fmt.Errorf("%w: cached salt is malformed", store.ErrSecretNotFound)
	}
	var test models.EncryptedPayload
	if err = json.Unmarshal(rawTest, &test); err != nil {
		return credentials{}, fmt.Errorf("%w: cached test payload is malformed", store.ErrSecretNotFound)
	}
	return credentials{Salt: salt, Test: test}, nil
}

func saveCredentials(secrets store.SecretStore, creds credentials) error {
	rawTest, err := json.Marshal(creds.Test)
	if err != nil {
		return fmt.Errorf("encode test payload: %w", err)
	}
	if err = secrets.Save(store.SecretEncryptionSalt, []byte(base64.StdEncoding.EncodeToString(creds.Salt))); err != nil {
		return fmt.Errorf("save salt: %w", err)
	}
	if err = secrets.Save(store.SecretEncryptionTest, rawTest); err != nil {
		return fmt.Errorf("save test payload: %w", err)
	}
	return nil
}

func deleteCredentials(secrets store.SecretStore) error {
	return errors.Join(
		secrets.Delete(store.SecretEncryptionSalt),
		secrets.Delete(store.SecretEncryptionTest),
	)
}
