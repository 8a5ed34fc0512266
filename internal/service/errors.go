// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Synchronization errors.
var (
	// ErrSync wraps every failure of the pull phase of a sync cycle.
	ErrSync = errors.New("sync failed")

	// ErrOffline is returned when an operation needs the server and the
	// connectivity monitor reports it unreachable.
	ErrOffline = errors.New("server is unreachable")

	// ErrInvalidMutation marks a queued mutation whose payload cannot be
	// decoded. Such mutations are dropped without retrying.
	ErrInvalidMutation = errors.New("invalid mutation payload")

	// ErrFileSizeMismatch is returned when a downloaded blob is not as long
	// as its attachment record says.
	ErrFileSizeMismatch = errors.New("downloaded file size mismatch")
)

// Session errors.
var (
	ErrLocked                 = errors.New("pad is locked")
	ErrEncryptionNotSetUp     = errors.New("encryption is not set up for this account")
	ErrEncryptionAlreadySetUp = errors.New("encryption is already set up for this account")
	ErrOfflineNoCredential    = errors.New("offline and no cached credential to unlock with")
	ErrUnauthorized           = errors.New("not signed in or token expired")
)
