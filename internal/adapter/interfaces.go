// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Pad server.
//
// The primary abstraction is [RemoteClient], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Failures
// that never reached the server wrap [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pad/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RemoteClient is the authenticated connection to the Pad server. Every
// payload it carries is already encrypted.
type RemoteClient interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the current bearer token, or "" if none is set.
	Token() string

	// TokenExpired reports whether the current token is a JWT whose exp claim
	// has passed.
	TokenExpired() bool

	// FetchState returns the authoritative snapshot of the account: the
	// encryption salt and test payload when set up, and every item.
	FetchState(ctx context.Context) (models.RemoteState, error)

	// CreateItem stores item on the server. Repeating the call for the same
	// id is safe.
	CreateItem(ctx context.Context, item models.Item) error

	// DeleteItem removes the item. An item that is already gone is not an
	// error.
	DeleteItem(ctx context.Context, id string) error

	// UploadFile stores an encrypted blob and returns its blob key.
	UploadFile(ctx context.Context, encrypted []byte) (models.UploadedFile, error)

	// DownloadFile returns the encrypted blob stored under blobKey.
	DownloadFile(ctx context.Context, blobKey string) ([]byte, error)

	// SetupEncryption registers the account salt and key test payload.
	// Returns [ErrConflict] (wrapped) if the account is already set up.
	SetupEncryption(ctx context.Context, setup models.EncryptionSetup) error

	// Ping probes reachability of the server.
	Ping(ctx context.Context) error
}
