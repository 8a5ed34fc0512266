// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a lookup or update targets a cached
	// item that does not exist.
	ErrItemNotFound = errors.New("item was not found")

	// ErrMutationNotFound is returned when a retry update targets a queued
	// mutation that does not exist.
	ErrMutationNotFound = errors.New("mutation was not found")

	// ErrFileNotCached is returned by GetFile when no encrypted blob is
	// cached for the attachment id.
	ErrFileNotCached = errors.New("file is not cached")

	// ErrSecretNotFound is returned by the secret store when no value is
	// stored under the requested key.
	ErrSecretNotFound = errors.New("secret was not found")

	// ErrCorruptRow is returned when a persisted JSON column cannot be
	// decoded.
	ErrCorruptRow = errors.New("corrupt row in local cache")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
