// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pad/models"
)

func (s *localCacheStore) GetFile(ctx context.Context, id string) (models.FileCacheEntry, error) {
	var entry models.FileCacheEntry
	err := s.DB.QueryRowContext(ctx, getFile, id).Scan(
		&entry.ID,
		&entry.ItemID,
		&entry.EncryptedBytes,
		&entry.DownloadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FileCacheEntry{}, fmt.Errorf("%w: %s", ErrFileNotCached, id)
	}
	if err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.GetFile").
			Str("file_id", id).
			Msg("failed to read cached file")
		return models.FileCacheEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// PutFile caches an encrypted blob. It returns ErrItemNotFound when the
// owning item is no longer cached.
func (s *localCacheStore) PutFile(ctx context.Context, entry models.FileCacheEntry) error {
	res, err := s.DB.ExecContext(ctx, putFile,
		entry.ID,
		entry.ItemID,
		entry.EncryptedBytes,
		entry.DownloadedAt,
		entry.ItemID,
	)
	if err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.PutFile").
			Str("file_id", entry.ID).
			Str("item_id", entry.ItemID).
			Msg("failed to cache file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, entry.ItemID)
	}

	return nil
}

func (s *localCacheStore) HasFile(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := s.DB.QueryRowContext(ctx, hasFile, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (s *localCacheStore) CachedFileIDs(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, getCachedFileIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (s *localCacheStore) DeleteFilesForItem(ctx context.Context, itemID string) error {
	if _, err := s.DB.ExecContext(ctx, deleteFilesForItem, itemID); err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.DeleteFilesForItem").
			Str("item_id", itemID).
			Msg("failed to delete cached files")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
