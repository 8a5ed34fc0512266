// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/models"
)

type localCacheStore struct {
	*DB
	logger *logger.Logger
}

// NewLocalCacheStore returns a LocalCacheStore over an already migrated DB.
func NewLocalCacheStore(db *DB, logger *logger.Logger) LocalCacheStore {
	return &localCacheStore{
		DB:     db,
		logger: logger,
	}
}

// loggerFor prefers the request logger carried by ctx over the store's own.
func (s *localCacheStore) loggerFor(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

// ── Items ─────────────────────────────────────────────────────────────────────

func (s *localCacheStore) SaveItem(ctx context.Context, item models.CachedItem) error {
	log := s.loggerFor(ctx)

	if err := upsertCachedItem(ctx, s.DB, item); err != nil {
		log.Err(err).
			Str("func", "localCacheStore.SaveItem").
			Str("item_id", item.ID).
			Msg("failed to upsert cached item")
		return err
	}

	return nil
}

func (s *localCacheStore) GetItem(ctx context.Context, id string) (models.CachedItem, error) {
	item, err := scanItem(s.DB.QueryRowContext(ctx, getItem, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.GetItem").
			Str("item_id", id).
			Msg("failed to read cached item")
		return models.CachedItem{}, err
	}

	return item, nil
}

func (s *localCacheStore) GetAllItems(ctx context.Context) ([]models.CachedItem, error) {
	items, err := queryItems(ctx, s.DB)
	if err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.GetAllItems").
			Msg("failed to read cached items")
		return nil, err
	}

	return items, nil
}

func (s *localCacheStore) DeleteItem(ctx context.Context, id string) error {
	return s.inTx(ctx, "localCacheStore.DeleteItem", func(tx *sql.Tx) error {
		return deleteCachedItem(ctx, tx, id)
	})
}

func (s *localCacheStore) SetPendingSync(ctx context.Context, id string, pending bool) error {
	res, err := s.DB.ExecContext(ctx, setPendingSync, pending, id)
	if err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.SetPendingSync").
			Str("item_id", id).
			Msg("failed to update pending flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	return nil
}

// ── Compound operations ───────────────────────────────────────────────────────

func (s *localCacheStore) AddLocalItem(ctx context.Context, item models.CachedItem, mutation models.PendingMutation) error {
	return s.inTx(ctx, "localCacheStore.AddLocalItem", func(tx *sql.Tx) error {
		if err := upsertCachedItem(ctx, tx, item); err != nil {
			return err
		}
		return insertPendingMutation(ctx, tx, mutation)
	})
}

func (s *localCacheStore) DeleteLocalItem(ctx context.Context, id string, mutation models.PendingMutation) error {
	return s.inTx(ctx, "localCacheStore.DeleteLocalItem", func(tx *sql.Tx) error {
		if err := deleteCachedItem(ctx, tx, id); err != nil {
			return err
		}
		return insertPendingMutation(ctx, tx, mutation)
	})
}

func (s *localCacheStore) Clear(ctx context.Context) error {
	return s.inTx(ctx, "localCacheStore.Clear", func(tx *sql.Tx) error {
		for _, query := range []string{clearFiles, clearMutations, clearItems} {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (s *localCacheStore) Close() error {
	return s.DB.Close()
}

// inTx runs fn in a transaction that commits only when fn succeeds.
func (s *localCacheStore) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := s.loggerFor(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		log.Err(err).Str("func", funcName).Msg("transaction aborted")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ── Row helpers ───────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.CachedItem, error) {
	var (
		item  models.CachedItem
		text  string
		files string
	)

	err := row.Scan(
		&item.ID,
		&text,
		&files,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.SyncedAt,
		&item.IsPendingSync,
	)
	if err != nil {
		return models.CachedItem{}, err
	}

	if err = json.Unmarshal([]byte(text), &item.EncryptedText); err != nil {
		return models.CachedItem{}, fmt.Errorf("%w: item %s text: %w", ErrCorruptRow, item.ID, err)
	}
	if err = json.Unmarshal([]byte(files), &item.Files); err != nil {
		return models.CachedItem{}, fmt.Errorf("%w: item %s files: %w", ErrCorruptRow, item.ID, err)
	}

	return item, nil
}

func queryItems(ctx context.Context, q querier) ([]models.CachedItem, error) {
	rows, err := q.QueryContext(ctx, getAllItems)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.CachedItem, 0)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func upsertCachedItem(ctx context.Context, q querier, item models.CachedItem) error {
	text, err := json.Marshal(item.EncryptedText)
	if err != nil {
		return fmt.Errorf("encode item text: %w", err)
	}

	files := item.Files
	if files == nil {
		files = []models.FileAttachment{}
	}
	filesJSON, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("encode item files: %w", err)
	}

	_, err = q.ExecContext(ctx, upsertItem,
		item.ID,
		string(text),
		string(filesJSON),
		item.CreatedAt,
		item.UpdatedAt,
		item.SyncedAt,
		item.IsPendingSync,
	)
	if err != nil {
		return fmt.Errorf("%w: save item %s: %w", ErrExecutingStatement, item.ID, err)
	}

	return nil
}

func deleteCachedItem(ctx context.Context, q querier, id string) error {
	if _, err := q.ExecContext(ctx, deleteFilesForItem, id); err != nil {
		return fmt.Errorf("%w: delete files of %s: %w", ErrExecutingStatement, id, err)
	}

	res, err := q.ExecContext(ctx, deleteItem, id)
	if err != nil {
		return fmt.Errorf("%w: delete item %s: %w", ErrExecutingStatement, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	return nil
}
