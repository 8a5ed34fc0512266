// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	upsertItem = `
		INSERT INTO items (
			id,
			encrypted_text,
			files,
			created_at,
			updated_at,
			synced_at,
			is_pending_sync
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			encrypted_text = excluded.encrypted_text,
			files = excluded.files,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			synced_at = excluded.synced_at,
			is_pending_sync = excluded.is_pending_sync;`

	getItem = `
		SELECT id, encrypted_text, files, created_at, updated_at, synced_at, is_pending_sync
		FROM items
		WHERE id = ?;`

	getAllItems = `
		SELECT id, encrypted_text, files, created_at, updated_at, synced_at, is_pending_sync
		FROM items
		ORDER BY created_at DESC, id;`

	deleteItem = `DELETE FROM items WHERE id = ?;`

	setPendingSync = `UPDATE items SET is_pending_sync = ? WHERE id = ?;`

	insertMutation = `
		INSERT INTO pending_mutations (id, kind, item_id, payload, created_at, retry_count)
		VALUES (?, ?, ?, ?, ?, ?);`

	getPendingMutations = `
		SELECT id, kind, item_id, payload, created_at, retry_count
		FROM pending_mutations
		ORDER BY created_at, seq;`

	getPendingDeleteItemIDs = `SELECT DISTINCT item_id FROM pending_mutations WHERE kind = 'delete';`

	incrementRetry = `
		UPDATE pending_mutations
		SET retry_count = retry_count + 1
		WHERE id = ?
		RETURNING retry_count;`

	deleteMutation = `DELETE FROM pending_mutations WHERE id = ?;`

	countMutations = `SELECT COUNT(*) FROM pending_mutations;`

	getFile = `
		SELECT id, item_id, encrypted_bytes, downloaded_at
		FROM file_cache
		WHERE id = ?;`

	// the owning item must still exist
	putFile = `
		INSERT INTO file_cache (id, item_id, encrypted_bytes, downloaded_at)
		SELECT ?, ?, ?, ?
		WHERE EXISTS (SELECT 1 FROM items WHERE id = ?)
		ON CONFLICT(id) DO UPDATE SET
			item_id = excluded.item_id,
			encrypted_bytes = excluded.encrypted_bytes,
			downloaded_at = excluded.downloaded_at;`

	hasFile = `SELECT EXISTS (SELECT 1 FROM file_cache WHERE id = ?);`

	getCachedFileIDs = `SELECT id FROM file_cache ORDER BY id;`

	deleteFilesForItem = `DELETE FROM file_cache WHERE item_id = ?;`

	clearItems     = `DELETE FROM items;`
	clearMutations = `DELETE FROM pending_mutations;`
	clearFiles     = `DELETE FROM file_cache;`
)

// buildDeleteItemsQuery deletes every item whose id is in ids.
func buildDeleteItemsQuery(ids []string) (string, []any, error) {
	return sq.Delete("items").Where(sq.Eq{"id": ids}).ToSql()
}

// buildDeleteFilesForItemsQuery deletes cached files owned by any of itemIDs.
func buildDeleteFilesForItemsQuery(itemIDs []string) (string, []any, error) {
	return sq.Delete("file_cache").Where(sq.Eq{"item_id": itemIDs}).ToSql()
}

// buildPruneFilesQuery deletes cached files of itemID whose attachment id is
// no longer in keep.
func buildPruneFilesQuery(itemID string, keep []string) (string, []any, error) {
	return sq.Delete("file_cache").
		Where(sq.Eq{"item_id": itemID}).
		Where(sq.NotEq{"id": keep}).
		ToSql()
}
