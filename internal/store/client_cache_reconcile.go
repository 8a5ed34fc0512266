// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pad/models"
)

// Reconcile applies the remote snapshot to the cache:
//   - remote-only items are inserted as synced;
//   - local-only items are deleted unless they are pending;
//   - items on both sides follow resolver.Resolve.
//
// Remote items with a queued delete mutation are skipped so a pull that
// races the push does not resurrect them. Rows whose content would not
// change are left untouched, which keeps repeated calls idempotent.
func (s *localCacheStore) Reconcile(ctx context.Context, remote []models.Item, resolver ConflictResolver, now int64) (models.ReconcileReport, error) {
	var report models.ReconcileReport

	err := s.inTx(ctx, "localCacheStore.Reconcile", func(tx *sql.Tx) error {
		report = models.ReconcileReport{}

		localItems, err := queryItems(ctx, tx)
		if err != nil {
			return err
		}
		local := make(map[string]models.CachedItem, len(localItems))
		for _, item := range localItems {
			local[item.ID] = item
		}

		tombstones, err := pendingDeleteItemIDs(ctx, tx)
		if err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(remote))
		for _, r := range remote {
			seen[r.ID] = struct{}{}
			if _, deleted := tombstones[r.ID]; deleted {
				continue
			}

			l, ok := local[r.ID]
			if !ok {
				inserted := models.CachedItem{Item: r, UpdatedAt: r.CreatedAt, SyncedAt: now}
				if err = upsertCachedItem(ctx, tx, inserted); err != nil {
					return err
				}
				report.Inserted++
				continue
			}

			next, changed := resolveItem(l, r, resolver, now)
			if !changed {
				report.Kept++
				continue
			}
			if err = upsertCachedItem(ctx, tx, next); err != nil {
				return err
			}
			if err = pruneCachedFiles(ctx, tx, next); err != nil {
				return err
			}
			report.Updated++
		}

		stale := make([]string, 0)
		for id, item := range local {
			if _, ok := seen[id]; ok {
				continue
			}
			if item.IsPendingSync {
				report.Kept++
				continue
			}
			stale = append(stale, id)
		}

		if len(stale) > 0 {
			slices.Sort(stale)
			if err = deleteCachedItems(ctx, tx, stale); err != nil {
				return err
			}
			report.Deleted = len(stale)
		}

		return nil
	})
	if err != nil {
		return models.ReconcileReport{}, err
	}

	s.loggerFor(ctx).Debug().
		Str("func", "localCacheStore.Reconcile").
		Int("inserted", report.Inserted).
		Int("updated", report.Updated).
		Int("deleted", report.Deleted).
		Int("kept", report.Kept).
		Msg("reconciled local cache")

	return report, nil
}

// resolveItem returns the row to persist and whether it differs from l.
func resolveItem(l models.CachedItem, r models.Item, resolver ConflictResolver, now int64) (models.CachedItem, bool) {
	switch resolver.Resolve(l, r) {
	case models.UseRemote:
		next := models.CachedItem{Item: r, UpdatedAt: r.CreatedAt, SyncedAt: now}
		if sameContent(l, next) {
			return l, false
		}
		return next, true
	case models.Merge:
		files := resolver.MergeFiles(l.Files, r.Files)
		if sameFiles(l.Files, files) {
			return l, false
		}
		next := l
		next.Files = files
		next.SyncedAt = now
		return next, true
	default:
		return l, false
	}
}

func sameContent(a, b models.CachedItem) bool {
	return a.EncryptedText == b.EncryptedText &&
		a.CreatedAt == b.CreatedAt &&
		a.UpdatedAt == b.UpdatedAt &&
		a.IsPendingSync == b.IsPendingSync &&
		sameFiles(a.Files, b.Files)
}

func sameFiles(a, b []models.FileAttachment) bool {
	return slices.Equal(a, b)
}

func pendingDeleteItemIDs(ctx context.Context, q querier) (map[string]struct{}, error) {
	rows, err := q.QueryContext(ctx, getPendingDeleteItemIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids[id] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func pruneCachedFiles(ctx context.Context, q querier, item models.CachedItem) error {
	keep := make([]string, 0, len(item.Files))
	for _, f := range item.Files {
		keep = append(keep, f.ID)
	}

	query, args, err := buildPruneFilesQuery(item.ID, keep)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: prune files of %s: %w", ErrExecutingStatement, item.ID, err)
	}

	return nil
}

func deleteCachedItems(ctx context.Context, q querier, ids []string) error {
	query, args, err := buildDeleteFilesForItemsQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete stale files: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildDeleteItemsQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete stale items: %w", ErrExecutingStatement, err)
	}

	return nil
}
