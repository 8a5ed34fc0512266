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

func (s *localCacheStore) Enqueue(ctx context.Context, mutation models.PendingMutation) error {
	if err := insertPendingMutation(ctx, s.DB, mutation); err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.Enqueue").
			Str("mutation_id", mutation.ID).
			Str("item_id", mutation.ItemID).
			Msg("failed to enqueue mutation")
		return err
	}

	return nil
}

func (s *localCacheStore) PendingMutations(ctx context.Context) ([]models.PendingMutation, error) {
	log := s.loggerFor(ctx)

	rows, err := s.DB.QueryContext(ctx, getPendingMutations)
	if err != nil {
		log.Err(err).Str("func", "localCacheStore.PendingMutations").Msg("failed to query mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	mutations := make([]models.PendingMutation, 0)
	for rows.Next() {
		var (
			m    models.PendingMutation
			kind string
		)
		if err = rows.Scan(&m.ID, &kind, &m.ItemID, &m.Payload, &m.CreatedAt, &m.RetryCount); err != nil {
			log.Err(err).Str("func", "localCacheStore.PendingMutations").Msg("failed to scan mutation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		m.Kind = models.MutationKind(kind)
		mutations = append(mutations, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return mutations, nil
}

func (s *localCacheStore) IncrementRetry(ctx context.Context, id string) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, incrementRetry, id).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrMutationNotFound, id)
	}
	if err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.IncrementRetry").
			Str("mutation_id", id).
			Msg("failed to increment retry count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return count, nil
}

func (s *localCacheStore) RemoveMutation(ctx context.Context, id string) error {
	if _, err := s.DB.ExecContext(ctx, deleteMutation, id); err != nil {
		s.loggerFor(ctx).Err(err).
			Str("func", "localCacheStore.RemoveMutation").
			Str("mutation_id", id).
			Msg("failed to remove mutation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localCacheStore) CountMutations(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRowContext(ctx, countMutations).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func insertPendingMutation(ctx context.Context, q querier, m models.PendingMutation) error {
	_, err := q.ExecContext(ctx, insertMutation,
		m.ID,
		string(m.Kind),
		m.ItemID,
		m.Payload,
		m.CreatedAt,
		m.RetryCount,
	)
	if err != nil {
		return fmt.Errorf("%w: enqueue %s %s: %w", ErrExecutingStatement, m.Kind, m.ItemID, err)
	}

	return nil
}
