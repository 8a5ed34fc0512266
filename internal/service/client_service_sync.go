// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/resolver"
	"github.com/MKhiriev/go-pad/internal/store"
	"github.com/MKhiriev/go-pad/models"
)

const (
	// maxRetries is the number of failed pushes a mutation survives. The
	// push that takes retryCount past it drops the mutation.
	maxRetries = 5

	defaultDownloadConcurrency = 4

	flightFull = "full"
	flightMeta = "meta"
)

type syncOrchestrator struct {
	cache    store.LocalCacheStore
	secrets  store.SecretStore
	remote   adapter.RemoteClient
	online   Reachability
	resolver store.ConflictResolver
	logger   *logger.Logger
	now      func() time.Time

	downloadConcurrency int

	flights  singleflight.Group
	requests atomic.Int64
	// writeMu serializes whole cycles: push always completes before pull and
	// two cycles never reconcile concurrently.
	writeMu sync.Mutex

	statusMu sync.RWMutex
	status   models.SyncStatus
	statuses *broadcaster[models.SyncStatus]

	droppedMu sync.Mutex
	dropped   []models.PendingMutation
}

// NewSyncOrchestrator wires the orchestrator. downloadConcurrency bounds
// parallel attachment downloads while warming the file cache.
func NewSyncOrchestrator(
	cache store.LocalCacheStore,
	secrets store.SecretStore,
	remote adapter.RemoteClient,
	online Reachability,
	downloadConcurrency int,
	logger *logger.Logger,
) SyncOrchestrator {
	if downloadConcurrency <= 0 {
		downloadConcurrency = defaultDownloadConcurrency
	}
	return &syncOrchestrator{
		cache:               cache,
		secrets:             secrets,
		remote:              remote,
		online:              online,
		resolver:            resolver.New(),
		logger:              logger,
		now:                 time.Now,
		downloadConcurrency: downloadConcurrency,
		status:              models.SyncStatus{State: models.SyncIdle},
		statuses:            newBroadcaster[models.SyncStatus](),
	}
}

// Sync runs push, pull and file cache warming. Concurrent calls share one
// in-flight cycle and its result.
func (s *syncOrchestrator) Sync(ctx context.Context) error {
	return s.coalesce(ctx, flightFull, true)
}

// SyncMetadataOnly runs push and pull without warming the file cache.
func (s *syncOrchestrator) SyncMetadataOnly(ctx context.Context) error {
	return s.coalesce(ctx, flightMeta, false)
}

// coalesce joins the in-flight cycle for key. A caller whose request came
// after that cycle started may have queued changes the cycle never saw; it
// runs one more cycle while changes are still queued.
func (s *syncOrchestrator) coalesce(ctx context.Context, key string, warm bool) error {
	gen := s.requests.Add(1)
	for {
		v, err, _ := s.flights.Do(key, func() (any, error) {
			started := s.requests.Load()
			return started, s.run(ctx, warm)
		})
		if started, _ := v.(int64); started >= gen || ctx.Err() != nil || !s.hasQueuedChanges(ctx) {
			return err
		}
	}
}

func (s *syncOrchestrator) hasQueuedChanges(ctx context.Context) bool {
	n, err := s.cache.CountMutations(ctx)
	return err == nil && n > 0
}

func (s *syncOrchestrator) run(ctx context.Context, warm bool) error {
	if !s.online.Reachable() {
		s.setStatus(models.SyncOffline, "", false)
		return ErrOffline
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.setStatus(models.SyncSyncing, "", false)

	dropped, err := s.push(ctx)
	if err != nil {
		return s.fail(err)
	}

	snapshot, err := s.pull(ctx)
	if err != nil {
		return s.fail(err)
	}

	if warm {
		s.warmFileCache(ctx, snapshot.Items)
	}

	if dropped > 0 {
		s.setStatus(models.SyncError, fmt.Sprintf("gave up on %d queued change(s) after %d retries", dropped, maxRetries), true)
		return nil
	}
	s.setStatus(models.SyncIdle, "", true)
	return nil
}

func (s *syncOrchestrator) fail(err error) error {
	err = fmt.Errorf("%w: %w", ErrSync, mapAdapterError(err))
	s.setStatus(models.SyncError, err.Error(), false)
	s.logger.Err(err).Msg("sync cycle failed")
	return err
}

// push sends every queued mutation in FIFO order. A failed mutation blocks
// the later mutations of the same item for this cycle so they never reach
// the server out of order. It returns how many mutations were given up on.
func (s *syncOrchestrator) push(ctx context.Context) (int, error) {
	mutations, err := s.cache.PendingMutations(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending mutations: %w", err)
	}

	blocked := make(map[string]struct{})
	dropped := 0
	for _, m := range mutations {
		if err = ctx.Err(); err != nil {
			return dropped, err
		}
		if _, ok := blocked[m.ItemID]; ok {
			continue
		}

		pushErr := s.pushOne(ctx, m)
		switch {
		case pushErr == nil:
			if err = s.cache.RemoveMutation(ctx, m.ID); err != nil {
				return dropped, fmt.Errorf("remove pushed mutation %s: %w", m.ID, err)
			}
			if m.Kind == models.MutationCreate {
				if err = s.cache.SetPendingSync(ctx, m.ItemID, false); err != nil && !errors.Is(err, store.ErrItemNotFound) {
					return dropped, fmt.Errorf("clear pending flag of %s: %w", m.ItemID, err)
				}
			}

		case errors.Is(pushErr, ErrInvalidMutation):
			if err = s.drop(ctx, m, pushErr); err != nil {
				return dropped, err
			}
			dropped++

		default:
			blocked[m.ItemID] = struct{}{}
			retries, incErr := s.cache.IncrementRetry(ctx, m.ID)
			if incErr != nil {
				return dropped, fmt.Errorf("increment retry of %s: %w", m.ID, incErr)
			}
			s.logger.Warn().Err(pushErr).
				Str("mutation_id", m.ID).
				Str("item_id", m.ItemID).
				Int("retry_count", retries).
				Msg("push failed")
			if retries > maxRetries {
				m.RetryCount = retries
				if err = s.drop(ctx, m, pushErr); err != nil {
					return dropped, err
				}
				dropped++
			}
		}
	}
	return dropped, nil
}

func (s *syncOrchestrator) pushOne(ctx context.Context, m models.PendingMutation) error {
	switch m.Kind {
	case models.MutationCreate:
		var item models.Item
		if err := json.Unmarshal(m.Payload, &item); err != nil || item.ID == "" {
			return fmt.Errorf("%w: mutation %s", ErrInvalidMutation, m.ID)
		}
		return s.remote.CreateItem(ctx, item)
	case models.MutationDelete:
		return s.remote.DeleteItem(ctx, m.ItemID)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidMutation, m.Kind)
	}
}

// drop removes a mutation for good and records it. A dropped Create leaves
// its item in the cache still marked pending, so the text stays readable
// locally until the user deletes it.
func (s *syncOrchestrator) drop(ctx context.Context, m models.PendingMutation, cause error) error {
	if err := s.cache.RemoveMutation(ctx, m.ID); err != nil {
		return fmt.Errorf("remove dropped mutation %s: %w", m.ID, err)
	}

	s.droppedMu.Lock()
	s.dropped = append(s.dropped, m)
	s.droppedMu.Unlock()

	s.logger.Error().Err(cause).
		Str("mutation_id", m.ID).
		Str("item_id", m.ItemID).
		Str("kind", string(m.Kind)).
		Int("retry_count", m.RetryCount).
		Msg("gave up on queued mutation")
	return nil
}

func (s *syncOrchestrator) pull(ctx context.Context) (models.RemoteState, error) {
	state, err := s.remote.FetchState(ctx)
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("fetch state: %w", err)
	}

	creds, ok, err := credentialsFromState(state)
	if err != nil {
		return models.RemoteState{}, err
	}
	if ok {
		if err = saveCredentials(s.secrets, creds); err != nil {
			return models.RemoteState{}, fmt.Errorf("cache credentials: %w", err)
		}
	}

	report, err := s.cache.Reconcile(ctx, state.Items, s.resolver, s.now().UnixMilli())
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("reconcile: %w", err)
	}
	s.logger.Debug().
		Int("inserted", report.Inserted).
		Int("updated", report.Updated).
		Int("deleted", report.Deleted).
		Int("kept", report.Kept).
		Msg("pulled remote state")
	return state, nil
}

// warmFileCache downloads every attachment of items that is not cached yet.
// Failures are logged per file and never fail the cycle.
func (s *syncOrchestrator) warmFileCache(ctx context.Context, items []models.Item) {
	cachedIDs, err := s.cache.CachedFileIDs(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("list cached files")
		return
	}
	cached := make(map[string]struct{}, len(cachedIDs))
	for _, id := range cachedIDs {
		cached[id] = struct{}{}
	}

	var g errgroup.Group
	g.SetLimit(s.downloadConcurrency)
	for _, item := range items {
		for _, f := range item.Files {
			if _, ok := cached[f.ID]; ok {
				continue
			}
			cached[f.ID] = struct{}{}
			itemID := item.ID
			g.Go(func() error {
				if _, err := s.fetchFile(ctx, f.ID, f.BlobKey, itemID, f.Size); err != nil {
					s.logger.Warn().Err(err).Str("file_id", f.ID).Str("item_id", itemID).Msg("warm file cache")
				}
				return nil
			})
		}
	}
	_ = g.Wait()
}

func (s *syncOrchestrator) DownloadFile(ctx context.Context, id, blobKey, itemID string, size int64) ([]byte, error) {
	entry, err := s.cache.GetFile(ctx, id)
	if err == nil {
		return entry.EncryptedBytes, nil
	}
	if !errors.Is(err, store.ErrFileNotCached) {
		return nil, fmt.Errorf("read file cache: %w", err)
	}

	if !s.online.Reachable() {
		return nil, ErrOffline
	}
	return s.fetchFile(ctx, id, blobKey, itemID, size)
}

// fetchFile downloads a blob and stores it in the file cache. A failure to
// cache is logged; the downloaded bytes are still returned.
func (s *syncOrchestrator) fetchFile(ctx context.Context, id, blobKey, itemID string, size int64) ([]byte, error) {
	blob, err := s.remote.DownloadFile(ctx, blobKey)
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", id, mapAdapterError(err))
	}
	if size > 0 && int64(len(blob)) != size {
		return nil, fmt.Errorf("%w: file %s: want %d bytes, got %d", ErrFileSizeMismatch, id, size, len(blob))
	}

	err = s.cache.PutFile(ctx, models.FileCacheEntry{
		ID:             id,
		ItemID:         itemID,
		EncryptedBytes: blob,
		DownloadedAt:   s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("file_id", id).Msg("cache downloaded file")
	}
	return blob, nil
}

func (s *syncOrchestrator) Status() models.SyncStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *syncOrchestrator) Subscribe() (<-chan models.SyncStatus, func()) {
	return s.statuses.subscribe()
}

func (s *syncOrchestrator) DroppedMutations() []models.PendingMutation {
	s.droppedMu.Lock()
	defer s.droppedMu.Unlock()
	out := make([]models.PendingMutation, len(s.dropped))
	copy(out, s.dropped)
	return out
}

func (s *syncOrchestrator) Exclusive(fn func() error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return fn()
}

// setStatus records a state change. synced stamps lastSyncAt.
func (s *syncOrchestrator) setStatus(state models.SyncState, reason string, synced bool) {
	s.statusMu.Lock()
	prev := s.status
	next := models.SyncStatus{State: state, Reason: reason, LastSyncAt: prev.LastSyncAt}
	if synced {
		next.LastSyncAt = s.now()
	}
	s.status = next
	s.statusMu.Unlock()

	if next != prev {
		s.statuses.publish(next)
	}
}
