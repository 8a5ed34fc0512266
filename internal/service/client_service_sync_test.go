// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/mock"
	"github.com/MKhiriev/go-pad/internal/store"
	"github.com/MKhiriev/go-pad/models"
)

type syncFixture struct {
	orch    *syncOrchestrator
	cache   store.LocalCacheStore
	secrets store.SecretStore
	server  *memServer
	reach   *switchReachability
}

func newTestSyncOrchestrator(t *testing.T, ctrl *gomock.Controller) syncFixture {
	t.Helper()
	remote := mock.NewMockRemoteClient(ctrl)
	srv := newMemServer()
	srv.bind(remote)

	f := syncFixture{
		cache:   newTestCache(t),
		secrets: newTestSecrets(),
		server:  srv,
		reach:   newReachability(true),
	}
	f.orch = NewSyncOrchestrator(f.cache, f.secrets, remote, f.reach, 2, logger.Nop()).(*syncOrchestrator)
	return f
}

func queueCreate(t *testing.T, cache store.LocalCacheStore, id string, createdAt int64) {
	t.Helper()
	item := models.Item{
		ID:            id,
		EncryptedText: models.EncryptedPayload{Ciphertext: "c-" + id, IV: "iv", Version: 1},
		Files:         []models.FileAttachment{},
		CreatedAt:     createdAt,
	}
	payload, err := json.Marshal(item)
	require.NoError(t, err)
	err = cache.AddLocalItem(context.Background(),
		models.CachedItem{Item: item, UpdatedAt: createdAt, IsPendingSync: true},
		models.PendingMutation{ID: "m-create-" + id, Kind: models.MutationCreate, ItemID: id, Payload: payload, CreatedAt: createdAt},
	)
	require.NoError(t, err)
}

// ── Sync: offline ───────────────────────────────────────────────────────────

func TestSyncOrchestrator_Sync_OfflineHasNoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any remote call fails the test
	remote := mock.NewMockRemoteClient(ctrl)
	cache := newTestCache(t)
	queueCreate(t, cache, "item-1", 100)

	orch := NewSyncOrchestrator(cache, newTestSecrets(), remote, newReachability(false), 4, logger.Nop())

	err := orch.Sync(context.Background())
	require.ErrorIs(t, err, ErrOffline)
	assert.Equal(t, models.SyncOffline, orch.Status().State)

	n, err := cache.CountMutations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ── Sync: push ──────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Sync_PushesCreateAndClearsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	queueCreate(t, f.cache, "item-1", 100)

	require.NoError(t, f.orch.Sync(ctx))

	assert.Equal(t, []string{"item-1"}, f.server.itemIDs())
	n, err := f.cache.CountMutations(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := f.cache.GetItem(ctx, "item-1")
	require.NoError(t, err)
	assert.False(t, got.IsPendingSync)

	st := f.orch.Status()
	assert.Equal(t, models.SyncIdle, st.State)
	assert.False(t, st.LastSyncAt.IsZero())
}

func TestSyncOrchestrator_Sync_PushesDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	f.server.put(models.Item{ID: "gone", CreatedAt: 1})
	require.NoError(t, f.cache.SaveItem(ctx, models.CachedItem{Item: models.Item{ID: "gone", CreatedAt: 1}, SyncedAt: 1}))
	require.NoError(t, f.cache.DeleteLocalItem(ctx, "gone", models.PendingMutation{
		ID: "m-del", Kind: models.MutationDelete, ItemID: "gone", CreatedAt: 2,
	}))

	require.NoError(t, f.orch.Sync(ctx))

	assert.Empty(t, f.server.itemIDs())
	_, err := f.cache.GetItem(ctx, "gone")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestSyncOrchestrator_Sync_GivesUpAfterSixFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	queueCreate(t, f.cache, "item-1", 100)
	f.server.setFailures(adapter.ErrServer, nil, nil)

	for i := 1; i <= maxRetries; i++ {
		require.NoError(t, f.orch.Sync(ctx), "cycle %d", i)
		n, err := f.cache.CountMutations(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "mutation must survive cycle %d", i)
		assert.Empty(t, f.orch.DroppedMutations())
	}

	require.NoError(t, f.orch.Sync(ctx))
	n, err := f.cache.CountMutations(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	dropped := f.orch.DroppedMutations()
	require.Len(t, dropped, 1)
	assert.Equal(t, "item-1", dropped[0].ItemID)
	assert.Equal(t, maxRetries+1, dropped[0].RetryCount)

	st := f.orch.Status()
	assert.Equal(t, models.SyncError, st.State)
	assert.Contains(t, st.Reason, "gave up")

	// the text stays readable locally
	item, err := f.cache.GetItem(ctx, "item-1")
	require.NoError(t, err)
	assert.True(t, item.IsPendingSync)

	require.NoError(t, f.orch.Sync(ctx))
	assert.EqualValues(t, maxRetries+1, f.server.creates.Load(), "dropped mutation must not be pushed again")
}

func TestSyncOrchestrator_Sync_FailedMutationBlocksLaterOnesOfSameItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	queueCreate(t, f.cache, "item-1", 100)
	require.NoError(t, f.cache.DeleteLocalItem(ctx, "item-1", models.PendingMutation{
		ID: "m-del", Kind: models.MutationDelete, ItemID: "item-1", CreatedAt: 200,
	}))
	f.server.setFailures(adapter.ErrServer, nil, nil)

	require.NoError(t, f.orch.Sync(ctx))

	assert.EqualValues(t, 1, f.server.creates.Load())
	assert.Zero(t, f.server.deletes.Load())
	n, err := f.cache.CountMutations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f.server.setFailures(nil, nil, nil)
	require.NoError(t, f.orch.Sync(ctx))
	assert.Empty(t, f.server.itemIDs())
	n, err = f.cache.CountMutations(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSyncOrchestrator_Sync_DropsUndecodablePayloadImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.cache.Enqueue(ctx, models.PendingMutation{
		ID: "m-bad", Kind: models.MutationCreate, ItemID: "x", Payload: []byte("{not json"), CreatedAt: 1,
	}))

	require.NoError(t, f.orch.Sync(ctx))

	assert.Zero(t, f.server.creates.Load())
	require.Len(t, f.orch.DroppedMutations(), 1)
	n, err := f.cache.CountMutations(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// ── Sync: pull ──────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Sync_CachesCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	cipher := newTestCipher()
	f.server.seedAccount(t, cipher, "hunter2")

	require.NoError(t, f.orch.Sync(context.Background()))

	creds, err := loadCredentials(f.secrets)
	require.NoError(t, err)
	assert.Equal(t, *f.server.test, creds.Test)
}

func TestSyncOrchestrator_Sync_PullsRemoteItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	f.server.put(models.Item{ID: "a", CreatedAt: 10, Files: []models.FileAttachment{}})
	f.server.put(models.Item{ID: "b", CreatedAt: 20, Files: []models.FileAttachment{}})

	require.NoError(t, f.orch.Sync(ctx))

	items, err := f.cache.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}

func TestSyncOrchestrator_Sync_FetchFailureSetsErrorState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)

	f.server.setFailures(nil, nil, adapter.ErrServer)

	err := f.orch.Sync(context.Background())
	require.ErrorIs(t, err, ErrSync)
	require.ErrorIs(t, err, adapter.ErrServer)

	st := f.orch.Status()
	assert.Equal(t, models.SyncError, st.State)
	assert.NotEmpty(t, st.Reason)
	assert.True(t, st.LastSyncAt.IsZero())
}

func TestSyncOrchestrator_Sync_ConflictIsNotReportedAsEncryptionSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)

	f.server.setFailures(nil, nil, errors.Join(adapter.ErrConflict, errors.New("state locked")))

	err := f.orch.Sync(context.Background())
	require.ErrorIs(t, err, ErrSync)
	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.NotErrorIs(t, err, ErrEncryptionAlreadySetUp)
	assert.NotContains(t, f.orch.Status().Reason, "already set up")
}

func TestSyncOrchestrator_Exclusive_WaitsForRunningCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteClient(ctrl)
	entered := make(chan struct{})
	release := make(chan struct{})
	remote.EXPECT().FetchState(gomock.Any()).DoAndReturn(func(context.Context) (models.RemoteState, error) {
		close(entered)
		<-release
		return models.RemoteState{}, nil
	}).Times(1)

	orch := NewSyncOrchestrator(newTestCache(t), newTestSecrets(), remote, newReachability(true), 2, logger.Nop())

	syncDone := make(chan error, 1)
	go func() { syncDone <- orch.Sync(context.Background()) }()
	<-entered

	var ran atomic.Bool
	exclusiveDone := make(chan error, 1)
	go func() {
		exclusiveDone <- orch.Exclusive(func() error {
			ran.Store(true)
			return nil
		})
	}()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())

	close(release)
	require.NoError(t, <-syncDone)
	require.NoError(t, <-exclusiveDone)
	assert.True(t, ran.Load())
}

func TestSyncOrchestrator_Sync_NetworkFailureIsReportedAsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)

	f.server.setFailures(nil, nil, errors.Join(adapter.ErrNetwork, errors.New("connection refused")))

	err := f.orch.Sync(context.Background())
	require.ErrorIs(t, err, ErrSync)
	assert.ErrorIs(t, err, ErrOffline)
}

// ── Sync: file cache ────────────────────────────────────────────────────────

func TestSyncOrchestrator_Sync_WarmsFileCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	var files []models.FileAttachment
	for _, blob := range []string{"one", "two", "three"} {
		up, err := f.server.uploadFile(ctx, []byte(blob))
		require.NoError(t, err)
		files = append(files, models.FileAttachment{ID: up.ID, Size: up.Size, BlobKey: up.BlobKey})
	}
	// missing blob: logged, not fatal
	files = append(files, models.FileAttachment{ID: "f-missing", Size: 4, BlobKey: "nope"})
	f.server.put(models.Item{ID: "with-files", CreatedAt: 1, Files: files})

	require.NoError(t, f.orch.Sync(ctx))

	ids, err := f.cache.CachedFileIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{files[0].ID, files[1].ID, files[2].ID}, ids)
	assert.Equal(t, models.SyncIdle, f.orch.Status().State)
}

func TestSyncOrchestrator_SyncMetadataOnly_SkipsFileCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)
	ctx := context.Background()

	up, err := f.server.uploadFile(ctx, []byte("blob"))
	require.NoError(t, err)
	f.server.put(models.Item{ID: "i", CreatedAt: 1, Files: []models.FileAttachment{{ID: up.ID, Size: up.Size, BlobKey: up.BlobKey}}})

	require.NoError(t, f.orch.SyncMetadataOnly(ctx))

	ids, err := f.cache.CachedFileIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// ── DownloadFile ────────────────────────────────────────────────────────────

func TestSyncOrchestrator_DownloadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit works offline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTestSyncOrchestrator(t, ctrl)
		f.reach.set(false)

		require.NoError(t, f.cache.SaveItem(ctx, models.CachedItem{Item: models.Item{ID: "i", CreatedAt: 1}}))
		require.NoError(t, f.cache.PutFile(ctx, models.FileCacheEntry{ID: "f", ItemID: "i", EncryptedBytes: []byte("cached")}))

		got, err := f.orch.DownloadFile(ctx, "f", "unknown-blob", "i", 6)
		require.NoError(t, err)
		assert.Equal(t, []byte("cached"), got)
	})

	t.Run("miss downloads and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTestSyncOrchestrator(t, ctrl)

		require.NoError(t, f.cache.SaveItem(ctx, models.CachedItem{Item: models.Item{ID: "i", CreatedAt: 1}}))
		up, err := f.server.uploadFile(ctx, []byte("remote"))
		require.NoError(t, err)

		got, err := f.orch.DownloadFile(ctx, up.ID, up.BlobKey, "i", up.Size)
		require.NoError(t, err)
		assert.Equal(t, []byte("remote"), got)

		ok, err := f.cache.HasFile(ctx, up.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("size mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTestSyncOrchestrator(t, ctrl)

		up, err := f.server.uploadFile(ctx, []byte("short"))
		require.NoError(t, err)

		_, err = f.orch.DownloadFile(ctx, up.ID, up.BlobKey, "i", 1024)
		assert.ErrorIs(t, err, ErrFileSizeMismatch)
	})

	t.Run("miss while offline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTestSyncOrchestrator(t, ctrl)
		f.reach.set(false)

		_, err := f.orch.DownloadFile(ctx, "f", "b", "i", 0)
		assert.ErrorIs(t, err, ErrOffline)
	})
}

// ── Coalescing ──────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Sync_CoalescesConcurrentCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteClient(ctrl)
	entered := make(chan struct{})
	release := make(chan struct{})
	remote.EXPECT().FetchState(gomock.Any()).DoAndReturn(func(context.Context) (models.RemoteState, error) {
		close(entered)
		<-release
		return models.RemoteState{}, nil
	}).Times(1)

	orch := NewSyncOrchestrator(newTestCache(t), newTestSecrets(), remote, newReachability(true), 4, logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- orch.Sync(ctx)
	}()
	<-entered

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- orch.Sync(ctx)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

// ── Status ──────────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Subscribe_ReceivesLatestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestSyncOrchestrator(t, ctrl)

	ch, cancel := f.orch.Subscribe()
	defer cancel()

	require.NoError(t, f.orch.Sync(context.Background()))

	select {
	case st := <-ch:
		assert.Equal(t, models.SyncIdle, st.State)
	case <-time.After(time.Second):
		t.Fatal("no status published")
	}
}

// ── Sync: store failures ────────────────────────────────────────────────────

func TestSyncOrchestrator_Sync_StoreFailures(t *testing.T) {
	salt := "c2FsdA=="
	state := models.RemoteState{
		EncryptionSalt: &salt,
		EncryptionTest: &models.EncryptedPayload{Ciphertext: "c", IV: "iv", Version: 1},
		Items:          []models.Item{{ID: "a", CreatedAt: 1}},
	}

	tests := []struct {
		name    string
		prepare func(cache *mock.MockLocalCacheStore, secrets *mock.MockSecretStore)
		wantErr error
	}{
		{
			name: "pending mutations unreadable",
			prepare: func(cache *mock.MockLocalCacheStore, _ *mock.MockSecretStore) {
				cache.EXPECT().PendingMutations(gomock.Any()).Return(nil, store.ErrScanningRows)
			},
			wantErr: store.ErrScanningRows,
		},
		{
			name: "credentials not cached",
			prepare: func(cache *mock.MockLocalCacheStore, secrets *mock.MockSecretStore) {
				cache.EXPECT().PendingMutations(gomock.Any()).Return(nil, nil)
				secrets.EXPECT().Save(store.SecretEncryptionSalt, []byte(salt)).Return(errors.New("keyring locked"))
			},
		},
		{
			name: "reconcile fails",
			prepare: func(cache *mock.MockLocalCacheStore, secrets *mock.MockSecretStore) {
				cache.EXPECT().PendingMutations(gomock.Any()).Return(nil, nil)
				secrets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				cache.EXPECT().Reconcile(gomock.Any(), state.Items, gomock.Any(), gomock.Any()).
					Return(models.ReconcileReport{}, store.ErrCommitingTransaction)
			},
			wantErr: store.ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cache := mock.NewMockLocalCacheStore(ctrl)
			secrets := mock.NewMockSecretStore(ctrl)
			remote := mock.NewMockRemoteClient(ctrl)
			remote.EXPECT().FetchState(gomock.Any()).Return(state, nil).AnyTimes()
			cache.EXPECT().CountMutations(gomock.Any()).Return(0, nil).AnyTimes()
			tt.prepare(cache, secrets)

			orch := NewSyncOrchestrator(cache, secrets, remote, newReachability(true), 1, logger.Nop())

			err := orch.Sync(context.Background())
			require.ErrorIs(t, err, ErrSync)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, models.SyncError, orch.Status().State)
		})
	}
}
