// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/config"
	"github.com/MKhiriev/go-pad/internal/crypto"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/mock"
	"github.com/MKhiriev/go-pad/internal/store"
	"github.com/MKhiriev/go-pad/models"
)

const testIterations = 1000

// switchReachability is a Reachability the test flips by hand.
type switchReachability struct{ on atomic.Bool }

func newReachability(on bool) *switchReachability {
	r := &switchReachability{}
	r.on.Store(on)
	return r
}

func (r *switchReachability) Reachable() bool { return r.on.Load() }
func (r *switchReachability) set(on bool) { r.on.Store(on) }

func newTestCache(t *testing.T) store.LocalCacheStore {
	t.Helper()
	db, err := store.NewConnectSQLite(context.Background(), config.ClientDB{DSN: filepath.Join(t.TempDir(), "pad.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	c := store.NewLocalCacheStore(db, logger.Nop())
	t.Cleanup(func() { c.Close() })
	return c
}

func newTestSecrets() store.SecretStore {
	return store.NewKeyringSecretStore(keyring.NewArrayKeyring(nil))
}

func newTestCipher() crypto.CipherEngine {
	return crypto.NewCipherEngineWithIterations(testIterations)
}

// memServer is an in-memory account backing a MockRemoteClient. Individual
// operations can be made to fail through the fail* fields.
type memServer struct {
	mu    sync.Mutex
	salt  *string
	test  *models.EncryptedPayload
	items map[string]models.Item
	blobs map[string][]byte

	fetches atomic.Int64
	creates atomic.Int64
	deletes atomic.Int64

	failCreate error
	failDelete error
	failFetch  error
}

func newMemServer() *memServer {
	return &memServer{items: make(map[string]models.Item), blobs: make(map[string][]byte)}
}

// bind routes every RemoteClient call of m to the server.
func (srv *memServer) bind(m *mock.MockRemoteClient) {
	m.EXPECT().FetchState(gomock.Any()).DoAndReturn(srv.fetchState).AnyTimes()
	m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(srv.createItem).AnyTimes()
	m.EXPECT().DeleteItem(gomock.Any(), gomock.Any()).DoAndReturn(srv.deleteItem).AnyTimes()
	m.EXPECT().UploadFile(gomock.Any(), gomock.Any()).DoAndReturn(srv.uploadFile).AnyTimes()
	m.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).DoAndReturn(srv.downloadFile).AnyTimes()
	m.EXPECT().SetupEncryption(gomock.Any(), gomock.Any()).DoAndReturn(srv.setupEncryption).AnyTimes()
	m.EXPECT().SetToken(gomock.Any()).AnyTimes()
}

func (srv *memServer) fetchState(_ context.Context) (models.RemoteState, error) {
	srv.fetches.Add(1)
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.failFetch != nil {
		return models.RemoteState{}, srv.failFetch
	}
	items := make([]models.Item, 0, len(srv.items))
	for _, it := range srv.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return models.RemoteState{EncryptionSalt: srv.salt, EncryptionTest: srv.test, Items: items}, nil
}

func (srv *memServer) createItem(_ context.Context, item models.Item) error {
	srv.creates.Add(1)
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.failCreate != nil {
		return srv.failCreate
	}
	srv.items[item.ID] = item
	return nil
}

func (srv *memServer) deleteItem(_ context.Context, id string) error {
	srv.deletes.Add(1)
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.failDelete != nil {
		return srv.failDelete
	}
	delete(srv.items, id)
	return nil
}

func (srv *memServer) uploadFile(_ context.Context, blob []byte) (models.UploadedFile, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	key := fmt.Sprintf("blob-%d", len(srv.blobs)+1)
	srv.blobs[key] = append([]byte(nil), blob...)
	return models.UploadedFile{ID: "f-" + key, Size: int64(len(blob)), BlobKey: key}, nil
}

func (srv *memServer) downloadFile(_ context.Context, key string) ([]byte, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	b, ok := srv.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%w: blob %s", adapter.ErrNotFound, key)
	}
	return append([]byte(nil), b...), nil
}

func (srv *memServer) setupEncryption(_ context.Context, setup models.EncryptionSetup) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.salt != nil {
		return fmt.Errorf("%w: already set up", adapter.ErrConflict)
	}
	salt, test := setup.EncryptionSalt, setup.EncryptionTest
	srv.salt, srv.test = &salt, &test
	return nil
}

// seedAccount sets the server up for password with cipher, as if another
// device had run SetupEncryption.
func (srv *memServer) seedAccount(t *testing.T, cipher crypto.CipherEngine, password string) []byte {
	t.Helper()
	salt, err := cipher.GenerateSalt()
	require.NoError(t, err)
	key, err := cipher.DeriveKey(password, salt)
	require.NoError(t, err)
	test, err := cipher.CreateTestPayload(key)
	require.NoError(t, err)

	encoded := base64.StdEncoding.EncodeToString(salt)
	srv.mu.Lock()
	srv.salt, srv.test = &encoded, &test
	srv.mu.Unlock()
	return key
}

func (srv *memServer) itemIDs() []string {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	ids := make([]string, 0, len(srv.items))
	for id := range srv.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (srv *memServer) put(item models.Item) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.items[item.ID] = item
}

func (srv *memServer) setFailures(create, del, fetch error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.failCreate, srv.failDelete, srv.failFetch = create, del, fetch
}
