// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/crypto"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/store"
	"github.com/MKhiriev/go-pad/internal/utils"
	"github.com/MKhiriev/go-pad/models"
)

type session struct {
	cache   store.LocalCacheStore
	secrets store.SecretStore
	remote  adapter.RemoteClient
	cipher  crypto.CipherEngine
	orch    SyncOrchestrator
	online  Reachability
	ids     *utils.IDGenerator
	logger  *logger.Logger
	now     func() time.Time

	// writeMu orders store writes against projection rebuilds so a rebuild
	// never publishes a snapshot older than an already spliced change.
	writeMu sync.Mutex

	mu    sync.RWMutex
	key   []byte
	items []models.DisplayItem

	projections *broadcaster[[]models.DisplayItem]

	bgCtx    context.Context
	bgCancel context.CancelFunc
	// bgMu guards syncs.Add against Wait.
	bgMu    sync.Mutex
	closed  bool
	syncs   sync.WaitGroup
	watcher sync.WaitGroup
}

// NewSession builds the facade and starts watching orchestrator statuses so
// the projection is rebuilt after every successful sync cycle.
func NewSession(
	cache store.LocalCacheStore,
	secrets store.SecretStore,
	remote adapter.RemoteClient,
	cipher crypto.CipherEngine,
	orchestrator SyncOrchestrator,
	online Reachability,
	logger *logger.Logger,
) Session {
	bgCtx, cancel := context.WithCancel(logger.WithContext(context.Background()))
	s := &session{
		cache:       cache,
		secrets:     secrets,
		remote:      remote,
		cipher:      cipher,
		orch:        orchestrator,
		online:      online,
		ids:         utils.NewIDGenerator(),
		logger:      logger,
		now:         time.Now,
		projections: newBroadcaster[[]models.DisplayItem](),
		bgCtx:       bgCtx,
		bgCancel:    cancel,
	}
	s.watchSync()
	return s
}

// ── Key management ──────────────────────────────────────────────────────────

func (s *session) Unlock(ctx context.Context, password string) (bool, error) {
	cached, err := loadCredentials(s.secrets)
	switch {
	case err == nil:
		key, derr := s.cipher.DeriveKey(password, cached.Salt)
		if derr != nil {
			return false, derr
		}
		if s.cipher.VerifyKey(key, cached.Test) {
			return true, s.unlockWith(ctx, key)
		}
		if !s.online.Reachable() {
			return false, nil
		}
		s.logger.Debug().Msg("cached credentials rejected the password, checking the server")
		return s.unlockRemote(ctx, password, cached.Salt, key)

	case errors.Is(err, store.ErrSecretNotFound):
		if !s.online.Reachable() {
			return false, ErrOfflineNoCredential
		}
		return s.unlockRemote(ctx, password, nil, nil)

	default:
		return false, fmt.Errorf("load cached credentials: %w", err)
	}
}

// unlockRemote verifies password against the server's credentials. When the
// remote salt equals triedSalt, triedKey is reused instead of derived again.
func (s *session) unlockRemote(ctx context.Context, password string, triedSalt, triedKey []byte) (bool, error) {
	state, err := s.remote.FetchState(ctx)
	if err != nil {
		return false, fmt.Errorf("fetch credentials: %w", mapAdapterError(err))
	}
	creds, ok, err := credentialsFromState(state)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrEncryptionNotSetUp
	}

	key := triedKey
	if key == nil || !bytes.Equal(creds.Salt, triedSalt) {
		if key, err = s.cipher.DeriveKey(password, creds.Salt); err != nil {
			return false, err
		}
	}
	if !s.cipher.VerifyKey(key, creds.Test) {
		return false, nil
	}

	if err = saveCredentials(s.secrets, creds); err != nil {
		return false, fmt.Errorf("cache credentials: %w", err)
	}
	return true, s.unlockWith(ctx, key)
}

func (s *session) SetupEncryption(ctx context.Context, password string) error {
	if !s.online.Reachable() {
		return ErrOffline
	}

	state, err := s.remote.FetchState(ctx)
	if err != nil {
		return fmt.Errorf("fetch state: %w", mapAdapterError(err))
	}
	if _, ok, _ := credentialsFromState(state); ok {
		return ErrEncryptionAlreadySetUp
	}

	salt, err := s.cipher.GenerateSalt()
	if err != nil {
		return err
	}
	key, err := s.cipher.DeriveKey(password, salt)
	if err != nil {
		return err
	}
	test, err := s.cipher.CreateTestPayload(key)
	if err != nil {
		return err
	}

	err = s.remote.SetupEncryption(ctx, models.EncryptionSetup{
		EncryptionSalt: base64.StdEncoding.EncodeToString(salt),
		EncryptionTest: test,
	})
	if errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("%w: %w", ErrEncryptionAlreadySetUp, err)
	}
	if err != nil {
		return fmt.Errorf("register encryption: %w", mapAdapterError(err))
	}

	if err = saveCredentials(s.secrets, credentials{Salt: salt, Test: test}); err != nil {
		return fmt.Errorf("cache credentials: %w", err)
	}
	return s.unlockWith(ctx, key)
}

func (s *session) unlockWith(ctx context.Context, key []byte) error {
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()

	s.logger.Info().Msg("pad unlocked")
	if err := s.rebuild(ctx); err != nil {
		return err
	}
	s.syncInBackground()
	return nil
}

func (s *session) Lock() {
	s.mu.Lock()
	s.key = nil
	s.items = nil
	s.mu.Unlock()

	s.projections.publish(nil)
}

func (s *session) IsUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

func (s *session) currentKey() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, ErrLocked
	}
	return s.key, nil
}

// ── Items ───────────────────────────────────────────────────────────────────

func (s *session) AddItem(ctx context.Context, text string) (models.DisplayItem, error) {
	return s.AddItemWithFiles(ctx, text, nil)
}

func (s *session) AddItemWithFiles(ctx context.Context, text string, files []models.NewFile) (models.DisplayItem, error) {
	key, err := s.currentKey()
	if err != nil {
		return models.DisplayItem{}, err
	}
	if len(files) > 0 && !s.online.Reachable() {
		return models.DisplayItem{}, ErrOffline
	}

	attachments := make([]models.FileAttachment, 0, len(files))
	displayFiles := make([]models.DisplayFile, 0, len(files))
	for _, f := range files {
		att, err := s.uploadWithKey(ctx, key, f)
		if err != nil {
			return models.DisplayItem{}, err
		}
		attachments = append(attachments, att)
		displayFiles = append(displayFiles, models.DisplayFile{
			ID:      att.ID,
			Name:    f.Name,
			Type:    f.Type,
			Size:    att.Size,
			BlobKey: att.BlobKey,
		})
	}

	encText, err := s.cipher.EncryptText(text, key)
	if err != nil {
		return models.DisplayItem{}, err
	}

	now := s.now().UnixMilli()
	item := models.Item{
		ID:            s.ids.ItemID(),
		EncryptedText: encText,
		Files:         attachments,
		CreatedAt:     now,
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return models.DisplayItem{}, fmt.Errorf("encode item: %w", err)
	}
	mutation := models.PendingMutation{
		ID:        s.ids.MutationID(),
		Kind:      models.MutationCreate,
		ItemID:    item.ID,
		Payload:   payload,
		CreatedAt: now,
	}
	display := models.DisplayItem{
		ID:            item.ID,
		Text:          text,
		Files:         displayFiles,
		CreatedAt:     now,
		IsPendingSync: true,
	}

	s.writeMu.Lock()
	s.splice(func(items []models.DisplayItem) []models.DisplayItem {
		return append([]models.DisplayItem{display}, items...)
	})
	err = s.cache.AddLocalItem(ctx, models.CachedItem{Item: item, UpdatedAt: now, IsPendingSync: true}, mutation)
	if err != nil {
		s.splice(func(items []models.DisplayItem) []models.DisplayItem {
			out, _ := removeDisplayItem(items, item.ID)
			return out
		})
	}
	s.writeMu.Unlock()
	if err != nil {
		return models.DisplayItem{}, fmt.Errorf("queue new item: %w", err)
	}

	s.syncInBackground()
	return display, nil
}

func (s *session) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.currentKey(); err != nil {
		return err
	}

	mutation := models.PendingMutation{
		ID:        s.ids.MutationID(),
		Kind:      models.MutationDelete,
		ItemID:    id,
		CreatedAt: s.now().UnixMilli(),
	}

	s.writeMu.Lock()
	var (
		removed models.DisplayItem
		index   = -1
	)
	s.splice(func(items []models.DisplayItem) []models.DisplayItem {
		out, i := removeDisplayItem(items, id)
		if i >= 0 {
			removed, index = items[i], i
		}
		return out
	})
	err := s.cache.DeleteLocalItem(ctx, id, mutation)
	if err != nil && index >= 0 {
		s.splice(func(items []models.DisplayItem) []models.DisplayItem {
			return insertDisplayItem(items, index, removed)
		})
	}
	s.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("queue delete of %s: %w", id, err)
	}

	s.syncInBackground()
	return nil
}

// Refresh syncs and rebuilds the projection from the cache. The rebuild runs
// even when the sync fails; the sync error is returned alongside.
func (s *session) Refresh(ctx context.Context) error {
	if _, err := s.currentKey(); err != nil {
		return err
	}
	syncErr := s.orch.Sync(ctx)
	return errors.Join(syncErr, s.rebuild(ctx))
}

func (s *session) Items() []models.DisplayItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDisplayItems(s.items)
}

func (s *session) Subscribe() (<-chan []models.DisplayItem, func()) {
	return s.projections.subscribe()
}

// rebuild decrypts every cached item into a fresh projection. Items that
// fail to decrypt are skipped.
func (s *session) rebuild(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	key, err := s.currentKey()
	if err != nil {
		return err
	}

	cached, err := s.cache.GetAllItems(ctx)
	if err != nil {
		return fmt.Errorf("load cached items: %w", err)
	}

	items := make([]models.DisplayItem, 0, len(cached))
	for _, c := range cached {
		d, err := s.decryptItem(c, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("item_id", c.ID).Msg("skipping undecryptable item")
			continue
		}
		items = append(items, d)
	}

	s.mu.Lock()
	if !bytes.Equal(s.key, key) {
		// locked or re-keyed meanwhile
		s.mu.Unlock()
		return nil
	}
	s.items = items
	s.mu.Unlock()

	s.projections.publish(cloneDisplayItems(items))
	return nil
}

func (s *session) decryptItem(c models.CachedItem, key []byte) (models.DisplayItem, error) {
	text, err := s.cipher.DecryptText(c.EncryptedText, key)
	if err != nil {
		return models.DisplayItem{}, fmt.Errorf("text: %w", err)
	}

	files := make([]models.DisplayFile, 0, len(c.Files))
	for _, f := range c.Files {
		name, err := s.cipher.DecryptText(f.EncryptedName, key)
		if err != nil {
			return models.DisplayItem{}, fmt.Errorf("file %s name: %w", f.ID, err)
		}
		typ, err := s.cipher.DecryptText(f.EncryptedType, key)
		if err != nil {
			return models.DisplayItem{}, fmt.Errorf("file %s type: %w", f.ID, err)
		}
		files = append(files, models.DisplayFile{ID: f.ID, Name: name, Type: typ, Size: f.Size, BlobKey: f.BlobKey})
	}

	return models.DisplayItem{
		ID:            c.ID,
		Text:          text,
		Files:         files,
		CreatedAt:     c.CreatedAt,
		IsPendingSync: c.IsPendingSync,
	}, nil
}

// splice applies fn to the projection under the lock and publishes the result.
func (s *session) splice(fn func([]models.DisplayItem) []models.DisplayItem) {
	s.mu.Lock()
	if s.key == nil {
		s.mu.Unlock()
		return
	}
	s.items = fn(s.items)
	snapshot := cloneDisplayItems(s.items)
	s.mu.Unlock()

	s.projections.publish(snapshot)
}

// ── Files ───────────────────────────────────────────────────────────────────

func (s *session) DownloadFile(ctx context.Context, file models.DisplayFile, itemID string) ([]byte, error) {
	key, err := s.currentKey()
	if err != nil {
		return nil, err
	}
	blob, err := s.orch.DownloadFile(ctx, file.ID, file.BlobKey, itemID, file.Size)
	if err != nil {
		return nil, err
	}
	return s.cipher.DecryptBytes(blob, key)
}

func (s *session) UploadFile(ctx context.Context, file models.NewFile) (models.FileAttachment, error) {
	key, err := s.currentKey()
	if err != nil {
		return models.FileAttachment{}, err
	}
	if !s.online.Reachable() {
		return models.FileAttachment{}, ErrOffline
	}
	return s.uploadWithKey(ctx, key, file)
}

func (s *session) uploadWithKey(ctx context.Context, key []byte, file models.NewFile) (models.FileAttachment, error) {
	blob, err := s.cipher.EncryptBytes(file.Data, key)
	if err != nil {
		return models.FileAttachment{}, err
	}
	encName, err := s.cipher.EncryptText(file.Name, key)
	if err != nil {
		return models.FileAttachment{}, err
	}
	encType, err := s.cipher.EncryptText(file.Type, key)
	if err != nil {
		return models.FileAttachment{}, err
	}

	uploaded, err := s.remote.UploadFile(ctx, blob)
	if err != nil {
		return models.FileAttachment{}, fmt.Errorf("upload %q: %w", file.Name, mapAdapterError(err))
	}

	id := uploaded.ID
	if id == "" {
		id = s.ids.ItemID()
	}
	return models.FileAttachment{
		ID:            id,
		EncryptedName: encName,
		EncryptedType: encType,
		Size:          int64(len(blob)),
		BlobKey:       uploaded.BlobKey,
	}, nil
}

// ── Lifecycle ───────────────────────────────────────────────────────────────

// SignOut drops the token first so no new cycle can reach the server, waits
// for the cycle in flight, then wipes the cache and cached credentials.
func (s *session) SignOut(ctx context.Context) error {
	s.remote.SetToken("")
	s.Lock()
	s.waitBackgroundSyncs()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err := s.orch.Exclusive(func() error {
		return errors.Join(
			s.cache.Clear(ctx),
			deleteCredentials(s.secrets),
			s.secrets.Delete(store.SecretAuthToken),
		)
	})
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	s.logger.Info().Msg("signed out")
	return nil
}

// Close lets in-flight background syncs finish, then stops the projection
// watcher. The session must not be used afterwards.
func (s *session) Close() {
	s.bgMu.Lock()
	s.closed = true
	s.bgMu.Unlock()

	s.syncs.Wait()
	s.bgCancel()
	s.watcher.Wait()
	s.projections.closeAll()
}

func (s *session) syncInBackground() {
	if !s.online.Reachable() {
		return
	}

	s.bgMu.Lock()
	defer s.bgMu.Unlock()
	if s.closed {
		return
	}
	s.syncs.Add(1)
	go func() {
		defer s.syncs.Done()
		if err := s.orch.Sync(s.bgCtx); err != nil && !errors.Is(err, ErrOffline) {
			s.logger.Warn().Err(err).Msg("background sync failed")
		}
	}()
}

// waitBackgroundSyncs blocks until every background sync started so far has
// returned. New ones cannot start while it waits.
func (s *session) waitBackgroundSyncs() {
	s.bgMu.Lock()
	defer s.bgMu.Unlock()
	s.syncs.Wait()
}

// watchSync rebuilds the projection whenever a sync cycle completes.
func (s *session) watchSync() {
	statuses, unsubscribe := s.orch.Subscribe()
	s.watcher.Add(1)
	go func() {
		defer s.watcher.Done()
		defer unsubscribe()

		var last time.Time
		for {
			select {
			case <-s.bgCtx.Done():
				return
			case st, ok := <-statuses:
				if !ok {
					return
				}
				if st.LastSyncAt.Equal(last) || st.State == models.SyncSyncing {
					continue
				}
				last = st.LastSyncAt
				if err := s.rebuild(s.bgCtx); err != nil && !errors.Is(err, ErrLocked) {
					s.logger.Warn().Err(err).Msg("rebuild after sync")
				}
			}
		}
	}()
}

func removeDisplayItem(items []models.DisplayItem, id string) ([]models.DisplayItem, int) {
	for i := range items {
		if items[i].ID == id {
			out := make([]models.DisplayItem, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), i
		}
	}
	return items, -1
}

func insertDisplayItem(items []models.DisplayItem, index int, item models.DisplayItem) []models.DisplayItem {
	if index > len(items) {
		index = len(items)
	}
	out := make([]models.DisplayItem, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	return append(out, items[index:]...)
}

func cloneDisplayItems(items []models.DisplayItem) []models.DisplayItem {
	if items == nil {
		return nil
	}
	out := make([]models.DisplayItem, len(items))
	for i, it := range items {
		it.Files = append([]models.DisplayFile(nil), it.Files...)
		out[i] = it
	}
	return out
}
