// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pad/models"
)

const testPassword = "correct horse battery staple"

// padServer is an in-memory Pad server behind a chi router. While down is
// set every request answers 503.
type padServer struct {
	mu    sync.Mutex
	items map[string]models.Item
	blobs map[string][]byte
	salt  *string
	test  *models.EncryptedPayload

	down atomic.Bool
}

func newPadServer(t *testing.T) (*padServer, string) {
	s := &padServer{items: make(map[string]models.Item), blobs: make(map[string][]byte)}
	ts := httptest.NewServer(s.router())
	t.Cleanup(ts.Close)
	return s, ts.URL
}

func (s *padServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if s.down.Load() {
				http.Error(w, "maintenance", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/api/state", func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		state := models.RemoteState{EncryptionSalt: s.salt, EncryptionTest: s.test, Items: []models.Item{}}
		for _, it := range s.items {
			state.Items = append(state.Items, it)
		}
		writeJSON(w, http.StatusOK, state)
	})
	r.Post("/api/items", func(w http.ResponseWriter, req *http.Request) {
		var item models.Item
		if err := json.NewDecoder(req.Body).Decode(&item); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.items[item.ID] = item
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	r.Delete("/api/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		delete(s.items, chi.URLParam(req, "id"))
		s.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/api/files", func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		s.mu.Lock()
		key := fmt.Sprintf("blob%d", len(s.blobs)+1)
		s.blobs[key] = body
		s.mu.Unlock()
		writeJSON(w, http.StatusCreated, models.UploadedFile{ID: key, Size: int64(len(body)), BlobKey: key})
	})
	r.Get("/api/files/{blobKey}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		blob, ok := s.blobs[chi.URLParam(req, "blobKey")]
		s.mu.Unlock()
		if !ok {
			http.Error(w, "no such blob", http.StatusNotFound)
			return
		}
		_, _ = w.Write(blob)
	})
	r.Put("/api/encryption", func(w http.ResponseWriter, req *http.Request) {
		var setup models.EncryptionSetup
		if err := json.NewDecoder(req.Body).Decode(&setup); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.salt != nil {
			http.Error(w, "already set up", http.StatusConflict)
			return
		}
		s.salt, s.test = &setup.EncryptionSalt, &setup.EncryptionTest
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func (s *padServer) itemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// scriptedPasswords answers prompts from a list, repeating the last entry.
type scriptedPasswords struct {
	mu      sync.Mutex
	answers []string
}

func (p *scriptedPasswords) ReadPassword(string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.answers[0]
	if len(p.answers) > 1 {
		p.answers = p.answers[1:]
	}
	return v, nil
}

type memClipboard struct{ text string }

func (c *memClipboard) ReadAll() (string, error)   { return c.text, nil }
func (c *memClipboard) WriteAll(text string) error { c.text = text; return nil }

type cliHarness struct {
	t         *testing.T
	server    *padServer
	url       string
	dataDir   string
	clipboard *memClipboard
	password  string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Setenv("STORAGE_SECRETS_FILE_PASSWORD", "keyring-pass")
	t.Setenv("APP_KDF_ITERATIONS", "1000")

	srv, url := newPadServer(t)
	return &cliHarness{
		t:         t,
		server:    srv,
		url:       url,
		dataDir:   t.TempDir(),
		clipboard: &memClipboard{},
		password:  testPassword,
	}
}

func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()
	return h.runWith(&scriptedPasswords{answers: []string{h.password}}, "", args...)
}

func (h *cliHarness) runWith(passwords PasswordReader, stdin string, args ...string) (string, error) {
	h.t.Helper()
	cli := &CLI{passwords: passwords, clipboard: h.clipboard}
	root := cli.rootCommand()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{
		"--server", h.url,
		"--data-dir", h.dataDir,
		"--secrets-backend", "file",
	}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "pad %v", args)
	return out
}

// ── Flows ───────────────────────────────────────────────────────────────────

func TestCLI_SetupAddListRemove(t *testing.T) {
	h := newCLIHarness(t)

	assert.Contains(t, h.mustRun("setup"), "encryption set up")
	assert.Contains(t, h.mustRun("list"), "no items")

	id := strings.TrimSpace(h.mustRun("add", "buy", "milk"))
	require.NotEmpty(t, id)
	assert.Equal(t, 1, h.server.itemCount(), "add syncs before exit")

	list := h.mustRun("list")
	assert.Contains(t, list, id)
	assert.Contains(t, list, "buy milk")

	assert.Equal(t, "buy milk\n", h.mustRun("show", id[:6]))

	assert.Contains(t, h.mustRun("rm", id), "deleted")
	assert.Zero(t, h.server.itemCount())
	assert.Contains(t, h.mustRun("list"), "no items")
}

func TestCLI_AddFromStdin(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("setup")

	out, err := h.runWith(&scriptedPasswords{answers: []string{testPassword}}, "line one\nline two\n", "add")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	assert.Equal(t, "line one\nline two\n", h.mustRun("show", id))
}

func TestCLI_WrongPassword(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("setup")

	h.password = "nope"
	_, err := h.run("list")
	assert.ErrorIs(t, err, errWrongPassword)
}

func TestCLI_SetupPasswordMismatch(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.runWith(&scriptedPasswords{answers: []string{"one", "two"}}, "", "setup")
	assert.ErrorIs(t, err, errPasswordMismatch)
	assert.Nil(t, h.server.salt)
}

func TestCLI_OfflineAddThenSync(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("setup")

	h.server.down.Store(true)
	id := strings.TrimSpace(h.mustRun("add", "written offline"))
	assert.Zero(t, h.server.itemCount())

	status := h.mustRun("status")
	assert.Contains(t, status, "server: unreachable")
	assert.Contains(t, status, "queued changes: 1")

	list := h.mustRun("list")
	assert.Contains(t, list, "* "+id, "pending items are marked")

	h.server.down.Store(false)
	assert.Contains(t, h.mustRun("sync"), "sync: idle")
	assert.Equal(t, 1, h.server.itemCount())
	assert.Contains(t, h.mustRun("status"), "queued changes: 0")
}

func TestCLI_PasteAndCopy(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("setup")

	h.clipboard.text = "from the clipboard"
	id := strings.TrimSpace(h.mustRun("paste"))

	h.clipboard.text = ""
	assert.Contains(t, h.mustRun("copy", id), "copied")
	assert.Equal(t, "from the clipboard", h.clipboard.text)
}

func TestCLI_AddFileAndGetFile(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("setup")

	src := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(src, []byte("quarterly numbers"), 0o600))

	id := strings.TrimSpace(h.mustRun("add-file", src, "--text", "q3 report"))
	list := h.mustRun("list")
	assert.Contains(t, list, "q3 report")
	assert.Contains(t, list, "report.txt")

	dst := filepath.Join(t.TempDir(), "out.txt")
	h.mustRun("get-file", id, "report.txt", "-o", dst)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "quarterly numbers", string(got))

	assert.Equal(t, "quarterly numbers", h.mustRun("get-file", id, "report.txt", "-o", "-"))
}

func TestCLI_LoginAndSignOut(t *testing.T) {
	h := newCLIHarness(t)

	assert.Contains(t, h.mustRun("status"), "token: none")
	assert.Contains(t, h.mustRun("login", "--token", "opaque-token"), "token saved")
	assert.Contains(t, h.mustRun("status"), "token: ok")
	assert.Contains(t, h.mustRun("login", "--token", "Bearer header-token"), "token saved")
	_, err := h.run("login", "--token", "Basic a b")
	assert.Error(t, err)

	h.mustRun("setup")
	h.mustRun("add", "short lived")

	assert.Contains(t, h.mustRun("signout"), "signed out")
	assert.Contains(t, h.mustRun("status"), "token: none")

	// nothing cached: unlocking needs the server again
	h.server.down.Store(true)
	_, err = h.run("list")
	assert.Error(t, err)
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func TestFindItem(t *testing.T) {
	items := []models.DisplayItem{{ID: "abc123"}, {ID: "abd456"}, {ID: "xyz"}}

	got, err := findItem(items, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.ID)

	got, err = findItem(items, "x")
	require.NoError(t, err)
	assert.Equal(t, "xyz", got.ID)

	_, err = findItem(items, "ab")
	assert.ErrorIs(t, err, errAmbiguousItem)

	_, err = findItem(items, "q")
	assert.ErrorIs(t, err, errItemNotFound)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", firstLine("one", 10))
	assert.Equal(t, "one …", firstLine("one\ntwo", 10))
	assert.Equal(t, "abc…", firstLine("abcdef", 3))
}
