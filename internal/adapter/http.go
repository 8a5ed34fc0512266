package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pad/internal/config"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/utils"
	"github.com/MKhiriev/go-pad/models"
)

const tokenLeeway = 30 * time.Second

type httpRemoteClient struct {
	client *utils.HTTPClient
	signer *utils.Signer

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteClient constructs an HTTP/REST implementation of [RemoteClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the request timeout. Request bodies are signed when
// appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signer: utils.NewSigner(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteClient) TokenExpired() bool {
	token := h.Token()
	if token == "" {
		return false
	}
	return utils.TokenExpired(token, time.Now(), tokenLeeway)
}

// FetchState implements [RemoteClient] via GET /api/state.
func (h *httpRemoteClient) FetchState(ctx context.Context) (models.RemoteState, error) {
	resp, err := h.authedRequest(ctx).Get("/api/state")
	if err != nil {
		return models.RemoteState{}, wrapTransportError("fetch state", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteState{}, err
	}

	var state models.RemoteState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.RemoteState{}, fmt.Errorf("%w: decode state: %w", ErrUnexpectedResponse, err)
	}

	return state, nil
}

// CreateItem implements [RemoteClient] via POST /api/items.
func (h *httpRemoteClient) CreateItem(ctx context.Context, item models.Item) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	resp, err := h.signedRequest(ctx, body).
		SetHeader("Content-Type", "application/json").
		Post("/api/items")
	if err != nil {
		return wrapTransportError("create item", err)
	}

	return mapHTTPError(resp)
}

// DeleteItem implements [RemoteClient] via DELETE /api/items/{id}. A 404
// means the item is already gone.
func (h *httpRemoteClient) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/items/{id}")
	if err != nil {
		return wrapTransportError("delete item", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if !isNotFound(resp) {
			return err
		}
		h.logger.Debug().Str("func", "httpRemoteClient.DeleteItem").Str("item_id", id).Msg("item already deleted on server")
	}

	return nil
}

// UploadFile implements [RemoteClient] via POST /api/files.
func (h *httpRemoteClient) UploadFile(ctx context.Context, encrypted []byte) (models.UploadedFile, error) {
	resp, err := h.signedRequest(ctx, encrypted).
		SetHeader("Content-Type", "application/octet-stream").
		Post("/api/files")
	if err != nil {
		return models.UploadedFile{}, wrapTransportError("upload file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadedFile{}, err
	}

	var uploaded models.UploadedFile
	if err = json.Unmarshal(resp.Body(), &uploaded); err != nil {
		return models.UploadedFile{}, fmt.Errorf("%w: decode upload: %w", ErrUnexpectedResponse, err)
	}
	if uploaded.BlobKey == "" {
		return models.UploadedFile{}, fmt.Errorf("%w: upload returned no blob key", ErrUnexpectedResponse)
	}

	return uploaded, nil
}

// DownloadFile implements [RemoteClient] via GET /api/files/{blobKey}.
func (h *httpRemoteClient) DownloadFile(ctx context.Context, blobKey string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("blobKey", blobKey).
		Get("/api/files/{blobKey}")
	if err != nil {
		return nil, wrapTransportError("download file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// SetupEncryption implements [RemoteClient] via PUT /api/encryption.
func (h *httpRemoteClient) SetupEncryption(ctx context.Context, setup models.EncryptionSetup) error {
	body, err := json.Marshal(setup)
	if err != nil {
		return fmt.Errorf("encode encryption setup: %w", err)
	}

	resp, err := h.signedRequest(ctx, body).
		SetHeader("Content-Type", "application/json").
		Put("/api/encryption")
	if err != nil {
		return wrapTransportError("setup encryption", err)
	}

	return mapHTTPError(resp)
}

// Ping implements [RemoteClient] via GET /api/health.
func (h *httpRemoteClient) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return wrapTransportError("ping", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpRemoteClient) signedRequest(ctx context.Context, body []byte) *resty.Request {
	req := h.authedRequest(ctx).SetBody(body)
	if h.signer.Enabled() {
		req.SetHeader(utils.HashHeader, h.signer.Sign(body))
	}
	return req
}

func isNotFound(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusNotFound
}
