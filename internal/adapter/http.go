package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/gophervault/vaultsync/internal/config"
	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/models"
)

type httpSyncClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSyncClient constructs an HTTP/REST implementation of [SyncClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPSyncClient(cfg config.Sync, log *logger.Logger) (SyncClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sync base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpSyncClient{client: client, logger: log}, nil
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

// SetToken implements [SyncClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpSyncClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SyncClient].
func (h *httpSyncClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpSyncClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// FetchSnapshot implements [SyncClient]. It issues GET /api/sync and decodes
// the server's full state for userID.
func (h *httpSyncClient) FetchSnapshot(ctx context.Context, userID string) (models.SyncSnapshot, error) {
	var snapshot models.SyncSnapshot

	resp, err := h.request(ctx).
		SetQueryParam("userId", userID).
		SetResult(&snapshot).
		Get("/api/sync")
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("fetch snapshot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncSnapshot{}, err
	}

	h.logger.Debug().
		Str("func", "FetchSnapshot").
		Int("items", len(snapshot.Items)).
		Int("folders", len(snapshot.Folders)).
		Msg("snapshot received")

	return snapshot, nil
}

// PushItem implements [SyncClient]. It PUTs the encrypted item to
// PUT /api/ciphers/{id}.
func (h *httpSyncClient) PushItem(ctx context.Context, item models.Item) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put("/api/ciphers/" + url.PathEscape(item.ID))
	if err != nil {
		return fmt.Errorf("push item request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteItem implements [SyncClient]. It issues DELETE /api/ciphers/{id}.
func (h *httpSyncClient) DeleteItem(ctx context.Context, userID, id string) error {
	resp, err := h.request(ctx).
		SetQueryParam("userId", userID).
		Delete("/api/ciphers/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return mapHTTPError(resp)
}

// PushFolder implements [SyncClient]. It PUTs the folder to
// PUT /api/folders/{id}.
func (h *httpSyncClient) PushFolder(ctx context.Context, folder models.Folder) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(folder).
		Put("/api/folders/" + url.PathEscape(folder.ID))
	if err != nil {
		return fmt.Errorf("push folder request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteFolder implements [SyncClient]. It issues DELETE /api/folders/{id}.
func (h *httpSyncClient) DeleteFolder(ctx context.Context, userID, id string) error {
	resp, err := h.request(ctx).
		SetQueryParam("userId", userID).
		Delete("/api/folders/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete folder request: %w", err)
	}
	return mapHTTPError(resp)
}
