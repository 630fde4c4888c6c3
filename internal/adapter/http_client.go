package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the resty-backed relay adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRelayAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPRelayAdapter constructs a [RelayAdapter] speaking the relay's REST
// protocol.
func NewHTTPRelayAdapter(cfg HTTPClientConfig) RelayAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRelayAdapter{client: cli}
}

func (h *httpRelayAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRelayAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRelayAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(token)
	return created, nil
}

func (h *httpRelayAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	var found models.User
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(token)
	return found, nil
}

func (h *httpRelayAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	req.Length = len(req.Items)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var out models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}
	return out, nil
}

func (h *httpRelayAdapter) Fetch(ctx context.Context, req models.FetchRequest) (models.FetchResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/fetch")
	if err != nil {
		return models.FetchResponse{}, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FetchResponse{}, err
	}

	var out models.FetchResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.FetchResponse{}, fmt.Errorf("decode fetch response: %w", err)
	}
	return out, nil
}

func (h *httpRelayAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
