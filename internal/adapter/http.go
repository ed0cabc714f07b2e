package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/internal/utils"
	"github.com/akwaabahomes/passcheck/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] rooted at adapterCfg.HTTPAddress. An address without a
// scheme is treated as http.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchPolicy implements [ServerAdapter] with GET /api/password/policy.
func (h *httpServerAdapter) FetchPolicy(ctx context.Context) (strength.Policy, error) {
	var policy strength.Policy

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&policy).
		Get("/api/password/policy")
	if err != nil {
		return strength.Policy{}, fmt.Errorf("fetch policy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return strength.Policy{}, err
	}

	return policy, nil
}

// Evaluate implements [ServerAdapter] with POST /api/password/strength.
func (h *httpServerAdapter) Evaluate(ctx context.Context, req models.EvaluateRequest) (models.EvaluateResponse, error) {
	var result models.EvaluateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/password/strength")
	if err != nil {
		return models.EvaluateResponse{}, fmt.Errorf("evaluate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EvaluateResponse{}, err
	}

	return result, nil
}

// Generate implements [ServerAdapter] with POST /api/password/generate.
func (h *httpServerAdapter) Generate(ctx context.Context, length int) (models.GenerateResponse, error) {
	var generated models.GenerateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.GenerateRequest{Length: length}).
		SetResult(&generated).
		Post("/api/password/generate")
	if err != nil {
		return models.GenerateResponse{}, fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GenerateResponse{}, err
	}

	return generated, nil
}

// Register implements [ServerAdapter] with POST /api/user/register. The
// bearer token is taken from the Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Info().Str("login", req.Login).Msg("registered")
	return nil
}

// Login implements [ServerAdapter] with POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Info().Str("login", req.Login).Bool("password_expired", loginResp.PasswordExpired).Msg("logged in")
	return loginResp, nil
}

// ChangePassword implements [ServerAdapter] with PUT /api/user/password.
// It fails with ErrNotLoggedIn when no token has been stored.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if h.Token() == "" {
		return ErrNotLoggedIn
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/user/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter] with GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
