package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

type httpAuthClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAuthClient constructs an HTTP/REST implementation of [AuthClient]
// talking to the server at address. A scheme-less address is treated as
// http.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAuthClient(address string, timeout time.Duration, logger *logger.Logger) (AuthClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid auth server address: %w", err)
	}

	return &httpAuthClient{
		client: utils.NewHTTPClient(baseURL, timeout),
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

func (h *httpAuthClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthClient] via POST /v1/users.
func (h *httpAuthClient) Register(ctx context.Context, email, password string) (models.CreateUserResponse, error) {
	var created models.CreateUserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.CredentialsRequest{Email: email, Password: password}).
		SetResult(&created).
		Post("/v1/users")
	if err != nil {
		return models.CreateUserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateUserResponse{}, err
	}

	return created, nil
}

// Login implements [AuthClient] via POST /v1/tokens.
func (h *httpAuthClient) Login(ctx context.Context, email, password string) (string, error) {
	var created models.CreateTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.CredentialsRequest{Email: email, Password: password}).
		SetResult(&created).
		Post("/v1/tokens")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if created.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(created.Token)
	h.logger.Debug().Str("email", email).Msg("logged in")

	return created.Token, nil
}

// Validate implements [AuthClient] via POST /v1/tokens/validate.
func (h *httpAuthClient) Validate(ctx context.Context, token string) (models.ValidateTokenResponse, error) {
	var identity models.ValidateTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ValidateTokenRequest{Token: token}).
		SetResult(&identity).
		Post("/v1/tokens/validate")
	if err != nil {
		return models.ValidateTokenResponse{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidateTokenResponse{}, err
	}

	return identity, nil
}

// Me implements [AuthClient] via GET /v1/users/me.
func (h *httpAuthClient) Me(ctx context.Context) (models.UserView, error) {
	var user models.UserView

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserView{}, err
	}

	resp, err := req.SetResult(&user).Get("/v1/users/me")
	if err != nil {
		return models.UserView{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return user, nil
}

// Logout implements [AuthClient] via DELETE /v1/tokens.
func (h *httpAuthClient) Logout(ctx context.Context) error {
	return h.revoke(ctx, "/v1/tokens")
}

// LogoutAll implements [AuthClient] via DELETE /v1/tokens/all.
func (h *httpAuthClient) LogoutAll(ctx context.Context) error {
	return h.revoke(ctx, "/v1/tokens/all")
}

func (h *httpAuthClient) revoke(ctx context.Context, path string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(path)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAuthClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
