package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
)

type httpIdentityClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPIdentityClient constructs the REST implementation of
// [IdentityClient]. address may omit the scheme, in which case http is
// assumed.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPIdentityClient(address string, requestTimeout time.Duration, logger *logger.Logger) (IdentityClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid identity api address: %w", err)
	}

	return &httpIdentityClient{
		client: utils.NewHTTPClient(baseURL, requestTimeout),
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

func (h *httpIdentityClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpIdentityClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpIdentityClient) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Result, nil
}

func (h *httpIdentityClient) SignIn(ctx context.Context, req models.SignInRequest) (string, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/signin")
	if err != nil {
		return "", fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

func (h *httpIdentityClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	return h.userRequest(ctx, http.MethodPut, "/profile", req, nil)
}

func (h *httpIdentityClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.User, error) {
	return h.userRequest(ctx, http.MethodPut, "/change-password", req, nil)
}

func (h *httpIdentityClient) DeleteUser(ctx context.Context) (models.User, error) {
	user, err := h.userRequest(ctx, http.MethodDelete, "/delete-user", nil, nil)
	if err != nil {
		return models.User{}, err
	}

	h.SetToken("")
	return user, nil
}

func (h *httpIdentityClient) AddFavorite(ctx context.Context, itemID string) (models.User, error) {
	return h.userRequest(ctx, http.MethodPost, "/favorites/add", models.FavoriteRequest{ItemID: itemID}, nil)
}

func (h *httpIdentityClient) RemoveFavorite(ctx context.Context, itemID string) (models.User, error) {
	return h.userRequest(ctx, http.MethodDelete, "/favorites/remove/{itemId}", nil, map[string]string{"itemId": itemID})
}

func (h *httpIdentityClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// userRequest sends an authenticated request whose success body is a
// [models.UserResponse].
func (h *httpIdentityClient) userRequest(ctx context.Context, method, path string, body any, pathParams map[string]string) (models.User, error) {
	token := h.Token()
	if token == "" {
		return models.User{}, ErrNotSignedIn
	}

	var result models.UserResponse

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParams(pathParams).
		SetResult(&result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("identity api rejected request")
		return models.User{}, err
	}

	return result.Result, nil
}
