package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newIntegrationHandler wires the real services over the in-memory store.
func newIntegrationHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "secret",
			TokenIssuer:      "go-identity",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "1.0.0",
		},
		Server:  config.Server{RequestTimeout: 5 * time.Second},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverMemory}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, logger.Nop())
}

func signInToken(t *testing.T, h *Handler, email, password string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/signin", jsonBody(t, models.SignInRequest{Email: email, Password: password}), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRoutes_UserLifecycle(t *testing.T) {
	h := newIntegrationHandler(t)

	// sign up
	rec := do(t, h, http.MethodPost, "/signup", jsonBody(t, models.SignUpRequest{Email: "a@b.io", Name: "Ann", Password: "secret1"}), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	// duplicate email
	rec = do(t, h, http.MethodPost, "/signup", jsonBody(t, models.SignUpRequest{Email: "a@b.io", Name: "Bob", Password: "secret1"}), nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Data, "email")

	token := signInToken(t, h, "a@b.io", "secret1")

	// favorites keep duplicates and removal drops all
	for _, item := range []string{"x", "y", "x"} {
		rec = do(t, h, http.MethodPost, "/favorites/add", jsonBody(t, models.FavoriteRequest{ItemID: item}), bearer(token))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, []string{"x", "y", "x"}, decodeUser(t, rec).Result.Favorites)

	rec = do(t, h, http.MethodDelete, "/favorites/remove/x", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"y"}, decodeUser(t, rec).Result.Favorites)

	// profile
	rec = do(t, h, http.MethodPut, "/profile", jsonBody(t, models.UpdateProfileRequest{Name: "Anna"}), bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Anna", decodeUser(t, rec).Result.Name)

	// password change, wrong old password first
	rec = do(t, h, http.MethodPut, "/change-password", jsonBody(t, models.ChangePasswordRequest{OldPassword: "wrong!", NewPassword: "secret2"}), bearer(token))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPut, "/change-password", jsonBody(t, models.ChangePasswordRequest{OldPassword: "secret1", NewPassword: "secret2"}), bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/signin", jsonBody(t, models.SignInRequest{Email: "a@b.io", Password: "secret1"}), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "old password must stop working")
	token = signInToken(t, h, "a@b.io", "secret2")

	// delete, then the same token hits a missing user
	rec = do(t, h, http.MethodDelete, "/delete-user", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.io", decodeUser(t, rec).Result.Email)

	rec = do(t, h, http.MethodPut, "/profile", jsonBody(t, models.UpdateProfileRequest{Name: "Ghost"}), bearer(token))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/signin", jsonBody(t, models.SignInRequest{Email: "a@b.io", Password: "secret2"}), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRoutes_SignInMessagesMatch(t *testing.T) {
	h := newIntegrationHandler(t)

	rec := do(t, h, http.MethodPost, "/signup", jsonBody(t, models.SignUpRequest{Email: "a@b.io", Name: "Ann", Password: "secret1"}), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	unknown := do(t, h, http.MethodPost, "/signin", jsonBody(t, models.SignInRequest{Email: "ghost@b.io", Password: "secret1"}), nil)
	wrong := do(t, h, http.MethodPost, "/signin", jsonBody(t, models.SignInRequest{Email: "a@b.io", Password: "secret9"}), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, decodeError(t, unknown).Message, decodeError(t, wrong).Message)
}

func TestRoutes_SignUpValidation(t *testing.T) {
	h := newIntegrationHandler(t)

	rec := do(t, h, http.MethodPost, "/signup", jsonBody(t, models.SignUpRequest{Email: "nope", Name: "", Password: "1"}), nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	data, ok := decodeError(t, rec).Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "email")
	assert.Contains(t, data, "name")
	assert.Contains(t, data, "password")
}

func TestRoutes_TamperedTokenRejected(t *testing.T) {
	h := newIntegrationHandler(t)

	rec := do(t, h, http.MethodPost, "/signup", jsonBody(t, models.SignUpRequest{Email: "a@b.io", Name: "Ann", Password: "secret1"}), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := signInToken(t, h, "a@b.io", "secret1")

	rec = do(t, h, http.MethodDelete, "/delete-user", nil, bearer(token+"x"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"not authenticated"}`, rec.Body.String())
}
