package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/mock"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth    *mock.MockAuthService
	profile *mock.MockProfileService
	tokens  *mock.MockTokenService
	appInfo *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are all gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		ProfileService: m.profile,
		TokenService:   m.tokens,
		AppInfoService: m.appInfo,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h, m
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// do sends a request through the full router.
func do(t *testing.T, h *Handler, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeUser(t *testing.T, rec *httptest.ResponseRecorder) models.UserResponse {
	t.Helper()
	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
