package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the "Authorization: Bearer <token>" header, verifies the token via
// [service.TokenService.Verify] and, on success, stores the user id and email
// in the request context under [utils.UserIDCtxKey] and [utils.EmailCtxKey].
//
// Every rejection is answered with 401 and the same body, so callers cannot
// tell a missing header from an expired or forged token. The actual reason is
// logged and counted in identity_auth_failures_total.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.rejectUnauthenticated(w, r, reasonMissingHeader, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.rejectUnauthenticated(w, r, reasonMalformedHeader, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			reason := reasonInvalid
			if errors.Is(err, service.ErrTokenExpired) {
				reason = reasonExpired
			}
			h.rejectUnauthenticated(w, r, reason, err)
			return
		}

		log.Debug().Str("user_id", claims.UserID).Msg("request authenticated")

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, claims.UserID)
		ctx = context.WithValue(ctx, utils.EmailCtxKey, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) rejectUnauthenticated(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logger.FromRequest(r).Info().Err(err).Str("reason", reason).Msg("authentication failed")
	h.metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	writeNotAuthenticated(w, r)
}
