package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully signed up")

	utils.WriteJSON(w, models.UserResponse{Message: "user created", Result: user}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.Claims.UserID).Msg("user successfully signed in")

	utils.WriteJSON(w, models.TokenResponse{Message: "signed in", Token: token.SignedString}, http.StatusOK)
}
