package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.ProfileService.AddFavorite(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: "favorite added", Result: user}, http.StatusOK)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	itemID, err := favoriteItemID(r)
	if err != nil {
		writeError(w, r, &service.Error{Kind: service.KindValidation, Message: "malformed item id", Err: err})
		return
	}

	user, err := h.services.ProfileService.RemoveFavorite(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: "favorite removed", Result: user}, http.StatusOK)
}

// favoriteItemID returns the decoded {itemId} segment. chi routes on
// r.URL.RawPath when Go kept one (an escaped "/" forces that), and then the
// parameter is still escaped. Otherwise it comes from the decoded r.URL.Path
// and must be used as is.
func favoriteItemID(r *http.Request) (string, error) {
	itemID := chi.URLParam(r, "itemId")
	if r.URL.RawPath == "" {
		return itemID, nil
	}
	return url.PathUnescape(itemID)
}
