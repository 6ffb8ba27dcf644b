package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
)

// decodeJSON reads the request body into v. A malformed body is reported as a
// validation failure.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &service.Error{
			Kind:    service.KindValidation,
			Message: ErrInvalidJSON.Error(),
			Err:     fmt.Errorf("%w: %w", ErrInvalidJSON, err),
		}
	}
	return nil
}

// userIDFromRequest returns the id stored by the auth middleware.
func userIDFromRequest(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", &service.Error{Kind: service.KindAuth, Message: msgNotAuthenticated, Err: ErrNoUserIDInContext}
	}
	return userID, nil
}
