package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// JSONContentType is the Content-Type of every JSON body the API writes.
const JSONContentType = "application/json; charset=utf-8"

// WriteJSON encodes data as the body of a response with statusCode and
// returns the number of body bytes written.
//
// A value that cannot be encoded is answered with a bare 500 and the encoding
// error is returned, so no partial JSON reaches the client.
//
// Example usage:
//
//	utils.WriteJSON(w, models.TokenResponse{Message: "signed in", Token: tok}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", JSONContentType)
	header.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
