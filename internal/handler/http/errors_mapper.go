package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
)

var kindStatusMap = map[service.Kind]int{
	service.KindValidation: http.StatusUnprocessableEntity,
	service.KindAuth:       http.StatusUnauthorized,
	service.KindNotFound:   http.StatusNotFound,
	service.KindInternal:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// errorResponseFrom builds the body for err. Only messages of tagged
// non-internal errors reach the caller.
func errorResponseFrom(err error) models.ErrorResponse {
	var se *service.Error
	if !errors.As(err, &se) || se.Kind == service.KindInternal {
		return models.ErrorResponse{Message: "internal server error"}
	}
	return models.ErrorResponse{Message: se.Message, Data: se.Data}
}

// writeError logs err and writes the mapped status and body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, errorResponseFrom(err), status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func writeNotAuthenticated(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Message: msgNotAuthenticated}, http.StatusUnauthorized); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
