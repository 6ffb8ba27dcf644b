package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrorMap = map[int]error{
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), err: ErrUnexpectedStatus}
	if err, ok := statusErrorMap[resp.StatusCode()]; ok {
		apiErr.err = err
	}

	var body struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if json.Unmarshal(resp.Body(), &body) == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Data = body.Data
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
