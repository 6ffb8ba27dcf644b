package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies requests sent by [HTTPClient].
const UserAgent = "go-identity-client"

// HTTPClient embeds *resty.Client, so every resty method is available on it.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that resolves relative paths against
// baseURL, gives up after timeout and asks for JSON. Each call builds an
// independent client with its own connection pool.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
