package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound calls to collaborators such as a remote model server.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client with the given per-request timeout. A zero
// timeout leaves resty's default (no timeout) in place; callers should
// always pass one for calls made on a request path.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
