package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound calls to the media host.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient].
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL prefix of every relative request path.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds each request, including reading the response body.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// NewHTTPClient creates an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://api.cloudinary.com"))
//	resp, err := client.R().Get("/v1_1/demo/resources")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
