package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get("https://example.com/branding.yaml")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests time out after timeout.
// A non-positive timeout leaves resty's default (no timeout).
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", "connectly-config").
		SetHeader("Accept", "application/json, application/yaml, application/toml;q=0.9, */*;q=0.5")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
