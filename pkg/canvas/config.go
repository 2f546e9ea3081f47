package canvas

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// Config contains configuration for a Canvas API client.
//
// Example (HCL):
//
//	canvas {
//	  base_url     = "https://canvas.example.edu"
//	  access_token = env("CANVAS_ACCESS_TOKEN")
//	  timeout      = "30s"
//	}
type Config struct {
	// BaseURL is the base URL of the Canvas instance.
	// Example: "https://canvas.example.edu"
	BaseURL string `json:"baseUrl"`

	// AccessToken is the API token for authentication (Bearer token).
	// Should be kept in an environment variable for security.
	AccessToken string `json:"-"`

	// TokenSource optionally supplies OAuth2 tokens instead of a static
	// AccessToken, for installs using Canvas's OAuth2 flow with refresh.
	TokenSource oauth2.TokenSource `json:"-"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for API requests.
	// Default: 30 seconds.
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxRetries for failed requests.
	// Default: 3.
	MaxRetries int `json:"maxRetries,omitempty"`

	// RetryDelay between retries.
	// Default: 1 second.
	RetryDelay time.Duration `json:"retryDelay,omitempty"`

	// Logger receives request/response debug logging and hydration
	// warnings. Defaults to hclog.Default().
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify:  &tlsVerify,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https scheme, got: %s", parsedURL.Scheme)
	}

	if c.AccessToken == "" && c.TokenSource == nil {
		return fmt.Errorf("access_token or token source is required")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got: %d", c.MaxRetries)
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be non-negative, got: %v", c.RetryDelay)
	}

	return nil
}

// NewHTTPClient creates a configured HTTP client for this configuration.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}

// apiBase returns the BaseURL with the API version prefix and no trailing
// slash, e.g. "https://canvas.example.edu/api/v1".
func (c *Config) apiBase() string {
	return strings.TrimRight(c.BaseURL, "/") + "/api/v1"
}
