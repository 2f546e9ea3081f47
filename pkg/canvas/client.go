package canvas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/edukit/go-canvas/pkg/formenc"
)

// Client is an HTTP client for a single Canvas instance. It is safe for
// concurrent use.
type Client struct {
	config *Config
	client *http.Client
	log    hclog.Logger
}

// NewClient creates a Canvas API client from cfg. Zero-valued Timeout,
// RetryDelay, TLSVerify and Logger fall back to defaults; MaxRetries is
// taken as-is, so zero disables retries (DefaultConfig sets 3). The
// caller's cfg is not modified.
func NewClient(cfg *Config) (*Client, error) {
	cc := *cfg
	if cc.TLSVerify == nil {
		cc.TLSVerify = DefaultConfig().TLSVerify
	}
	if cc.Timeout == 0 {
		cc.Timeout = 30 * time.Second
	}
	if cc.RetryDelay == 0 {
		cc.RetryDelay = 1 * time.Second
	}
	if cc.Logger == nil {
		cc.Logger = hclog.Default()
	}

	if err := cc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid canvas client config: %w", err)
	}

	return &Client{
		config: &cc,
		client: cc.NewHTTPClient(),
		log:    cc.Logger.Named("canvas"),
	}, nil
}

// Logger returns the client's logger, for callers that hydrate responses
// and want their warnings in the same stream.
func (c *Client) Logger() hclog.Logger {
	return c.log
}

// BaseURL returns the configured Canvas base URL.
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.config.BaseURL, "/")
}

// Get performs a GET request against an API path like "courses/42",
// decoding the JSON response into result when result is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

// Delete performs a DELETE request. Canvas DELETE endpoints take their
// parameters in the query string.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, result)
}

// PostJSON performs a POST with a JSON-encoded body.
func (c *Client) PostJSON(ctx context.Context, path string, body, result any) error {
	payload, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, payload, result)
}

// PutJSON performs a PUT with a JSON-encoded body.
func (c *Client) PutJSON(ctx context.Context, path string, body, result any) error {
	payload, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, payload, result)
}

// PatchJSON performs a PATCH with a JSON-encoded body.
func (c *Client) PatchJSON(ctx context.Context, path string, body, result any) error {
	payload, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, nil, payload, result)
}

// PostForm performs a POST with a multipart/form-data body built from
// fields, preserving field order and repeated names.
func (c *Client) PostForm(ctx context.Context, path string, fields []formenc.Field, result any) error {
	payload, err := multipartBody(fields)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, payload, result)
}

// PutForm performs a PUT with a multipart/form-data body.
func (c *Client) PutForm(ctx context.Context, path string, fields []formenc.Field, result any) error {
	payload, err := multipartBody(fields)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, payload, result)
}

// body is a prebuilt request payload, reusable across retry attempts.
type body struct {
	contentType string
	data        []byte
}

func jsonBody(v any) (*body, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return &body{contentType: "application/json", data: data}, nil
}

// do executes an HTTP request with retry logic and error handling.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload *body, result any) error {
	endpoint := c.config.apiBase() + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
		}

		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload.data)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", payload.contentType)
		}

		c.log.Debug("canvas request",
			"method", method, "path", path, "attempt", attempt, "request_id", requestID)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if resp.StatusCode >= 500 && attempt < c.config.MaxRetries {
				lastErr = fmt.Errorf("server error (status %d): %s", resp.StatusCode, string(respBody))
				continue
			}
			return newAPIError(resp.StatusCode, requestID, respBody)
		}

		if linker, ok := result.(linkSink); ok {
			linker.setLinks(ParseLinkHeader(resp.Header.Get("Link")))
			result = linker.target()
		}

		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
		}

		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.config.MaxRetries+1, lastErr)
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.config.TokenSource != nil {
		tok, err := c.config.TokenSource.Token()
		if err != nil {
			return "", fmt.Errorf("failed to obtain OAuth2 token: %w", err)
		}
		return tok.AccessToken, nil
	}
	return c.config.AccessToken, nil
}
