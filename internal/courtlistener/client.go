// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package courtlistener is the gateway to the CourtListener REST API.
// It owns the one shared HTTP client for the process and normalizes
// every transport- and status-level failure into an APIError carrying
// a single human-readable message.
package courtlistener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// errorBodyLimit bounds how much of an error response body is echoed
// back in messages.
const errorBodyLimit = 300

// Client issues requests against both live CourtListener API versions.
// It is constructed once at startup and never mutated afterwards, so
// concurrent tool invocations share it without locking; connection
// pooling lives inside the embedded http.Transport.
type Client struct {
	http      *http.Client
	token     string
	baseV3    string
	baseV4    string
	userAgent string
	timeout   time.Duration
}

// NewClient validates the configuration and builds the shared client.
// A missing token is a configuration error surfaced here, at startup,
// before any network call is attempted.
func NewClient(cfg types.Config) (*Client, error) {
	token := strings.TrimSpace(cfg.API.Token)
	if token == "" {
		return nil, errors.New("COURTLISTENER_API_TOKEN environment variable is not set")
	}

	timeout := cfg.HTTP.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseV3 := strings.TrimRight(cfg.API.BaseV3, "/")
	baseV4 := strings.TrimRight(cfg.API.BaseV4, "/")
	if baseV3 == "" || baseV4 == "" {
		return nil, errors.New("API base URLs must not be empty")
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		token:     token,
		baseV3:    baseV3,
		baseV4:    baseV4,
		userAgent: cfg.HTTP.UserAgent,
		timeout:   timeout,
	}, nil
}

// Close releases pooled connections. Safe to call once at shutdown.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// getJSON performs a GET against base+path with the given query
// parameters and decodes the 2xx response body into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, params url.Values, out any) error {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, out)
}

// postForm performs a form-encoded POST and decodes the 2xx response
// body into out.
func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// do executes one request and funnels every failure through the error
// taxonomy. No retries: a 429 is surfaced immediately.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Token "+c.token)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(req.Context(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Kind:    KindRemote,
			Message: fmt.Sprintf("Error: CourtListener returned a malformed response (%v).", err),
		}
	}
	return nil
}

// transportError classifies a failure from http.Client.Do. Context
// cancellation passes through untouched so the host sees its own
// cancellation, not a gateway error.
func (c *Client) transportError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return ctx.Err()
	}
	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("Error: Request timed out after %v.", c.timeout),
		}
	}
	return &APIError{
		Kind:    KindConnection,
		Message: fmt.Sprintf("Error: Connection to CourtListener failed: %v.", err),
	}
}

// statusError maps a non-2xx response to a distinct message per the
// failure class. The body is drained so the connection can be reused.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &APIError{
			Kind:    KindAuth,
			Message: "Error: Invalid API token. Check COURTLISTENER_API_TOKEN.",
		}
	case http.StatusTooManyRequests:
		return &APIError{
			Kind:    KindRateLimit,
			Message: "Error: Rate limit exceeded. CourtListener allows 5,000 requests/day.",
		}
	case http.StatusNotFound:
		return &APIError{
			Kind:    KindNotFound,
			Message: "Error: Resource not found.",
		}
	default:
		return &APIError{
			Kind:    KindRemote,
			Message: fmt.Sprintf("Error: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}
}
