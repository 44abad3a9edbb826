// Package api wraps the travel-booking REST backend. Each resource gets its
// own file with functions mapping 1:1 to backend endpoints; all of them go
// through a single configured Client.
//
// Error contract: connectivity failures come back as ErrUnavailable, HTTP
// error statuses as *APIError (carrying the server message when present).
// Nothing is retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vpotapovs/roamer/internal/logging"
)

// TokenSource supplies the current bearer token; it returns "" when no
// session is active. The session store provides one so that every request
// picks up the freshest token without the client holding session state.
type TokenSource func() string

// Client is the single configured HTTP client for the backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	token   TokenSource
}

// New builds a Client for the given base URL. The timeout bounds every
// request end to end.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
		token:   func() string { return "" },
	}
}

// SetTokenSource installs the bearer-token callback. Must be called before
// any authenticated request; safe to call once during wiring.
func (c *Client) SetTokenSource(ts TokenSource) {
	if ts != nil {
		c.token = ts
	}
}

// query is an optional set of URL parameters.
type query url.Values

func pageQuery(page, limit int) query {
	q := query{}
	if page > 0 {
		q["page"] = []string{strconv.Itoa(page)}
	}
	if limit > 0 {
		q["limit"] = []string{strconv.Itoa(limit)}
	}
	return q
}

// do issues one request. body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded JSON response.
func (c *Client) do(ctx context.Context, method, path string, q query, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, q, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, q query, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + url.Values(q).Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send performs the request and maps the outcome to the package error
// contract.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed", "method", req.Method, "path", req.URL.Path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapHTTPError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorBody matches the two message envelopes the backend uses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) mapHTTPError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(raw) > 0 {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			if eb.Message != "" {
				apiErr.Message = eb.Message
			} else {
				apiErr.Message = eb.Error
			}
		}
	}

	c.log.Warn(resp.Request.Context(), "server returned error",
		"status", resp.StatusCode, "path", resp.Request.URL.Path, "message", apiErr.Message)
	return apiErr
}
