// Package api is the single egress point for all backend calls. It wires the
// two interceptor stages around a plain http.Client: the outgoing stage
// attaches the bearer token from the session store, the incoming stage
// unwraps the response envelope, tears the session down on 401 and normalizes
// every other failure into a human-readable message.
package api

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

	"github.com/mssbox/blindboxctl/internal/common"
	"github.com/mssbox/blindboxctl/internal/logging"
	"github.com/mssbox/blindboxctl/internal/storage"
)

// Client issues requests against the backend REST API. It performs no
// retries; retry policy, if any, belongs to the caller.
type Client struct {
	baseURL        string
	http           *http.Client
	store          storage.Store
	log            logging.Logger
	defaultHeaders map[string]string
	onAuthFailure  func()
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The configured
// transport is still wrapped with the token-attaching stage.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithDefaultHeaders adds static headers sent with every request.
func WithDefaultHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.defaultHeaders[k] = v
		}
	}
}

// New builds a Client rooted at baseURL. Every request carries the deadline,
// the default headers and, when a token is held, the bearer credential.
func New(baseURL string, timeout time.Duration, store storage.Store, log logging.Logger, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		log:     log,
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
		},
	}
	c.http = &http.Client{Timeout: timeout}

	for _, opt := range opts {
		opt(c)
	}

	next := c.http.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	c.http.Transport = &authTransport{
		store:          store,
		defaultHeaders: c.defaultHeaders,
		next:           next,
	}

	return c, nil
}

// OnAuthFailure registers the hook invoked after a 401 teardown, once per
// failing call. The app wires it to the forced-logout navigation.
func (c *Client) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

// teardownSession is the 401 side effect: both session halves leave the
// store before the error is surfaced.
func (c *Client) teardownSession(ctx context.Context) {
	_ = c.store.Delete(ctx, storage.KeyToken)
	_ = c.store.Delete(ctx, storage.KeyUser)
	c.log.Warn(ctx, "authentication failure, session cleared")
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
}

// doJSON runs one request through both interceptor stages and decodes the
// response envelope. Transport failures and non-2xx statuses come back as
// errors; a 2xx envelope is returned verbatim whatever its Success flag says.
func doJSON[T any](ctx context.Context, c *Client, method, path string, body any) (Envelope[T], error) {
	var zero Envelope[T]

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and connection failures share the transport-error path;
		// session state is left untouched.
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return zero, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.teardownSession(ctx)
		return zero, common.ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(raw, resp.StatusCode)
		c.log.Error(ctx, "backend error", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return zero, fmt.Errorf("%s", msg)
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.Debug(ctx, "request finished", "method", method, "path", path, "success", env.Success)
	return env, nil
}

// errorMessage extracts the best available human-readable message from an
// error body, preferring the backend-provided envelope message.
func errorMessage(raw []byte, status int) string {
	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(status))
}
