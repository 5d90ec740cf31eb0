// Package api is the single chokepoint for all backend calls: it builds
// requests against the configured base URL, attaches the bearer token from
// the session store, negotiates JSON vs. text responses, and normalizes
// every failure into *APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/huellitas/adoption-client/internal/core/ports"
	"github.com/huellitas/adoption-client/internal/metrics"
)

// maxBodyBytes caps how much of a response body is read. 1 MB.
const maxBodyBytes = 1 << 20

// Client talks to the adoption backend. All typed endpoint groups route
// through Do. There are no retries, timeouts, or backoff: each call either
// succeeds once or surfaces its failure to the caller.
type Client struct {
	baseURL    string
	store      ports.SessionStore
	httpClient *http.Client
	log        zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client, e.g. to impose a
// timeout or a recording transport in tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New creates a Client for baseURL. Trailing slashes are stripped so path
// joining stays predictable.
func New(baseURL string, store ports.SessionStore, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		store:      store,
		httpClient: &http.Client{},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a successful backend reply. Exactly one of JSON or Raw is
// populated, depending on the response content type.
type Response struct {
	Status int
	JSON   json.RawMessage
	Raw    string
}

// Decode unmarshals the JSON body into out. A non-JSON or empty body
// leaves out untouched.
func (r *Response) Decode(out any) error {
	if out == nil || len(r.JSON) == 0 {
		return nil
	}
	return json.Unmarshal(r.JSON, out)
}

// Do performs one backend call. The path gets exactly one leading slash
// prepended when missing; the body, when non-nil, is JSON-encoded; the
// bearer token is attached when the store holds one. Non-2xx responses and
// transport failures return *APIError. A 403 additionally clears the
// stored session before returning.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: "encode request body: " + err.Error(), Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &APIError{Message: "build request: " + err.Error(), Err: err}
	}

	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if sess, loadErr := c.store.Load(); loadErr == nil && sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "0").Inc()
		c.log.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", reqID).
			Msg("backend request failed")
		return nil, &APIError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if readErr != nil {
		data = nil
	}
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		res := &Response{Status: resp.StatusCode}
		if isJSON {
			// A malformed body never fails a success response; it
			// degrades to the empty object.
			if len(bytes.TrimSpace(data)) > 0 && json.Valid(data) {
				res.JSON = data
			} else {
				res.JSON = json.RawMessage("{}")
			}
		} else {
			res.Raw = string(data)
		}
		return res, nil
	}

	apiErr := newAPIError(resp.StatusCode, isJSON, data)
	if resp.StatusCode == http.StatusForbidden {
		if clearErr := c.store.Clear(); clearErr != nil {
			c.log.Warn().Err(clearErr).Msg("clear session after 403")
		}
		metrics.ForcedLogoutsTotal.Inc()
		apiErr.AuthError = true
		apiErr.Message = sessionExpiredMessage
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Msg("session invalidated by 403, token cleared")
	}
	return nil, apiErr
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	res, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	return res.Decode(out)
}
