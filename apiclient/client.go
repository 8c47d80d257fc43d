// Package apiclient wraps net/http for the fixture API: base-URL resolution,
// default header merging, per-request correlation ids, wall-clock timing, and
// a uniform typed response envelope. Non-2xx statuses are data, not errors;
// only transport failures and timeouts produce errors.
package apiclient

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/framework"
)

const correlationIDHeader = "X-Correlation-Id"

// Response is the envelope returned for every request, regardless of HTTP
// status. Data is the decoded JSON body, or the zero value when the body was
// empty or the status was non-2xx with an undecodable body.
type Response[T any] struct {
	Status   int
	Data     T
	Duration time.Duration
	Headers  http.Header
}

// IsSuccess reports whether the status is in the 2xx range.
func (r *Response[T]) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// RequestOpts carries optional per-call settings.
type RequestOpts struct {
	// Query parameters appended to the resolved URL.
	Query map[string]string
	// Headers merged over the client's default headers; per-call wins.
	Headers map[string]string
}

// Client issues requests against a single base URL with a fixed set of
// default headers and a per-request timeout. It holds no mutable state after
// construction and is safe for concurrent use.
type Client struct {
	baseURL    string
	headers    map[string]string
	timeout    time.Duration
	httpClient *http.Client
	logger     framework.Logger
}

// New creates a Client from the configuration snapshot. If logger is nil, all
// client debug output is discarded.
func New(cfg config.Config, logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	headers := map[string]string{"Content-Type": "application/json"}
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		headers:    headers,
		timeout:    cfg.Timeout(),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
	}
}

// BaseURL returns the resolved base URL the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET for path and decodes the JSON body into T.
func Get[T any](c *Client, path string, opts *RequestOpts) (*Response[T], error) {
	return do[T](c, http.MethodGet, path, nil, opts)
}

// Post issues a POST with body marshaled as JSON.
func Post[T any](c *Client, path string, body interface{}) (*Response[T], error) {
	return do[T](c, http.MethodPost, path, body, nil)
}

// Put issues a PUT (full replace) with body marshaled as JSON.
func Put[T any](c *Client, path string, body interface{}) (*Response[T], error) {
	return do[T](c, http.MethodPut, path, body, nil)
}

// Patch issues a PATCH (merge semantics) with body marshaled as JSON.
func Patch[T any](c *Client, path string, body interface{}) (*Response[T], error) {
	return do[T](c, http.MethodPatch, path, body, nil)
}

// Delete issues a DELETE. The fixture API returns an empty object, so the
// envelope carries no payload.
func Delete(c *Client, path string) (*Response[struct{}], error) {
	return do[struct{}](c, http.MethodDelete, path, nil, nil)
}

func do[T any](c *Client, method, path string, body interface{}, opts *RequestOpts) (*Response[T], error) {
	fullURL, err := c.resolveURL(path, opts)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s request body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, fullURL, reqBody)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}
	correlationID := newCorrelationID()
	req.Header.Set(correlationIDHeader, correlationID)

	c.logger.Printf("%s %s [%s]", method, fullURL, correlationID)
	started := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(started)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: fullURL, Timeout: c.timeout}
		}
		return nil, &NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: fullURL, Timeout: c.timeout}
		}
		return nil, &NetworkError{URL: fullURL, Err: err}
	}
	c.logger.Printf("%s %s -> %d (%dms) [%s]", method, fullURL, resp.StatusCode, elapsed.Milliseconds(), correlationID)

	out := &Response[T]{
		Status:   resp.StatusCode,
		Duration: elapsed,
		Headers:  resp.Header,
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out.Data); err != nil && out.IsSuccess() {
			return nil, fmt.Errorf("decoding %s %s response: %w", method, fullURL, err)
		}
		// A non-2xx body that doesn't match T (the fixture API returns {} for
		// 404) leaves Data as the zero value; the status is what matters.
	}
	return out, nil
}

func (c *Client) resolveURL(path string, opts *RequestOpts) (string, error) {
	full := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if opts == nil || len(opts.Query) == 0 {
		return full, nil
	}
	u, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}
	q := u.Query()
	for k, v := range opts.Query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	for e := err; e != nil; {
		if t, ok := e.(timeouter); ok && t.Timeout() {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}

func newCorrelationID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b)
}
