// Package backend is a typed client for the persona automation backend's
// HTTP API. It maps one method to one endpoint, performs no retries and no
// caching, and surfaces every non-2xx response as an *APIError. Consistency
// between reads and writes is the caller's concern.
package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is used when the deployment does not configure a backend.
const DefaultBaseURL = "http://localhost:8000"

// Client talks to one backend deployment. It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithTimeout caps the total duration of every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithAuthToken sends a bearer token with every request.
func WithAuthToken(token string) Option {
	return func(c *Client) {
		c.http.SetAuthToken(token)
	}
}

// New returns a client for the backend at baseURL. An empty baseURL falls
// back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Accept", "application/json"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is a non-2xx response from the backend. Detail carries the
// backend's error message when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend: unexpected status %d", e.StatusCode)
}

type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func apiError(resp *resty.Response) *APIError {
	e := &APIError{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
	}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		e.Detail = body.Detail
		if e.Detail == "" {
			e.Detail = body.Error
		}
	}
	return e
}

// do runs one request. out, body and query may be nil; out must be a pointer.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetError(&errorBody{})

	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
