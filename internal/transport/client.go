// Package transport is the HTTP layer for remote catalog sources. It applies
// credentials, tags each request with an ID, and decodes JSON responses into
// the lensmap error taxonomy.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/logging"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Client performs authenticated JSON requests.
type Client struct {
	http      *http.Client
	auth      Authenticator
	apiKey    string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithAPIKey sets the credential and authenticator. A nil authenticator
// means Bearer authentication.
func WithAPIKey(apiKey string, auth Authenticator) Option {
	return func(c *Client) {
		c.apiKey = apiKey
		if auth == nil {
			auth = &BearerAuth{}
		}
		c.auth = auth
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: constants.DefaultHTTPTimeout},
		auth:      &NoAuth{},
		userAgent: "lensmap",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs the request with credentials and common headers applied.
// The request ID from ctx is reused when present, otherwise a new one is
// generated.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	requestID := logging.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	logging.FromContext(ctx).Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Msg("Sending catalog request")

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetworkError("building request for "+url, err)
	}
	return c.Do(ctx, req)
}

// GetJSON performs a GET request and decodes a JSON body into target.
// Transport failures are NetworkError, non-200 responses are APIError and
// undecodable bodies are DataCorrupted.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return errors.NewNetworkError("GET "+url, err)
	}
	return DecodeResponse(resp, url, target)
}

// DecodeResponse reads at most constants.MaxResponseBytes of the body and
// decodes it into target, closing the body.
func DecodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBytes+1))
	if err != nil {
		return errors.NewNetworkError("reading response from "+endpoint, err)
	}
	if len(body) > constants.MaxResponseBytes {
		return errors.NewDataCorrupted(fmt.Sprintf("response from %s exceeds %d bytes", endpoint, constants.MaxResponseBytes), nil)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp, body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}
	return nil
}

func statusMessage(resp *http.Response, body []byte) string {
	const maxMessage = 256
	if len(body) == 0 {
		return resp.Status
	}
	if len(body) > maxMessage {
		body = body[:maxMessage]
	}
	return string(body)
}
