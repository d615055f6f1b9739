// Package remote provides a catalog provider backed by an HTTP JSON API.
//
// The API exposes collections at <base>/lenses, <base>/cameras,
// <base>/formats and <base>/rentals, and single records at
// <base>/<collection>/<id>. Requests pass through a circuit breaker and
// transient failures are retried with exponential backoff.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/agentstation/lensmap/internal/transport"
	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/logging"
)

var _ catalogs.Provider = (*Provider)(nil)

// Provider fetches catalog records over HTTP.
type Provider struct {
	baseURL    string
	client     *transport.Client
	breaker    *gobreaker.CircuitBreaker
	retries    int
	retryDelay time.Duration
}

type config struct {
	apiKey      string
	auth        transport.Authenticator
	httpClient  *http.Client
	timeout     time.Duration
	retries     int
	retryDelay  time.Duration
	maxFailures uint32
	openTimeout time.Duration
}

// Option configures a Provider.
type Option func(*config) error

// WithAPIKey authenticates requests with a Bearer token.
func WithAPIKey(key string) Option {
	return func(c *config) error {
		c.apiKey = key
		return nil
	}
}

// WithAuthenticator overrides how the API key is sent.
func WithAuthenticator(auth transport.Authenticator) Option {
	return func(c *config) error {
		c.auth = auth
		return nil
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		c.httpClient = hc
		return nil
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return errors.NewValidationError("timeout", d, "must be positive")
		}
		c.timeout = d
		return nil
	}
}

// WithRetries sets how many times a transient failure is retried and the
// initial backoff delay.
func WithRetries(n int, delay time.Duration) Option {
	return func(c *config) error {
		if n < 0 {
			return errors.NewValidationError("retries", n, "cannot be negative")
		}
		c.retries = n
		c.retryDelay = delay
		return nil
	}
}

// WithBreaker sets the consecutive failures that open the breaker and how
// long it stays open.
func WithBreaker(maxFailures uint32, openTimeout time.Duration) Option {
	return func(c *config) error {
		if maxFailures == 0 {
			return errors.NewValidationError("max_failures", maxFailures, "must be at least 1")
		}
		c.maxFailures = maxFailures
		c.openTimeout = openTimeout
		return nil
	}
}

// New creates a provider for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Provider, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.NewValidationError("remote_url", baseURL, "must be an absolute URL")
	}

	cfg := &config{
		timeout:     constants.DefaultHTTPTimeout,
		retries:     2,
		retryDelay:  100 * time.Millisecond,
		maxFailures: constants.BreakerMaxFailures,
		openTimeout: constants.BreakerOpenTimeout,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	topts := []transport.Option{
		transport.WithHTTPClient(cfg.httpClient),
		transport.WithTimeout(cfg.timeout),
	}
	if cfg.apiKey != "" {
		topts = append(topts, transport.WithAPIKey(cfg.apiKey, cfg.auth))
	}

	p := &Provider{
		baseURL:    strings.TrimRight(u.String(), "/"),
		client:     transport.New(topts...),
		retries:    cfg.retries,
		retryDelay: cfg.retryDelay,
	}
	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "remote-catalog",
		MaxRequests: 1,
		Interval:    constants.BreakerInterval,
		Timeout:     cfg.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !transient(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
	return p, nil
}

// BaseURL returns the API root.
func (p *Provider) BaseURL() string {
	return p.baseURL
}

// Lenses implements catalogs.LensReader.
func (p *Provider) Lenses(ctx context.Context) ([]catalogs.Lens, error) {
	var lenses []catalogs.Lens
	if err := p.list(ctx, "lenses", &lenses); err != nil {
		return nil, err
	}
	if err := validateAll(lenses, "lenses", catalogs.Lens.Validate); err != nil {
		return nil, err
	}
	return lenses, nil
}

// Lens implements catalogs.LensReader.
func (p *Provider) Lens(ctx context.Context, id string) (catalogs.Lens, error) {
	var lens catalogs.Lens
	if err := p.get(ctx, "lenses", id, &lens, errors.NewLensNotFound); err != nil {
		return catalogs.Lens{}, err
	}
	if err := validateOne(lens, "lens "+id, catalogs.Lens.Validate); err != nil {
		return catalogs.Lens{}, err
	}
	return lens, nil
}

// Cameras implements catalogs.CameraReader.
func (p *Provider) Cameras(ctx context.Context) ([]catalogs.Camera, error) {
	var cameras []catalogs.Camera
	if err := p.list(ctx, "cameras", &cameras); err != nil {
		return nil, err
	}
	if err := validateAll(cameras, "cameras", catalogs.Camera.Validate); err != nil {
		return nil, err
	}
	return cameras, nil
}

// Camera implements catalogs.CameraReader.
func (p *Provider) Camera(ctx context.Context, id string) (catalogs.Camera, error) {
	var camera catalogs.Camera
	if err := p.get(ctx, "cameras", id, &camera, errors.NewCameraNotFound); err != nil {
		return catalogs.Camera{}, err
	}
	if err := validateOne(camera, "camera "+id, catalogs.Camera.Validate); err != nil {
		return catalogs.Camera{}, err
	}
	return camera, nil
}

// RecordingFormats implements catalogs.CameraReader.
func (p *Provider) RecordingFormats(ctx context.Context) ([]catalogs.RecordingFormat, error) {
	var formats []catalogs.RecordingFormat
	if err := p.list(ctx, "formats", &formats); err != nil {
		return nil, err
	}
	if err := validateAll(formats, "formats", catalogs.RecordingFormat.Validate); err != nil {
		return nil, err
	}
	return formats, nil
}

// Rentals implements catalogs.RentalReader.
func (p *Provider) Rentals(ctx context.Context) ([]catalogs.Rental, error) {
	var rentals []catalogs.Rental
	if err := p.list(ctx, "rentals", &rentals); err != nil {
		return nil, err
	}
	if err := validateAll(rentals, "rentals", catalogs.Rental.Validate); err != nil {
		return nil, err
	}
	return rentals, nil
}

// Rental implements catalogs.RentalReader.
func (p *Provider) Rental(ctx context.Context, id string) (catalogs.Rental, error) {
	var rental catalogs.Rental
	if err := p.get(ctx, "rentals", id, &rental, errors.NewRentalNotFound); err != nil {
		return catalogs.Rental{}, err
	}
	if err := validateOne(rental, "rental "+id, catalogs.Rental.Validate); err != nil {
		return catalogs.Rental{}, err
	}
	return rental, nil
}

func (p *Provider) list(ctx context.Context, collection string, target any) error {
	endpoint := p.baseURL + "/" + collection
	err := p.fetch(ctx, endpoint, target)
	if err == nil {
		return nil
	}
	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		return errors.NewNetworkError("listing "+collection, apiErr)
	}
	return err
}

func (p *Provider) get(ctx context.Context, collection, id string, target any, notFound func(string) *errors.NotFoundError) error {
	if strings.TrimSpace(id) == "" {
		return notFound(id)
	}
	endpoint := p.baseURL + "/" + collection + "/" + url.PathEscape(id)
	err := p.fetch(ctx, endpoint, target)
	if err == nil {
		return nil
	}
	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return notFound(id)
		}
		return errors.NewNetworkError("fetching "+collection+"/"+id, apiErr)
	}
	return err
}

// fetch runs one request through the breaker, retrying transient failures.
func (p *Provider) fetch(ctx context.Context, endpoint string, target any) error {
	logger := logging.FromContext(ctx)
	delay := p.retryDelay

	var err error
	for attempt := 0; ; attempt++ {
		_, err = p.breaker.Execute(func() (interface{}, error) {
			return nil, p.client.GetJSON(ctx, endpoint, target)
		})
		err = classify(err)
		if err == nil || !transient(err) || attempt >= p.retries || ctx.Err() != nil {
			break
		}

		logger.Debug().
			Err(err).
			Int("attempt", attempt+1).
			Dur("backoff", delay).
			Str("endpoint", endpoint).
			Msg("Retrying catalog request")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		return ctxErr
	}
	return err
}

// classify maps breaker errors into the taxonomy.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return errors.NewNetworkError("remote catalog unavailable", err)
	default:
		return err
	}
}

// transient reports whether a failure is worth retrying and counts against
// the breaker: network failures and 5xx or 429 responses.
func transient(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) {
		return false
	}
	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError || apiErr.StatusCode == http.StatusTooManyRequests
	}
	return errors.IsNetwork(err)
}

func validateAll[T any](items []T, what string, validate func(T) error) error {
	for i, item := range items {
		if err := validate(item); err != nil {
			return errors.NewDataCorrupted(fmt.Sprintf("%s[%d] from remote catalog", what, i), err)
		}
	}
	return nil
}

func validateOne[T any](item T, what string, validate func(T) error) error {
	if err := validate(item); err != nil {
		return errors.NewDataCorrupted(what+" from remote catalog", err)
	}
	return nil
}
