package server

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/lensmap/pkg/errors"
)

// Config holds server configuration.
type Config struct {
	Host string
	Port int

	// PathPrefix roots the catalog collections, so a remote provider
	// pointed at http://host:port<PathPrefix> can consume this server.
	PathPrefix string

	CORSEnabled bool
	CORSOrigins []string

	AuthEnabled bool
	AuthHeader  string
	APIKey      string

	// RateLimit is requests per minute per IP, 0 to disable.
	RateLimit int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "localhost",
		Port:            8080,
		PathPrefix:      "/v1",
		AuthHeader:      "X-API-Key",
		RateLimit:       100,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.NewValidationError("port", c.Port, "must be between 0 and 65535")
	}
	if c.PathPrefix != "" && !strings.HasPrefix(c.PathPrefix, "/") {
		return errors.NewValidationError("path_prefix", c.PathPrefix, "must start with /")
	}
	if c.AuthEnabled && c.APIKey == "" {
		return errors.NewConfigError("server", "auth is enabled but no API key is set", nil)
	}
	if c.RateLimit < 0 {
		return errors.NewValidationError("rate_limit", c.RateLimit, "cannot be negative")
	}
	return nil
}
