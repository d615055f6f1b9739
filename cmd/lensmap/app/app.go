// Package app provides the application context and dependency management
// for the lensmap CLI. It centralizes configuration, logging, and the
// lifecycle of the catalog provider and preference store.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/agentstation/lensmap"
	"github.com/agentstation/lensmap/cmd/application"
	"github.com/agentstation/lensmap/internal/sources/local"
	"github.com/agentstation/lensmap/internal/sources/remote"
	"github.com/agentstation/lensmap/internal/store/files"
	"github.com/agentstation/lensmap/internal/store/memory"
	"github.com/agentstation/lensmap/internal/store/redis"
	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/preferences"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the lensmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	stdout io.Writer

	// Client instance (lazy-initialized, singleton)
	mu     sync.Mutex
	client *lensmap.Client
	redis  *goredis.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Stdout returns where command results are written.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// Client returns the lensmap client, creating it on first use from the
// configured catalog source and preference store.
func (a *App) Client(ctx context.Context) (*lensmap.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	provider, err := a.newProvider()
	if err != nil {
		return nil, err
	}
	store, err := a.newStore(ctx)
	if err != nil {
		return nil, err
	}

	client, err := lensmap.New(ctx,
		lensmap.WithProvider(provider),
		lensmap.WithStore(store),
		lensmap.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("catalog", a.config.CatalogSource).
		Str("store", a.config.Store).
		Msg("Client ready")

	a.client = client
	return client, nil
}

// newProvider builds the catalog provider selected by catalog_source.
func (a *App) newProvider() (catalogs.Provider, error) {
	switch a.config.CatalogSource {
	case SourceFiles:
		return local.NewFromDir(a.config.CatalogPath), nil
	case SourceRemote:
		var opts []remote.Option
		if a.config.RemoteAPIKey != "" {
			opts = append(opts, remote.WithAPIKey(a.config.RemoteAPIKey))
		}
		return remote.New(a.config.RemoteURL, opts...)
	default:
		return local.NewEmbedded(), nil
	}
}

// newStore builds the preference store selected by store.
func (a *App) newStore(ctx context.Context) (preferences.Store, error) {
	switch a.config.Store {
	case StoreMemory:
		return memory.New(), nil
	case StoreRedis:
		store, client, err := redis.Dial(ctx, a.config.RedisAddr, a.config.RedisPassword, a.config.RedisDB)
		if err != nil {
			return nil, err
		}
		a.redis = client
		return store, nil
	default:
		return files.New(a.config.StorePath)
	}
}

// Shutdown releases the connections opened by the client.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.redis != nil {
		err := a.redis.Close()
		a.redis = nil
		return err
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStdout redirects command results.
func WithStdout(w io.Writer) Option {
	return func(a *App) error {
		a.stdout = w
		return nil
	}
}

// WithClient sets a prebuilt client (useful for testing).
func WithClient(client *lensmap.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
