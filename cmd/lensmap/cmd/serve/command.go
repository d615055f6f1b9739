// Package serve implements the catalog API server command.
package serve

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/lensmap/cmd/application"
	"github.com/agentstation/lensmap/internal/server"
	"github.com/agentstation/lensmap/pkg/errors"
)

// Environment variables that override flag defaults.
const (
	EnvAPIKey = "LENSMAP_API_KEY"
	EnvPort   = "HTTP_PORT"
	EnvHost   = "HTTP_HOST"
)

// NewCommand creates the serve command.
func NewCommand(app application.Application) *cobra.Command {
	cfg := server.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a read-only JSON API",
		Long: `Start an HTTP server exposing the configured catalog.

Collections live under the path prefix (default /v1): lenses, cameras,
formats and rentals, with single records at <collection>/<id> and the
relations lenses/<id>/rentals, rentals/<id>/lenses and
rentals/<id>/cameras. Another lensmap can consume the server with
--catalog-source remote --remote-url http://host:port/v1.`,
		Example: `  lensmap serve                                  # Listen on localhost:8080
  lensmap serve --port 3000 --auth               # Require $LENSMAP_API_KEY
  lensmap serve --cors-origins https://rentals.example`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnv(cmd, &cfg); err != nil {
				return err
			}
			ctx := cmd.Context()
			client, err := app.Client(ctx)
			if err != nil {
				return err
			}

			srv, err := server.New(client, cfg, app.Logger(), app.Version())
			if err != nil {
				return err
			}
			app.Logger().Info().
				Str("addr", cfg.Addr()).
				Bool("auth", cfg.AuthEnabled).
				Bool("cors", cfg.CORSEnabled).
				Int("rate_limit", cfg.RateLimit).
				Msg("Starting catalog API")
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "bind address")
	cmd.Flags().IntVarP(&cfg.Port, "port", "p", cfg.Port, "server port")
	cmd.Flags().StringVar(&cfg.PathPrefix, "prefix", cfg.PathPrefix, "API path prefix")
	cmd.Flags().BoolVar(&cfg.CORSEnabled, "cors", false, "enable CORS for all origins")
	cmd.Flags().StringSliceVar(&cfg.CORSOrigins, "cors-origins", nil, "allowed CORS origins (implies --cors)")
	cmd.Flags().BoolVar(&cfg.AuthEnabled, "auth", false, "require an API key")
	cmd.Flags().StringVar(&cfg.AuthHeader, "auth-header", cfg.AuthHeader, "API key header name")
	cmd.Flags().StringVar(&cfg.APIKey, "api-key", "", "API key (default $"+EnvAPIKey+")")
	cmd.Flags().IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "requests per minute per IP (0 to disable)")
	cmd.Flags().DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	cmd.Flags().DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	cmd.Flags().DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "HTTP idle timeout")
	return cmd
}

// applyEnv fills settings the flags left unset from the environment.
func applyEnv(cmd *cobra.Command, cfg *server.Config) error {
	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKey)
	}
	if v := os.Getenv(EnvHost); v != "" && !cmd.Flags().Changed("host") {
		cfg.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" && !cmd.Flags().Changed("port") {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError(EnvPort, v, "must be a port number")
		}
		cfg.Port = port
	}
	return nil
}
