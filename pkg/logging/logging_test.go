package logging_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/pkg/logging"
)

func TestDefaultLoggerCapture(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	logging.Debug().Msg("debug message")
	logging.Info().Str("lens_id", "a").Msg("info message")
	logging.Err(errors.New("boom")).Msg("failed")

	tl.AssertContains(t, "info message")
	tl.AssertContains(t, `"lens_id":"a"`)
	tl.AssertContains(t, "boom")
	assert.Equal(t, 3, tl.Count())

	tl.Clear()
	assert.Equal(t, 0, tl.Count())
}

func TestContextHelpers(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithLens(ctx, "zeiss-21")
	ctx = logging.WithRental(ctx, "r1")
	ctx = logging.WithOperation(ctx, "toggle_favorite")
	ctx = logging.WithSource(ctx, "embedded")
	ctx = logging.WithRequestID(ctx, "req-1")
	ctx = logging.WithError(ctx, errors.New("disk full"))
	ctx = logging.WithFields(ctx, map[string]any{"count": 2, "ids": []string{"a", "b"}})

	logging.Ctx(ctx).Info().Msg("done")

	for _, want := range []string{
		`"lens_id":"zeiss-21"`,
		`"rental_id":"r1"`,
		`"operation":"toggle_favorite"`,
		`"source":"embedded"`,
		`"request_id":"req-1"`,
		`"error":"disk full"`,
		`"count":2`,
		`"ids":["a","b"]`,
	} {
		tl.AssertContains(t, want)
	}
	assert.Equal(t, "req-1", logging.RequestID(ctx))
	assert.Empty(t, logging.RequestID(context.Background()))
}

func TestWithErrorNil(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, logging.WithError(ctx, nil))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	assert.NotNil(t, logging.WithLogger(context.Background(), nil))
}

func TestNewLoggerFromConfig(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	path := filepath.Join(t.TempDir(), "lensmap.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "debug",
		Format: "json",
		Output: path,
		Fields: map[string]any{"app": "lensmap"},
	})
	logger.Debug().Msg("from config")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "from config")
	assert.Contains(t, string(content), `"app":"lensmap"`)
	assert.Contains(t, string(content), `"caller"`)
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "discard")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_FIELDS", "env=test, region = eu ,broken")

	cfg := logging.ConfigFromEnv()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "discard", cfg.Output)
	assert.True(t, cfg.AddCaller)
	assert.Equal(t, map[string]any{"env": "test", "region": "eu"}, cfg.Fields)
}
