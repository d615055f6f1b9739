package serve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/cmd/application/apptest"
	"github.com/agentstation/lensmap/internal/server"
	"github.com/agentstation/lensmap/pkg/errors"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvHost, "0.0.0.0")

	app, _ := apptest.NewMock(t, "json")
	cmd := NewCommand(app)
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "3000", "--cors-origins", "https://rentals.example"}))

	cfg := server.DefaultConfig()
	cfg.Port = 3000
	cfg.CORSOrigins = []string{"https://rentals.example"}
	require.NoError(t, applyEnv(cmd, &cfg))

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 3000, cfg.Port, "flag wins over environment")
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.True(t, cfg.CORSEnabled)
}

func TestApplyEnvBadPort(t *testing.T) {
	t.Setenv(EnvPort, "eighty")
	app, _ := apptest.NewMock(t, "json")
	cmd := NewCommand(app)

	cfg := server.DefaultConfig()
	assert.True(t, errors.IsValidationError(applyEnv(cmd, &cfg)))
}

func TestAuthWithoutKeyFails(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	app, _ := apptest.NewMock(t, "json")
	cmd := NewCommand(app)
	cmd.SetArgs([]string{"--auth"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
