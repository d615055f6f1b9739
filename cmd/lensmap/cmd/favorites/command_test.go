package favorites

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/cmd/application/apptest"
	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
)

func TestToggleAndList(t *testing.T) {
	ctx := context.Background()
	app, out := apptest.NewMock(t, "json")

	for _, id := range []string{"e", "b"} {
		cmd := NewCommand(app)
		cmd.SetArgs([]string{"toggle", id})
		require.NoError(t, cmd.ExecuteContext(ctx))
	}
	assert.Contains(t, out.String(), "Added Cine Portrait to favorites")

	out.Reset()
	list := NewCommand(app)
	list.SetArgs([]string{"list"})
	require.NoError(t, list.ExecuteContext(ctx))

	var lenses []catalogs.Lens
	require.NoError(t, json.Unmarshal(out.Bytes(), &lenses))
	require.Len(t, lenses, 2)
	assert.Equal(t, "b", lenses[0].ID)

	out.Reset()
	untoggle := NewCommand(app)
	untoggle.SetArgs([]string{"toggle", "b"})
	require.NoError(t, untoggle.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "Removed Fast Fifty from favorites")

	client, err := app.Client(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, client.Preferences().Favorites().Sorted())
}

func TestToggleUnknownLens(t *testing.T) {
	app, _ := apptest.NewMock(t, "json")
	cmd := NewCommand(app)
	cmd.SetArgs([]string{"toggle", "ghost"})
	assert.True(t, errors.IsNotFound(cmd.ExecuteContext(context.Background())))
}

func TestBareCommandLists(t *testing.T) {
	app, out := apptest.NewMock(t, "json")
	cmd := NewCommand(app)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.JSONEq(t, `[]`, out.String())
}
