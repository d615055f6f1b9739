package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/preferences"
)

func TestMissingFilesAreEmpty(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "prefs"))
	require.NoError(t, err)

	favorites, err := store.LoadFavorites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, favorites.Len())

	comparison, err := store.LoadComparison(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, comparison.Len())
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "prefs")
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.SaveFavorites(ctx, preferences.NewSet("b", "a")))
	require.NoError(t, store.SaveComparison(ctx, preferences.NewSet("c")))

	favorites, err := store.LoadFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, favorites.Sorted())

	comparison, err := store.LoadComparison(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, comparison.Sorted())

	data, err := os.ReadFile(filepath.Join(dir, constants.FavoritesFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "lens_ids:")
	assert.Contains(t, string(data), "- a")

	info, err := os.Stat(filepath.Join(dir, constants.FavoritesFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.SecureFilePermissions), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files remain")
}

func TestSaveReplacesWholeSet(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveFavorites(ctx, preferences.NewSet("a", "b", "c")))
	require.NoError(t, store.SaveFavorites(ctx, preferences.NewSet()))

	favorites, err := store.LoadFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, favorites.Len())
}

func TestCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ComparisonFile), []byte("lens_ids: {not: [a list"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.FavoritesFile), []byte("lens_ids:\n  - \"\"\n"), 0o600))

	store, err := New(dir)
	require.NoError(t, err)

	_, err = store.LoadComparison(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsDataCorrupted(err))

	_, err = store.LoadFavorites(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsDataCorrupted(err))
}

func TestManagerOverFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	m, err := preferences.New(ctx, store)
	require.NoError(t, err)
	_, err = m.ToggleFavorite(ctx, "zeiss-21")
	require.NoError(t, err)
	require.NoError(t, m.AddToComparison(ctx, "a"))

	reopened, err := preferences.New(ctx, store)
	require.NoError(t, err)
	assert.True(t, reopened.IsFavorite("zeiss-21"))
	assert.True(t, reopened.IsComparing("a"))
}

func TestNewRejectsEmptyDir(t *testing.T) {
	_, err := New(" ")
	assert.True(t, errors.IsValidationError(err))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.lensmap")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".lensmap"), got)

	got, err = expandHome("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)
}

func TestCanceledContext(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.SaveFavorites(ctx, preferences.NewSet("a")), context.Canceled)
	_, err = store.LoadFavorites(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
