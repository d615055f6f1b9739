// Package files persists preference sets as YAML documents in a directory.
// Each set lives in its own file and is replaced atomically on save.
package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/logging"
	"github.com/agentstation/lensmap/pkg/preferences"
)

var _ preferences.Store = (*Store)(nil)

// document is the on-disk shape of one preference set.
type document struct {
	LensIDs []string `yaml:"lens_ids"`
}

// Store reads and writes favorites.yaml and comparison.yaml under a
// directory. A missing file is an empty set.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New returns a store rooted at dir. A leading "~" expands to the user's
// home directory. The directory is created on first save.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.NewValidationError("store_path", dir, "directory cannot be empty")
	}
	expanded, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	return &Store{dir: expanded}, nil
}

// Dir returns the directory holding the preference files.
func (s *Store) Dir() string {
	return s.dir
}

// LoadFavorites implements preferences.Store.
func (s *Store) LoadFavorites(ctx context.Context) (preferences.Set, error) {
	return s.load(ctx, constants.FavoritesFile)
}

// SaveFavorites implements preferences.Store.
func (s *Store) SaveFavorites(ctx context.Context, favorites preferences.Set) error {
	return s.save(ctx, constants.FavoritesFile, favorites)
}

// LoadComparison implements preferences.Store.
func (s *Store) LoadComparison(ctx context.Context) (preferences.Set, error) {
	return s.load(ctx, constants.ComparisonFile)
}

// SaveComparison implements preferences.Store.
func (s *Store) SaveComparison(ctx context.Context, comparison preferences.Set) error {
	return s.save(ctx, constants.ComparisonFile, comparison)
}

func (s *Store) load(ctx context.Context, name string) (preferences.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, name)

	s.mu.Lock()
	data, err := os.ReadFile(path)
	s.mu.Unlock()
	if os.IsNotExist(err) {
		logging.FromContext(ctx).Debug().Str("path", path).Msg("No preference file, starting empty")
		return preferences.NewSet(), nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	for _, id := range doc.LensIDs {
		if strings.TrimSpace(id) == "" {
			return nil, errors.NewDataCorrupted(path+": empty lens id", nil)
		}
	}
	return preferences.NewSet(doc.LensIDs...), nil
}

func (s *Store) save(ctx context.Context, name string, set preferences.Set) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.MarshalWithOptions(document{LensIDs: set.Sorted()},
		yaml.Indent(2),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return errors.NewDataCorrupted("encoding "+name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	tempFile, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", tempPath, err)
	}
	if err := tempFile.Chmod(constants.SecureFilePermissions); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("close", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("rename", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("size", set.Len()).
		Msg("Saved preference file")
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewConfigError("store", "resolving home directory", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
