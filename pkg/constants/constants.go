// Package constants provides shared constants used throughout the lensmap codebase.
// This includes timeouts, limits, file permissions, and storage names
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to a remote catalog
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute

	// BreakerOpenTimeout is how long the remote catalog breaker stays open before probing again
	BreakerOpenTimeout = 30 * time.Second

	// BreakerInterval is the window after which the breaker clears its failure counts
	BreakerInterval = 1 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for files holding user preferences (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// MaxComparisonItems is the capacity of the comparison set
	MaxComparisonItems = 4

	// BreakerMaxFailures is the number of consecutive failures that opens the breaker
	BreakerMaxFailures = 5

	// MaxResponseBytes caps the size of a remote catalog response body (16 MB)
	MaxResponseBytes = 16 << 20
)

// Storage names
const (
	// FavoritesFile is the file name of the favorites set in a file store
	FavoritesFile = "favorites.yaml"

	// ComparisonFile is the file name of the comparison set in a file store
	ComparisonFile = "comparison.yaml"

	// RedisKeyPrefix prefixes every key written by the Redis store
	RedisKeyPrefix = "lensmap"
)

// Catalog document names
const (
	LensesFile  = "lenses.yaml"
	CamerasFile = "cameras.yaml"
	FormatsFile = "formats.yaml"
	RentalsFile = "rentals.yaml"
)

// Path constants
const (
	// DefaultDataPath is the default directory for preference files
	DefaultDataPath = "~/.lensmap"

	// DefaultConfigName is the config file base name searched in $HOME and the working directory
	DefaultConfigName = ".lensmap"
)
