package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
)

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourceFiles    = "files"
	SourceRemote   = "remote"
)

// Preference stores.
const (
	StoreFiles  = "files"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog source
	CatalogSource string
	CatalogPath   string
	RemoteURL     string
	RemoteAPIKey  string

	// Preference store
	Store         string
	StorePath     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (LENSMAP_ prefixed or bare)
// 3. .env files
// 4. Config file (~/.lensmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), "")
}

// loadConfig reads configuration into v. An explicit configFile must exist.
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	// .env files first so viper sees their values as environment
	loadEnvFiles()

	v.SetEnvPrefix("lensmap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"log_level", "log_format", "log_output"} {
		// Logging is also configured by the unprefixed variables pkg/logging reads.
		_ = v.BindEnv(key, "LENSMAP_"+strings.ToUpper(key), strings.ToUpper(key))
	}
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config file", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		// A missing config file is fine.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config file", "cannot parse config", err)
			}
		}
	}

	config := &Config{
		Format:     v.GetString("output"),
		ConfigFile: v.ConfigFileUsed(),

		CatalogSource: strings.ToLower(v.GetString("catalog_source")),
		CatalogPath:   v.GetString("catalog_path"),
		RemoteURL:     v.GetString("remote_url"),
		RemoteAPIKey:  v.GetString("remote_api_key"),

		Store:         strings.ToLower(v.GetString("store")),
		StorePath:     v.GetString("store_path"),
		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog_source", SourceEmbedded)
	v.SetDefault("store", StoreFiles)
	v.SetDefault("store_path", constants.DefaultDataPath)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// Validate checks that the selected source and store are usable.
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceEmbedded:
	case SourceFiles:
		if c.CatalogPath == "" {
			return errors.NewConfigError("catalog", "catalog_path is required for the files source", nil)
		}
	case SourceRemote:
		if c.RemoteURL == "" {
			return errors.NewConfigError("catalog", "remote_url is required for the remote source", nil)
		}
	default:
		return errors.NewConfigError("catalog", "unknown catalog_source "+c.CatalogSource+": must be embedded, files or remote", nil)
	}

	switch c.Store {
	case StoreFiles:
		if c.StorePath == "" {
			return errors.NewConfigError("store", "store_path is required for the files store", nil)
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return errors.NewConfigError("store", "redis_addr is required for the redis store", nil)
		}
	case StoreMemory:
	default:
		return errors.NewConfigError("store", "unknown store "+c.Store+": must be files, redis or memory", nil)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win; godotenv never overrides.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
