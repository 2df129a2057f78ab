// Package config loads lunchdesk configuration from the environment
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the complete lunchdesk configuration
type Config struct {
	Server  ServerConfig
	Client  ClientConfig
	Query   QueryConfig
	Cache   CacheConfig
	Session SessionConfig
	Fixture FixtureConfig
	Log     LogConfig
}

// ServerConfig points the tooling at the dashboard API
type ServerConfig struct {
	Address string `env:"LUNCHDESK_SERVER_ADDRESS" envDefault:"http://localhost:8080"`
}

// ClientConfig tunes the API client
type ClientConfig struct {
	Timeout time.Duration `env:"LUNCHDESK_CLIENT_TIMEOUT" envDefault:"30s"`
}

// QueryConfig holds the list view defaults
type QueryConfig struct {
	Limit    int           `env:"LUNCHDESK_PAGE_SIZE" envDefault:"10"`
	Debounce time.Duration `env:"LUNCHDESK_SEARCH_DEBOUNCE" envDefault:"600ms"`
}

// CacheConfig sizes the query cache
type CacheConfig struct {
	Size int           `env:"LUNCHDESK_CACHE_SIZE" envDefault:"128"`
	TTL  time.Duration `env:"LUNCHDESK_CACHE_TTL" envDefault:"60s"`
}

// SessionConfig locates the persisted session
type SessionConfig struct {
	Path string `env:"LUNCHDESK_SESSION_FILE"`
}

// FixtureConfig configures the development fixture backend
type FixtureConfig struct {
	Listen string `env:"FIXTURE_LISTEN" envDefault:":8080"`
	DSN    string `env:"FIXTURE_DSN" envDefault:"file:lunchdesk-fixture.db?cache=shared"`
	Token  string `env:"FIXTURE_TOKEN"`
	Seed   bool   `env:"FIXTURE_SEED" envDefault:"true"`
}

// LogConfig sets the log level
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then parses the environment
func Load() (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Session.Path == "" {
		cfg.Session.Path = DefaultSessionPath()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the configuration built from the default values alone
func Defaults() *Config {
	cfg := &Config{}
	// the defaults are static, so parsing them cannot fail
	_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	cfg.Session.Path = DefaultSessionPath()
	return cfg
}

// Validate checks the values env tags cannot express
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.Query.Limit < 1 {
		return fmt.Errorf("page size must be positive, got %d", c.Query.Limit)
	}
	if c.Cache.Size < 1 {
		return fmt.Errorf("cache size must be positive, got %d", c.Cache.Size)
	}
	return nil
}

// DefaultSessionPath returns the session file location under the user config directory
func DefaultSessionPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "lunchdesk", "session.toml")
}
