// Package config loads runtime configuration for the blindboxctl client.
//
// Sources & precedence
//
//  1. Built-in defaults (envconfig struct tags).
//  2. Environment variables, with a .env file autoloaded if present.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-s string   path of the local session store database
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all client configuration.
type Config struct {
	// BaseURL is the root of the backend REST API, including the /api prefix.
	BaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`

	// Timeout bounds every backend request; expiry surfaces as a transport
	// failure, not a distinguished kind.
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`

	// StorePath locates the local session store database.
	StorePath string `envconfig:"STORE_PATH" default:"blindbox.db"`

	// NotifyTTL is how long a notification stays up unless dismissed.
	NotifyTTL time.Duration `envconfig:"NOTIFY_TTL" default:"3s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment and applies flag overrides
// from args (usually os.Args[1:]).
func Load(args []string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := parseFlags(&cfg, args); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parseFlags overlays selected Config fields from command-line flags.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("blindboxctl", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend REST API")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local session store database")
	return fs.Parse(args)
}

// SlogLevel maps the configured level name to a slog.Level, defaulting to
// info for anything unrecognized.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
