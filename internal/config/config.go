// Package config handles loading and validating the hubctl configuration
// from the environment, an optional .env file, and an optional YAML file
// with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables holding the Hub API credentials. These names are
// part of the sample's documented contract.
const (
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
	EnvBaseURL      = "BASE_URL"
)

// Config is the top-level hubctl configuration.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTPTimeout  time.Duration
	Logging      LoggingConfig
}

// fileConfig is the YAML shape of the optional config file. The timeout
// is a duration string ("30s", "1m") parsed explicitly, since plain
// integers would silently mean nanoseconds.
type fileConfig struct {
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout string        `yaml:"http_timeout"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// MissingVarsError reports required environment variables that are
// missing or empty.
type MissingVarsError struct {
	Missing []string
}

func (e *MissingVarsError) Error() string {
	return fmt.Sprintf(
		"missing required environment variables: %s",
		strings.Join(e.Missing, ", "),
	)
}

// Load builds the configuration. An optional .env file at envFile (or
// ./.env when empty) is loaded best-effort first, then the optional YAML
// file at path, then the environment. Credentials come only from the
// CLIENT_ID and CLIENT_SECRET environment variables; either missing or
// empty is a fatal configuration error.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	} else {
		// A missing ./.env is fine; the variables may already be set.
		_ = godotenv.Load() //nolint:errcheck
	}

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		// Expand environment variables in the YAML content.
		expanded := os.ExpandEnv(string(data))

		var fc fileConfig
		if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}

		cfg.BaseURL = fc.BaseURL
		cfg.Logging = fc.Logging
		if fc.HTTPTimeout != "" {
			d, err := time.ParseDuration(fc.HTTPTimeout)
			if err != nil {
				return nil, fmt.Errorf("parsing http_timeout: %w", err)
			}
			cfg.HTTPTimeout = d
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	cfg.ClientID = os.Getenv(EnvClientID)
	cfg.ClientSecret = os.Getenv(EnvClientSecret)

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://hub.staging.nuvias-uc.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

func validate(cfg *Config) error {
	var missing []string

	if cfg.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if cfg.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}

	if len(missing) > 0 {
		return &MissingVarsError{Missing: missing}
	}

	return nil
}
