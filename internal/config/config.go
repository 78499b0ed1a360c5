package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the waste service.
// Environment variables are automatically parsed from ECOSORT_ prefix
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// BaseURL is the externally reachable root of this service; upload and
	// image URLs are minted under it.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080"`

	// Storage. DBDriver "auto" picks postgres when a DSN is set, sqlite otherwise.
	DBDriver    string `envconfig:"DB_DRIVER" default:"auto"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/ecosort.db"`

	// Uploaded image bytes live here (local blob driver).
	UploadDir string `envconfig:"UPLOAD_DIR" default:"./data/uploads"`

	// Vision classifier (OpenAI-compatible chat completions endpoint).
	AIBaseURL string `envconfig:"AI_BASE_URL" default:"https://api.openai.com"`
	AIAPIKey  string `envconfig:"AI_API_KEY" default:""`
	AIModel   string `envconfig:"AI_MODEL" default:"gpt-4o-mini"`

	// AdminAPIKey guards operator endpoints (catalog seeding). Empty leaves
	// them disabled.
	AdminAPIKey string `envconfig:"ADMIN_API_KEY" default:""`

	// Health probing
	HealthIntervalSeconds int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"15"`
	HealthTimeoutSeconds  int `envconfig:"HEALTH_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults derives DBDriver when set to "auto" or empty and validates
// the resulting combination.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		if c.PostgresDSN != "" {
			c.DBDriver = "postgres"
		} else {
			c.DBDriver = "sqlite"
		}
	}

	switch c.DBDriver {
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("DB_DRIVER=sqlite requires SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Environment variables should be prefixed with ECOSORT_
// Example: ECOSORT_HTTP_PORT, ECOSORT_POSTGRES_DSN
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("ECOSORT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Str("base_url", cfg.BaseURL).
		Str("ai_model", cfg.AIModel).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Bool("admin_api_key_present", cfg.AdminAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:           EnvTesting,
		HTTPPort:              8080,
		BaseURL:               "http://localhost:8080",
		DBDriver:              "sqlite",
		SQLitePath:            ":memory:",
		UploadDir:             "./testdata/uploads",
		AIBaseURL:             "http://localhost:11434",
		AIModel:               "gpt-4o-mini",
		HealthIntervalSeconds: 1,
		HealthTimeoutSeconds:  1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
