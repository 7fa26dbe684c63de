// Package common provides shared utilities for Landmark
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Landmark
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Auth        AuthConfig      `toml:"auth"`
	Snapshot    SnapshotConfig  `toml:"snapshot"`
	Valuation   ValuationConfig `toml:"valuation"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// RateLimit is requests per second allowed per client; RateBurst is the
	// bucket size. Zero disables rate limiting.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

// StorageConfig holds path configuration for the embedded store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// AuthConfig holds authentication configuration for JWT.
type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	TokenExpiry string `toml:"token_expiry"` // duration string, default "24h"
}

// GetTokenExpiry parses and returns the token expiry duration.
func (c *AuthConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// SnapshotConfig controls the daily portfolio snapshot job.
type SnapshotConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron expression, default "@daily"
}

// GetSchedule returns the cron schedule, defaulting to "@daily".
func (c *SnapshotConfig) GetSchedule() string {
	if strings.TrimSpace(c.Schedule) == "" {
		return "@daily"
	}
	return c.Schedule
}

// ValuationConfig holds default factors for property valuation estimates.
type ValuationConfig struct {
	MarketAdjustment float64 `toml:"market_adjustment"` // around 1.0
	LocationFactor   float64 `toml:"location_factor"`
	ConditionFactor  float64 `toml:"condition_factor"`
	AnnualGrowthPct  float64 `toml:"annual_growth_pct"` // projection growth rate
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			RateLimit: 20,
			RateBurst: 40,
		},
		Storage: StorageConfig{
			Path: "data/landmark",
		},
		Auth: AuthConfig{
			JWTSecret:   "dev-jwt-secret-change-in-production",
			TokenExpiry: "24h",
		},
		Snapshot: SnapshotConfig{
			Enabled:  true,
			Schedule: "@daily",
		},
		Valuation: ValuationConfig{
			MarketAdjustment: 1.0,
			LocationFactor:   1.0,
			ConditionFactor:  1.0,
			AnnualGrowthPct:  4.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("LANDMARK_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("LANDMARK_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("LANDMARK_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("LANDMARK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("LANDMARK_DATA_PATH"); path != "" {
		config.Storage.Path = filepath.Join(path, "landmark")
	}

	if v := os.Getenv("LANDMARK_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("LANDMARK_TOKEN_EXPIRY"); v != "" {
		config.Auth.TokenExpiry = v
	}
	if v := os.Getenv("LANDMARK_SNAPSHOT_SCHEDULE"); v != "" {
		config.Snapshot.Schedule = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
