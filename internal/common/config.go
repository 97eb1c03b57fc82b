// Package common provides shared utilities for Lever
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Lever
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	Analytics   AnalyticsConfig `toml:"analytics"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// AnalyticsConfig holds the default parameters handed to the analytics
// engine when a request does not supply its own, plus the server-side
// caps on the Monte-Carlo simulation.
type AnalyticsConfig struct {
	InitialMarginReq   float64 `toml:"initial_margin_req"`
	MaintMarginReq     float64 `toml:"maint_margin_req"`
	MarginInterestRate float64 `toml:"margin_interest_rate"`
	DividendGrowthRate float64 `toml:"dividend_growth_rate"`
	ProjectionYears    int     `toml:"projection_years"`
	DailyVolatility    float64 `toml:"daily_volatility"`
	Simulations        int     `toml:"simulations"`
	MaxSimulations     int     `toml:"max_simulations"`
	MaxHorizonDays     int     `toml:"max_horizon_days"`
	VaRRequestsPerSec  float64 `toml:"var_requests_per_sec"`
	VaRBurst           int     `toml:"var_burst"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Analytics: AnalyticsConfig{
			InitialMarginReq:   0.50,
			MaintMarginReq:     0.25,
			MarginInterestRate: 0.06,
			DividendGrowthRate: 0.05,
			ProjectionYears:    5,
			DailyVolatility:    0.02,
			Simulations:        1000,
			MaxSimulations:     100000,
			MaxHorizonDays:     365,
			VaRRequestsPerSec:  5,
			VaRBurst:           10,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
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
	if env := os.Getenv("LEVER_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("LEVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("LEVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("LEVER_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("LEVER_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
