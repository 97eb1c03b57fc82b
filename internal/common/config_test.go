package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.Equal(t, 0.50, cfg.Analytics.InitialMarginReq)
	assert.Equal(t, 0.25, cfg.Analytics.MaintMarginReq)
	assert.Equal(t, 0.06, cfg.Analytics.MarginInterestRate)
	assert.Equal(t, 0.05, cfg.Analytics.DividendGrowthRate)
	assert.Equal(t, 5, cfg.Analytics.ProjectionYears)
	assert.Equal(t, 1000, cfg.Analytics.Simulations)
	assert.Equal(t, 100000, cfg.Analytics.MaxSimulations)
	assert.Equal(t, 365, cfg.Analytics.MaxHorizonDays)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lever.toml")

	content := `
environment = "production"

[server]
port = 9090

[analytics]
maint_margin_req = 0.30
simulations = 5000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 0.30, cfg.Analytics.MaintMarginReq)
	assert.Equal(t, 5000, cfg.Analytics.Simulations)

	// Untouched keys keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 0.50, cfg.Analytics.InitialMarginReq)
}

func TestLoadConfig_MissingFilesSkipped(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/lever.toml", "")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LEVER_ENV", "production")
	t.Setenv("LEVER_PORT", "3000")
	t.Setenv("LEVER_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_InvalidPortIgnored(t *testing.T) {
	t.Setenv("LEVER_PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"prod", true},
		{"PRODUCTION", true},
		{" prod ", true},
		{"development", false},
		{"", false},
	}

	for _, tt := range tests {
		cfg := &Config{Environment: tt.env}
		assert.Equal(t, tt.want, cfg.IsProduction(), "env=%q", tt.env)
	}
}
