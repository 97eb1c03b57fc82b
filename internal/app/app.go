// Package app wires configuration and logging into the shared core used
// by the server entrypoint. Lever holds no state between calls — every
// analytics request carries its own portfolio snapshot — so there is no
// storage or client layer to initialize.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/lever/internal/common"
)

// App holds the initialized configuration and logger.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and initializes the logger.
// configPath may be empty, in which case the default resolution logic is
// used: LEVER_CONFIG env, lever.toml beside the binary, then
// config/lever.toml for development.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("LEVER_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "lever.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/lever.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	a := &App{
		Config:      config,
		Logger:      logger,
		StartupTime: startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}
