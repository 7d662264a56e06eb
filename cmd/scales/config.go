package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-scales/internal/config"
	"github.com/phrazzld/scry-scales/internal/platform/logger"
)

// loadAppConfig loads the configuration from the environment and an
// optional config file.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures the application logger. Logs go to out so the
// game keeps stdout to itself.
func setupAppLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Log, out)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Debug("configuration loaded",
		"notation", cfg.Trainer.Notation,
		"exercise", cfg.Trainer.Exercise,
		"levels", cfg.Trainer.Levels,
		"seeded", cfg.Trainer.Seed != 0)

	return l, nil
}
