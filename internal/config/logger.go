package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CreateLogger builds the logger described by the [log] section.
func (c *Config) CreateLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if c.Log.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}
