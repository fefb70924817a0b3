package config

import (
	"fmt"
	"strings"
)

// LogConfig represents the [log] section
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level" mapstructure:"level"`
	// Development switches to the human readable console encoder
	Development bool `toml:"development" mapstructure:"development"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation on the log configuration
func (l *LogConfig) Validate() error {
	level := strings.ToLower(l.Level)
	for _, valid := range validLogLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (valid options: %s)", l.Level, strings.Join(validLogLevels, ", "))
}
