package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestCreateLogger(t *testing.T) {
	tt := []struct {
		description string
		log         LogConfig
		debug       bool
		warn        bool
	}{
		{"production info", LogConfig{Level: "info"}, false, true},
		{"development debug", LogConfig{Level: "debug", Development: true}, true, true},
		{"upper case error", LogConfig{Level: "ERROR"}, false, false},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			config := &Config{Log: tc.log}
			logger, err := config.CreateLogger()
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tc.debug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tc.warn, logger.Core().Enabled(zapcore.WarnLevel))
			assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
		})
	}
}

func TestCreateLoggerRejectsUnknownLevel(t *testing.T) {
	config := &Config{Log: LogConfig{Level: "loud"}}
	_, err := config.CreateLogger()
	require.Error(t, err)
}
