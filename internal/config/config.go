package config

import (
	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
)

// Config represents the complete dashtx configuration
type Config struct {
	// Length limits applied while decoding
	Codec CodecConfig `toml:"codec" mapstructure:"codec"`

	// Logger settings
	Log LogConfig `toml:"log" mapstructure:"log"`

	// Internal fields for configuration management
	configPath string `toml:"-" mapstructure:"-"`
}

// DefaultConfigPath is the file LoadDefaultConfig reads when it exists.
const DefaultConfigPath = "dashtx.toml"

// GetConfigPath returns the path the configuration was loaded from, if any
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Limits returns the decoder limits described by the [codec] section.
func (c *Config) Limits() binarycodec.Limits {
	return c.Codec.Limits()
}
