package config

import (
	"fmt"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
)

// Ceilings for the configurable codec limits.
const (
	MaxVecSizeCeiling = binarycodec.DefaultMaxVecSize * 8
	MaxListLenCeiling = binarycodec.DefaultMaxListLen * 8
)

// CodecConfig represents the [codec] section
// Upper bounds on declared lengths, checked before anything is allocated.
type CodecConfig struct {
	MaxVecSize   uint64 `toml:"max_vec_size" mapstructure:"max_vec_size"`
	MaxListLen   uint64 `toml:"max_list_len" mapstructure:"max_list_len"`
	MaxBitsetLen uint64 `toml:"max_bitset_len" mapstructure:"max_bitset_len"`
}

// Validate performs validation on the codec configuration
func (c *CodecConfig) Validate() error {
	if c.MaxVecSize == 0 {
		return fmt.Errorf("max_vec_size must be positive")
	}
	if c.MaxListLen == 0 {
		return fmt.Errorf("max_list_len must be positive")
	}
	if c.MaxBitsetLen == 0 {
		return fmt.Errorf("max_bitset_len must be positive")
	}
	// Declared lengths up to max_vec_size are allocated before reading.
	if c.MaxVecSize > MaxVecSizeCeiling {
		return fmt.Errorf("max_vec_size %d exceeds ceiling %d", c.MaxVecSize, uint64(MaxVecSizeCeiling))
	}
	if c.MaxListLen > MaxListLenCeiling {
		return fmt.Errorf("max_list_len %d exceeds ceiling %d", c.MaxListLen, uint64(MaxListLenCeiling))
	}
	// A bitset is itself a byte vector.
	if c.MaxBitsetLen > c.MaxVecSize*8 {
		return fmt.Errorf("max_bitset_len %d exceeds max_vec_size*8 (%d)", c.MaxBitsetLen, c.MaxVecSize*8)
	}
	return nil
}

// Limits converts the section to decoder limits
func (c *CodecConfig) Limits() binarycodec.Limits {
	return binarycodec.Limits{
		MaxVecSize:   c.MaxVecSize,
		MaxListLen:   c.MaxListLen,
		MaxBitsetLen: c.MaxBitsetLen,
	}.WithDefaults()
}
