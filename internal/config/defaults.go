package config

import (
	"github.com/spf13/viper"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
)

// setDefaults sets all default values, matching Dash Core's consensus limits
func setDefaults(v *viper.Viper) {
	// Codec defaults
	v.SetDefault("codec.max_vec_size", uint64(binarycodec.DefaultMaxVecSize))
	v.SetDefault("codec.max_list_len", uint64(binarycodec.DefaultMaxListLen))
	v.SetDefault("codec.max_bitset_len", uint64(binarycodec.DefaultMaxBitsetLen))

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}
