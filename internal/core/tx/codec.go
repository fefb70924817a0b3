package tx

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/config"
	"go.uber.org/zap"
)

// Codec decodes and encodes transactions under a set of length limits.
// A Codec holds no mutable state and may be shared between goroutines.
type Codec struct {
	limits binarycodec.Limits
	logger *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLimits sets the length limits applied while decoding.
func WithLimits(limits binarycodec.Limits) Option {
	return func(c *Codec) {
		c.limits = limits.WithDefaults()
	}
}

// WithLogger sets the logger rejected transactions are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCodec returns a Codec with default limits and a no-op logger.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		limits: binarycodec.DefaultLimits(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCodecFromConfig returns a Codec with the configured limits, logging
// through the configured logger.
func NewCodecFromConfig(cfg *config.Config) (*Codec, error) {
	logger, err := cfg.CreateLogger()
	if err != nil {
		return nil, err
	}
	return NewCodec(WithLimits(cfg.Limits()), WithLogger(logger.Named("tx"))), nil
}

// Limits returns the limits the codec decodes under.
func (c *Codec) Limits() binarycodec.Limits {
	return c.limits
}

// DecodeTransaction reads one transaction from r. Bytes after the
// transaction are left unread.
func (c *Codec) DecodeTransaction(r io.Reader) (*Transaction, error) {
	p := serdes.NewBinaryParser(r, c.limits)
	var t Transaction
	if err := t.Decode(p); err != nil {
		c.logger.Debug("rejected transaction",
			zap.Int("consumed", p.Consumed()),
			zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// ParseFromBinary decodes blob, which must hold exactly one transaction.
func (c *Codec) ParseFromBinary(blob []byte) (*Transaction, error) {
	p := serdes.NewBinaryParser(bytes.NewReader(blob), c.limits)
	var t Transaction
	err := t.Decode(p)
	if err == nil {
		err = p.ExpectEOF()
	}
	if err != nil {
		c.logger.Debug("rejected transaction",
			zap.Int("size", len(blob)),
			zap.Int("consumed", p.Consumed()),
			zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// DecodeTransactionHex decodes a hex encoded transaction.
func (c *Codec) DecodeTransactionHex(s string) (*Transaction, error) {
	blob, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transaction hex: %w", err)
	}
	return c.ParseFromBinary(blob)
}

// EncodeTransaction writes the consensus encoding of t to w.
func (c *Codec) EncodeTransaction(w io.Writer, t *Transaction) (int, error) {
	n, err := t.Encode(serdes.NewBinarySerializer(w))
	if err != nil {
		c.logger.Debug("failed to encode transaction",
			zap.Uint16("version", t.Version),
			zap.Stringer("type", t.Type),
			zap.Error(err))
	}
	return n, err
}

// ParseFromBinary decodes blob with default limits.
func ParseFromBinary(blob []byte) (*Transaction, error) {
	return NewCodec().ParseFromBinary(blob)
}
