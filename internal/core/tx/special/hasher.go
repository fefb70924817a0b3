package special

import (
	"hash"
	"io"

	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
	crypto "github.com/LeJamon/goDashTx/internal/crypto/common"
)

// BasePayloadEncodable is a payload whose trailing signature signs the
// encoding of every field before it.
type BasePayloadEncodable interface {
	// EncodeBasePayload writes every field except the trailing signature,
	// in full-encoding order.
	EncodeBasePayload(s *serdes.BinarySerializer) (int, error)
}

// BasePayloadHash returns the double SHA-256 of the payload's base fields:
// the message the operator key signs.
func BasePayloadHash(p BasePayloadEncodable) types.SpecialTransactionPayloadHash {
	// Hash writers never fail.
	h, _ := crypto.DoubleSHA256Encoding(func(w io.Writer) error {
		_, err := p.EncodeBasePayload(serdes.NewBinarySerializer(w))
		return err
	})
	return types.SpecialTransactionPayloadHash(h)
}

// BasePayloadHashWith hashes the base fields with h, which is reset first.
func BasePayloadHashWith(p BasePayloadEncodable, h hash.Hash) ([]byte, error) {
	h.Reset()
	if _, err := p.EncodeBasePayload(serdes.NewBinarySerializer(h)); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
