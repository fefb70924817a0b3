package special

import (
	"fmt"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
)

// TransactionPayload is the extra payload of a special transaction. The
// concrete kind is chosen by the enclosing transaction's Type.
type TransactionPayload interface {
	serdes.Record
	Type() Type
	isTransactionPayload()
}

type decodablePayload interface {
	TransactionPayload
	serdes.Decodable
}

func newPayload(t Type) (decodablePayload, error) {
	switch t {
	case TypeProviderUpdateService:
		return &ProviderUpdateServicePayload{}, nil
	case TypeQuorumCommitment:
		return &QuorumCommitmentPayload{}, nil
	case TypeAssetLock:
		return &AssetLockPayload{}, nil
	default:
		return nil, &UnsupportedTypeError{Type: t}
	}
}

// Supported reports whether a payload decoder exists for t.
func Supported(t Type) bool {
	_, err := newPayload(t)
	return err == nil
}

// DecodePayload decodes the payload for type t from p.
func DecodePayload(t Type, p *serdes.BinaryParser) (TransactionPayload, error) {
	payload, err := newPayload(t)
	if err != nil {
		return nil, err
	}
	if err := payload.Decode(p); err != nil {
		return nil, fmt.Errorf("%s payload: %w", t, err)
	}
	return payload, nil
}

// DecodePayloadBytes decodes a length-delimited payload of type t; every
// byte must belong to the payload.
func DecodePayloadBytes(t Type, b []byte, limits binarycodec.Limits) (TransactionPayload, error) {
	payload, err := newPayload(t)
	if err != nil {
		return nil, err
	}
	if err := serdes.Deserialize(b, limits, payload); err != nil {
		return nil, fmt.Errorf("%s payload: %w", t, err)
	}
	return payload, nil
}

// EncodePayload writes payload to s.
func EncodePayload(s *serdes.BinarySerializer, payload TransactionPayload) (int, error) {
	return payload.Encode(s)
}

// AsProviderUpdateService returns the payload as a ProUpServTx payload.
func AsProviderUpdateService(payload TransactionPayload) (*ProviderUpdateServicePayload, bool) {
	u, ok := payload.(*ProviderUpdateServicePayload)
	return u, ok
}

// AsQuorumCommitment returns the payload as a quorum commitment payload.
func AsQuorumCommitment(payload TransactionPayload) (*QuorumCommitmentPayload, bool) {
	q, ok := payload.(*QuorumCommitmentPayload)
	return q, ok
}

// AsAssetLock returns the payload as an asset lock payload.
func AsAssetLock(payload TransactionPayload) (*AssetLockPayload, bool) {
	a, ok := payload.(*AssetLockPayload)
	return a, ok
}
