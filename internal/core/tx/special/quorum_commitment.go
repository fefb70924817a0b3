package special

import (
	"fmt"

	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
)

// quorumCommitmentFixedSize covers version, llmq type, quorum hash, public key,
// verification vector hash and both signatures.
const quorumCommitmentFixedSize = 2 + 1 + 32 + types.BLSPublicKeySize + 32 + types.BLSSignatureSize + types.BLSSignatureSize

// HasQuorumIndex reports whether a finalization commitment of the given
// version carries a quorum index on the wire. Encode, Decode and Size all
// use this predicate.
func HasQuorumIndex(version uint16) bool {
	return version == 2 || version == 4
}

// QuorumFinalizationCommitment is the result of a DKG session (DIP6 finalization phase).
type QuorumFinalizationCommitment struct {
	Version    uint16           `json:"version"`
	LLMQType   uint8            `json:"llmqType"`
	QuorumHash types.QuorumHash `json:"quorumHash"`
	// QuorumIndex is only on the wire when HasQuorumIndex(Version). An indexed
	// version with a nil index encodes zero; other versions ignore it.
	QuorumIndex     *int16               `json:"quorumIndex,omitempty"`
	Signers         []bool               `json:"signers"`
	ValidMembers    []bool               `json:"validMembers"`
	QuorumPublicKey types.BLSPublicKey   `json:"quorumPublicKey"`
	QuorumVVecHash  types.QuorumVVecHash `json:"quorumVvecHash"`
	QuorumSig       types.BLSSignature   `json:"quorumSig"`
	Sig             types.BLSSignature   `json:"sig"`
}

// Size returns the exact number of bytes Encode writes.
func (c *QuorumFinalizationCommitment) Size() int {
	size := quorumCommitmentFixedSize
	size += serdes.FixedBitsetLen(len(c.Signers))
	size += serdes.FixedBitsetLen(len(c.ValidMembers))
	if HasQuorumIndex(c.Version) {
		size += 2
	}
	return size
}

func (c *QuorumFinalizationCommitment) Encode(s *serdes.BinarySerializer) (int, error) {
	start := s.Written()
	if _, err := s.WriteUint16(c.Version); err != nil {
		return s.Written() - start, err
	}
	if _, err := s.WriteUint8(c.LLMQType); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, c.QuorumHash); err != nil {
		return s.Written() - start, err
	}
	if HasQuorumIndex(c.Version) {
		var index int16
		if c.QuorumIndex != nil {
			index = *c.QuorumIndex
		}
		if _, err := s.WriteInt16(index); err != nil {
			return s.Written() - start, err
		}
	}
	if _, err := s.WriteFixedBitset(c.Signers); err != nil {
		return s.Written() - start, err
	}
	if _, err := s.WriteFixedBitset(c.ValidMembers); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, c.QuorumPublicKey); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, c.QuorumVVecHash); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, c.QuorumSig); err != nil {
		return s.Written() - start, err
	}
	_, err := types.Encode(s, c.Sig)
	return s.Written() - start, err
}

func (c *QuorumFinalizationCommitment) Decode(p *serdes.BinaryParser) error {
	var out QuorumFinalizationCommitment
	var err error

	if out.Version, err = p.ReadUint16(); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	if out.LLMQType, err = p.ReadUint8(); err != nil {
		return fmt.Errorf("llmq type: %w", err)
	}
	if out.QuorumHash, err = types.Decode[types.QuorumHash](p); err != nil {
		return fmt.Errorf("quorum hash: %w", err)
	}
	if HasQuorumIndex(out.Version) {
		index, err := p.ReadInt16()
		if err != nil {
			return fmt.Errorf("quorum index: %w", err)
		}
		out.QuorumIndex = &index
	}
	if out.Signers, err = p.ReadFixedBitset(); err != nil {
		return fmt.Errorf("signers: %w", err)
	}
	if out.ValidMembers, err = p.ReadFixedBitset(); err != nil {
		return fmt.Errorf("valid members: %w", err)
	}
	if out.QuorumPublicKey, err = types.Decode[types.BLSPublicKey](p); err != nil {
		return fmt.Errorf("quorum public key: %w", err)
	}
	if out.QuorumVVecHash, err = types.Decode[types.QuorumVVecHash](p); err != nil {
		return fmt.Errorf("quorum vvec hash: %w", err)
	}
	if out.QuorumSig, err = types.Decode[types.BLSSignature](p); err != nil {
		return fmt.Errorf("quorum sig: %w", err)
	}
	if out.Sig, err = types.Decode[types.BLSSignature](p); err != nil {
		return fmt.Errorf("sig: %w", err)
	}

	*c = out
	return nil
}

// QuorumCommitmentPayload is the payload of a quorum commitment special
// transaction: the best final commitment of a DKG session, mined into a
// block (DIP6 mining phase).
type QuorumCommitmentPayload struct {
	Version                uint16                       `json:"version"`
	Height                 uint32                       `json:"height"`
	FinalizationCommitment QuorumFinalizationCommitment `json:"commitment"`
}

func (q *QuorumCommitmentPayload) Type() Type {
	return TypeQuorumCommitment
}

// Size returns the exact number of bytes Encode writes.
func (q *QuorumCommitmentPayload) Size() int {
	return 2 + 4 + q.FinalizationCommitment.Size()
}

func (q *QuorumCommitmentPayload) Encode(s *serdes.BinarySerializer) (int, error) {
	start := s.Written()
	if _, err := s.WriteUint16(q.Version); err != nil {
		return s.Written() - start, err
	}
	if _, err := s.WriteUint32(q.Height); err != nil {
		return s.Written() - start, err
	}
	_, err := q.FinalizationCommitment.Encode(s)
	return s.Written() - start, err
}

func (q *QuorumCommitmentPayload) Decode(p *serdes.BinaryParser) error {
	var out QuorumCommitmentPayload
	var err error

	if out.Version, err = p.ReadUint16(); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	if out.Height, err = p.ReadUint32(); err != nil {
		return fmt.Errorf("height: %w", err)
	}
	if err := out.FinalizationCommitment.Decode(p); err != nil {
		return fmt.Errorf("finalization commitment: %w", err)
	}

	*q = out
	return nil
}

func (q *QuorumCommitmentPayload) isTransactionPayload() {}
