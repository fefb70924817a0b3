// Package instantlock implements the InstantSend lock message (DIP22 islock).
package instantlock

import (
	"fmt"
	"io"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
	crypto "github.com/LeJamon/goDashTx/internal/crypto/common"
	"github.com/LeJamon/goDashTx/internal/protocol"
)

// DefaultVersion is the version of a newly built lock.
const DefaultVersion uint8 = 1

// InstantLock locks the inputs of a transaction to it. Signature is the
// quorum's BLS signature over the lock's RequestID and Txid.
type InstantLock struct {
	Version   uint8                   `json:"version"`
	Inputs    []transactions.OutPoint `json:"inputs"`
	Txid      types.Txid              `json:"txid"`
	CycleHash types.CycleHash         `json:"cyclehash"`
	Signature types.BLSSignature      `json:"signature"`
}

// New returns a lock with DefaultVersion.
func New(txid types.Txid, inputs []transactions.OutPoint, cycleHash types.CycleHash, sig types.BLSSignature) *InstantLock {
	return &InstantLock{
		Version:   DefaultVersion,
		Inputs:    inputs,
		Txid:      txid,
		CycleHash: cycleHash,
		Signature: sig,
	}
}

// Size returns the exact number of bytes Encode writes.
func (l *InstantLock) Size() int {
	return 1 + transactions.OutPointsSize(l.Inputs) + 32 + 32 + types.BLSSignatureSize
}

func (l *InstantLock) Encode(s *serdes.BinarySerializer) (int, error) {
	start := s.Written()
	if _, err := s.WriteUint8(l.Version); err != nil {
		return s.Written() - start, err
	}
	if _, err := transactions.EncodeOutPoints(s, l.Inputs); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, l.Txid); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, l.CycleHash); err != nil {
		return s.Written() - start, err
	}
	_, err := types.Encode(s, l.Signature)
	return s.Written() - start, err
}

func (l *InstantLock) Decode(p *serdes.BinaryParser) error {
	var out InstantLock
	var err error

	if out.Version, err = p.ReadUint8(); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	if out.Inputs, err = transactions.DecodeOutPoints(p); err != nil {
		return fmt.Errorf("inputs: %w", err)
	}
	if out.Txid, err = types.Decode[types.Txid](p); err != nil {
		return fmt.Errorf("txid: %w", err)
	}
	if out.CycleHash, err = types.Decode[types.CycleHash](p); err != nil {
		return fmt.Errorf("cycle hash: %w", err)
	}
	if out.Signature, err = types.Decode[types.BLSSignature](p); err != nil {
		return fmt.Errorf("signature: %w", err)
	}

	*l = out
	return nil
}

// Read decodes one lock from r. No more than limits.MaxVecSize bytes are
// read, whatever the declared input count.
func Read(r io.Reader, limits binarycodec.Limits) (*InstantLock, error) {
	limits = limits.WithDefaults()
	p := serdes.NewBinaryParser(io.LimitReader(r, int64(limits.MaxVecSize)), limits)
	var l InstantLock
	if err := l.Decode(p); err != nil {
		return nil, err
	}
	return &l, nil
}

// Parse decodes b, which must hold exactly one lock.
func Parse(b []byte, limits binarycodec.Limits) (*InstantLock, error) {
	limits = limits.WithDefaults()
	if err := limits.CheckVecSize(uint64(len(b))); err != nil {
		return nil, err
	}
	var l InstantLock
	if err := serdes.Deserialize(b, limits, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Serialize returns the consensus encoding of l.
func (l *InstantLock) Serialize() ([]byte, error) {
	return serdes.Serialize(l)
}

// Hash returns the double SHA-256 of the encoding.
func (l *InstantLock) Hash() types.InstantLockHash {
	// Hash writers never fail.
	h, _ := crypto.DoubleSHA256Encoding(func(w io.Writer) error {
		_, err := l.Encode(serdes.NewBinarySerializer(w))
		return err
	})
	return types.InstantLockHash(h)
}

// RequestID returns the id the signing quorum uses for this lock: the
// double SHA-256 of the "islock" prefix and the input list.
func (l *InstantLock) RequestID() types.RequestID {
	h, _ := crypto.DoubleSHA256Encoding(func(w io.Writer) error {
		s := serdes.NewBinarySerializer(w)
		if _, err := s.WriteVarBytes([]byte(protocol.RequestIDPrefixInstantLock)); err != nil {
			return err
		}
		_, err := transactions.EncodeOutPoints(s, l.Inputs)
		return err
	})
	return types.RequestID(h)
}
