package tx

import (
	"io"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
	crypto "github.com/LeJamon/goDashTx/internal/crypto/common"
)

// Size returns the exact number of bytes Encode writes.
func (t *Transaction) Size() int {
	size := 2 + 2 + transactions.TxInsSize(t.Inputs) + transactions.TxOutsSize(t.Outputs) + 4
	if t.HasPayload() && t.Payload != nil {
		size += serdes.VarBytesLen(t.Payload.Size())
	}
	return size
}

// Encode writes the consensus encoding of t. The payload is written behind
// its own compact size length.
func (t *Transaction) Encode(s *serdes.BinarySerializer) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	start := s.Written()
	if _, err := s.WriteUint16(t.Version); err != nil {
		return s.Written() - start, err
	}
	if _, err := s.WriteUint16(uint16(t.Type)); err != nil {
		return s.Written() - start, err
	}
	if _, err := transactions.EncodeTxIns(s, t.Inputs); err != nil {
		return s.Written() - start, err
	}
	if _, err := transactions.EncodeTxOuts(s, t.Outputs); err != nil {
		return s.Written() - start, err
	}
	if _, err := s.WriteUint32(t.LockTime); err != nil {
		return s.Written() - start, err
	}
	if !t.HasPayload() {
		return s.Written() - start, nil
	}

	size := t.Payload.Size()
	if _, err := s.WriteCompactSize(uint64(size)); err != nil {
		return s.Written() - start, err
	}
	n, err := t.Payload.Encode(s)
	if err != nil {
		return s.Written() - start, err
	}
	if n != size {
		return s.Written() - start, &binarycodec.SizeMismatchError{Reported: size, Written: n}
	}
	return s.Written() - start, nil
}

// Serialize returns the consensus encoding of t.
func (t *Transaction) Serialize() ([]byte, error) {
	return serdes.Serialize(t)
}

// Txid returns the double SHA-256 of the full encoding.
func (t *Transaction) Txid() (types.Txid, error) {
	h, err := crypto.DoubleSHA256Encoding(func(w io.Writer) error {
		_, err := t.Encode(serdes.NewBinarySerializer(w))
		return err
	})
	if err != nil {
		return types.Txid{}, err
	}
	return types.Txid(h), nil
}

// HashInputs returns the double SHA-256 of the concatenated input outpoints,
// the value provider payloads commit to in their inputs hash.
func (t *Transaction) HashInputs() types.InputsHash {
	// Hash writers never fail.
	h, _ := crypto.DoubleSHA256Encoding(func(w io.Writer) error {
		s := serdes.NewBinarySerializer(w)
		for _, in := range t.Inputs {
			if _, err := in.PreviousOutput.Encode(s); err != nil {
				return err
			}
		}
		return nil
	})
	return types.InputsHash(h)
}
