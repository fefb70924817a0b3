package special

import (
	"fmt"

	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
)

// AssetLockPayload moves funds into the asset lock credit pool. Count is the
// wire-declared byte and is kept verbatim; CreditOutputs carries its own
// compact size prefix.
type AssetLockPayload struct {
	Version       uint8                `json:"version"`
	Count         uint8                `json:"count"`
	CreditOutputs []transactions.TxOut `json:"creditOutputs"`
}

func (a *AssetLockPayload) Type() Type {
	return TypeAssetLock
}

// Size returns the exact number of bytes Encode writes.
func (a *AssetLockPayload) Size() int {
	return 1 + 1 + transactions.TxOutsSize(a.CreditOutputs)
}

func (a *AssetLockPayload) Encode(s *serdes.BinarySerializer) (int, error) {
	start := s.Written()
	if _, err := s.WriteUint8(a.Version); err != nil {
		return s.Written() - start, err
	}
	if _, err := s.WriteUint8(a.Count); err != nil {
		return s.Written() - start, err
	}
	_, err := transactions.EncodeTxOuts(s, a.CreditOutputs)
	return s.Written() - start, err
}

func (a *AssetLockPayload) Decode(p *serdes.BinaryParser) error {
	var out AssetLockPayload
	var err error

	if out.Version, err = p.ReadUint8(); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	if out.Count, err = p.ReadUint8(); err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if out.CreditOutputs, err = transactions.DecodeTxOuts(p); err != nil {
		return fmt.Errorf("credit outputs: %w", err)
	}

	*a = out
	return nil
}

func (a *AssetLockPayload) isTransactionPayload() {}
