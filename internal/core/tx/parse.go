package tx

import (
	"fmt"

	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/core/tx/special"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
)

// Decode reads a transaction from p. The payload length prefix bounds the
// payload decoder, which must consume every byte.
func (t *Transaction) Decode(p *serdes.BinaryParser) error {
	var out Transaction

	version, err := p.ReadUint16()
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}
	txType, err := p.ReadUint16()
	if err != nil {
		return fmt.Errorf("type: %w", err)
	}
	out.Version, out.Type = version, special.Type(txType)

	if out.Inputs, err = transactions.DecodeTxIns(p); err != nil {
		return fmt.Errorf("inputs: %w", err)
	}
	if out.Outputs, err = transactions.DecodeTxOuts(p); err != nil {
		return fmt.Errorf("outputs: %w", err)
	}
	if out.LockTime, err = p.ReadUint32(); err != nil {
		return fmt.Errorf("lock time: %w", err)
	}

	if out.HasPayload() {
		raw, err := p.ReadVarBytes()
		if err != nil {
			return fmt.Errorf("extra payload: %w", err)
		}
		if out.Payload, err = special.DecodePayloadBytes(out.Type, raw, p.Limits()); err != nil {
			return fmt.Errorf("extra payload: %w", err)
		}
	}

	*t = out
	return nil
}
