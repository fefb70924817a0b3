package tx

import (
	"fmt"

	"github.com/LeJamon/goDashTx/internal/core/tx/special"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
	"github.com/LeJamon/goDashTx/internal/protocol"
)

// Transaction is a Dash transaction. Version and Type share the 32-bit
// version field on the wire, Version in the low half and Type in the high
// half. Payload is present iff HasPayload reports true.
type Transaction struct {
	Version  uint16                     `json:"version"`
	Type     special.Type               `json:"type"`
	Inputs   []transactions.TxIn        `json:"vin"`
	Outputs  []transactions.TxOut       `json:"vout"`
	LockTime uint32                     `json:"locktime"`
	Payload  special.TransactionPayload `json:"extraPayload,omitempty"`
}

// HasPayload reports whether the wire form carries an extra payload.
func (t *Transaction) HasPayload() bool {
	return t.Version >= protocol.TransactionVersionSpecial && t.Type.IsSpecial()
}

// Validate checks that Payload agrees with Version and Type.
func (t *Transaction) Validate() error {
	if !t.HasPayload() {
		if t.Payload != nil {
			return fmt.Errorf("%w: version %d type %s", ErrUnexpectedPayload, t.Version, t.Type)
		}
		return nil
	}
	if t.Payload == nil {
		return fmt.Errorf("%w: type %s", ErrMissingPayload, t.Type)
	}
	if t.Payload.Type() != t.Type {
		return fmt.Errorf("%w: transaction %s, payload %s", ErrPayloadTypeMismatch, t.Type, t.Payload.Type())
	}
	return nil
}
