package special

import (
	"fmt"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
	"github.com/LeJamon/goDashTx/internal/core/types/transactions"
)

// ProviderUpdateServicePayload lets a masternode operator update the service
// address of a registered masternode and, when an operator reward was set,
// its operator payout script (DIP3 ProUpServTx). PayloadSig is the operator's
// BLS signature over BasePayloadHash.
type ProviderUpdateServicePayload struct {
	Version   uint16          `json:"version"`
	ProTxHash types.Txid      `json:"proTxHash"`
	IPAddress types.IPAddress `json:"service"`
	// Port is held in host order; it is big-endian on the wire.
	Port         uint16              `json:"port"`
	ScriptPayout transactions.Script `json:"scriptPayout"`
	InputsHash   types.InputsHash    `json:"inputsHash"`
	PayloadSig   types.BLSSignature  `json:"payloadSig"`
}

func (u *ProviderUpdateServicePayload) Type() Type {
	return TypeProviderUpdateService
}

// Size returns the exact number of bytes Encode writes.
func (u *ProviderUpdateServicePayload) Size() int {
	return 2 + 32 + 16 + 2 + u.ScriptPayout.Size() + 32 + types.BLSSignatureSize
}

// EncodeBasePayload writes every field except PayloadSig.
func (u *ProviderUpdateServicePayload) EncodeBasePayload(s *serdes.BinarySerializer) (int, error) {
	start := s.Written()
	if _, err := s.WriteUint16(u.Version); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, u.ProTxHash); err != nil {
		return s.Written() - start, err
	}
	if _, err := types.Encode(s, u.IPAddress); err != nil {
		return s.Written() - start, err
	}
	if _, err := s.WriteUint16(binarycodec.HostToNetworkPort(u.Port)); err != nil {
		return s.Written() - start, err
	}
	if _, err := u.ScriptPayout.Encode(s); err != nil {
		return s.Written() - start, err
	}
	_, err := types.Encode(s, u.InputsHash)
	return s.Written() - start, err
}

func (u *ProviderUpdateServicePayload) Encode(s *serdes.BinarySerializer) (int, error) {
	start := s.Written()
	if _, err := u.EncodeBasePayload(s); err != nil {
		return s.Written() - start, err
	}
	_, err := types.Encode(s, u.PayloadSig)
	return s.Written() - start, err
}

func (u *ProviderUpdateServicePayload) Decode(p *serdes.BinaryParser) error {
	var out ProviderUpdateServicePayload
	var err error

	if out.Version, err = p.ReadUint16(); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	if out.ProTxHash, err = types.Decode[types.Txid](p); err != nil {
		return fmt.Errorf("pro tx hash: %w", err)
	}
	if out.IPAddress, err = types.Decode[types.IPAddress](p); err != nil {
		return fmt.Errorf("ip address: %w", err)
	}
	port, err := p.ReadUint16()
	if err != nil {
		return fmt.Errorf("port: %w", err)
	}
	out.Port = binarycodec.NetworkToHostPort(port)
	if err := out.ScriptPayout.Decode(p); err != nil {
		return fmt.Errorf("script payout: %w", err)
	}
	if out.InputsHash, err = types.Decode[types.InputsHash](p); err != nil {
		return fmt.Errorf("inputs hash: %w", err)
	}
	if out.PayloadSig, err = types.Decode[types.BLSSignature](p); err != nil {
		return fmt.Errorf("payload sig: %w", err)
	}

	*u = out
	return nil
}

// BasePayloadHash returns the message PayloadSig signs.
func (u *ProviderUpdateServicePayload) BasePayloadHash() types.SpecialTransactionPayloadHash {
	return BasePayloadHash(u)
}

func (u *ProviderUpdateServicePayload) isTransactionPayload() {}
