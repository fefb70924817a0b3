package transactions

import (
	"fmt"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
)

// TxIn spends a previous output.
type TxIn struct {
	PreviousOutput OutPoint `json:"previousOutput"`
	ScriptSig      Script   `json:"scriptSig"`
	Sequence       uint32   `json:"sequence"`
}

func (in TxIn) Size() int {
	return OutPointSize + in.ScriptSig.Size() + 4
}

func (in TxIn) Encode(s *serdes.BinarySerializer) (int, error) {
	total, err := in.PreviousOutput.Encode(s)
	if err != nil {
		return total, err
	}
	n, err := in.ScriptSig.Encode(s)
	total += n
	if err != nil {
		return total, err
	}
	n, err = s.WriteUint32(in.Sequence)
	return total + n, err
}

func (in *TxIn) Decode(p *serdes.BinaryParser) error {
	if err := in.PreviousOutput.Decode(p); err != nil {
		return fmt.Errorf("previous output: %w", err)
	}
	if err := in.ScriptSig.Decode(p); err != nil {
		return fmt.Errorf("script sig: %w", err)
	}
	seq, err := p.ReadUint32()
	if err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	in.Sequence = seq
	return nil
}

// TxOut is an amount locked to a script. Value is in duffs.
type TxOut struct {
	Value        int64  `json:"value"`
	ScriptPubKey Script `json:"scriptPubKey"`
}

func (out TxOut) Size() int {
	return 8 + out.ScriptPubKey.Size()
}

func (out TxOut) Encode(s *serdes.BinarySerializer) (int, error) {
	total, err := s.WriteInt64(out.Value)
	if err != nil {
		return total, err
	}
	n, err := out.ScriptPubKey.Encode(s)
	return total + n, err
}

func (out *TxOut) Decode(p *serdes.BinaryParser) error {
	value, err := p.ReadInt64()
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	if err := out.ScriptPubKey.Decode(p); err != nil {
		return fmt.Errorf("script pubkey: %w", err)
	}
	out.Value = value
	return nil
}

// EncodeTxIns writes a compact-size-prefixed list of inputs.
func EncodeTxIns(s *serdes.BinarySerializer, ins []TxIn) (int, error) {
	total, err := s.WriteCompactSize(uint64(len(ins)))
	if err != nil {
		return total, err
	}
	for _, in := range ins {
		n, err := in.Encode(s)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// DecodeTxIns reads a compact-size-prefixed list of inputs.
func DecodeTxIns(p *serdes.BinaryParser) ([]TxIn, error) {
	count, err := p.ReadCount()
	if err != nil {
		return nil, err
	}
	var ins []TxIn
	if count > 0 {
		ins = make([]TxIn, 0, min(count, listPrealloc))
	}
	for i := 0; i < count; i++ {
		var in TxIn
		if err := in.Decode(p); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		ins = append(ins, in)
	}
	return ins, nil
}

// TxInsSize returns the encoded size of a compact-size-prefixed input list.
func TxInsSize(ins []TxIn) int {
	size := binarycodec.CompactSizeLen(uint64(len(ins)))
	for _, in := range ins {
		size += in.Size()
	}
	return size
}

// EncodeTxOuts writes a compact-size-prefixed list of outputs.
func EncodeTxOuts(s *serdes.BinarySerializer, outs []TxOut) (int, error) {
	total, err := s.WriteCompactSize(uint64(len(outs)))
	if err != nil {
		return total, err
	}
	for _, out := range outs {
		n, err := out.Encode(s)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// DecodeTxOuts reads a compact-size-prefixed list of outputs.
func DecodeTxOuts(p *serdes.BinaryParser) ([]TxOut, error) {
	count, err := p.ReadCount()
	if err != nil {
		return nil, err
	}
	var outs []TxOut
	if count > 0 {
		outs = make([]TxOut, 0, min(count, listPrealloc))
	}
	for i := 0; i < count; i++ {
		var out TxOut
		if err := out.Decode(p); err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// TxOutsSize returns the encoded size of a compact-size-prefixed output list.
func TxOutsSize(outs []TxOut) int {
	size := binarycodec.CompactSizeLen(uint64(len(outs)))
	for _, out := range outs {
		size += out.Size()
	}
	return size
}
