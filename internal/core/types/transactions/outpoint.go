package transactions

import (
	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types"
)

// OutPointSize is the encoded size of an OutPoint.
const OutPointSize = 32 + 4

// listPrealloc caps the capacity reserved up front for a decoded list so a
// large declared count cannot force a large allocation before any element
// has been read.
const listPrealloc = 64

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	Hash  types.Txid `json:"outpointHash"`
	Index uint32     `json:"outpointIndex"`
}

func (o OutPoint) Size() int {
	return OutPointSize
}

func (o OutPoint) Encode(s *serdes.BinarySerializer) (int, error) {
	n, err := types.Encode(s, o.Hash)
	if err != nil {
		return n, err
	}
	m, err := s.WriteUint32(o.Index)
	return n + m, err
}

func (o *OutPoint) Decode(p *serdes.BinaryParser) error {
	hash, err := types.Decode[types.Txid](p)
	if err != nil {
		return err
	}
	index, err := p.ReadUint32()
	if err != nil {
		return err
	}
	o.Hash, o.Index = hash, index
	return nil
}

// EncodeOutPoints writes a compact-size-prefixed list of outpoints.
func EncodeOutPoints(s *serdes.BinarySerializer, outpoints []OutPoint) (int, error) {
	total, err := s.WriteCompactSize(uint64(len(outpoints)))
	if err != nil {
		return total, err
	}
	for _, o := range outpoints {
		n, err := o.Encode(s)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// DecodeOutPoints reads a compact-size-prefixed list of outpoints.
func DecodeOutPoints(p *serdes.BinaryParser) ([]OutPoint, error) {
	count, err := p.ReadCount()
	if err != nil {
		return nil, err
	}
	var outpoints []OutPoint
	if count > 0 {
		outpoints = make([]OutPoint, 0, min(count, listPrealloc))
	}
	for i := 0; i < count; i++ {
		var o OutPoint
		if err := o.Decode(p); err != nil {
			return nil, err
		}
		outpoints = append(outpoints, o)
	}
	return outpoints, nil
}

// OutPointsSize returns the encoded size of a compact-size-prefixed outpoint list.
func OutPointsSize(outpoints []OutPoint) int {
	return binarycodec.CompactSizeLen(uint64(len(outpoints))) + len(outpoints)*OutPointSize
}
