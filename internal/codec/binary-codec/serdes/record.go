package serdes

import binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"

// Record is a value with an exact consensus encoding whose length is known
// before it is written.
type Record interface {
	Encode(s *BinarySerializer) (int, error)
	Size() int
}

// Decodable populates itself from a consensus stream.
type Decodable interface {
	Decode(p *BinaryParser) error
}

// Serialize encodes r into a buffer of exactly r.Size() bytes. A disagreement
// between Size and the bytes written is a SizeMismatchError.
func Serialize(r Record) ([]byte, error) {
	size := r.Size()
	s, buf := NewBufferSerializer(size)
	if _, err := r.Encode(s); err != nil {
		return nil, err
	}
	if buf.Len() != size {
		return nil, &binarycodec.SizeMismatchError{Reported: size, Written: buf.Len()}
	}
	return buf.Bytes(), nil
}

// Deserialize decodes d from b and requires every byte to be consumed.
func Deserialize(b []byte, limits binarycodec.Limits, d Decodable) error {
	p := NewBinaryParser(bytesReader(b), limits)
	if err := d.Decode(p); err != nil {
		return err
	}
	return p.ExpectEOF()
}
