package serdes

import (
	"bytes"
	"encoding/binary"
	"io"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
)

// BinarySerializer writes little-endian consensus fields to a sink and keeps
// count of the bytes written. Only the sink can make a write fail.
type BinarySerializer struct {
	w       io.Writer
	written int
}

// NewBinarySerializer returns a serializer writing to w.
func NewBinarySerializer(w io.Writer) *BinarySerializer {
	return &BinarySerializer{w: w}
}

// NewBufferSerializer returns a serializer over a fresh buffer of the given capacity.
func NewBufferSerializer(capacity int) (*BinarySerializer, *bytes.Buffer) {
	buf := bytes.NewBuffer(make([]byte, 0, capacity))
	return NewBinarySerializer(buf), buf
}

// Written returns the number of bytes written so far.
func (s *BinarySerializer) Written() int {
	return s.written
}

// WriteBytes writes b verbatim.
func (s *BinarySerializer) WriteBytes(b []byte) (int, error) {
	n, err := s.w.Write(b)
	s.written += n
	return n, err
}

func (s *BinarySerializer) WriteUint8(v uint8) (int, error) {
	return s.WriteBytes([]byte{v})
}

func (s *BinarySerializer) WriteUint16(v uint16) (int, error) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return s.WriteBytes(b[:])
}

func (s *BinarySerializer) WriteUint32(v uint32) (int, error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return s.WriteBytes(b[:])
}

func (s *BinarySerializer) WriteUint64(v uint64) (int, error) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return s.WriteBytes(b[:])
}

func (s *BinarySerializer) WriteInt16(v int16) (int, error) {
	return s.WriteUint16(uint16(v))
}

func (s *BinarySerializer) WriteInt32(v int32) (int, error) {
	return s.WriteUint32(uint32(v))
}

func (s *BinarySerializer) WriteInt64(v int64) (int, error) {
	return s.WriteUint64(uint64(v))
}

// WriteCompactSize writes the minimal compact size encoding of n.
func (s *BinarySerializer) WriteCompactSize(n uint64) (int, error) {
	var b [9]byte
	return s.WriteBytes(binarycodec.AppendCompactSize(b[:0], n))
}

// WriteVarBytes writes a compact size length followed by b.
func (s *BinarySerializer) WriteVarBytes(b []byte) (int, error) {
	n, err := s.WriteCompactSize(uint64(len(b)))
	if err != nil {
		return n, err
	}
	m, err := s.WriteBytes(b)
	return n + m, err
}

// WriteFixedBitset writes a compact size bit count followed by the packed bits.
func (s *BinarySerializer) WriteFixedBitset(bits []bool) (int, error) {
	n, err := s.WriteCompactSize(uint64(len(bits)))
	if err != nil {
		return n, err
	}
	m, err := s.WriteBytes(binarycodec.PackFixedBitset(bits))
	return n + m, err
}

// VarBytesLen returns the encoded length of a compact-size-prefixed vector of n bytes.
func VarBytesLen(n int) int {
	return binarycodec.CompactSizeLen(uint64(n)) + n
}

// FixedBitsetLen returns the encoded length of a compact-size-prefixed n-bit set.
func FixedBitsetLen(n int) int {
	return binarycodec.CompactSizeLen(uint64(n)) + binarycodec.FixedBitsetLen(n)
}
