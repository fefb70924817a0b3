// Package serdes reads and writes consensus-encoded fields over byte streams.
package serdes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
)

// BinaryParser reads little-endian consensus fields from a stream and keeps
// count of the bytes consumed. It enforces Limits on every length prefix.
type BinaryParser struct {
	r        io.Reader
	limits   binarycodec.Limits
	consumed int
}

// NewBinaryParser returns a parser over r using limits (zero fields take defaults).
func NewBinaryParser(r io.Reader, limits binarycodec.Limits) *BinaryParser {
	return &BinaryParser{r: r, limits: limits.WithDefaults()}
}

// NewBinaryParserBytes returns a parser over b with default limits.
func NewBinaryParserBytes(b []byte) *BinaryParser {
	return NewBinaryParser(bytesReader(b), binarycodec.DefaultLimits())
}

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// Limits returns the limits the parser enforces.
func (p *BinaryParser) Limits() binarycodec.Limits {
	return p.limits
}

// Consumed returns the number of bytes read so far.
func (p *BinaryParser) Consumed() int {
	return p.consumed
}

// ReadBytes reads exactly n bytes.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(p.r, buf)
	p.consumed += read
	if err != nil {
		return nil, fmt.Errorf("%w: wanted %d bytes, got %d", binarycodec.ErrStreamExhausted, n, read)
	}
	return buf, nil
}

// ReadByte reads a single byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	b, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *BinaryParser) ReadUint8() (uint8, error) {
	return p.ReadByte()
}

func (p *BinaryParser) ReadUint16() (uint16, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (p *BinaryParser) ReadUint32() (uint32, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (p *BinaryParser) ReadUint64() (uint64, error) {
	b, err := p.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (p *BinaryParser) ReadInt16() (int16, error) {
	v, err := p.ReadUint16()
	return int16(v), err
}

func (p *BinaryParser) ReadInt32() (int32, error) {
	v, err := p.ReadUint32()
	return int32(v), err
}

func (p *BinaryParser) ReadInt64() (int64, error) {
	v, err := p.ReadUint64()
	return int64(v), err
}

// ReadCompactSize reads a minimally encoded compact size integer.
func (p *BinaryParser) ReadCompactSize() (uint64, error) {
	v, n, err := binarycodec.ReadCompactSize(p.r)
	p.consumed += n
	return v, err
}

// ReadCount reads a compact size element count and checks it against MaxListLen.
func (p *BinaryParser) ReadCount() (int, error) {
	n, err := p.ReadCompactSize()
	if err != nil {
		return 0, err
	}
	if err := p.limits.CheckListLen(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ReadVarBytes reads a compact-size-prefixed byte vector.
func (p *BinaryParser) ReadVarBytes() ([]byte, error) {
	n, err := p.ReadCompactSize()
	if err != nil {
		return nil, err
	}
	if err := p.limits.CheckVecSize(n); err != nil {
		return nil, err
	}
	return p.ReadBytes(int(n))
}

// ReadFixedBitset reads a compact-size bit count followed by the packed bits.
func (p *BinaryParser) ReadFixedBitset() ([]bool, error) {
	n, err := p.ReadCompactSize()
	if err != nil {
		return nil, err
	}
	if err := p.limits.CheckBitsetLen(n); err != nil {
		return nil, err
	}
	packed, err := p.ReadBytes(binarycodec.FixedBitsetLen(int(n)))
	if err != nil {
		return nil, err
	}
	return binarycodec.UnpackFixedBitset(packed, int(n))
}

// ExpectEOF fails with ErrTrailingBytes if the stream still has data.
func (p *BinaryParser) ExpectEOF() error {
	var one [1]byte
	n, err := p.r.Read(one[:])
	if n > 0 {
		return binarycodec.ErrTrailingBytes
	}
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}
