package binarycodec

import (
	"encoding/binary"
	"errors"
	"io"
)

// Compact size markers. Values below compactSize16 are written as a single byte.
const (
	compactSize16 = 0xFD
	compactSize32 = 0xFE
	compactSize64 = 0xFF
)

// CompactSizeLen returns the number of bytes the minimal encoding of n occupies.
func CompactSizeLen(n uint64) int {
	switch {
	case n < compactSize16:
		return 1
	case n <= 0xFFFF:
		return 3
	case n <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// AppendCompactSize appends the minimal encoding of n to dst.
func AppendCompactSize(dst []byte, n uint64) []byte {
	switch {
	case n < compactSize16:
		return append(dst, byte(n))
	case n <= 0xFFFF:
		dst = append(dst, compactSize16)
		return binary.LittleEndian.AppendUint16(dst, uint16(n))
	case n <= 0xFFFFFFFF:
		dst = append(dst, compactSize32)
		return binary.LittleEndian.AppendUint32(dst, uint32(n))
	default:
		dst = append(dst, compactSize64)
		return binary.LittleEndian.AppendUint64(dst, n)
	}
}

// WriteCompactSize writes the minimal encoding of n to w.
func WriteCompactSize(w io.Writer, n uint64) (int, error) {
	var buf [9]byte
	return w.Write(AppendCompactSize(buf[:0], n))
}

// ReadCompactSize reads a compact size integer from r and reports the bytes consumed.
// Encodings wider than necessary are rejected.
func ReadCompactSize(r io.Reader) (uint64, int, error) {
	var buf [9]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, 0, exhausted(err)
	}

	var width int
	var min uint64
	switch buf[0] {
	case compactSize16:
		width, min = 2, compactSize16
	case compactSize32:
		width, min = 4, 0x10000
	case compactSize64:
		width, min = 8, 0x100000000
	default:
		return uint64(buf[0]), 1, nil
	}

	n, err := io.ReadFull(r, buf[1:1+width])
	if err != nil {
		return 0, 1 + n, exhausted(err)
	}

	var v uint64
	switch width {
	case 2:
		v = uint64(binary.LittleEndian.Uint16(buf[1:3]))
	case 4:
		v = uint64(binary.LittleEndian.Uint32(buf[1:5]))
	default:
		v = binary.LittleEndian.Uint64(buf[1:9])
	}
	if v < min {
		return 0, 1 + width, ErrNonCanonicalCompactSize
	}
	return v, 1 + width, nil
}

func isShortRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
