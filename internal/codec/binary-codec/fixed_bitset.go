package binarycodec

import (
	"fmt"
	"io"
)

// FixedBitsetLen returns the packed byte length of an n-bit set.
func FixedBitsetLen(n int) int {
	return (n + 7) / 8
}

// PackFixedBitset packs bits least-significant-bit first: bit i is stored in
// byte i/8 at position i%8. Unused bits of the last byte are zero.
func PackFixedBitset(bits []bool) []byte {
	out := make([]byte, FixedBitsetLen(len(bits)))
	for i, set := range bits {
		if set {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// UnpackFixedBitset reverses PackFixedBitset for exactly n bits. Set padding
// bits past n are rejected with ErrNonCanonicalBitset, as in Dash Core.
func UnpackFixedBitset(packed []byte, n int) ([]bool, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative bitset length %d", n)
	}
	if len(packed) < FixedBitsetLen(n) {
		return nil, fmt.Errorf("%w: bitset of %d bits needs %d bytes, have %d",
			ErrStreamExhausted, n, FixedBitsetLen(n), len(packed))
	}
	if rem := n % 8; rem != 0 {
		last := packed[FixedBitsetLen(n)-1]
		if last&^byte(0xff>>(8-rem)) != 0 {
			return nil, fmt.Errorf("%w: last byte %#02x of a %d bit set", ErrNonCanonicalBitset, last, n)
		}
	}
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = packed[i/8]&(1<<(uint(i)%8)) != 0
	}
	return bits, nil
}

// WriteFixedBitset writes the packed form of bits without a length prefix.
func WriteFixedBitset(w io.Writer, bits []bool) (int, error) {
	return w.Write(PackFixedBitset(bits))
}

// ReadFixedBitset reads the packed form of an n-bit set.
func ReadFixedBitset(r io.Reader, n int) ([]bool, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative bitset length %d", n)
	}
	packed := make([]byte, FixedBitsetLen(n))
	if _, err := io.ReadFull(r, packed); err != nil {
		return nil, exhausted(err)
	}
	return UnpackFixedBitset(packed, n)
}
