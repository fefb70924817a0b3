//revive:disable:var-naming
package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/types/interfaces"
)

// FixedBytes is the set of fixed-width byte arrays carried raw on the wire,
// with no length prefix.
type FixedBytes interface {
	~[16]byte | ~[32]byte | ~[48]byte | ~[96]byte
}

// Bytes returns a copy of a's content.
func Bytes[A FixedBytes](a A) []byte {
	out := make([]byte, len(a))
	for i := range out {
		out[i] = a[i]
	}
	return out
}

// FromBytes builds an A from exactly len(A) bytes.
func FromBytes[A FixedBytes](b []byte) (A, error) {
	var a A
	if len(b) != len(a) {
		return a, fmt.Errorf("invalid length %d, want %d", len(b), len(a))
	}
	for i := range b {
		a[i] = b[i]
	}
	return a, nil
}

// Encode writes the raw bytes of a.
func Encode[A FixedBytes](s interfaces.BinarySerializer, a A) (int, error) {
	return s.WriteBytes(Bytes(a))
}

// Decode reads exactly len(A) bytes.
func Decode[A FixedBytes](p interfaces.BinaryParser) (A, error) {
	var a A
	b, err := p.ReadBytes(len(a))
	if err != nil {
		return a, err
	}
	return FromBytes[A](b)
}

// Compare orders a and b lexicographically by byte content.
func Compare[A FixedBytes](a, b A) int {
	return bytes.Compare(Bytes(a), Bytes(b))
}

// IsZero reports whether every byte of a is zero.
func IsZero[A FixedBytes](a A) bool {
	var zero A
	return a == zero
}

// ToHex renders a in wire order.
func ToHex[A FixedBytes](a A) string {
	return hex.EncodeToString(Bytes(a))
}

// ToDisplayHex renders a byte-reversed, the way block explorers and RPC show hashes.
func ToDisplayHex[A FixedBytes](a A) string {
	b := Bytes(a)
	slices.Reverse(b)
	return hex.EncodeToString(b)
}

// FromHex parses a wire-order hex string.
func FromHex[A FixedBytes](s string) (A, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		var zero A
		return zero, err
	}
	return FromBytes[A](b)
}

// FromDisplayHex parses a byte-reversed hex string.
func FromDisplayHex[A FixedBytes](s string) (A, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		var zero A
		return zero, err
	}
	slices.Reverse(b)
	return FromBytes[A](b)
}

func unmarshalHex[A FixedBytes](dst *A, text []byte) error {
	v, err := FromHex[A](string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func unmarshalDisplayHex[A FixedBytes](dst *A, text []byte) error {
	v, err := FromDisplayHex[A](string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
