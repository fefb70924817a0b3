package testutil

import (
	"encoding/hex"
	"testing"
)

// MustDecodeHex decodes a hex fixture or fails the test.
func MustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("failed to decode hex fixture %q: %v", s, err)
	}
	return b
}

// Repeat returns n copies of b, for building zero or patterned fixed fields.
func Repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
