package binarycodec

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactSizeRoundTrip(t *testing.T) {
	tt := []struct {
		description string
		value       uint64
		expectedHex string
	}{
		{"zero", 0, "00"},
		{"largest single byte", 0xFC, "fc"},
		{"smallest 16 bit", 0xFD, "fdfd00"},
		{"largest 16 bit", 0xFFFF, "fdffff"},
		{"smallest 32 bit", 0x10000, "fe00000100"},
		{"largest 32 bit", 0xFFFFFFFF, "feffffffff"},
		{"smallest 64 bit", 0x100000000, "ff0000000001000000"},
		{"max uint64", ^uint64(0), "ffffffffffffffffff"},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			encoded := AppendCompactSize(nil, tc.value)
			require.Equal(t, tc.expectedHex, hex.EncodeToString(encoded))
			require.Equal(t, len(encoded), CompactSizeLen(tc.value))

			var buf bytes.Buffer
			n, err := WriteCompactSize(&buf, tc.value)
			require.NoError(t, err)
			require.Equal(t, len(encoded), n)
			require.Equal(t, encoded, buf.Bytes())

			got, consumed, err := ReadCompactSize(bytes.NewReader(encoded))
			require.NoError(t, err)
			require.Equal(t, tc.value, got)
			require.Equal(t, len(encoded), consumed)
		})
	}
}

func TestReadCompactSizeShortStream(t *testing.T) {
	tt := []struct {
		description string
		input       string
	}{
		{"empty", ""},
		{"16 bit marker only", "fd"},
		{"16 bit truncated", "fd01"},
		{"32 bit truncated", "fe010203"},
		{"64 bit truncated", "ff01020304050607"},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			raw, err := hex.DecodeString(tc.input)
			require.NoError(t, err)
			_, _, err = ReadCompactSize(bytes.NewReader(raw))
			require.ErrorIs(t, err, ErrStreamExhausted)
		})
	}
}

func TestReadCompactSizeRejectsNonCanonical(t *testing.T) {
	tt := []struct {
		description string
		input       string
	}{
		{"one byte value in 16 bits", "fdfc00"},
		{"16 bit value in 32 bits", "feffff0000"},
		{"32 bit value in 64 bits", "ffffffffff00000000"},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			raw, err := hex.DecodeString(tc.input)
			require.NoError(t, err)
			_, _, err = ReadCompactSize(bytes.NewReader(raw))
			require.ErrorIs(t, err, ErrNonCanonicalCompactSize)
		})
	}
}
