package crypto

import (
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoubleSHA256(t *testing.T) {
	tt := []struct {
		description string
		input       []byte
		expected    string
	}{
		{
			description: "empty message",
			input:       []byte{},
			expected:    "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		},
		{
			description: "hello",
			input:       []byte("hello"),
			expected:    "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50",
		},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			got := DoubleSHA256(tc.input)
			require.Equal(t, tc.expected, hex.EncodeToString(got[:]))

			// Written in pieces, hashed as one message.
			streamed, err := DoubleSHA256Encoding(func(w io.Writer) error {
				for i := range tc.input {
					if _, err := w.Write(tc.input[i : i+1]); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, got, streamed)
		})
	}
}

func TestDoubleSHA256EncodingReturnsEncodeError(t *testing.T) {
	errEncode := errors.New("encode failed")
	_, err := DoubleSHA256Encoding(func(w io.Writer) error {
		return errEncode
	})
	require.ErrorIs(t, err, errEncode)
}
