// Package jsoncodec renders codec values as JSON. Hashes and keys are
// written through their TextMarshaler, so 32-byte hashes appear in display
// (byte-reversed) hex and BLS material in wire order.
package jsoncodec

import (
	"github.com/ugorji/go/codec"
)

var handle = newHandle()

func newHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.HTMLCharsAsIs = true
	return h
}

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, handle).Encode(v); err != nil {
		return nil, err
	}
	return out, nil
}

// Unmarshal decodes JSON b into v, which must be a non-nil pointer.
func Unmarshal(b []byte, v any) error {
	return codec.NewDecoderBytes(b, handle).Decode(v)
}
