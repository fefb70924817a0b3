package crypto

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DoubleSHA256 returns SHA256(SHA256(msg)) in wire order.
func DoubleSHA256(msg []byte) [32]byte {
	return chainhash.DoubleHashH(msg)
}

// DoubleSHA256Encoding streams whatever encode writes into a double SHA-256
// without buffering it, and returns encode's error alongside the hash.
func DoubleSHA256Encoding(encode func(w io.Writer) error) ([32]byte, error) {
	var encodeErr error
	h := chainhash.DoubleHashRaw(func(w io.Writer) error {
		encodeErr = encode(w)
		return encodeErr
	})
	return h, encodeErr
}
