//revive:disable:var-naming
package types

const (
	// BLSPublicKeySize is the compressed G1 public key size of the BLS12-381 scheme.
	BLSPublicKeySize = 48
	// BLSSignatureSize is the compressed G2 signature size of the BLS12-381 scheme.
	BLSSignatureSize = 96
)

// BLSPublicKey is an opaque compressed BLS public key.
type BLSPublicKey [BLSPublicKeySize]byte

func (k BLSPublicKey) String() string                { return ToHex(k) }
func (k BLSPublicKey) MarshalText() ([]byte, error)  { return []byte(k.String()), nil }
func (k *BLSPublicKey) UnmarshalText(b []byte) error { return unmarshalHex(k, b) }

// BLSSignature is an opaque compressed BLS signature.
type BLSSignature [BLSSignatureSize]byte

func (s BLSSignature) String() string                { return ToHex(s) }
func (s BLSSignature) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *BLSSignature) UnmarshalText(b []byte) error { return unmarshalHex(s, b) }
