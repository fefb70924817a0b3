package transactions

import (
	"encoding/hex"

	"github.com/LeJamon/goDashTx/internal/codec/binary-codec/serdes"
)

// Script is an opaque script, compact-size-prefixed on the wire.
// A decoded empty script is nil.
type Script []byte

func (sc Script) Size() int {
	return serdes.VarBytesLen(len(sc))
}

func (sc Script) Encode(s *serdes.BinarySerializer) (int, error) {
	return s.WriteVarBytes(sc)
}

func (sc *Script) Decode(p *serdes.BinaryParser) error {
	b, err := p.ReadVarBytes()
	if err != nil {
		return err
	}
	if len(b) == 0 {
		b = nil
	}
	*sc = b
	return nil
}

func (sc Script) String() string {
	return hex.EncodeToString(sc)
}

func (sc Script) MarshalText() ([]byte, error) {
	return []byte(sc.String()), nil
}

func (sc *Script) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	if len(b) == 0 {
		b = nil
	}
	*sc = b
	return nil
}
