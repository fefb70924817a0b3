package special

import (
	"fmt"

	binarycodec "github.com/LeJamon/goDashTx/internal/codec/binary-codec"
)

// UnsupportedTypeError is returned when no payload decoder exists for a type.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported special transaction type %s", e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return binarycodec.ErrUnsupportedVersion
}
