package binarycodec

import (
	"errors"
	"fmt"
)

var (
	// ErrStreamExhausted is returned when fewer bytes remain than a field requires.
	ErrStreamExhausted = errors.New("stream exhausted")
	// ErrOversizedLength is returned when a declared length exceeds the configured limit.
	ErrOversizedLength = errors.New("declared length exceeds limit")
	// ErrUnsupportedVersion is returned for unrecognized payload types or versions.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrSizeMismatch is returned when a Size() result disagrees with the encoded length.
	ErrSizeMismatch = errors.New("size does not match encoded length")
	// ErrNonCanonicalCompactSize is returned when a compact size is not minimally encoded.
	ErrNonCanonicalCompactSize = errors.New("non-canonical compact size")
	// ErrNonCanonicalBitset is returned when padding bits past the declared bit count are set.
	ErrNonCanonicalBitset = errors.New("non-canonical bitset: padding bits set")
	// ErrTrailingBytes is returned when a length-delimited record is not fully consumed.
	ErrTrailingBytes = errors.New("trailing bytes after record")
)

// OversizedLengthError reports which limit a declared length broke.
type OversizedLengthError struct {
	What     string
	Declared uint64
	Max      uint64
}

func (e *OversizedLengthError) Error() string {
	return fmt.Sprintf("%s: declared %d, max %d", e.What, e.Declared, e.Max)
}

func (e *OversizedLengthError) Unwrap() error {
	return ErrOversizedLength
}

// SizeMismatchError reports a disagreement between Size() and the bytes written.
type SizeMismatchError struct {
	Reported int
	Written  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch: Size() reported %d, encoded %d", e.Reported, e.Written)
}

func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}

// exhausted maps the io short-read errors onto ErrStreamExhausted.
func exhausted(err error) error {
	if err == nil {
		return nil
	}
	if isShortRead(err) {
		return fmt.Errorf("%w: %v", ErrStreamExhausted, err)
	}
	return err
}
