// Package interfaces defines the BinaryParser interface for binary codec parsing operations.
//
//revive:disable:var-naming
package interfaces

// BinaryParser is the read side the fixed-width types decode from.
type BinaryParser interface {
	ReadBytes(n int) ([]byte, error)
}
