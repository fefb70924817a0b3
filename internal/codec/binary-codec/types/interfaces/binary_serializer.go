// Package interfaces defines the BinarySerializer interface for binary codec serialization operations.
//
//revive:disable:var-naming
package interfaces

// BinarySerializer is the write side the fixed-width types encode to.
type BinarySerializer interface {
	WriteBytes(b []byte) (int, error)
}
