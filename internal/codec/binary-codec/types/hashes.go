//revive:disable:var-naming
package types

// Txid identifies a transaction: the double SHA-256 of its full encoding.
type Txid [32]byte

func (h Txid) String() string                { return ToDisplayHex(h) }
func (h Txid) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *Txid) UnmarshalText(b []byte) error { return unmarshalDisplayHex(h, b) }

// InputsHash commits to the outpoints a provider transaction spends.
type InputsHash [32]byte

func (h InputsHash) String() string                { return ToDisplayHex(h) }
func (h InputsHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *InputsHash) UnmarshalText(b []byte) error { return unmarshalDisplayHex(h, b) }

// QuorumHash is the block hash a quorum was formed at.
type QuorumHash [32]byte

func (h QuorumHash) String() string                { return ToDisplayHex(h) }
func (h QuorumHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *QuorumHash) UnmarshalText(b []byte) error { return unmarshalDisplayHex(h, b) }

// QuorumVVecHash commits to a quorum's verification vector.
type QuorumVVecHash [32]byte

func (h QuorumVVecHash) String() string                { return ToDisplayHex(h) }
func (h QuorumVVecHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *QuorumVVecHash) UnmarshalText(b []byte) error { return unmarshalDisplayHex(h, b) }

// SpecialTransactionPayloadHash is the digest of a payload's base fields,
// the message its trailing signature signs.
type SpecialTransactionPayloadHash [32]byte

func (h SpecialTransactionPayloadHash) String() string { return ToDisplayHex(h) }
func (h SpecialTransactionPayloadHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
func (h *SpecialTransactionPayloadHash) UnmarshalText(b []byte) error {
	return unmarshalDisplayHex(h, b)
}

// CycleHash is the block hash starting the signing cycle of an InstantLock.
type CycleHash [32]byte

func (h CycleHash) String() string                { return ToDisplayHex(h) }
func (h CycleHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *CycleHash) UnmarshalText(b []byte) error { return unmarshalDisplayHex(h, b) }

// InstantLockHash identifies an InstantLock message.
type InstantLockHash [32]byte

func (h InstantLockHash) String() string                { return ToDisplayHex(h) }
func (h InstantLockHash) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *InstantLockHash) UnmarshalText(b []byte) error { return unmarshalDisplayHex(h, b) }

// RequestID is the quorum signing request a message answers.
type RequestID [32]byte

func (h RequestID) String() string                { return ToDisplayHex(h) }
func (h RequestID) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *RequestID) UnmarshalText(b []byte) error { return unmarshalDisplayHex(h, b) }
