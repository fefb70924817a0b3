package binarycodec

const (
	// DefaultMaxVecSize bounds any length-prefixed byte vector (4 MB, as in Dash Core).
	DefaultMaxVecSize = 4_000_000

	// DefaultMaxListLen bounds the element count of a length-prefixed list.
	DefaultMaxListLen = 100_000

	// DefaultMaxBitsetLen bounds the declared bit count of a fixed bitset.
	DefaultMaxBitsetLen = DefaultMaxVecSize * 8
)

// Limits guards decoders against allocations driven by hostile length prefixes.
// A zero field means the default for that field.
type Limits struct {
	MaxVecSize   uint64
	MaxListLen   uint64
	MaxBitsetLen uint64
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxVecSize:   DefaultMaxVecSize,
		MaxListLen:   DefaultMaxListLen,
		MaxBitsetLen: DefaultMaxBitsetLen,
	}
}

// WithDefaults fills zero fields from DefaultLimits.
func (l Limits) WithDefaults() Limits {
	d := DefaultLimits()
	if l.MaxVecSize == 0 {
		l.MaxVecSize = d.MaxVecSize
	}
	if l.MaxListLen == 0 {
		l.MaxListLen = d.MaxListLen
	}
	if l.MaxBitsetLen == 0 {
		l.MaxBitsetLen = d.MaxBitsetLen
	}
	return l
}

// CheckVecSize validates a declared byte length.
func (l Limits) CheckVecSize(n uint64) error {
	return check("byte vector", n, l.WithDefaults().MaxVecSize)
}

// CheckListLen validates a declared element count.
func (l Limits) CheckListLen(n uint64) error {
	return check("list", n, l.WithDefaults().MaxListLen)
}

// CheckBitsetLen validates a declared bit count.
func (l Limits) CheckBitsetLen(n uint64) error {
	return check("bitset", n, l.WithDefaults().MaxBitsetLen)
}

func check(what string, n, max uint64) error {
	if n > max {
		return &OversizedLengthError{What: what, Declared: n, Max: max}
	}
	return nil
}
