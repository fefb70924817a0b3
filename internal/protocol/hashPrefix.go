package protocol

// RequestIDPrefixInstantLock gives InstantSend lock signing requests their own
// hash domain. It is serialized as a compact-size-prefixed string ahead of the
// request body and MUST match Dash Core.
const RequestIDPrefixInstantLock = "islock"

// TransactionVersionSpecial is the lowest transaction version whose type
// field selects an extra payload.
const TransactionVersionSpecial = 3
