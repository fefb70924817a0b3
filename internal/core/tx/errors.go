package tx

import "errors"

var (
	// ErrMissingPayload is returned when a special transaction has no payload to encode.
	ErrMissingPayload = errors.New("special transaction has no payload")
	// ErrUnexpectedPayload is returned when a classic or pre-v3 transaction carries a payload.
	ErrUnexpectedPayload = errors.New("payload set on a transaction that cannot carry one")
	// ErrPayloadTypeMismatch is returned when the payload kind disagrees with the transaction type.
	ErrPayloadTypeMismatch = errors.New("payload type does not match transaction type")
)
