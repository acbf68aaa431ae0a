package txnrecord

import "errors"

// Transaction parse error taxonomy, disjoint from money's and the
// processor's. UnexpectedErrorType is reserved for forward compatibility
// with future numeric-error variants and is never returned today.
var (
	ErrEmptySection            = errors.New("txnrecord: section is empty")
	ErrCouldNotParseSection    = errors.New("txnrecord: section could not be parsed")
	ErrOutOfBoundsSection      = errors.New("txnrecord: section is out of bounds for its id width")
	ErrUnknownTransactionType  = errors.New("txnrecord: unknown transaction type")
	ErrUnexpectedTrailingSection = errors.New("txnrecord: unexpected trailing section")
	ErrMissingTransactionAmount  = errors.New("txnrecord: missing transaction amount")
	ErrUnexpectedErrorType       = errors.New("txnrecord: unexpected error type")
)
