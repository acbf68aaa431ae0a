package money

import "errors"

// Parse-time error taxonomy. These are disjoint from the transaction-parse
// and processor error taxonomies in internal/txnrecord and internal/ledger.
var (
	// ErrInvalidFormat is returned when the input has no "." separator.
	ErrInvalidFormat = errors.New("money: invalid format, expected W.D")
	// ErrWholePartParse is returned when the whole part is not a non-negative integer.
	ErrWholePartParse = errors.New("money: whole part is not a non-negative integer")
	// ErrDecimalPartParse is returned when the decimal part is empty or contains a non-digit.
	ErrDecimalPartParse = errors.New("money: decimal part is not digits")
	// ErrDecimalOverflow is returned when the decimal part has more than 4 digits.
	ErrDecimalOverflow = errors.New("money: decimal part exceeds 4 digits")
	// ErrOverflow is returned when the scaled value exceeds the maximum representable amount.
	ErrOverflow = errors.New("money: value exceeds maximum representable amount")
)
