// Package txnrecord parses a single comma-separated transaction line into a
// typed Transaction value. It knows nothing about client ledgers or balances
// — that is internal/ledger's job.
package txnrecord

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/toulis9999/mini-payments/internal/money"
)

// Kind identifies the transaction variant carried by a Transaction.
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

var kindByLiteral = map[string]Kind{
	"deposit":    Deposit,
	"withdrawal": Withdrawal,
	"dispute":    Dispute,
	"resolve":    Resolve,
	"chargeback": Chargeback,
}

// hasAmount reports whether a Kind's grammar carries a 4th amount field.
func (k Kind) hasAmount() bool {
	return k == Deposit || k == Withdrawal
}

// Transaction is a parsed (client_id, tx_id, payload) triple.
type Transaction struct {
	ClientID uint16
	TxID     uint32
	Kind     Kind
	Amount   money.Money // zero value when Kind does not carry an amount
}

// Parse splits a single text line on "," and validates it against the
// transaction grammar. Each field is trimmed of surrounding whitespace
// before validation.
func Parse(line string) (Transaction, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	typeField, err := requiredSection(fields, 0, "type")
	if err != nil {
		return Transaction{}, err
	}

	kind, ok := kindByLiteral[typeField]
	if !ok {
		return Transaction{}, errors.Wrapf(ErrUnknownTransactionType, "%q", typeField)
	}

	clientField, err := requiredSection(fields, 1, "client")
	if err != nil {
		return Transaction{}, err
	}

	clientID, err := parseUint(clientField, 16, "client")
	if err != nil {
		return Transaction{}, err
	}

	txField, err := requiredSection(fields, 2, "tx")
	if err != nil {
		return Transaction{}, err
	}

	txID, err := parseUint(txField, 32, "tx")
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		ClientID: uint16(clientID),
		TxID:     uint32(txID),
		Kind:     kind,
	}

	if kind.hasAmount() {
		if len(fields) < 4 {
			return Transaction{}, errors.Wrapf(ErrMissingTransactionAmount, "%s", kind)
		}

		amountField := fields[3]
		if amountField == "" {
			return Transaction{}, errors.Wrapf(ErrMissingTransactionAmount, "%s", kind)
		}

		amount, err := money.Parse(amountField)
		if err != nil {
			return Transaction{}, errors.Wrapf(ErrCouldNotParseSection, "amount %q: %v", amountField, err)
		}

		tx.Amount = amount

		if len(fields) > 4 {
			return Transaction{}, errors.Wrapf(ErrUnexpectedTrailingSection, "%v", fields[4:])
		}
	} else if len(fields) > 3 {
		return Transaction{}, errors.Wrapf(ErrUnexpectedTrailingSection, "%v", fields[3:])
	}

	return tx, nil
}

// requiredSection returns the trimmed field at idx, or ErrEmptySection if the
// field is absent (line has too few commas) or blank after trimming.
func requiredSection(fields []string, idx int, name string) (string, error) {
	if idx >= len(fields) {
		return "", errors.Wrapf(ErrEmptySection, "%s", name)
	}

	if fields[idx] == "" {
		return "", errors.Wrapf(ErrEmptySection, "%s", name)
	}

	return fields[idx], nil
}

// parseUint parses s as an unsigned integer of the given bit width,
// distinguishing a malformed string (CouldNotParseSection) from a
// well-formed number that is simply too large (OutOfBoundsSection).
func parseUint(s string, bitSize int, name string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errors.Wrapf(ErrOutOfBoundsSection, "%s %q", name, s)
		}

		return 0, errors.Wrapf(ErrCouldNotParseSection, "%s %q", name, s)
	}

	return v, nil
}
