package ledger

import "errors"

// Processor error taxonomy, disjoint from money's and txnrecord's.
var (
	ErrClientNotFound                      = errors.New("ledger: client not found")
	ErrAccountFrozen                       = errors.New("ledger: account is frozen")
	ErrNoAvailableFunds                    = errors.New("ledger: insufficient available funds")
	ErrAssociatedTransactionNotFound       = errors.New("ledger: associated transaction not found")
	ErrTransactionCouldNotBeDisputed       = errors.New("ledger: transaction could not be disputed")
	ErrTransactionCouldNotBeResolved       = errors.New("ledger: transaction could not be resolved")
	ErrTransactionCouldNotBeChargedBack    = errors.New("ledger: transaction could not be charged back")
	ErrTransactionAlreadyDisputed          = errors.New("ledger: transaction is already disputed")
	ErrUndisputedTransactionCannotBeResolved    = errors.New("ledger: undisputed transaction cannot be resolved")
	ErrUndisputedTransactionCannotBeChargedBack = errors.New("ledger: undisputed transaction cannot be charged back")
)
