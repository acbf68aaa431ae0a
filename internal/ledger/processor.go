// Package ledger implements the per-client transaction state machine: the
// accept-rule decision table, the balance invariants it must never violate,
// and the sorted CSV summary rendered once processing completes.
package ledger

import (
	"fmt"

	"github.com/toulis9999/mini-payments/internal/txnrecord"
)

// Processor holds every client's ledger and applies transactions to it in
// the order it receives them. It is not safe for concurrent use — the
// scheduling model is single-threaded and sequential by design.
type Processor struct {
	clients map[uint16]*client
}

// New returns an empty Processor.
func New() *Processor {
	return &Processor{clients: make(map[uint16]*client)}
}

// Process applies a single transaction against the ledger, returning a
// domain error when the transaction's precondition is not met. Domain
// errors are non-fatal: the caller is expected to log and discard the
// record and continue with the next one.
//
// Process panics when arithmetic that the invariants are supposed to
// preclude would overflow/underflow anyway, or when the same (client, tx)
// pair is recorded twice — both are structural programming errors in the
// input grammar's uniqueness guarantee, not recoverable per-record
// conditions.
func (p *Processor) Process(tx txnrecord.Transaction) error {
	switch tx.Kind {
	case txnrecord.Deposit:
		return p.deposit(tx)
	case txnrecord.Withdrawal:
		return p.withdrawal(tx)
	case txnrecord.Dispute:
		return p.dispute(tx)
	case txnrecord.Resolve:
		return p.resolve(tx)
	case txnrecord.Chargeback:
		return p.chargeback(tx)
	default:
		return fmt.Errorf("ledger: unhandled transaction kind %v", tx.Kind)
	}
}

func (p *Processor) deposit(tx txnrecord.Transaction) error {
	c, ok := p.clients[tx.ClientID]
	if !ok {
		c = newClient(tx.ClientID)
		p.clients[tx.ClientID] = c
	}

	if _, exists := c.transactions[tx.TxID]; exists {
		panic(fmt.Sprintf("ledger: I4 violated — duplicate tx %d for client %d", tx.TxID, tx.ClientID))
	}

	newAvailable, ok := c.available.CheckedAdd(tx.Amount)
	if !ok {
		panic(fmt.Sprintf("ledger: I1 violated — deposit overflow for client %d tx %d", tx.ClientID, tx.TxID))
	}

	c.available = newAvailable
	c.transactions[tx.TxID] = &entry{kind: txnrecord.Deposit, amount: tx.Amount, state: Executed}

	return nil
}

func (p *Processor) withdrawal(tx txnrecord.Transaction) error {
	c, ok := p.clients[tx.ClientID]
	if !ok {
		return ErrClientNotFound
	}

	if c.locked {
		return ErrAccountFrozen
	}

	if c.available.LessThan(tx.Amount) {
		return ErrNoAvailableFunds
	}

	if _, exists := c.transactions[tx.TxID]; exists {
		panic(fmt.Sprintf("ledger: I4 violated — duplicate tx %d for client %d", tx.TxID, tx.ClientID))
	}

	newAvailable, ok := c.available.CheckedSub(tx.Amount)
	if !ok {
		panic(fmt.Sprintf("ledger: invariant violated — withdrawal underflow for client %d tx %d despite funds check", tx.ClientID, tx.TxID))
	}

	c.available = newAvailable
	c.transactions[tx.TxID] = &entry{kind: txnrecord.Withdrawal, amount: tx.Amount, state: Executed}

	return nil
}

func (p *Processor) dispute(tx txnrecord.Transaction) error {
	c, ok := p.clients[tx.ClientID]
	if !ok {
		return ErrClientNotFound
	}

	e, ok := c.transactions[tx.TxID]
	if !ok {
		return ErrAssociatedTransactionNotFound
	}

	if e.kind != txnrecord.Withdrawal {
		return ErrTransactionCouldNotBeDisputed
	}

	switch e.state {
	case Executed:
		// proceed
	case UnderDispute:
		return ErrTransactionAlreadyDisputed
	default:
		return ErrTransactionCouldNotBeDisputed
	}

	newHeld, ok := c.held.CheckedAdd(e.amount)
	if !ok {
		panic(fmt.Sprintf("ledger: I1 violated — dispute overflow for client %d tx %d", tx.ClientID, tx.TxID))
	}

	c.held = newHeld
	e.state = UnderDispute

	return nil
}

func (p *Processor) resolve(tx txnrecord.Transaction) error {
	c, ok := p.clients[tx.ClientID]
	if !ok {
		return ErrClientNotFound
	}

	e, ok := c.transactions[tx.TxID]
	if !ok {
		return ErrAssociatedTransactionNotFound
	}

	if e.kind != txnrecord.Withdrawal {
		return ErrTransactionCouldNotBeResolved
	}

	if e.state != UnderDispute {
		return ErrUndisputedTransactionCannotBeResolved
	}

	newHeld, ok := c.held.CheckedSub(e.amount)
	if !ok {
		panic(fmt.Sprintf("ledger: invariant violated — resolve underflow for client %d tx %d", tx.ClientID, tx.TxID))
	}

	newAvailable, ok := c.available.CheckedAdd(e.amount)
	if !ok {
		panic(fmt.Sprintf("ledger: I1 violated — resolve overflow for client %d tx %d", tx.ClientID, tx.TxID))
	}

	c.held = newHeld
	c.available = newAvailable
	e.state = Resolved

	return nil
}

func (p *Processor) chargeback(tx txnrecord.Transaction) error {
	c, ok := p.clients[tx.ClientID]
	if !ok {
		return ErrClientNotFound
	}

	e, ok := c.transactions[tx.TxID]
	if !ok {
		return ErrAssociatedTransactionNotFound
	}

	if e.kind != txnrecord.Withdrawal {
		return ErrTransactionCouldNotBeChargedBack
	}

	if e.state != UnderDispute {
		return ErrUndisputedTransactionCannotBeChargedBack
	}

	newHeld, ok := c.held.CheckedSub(e.amount)
	if !ok {
		panic(fmt.Sprintf("ledger: invariant violated — chargeback underflow for client %d tx %d", tx.ClientID, tx.TxID))
	}

	c.held = newHeld
	c.locked = true
	e.state = ChargedBack

	return nil
}
