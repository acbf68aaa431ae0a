package ledger

import (
	"github.com/toulis9999/mini-payments/internal/money"
	"github.com/toulis9999/mini-payments/internal/txnrecord"
)

// entryState tracks the dispute lifecycle of a stored Deposit/Withdrawal
// entry. Dispute/Resolve/Chargeback events never create entries of their
// own (per I3) — they only move an existing entry's state.
type entryState int

const (
	Executed entryState = iota
	UnderDispute
	Resolved
	ChargedBack
)

// entry is a stored Deposit or Withdrawal, keyed by tx id within a client.
type entry struct {
	kind   txnrecord.Kind
	amount money.Money
	state  entryState
}

// client is one account's ledger record. It is created on the client's
// first accepted deposit and never deleted (I5).
type client struct {
	id           uint16
	available    money.Money
	held         money.Money
	locked       bool
	transactions map[uint32]*entry
}

func newClient(id uint16) *client {
	return &client{id: id, transactions: make(map[uint32]*entry)}
}

func (c *client) total() (money.Money, bool) {
	return c.available.CheckedAdd(c.held)
}
