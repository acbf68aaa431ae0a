package txnrecord_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toulis9999/mini-payments/internal/txnrecord"
)

func TestParse_ValidRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
		want txnrecord.Transaction
	}{
		{
			name: "deposit",
			line: "deposit, 321, 1, 100.0",
			want: txnrecord.Transaction{ClientID: 321, TxID: 1, Kind: txnrecord.Deposit},
		},
		{
			name: "withdrawal",
			line: "withdrawal,321,2,50.0",
			want: txnrecord.Transaction{ClientID: 321, TxID: 2, Kind: txnrecord.Withdrawal},
		},
		{
			name: "dispute",
			line: "dispute, 321, 2",
			want: txnrecord.Transaction{ClientID: 321, TxID: 2, Kind: txnrecord.Dispute},
		},
		{
			name: "resolve",
			line: "resolve, 321, 2",
			want: txnrecord.Transaction{ClientID: 321, TxID: 2, Kind: txnrecord.Resolve},
		},
		{
			name: "chargeback",
			line: "chargeback, 321, 2",
			want: txnrecord.Transaction{ClientID: 321, TxID: 2, Kind: txnrecord.Chargeback},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := txnrecord.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want.ClientID, got.ClientID)
			assert.Equal(t, tt.want.TxID, got.TxID)
			assert.Equal(t, tt.want.Kind, got.Kind)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"empty type", ", 1, 2, 3.0", txnrecord.ErrEmptySection},
		{"unknown type", "teleport, 1, 2, 3.0", txnrecord.ErrUnknownTransactionType},
		{"missing client", "deposit,, 2, 3.0", txnrecord.ErrEmptySection},
		{"client not parseable", "deposit, abc, 2, 3.0", txnrecord.ErrCouldNotParseSection},
		{"client out of range", "deposit, 99999999, 2, 3.0", txnrecord.ErrOutOfBoundsSection},
		{"tx out of range", "deposit, 1, 99999999999, 3.0", txnrecord.ErrOutOfBoundsSection},
		{"missing amount on deposit", "deposit, 1, 2", txnrecord.ErrMissingTransactionAmount},
		{"missing amount on withdrawal", "withdrawal, 1, 2", txnrecord.ErrMissingTransactionAmount},
		{"malformed amount", "deposit, 1, 2, abc", txnrecord.ErrCouldNotParseSection},
		{"trailing on deposit", "deposit, 1, 2, 3.0, extra", txnrecord.ErrUnexpectedTrailingSection},
		{"trailing on dispute", "dispute, 1, 2, 3.0", txnrecord.ErrUnexpectedTrailingSection},
		{"trailing on resolve", "resolve, 1, 2, 3.0", txnrecord.ErrUnexpectedTrailingSection},
		{"trailing on chargeback", "chargeback, 1, 2, 3.0", txnrecord.ErrUnexpectedTrailingSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := txnrecord.Parse(tt.line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want wrapping %v", err, tt.wantErr)
		})
	}
}

func TestParse_HeaderLineIsRejected(t *testing.T) {
	_, err := txnrecord.Parse("type,client,tx,amount")
	require.Error(t, err)
	assert.True(t, errors.Is(err, txnrecord.ErrUnknownTransactionType))
}

func TestParse_CaseSensitiveType(t *testing.T) {
	_, err := txnrecord.Parse("Deposit, 1, 2, 3.0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, txnrecord.ErrUnknownTransactionType))
}
