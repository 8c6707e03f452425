// Package models provides the data structures shared by both statement
// front-ends and the downstream aggregation and export layers.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is one finalized ledger entry extracted from a statement.
// Date carries the statement's month-day marker (MM-DD); the statement
// year is not present in the source lines. At most one of Debit and
// Credit is valid for any transaction.
type Transaction struct {
	Date        string              `csv:"Date" json:"date"`
	Description string              `csv:"Description" json:"description"`
	Debit       decimal.NullDecimal `csv:"Debit" json:"debit"`
	Credit      decimal.NullDecimal `csv:"Credit" json:"credit"`
	Balance     decimal.NullDecimal `csv:"Balance" json:"balance"`
}

// AccountSummary is one per-account roll-up: either synthesized from the
// finalized transactions (text front-end) or read directly from a matched
// summary row (table front-end).
type AccountSummary struct {
	AccountNumber string              `csv:"AccountNumber" json:"accountNumber"`
	AccountName   string              `csv:"AccountName" json:"accountName"`
	Deposits      decimal.NullDecimal `csv:"Deposits" json:"deposits"`
	Withdrawals   decimal.NullDecimal `csv:"Withdrawals" json:"withdrawals"`
	Balance       decimal.NullDecimal `csv:"Balance" json:"balance"`
	YTDDividends  decimal.NullDecimal `csv:"YTDDividends" json:"ytdDividends"`
}

// Statement is the full extraction result for one request. Transactions
// keep the order their anchor lines or rows appeared in the source; that
// order is authoritative and is never re-sorted. Currency is set only
// when a currency normalizer was applied.
type Statement struct {
	Summaries    []AccountSummary `json:"summary"`
	Transactions []Transaction    `json:"transactions"`
	Currency     string           `json:"currency,omitempty"`
}

// Amount wraps a decimal in a valid NullDecimal.
func Amount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// NoAmount is the empty monetary field.
func NoAmount() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// IsDebit reports whether the transaction carries a debit amount.
func (t Transaction) IsDebit() bool {
	return t.Debit.Valid
}

// IsCredit reports whether the transaction carries a credit amount.
func (t Transaction) IsCredit() bool {
	return t.Credit.Valid
}
