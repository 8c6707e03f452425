// Package summary rolls finalized transactions up into per-account
// summaries.
package summary

import (
	"statement-extract/internal/accounts"
	"statement-extract/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate synthesizes the single account summary for a statement parsed
// from plain text, where no explicit summary rows exist. Deposits is the
// sum of credits, withdrawals the sum of debits, and the ending balance
// comes from the last transaction carrying one. YTD dividends cannot be
// derived from text and stay empty, as do the account fields beyond the
// injected placeholder identity.
func Aggregate(transactions []models.Transaction, account accounts.Account) models.AccountSummary {
	deposits := decimal.Zero
	withdrawals := decimal.Zero
	for _, tx := range transactions {
		if tx.Credit.Valid {
			deposits = deposits.Add(tx.Credit.Decimal)
		}
		if tx.Debit.Valid {
			withdrawals = withdrawals.Add(tx.Debit.Decimal)
		}
	}

	summary := models.AccountSummary{
		AccountNumber: account.Number,
		AccountName:   account.Name,
		Deposits:      models.Amount(deposits.Round(2)),
		Withdrawals:   models.Amount(withdrawals.Round(2)),
	}
	for i := len(transactions) - 1; i >= 0; i-- {
		if transactions[i].Balance.Valid {
			summary.Balance = transactions[i].Balance
			break
		}
	}
	return summary
}
