package summary

import (
	"testing"

	"statement-extract/internal/accounts"
	"statement-extract/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testAccount = accounts.Account{Number: "12345678", Name: "Premium Bus Checking"}

func TestAggregate(t *testing.T) {
	transactions := []models.Transaction{
		{Date: "03-01", Credit: models.Amount(dec("1000.00")), Balance: models.Amount(dec("1000.00"))},
		{Date: "03-05", Debit: models.Amount(dec("250.50")), Balance: models.Amount(dec("749.50"))},
		{Date: "03-10", Credit: models.Amount(dec("0.50")), Balance: models.Amount(dec("750.00"))},
		{Date: "03-15", Debit: models.Amount(dec("100.00")), Balance: models.Amount(dec("650.00"))},
	}

	s := Aggregate(transactions, testAccount)

	assert.Equal(t, "12345678", s.AccountNumber)
	assert.Equal(t, "Premium Bus Checking", s.AccountName)
	require.True(t, s.Deposits.Valid)
	assert.Equal(t, "1000.50", s.Deposits.Decimal.String())
	require.True(t, s.Withdrawals.Valid)
	assert.Equal(t, "350.50", s.Withdrawals.Decimal.String())
	require.True(t, s.Balance.Valid)
	assert.True(t, s.Balance.Decimal.Equal(dec("650.00")))
	assert.False(t, s.YTDDividends.Valid, "dividends cannot be derived from text")
}

func TestAggregateBalanceFromLastCarrier(t *testing.T) {
	// A salvaged final transaction may carry only a balance; an earlier
	// one may carry none at all.
	transactions := []models.Transaction{
		{Date: "04-01", Credit: models.Amount(dec("10.00")), Balance: models.Amount(dec("10.00"))},
		{Date: "04-02", Debit: models.Amount(dec("5.00"))},
	}

	s := Aggregate(transactions, testAccount)
	require.True(t, s.Balance.Valid)
	assert.True(t, s.Balance.Decimal.Equal(dec("10.00")))
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil, testAccount)

	require.True(t, s.Deposits.Valid)
	assert.True(t, s.Deposits.Decimal.IsZero())
	require.True(t, s.Withdrawals.Valid)
	assert.True(t, s.Withdrawals.Decimal.IsZero())
	assert.False(t, s.Balance.Valid)
}

func TestAggregateTwoDecimalRendering(t *testing.T) {
	transactions := []models.Transaction{
		{Date: "05-01", Credit: models.Amount(dec("1.1"))},
		{Date: "05-02", Credit: models.Amount(dec("2.2"))},
	}

	s := Aggregate(transactions, testAccount)
	assert.Equal(t, "3.30", s.Deposits.Decimal.String())
}
