package common

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"statement-extract/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Date:        "03-14",
			Description: "CHECK #102",
			Debit:       models.Amount(dec("1234.56")),
			Balance:     models.Amount(dec("8765.44")),
		},
		{
			Date:        "03-15",
			Description: "DEPOSIT FROM PAYROLL PROVIDER",
			Credit:      models.Amount(dec("2000.00")),
			Balance:     models.Amount(dec("10765.44")),
		},
	}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	require.NoError(t, WriteTransactionsToCSV(sampleTransactions(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date,Description,Debit,Credit,Balance", lines[0])
	assert.Equal(t, "03-14,CHECK #102,1234.56,,8765.44", lines[1])
	assert.Equal(t, "03-15,DEPOSIT FROM PAYROLL PROVIDER,,2000.00,10765.44", lines[2])
}

func TestWriteTransactionsToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")

	require.NoError(t, WriteTransactionsToCSV(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Description,Debit,Credit,Balance",
		strings.TrimSpace(string(data)), "empty input still writes the header")
}

func TestWriteTransactionsToCSVCustomDelimiter(t *testing.T) {
	orig := Delimiter
	SetDelimiter(';')
	defer SetDelimiter(orig)

	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleTransactions()[:1], path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Date;Description;Debit;Credit;Balance", lines[0])
	assert.Equal(t, "03-14;CHECK #102;1234.56;;8765.44", lines[1])
}

func TestWriteSummariesToCSV(t *testing.T) {
	summaries := []models.AccountSummary{
		{
			AccountNumber: "12345678",
			AccountName:   "Premium Bus Checking",
			Deposits:      models.Amount(dec("2000.00")),
			Withdrawals:   models.Amount(dec("1234.56")),
			Balance:       models.Amount(dec("10765.44")),
		},
	}
	path := filepath.Join(t.TempDir(), "summary.csv")

	require.NoError(t, WriteSummariesToCSV(summaries, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "AccountNumber,AccountName,Deposits,Withdrawals,Balance,YTDDividends", lines[0])
	assert.Equal(t, "12345678,Premium Bus Checking,2000.00,1234.56,10765.44,", lines[1])
}

func TestWriteStatementJSON(t *testing.T) {
	statement := &models.Statement{
		Summaries: []models.AccountSummary{
			{AccountNumber: "12345678", AccountName: "Premium Bus Checking"},
		},
		Transactions: sampleTransactions(),
		Currency:     "EUR",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatementJSON(statement, &buf))

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))
	assert.Contains(t, envelope, "summary")
	assert.Contains(t, envelope, "transactions")
	assert.Contains(t, envelope, "currency")

	var decoded models.Statement
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "EUR", decoded.Currency)
	require.Len(t, decoded.Transactions, 2)
	assert.False(t, decoded.Transactions[0].Credit.Valid, "empty fields round-trip as null")
	assert.True(t, decoded.Transactions[0].Debit.Decimal.Equal(dec("1234.56")))
}

func TestWriteStatementJSONOmitsEmptyCurrency(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatementJSON(&models.Statement{}, &buf))
	assert.NotContains(t, buf.String(), "currency")
}

func TestWriteStatementJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "statement.json")

	statement := &models.Statement{Transactions: sampleTransactions()}
	require.NoError(t, WriteStatementJSONFile(statement, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.Statement
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Transactions, 2)
}
