package currency

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statement-extract/internal/logging"
	"statement-extract/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type failingSource struct{}

func (failingSource) Rate(context.Context) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("source down")
}

func TestNormalizerScalesEveryMonetaryField(t *testing.T) {
	statement := &models.Statement{
		Transactions: []models.Transaction{
			{Date: "03-14", Description: "CHECK #102", Debit: models.Amount(dec("100.00")), Balance: models.Amount(dec("900.00"))},
			{Date: "03-15", Description: "DEPOSIT", Credit: models.Amount(dec("50.00")), Balance: models.Amount(dec("950.00"))},
		},
		Summaries: []models.AccountSummary{
			{
				AccountNumber: "12345678",
				Deposits:      models.Amount(dec("50.00")),
				Withdrawals:   models.Amount(dec("100.00")),
				Balance:       models.Amount(dec("950.00")),
			},
		},
	}

	n := NewNormalizer(FixedSource{Value: dec("0.5")}, dec("1"), "EUR", &logging.MockLogger{})
	n.Apply(context.Background(), statement)

	assert.Equal(t, "EUR", statement.Currency)
	assert.True(t, statement.Transactions[0].Debit.Decimal.Equal(dec("50.00")))
	assert.True(t, statement.Transactions[0].Balance.Decimal.Equal(dec("450.00")))
	assert.True(t, statement.Transactions[1].Credit.Decimal.Equal(dec("25.00")))
	assert.True(t, statement.Summaries[0].Deposits.Decimal.Equal(dec("25.00")))
	assert.True(t, statement.Summaries[0].Withdrawals.Decimal.Equal(dec("50.00")))
	assert.True(t, statement.Summaries[0].Balance.Decimal.Equal(dec("475.00")))

	// Dates and descriptions are untouched, and empty fields stay empty.
	assert.Equal(t, "03-14", statement.Transactions[0].Date)
	assert.Equal(t, "CHECK #102", statement.Transactions[0].Description)
	assert.False(t, statement.Transactions[0].Credit.Valid)
	assert.False(t, statement.Summaries[0].YTDDividends.Valid)
}

func TestNormalizerRoundsToTwoDecimals(t *testing.T) {
	statement := &models.Statement{
		Transactions: []models.Transaction{
			{Credit: models.Amount(dec("10.00"))},
		},
	}

	n := NewNormalizer(FixedSource{Value: dec("0.3333")}, dec("1"), "EUR", &logging.MockLogger{})
	n.Apply(context.Background(), statement)

	assert.Equal(t, "3.33", statement.Transactions[0].Credit.Decimal.String())
}

func TestNormalizerFallsBackOnSourceError(t *testing.T) {
	statement := &models.Statement{
		Transactions: []models.Transaction{
			{Credit: models.Amount(dec("100.00"))},
		},
	}

	logger := &logging.MockLogger{}
	n := NewNormalizer(failingSource{}, dec("2"), "EUR", logger)
	n.Apply(context.Background(), statement)

	assert.True(t, statement.Transactions[0].Credit.Decimal.Equal(dec("200.00")))
	assert.Equal(t, "EUR", statement.Currency)

	warned := false
	for _, entry := range logger.Entries {
		if entry.Level == "WARN" {
			warned = true
		}
	}
	assert.True(t, warned, "fallback should be logged")
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates": {"EUR": 0.91, "GBP": 0.78}}`))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, "EUR", time.Second)
	rate, err := source.Rate(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("0.91")))
}

func TestHTTPSourceBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, "EUR", time.Second).Rate(context.Background())
	assert.Error(t, err)
}

func TestHTTPSourceMissingCurrency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates": {"GBP": 0.78}}`))
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, "EUR", time.Second).Rate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EUR")
}

func TestHTTPSourceMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, "EUR", time.Second).Rate(context.Background())
	assert.Error(t, err)
}

func TestHTTPSourceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewHTTPSource(server.URL, "EUR", time.Second).Rate(context.Background())
	assert.Error(t, err)
}
