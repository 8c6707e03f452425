// Package tableparser implements the row/column statement front-end for
// statements the upstream converter managed to export as a table. A row
// whose first cell carries the month-day marker is one transaction; a row
// whose first cell matches a configured account number is an
// account-summary row; every other row is skipped as noise.
package tableparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"statement-extract/internal/accounts"
	"statement-extract/internal/logging"
	"statement-extract/internal/models"
	"statement-extract/internal/moneytoken"
	"statement-extract/internal/parser"
	"statement-extract/internal/parsererror"
	"statement-extract/internal/textparser"
	"statement-extract/internal/textutils"

	"github.com/shopspring/decimal"
)

// Adapter implements the shared parser interface for table statements.
type Adapter struct {
	registry *accounts.Registry
	logger   logging.Logger
	comma    rune
}

var _ parser.Parser = (*Adapter)(nil)

// NewAdapter creates a table front-end parser bound to an account
// registry. A nil logger falls back to the process default. The cell
// delimiter defaults to a comma; see SetComma.
func NewAdapter(registry *accounts.Registry, logger logging.Logger) *Adapter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Adapter{registry: registry, logger: logger, comma: ','}
}

// SetComma sets the cell delimiter Parse reads with, for tab-separated
// and similar exports.
func (a *Adapter) SetComma(comma rune) {
	if comma != 0 {
		a.comma = comma
	}
}

// Parse reads delimited rows from r and extracts transactions and
// account summaries in source order.
func (a *Adapter) Parse(r io.Reader) (*models.Statement, error) {
	rows, err := ReadRows(r, a.comma)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			Source:         "table statement",
			ExpectedFormat: "delimited rows",
			Msg:            fmt.Sprintf("unreadable row: %v", err),
		}
	}
	return a.ParseRows(rows)
}

// ReadRows materializes delimited rows with the lenient settings both
// the adapter and the command layer read statement exports with: ragged
// rows allowed, lazy quoting, the given cell delimiter.
func ReadRows(r io.Reader, comma rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // statement exports have ragged rows
	reader.LazyQuotes = true
	if comma != 0 {
		reader.Comma = comma
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// ParseRows runs the row classifier over already-materialized rows.
func (a *Adapter) ParseRows(rows [][]string) (*models.Statement, error) {
	if len(rows) == 0 {
		return nil, &parsererror.NoContentError{
			Source: "table statement",
			Msg:    "no rows in input",
		}
	}

	statement := &models.Statement{}
	for i, row := range rows {
		cells := trimCells(row)
		if len(cells) == 0 {
			continue
		}

		switch {
		case textparser.IsAnchorLine(cells[0]):
			if tx, ok := a.transactionFromRow(cells); ok {
				statement.Transactions = append(statement.Transactions, tx)
			} else {
				a.logger.Debug("Skipping transaction row without two numeric cells",
					logging.Field{Key: logging.FieldRow, Value: i})
			}
		case a.registry.Known(cells[0]):
			statement.Summaries = append(statement.Summaries, a.summaryFromRow(cells))
		default:
			// Headers, footers and page furniture fall through here.
		}
	}

	a.logger.Info("Extracted records from table statement",
		logging.Field{Key: logging.FieldCount, Value: len(statement.Transactions)},
		logging.Field{Key: "summaries", Value: len(statement.Summaries)})

	return statement, nil
}

// transactionFromRow builds one transaction from a date-anchored row.
// The last two digit-bearing cells are taken as amount and balance, the
// same positional rule the text front-end applies within a line; this can
// misfire when a description cell carries a stray number (a check number,
// say) and the row has fewer than two genuine numeric columns. The cells
// strictly between the date and the amount make up the description.
func (a *Adapter) transactionFromRow(cells []string) (models.Transaction, bool) {
	var numeric []int
	for i := 1; i < len(cells); i++ {
		if moneytoken.ContainsDigit(cells[i]) {
			numeric = append(numeric, i)
		}
	}
	if len(numeric) < 2 {
		return models.Transaction{}, false
	}

	amountIdx := numeric[len(numeric)-2]
	balanceIdx := numeric[len(numeric)-1]

	amount, negative := cellAmount(cells[amountIdx])
	balance, _ := cellAmount(cells[balanceIdx])

	tx := models.Transaction{
		Date:        cells[0],
		Description: textutils.Normalize(strings.Join(cells[1:amountIdx], " ")),
		Balance:     models.Amount(balance),
	}
	// One signed amount per row; the debit/credit split is derived here
	// so both front-ends expose the same record shape downstream.
	if negative {
		tx.Debit = models.Amount(amount)
	} else {
		tx.Credit = models.Amount(amount)
	}
	return tx, true
}

// summaryFromRow maps an account-summary row to its entry. The
// digit-bearing cells after the account number are taken in order as
// deposits, withdrawals, balance and YTD dividends; rows with fewer
// numeric cells leave the trailing fields empty.
func (a *Adapter) summaryFromRow(cells []string) models.AccountSummary {
	account := a.registry.Lookup(cells[0])
	summary := models.AccountSummary{
		AccountNumber: account.Number,
		AccountName:   account.Name,
	}

	fields := []*decimal.NullDecimal{
		&summary.Deposits,
		&summary.Withdrawals,
		&summary.Balance,
		&summary.YTDDividends,
	}
	next := 0
	for i := 1; i < len(cells) && next < len(fields); i++ {
		if !moneytoken.ContainsDigit(cells[i]) {
			continue
		}
		value, negative := cellAmount(cells[i])
		if negative {
			value = value.Neg()
		}
		*fields[next] = models.Amount(value)
		next++
	}
	return summary
}

// cellAmount parses one numeric cell: the last monetary token wins; cells
// with digits but no grammar-shaped token fall back to a best-effort
// decimal parse that normalizes to zero on failure.
func cellAmount(cell string) (decimal.Decimal, bool) {
	tokens := moneytoken.Extract(cell)
	if len(tokens) > 0 {
		t := tokens[len(tokens)-1]
		return t.Magnitude, t.Negative
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.':
			return r
		default:
			return -1
		}
	}, cell)
	negative := strings.HasSuffix(strings.TrimSpace(cell), "-") ||
		strings.HasPrefix(strings.TrimSpace(cell), "-")

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, negative
	}
	return value.Abs().Round(2), negative
}

// trimCells strips per-cell whitespace and stray quote characters and
// drops empty trailing artifacts of ragged exports.
func trimCells(row []string) []string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		cell = strings.Trim(cell, `"'`)
		cell = strings.TrimSpace(cell)
		cells = append(cells, cell)
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
