package textparser

import (
	"fmt"
	"io"

	"statement-extract/internal/logging"
	"statement-extract/internal/models"
	"statement-extract/internal/parser"
	"statement-extract/internal/parsererror"
)

// Adapter implements the shared parser interface for plain-text
// statements.
type Adapter struct {
	logger logging.Logger
}

var _ parser.Parser = (*Adapter)(nil)

// NewAdapter creates a text front-end parser. A nil logger falls back to
// the process default.
func NewAdapter(logger logging.Logger) *Adapter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Adapter{logger: logger}
}

// Parse reads the whole text statement from r and extracts its
// transactions in source order. The synthesized account summary is left
// to the caller: plain text carries no per-account summary rows.
func (a *Adapter) Parse(r io.Reader) (*models.Statement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading text statement: %w", err)
	}
	return a.ParseText(string(data))
}

// ParseText runs the line machine over the already-materialized statement
// text.
func (a *Adapter) ParseText(text string) (*models.Statement, error) {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return nil, &parsererror.NoContentError{
			Source: "text statement",
			Msg:    "input is empty or whitespace only",
		}
	}

	machine := NewMachine()
	var transactions []models.Transaction

	for _, line := range lines {
		a.logger.Debug("Processing statement line",
			logging.Field{Key: logging.FieldLine, Value: line})

		var (
			tx models.Transaction
			ok bool
		)
		if IsAnchorLine(line) {
			if machine.State() == StateAccumulating {
				a.logger.Debug("Abandoning pending transaction without numbers",
					logging.Field{Key: logging.FieldLine, Value: line})
			}
			tx, ok = machine.OnAnchorLine(line)
		} else {
			tx, ok = machine.OnContinuationLine(line)
		}
		if ok {
			transactions = append(transactions, tx)
		}
	}

	if tx, ok := machine.OnEndOfInput(); ok {
		a.logger.Debug("Salvaged trailing balance-only transaction",
			logging.Field{Key: "date", Value: tx.Date})
		transactions = append(transactions, tx)
	}

	a.logger.Info("Extracted transactions from text statement",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return &models.Statement{Transactions: transactions}, nil
}
