// Package common provides the shared output writers used by the command
// layer: standard-format CSV for transactions and account summaries, and
// the JSON envelope the presentation layer consumes.
package common

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"statement-extract/internal/logging"
	"statement-extract/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the global CSV output delimiter, configurable via the
// csv.delimiter setting.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteTransactionsToCSV writes transactions to a CSV file in the
// standard format. Empty debit/credit fields render as empty cells.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return marshalCSV(&transactions, csvFile)
}

// WriteSummariesToCSV writes account summaries to a CSV file in the
// standard format.
func WriteSummariesToCSV(summaries []models.AccountSummary, csvFile string) error {
	if summaries == nil {
		summaries = []models.AccountSummary{}
	}

	log.Info("Writing account summaries to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(summaries)})

	return marshalCSV(&summaries, csvFile)
}

// WriteStatementJSON writes the summary-plus-transactions envelope to w.
func WriteStatementJSON(statement *models.Statement, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(statement); err != nil {
		return fmt.Errorf("error encoding statement JSON: %w", err)
	}
	return nil
}

// WriteStatementJSONFile writes the JSON envelope to a file, creating
// parent directories as needed.
func WriteStatementJSONFile(statement *models.Statement, path string) error {
	file, err := createOutputFile(path)
	if err != nil {
		return err
	}
	defer closeOutput(file)

	log.Info("Writing statement JSON file",
		logging.Field{Key: logging.FieldOutputFile, Value: path})
	return WriteStatementJSON(statement, file)
}

func marshalCSV(rows interface{}, csvFile string) error {
	file, err := createOutputFile(csvFile)
	if err != nil {
		return err
	}
	defer closeOutput(file)

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal CSV data")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return nil, fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		log.WithError(err).Error("Failed to create output file")
		return nil, fmt.Errorf("error creating output file: %w", err)
	}
	return file, nil
}

func closeOutput(file *os.File) {
	if err := file.Close(); err != nil {
		log.WithError(err).Warn("Failed to close output file",
			logging.Field{Key: logging.FieldFile, Value: file.Name()})
	}
}
