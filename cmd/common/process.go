// Package common contains shared functionality for command handlers.
package common

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"statement-extract/internal/common"
	"statement-extract/internal/engine"
	"statement-extract/internal/fileutils"
	"statement-extract/internal/logging"
	"statement-extract/internal/tableparser"
)

// FrontEnd selects which parsing front-end processes a file.
type FrontEnd int

const (
	// FrontEndAuto picks the front-end from the file extension:
	// .csv/.tsv files go through the table parser, everything else
	// through the text parser.
	FrontEndAuto FrontEnd = iota
	// FrontEndText forces the plain-text front-end.
	FrontEndText
	// FrontEndTable forces the table front-end.
	FrontEndTable
)

// ProcessFile extracts one statement file and writes the transaction CSV,
// the account-summary CSV and, when jsonFile is non-empty, the JSON
// envelope. The summary CSV lands next to the transaction CSV with a
// "_summary" suffix.
func ProcessFile(eng *engine.Engine, frontEnd FrontEnd, inputFile, outputFile, jsonFile string, log logging.Logger) error {
	if inputFile == "" {
		return fmt.Errorf("no input file specified")
	}
	if outputFile == "" && jsonFile == "" {
		return fmt.Errorf("no output file specified")
	}

	in, err := readInput(frontEnd, inputFile)
	if err != nil {
		return err
	}

	statement, err := eng.Extract(context.Background(), in)
	if err != nil {
		return fmt.Errorf("extraction failed for %s: %w", inputFile, err)
	}

	log.Info("Statement extracted",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldCount, Value: len(statement.Transactions)})

	if outputFile != "" {
		if err := common.WriteTransactionsToCSV(statement.Transactions, outputFile); err != nil {
			return err
		}
		if err := common.WriteSummariesToCSV(statement.Summaries, summaryPath(outputFile)); err != nil {
			return err
		}
	}
	if jsonFile != "" {
		if err := common.WriteStatementJSONFile(statement, jsonFile); err != nil {
			return err
		}
	}
	return nil
}

func readInput(frontEnd FrontEnd, inputFile string) (engine.Input, error) {
	if frontEnd == FrontEndAuto {
		switch strings.ToLower(filepath.Ext(inputFile)) {
		case ".csv", ".tsv":
			frontEnd = FrontEndTable
		default:
			frontEnd = FrontEndText
		}
	}

	if frontEnd == FrontEndText {
		data, err := fileutils.ReadFile(inputFile)
		if err != nil {
			return engine.Input{}, err
		}
		return engine.Input{Text: string(data)}, nil
	}

	file, err := fileutils.OpenFile(inputFile)
	if err != nil {
		return engine.Input{}, err
	}
	defer func() {
		_ = file.Close()
	}()

	comma := ','
	if strings.EqualFold(filepath.Ext(inputFile), ".tsv") {
		comma = '\t'
	}
	rows, err := tableparser.ReadRows(file, comma)
	if err != nil {
		return engine.Input{}, fmt.Errorf("error reading table file %s: %w", inputFile, err)
	}
	return engine.Input{Rows: rows}, nil
}

func summaryPath(outputFile string) string {
	ext := filepath.Ext(outputFile)
	return strings.TrimSuffix(outputFile, ext) + "_summary" + ext
}
