// Package parser defines the interface shared by the statement
// front-ends.
package parser

import (
	"io"

	"statement-extract/internal/models"
)

// Parser reads one flattened statement from r and returns the extracted
// ledger. Implementations understand a specific upstream conversion
// format (plain text or delimited table) and transform it into the
// standardized Statement structure. Genuine failures are reported with
// the typed errors from internal/parsererror; unrecognized lines or rows
// are skipped, not reported.
type Parser interface {
	Parse(r io.Reader) (*models.Statement, error)
}
