// Package parsererror defines the typed errors surfaced by the extraction
// engine. Lines and rows that merely fail to match the statement grammar
// are skipped, not reported; these types cover the genuine failures that
// abort a request.
package parsererror

import "fmt"

// NoContentError reports that the upstream conversion produced no usable
// text or table for this request. It is fatal: no partial result is
// returned alongside it.
type NoContentError struct {
	Source string
	Msg    string
}

func (e *NoContentError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("no extractable content from %s: %s", e.Source, e.Msg)
	}
	return fmt.Sprintf("no extractable content from %s", e.Source)
}

// ParseError represents a failure while parsing a specific piece of input.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents input that does not conform to the format
// a front-end expects (for example a table file that is not valid CSV).
type InvalidFormatError struct {
	Source         string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in %s: %s. Expected: %s",
		e.Source, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents a required field that could not be
// extracted even though the input format itself was valid.
type DataExtractionError struct {
	Source    string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in %s for field '%s': %s",
		e.Source, e.FieldName, e.Reason)
}
