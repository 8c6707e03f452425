package logging

// Standardized field names for structured logging. Using these constants
// keeps the log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldParser     = "parser"
	FieldFrontEnd   = "front_end"
	FieldAccount    = "account"
	FieldReason     = "reason"
	FieldError      = "error"
	FieldCount      = "count"
	FieldLine       = "line"
	FieldRow        = "row"
	FieldRate       = "rate"
	FieldCurrency   = "currency"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
