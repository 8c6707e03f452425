// Package engine orchestrates one statement extraction request: it
// selects the front-end for whichever conversion format the upstream
// produced, runs it, attaches the account summary, and applies the
// optional currency normalization. Each request is single-pass over
// already-materialized input; no state survives between requests.
package engine

import (
	"context"
	"strings"

	"statement-extract/internal/accounts"
	"statement-extract/internal/currency"
	"statement-extract/internal/logging"
	"statement-extract/internal/models"
	"statement-extract/internal/parsererror"
	"statement-extract/internal/summary"
	"statement-extract/internal/tableparser"
	"statement-extract/internal/textparser"
)

// Input carries exactly one of the two upstream conversion formats.
// Rows wins when both are set, since the table export is the richer one.
type Input struct {
	Text string
	Rows [][]string
}

// Engine is the statement extraction pipeline. It is safe to reuse
// across requests: all accumulator state lives inside a single Extract
// call.
type Engine struct {
	registry   *accounts.Registry
	normalizer *currency.Normalizer
	logger     logging.Logger
}

// New creates an engine. The normalizer may be nil, in which case
// monetary values pass through unscaled and untagged. A nil logger falls
// back to the process default.
func New(registry *accounts.Registry, normalizer *currency.Normalizer, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		registry:   registry,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Extract runs one statement through the pipeline. Empty input yields a
// typed no-content error and no partial results; the ordering of the
// returned transactions follows the source exactly.
func (e *Engine) Extract(ctx context.Context, in Input) (*models.Statement, error) {
	var (
		statement *models.Statement
		err       error
	)

	switch {
	case len(in.Rows) > 0:
		e.logger.Debug("Extracting via table front-end",
			logging.Field{Key: logging.FieldFrontEnd, Value: "table"})
		statement, err = tableparser.NewAdapter(e.registry, e.logger).ParseRows(in.Rows)

	case strings.TrimSpace(in.Text) != "":
		e.logger.Debug("Extracting via text front-end",
			logging.Field{Key: logging.FieldFrontEnd, Value: "text"})
		statement, err = textparser.NewAdapter(e.logger).ParseText(in.Text)
		if err == nil {
			// Plain text has no summary rows, so exactly one aggregate
			// summary is synthesized. The table front-end passes its
			// matched rows through instead.
			statement.Summaries = []models.AccountSummary{
				summary.Aggregate(statement.Transactions, e.registry.Placeholder()),
			}
		}

	default:
		return nil, &parsererror.NoContentError{
			Source: "statement",
			Msg:    "neither text nor table content supplied",
		}
	}

	if err != nil {
		return nil, err
	}

	if e.normalizer != nil {
		e.normalizer.Apply(ctx, statement)
	}
	return statement, nil
}
