// Package currency applies an optional conversion rate to every monetary
// value of an extracted statement. The rate is obtained once per request
// and applied uniformly as a post-processing scale; it never influences
// which tokens the front-ends pick.
package currency

import (
	"context"

	"statement-extract/internal/logging"
	"statement-extract/internal/models"

	"github.com/shopspring/decimal"
)

// Normalizer scales statements into a target currency.
type Normalizer struct {
	source   RateSource
	fallback decimal.Decimal
	tag      string
	logger   logging.Logger
}

// NewNormalizer creates a normalizer. The fallback rate is used whenever
// the source fails; tag is the currency code stamped on normalized
// statements. A nil logger falls back to the process default.
func NewNormalizer(source RateSource, fallback decimal.Decimal, tag string, logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{
		source:   source,
		fallback: fallback,
		tag:      tag,
		logger:   logger,
	}
}

// Apply multiplies every monetary field of the statement by the current
// rate, rounded to two decimals, and stamps the currency tag. Dates and
// descriptions are untouched.
func (n *Normalizer) Apply(ctx context.Context, statement *models.Statement) {
	rate := n.rate(ctx)

	for i := range statement.Transactions {
		tx := &statement.Transactions[i]
		scale(&tx.Debit, rate)
		scale(&tx.Credit, rate)
		scale(&tx.Balance, rate)
	}
	for i := range statement.Summaries {
		s := &statement.Summaries[i]
		scale(&s.Deposits, rate)
		scale(&s.Withdrawals, rate)
		scale(&s.Balance, rate)
		scale(&s.YTDDividends, rate)
	}
	statement.Currency = n.tag

	n.logger.Info("Applied currency normalization",
		logging.Field{Key: logging.FieldCurrency, Value: n.tag},
		logging.Field{Key: logging.FieldRate, Value: rate.String()})
}

// rate fetches the conversion rate, falling back to the configured
// default on any failure. The fallback path is deliberate and silent
// toward the caller: a missing rate is never fatal for extraction.
func (n *Normalizer) rate(ctx context.Context) decimal.Decimal {
	rate, err := n.source.Rate(ctx)
	if err != nil {
		n.logger.WithError(err).Warn("Rate fetch failed, using fallback rate",
			logging.Field{Key: logging.FieldRate, Value: n.fallback.String()})
		return n.fallback
	}
	return rate
}

func scale(v *decimal.NullDecimal, rate decimal.Decimal) {
	if !v.Valid {
		return
	}
	v.Decimal = v.Decimal.Mul(rate).Round(2)
}
