package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// RateSource supplies one conversion rate per extraction request.
type RateSource interface {
	Rate(ctx context.Context) (decimal.Decimal, error)
}

// FixedSource always returns the same rate.
type FixedSource struct {
	Value decimal.Decimal
}

// Rate implements RateSource.
func (s FixedSource) Rate(context.Context) (decimal.Decimal, error) {
	return s.Value, nil
}

// HTTPSource fetches the rate from an external JSON endpoint of the
// common shape {"rates": {"EUR": 0.91, ...}}. It makes a single request
// with no retry: the caller falls back to a fixed default on any failure,
// so correctness never depends on the fetch succeeding.
type HTTPSource struct {
	endpoint string
	target   string
	client   *http.Client
}

// NewHTTPSource creates a rate source for the given endpoint and target
// currency code.
func NewHTTPSource(endpoint, target string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		endpoint: endpoint,
		target:   target,
		client:   &http.Client{Timeout: timeout},
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate implements RateSource.
func (s *HTTPSource) Rate(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error building rate request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error fetching exchange rate: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("rate endpoint returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("error decoding rate response: %w", err)
	}

	rate, ok := body.Rates[s.target]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate response has no entry for %s", s.target)
	}
	return decimal.NewFromFloat(rate), nil
}
