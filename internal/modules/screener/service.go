package screener

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Andohkay1/Stock-screener/internal/domain"
)

// ErrNoValidData is returned when a non-empty ticker batch produced no usable
// result at all, as opposed to individual tickers being dropped.
var ErrNoValidData = errors.New("no valid data for any ticker")

// Provider supplies the fundamentals snapshot for one ticker.
type Provider interface {
	Fetch(ctx context.Context, ticker string) (*domain.FinancialFactRecord, error)
}

// ScreenParams are the per-run options of a screen.
type ScreenParams struct {
	// BondYield overrides the AAA bond yield reference when positive.
	BondYield float64
	// Variant overrides the service's default rubric when set.
	Variant RubricVariant
}

// Service runs the screening pipeline: fetch, estimate, valuate, evaluate,
// rank. Tickers are processed sequentially in input order.
type Service struct {
	provider Provider
	variant  RubricVariant
	log      zerolog.Logger
}

// NewService creates a new screener service
func NewService(provider Provider, variant RubricVariant, log zerolog.Logger) *Service {
	if !variant.Valid() {
		variant = VariantConservative
	}
	return &Service{
		provider: provider,
		variant:  variant,
		log:      log.With().Str("component", "screener").Logger(),
	}
}

// RunScreen screens a batch of tickers and returns the ranked table.
//
// A ticker whose fetch fails is dropped from the table, not surfaced as an
// error; the batch keeps going. An empty ticker list yields an empty table.
// A non-empty list where every ticker dropped returns ErrNoValidData.
func (s *Service) RunScreen(ctx context.Context, tickers []string, params ScreenParams) (RankedTable, error) {
	if len(tickers) == 0 {
		return RankedTable{}, nil
	}

	variant := s.variant
	if params.Variant.Valid() {
		variant = params.Variant
	}

	results := make([]ScreenResult, 0, len(tickers))
	for i, ticker := range tickers {
		record, err := s.provider.Fetch(ctx, ticker)
		if err != nil {
			s.log.Warn().Err(err).Str("ticker", ticker).Msg("Dropping ticker, fetch failed")
			continue
		}

		if params.BondYield > 0 {
			record.BondYieldReference = params.BondYield
		}

		result := EvaluateRecord(record, variant)
		result.InputIndex = i
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, ErrNoValidData
	}

	s.log.Info().
		Int("requested", len(tickers)).
		Int("screened", len(results)).
		Str("variant", string(variant)).
		Msg("Screen completed")

	return Rank(results), nil
}

// EvaluateRecord runs the pure per-ticker pipeline on one record. The same
// record always produces the same result.
func EvaluateRecord(record *domain.FinancialFactRecord, variant RubricVariant) ScreenResult {
	result := ScreenResult{
		Ticker: record.Ticker,
		Record: record,
		EPS:    EstimateEPSHistory(record),
	}
	result.Valuation = Valuate(record, result.EPS)
	result.Scorecard = Evaluate(&result, variant)
	result.PassedCount = result.Scorecard.PassedCount
	return result
}
