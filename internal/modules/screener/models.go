package screener

import (
	"github.com/Andohkay1/Stock-screener/internal/domain"
)

// Criterion names one of the fixed fundamental screens.
type Criterion string

const (
	CriterionRevenue        Criterion = "Revenue > $100M"
	CriterionCurrentRatio   Criterion = "Current Ratio > 2"
	CriterionWorkingCapital Criterion = "Positive Working Capital"
	CriterionDividend       Criterion = "Pays Dividends"
	CriterionEPSStability   Criterion = "Positive EPS 5yr"
	CriterionEarningsYield  Criterion = "Price <= 15x 3yr EPS"
	CriterionPriceToBook    Criterion = "Price/Book vs 1.5"
)

// Criteria is the canonical ordered list of the seven counted screens.
var Criteria = [7]Criterion{
	CriterionRevenue,
	CriterionCurrentRatio,
	CriterionWorkingCapital,
	CriterionDividend,
	CriterionEPSStability,
	CriterionEarningsYield,
	CriterionPriceToBook,
}

// CheckState is the outcome of a supplementary price-vs-value check.
type CheckState string

const (
	CheckPass        CheckState = "pass"
	CheckFail        CheckState = "fail"
	CheckUnavailable CheckState = "unavailable"
)

// EPSHistory is the derived per-period earnings series with its windowed
// averages and growth rate. Values run oldest to newest.
type EPSHistory struct {
	Values     []float64 `json:"values"`
	Degenerate bool      `json:"degenerate"` // series replicated from trailing EPS
	Avg3       float64   `json:"avg_3yr"`
	Avg5       float64   `json:"avg_5yr"`
	Avg7       float64   `json:"avg_7yr"`
	GrowthRate float64   `json:"growth_rate"`
}

// ValuationEstimate holds the two intrinsic-value estimates. Either is nil
// when its preconditions fail; when present both are strictly positive.
type ValuationEstimate struct {
	GrahamNumber *float64 `json:"graham_number,omitempty"`
	GrahamValue  *float64 `json:"graham_value,omitempty"`
}

// Scorecard maps the seven counted criteria to pass/fail plus the two
// non-counted price-vs-value checks.
type Scorecard struct {
	Results             map[Criterion]bool `json:"results"`
	PassedCount         int                `json:"passed_count"`
	PriceVsGrahamNumber CheckState         `json:"price_vs_graham_number"`
	PriceVsGrahamValue  CheckState         `json:"price_vs_graham_value"`
}

// ScreenResult is the per-ticker output of one screening run.
type ScreenResult struct {
	Ticker      string                      `json:"ticker"`
	InputIndex  int                         `json:"input_index"`
	Record      *domain.FinancialFactRecord `json:"record"`
	EPS         EPSHistory                  `json:"eps"`
	Valuation   ValuationEstimate           `json:"valuation"`
	Scorecard   Scorecard                   `json:"scorecard"`
	PassedCount int                         `json:"passed_count"`
}

// RankedTable is the final ordering of screen results, best first.
type RankedTable []ScreenResult
