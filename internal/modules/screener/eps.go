package screener

import (
	"math"

	"github.com/Andohkay1/Stock-screener/internal/domain"
	"github.com/Andohkay1/Stock-screener/pkg/formulas"
)

// degenerateSeriesLength is the length of the fallback series built by
// replicating trailing EPS. Seven periods serve both the 5- and 7-year
// averaging windows.
const degenerateSeriesLength = 7

// EstimateEPSHistory derives the per-period EPS series for a record.
//
// When annual net income and a positive share count are available, each
// period's EPS is net income divided by shares outstanding. Otherwise the
// series degenerates to the trailing EPS replicated across seven periods.
// Without even a trailing EPS the series is empty and valuation downstream
// is unavailable.
func EstimateEPSHistory(record *domain.FinancialFactRecord) EPSHistory {
	var history EPSHistory

	switch {
	case len(record.NetIncomeSeries) > 0 && record.SharesOutstanding > 0:
		history.Values = make([]float64, 0, len(record.NetIncomeSeries))
		for _, netIncome := range record.NetIncomeSeries {
			eps := netIncome / record.SharesOutstanding
			if math.IsNaN(eps) || math.IsInf(eps, 0) {
				continue
			}
			history.Values = append(history.Values, eps)
		}
	case record.TrailingEPS != nil:
		history.Degenerate = true
		history.Values = make([]float64, degenerateSeriesLength)
		for i := range history.Values {
			history.Values[i] = *record.TrailingEPS
		}
	}

	if len(history.Values) == 0 {
		return history
	}

	history.Avg3 = windowedAverage(history.Values, 3)
	history.Avg5 = windowedAverage(history.Values, 5)
	history.Avg7 = windowedAverage(history.Values, 7)
	history.GrowthRate = growthRate(history.Values)

	return history
}

// windowedAverage averages the last n entries. Series shorter than three
// entries are too thin to window, so the whole series is averaged instead.
func windowedAverage(values []float64, n int) float64 {
	if len(values) < 3 {
		return formulas.Mean(values)
	}
	return formulas.TailMean(values, n)
}

// growthRate computes EPS growth over the positive-EPS subsequence only:
// zero and negative years are excluded before picking the oldest and latest
// entries. Fewer than two positive entries means growth is unknown and
// reported as zero.
func growthRate(values []float64) float64 {
	positives := formulas.Positive(values)
	if len(positives) < 2 {
		return 0
	}

	oldest := positives[0]
	latest := positives[len(positives)-1]
	if oldest == 0 {
		// Unreachable past the positive filter, but never divide blind.
		return 0
	}

	return (latest - oldest) / oldest
}
