package screener

import (
	"math"

	"github.com/Andohkay1/Stock-screener/internal/domain"
)

// grahamMultiplier is Graham's 22.5 ceiling: a P/E of 15 times a P/B of 1.5.
const grahamMultiplier = 22.5

// Valuate computes the two intrinsic-value estimates for a record from its
// derived EPS history. Estimates whose preconditions fail stay nil.
func Valuate(record *domain.FinancialFactRecord, eps EPSHistory) ValuationEstimate {
	var estimate ValuationEstimate

	// Graham Number: sqrt(22.5 * 7yr avg EPS * book value per share).
	if eps.Avg7 > 0 && record.BookValuePerShare != nil && *record.BookValuePerShare > 0 {
		number := math.Sqrt(grahamMultiplier * eps.Avg7 * *record.BookValuePerShare)
		estimate.GrahamNumber = &number
	}

	// Graham Value: growth-adjusted multiple of the 5yr avg EPS, discounted
	// by the ratio of the 4.4 AAA baseline to the live bond yield.
	if eps.Avg5 > 0 {
		yield := record.BondYield()
		value := eps.Avg5 * (8.5 + 2*eps.GrowthRate) * (domain.DefaultBondYield / yield)
		if value > 0 {
			estimate.GrahamValue = &value
		}
	}

	return estimate
}
