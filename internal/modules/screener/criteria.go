package screener

// RubricVariant selects between the two rule directions that differ across
// published versions of this screen: how Price/Book is compared to 1.5 and
// what the supplementary Graham checks require.
type RubricVariant string

const (
	// VariantConservative passes cheap stocks: P/B below 1.5 passes, and the
	// price-vs-Graham checks require the price to sit below the estimate.
	VariantConservative RubricVariant = "conservative"

	// VariantLegacy keeps the original rule direction: P/B above 1.5 passes,
	// and a Graham check passes whenever the estimate exists at all.
	VariantLegacy RubricVariant = "legacy"
)

// Valid reports whether the variant is one of the known rubrics.
func (v RubricVariant) Valid() bool {
	return v == VariantConservative || v == VariantLegacy
}

const (
	revenueThreshold     = 100_000_000
	currentRatioFloor    = 2.0
	priceToBookThreshold = 1.5
	earningsMultipleCap  = 15.0
	positiveEPSWindow    = 5
	positiveEPSRequired  = 4
)

// Evaluate applies the seven-screen rubric to a record. Any criterion whose
// input is missing evaluates to false; the supplementary price-vs-value
// checks degrade to unavailable instead. Evaluation never fails.
func Evaluate(result *ScreenResult, variant RubricVariant) Scorecard {
	record := result.Record
	eps := result.EPS

	card := Scorecard{
		Results: make(map[Criterion]bool, len(Criteria)),
	}

	card.Results[CriterionRevenue] = record.TotalRevenue > revenueThreshold
	card.Results[CriterionCurrentRatio] = record.CurrentRatio > currentRatioFloor
	card.Results[CriterionWorkingCapital] = record.EstimatedCurrentAssets-record.EstimatedCurrentLiabilities > 0
	card.Results[CriterionDividend] = record.DividendRate > 0
	card.Results[CriterionEPSStability] = hasStablePositiveEPS(eps.Values)
	card.Results[CriterionEarningsYield] = record.Price != nil &&
		eps.Avg3 > 0 &&
		*record.Price <= earningsMultipleCap*eps.Avg3

	if variant == VariantLegacy {
		card.Results[CriterionPriceToBook] = record.PriceToBook > priceToBookThreshold
	} else {
		// A zero P/B means the field was missing, which fails closed.
		card.Results[CriterionPriceToBook] = record.PriceToBook > 0 &&
			record.PriceToBook < priceToBookThreshold
	}

	for _, criterion := range Criteria {
		if card.Results[criterion] {
			card.PassedCount++
		}
	}

	card.PriceVsGrahamNumber = priceCheck(record.Price, result.Valuation.GrahamNumber, variant)
	card.PriceVsGrahamValue = priceCheck(record.Price, result.Valuation.GrahamValue, variant)

	return card
}

// hasStablePositiveEPS checks that at least four of the last five EPS
// entries are positive. Series shorter than four entries cannot qualify.
func hasStablePositiveEPS(values []float64) bool {
	window := values
	if len(window) > positiveEPSWindow {
		window = window[len(window)-positiveEPSWindow:]
	}

	positive := 0
	for _, v := range window {
		if v > 0 {
			positive++
		}
	}
	return positive >= positiveEPSRequired
}

// priceCheck evaluates one supplementary price-vs-intrinsic-value check.
func priceCheck(price, value *float64, variant RubricVariant) CheckState {
	if variant == VariantLegacy {
		// Original rule: the check passes whenever the estimate exists.
		if value == nil {
			return CheckFail
		}
		return CheckPass
	}

	if price == nil || value == nil {
		return CheckUnavailable
	}
	if *price < *value {
		return CheckPass
	}
	return CheckFail
}
