package domain

import "time"

// DefaultBondYield is the AAA corporate bond yield baseline used by the
// Graham Value formula. A missing or non-positive live yield falls back to
// this value, making the discount ratio 1.0.
const DefaultBondYield = 4.4

// FinancialFactRecord is a normalized snapshot of one company's fundamentals
// for a single screening run. Pointer fields are absent when the provider did
// not supply them; value fields default to zero.
type FinancialFactRecord struct {
	Ticker                      string    `json:"ticker"`
	Price                       *float64  `json:"price,omitempty"`
	TrailingEPS                 *float64  `json:"trailing_eps,omitempty"`
	BookValuePerShare           *float64  `json:"book_value_per_share,omitempty"`
	TotalRevenue                float64   `json:"total_revenue"`
	CurrentRatio                float64   `json:"current_ratio"`
	PriceToBook                 float64   `json:"price_to_book"`
	DividendRate                float64   `json:"dividend_rate"`
	EstimatedCurrentAssets      float64   `json:"estimated_current_assets"`
	EstimatedCurrentLiabilities float64   `json:"estimated_current_liabilities"`
	NetIncomeSeries             []float64 `json:"net_income_series,omitempty"` // oldest -> newest
	SharesOutstanding           float64   `json:"shares_outstanding"`
	BondYieldReference          float64   `json:"bond_yield_reference"`
	FetchedAt                   time.Time `json:"fetched_at"`
}

// BondYield returns the record's bond yield reference, falling back to the
// 4.4 baseline when the stored value is missing or non-positive.
func (r *FinancialFactRecord) BondYield() float64 {
	if r.BondYieldReference > 0 {
		return r.BondYieldReference
	}
	return DefaultBondYield
}
