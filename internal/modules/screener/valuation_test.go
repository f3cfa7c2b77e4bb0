package screener

import (
	"math"
	"testing"

	"github.com/Andohkay1/Stock-screener/internal/domain"
)

func TestGrahamNumber(t *testing.T) {
	record := &domain.FinancialFactRecord{
		Ticker:            "TEST",
		BookValuePerShare: floatPtr(25),
	}

	estimate := Valuate(record, EPSHistory{Avg7: 4})

	if estimate.GrahamNumber == nil {
		t.Fatal("GrahamNumber should be present")
	}
	// sqrt(22.5 * 4 * 25) = sqrt(2250)
	want := math.Sqrt(2250)
	if math.Abs(*estimate.GrahamNumber-want) > 1e-9 {
		t.Errorf("GrahamNumber = %v, want %v", *estimate.GrahamNumber, want)
	}
}

func TestGrahamNumberAbsent(t *testing.T) {
	tests := []struct {
		name   string
		record domain.FinancialFactRecord
		eps    EPSHistory
	}{
		{
			name:   "no book value",
			record: domain.FinancialFactRecord{Ticker: "TEST"},
			eps:    EPSHistory{Avg7: 4},
		},
		{
			name:   "zero book value",
			record: domain.FinancialFactRecord{Ticker: "TEST", BookValuePerShare: floatPtr(0)},
			eps:    EPSHistory{Avg7: 4},
		},
		{
			name:   "negative average EPS",
			record: domain.FinancialFactRecord{Ticker: "TEST", BookValuePerShare: floatPtr(25)},
			eps:    EPSHistory{Avg7: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := Valuate(&tt.record, tt.eps)
			if estimate.GrahamNumber != nil {
				t.Errorf("GrahamNumber = %v, want absent", *estimate.GrahamNumber)
			}
		})
	}
}

func TestGrahamValue(t *testing.T) {
	tests := []struct {
		name      string
		eps       EPSHistory
		bondYield float64
		want      float64
	}{
		{
			name:      "baseline yield, no growth",
			eps:       EPSHistory{Avg5: 5, GrowthRate: 0},
			bondYield: 4.4,
			want:      42.5, // 5 * 8.5 * 1.0
		},
		{
			name:      "higher live yield discounts the value",
			eps:       EPSHistory{Avg5: 5, GrowthRate: 0},
			bondYield: 8.8,
			want:      21.25,
		},
		{
			name:      "growth raises the multiplier",
			eps:       EPSHistory{Avg5: 2, GrowthRate: 0.5},
			bondYield: 4.4,
			want:      19, // 2 * (8.5 + 1.0)
		},
		{
			name:      "missing yield falls back to baseline",
			eps:       EPSHistory{Avg5: 5, GrowthRate: 0},
			bondYield: 0,
			want:      42.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &domain.FinancialFactRecord{
				Ticker:             "TEST",
				BondYieldReference: tt.bondYield,
			}

			estimate := Valuate(record, tt.eps)
			if estimate.GrahamValue == nil {
				t.Fatal("GrahamValue should be present")
			}
			if math.Abs(*estimate.GrahamValue-tt.want) > 1e-9 {
				t.Errorf("GrahamValue = %v, want %v", *estimate.GrahamValue, tt.want)
			}
		})
	}
}

func TestGrahamValueAbsentWithoutPositiveEPS(t *testing.T) {
	record := &domain.FinancialFactRecord{Ticker: "TEST", BondYieldReference: 4.4}

	for _, avg5 := range []float64{0, -2} {
		estimate := Valuate(record, EPSHistory{Avg5: avg5})
		if estimate.GrahamValue != nil {
			t.Errorf("GrahamValue with Avg5=%v = %v, want absent", avg5, *estimate.GrahamValue)
		}
	}
}
