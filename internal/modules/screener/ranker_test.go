package screener

import "testing"

func TestRankOrdersByPassedCountDescending(t *testing.T) {
	results := []ScreenResult{
		{Ticker: "LOW", InputIndex: 0, PassedCount: 1},
		{Ticker: "HIGH", InputIndex: 1, PassedCount: 6},
		{Ticker: "MID", InputIndex: 2, PassedCount: 3},
	}

	table := Rank(results)

	want := []string{"HIGH", "MID", "LOW"}
	for i, ticker := range want {
		if table[i].Ticker != ticker {
			t.Errorf("table[%d] = %s, want %s", i, table[i].Ticker, ticker)
		}
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	results := []ScreenResult{
		{Ticker: "A", InputIndex: 0, PassedCount: 3},
		{Ticker: "B", InputIndex: 1, PassedCount: 3},
		{Ticker: "C", InputIndex: 2, PassedCount: 5},
		{Ticker: "D", InputIndex: 3, PassedCount: 3},
	}

	table := Rank(results)

	want := []string{"C", "A", "B", "D"}
	for i, ticker := range want {
		if table[i].Ticker != ticker {
			t.Errorf("table[%d] = %s, want %s", i, table[i].Ticker, ticker)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	results := []ScreenResult{
		{Ticker: "A", InputIndex: 0, PassedCount: 1},
		{Ticker: "B", InputIndex: 1, PassedCount: 4},
	}

	Rank(results)

	if results[0].Ticker != "A" || results[1].Ticker != "B" {
		t.Errorf("input slice reordered: %v", results)
	}
}

func TestRankEmptyInput(t *testing.T) {
	table := Rank(nil)
	if len(table) != 0 {
		t.Errorf("len = %d, want 0", len(table))
	}
}
