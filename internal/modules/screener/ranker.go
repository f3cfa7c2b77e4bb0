package screener

import "sort"

// Rank orders screen results by passed count descending. Ties keep the order
// in which the tickers were first encountered, carried on each result as its
// input index so the ordering survives any upstream reshuffling.
func Rank(results []ScreenResult) RankedTable {
	table := make(RankedTable, len(results))
	copy(table, results)

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].PassedCount != table[j].PassedCount {
			return table[i].PassedCount > table[j].PassedCount
		}
		return table[i].InputIndex < table[j].InputIndex
	})

	return table
}
