package screener

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV serializes a ranked table as CSV, one row per result in rank
// order. Headers are the display columns plus the seven criteria names.
func WriteCSV(w io.Writer, table RankedTable) error {
	writer := csv.NewWriter(w)

	header := []string{"Ticker", "Price"}
	for _, criterion := range Criteria {
		header = append(header, string(criterion))
	}
	header = append(header, "Graham Number", "Graham Value", "Passed Count")

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range table {
		row := []string{result.Ticker, formatOptional(result.Record.Price)}
		for _, criterion := range Criteria {
			row = append(row, formatBool(result.Scorecard.Results[criterion]))
		}
		row = append(row,
			formatOptional(result.Valuation.GrahamNumber),
			formatOptional(result.Valuation.GrahamValue),
			strconv.Itoa(result.PassedCount),
		)

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", result.Ticker, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatBool(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
