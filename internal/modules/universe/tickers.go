package universe

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"
)

// ErrNoTickers is returned when parsing produces an empty ticker list.
var ErrNoTickers = errors.New("no tickers supplied")

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.\-^]{1,12}$`)

// ParseTickers turns free text (commas, whitespace or newlines between
// symbols) into an uppercased, deduplicated list that preserves first-seen
// order. Entries that do not look like ticker symbols are skipped.
func ParseTickers(input string) ([]string, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	seen := make(map[string]bool, len(fields))
	tickers := make([]string, 0, len(fields))
	for _, f := range fields {
		symbol := strings.ToUpper(strings.TrimSpace(f))
		if symbol == "" || seen[symbol] {
			continue
		}
		if !tickerPattern.MatchString(symbol) {
			continue
		}
		seen[symbol] = true
		tickers = append(tickers, symbol)
	}

	if len(tickers) == 0 {
		return nil, ErrNoTickers
	}
	return tickers, nil
}

// ParseTickersCSV reads ticker symbols from an uploaded CSV, taking the first
// column of every row. A header row named "ticker" or "symbol" is skipped.
func ParseTickersCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var b strings.Builder
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		cell := strings.ToUpper(strings.TrimSpace(row[0]))
		if cell == "TICKER" || cell == "SYMBOL" {
			continue
		}
		b.WriteString(cell)
		b.WriteString("\n")
	}

	return ParseTickers(b.String())
}
