package screener

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	strong := EvaluateRecord(strongRecord("AAA"), VariantConservative)
	weak := EvaluateRecord(weakRecord("BBB"), VariantConservative)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, RankedTable{strong, weak}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	require.Len(t, header, 12) // Ticker, Price, 7 criteria, 2 estimates, Passed Count
	assert.Equal(t, "Ticker", header[0])
	assert.Equal(t, "Price", header[1])
	for i, criterion := range Criteria {
		assert.Equal(t, string(criterion), header[2+i])
	}
	assert.Equal(t, "Graham Number", header[9])
	assert.Equal(t, "Graham Value", header[10])
	assert.Equal(t, "Passed Count", header[11])

	assert.Equal(t, "AAA", rows[1][0])
	assert.Equal(t, "30.00", rows[1][1])
	assert.Equal(t, "7", rows[1][11])

	assert.Equal(t, "BBB", rows[2][0])
	assert.Equal(t, "N/A", rows[2][1], "missing price renders as N/A")
	assert.Equal(t, "N/A", rows[2][9], "absent Graham Number renders as N/A")
	assert.Equal(t, "0", rows[2][11])
}

func TestWriteCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, RankedTable{}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
