package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// TailMean calculates the arithmetic mean of the last n values.
// When the slice holds fewer than n values the whole slice is used.
func TailMean(data []float64, n int) float64 {
	if len(data) == 0 || n <= 0 {
		return 0
	}
	if n > len(data) {
		n = len(data)
	}
	return stat.Mean(data[len(data)-n:], nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Positive returns the entries strictly greater than zero, in order.
func Positive(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}
