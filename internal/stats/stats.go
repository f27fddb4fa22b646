// Package stats contains descriptive statistics over score collections.
package stats

import "sort"

// Summary bundles the four descriptive statistics for a score set.
type Summary struct {
	Average float64
	Median  float64
	Highest float64
	Lowest  float64
}

// Average computes the arithmetic mean. Empty input yields 0.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median computes the statistical median, averaging the two middle
// values for even counts. Empty input yields 0.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Highest returns the maximum value. Empty input yields 0.
func Highest(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Lowest returns the minimum value. Empty input yields 0.
func Lowest(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Summarize computes all four statistics in one pass over the input.
func Summarize(values []float64) Summary {
	return Summary{
		Average: Average(values),
		Median:  Median(values),
		Highest: Highest(values),
		Lowest:  Lowest(values),
	}
}
