package stats

import "testing"

func TestEmptyInputReturnsZero(t *testing.T) {
	if got := Average(nil); got != 0 {
		t.Fatalf("Average of empty input = %v, want 0", got)
	}
	if got := Median(nil); got != 0 {
		t.Fatalf("Median of empty input = %v, want 0", got)
	}
	if got := Highest(nil); got != 0 {
		t.Fatalf("Highest of empty input = %v, want 0", got)
	}
	if got := Lowest(nil); got != 0 {
		t.Fatalf("Lowest of empty input = %v, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{95, 35})
	if s.Average != 65 {
		t.Fatalf("Average = %v, want 65", s.Average)
	}
	if s.Median != 65 {
		t.Fatalf("Median = %v, want 65", s.Median)
	}
	if s.Highest != 95 {
		t.Fatalf("Highest = %v, want 95", s.Highest)
	}
	if s.Lowest != 35 {
		t.Fatalf("Lowest = %v, want 35", s.Lowest)
	}
}

func TestMedianOddCount(t *testing.T) {
	if got := Median([]float64{70, 10, 50}); got != 50 {
		t.Fatalf("Median = %v, want 50", got)
	}
}

func TestMedianEvenCountAveragesMiddleValues(t *testing.T) {
	if got := Median([]float64{10, 20, 30, 100}); got != 25 {
		t.Fatalf("Median = %v, want 25", got)
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []float64{90, 10, 50}
	Median(values)
	if values[0] != 90 || values[1] != 10 || values[2] != 50 {
		t.Fatalf("input reordered: %v", values)
	}
}

func TestAverageBetweenExtremes(t *testing.T) {
	cases := [][]float64{
		{42},
		{0, 100},
		{33.5, 64.25, 91, 12},
		{59.99, 60, 60.01},
	}
	for _, values := range cases {
		avg := Average(values)
		if avg < Lowest(values) || avg > Highest(values) {
			t.Fatalf("Average(%v) = %v outside [%v, %v]", values, avg, Lowest(values), Highest(values))
		}
	}
}
