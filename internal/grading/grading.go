// Package grading assigns letter grades and pass/fail partitions.
package grading

import "github.com/kunalsingh-dev/gradebook/internal/roster"

// Grade is a letter grade derived from a numeric score.
type Grade string

// Letter grades in display order.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists all letter grades in display order.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// PassMark is the inclusive passing threshold.
const PassMark = 40.0

// GradeFor maps a score to its letter grade. Thresholds are inclusive
// lower bounds: 90, 80, 70, 60.
func GradeFor(score float64) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// Distribution counts students per grade. All five grades are present in
// the result, with zero counts for unawarded grades.
func Distribution(r *roster.Roster) map[Grade]int {
	dist := make(map[Grade]int, len(Grades))
	for _, g := range Grades {
		dist[g] = 0
	}
	for _, score := range r.Scores() {
		dist[GradeFor(score)]++
	}
	return dist
}

// PassFail partitions student names by the passing threshold, both lists
// in roster entry order.
func PassFail(r *roster.Roster) (passed, failed []string) {
	for _, name := range r.Names() {
		score, _ := r.Score(name)
		if score >= PassMark {
			passed = append(passed, name)
		} else {
			failed = append(failed, name)
		}
	}
	return passed, failed
}
