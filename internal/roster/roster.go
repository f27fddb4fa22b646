// Package roster provides the insertion-ordered student score mapping.
package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// Roster maps student names to scores, preserving entry order.
type Roster struct {
	names  []string
	scores map[string]float64
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{scores: map[string]float64{}}
}

// Set records a score for a student. An existing name keeps its position.
func (r *Roster) Set(name string, score float64) {
	if _, ok := r.scores[name]; !ok {
		r.names = append(r.names, name)
	}
	r.scores[name] = score
}

// Score returns the score for a student.
func (r *Roster) Score(name string) (float64, bool) {
	score, ok := r.scores[name]
	return score, ok
}

// Names returns student names in entry order.
func (r *Roster) Names() []string {
	return append([]string(nil), r.names...)
}

// Scores returns scores in entry order.
func (r *Roster) Scores() []float64 {
	out := make([]float64, len(r.names))
	for i, name := range r.names {
		out[i] = r.scores[name]
	}
	return out
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.names)
}

// ParseError reports a value that could not be read as a number.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Value)
}

// ParseScore parses a numeric score from user or file input.
func ParseScore(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Value: s}
	}
	return v, nil
}

// ParseCount parses a non-negative student count.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, &ParseError{Value: s}
	}
	return n, nil
}

// FormatScore renders a score without trailing zeros, so whole-number
// scores round-trip through export and import unchanged.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
