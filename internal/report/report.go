package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kunalsingh-dev/gradebook/internal/grading"
	"github.com/kunalsingh-dev/gradebook/internal/roster"
	"github.com/kunalsingh-dev/gradebook/internal/stats"
)

// DefaultPlaces is the decimal precision used when none is configured.
const DefaultPlaces = 2

// RenderStats prints the statistics summary block.
func RenderStats(w io.Writer, s stats.Summary, places int) error {
	if places <= 0 {
		places = DefaultPlaces
	}
	if _, err := fmt.Fprintln(w, "Statistics Summary:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Average Marks : %.*f\n", places, s.Average); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Median Marks  : %.*f\n", places, s.Median); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Highest Score : %s\n", roster.FormatScore(s.Highest)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Lowest Score  : %s\n", roster.FormatScore(s.Lowest)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderDistribution prints counts for all five grades in fixed order.
func RenderDistribution(w io.Writer, dist map[grading.Grade]int) error {
	if _, err := fmt.Fprintln(w, "Grade Distribution:"); err != nil {
		return err
	}
	for _, g := range grading.Grades {
		if _, err := fmt.Fprintf(w, "  %s: %d student(s)\n", g, dist[g]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderPassFail prints the pass/fail partition as comma-joined lists.
func RenderPassFail(w io.Writer, passed, failed []string) error {
	if _, err := fmt.Fprintf(w, "Passed Students: %s\n", joinOrNone(passed)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Failed Students: %s\n", joinOrNone(failed)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Summary: %d passed, %d failed.\n", len(passed), len(failed)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderResults prints the final name/marks/grade table in entry order.
func RenderResults(w io.Writer, r *roster.Roster) error {
	if _, err := fmt.Fprintln(w, "Final Results:"); err != nil {
		return err
	}
	headers := []string{"Name", "Marks", "Grade"}
	rows := make([][]string, 0, r.Len())
	for _, name := range r.Names() {
		score, _ := r.Score(name)
		rows = append(rows, []string{
			name,
			roster.FormatScore(score),
			string(grading.GradeFor(score)),
		})
	}
	rightAlign := map[int]bool{1: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
