// Package export writes the results table to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kunalsingh-dev/gradebook/internal/grading"
	"github.com/kunalsingh-dev/gradebook/internal/roster"
)

// DefaultFilename is used when no export path is given.
const DefaultFilename = "final_results.csv"

// WriteCSV writes a Name,Marks,Grade table in roster entry order,
// replacing any existing file at path. An empty path selects
// DefaultFilename in the working directory. Returns the written path.
func WriteCSV(path string, r *roster.Roster) (string, error) {
	if path == "" {
		path = DefaultFilename
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "results-*.csv")
	if err != nil {
		return "", fmt.Errorf("failed to create temp results file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := csv.NewWriter(tmpFile)
	if err := writer.Write([]string{"Name", "Marks", "Grade"}); err != nil {
		return "", fmt.Errorf("failed to write results header: %w", err)
	}
	for _, name := range r.Names() {
		score, _ := r.Score(name)
		row := []string{name, roster.FormatScore(score), string(grading.GradeFor(score))}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write results row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush results: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close results file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}
	return path, nil
}
