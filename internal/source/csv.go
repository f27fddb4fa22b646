// Package source loads score rosters from CSV files.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kunalsingh-dev/gradebook/internal/roster"
)

const (
	nameColumn  = "Name"
	marksColumn = "Marks"
)

// ReadCSV loads a roster from a CSV file with Name and Marks columns.
// Columns beyond the two required ones are ignored; row order is kept.
func ReadCSV(path string) (*roster.Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only import.
			_ = cerr
		}
	}()
	out, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return out, nil
}

func parse(r io.Reader) (*roster.Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	nameIdx, marksIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case nameColumn:
			if nameIdx == -1 {
				nameIdx = i
			}
		case marksColumn:
			if marksIdx == -1 {
				marksIdx = i
			}
		}
	}
	if nameIdx == -1 || marksIdx == -1 {
		return nil, fmt.Errorf("header must contain %q and %q columns", nameColumn, marksColumn)
	}

	out := roster.New()
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		if nameIdx >= len(record) || marksIdx >= len(record) {
			return nil, fmt.Errorf("row %d has too few columns", row)
		}
		score, err := roster.ParseScore(record[marksIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		out.Set(strings.TrimSpace(record[nameIdx]), score)
	}
	return out, nil
}
