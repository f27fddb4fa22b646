// Package session implements the interactive menu state machine.
//
// The machine is a pure line-in/lines-out core: callers read the current
// Prompt, Submit one input line, and drain Output. The Bubble Tea layer
// in internal/tui wraps it for the terminal; tests drive it directly.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/kunalsingh-dev/gradebook/internal/export"
	"github.com/kunalsingh-dev/gradebook/internal/grading"
	"github.com/kunalsingh-dev/gradebook/internal/model"
	"github.com/kunalsingh-dev/gradebook/internal/report"
	"github.com/kunalsingh-dev/gradebook/internal/roster"
	"github.com/kunalsingh-dev/gradebook/internal/source"
	"github.com/kunalsingh-dev/gradebook/internal/stats"
)

// State identifies a point in the menu flow.
type State int

// Session states. Terminated is the sole terminal state.
const (
	MenuPrompt State = iota
	ManualCount
	ManualName
	ManualScore
	ImportFile
	ExportPrompt
	ExportPath
	RepeatPrompt
	Terminated
)

// Machine drives the menu loop over submitted input lines.
type Machine struct {
	state State
	opts  model.Options
	out   []string

	scores  *roster.Roster
	total   int
	index   int
	current string
}

// New returns a machine at the menu, with the banner queued in Output.
func New(opts model.Options) *Machine {
	m := &Machine{opts: opts, scores: roster.New()}
	m.emit("===================================================")
	m.emit("Welcome to GradeBook Analyzer")
	m.emitMenu()
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Done reports whether the session has terminated.
func (m *Machine) Done() bool {
	return m.state == Terminated
}

// Output returns and clears the lines emitted since the last call.
func (m *Machine) Output() []string {
	out := m.out
	m.out = nil
	return out
}

// Prompt returns the input prompt for the current state.
func (m *Machine) Prompt() string {
	switch m.state {
	case MenuPrompt:
		return "Enter your choice (1-3): "
	case ManualCount:
		return "Enter number of students: "
	case ManualName:
		return fmt.Sprintf("Enter name of student %d: ", m.index)
	case ManualScore:
		return fmt.Sprintf("Enter marks for %s: ", m.current)
	case ImportFile:
		return "Enter CSV filename (e.g., sample_marks.csv): "
	case ExportPrompt:
		return "Export results to CSV? (y/n): "
	case ExportPath:
		return fmt.Sprintf("Export filename (default %s): ", m.exportDefault())
	case RepeatPrompt:
		return "Run another analysis? (y/n): "
	default:
		return ""
	}
}

// Submit feeds one input line to the machine and advances its state.
func (m *Machine) Submit(line string) {
	line = strings.TrimSpace(line)
	switch m.state {
	case MenuPrompt:
		m.submitMenu(line)
	case ManualCount:
		m.submitCount(line)
	case ManualName:
		m.current = line
		m.state = ManualScore
	case ManualScore:
		m.submitScore(line)
	case ImportFile:
		m.submitImport(line)
	case ExportPrompt:
		if strings.EqualFold(line, "y") {
			m.state = ExportPath
		} else {
			m.state = RepeatPrompt
		}
	case ExportPath:
		m.submitExport(line)
	case RepeatPrompt:
		if strings.EqualFold(line, "y") {
			m.scores = roster.New()
			m.emitMenu()
			m.state = MenuPrompt
		} else {
			m.emit("Thanks for using GradeBook Analyzer!")
			m.state = Terminated
		}
	case Terminated:
		// Ignore input after termination.
	}
}

func (m *Machine) submitMenu(line string) {
	switch line {
	case "1":
		m.scores = roster.New()
		m.state = ManualCount
	case "2":
		m.scores = roster.New()
		m.state = ImportFile
	case "3":
		m.emit("Exiting GradeBook Analyzer. Have a great day!")
		m.state = Terminated
	default:
		m.emit("Invalid choice. Please try again.")
		m.emitMenu()
	}
}

func (m *Machine) submitCount(line string) {
	count, err := roster.ParseCount(line)
	if err != nil {
		m.emit("Invalid input. Please enter numbers correctly.")
		m.backToMenu()
		return
	}
	if count == 0 {
		m.emit("No data available to analyze.")
		m.backToMenu()
		return
	}
	m.total = count
	m.index = 1
	m.state = ManualName
}

func (m *Machine) submitScore(line string) {
	score, err := roster.ParseScore(line)
	if err != nil {
		// A bad score aborts the whole batch; partial entries are discarded.
		m.emit("Invalid input. Please enter numbers correctly.")
		m.scores = roster.New()
		m.backToMenu()
		return
	}
	m.scores.Set(m.current, score)
	if m.index >= m.total {
		m.analyze()
		return
	}
	m.index++
	m.state = ManualName
}

func (m *Machine) submitImport(line string) {
	loaded, err := source.ReadCSV(line)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.emit("File not found. Please check your filename.")
		} else {
			m.emit(fmt.Sprintf("Error reading CSV: %v", err))
		}
		m.backToMenu()
		return
	}
	if loaded.Len() == 0 {
		m.emit("No data available to analyze.")
		m.backToMenu()
		return
	}
	m.scores = loaded
	m.emit("CSV data loaded successfully.")
	m.analyze()
}

func (m *Machine) submitExport(line string) {
	path := line
	if path == "" {
		path = m.exportDefault()
	}
	written, err := export.WriteCSV(path, m.scores)
	if err != nil {
		m.emit(fmt.Sprintf("Export failed: %v", err))
	} else {
		m.emit(fmt.Sprintf("Results exported successfully to %s.", written))
	}
	m.state = RepeatPrompt
}

// analyze runs statistics, grading, the pass/fail filter, and the results
// table, then moves to the export prompt. Callers guarantee a non-empty
// roster.
func (m *Machine) analyze() {
	var buf bytes.Buffer
	if err := report.RenderStats(&buf, stats.Summarize(m.scores.Scores()), m.opts.Places); err != nil {
		m.emit(fmt.Sprintf("Failed to render report: %v", err))
	}
	if err := report.RenderDistribution(&buf, grading.Distribution(m.scores)); err != nil {
		m.emit(fmt.Sprintf("Failed to render report: %v", err))
	}
	passed, failed := grading.PassFail(m.scores)
	if err := report.RenderPassFail(&buf, passed, failed); err != nil {
		m.emit(fmt.Sprintf("Failed to render report: %v", err))
	}
	if err := report.RenderResults(&buf, m.scores); err != nil {
		m.emit(fmt.Sprintf("Failed to render report: %v", err))
	}
	m.emitBlock(buf.String())
	m.state = ExportPrompt
}

func (m *Machine) backToMenu() {
	m.emitMenu()
	m.state = MenuPrompt
}

func (m *Machine) exportDefault() string {
	if m.opts.ExportFile != "" {
		return m.opts.ExportFile
	}
	return export.DefaultFilename
}

func (m *Machine) emitMenu() {
	m.emit("===================================================")
	m.emit("Choose an option:")
	m.emit("  1. Enter student marks manually")
	m.emit("  2. Import marks from a CSV file")
	m.emit("  3. Exit program")
	m.emit("===================================================")
}

func (m *Machine) emit(line string) {
	m.out = append(m.out, line)
}

func (m *Machine) emitBlock(block string) {
	block = strings.TrimRight(block, "\n")
	for _, line := range strings.Split(block, "\n") {
		m.emit(line)
	}
}
