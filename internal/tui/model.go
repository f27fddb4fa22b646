// Package tui provides the Bubble Tea session interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kunalsingh-dev/gradebook/internal/session"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
)

var warnPrefixes = []string{
	"Invalid",
	"No data",
	"File not found",
	"Error reading",
	"Export failed",
}

// Model implements the Bubble Tea session UI.
type Model struct {
	machine    *session.Machine
	input      textinput.Model
	transcript []string
	vp         viewport.Model
	width      int
	height     int
	ready      bool
}

// NewModel constructs a session UI model around a machine.
func NewModel(machine *session.Machine) *Model {
	input := textinput.New()
	input.Prompt = machine.Prompt()
	input.CharLimit = 0
	input.Focus()
	m := &Model{machine: machine, input: input}
	m.drain()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 2
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = vpHeight
		}
		promptWidth := lipgloss.Width(m.input.Prompt)
		m.input.Width = maxInt(10, m.width-promptWidth-2)
		m.syncViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitLine()
			if m.machine.Done() {
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.machine.Done() {
		return strings.Join(m.transcript, "\n") + "\n"
	}
	if !m.ready {
		return strings.Join(m.transcript, "\n") + "\n" + m.input.View()
	}
	return m.vp.View() + "\n" + m.input.View()
}

// Transcript returns the emitted lines so far.
func (m *Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

func (m *Model) submitLine() {
	line := m.input.Value()
	m.transcript = append(m.transcript, echoStyle.Render(m.machine.Prompt()+line))
	m.machine.Submit(line)
	m.drain()
	m.input.SetValue("")
	m.input.Prompt = m.machine.Prompt()
	m.syncViewport()
}

func (m *Model) drain() {
	for _, line := range m.machine.Output() {
		m.transcript = append(m.transcript, styleLine(line))
	}
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(strings.Join(m.transcript, "\n"))
	m.vp.GotoBottom()
}

func styleLine(line string) string {
	for _, prefix := range warnPrefixes {
		if strings.HasPrefix(line, prefix) {
			return warnStyle.Render(line)
		}
	}
	if strings.HasPrefix(line, "===") {
		return bannerStyle.Render(line)
	}
	return textStyle.Render(line)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
