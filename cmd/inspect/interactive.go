package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxTUIValues caps the decoded values shown per screen.
const maxTUIValues = 24

type inspectModel struct {
	loadErr     error
	err         error
	filename    string
	data        []byte
	values      []string
	typeIdx     int
	policyIdx   int
	offset      int
	offsetInput textinput.Model
	state       modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateEditOffset
)

func newInspectModel(filename string) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "byte offset"
	ti.Prompt = "goto: "
	ti.Width = 20

	// u32 is the default target, matching the plain mode flag default.
	return &inspectModel{
		filename:    filename,
		typeIdx:     2,
		offsetInput: ti,
		state:       stateBrowse,
	}
}

type loadedMsg struct {
	err  error
	data []byte
}

func (m *inspectModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *inspectModel) loadFile() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{data: data}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateEditOffset {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit

			case "enter":
				if v, err := strconv.Atoi(strings.TrimSpace(m.offsetInput.Value())); err == nil {
					m.setOffset(v)
				}
				m.state = stateBrowse
				m.offsetInput.Blur()

			case "esc":
				m.state = stateBrowse
				m.offsetInput.Blur()

			default:
				var cmd tea.Cmd
				m.offsetInput, cmd = m.offsetInput.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "t":
			m.typeIdx = (m.typeIdx + 1) % len(targetNames)
			m.decode()

		case "T":
			m.typeIdx = (m.typeIdx + len(targetNames) - 1) % len(targetNames)
			m.decode()

		case "p":
			m.policyIdx = (m.policyIdx + 1) % len(policyNames)
			m.decode()

		case "P":
			m.policyIdx = (m.policyIdx + len(policyNames) - 1) % len(policyNames)
			m.decode()

		case "right", "l":
			m.setOffset(m.offset + 1)

		case "left", "h":
			m.setOffset(m.offset - 1)

		case "down", "j":
			m.setOffset(m.offset + 16)

		case "up", "k":
			m.setOffset(m.offset - 16)

		case "g":
			m.state = stateEditOffset
			m.offsetInput.SetValue(strconv.Itoa(m.offset))
			m.offsetInput.Focus()
			return m, textinput.Blink
		}

	case loadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.data = msg.data
		m.decode()
	}

	return m, nil
}

func (m *inspectModel) setOffset(off int) {
	if off < 0 {
		off = 0
	}
	if off > len(m.data) {
		off = len(m.data)
	}
	m.offset = off
	m.decode()
}

func (m *inspectModel) decode() {
	dec := targets[targetNames[m.typeIdx]]
	policy := policies[policyNames[m.policyIdx]]
	m.values, m.err = dec.decode(m.data[m.offset:], policy)
}

func (m *inspectModel) View() string {
	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.loadErr))
	}
	if m.data == nil {
		return "Loading file..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Transmute Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %d / %d\n\n",
		labelStyle.Render("type:"), typeStyle.Render(targetNames[m.typeIdx]),
		labelStyle.Render("policy:"), typeStyle.Render(policyNames[m.policyIdx]),
		labelStyle.Render("offset:"), m.offset, len(m.data)))

	if m.state == stateEditOffset {
		b.WriteString(m.offsetInput.View())
		b.WriteString("\n\n")
	}

	for _, row := range hexRows(m.data[m.offset:], m.offset, 8) {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		if hint := recoveryHint(m.err, m.offset); hint != "" {
			b.WriteString(helpStyle.Render("Hint: " + hint))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Values (%d):", len(m.values))))
		b.WriteString("\n")
		shown := m.values
		if len(shown) > maxTUIValues {
			shown = shown[:maxTUIValues]
		}
		for i, v := range shown {
			b.WriteString(fmt.Sprintf("  [%d] %s\n", i, resultStyle.Render(v)))
		}
		if len(m.values) > len(shown) {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  ... and %d more", len(m.values)-len(shown))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("t/p cycle type/policy • ←/→ offset ±1 • ↑/↓ offset ±16 • g goto • q quit"))

	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInspectModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
