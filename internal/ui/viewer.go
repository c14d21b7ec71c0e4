package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const chromeHeight = 2 // header + footer lines around the viewport

type viewerModel struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
	width   int
}

// NewViewerModel returns a Bubble Tea model that pages through disassembled
// source text.
func NewViewerModel(title, content string) tea.Model {
	return &viewerModel{
		title:   title,
		content: content,
		width:   80,
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - chromeHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	footStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	header := titleStyle.Render(truncate(m.title, m.width))
	footer := footStyle.Render(fmt.Sprintf("%3.0f%%  q to quit", m.vp.ScrollPercent()*100))
	return header + "\n" + m.vp.View() + "\n" + footer
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
