// Package tui provides a read-only interactive viewer for a rendered
// tree: a scrollable viewport with the root as title.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the viewer state: pre-rendered content inside a viewport.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewModel creates a viewer over pre-rendered tree content.
func NewModel(title, content string) Model {
	return Model{title: title, content: content}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. The viewport owns the scroll keys; the
// model only adds quit handling and window sizing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		chromeHeight := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m Model) headerView() string {
	return titleStyle().Render(m.title)
}

func (m Model) footerView() string {
	percent := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*percentScale)

	return footerStyle().Render("↑/↓ scroll · q quit · " + percent)
}

// Run displays the viewer until the user quits.
func Run(title, content string) error {
	program := tea.NewProgram(NewModel(title, content), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}

	return nil
}
