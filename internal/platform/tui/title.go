package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runline/runline/internal/core"
)

// TitleModel is the Bubble Tea model for the title screen shown between
// sessions: logo, best score, and the controls footer.
type TitleModel struct {
	gameTitle string
	best      int
	width     int
	height    int
	keys      KeyMap
	help      help.Model
	config    core.RuntimeConfig
	starting  bool
	quitting  bool
}

// NewTitleModel creates a title screen for the given game title and best score.
func NewTitleModel(gameTitle string, best int, cfg core.RuntimeConfig) TitleModel {
	h := help.New()
	h.ShowAll = true

	return TitleModel{
		gameTitle: gameTitle,
		best:      best,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keys:      DefaultKeyMap(),
		help:      h,
		config:    cfg,
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Start):
			m.starting = true
			return m, tea.Quit // Intercepted by the session flow
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting || m.starting {
		return ""
	}

	var b strings.Builder

	logoStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))
	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
	bestStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("3"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString("\n\n")
	b.WriteString(logoStyle.Render(centerText("R U N L I N E", m.width)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(centerText(m.gameTitle, m.width)))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(bestStyle.Render(centerText(fmt.Sprintf("Best: %d", m.best), m.width)))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Press Enter or Space to run", m.width))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsStarting returns true if the user asked to start a session.
func (m TitleModel) IsStarting() bool {
	return m.starting
}

// IsQuitting returns true if the user requested to quit.
func (m TitleModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m TitleModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
