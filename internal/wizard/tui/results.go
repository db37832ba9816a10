package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaversecode/AI-Trip-Planner/internal/itinerary"
)

// Messages emitted by the results screen toward the app model.
type regenerateRequestMsg struct{}
type exportRequestMsg struct{}
type editRequestMsg struct{}

// resultsKeyMap defines key bindings for the results screen
type resultsKeyMap struct {
	Scroll     key.Binding
	Regenerate key.Binding
	Export     key.Binding
	Edit       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k resultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Regenerate, k.Export, k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k resultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Regenerate},
		{k.Export, k.Edit, k.Quit},
	}
}

// ResultsModel is the itinerary presentation screen.
type ResultsModel struct {
	Result   itinerary.Result
	Viewport viewport.Model

	Width  int
	Height int

	Help help.Model
	Keys resultsKeyMap
}

// NewResultsModel creates the results screen around a generated itinerary.
func NewResultsModel(result itinerary.Result, width, height int) ResultsModel {
	vp := viewport.New(contentWidth(width), contentHeight(height))
	vp.SetContent(result.Itinerary)

	return ResultsModel{
		Result:   result,
		Viewport: vp,
		Width:    width,
		Height:   height,
		Help:     help.New(),
		Keys: resultsKeyMap{
			Scroll: key.NewBinding(
				key.WithKeys("up", "down", "pgup", "pgdown"),
				key.WithHelp("↑/↓", "scroll"),
			),
			Regenerate: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "regenerate"),
			),
			Export: key.NewBinding(
				key.WithKeys("x"),
				key.WithHelp("x", "export"),
			),
			Edit: key.NewBinding(
				key.WithKeys("e"),
				key.WithHelp("e", "edit preferences"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

func contentWidth(terminalWidth int) int {
	w := terminalWidth - 6
	if w < 20 {
		w = 20
	}
	return w
}

func contentHeight(terminalHeight int) int {
	h := terminalHeight - 12
	if h < 5 {
		h = 5
	}
	return h
}

// Init initializes the results screen
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages on the results screen
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Viewport.Width = contentWidth(msg.Width)
		m.Viewport.Height = contentHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Regenerate):
			return m, func() tea.Msg { return regenerateRequestMsg{} }

		case key.Matches(msg, m.Keys.Export):
			return m, func() tea.Msg { return exportRequestMsg{} }

		case key.Matches(msg, m.Keys.Edit):
			return m, func() tea.Msg { return editRequestMsg{} }

		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View renders the results screen
func (m ResultsModel) View() string {
	content := m.buildContent()
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// buildContent builds the results screen content
func (m ResultsModel) buildContent() string {
	title := RenderTitle("Your Itinerary")

	summary := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(m.Result.Preferences.Summary())

	generated := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(fmt.Sprintf("Generated %s", m.Result.GeneratedAt.Format("2006-01-02 15:04")))

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1).
		Render(m.Viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		generated,
		"",
		body,
	)
}
