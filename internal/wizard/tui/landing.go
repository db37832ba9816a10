package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// startPlanningMsg is emitted when the user leaves the landing screen.
type startPlanningMsg struct{}

// landingKeyMap defines key bindings for the landing screen
type landingKeyMap struct {
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k landingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k landingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Quit},
	}
}

// LandingModel is the entry screen.
type LandingModel struct {
	Width  int
	Height int

	Help help.Model
	Keys landingKeyMap
}

// NewLandingModel creates the landing screen.
func NewLandingModel() LandingModel {
	return LandingModel{
		Help: help.New(),
		Keys: landingKeyMap{
			Start: key.NewBinding(
				key.WithKeys("enter", "s"),
				key.WithHelp("enter/s", "start planning"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Init initializes the landing screen
func (m LandingModel) Init() tea.Cmd {
	return nil
}

// Update handles messages on the landing screen
func (m LandingModel) Update(msg tea.Msg) (LandingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Start):
			return m, func() tea.Msg { return startPlanningMsg{} }
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the landing screen
func (m LandingModel) View() string {
	content := m.buildContent()
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// buildContent builds the landing screen content
func (m LandingModel) buildContent() string {
	title := RenderTitle("✈ Plan your next trip")
	subtitle := RenderSubtitle("Tell us where you want to go and we'll draft a day-by-day itinerary.")

	items := lipgloss.JoinVertical(lipgloss.Left,
		RenderMenuItem("Start planning", true),
		MenuItemStyle.Render("  Quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		items,
	)
}
