package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loadingTickMsg drives the elapsed-time display.
type loadingTickMsg time.Time

// LoadingModel is the generation wait screen.
type LoadingModel struct {
	Spinner     spinner.Model
	ProgressBar progress.Model
	StartedAt   time.Time

	// Regenerate distinguishes the wait headline
	Regenerate bool

	Width  int
	Height int
}

// NewLoadingModel creates the wait screen.
func NewLoadingModel(regenerate bool) LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return LoadingModel{
		Spinner:     s,
		ProgressBar: bar,
		StartedAt:   time.Now(),
		Regenerate:  regenerate,
	}
}

// Init starts the spinner and the elapsed ticker
func (m LoadingModel) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadingTick())
}

func loadingTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return loadingTickMsg(t)
	})
}

// Update handles messages on the wait screen
func (m LoadingModel) Update(msg tea.Msg) (LoadingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case loadingTickMsg:
		return m, loadingTick()
	}

	return m, nil
}

// View renders the wait screen
func (m LoadingModel) View() string {
	content := m.buildContent()
	helpText := "the itinerary service can take up to a minute"
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// buildContent builds the wait screen content
func (m LoadingModel) buildContent() string {
	headline := "Generating your itinerary"
	if m.Regenerate {
		headline = "Regenerating your itinerary"
	}

	title := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Render(fmt.Sprintf("%s %s...", m.Spinner.View(), headline))

	elapsed := time.Since(m.StartedAt).Round(time.Second)

	// Indeterminate request; the bar just conveys motion, capped short of full
	ratio := float64(elapsed) / float64(60*time.Second)
	if ratio > 0.95 {
		ratio = 0.95
	}

	bar := m.ProgressBar.ViewAs(ratio)
	elapsedLine := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(fmt.Sprintf("Elapsed: %s", elapsed))

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		title,
		"",
		bar,
		"",
		elapsedLine,
	)
}
