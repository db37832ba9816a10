package tui

import "github.com/charmbracelet/lipgloss"

// Severity classifies a notification for display purposes only. Notices are
// fire-and-forget; core logic never reads them back.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// Notice is a transient user-facing notification banner.
type Notice struct {
	Title       string
	Description string
	Severity    Severity
}

// Render returns the styled banner for the notice.
func (n Notice) Render() string {
	var style lipgloss.Style
	switch n.Severity {
	case SeverityError:
		style = ErrorStyle
	case SeverityWarn:
		style = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor)
	default:
		style = SuccessStyle
	}

	body := n.Title
	if n.Description != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(TextColor).Bold(false).Render(n.Description)
	}
	return style.Render(body)
}
