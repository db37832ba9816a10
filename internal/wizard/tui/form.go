package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
	"github.com/metaversecode/AI-Trip-Planner/internal/wizard/field"
)

// submitRequestMsg asks the app model to validate and submit the preferences.
type submitRequestMsg struct {
	prefs trip.Preferences
}

// formField identifies the focusable rows of the planning form.
type formField int

const (
	fieldDestinations formField = iota
	fieldStartDate
	fieldEndDate
	fieldBudget
	fieldCurrency
	fieldStyle
	fieldInterests
	fieldMode
	fieldSubmit
	fieldCount
)

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle},
		{k.Submit, k.Back, k.Quit},
	}
}

// FormModel is the preferences form screen. It composes the draft widgets from
// the field package with textinput-backed rendering; committed values flow
// into Prefs, which the app model treats as authoritative after every update.
type FormModel struct {
	Prefs trip.Preferences

	// Destination entry
	DestInput  textinput.Model
	DestEditor field.DestinationEditor

	// Commit-on-blur fields
	StartInput  textinput.Model
	EndInput    textinput.Model
	BudgetInput textinput.Model
	StartField  field.DateField
	EndField    field.DateField
	BudgetField field.BudgetField

	// Selector state
	InterestCursor int

	// Navigation
	Cursor formField

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the form seeded from the given preferences.
func NewFormModel(prefs trip.Preferences) FormModel {
	destInput := textinput.New()
	destInput.Placeholder = "Goa, Jaipur, ..."
	destInput.CharLimit = 120
	destInput.Width = 40

	startInput := textinput.New()
	startInput.Placeholder = "YYYY-MM-DD"
	startInput.CharLimit = 10
	startInput.Width = 40
	startInput.SetValue(prefs.StartDate)

	endInput := textinput.New()
	endInput.Placeholder = "YYYY-MM-DD"
	endInput.CharLimit = 10
	endInput.Width = 40
	endInput.SetValue(prefs.EndDate)

	budgetInput := textinput.New()
	budgetInput.Placeholder = "50000"
	budgetInput.CharLimit = 12
	budgetInput.Width = 40
	budgetInput.SetValue(prefs.Budget)
	budgetInput.Validate = digitsOnly

	m := FormModel{
		Prefs:       prefs,
		DestInput:   destInput,
		DestEditor:  field.NewDestinationEditor(prefs.Destinations),
		StartInput:  startInput,
		EndInput:    endInput,
		BudgetInput: budgetInput,
		StartField:  field.NewDateField(prefs.StartDate),
		EndField:    field.NewDateField(prefs.EndDate),
		BudgetField: field.NewBudgetField(prefs.Budget),
		Cursor:      fieldDestinations,
		Help:        help.New(),
		Keys: formKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "down"),
				key.WithHelp("tab/↓", "next field"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab", "up"),
				key.WithHelp("shift+tab/↑", "previous field"),
			),
			Toggle: key.NewBinding(
				key.WithKeys("left", "right", " "),
				key.WithHelp("←/→/space", "change"),
			),
			Submit: key.NewBinding(
				key.WithKeys("ctrl+s"),
				key.WithHelp("ctrl+s", "plan trip"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
	}

	m.setFocus(fieldDestinations)

	// The start date can't be earlier than today; surfaced as a hint only,
	// the validator enforces the actual bound
	m.StartField.Min = time.Now().Format(trip.DateLayout)

	return m
}

// digitsOnly keeps the budget input numeric.
func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return errors.New("digits only")
		}
	}
	return nil
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Submit):
			m.commitFocused()
			return m, m.submitCmd()

		case key.Matches(msg, m.Keys.Next):
			m.moveCursor(1)
			return m, textinput.Blink

		case key.Matches(msg, m.Keys.Prev):
			m.moveCursor(-1)
			return m, textinput.Blink
		}

		return m.handleFieldKey(msg)
	}

	return m.updateFocusedInput(msg)
}

// moveCursor shifts focus by delta, wrapping at both ends. The field losing
// focus commits its draft.
func (m *FormModel) moveCursor(delta int) {
	m.blurFocused()
	next := (int(m.Cursor) + delta + int(fieldCount)) % int(fieldCount)
	m.setFocus(formField(next))
}

// setFocus focuses the given field and resyncs its draft from the
// authoritative preferences.
func (m *FormModel) setFocus(f formField) {
	m.Cursor = f

	m.DestInput.Blur()
	m.StartInput.Blur()
	m.EndInput.Blur()
	m.BudgetInput.Blur()

	switch f {
	case fieldDestinations:
		m.DestEditor.SetDestinations(m.Prefs.Destinations)
		m.DestInput.SetValue(m.DestEditor.Buffer())
		m.DestInput.Focus()

	case fieldStartDate:
		m.StartField.Sync(m.Prefs.StartDate)
		m.StartField.Focus()
		m.StartInput.SetValue(m.StartField.Buffer())
		m.StartInput.Focus()

	case fieldEndDate:
		m.EndField.Sync(m.Prefs.EndDate)
		m.EndField.Focus()
		m.EndInput.SetValue(m.EndField.Buffer())
		m.EndInput.Focus()

	case fieldBudget:
		m.BudgetField.Sync(m.Prefs.Budget)
		m.BudgetField.Focus()
		m.BudgetInput.SetValue(m.BudgetField.Buffer())
		m.BudgetInput.Focus()
	}
}

// blurFocused commits the draft of the field losing focus into Prefs.
func (m *FormModel) blurFocused() {
	switch m.Cursor {
	case fieldStartDate:
		m.StartField.SetBuffer(m.StartInput.Value())
		m.Prefs.StartDate = m.StartField.Blur()

	case fieldEndDate:
		m.EndField.SetBuffer(m.EndInput.Value())
		m.Prefs.EndDate = m.EndField.Blur()

	case fieldBudget:
		m.BudgetField.SetBuffer(m.BudgetInput.Value())
		m.Prefs.Budget = m.BudgetField.Blur()
	}
}

// commitFocused commits the focused draft without moving the cursor, so a
// submit sees current values.
func (m *FormModel) commitFocused() {
	m.blurFocused()
	m.setFocus(m.Cursor)
}

// handleFieldKey routes a keystroke to the focused field.
func (m FormModel) handleFieldKey(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch m.Cursor {
	case fieldDestinations:
		return m.handleDestinationKey(msg)

	case fieldBudget:
		if msg.String() == "enter" {
			// Early commit: enter confirms and moves on
			m.BudgetField.SetBuffer(m.BudgetInput.Value())
			m.Prefs.Budget = m.BudgetField.Confirm()
			m.moveCursor(1)
			return m, textinput.Blink
		}

	case fieldCurrency:
		if idx, ok := cycleKey(msg); ok {
			m.Prefs.Currency = cycleEnum(trip.Currencies(), m.Prefs.Currency, idx)
			return m, nil
		}

	case fieldStyle:
		if idx, ok := cycleKey(msg); ok {
			m.Prefs.Style = cycleEnum(trip.Styles(), m.Prefs.Style, idx)
			return m, nil
		}

	case fieldMode:
		if idx, ok := cycleKey(msg); ok {
			m.Prefs.Mode = cycleEnum(trip.Modes(), m.Prefs.Mode, idx)
			return m, nil
		}

	case fieldInterests:
		switch msg.String() {
		case "left", "h":
			if m.InterestCursor > 0 {
				m.InterestCursor--
			}
			return m, nil
		case "right", "l":
			if m.InterestCursor < len(trip.InterestCatalog)-1 {
				m.InterestCursor++
			}
			return m, nil
		case " ", "enter":
			m.Prefs.ToggleInterest(trip.InterestCatalog[m.InterestCursor])
			return m, nil
		}

	case fieldSubmit:
		if msg.String() == "enter" || msg.String() == " " {
			return m, m.submitCmd()
		}
	}

	return m.updateFocusedInput(msg)
}

// handleDestinationKey implements the tokenizing entry semantics on top of the
// destination editor.
func (m FormModel) handleDestinationKey(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	// Bulk paste goes straight to the editor, which decides whether the
	// pasted text commits immediately
	if msg.Paste {
		m.DestEditor.SetBuffer(m.DestInput.Value())
		m.DestEditor.Paste(string(msg.Runes))
		m.syncDestinations()
		return m, nil
	}

	switch msg.String() {
	case "enter":
		m.DestEditor.SetBuffer(m.DestInput.Value())
		m.DestEditor.Confirm()
		m.syncDestinations()
		return m, nil

	case trip.Delimiter:
		m.DestEditor.SetBuffer(m.DestInput.Value())
		m.DestEditor.TypeDelimiter()
		m.syncDestinations()
		return m, nil

	case "backspace":
		if m.DestInput.Value() == "" {
			m.DestEditor.Backspace()
			m.syncDestinations()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.DestInput, cmd = m.DestInput.Update(msg)
	m.DestEditor.SetBuffer(m.DestInput.Value())
	return m, cmd
}

// syncDestinations mirrors the editor state back into the input and Prefs.
func (m *FormModel) syncDestinations() {
	m.DestInput.SetValue(m.DestEditor.Buffer())
	m.DestInput.CursorEnd()
	m.Prefs.Destinations = m.DestEditor.Destinations()
}

// updateFocusedInput forwards a message to whichever textinput is focused.
func (m FormModel) updateFocusedInput(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd

	switch m.Cursor {
	case fieldDestinations:
		m.DestInput, cmd = m.DestInput.Update(msg)
		m.DestEditor.SetBuffer(m.DestInput.Value())
	case fieldStartDate:
		m.StartInput, cmd = m.StartInput.Update(msg)
	case fieldEndDate:
		m.EndInput, cmd = m.EndInput.Update(msg)
	case fieldBudget:
		m.BudgetInput, cmd = m.BudgetInput.Update(msg)
	}

	return m, cmd
}

// submitCmd emits the submit request with the current preferences.
func (m FormModel) submitCmd() tea.Cmd {
	prefs := m.Prefs
	return func() tea.Msg {
		return submitRequestMsg{prefs: prefs}
	}
}

// cycleKey maps a keystroke to a selector direction.
func cycleKey(msg tea.KeyMsg) (int, bool) {
	switch msg.String() {
	case "left", "h":
		return -1, true
	case "right", "l", " ", "enter":
		return 1, true
	}
	return 0, false
}

// cycleEnum steps through options from current by delta. An unset value steps
// to the first option.
func cycleEnum[T ~string](options []T, current T, delta int) T {
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+delta+len(options))%len(options)]
		}
	}
	return options[0]
}

// View renders the form
func (m FormModel) View() string {
	content := m.buildContent()
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// buildContent builds the form screen content
func (m FormModel) buildContent() string {
	var rows []string

	rows = append(rows, RenderTitle("Plan Your Trip"))

	rows = append(rows, m.renderDestinationRow())
	rows = append(rows, m.renderInputRow("Start Date", m.StartInput, fieldStartDate))
	rows = append(rows, m.renderInputRow("End Date", m.EndInput, fieldEndDate))
	rows = append(rows, m.renderInputRow("Budget", m.BudgetInput, fieldBudget))
	rows = append(rows, m.renderSelectorRow("Currency", string(m.Prefs.Currency), fieldCurrency))
	rows = append(rows, m.renderSelectorRow("Travel Style", string(m.Prefs.Style), fieldStyle))
	rows = append(rows, m.renderInterestsRow())
	rows = append(rows, m.renderSelectorRow("Mode of Travel", string(m.Prefs.Mode), fieldMode))
	rows = append(rows, "", m.renderSubmitButton())

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDestinationRow renders the chip list plus the entry input.
func (m FormModel) renderDestinationRow() string {
	var chips []string
	for _, dest := range m.Prefs.Destinations {
		chips = append(chips, ChipStyle.Render(dest))
	}

	chipLine := "(none yet)"
	if len(chips) > 0 {
		chipLine = lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	}

	label := m.renderLabel("Destinations", fieldDestinations)
	entry := lipgloss.JoinHorizontal(lipgloss.Top, label, m.DestInput.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		entry,
		lipgloss.NewStyle().PaddingLeft(18).Render(chipLine),
	)
}

func (m FormModel) renderInputRow(label string, input textinput.Model, f formField) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderLabel(label, f), input.View())
}

func (m FormModel) renderSelectorRow(label, value string, f formField) string {
	if value == "" {
		value = "(not set)"
	}
	display := fmt.Sprintf("‹ %s ›", value)

	style := lipgloss.NewStyle().Foreground(TextColor)
	if m.Cursor == f {
		style = style.Foreground(HighlightColor).Bold(true)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderLabel(label, f), style.Render(display))
}

func (m FormModel) renderInterestsRow() string {
	var items []string
	for i, name := range trip.InterestCatalog {
		marker := "[ ]"
		if m.Prefs.Interests[name] {
			marker = "[✓]"
		}

		item := fmt.Sprintf("%s %s", marker, name)
		style := lipgloss.NewStyle().Foreground(TextColor).MarginRight(2)
		if m.Cursor == fieldInterests && i == m.InterestCursor {
			style = style.Foreground(HighlightColor).Bold(true)
		}
		items = append(items, style.Render(item))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLabel("Interests", fieldInterests),
		strings.Join(items, ""),
	)
}

func (m FormModel) renderSubmitButton() string {
	buttonStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor)

	if m.Cursor == fieldSubmit {
		buttonStyle = buttonStyle.
			Foreground(BackgroundColor).
			Background(PrimaryColor)
	}

	return lipgloss.NewStyle().PaddingLeft(18).Render(buttonStyle.Render("Plan My Trip"))
}

func (m FormModel) renderLabel(text string, f formField) string {
	if m.Cursor == f {
		return FocusedLabelStyle.Render("→ " + text)
	}
	return LabelStyle.Render("  " + text)
}
