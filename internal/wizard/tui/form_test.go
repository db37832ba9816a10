package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m FormModel, text string) FormModel {
	t.Helper()
	for _, r := range text {
		var next FormModel
		next, _ = m.Update(keyRunes(string(r)))
		m = next
	}
	return m
}

func TestFormDestinationEntry(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())

	m = typeText(t, m, "Goa")
	m, _ = m.Update(keyRunes(","))

	if got := m.Prefs.Destinations; !reflect.DeepEqual(got, []string{"Goa"}) {
		t.Fatalf("Destinations = %v, want [Goa]", got)
	}
	if m.DestInput.Value() != "" {
		t.Errorf("input not cleared after delimiter commit: %q", m.DestInput.Value())
	}

	m = typeText(t, m, "Jaipur")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Prefs.Destinations; !reflect.DeepEqual(got, []string{"Goa", "Jaipur"}) {
		t.Errorf("Destinations = %v, want [Goa Jaipur]", got)
	}
}

func TestFormDestinationDedup(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())

	m = typeText(t, m, "Goa")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "GOA")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Prefs.Destinations; !reflect.DeepEqual(got, []string{"Goa"}) {
		t.Errorf("Destinations = %v, want [Goa]", got)
	}
}

func TestFormDestinationPaste(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())

	paste := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Goa, Jaipur, Agra"), Paste: true}
	m, _ = m.Update(paste)

	want := []string{"Goa", "Jaipur", "Agra"}
	if got := m.Prefs.Destinations; !reflect.DeepEqual(got, want) {
		t.Errorf("Destinations = %v, want %v", got, want)
	}
	if m.DestInput.Value() != "" {
		t.Errorf("input should be empty after bulk paste, got %q", m.DestInput.Value())
	}
}

func TestFormDestinationBackspace(t *testing.T) {
	prefs := trip.NewPreferences()
	prefs.Destinations = []string{"Goa", "Jaipur"}
	m := NewFormModel(prefs)

	// Empty buffer: backspace removes the last entry
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Prefs.Destinations; !reflect.DeepEqual(got, []string{"Goa"}) {
		t.Errorf("Destinations = %v, want [Goa]", got)
	}

	// Non-empty buffer: backspace edits the buffer only
	m = typeText(t, m, "Ag")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.DestInput.Value() != "A" {
		t.Errorf("input = %q, want A", m.DestInput.Value())
	}
	if len(m.Prefs.Destinations) != 1 {
		t.Error("backspace with buffered text must not touch the list")
	}
}

func TestFormDateCommitOnBlur(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())
	m.setFocus(fieldStartDate)

	m = typeText(t, m, "2030-01-01")
	if m.Prefs.StartDate != "" {
		t.Errorf("StartDate committed mid-typing: %q", m.Prefs.StartDate)
	}

	// Moving to the next field blurs and commits
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Prefs.StartDate != "2030-01-01" {
		t.Errorf("StartDate = %q, want committed on blur", m.Prefs.StartDate)
	}
	if m.Cursor != fieldEndDate {
		t.Errorf("cursor = %d, want end date field", m.Cursor)
	}
}

func TestFormBudgetEnterCommits(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())
	m.setFocus(fieldBudget)

	m = typeText(t, m, "50000")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Prefs.Budget != "50000" {
		t.Errorf("Budget = %q, want committed on enter", m.Prefs.Budget)
	}
	if m.Cursor == fieldBudget {
		t.Error("enter should move focus off the budget field")
	}
}

func TestFormBudgetRejectsNonDigits(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())
	m.setFocus(fieldBudget)

	m = typeText(t, m, "5a0")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Prefs.Budget != "50" {
		t.Errorf("Budget = %q, non-digits should be rejected by the input", m.Prefs.Budget)
	}
}

func TestFormSelectorsCycle(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())

	m.setFocus(fieldCurrency)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Prefs.Currency != trip.CurrencyINR {
		t.Errorf("Currency = %s, first step should select the first option", m.Prefs.Currency)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Prefs.Currency != trip.CurrencyUSD {
		t.Errorf("Currency = %s, want USD", m.Prefs.Currency)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Prefs.Currency != trip.CurrencyINR {
		t.Errorf("Currency = %s, want INR", m.Prefs.Currency)
	}

	m.setFocus(fieldMode)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Prefs.Mode != trip.ModeFlight {
		t.Errorf("Mode = %s, want Flight", m.Prefs.Mode)
	}
}

func TestFormInterestToggle(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())
	m.setFocus(fieldInterests)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !m.Prefs.Interests["Food"] {
		t.Error("space should toggle the first interest on")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !m.Prefs.Interests["Culture"] {
		t.Error("second interest should be toggled on")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.Prefs.Interests["Culture"] {
		t.Error("toggling again should remove the interest")
	}
}

func TestFormSubmitCarriesCurrentValues(t *testing.T) {
	m := NewFormModel(trip.NewPreferences())

	paste := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Goa,"), Paste: true}
	m, _ = m.Update(paste)

	m.setFocus(fieldBudget)
	m = typeText(t, m, "50000")

	// Ctrl+S submits; the focused draft must be committed first
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("submit should produce a command")
	}

	msg := cmd()
	req, ok := msg.(submitRequestMsg)
	if !ok {
		t.Fatalf("command produced %T, want submitRequestMsg", msg)
	}
	if req.prefs.Budget != "50000" {
		t.Errorf("submitted budget = %q, want uncommitted draft included", req.prefs.Budget)
	}
	if !reflect.DeepEqual(req.prefs.Destinations, []string{"Goa"}) {
		t.Errorf("submitted destinations = %v", req.prefs.Destinations)
	}
}
