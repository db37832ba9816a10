package field

import (
	"errors"
	"reflect"
	"testing"
)

func TestDraftCommitOnBlurOnly(t *testing.T) {
	d := NewDraft("2025-06-10")

	d.SetBuffer("2025-0")
	if d.Committed() != "2025-06-10" {
		t.Errorf("typing must not commit, committed = %q", d.Committed())
	}

	d.SetBuffer("2025-07-01")
	if got := d.Commit(); got != "2025-07-01" {
		t.Errorf("Commit() = %q, want 2025-07-01", got)
	}
}

func TestDraftCommitTrims(t *testing.T) {
	d := NewDraft("")
	d.SetBuffer("  50000  ")
	if got := d.Commit(); got != "50000" {
		t.Errorf("Commit() = %q, want trimmed value", got)
	}
}

func TestDraftSync(t *testing.T) {
	d := NewDraft("2025-06-10")
	d.SetBuffer("2025-06-1")

	// External change to the authoritative value resets the buffer
	d.Sync("2025-08-01")
	if d.Buffer() != "2025-08-01" {
		t.Errorf("buffer after external change = %q, want 2025-08-01", d.Buffer())
	}

	// Sync with the value we last committed leaves the draft alone
	d.SetBuffer("2025-08-0")
	d.Sync("2025-08-01")
	if d.Buffer() != "2025-08-0" {
		t.Errorf("buffer after matching sync = %q, want draft preserved", d.Buffer())
	}
}

func TestDateFieldPickerFailuresSwallowed(t *testing.T) {
	f := NewDateField("")
	f.OpenPicker = func() error { return errors.New("no picker on this platform") }
	f.Focus()
	if !f.Focused() {
		t.Error("field should be focused despite picker error")
	}

	f.OpenPicker = func() error { panic("picker exploded") }
	f.Focus()
	if !f.Focused() {
		t.Error("field should survive a panicking picker hook")
	}
}

func TestDateFieldCommitOnBlur(t *testing.T) {
	f := NewDateField("")
	f.Focus()
	f.SetBuffer("2025-06-10")
	if f.Committed() != "" {
		t.Error("value committed before blur")
	}
	if got := f.Blur(); got != "2025-06-10" {
		t.Errorf("Blur() = %q", got)
	}
	if f.Focused() {
		t.Error("field still focused after blur")
	}
}

func TestBudgetFieldConfirmCommitsAndBlurs(t *testing.T) {
	f := NewBudgetField("")
	f.Focus()
	f.SetBuffer(" 50000 ")
	if got := f.Confirm(); got != "50000" {
		t.Errorf("Confirm() = %q, want 50000", got)
	}
	if f.Focused() {
		t.Error("field still focused after confirm")
	}
}

func TestDestinationEditorDedup(t *testing.T) {
	e := NewDestinationEditor(nil)
	e.SetBuffer("Goa, goa, GOA ")
	e.Confirm()

	if got := e.Destinations(); !reflect.DeepEqual(got, []string{"Goa"}) {
		t.Errorf("Destinations() = %v, want [Goa]", got)
	}
	if e.Buffer() != "" {
		t.Errorf("buffer not cleared after commit: %q", e.Buffer())
	}
}

func TestDestinationEditorOrder(t *testing.T) {
	e := NewDestinationEditor(nil)
	e.SetBuffer("A,B")
	e.Confirm()
	e.SetBuffer("C")
	e.Confirm()

	if got := e.Destinations(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Destinations() = %v, want [A B C]", got)
	}
}

func TestDestinationEditorDelimiterKeystroke(t *testing.T) {
	e := NewDestinationEditor(nil)
	e.SetBuffer("Goa")
	e.TypeDelimiter()

	if got := e.Destinations(); !reflect.DeepEqual(got, []string{"Goa"}) {
		t.Errorf("Destinations() = %v", got)
	}
	if e.Buffer() != "" {
		t.Error("delimiter keystroke should clear the buffer")
	}
}

func TestDestinationEditorPaste(t *testing.T) {
	t.Run("paste with delimiter commits immediately", func(t *testing.T) {
		e := NewDestinationEditor(nil)
		e.Paste("Goa, Jaipur, Agra")

		want := []string{"Goa", "Jaipur", "Agra"}
		if got := e.Destinations(); !reflect.DeepEqual(got, want) {
			t.Errorf("Destinations() = %v, want %v", got, want)
		}
		if e.Buffer() != "" {
			t.Error("buffer should be empty after bulk paste")
		}
	})

	t.Run("paste combines with existing buffer", func(t *testing.T) {
		e := NewDestinationEditor(nil)
		e.SetBuffer("Go")
		e.Paste("a, Jaipur")

		want := []string{"Goa", "Jaipur"}
		if got := e.Destinations(); !reflect.DeepEqual(got, want) {
			t.Errorf("Destinations() = %v, want %v", got, want)
		}
	})

	t.Run("paste without delimiter stays in buffer", func(t *testing.T) {
		e := NewDestinationEditor(nil)
		e.Paste("Goa")

		if len(e.Destinations()) != 0 {
			t.Errorf("plain paste should not commit, got %v", e.Destinations())
		}
		if e.Buffer() != "Goa" {
			t.Errorf("buffer = %q, want Goa", e.Buffer())
		}
	})
}

func TestDestinationEditorBackspace(t *testing.T) {
	e := NewDestinationEditor([]string{"Goa", "Jaipur"})

	// Buffer non-empty: backspace edits the buffer only
	e.SetBuffer("Ag")
	e.Backspace()
	if e.Buffer() != "A" {
		t.Errorf("buffer = %q, want A", e.Buffer())
	}
	if len(e.Destinations()) != 2 {
		t.Error("backspace with a non-empty buffer must not touch the list")
	}

	// Empty buffer: backspace removes the last entry
	e.SetBuffer("")
	e.Backspace()
	if got := e.Destinations(); !reflect.DeepEqual(got, []string{"Goa"}) {
		t.Errorf("Destinations() = %v, want [Goa]", got)
	}

	// Empty list: no-op
	e.Backspace()
	e.Backspace()
	if len(e.Destinations()) != 0 {
		t.Errorf("Destinations() = %v, want empty", e.Destinations())
	}
}

func TestDestinationEditorRemove(t *testing.T) {
	e := NewDestinationEditor([]string{"Goa", "Jaipur", "Agra"})
	e.Remove("Jaipur")

	want := []string{"Goa", "Agra"}
	if got := e.Destinations(); !reflect.DeepEqual(got, want) {
		t.Errorf("Destinations() = %v, want %v", got, want)
	}

	// Removing an absent entry is a no-op
	e.Remove("Delhi")
	if got := e.Destinations(); !reflect.DeepEqual(got, want) {
		t.Errorf("Destinations() = %v, want %v", got, want)
	}
}
