package trip

import (
	"reflect"
	"testing"
)

// TestParseCurrency tests case-insensitive currency parsing
func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input   string
		want    Currency
		wantErr bool
	}{
		{"INR", CurrencyINR, false},
		{"usd", CurrencyUSD, false},
		{"Eur", CurrencyEUR, false},
		{"JPY", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCurrency(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCurrency(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCurrency(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseStyleAndMode tests enum parsing for style and mode
func TestParseStyleAndMode(t *testing.T) {
	if s, err := ParseStyle("backpacker"); err != nil || s != StyleBackpacker {
		t.Errorf("ParseStyle(backpacker) = %q, %v", s, err)
	}
	if _, err := ParseStyle("cruise"); err == nil {
		t.Error("ParseStyle(cruise) should fail")
	}

	if m, err := ParseMode("TRAIN"); err != nil || m != ModeTrain {
		t.Errorf("ParseMode(TRAIN) = %q, %v", m, err)
	}
	if _, err := ParseMode("boat"); err == nil {
		t.Error("ParseMode(boat) should fail")
	}
}

// TestToggleInterest tests set semantics of interest toggling
func TestToggleInterest(t *testing.T) {
	p := NewPreferences()

	p.ToggleInterest("Food")
	if !p.Interests["Food"] {
		t.Error("Food should be selected after first toggle")
	}

	p.ToggleInterest("Food")
	if p.Interests["Food"] {
		t.Error("Food should be deselected after second toggle")
	}
	if len(p.Interests) != 0 {
		t.Errorf("Interests = %v, want empty", p.Interests)
	}
}

// TestInterestList tests catalog-ordered listing of selected interests
func TestInterestList(t *testing.T) {
	p := NewPreferences()
	p.ToggleInterest("History")
	p.ToggleInterest("Food")
	p.ToggleInterest("Nature")

	want := []string{"Food", "Nature", "History"}
	if got := p.InterestList(); !reflect.DeepEqual(got, want) {
		t.Errorf("InterestList() = %v, want %v", got, want)
	}
}

// TestInterestListEmpty tests the empty set
func TestInterestListEmpty(t *testing.T) {
	p := NewPreferences()
	if got := p.InterestList(); got != nil {
		t.Errorf("InterestList() = %v, want nil", got)
	}
}
