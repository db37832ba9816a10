package trip

import (
	"fmt"
	"sort"
	"strings"
)

// Currency is the currency the budget amount is denominated in.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Currencies lists the supported currencies in display order.
func Currencies() []Currency {
	return []Currency{CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP}
}

// ParseCurrency parses a currency code, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	for _, c := range Currencies() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown currency %q (valid: %s)", s, joinCurrencies())
}

func joinCurrencies() string {
	var parts []string
	for _, c := range Currencies() {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}

// Style describes the overall pace and character of the trip.
type Style string

const (
	StyleRelaxed    Style = "Relaxed"
	StyleAdventure  Style = "Adventure"
	StyleLuxury     Style = "Luxury"
	StyleFamily     Style = "Family"
	StyleBackpacker Style = "Backpacker"
)

// Styles lists the supported travel styles in display order.
func Styles() []Style {
	return []Style{StyleRelaxed, StyleAdventure, StyleLuxury, StyleFamily, StyleBackpacker}
}

// ParseStyle parses a travel style, case-insensitively.
func ParseStyle(s string) (Style, error) {
	for _, st := range Styles() {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown travel style %q", s)
}

// Mode is the primary mode of travel to the destination.
type Mode string

const (
	ModeFlight Mode = "Flight"
	ModeTrain  Mode = "Train"
	ModeBus    Mode = "Bus"
	ModeCar    Mode = "Car"
)

// Modes lists the supported travel modes in display order.
func Modes() []Mode {
	return []Mode{ModeFlight, ModeTrain, ModeBus, ModeCar}
}

// ParseMode parses a travel mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown travel mode %q", s)
}

// InterestCatalog is the fixed set of selectable interests.
var InterestCatalog = []string{
	"Food",
	"Culture",
	"Nature",
	"Adventure",
	"Shopping",
	"Nightlife",
	"History",
	"Photography",
}

// IsKnownInterest reports whether name is part of the interest catalog.
func IsKnownInterest(name string) bool {
	for _, i := range InterestCatalog {
		if strings.EqualFold(i, name) {
			return true
		}
	}
	return false
}

// DateLayout is the ISO calendar-date layout used for trip dates.
const DateLayout = "2006-01-02"

// Preferences is the full set of user-entered trip parameters. It is owned by
// the wizard's top-level model and mutated only through widget commits and
// toggle operations; it is never reset automatically and survives regenerate
// cycles and screen navigation.
type Preferences struct {
	// Destinations is ordered and deduplicated under case-insensitive trimmed
	// comparison; first-seen casing is retained.
	Destinations []string

	// StartDate and EndDate are ISO dates ("2006-01-02"), each optional until
	// submission.
	StartDate string
	EndDate   string

	// Budget is a decimal string; it must parse to an integer > 0 to be valid.
	Budget   string
	Currency Currency

	Style Style

	// Interests is a membership-only set drawn from InterestCatalog.
	Interests map[string]bool

	Mode Mode
}

// NewPreferences creates an empty preferences record.
func NewPreferences() Preferences {
	return Preferences{
		Interests: make(map[string]bool),
	}
}

// ToggleInterest flips membership of the named interest.
func (p *Preferences) ToggleInterest(name string) {
	if p.Interests == nil {
		p.Interests = make(map[string]bool)
	}
	if p.Interests[name] {
		delete(p.Interests, name)
	} else {
		p.Interests[name] = true
	}
}

// InterestList returns the selected interests in catalog order. Interests not
// present in the catalog (e.g. supplied via CLI flags) sort after it.
func (p *Preferences) InterestList() []string {
	if len(p.Interests) == 0 {
		return nil
	}

	var out []string
	for _, name := range InterestCatalog {
		if p.Interests[name] {
			out = append(out, name)
		}
	}

	// Anything outside the catalog, in stable order
	var extra []string
	for name := range p.Interests {
		if !containsFold(InterestCatalog, name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// Summary returns a one-line description of the trip, for logging and the
// results header.
func (p *Preferences) Summary() string {
	dests := strings.Join(p.Destinations, ", ")
	if dests == "" {
		dests = "(no destinations)"
	}
	return fmt.Sprintf("%s • %s → %s • %s %s", dests, p.StartDate, p.EndDate, p.Budget, p.Currency)
}
