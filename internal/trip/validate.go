package trip

import (
	"strconv"
	"time"
)

// Rule identifies one of the ordered submission rules.
type Rule int

const (
	RuleDestinationsRequired Rule = iota
	RuleDatesRequired
	RuleStartNotPast
	RuleEndAfterStart
	RuleBudgetPositive
	RuleStyleRequired
	RuleInterestsRequired
	RuleModeRequired
)

// Violation describes the first rule a preferences record failed. Title and
// Description are user-facing and distinct per rule.
type Violation struct {
	Rule        Rule
	Title       string
	Description string
}

// Error implements the error interface so a Violation can travel through
// ordinary error returns (e.g. the non-interactive CLI path).
func (v *Violation) Error() string {
	return v.Title + ": " + v.Description
}

func violation(rule Rule, title, description string) *Violation {
	return &Violation{Rule: rule, Title: title, Description: description}
}

// Validate evaluates the submission rules over p in fixed order and returns
// the first violated rule, or nil when all rules pass. Only one violation is
// ever surfaced per attempt. Dates are compared against now at day
// granularity; time of day is ignored. Validate has no side effects.
func Validate(p Preferences, now time.Time) *Violation {
	if len(p.Destinations) == 0 {
		return violation(RuleDestinationsRequired,
			"Destination required",
			"Add at least one destination before planning your trip.")
	}

	if p.StartDate == "" || p.EndDate == "" {
		return violation(RuleDatesRequired,
			"Travel dates required",
			"Select both a start date and an end date.")
	}

	start, startErr := time.Parse(DateLayout, p.StartDate)
	end, endErr := time.Parse(DateLayout, p.EndDate)
	if startErr != nil || endErr != nil {
		// Unparseable dates count as unset
		return violation(RuleDatesRequired,
			"Travel dates required",
			"Select both a start date and an end date.")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return violation(RuleStartNotPast,
			"Start date is in the past",
			"The trip cannot start before today.")
	}

	if !end.After(start) {
		return violation(RuleEndAfterStart,
			"End date must be after start date",
			"Choose an end date later than the start date.")
	}

	if amount, err := strconv.Atoi(p.Budget); p.Budget == "" || err != nil || amount <= 0 {
		return violation(RuleBudgetPositive,
			"Budget required",
			"Enter a budget greater than zero.")
	}

	if p.Style == "" {
		return violation(RuleStyleRequired,
			"Travel style required",
			"Pick the style of trip you want.")
	}

	if len(p.Interests) == 0 {
		return violation(RuleInterestsRequired,
			"Interests required",
			"Select at least one interest.")
	}

	if p.Mode == "" {
		return violation(RuleModeRequired,
			"Mode of travel required",
			"Pick how you plan to travel.")
	}

	return nil
}
