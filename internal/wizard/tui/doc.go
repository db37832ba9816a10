// Package tui implements the interactive trip-planning wizard: a Bubble Tea
// application walking the user from a landing screen through the preferences
// form, the generation wait screen, and the itinerary results screen. The
// top-level AppModel owns the preferences record, the current result and the
// busy/generation-counter state; screen models render and collect input.
package tui
