package tui

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenLanding Screen = "landing"
	ScreenForm    Screen = "form"
	ScreenLoading Screen = "loading"
	ScreenResults Screen = "results"
)

// Event is a screen-transition trigger. Events come from user actions and from
// generation outcomes; there is no terminal event, the machine runs for the
// life of the session.
type Event string

const (
	EventStartPlanning     Event = "startPlanning"
	EventSubmit            Event = "submit"
	EventGenerateSucceeded Event = "generateSucceeded"
	EventSubmitFailed      Event = "submitFailed"
	EventRegenerate        Event = "regenerate"
	EventRegenerateFailed  Event = "regenerateFailed"
	EventEditPreferences   Event = "editPreferences"
)

// Transition is the pure screen state machine. It returns the next screen and
// whether the event is legal from the current screen. Direct jumps requested
// by navigation messages bypass this table and are not validator-gated.
func Transition(current Screen, event Event) (Screen, bool) {
	switch current {
	case ScreenLanding:
		if event == EventStartPlanning {
			return ScreenForm, true
		}

	case ScreenForm:
		if event == EventSubmit {
			return ScreenLoading, true
		}

	case ScreenLoading:
		switch event {
		case EventGenerateSucceeded:
			return ScreenResults, true
		case EventSubmitFailed:
			return ScreenForm, true
		case EventRegenerateFailed:
			// A failed regenerate keeps the prior itinerary on screen
			return ScreenResults, true
		}

	case ScreenResults:
		switch event {
		case EventRegenerate:
			return ScreenLoading, true
		case EventEditPreferences:
			return ScreenForm, true
		}
	}

	return current, false
}
