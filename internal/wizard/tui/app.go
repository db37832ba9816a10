package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaversecode/AI-Trip-Planner/internal/itinerary"
	"github.com/metaversecode/AI-Trip-Planner/internal/logging"
	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
)

// Generator issues itinerary generation requests. *itinerary.Client satisfies
// it; tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prefs trip.Preferences) (string, error)
}

// Exporter writes an itinerary document and returns the filename it used.
// *export.Coordinator satisfies it.
type Exporter interface {
	Export(itinerary string, prefs trip.Preferences) (string, error)
}

// generateResultMsg carries the outcome of an async generation request. seq
// identifies the request; a message whose seq is stale is discarded.
type generateResultMsg struct {
	seq        uint64
	regenerate bool
	itinerary  string
	prefs      trip.Preferences
	err        error
}

// exportResultMsg carries the outcome of an async export.
type exportResultMsg struct {
	filename string
	err      error
}

// AppModel is the top-level coordinator model. It owns the preferences record,
// the current generation result, the busy flag and the generation counter;
// screen models render and collect input but never mutate shared state
// directly.
type AppModel struct {
	// Current screen state
	CurrentScreen  Screen
	PreviousScreen Screen

	// Screen models
	Landing LandingModel
	Form    FormModel
	Loading LoadingModel
	Results ResultsModel

	// Shared application state
	Prefs  trip.Preferences
	Result itinerary.Result

	// Busy guards generate/regenerate re-entrancy; seq tags each request so
	// late responses from superseded requests are dropped
	Busy bool
	seq  uint64

	// Collaborators
	Generator Generator
	Exporter  Exporter

	// Transient notification, dismissed by any keypress
	Notice *Notice

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the wizard starting on the landing screen.
func NewAppModel(gen Generator, exp Exporter) AppModel {
	return AppModel{
		CurrentScreen: ScreenLanding,
		Landing:       NewLandingModel(),
		Prefs:         trip.NewPreferences(),
		Generator:     gen,
		Exporter:      exp,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.Landing.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Propagate to all screens
		m.Landing, _ = m.Landing.Update(msg)
		m.Form, _ = m.Form.Update(msg)
		m.Loading, _ = m.Loading.Update(msg)
		m.Results, _ = m.Results.Update(msg)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Any other key dismisses a pending notice
		if m.Notice != nil {
			m.Notice = nil
			return m, nil
		}

	case startPlanningMsg:
		return m.transitionOn(EventStartPlanning)

	case submitRequestMsg:
		return m.submit(msg.prefs)

	case regenerateRequestMsg:
		return m.regenerate()

	case exportRequestMsg:
		return m, exportCmd(m.Exporter, m.Result)

	case editRequestMsg:
		return m.transitionOn(EventEditPreferences)

	case generateResultMsg:
		return m.applyGenerateResult(msg)

	case exportResultMsg:
		return m.applyExportResult(msg)
	}

	return m.updateCurrentScreen(msg)
}

// submit validates the preferences and kicks off generation. A violation
// surfaces as a notice and causes no transition.
func (m AppModel) submit(prefs trip.Preferences) (tea.Model, tea.Cmd) {
	m.Prefs = prefs

	if v := trip.Validate(m.Prefs, time.Now()); v != nil {
		m.Notice = &Notice{
			Title:       v.Title,
			Description: v.Description,
			Severity:    SeverityWarn,
		}
		return m, nil
	}

	return m.beginGenerate(false)
}

// regenerate reissues the request from the current preferences. A no-op while
// a request is outstanding; no re-validation, the preferences were valid when
// the current result was produced.
func (m AppModel) regenerate() (tea.Model, tea.Cmd) {
	if m.Busy {
		logging.Debug("regenerate ignored, request already in flight")
		return m, nil
	}
	return m.beginGenerate(true)
}

// beginGenerate moves to the loading screen and issues the request.
func (m AppModel) beginGenerate(regenerate bool) (tea.Model, tea.Cmd) {
	event := EventSubmit
	if regenerate {
		event = EventRegenerate
	}

	next, ok := Transition(m.CurrentScreen, event)
	if !ok {
		return m, nil
	}

	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = next
	m.Busy = true
	m.seq++

	m.Loading = NewLoadingModel(regenerate)
	m.Loading.Width = m.Width
	m.Loading.Height = m.Height

	return m, tea.Batch(
		m.Loading.Init(),
		generateCmd(m.Generator, m.Prefs, m.seq, regenerate),
	)
}

// generateCmd runs the generation request off the event loop.
func generateCmd(gen Generator, prefs trip.Preferences, seq uint64, regenerate bool) tea.Cmd {
	return func() tea.Msg {
		logging.LogGenerationRequest(prefs.Destinations, regenerate)
		text, err := gen.Generate(context.Background(), prefs)
		logging.LogGenerationResult(seq, len(text), err)
		return generateResultMsg{
			seq:        seq,
			regenerate: regenerate,
			itinerary:  text,
			prefs:      prefs,
			err:        err,
		}
	}
}

// applyGenerateResult handles a generation outcome. Stale responses, from
// requests superseded by a newer one, are dropped without touching any state.
func (m AppModel) applyGenerateResult(msg generateResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		logging.Debug("discarding stale generation response")
		return m, nil
	}

	m.Busy = false

	if msg.err != nil {
		m.Notice = &Notice{
			Title:       "Itinerary generation failed",
			Description: itinerary.ShortMessage(msg.err),
			Severity:    SeverityError,
		}

		event := EventSubmitFailed
		if msg.regenerate {
			// Keep showing the prior itinerary rather than dropping the
			// user back into the form
			event = EventRegenerateFailed
		}
		next, ok := Transition(m.CurrentScreen, event)
		if ok {
			m.PreviousScreen = m.CurrentScreen
			m.CurrentScreen = next
			if next == ScreenForm {
				m.Form = NewFormModel(m.Prefs)
				m.Form.Width = m.Width
				m.Form.Height = m.Height
				return m, m.Form.Init()
			}
		}
		return m, nil
	}

	m.Result = itinerary.Result{
		Itinerary:   msg.itinerary,
		Preferences: msg.prefs,
		GeneratedAt: time.Now(),
	}
	m.Results = NewResultsModel(m.Result, m.Width, m.Height)

	if msg.regenerate {
		m.Notice = &Notice{
			Title:    "Itinerary regenerated",
			Severity: SeverityInfo,
		}
	}

	next, ok := Transition(m.CurrentScreen, EventGenerateSucceeded)
	if ok {
		m.PreviousScreen = m.CurrentScreen
		m.CurrentScreen = next
	}
	return m, nil
}

// exportCmd runs the export off the event loop.
func exportCmd(exp Exporter, result itinerary.Result) tea.Cmd {
	return func() tea.Msg {
		filename, err := exp.Export(result.Itinerary, result.Preferences)
		logging.LogExport(filename, err)
		return exportResultMsg{filename: filename, err: err}
	}
}

// applyExportResult reports the export outcome. Export never mutates wizard
// state beyond the notice.
func (m AppModel) applyExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notice = &Notice{
			Title:       "Export failed",
			Description: msg.err.Error(),
			Severity:    SeverityError,
		}
		return m, nil
	}

	m.Notice = &Notice{
		Title:       "Itinerary exported",
		Description: "Saved as " + msg.filename,
		Severity:    SeverityInfo,
	}
	return m, nil
}

// transitionOn applies an FSM event and initializes the target screen.
func (m AppModel) transitionOn(event Event) (tea.Model, tea.Cmd) {
	next, ok := Transition(m.CurrentScreen, event)
	if !ok {
		return m, nil
	}

	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = next

	switch next {
	case ScreenForm:
		m.Form = NewFormModel(m.Prefs)
		m.Form.Width = m.Width
		m.Form.Height = m.Height
		return m, m.Form.Init()

	case ScreenResults:
		m.Results = NewResultsModel(m.Result, m.Width, m.Height)
		return m, m.Results.Init()
	}

	return m, nil
}

// updateCurrentScreen routes a message to the active screen model.
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenLanding:
		m.Landing, cmd = m.Landing.Update(msg)

	case ScreenForm:
		m.Form, cmd = m.Form.Update(msg)
		// The form's working copy is authoritative while it has the screen
		m.Prefs = m.Form.Prefs

	case ScreenLoading:
		m.Loading, cmd = m.Loading.Update(msg)

	case ScreenResults:
		m.Results, cmd = m.Results.Update(msg)
	}

	return m, cmd
}

// View renders the current screen, with any pending notice overlaid.
func (m AppModel) View() string {
	if m.Notice != nil {
		return lipgloss.Place(
			m.Width,
			m.Height,
			lipgloss.Center,
			lipgloss.Center,
			m.Notice.Render(),
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
		)
	}

	switch m.CurrentScreen {
	case ScreenLanding:
		return m.Landing.View()
	case ScreenForm:
		return m.Form.View()
	case ScreenLoading:
		return m.Loading.View()
	case ScreenResults:
		return m.Results.View()
	default:
		return "Unknown screen"
	}
}
