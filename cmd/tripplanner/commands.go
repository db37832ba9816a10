package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/metaversecode/AI-Trip-Planner/internal/config"
	"github.com/metaversecode/AI-Trip-Planner/internal/export"
	"github.com/metaversecode/AI-Trip-Planner/internal/itinerary"
	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
	"github.com/metaversecode/AI-Trip-Planner/internal/wizard/tui"
)

// Shared service flags (persistent on root)
var (
	serviceURL     string
	serviceAPIKey  string
	serviceTimeout int
)

// Plan command flags
var (
	planDestinations string
	planStart        string
	planEnd          string
	planBudget       string
	planCurrency     string
	planStyle        string
	planInterests    string
	planMode         string
	planExport       bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", "", "Itinerary service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&serviceAPIKey, "api-key", "", "Itinerary service API key (overrides config)")
	rootCmd.PersistentFlags().IntVar(&serviceTimeout, "timeout", 0, "Request timeout in seconds (overrides config)")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(planCmd)
}

// wizardCmd launches the interactive planning wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive planning wizard",
	Long: `Launch the interactive trip-planning wizard.

The wizard walks through destinations, travel dates, budget, travel style,
interests and mode of travel, generates an itinerary and lets you regenerate
or export it.

This is the recommended way to plan a trip for most users.`,
	Example: `  # Launch the wizard
  tripplanner wizard
  # Or simply (wizard is default):
  tripplanner`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !tui.IsInteractiveTerminal() {
		return fmt.Errorf("the wizard needs an interactive terminal; use 'tripplanner plan' for scripting")
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	client := buildClient(settings)
	coordinator := export.NewCoordinator(export.NewTextEncoder(settings.Export.Directory))

	model := tui.NewAppModel(client, coordinator)
	if currency, err := trip.ParseCurrency(settings.DefaultCurrency); err == nil {
		model.Prefs.Currency = currency
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	return nil
}

// planCmd generates an itinerary non-interactively from flags
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an itinerary from flags",
	Long: `Generate an itinerary without the interactive wizard.

All trip parameters are supplied as flags and checked with the same rules the
wizard applies. The itinerary is printed to stdout, or written to a text
document with --export.`,
	Example: `  # Print an itinerary
  tripplanner plan --destinations "Goa, Jaipur" --start 2026-01-10 --end 2026-01-17 \
    --budget 50000 --style Relaxed --interests "Food, History" --mode Flight

  # Export it to a file instead
  tripplanner plan --destinations Goa --start 2026-01-10 --end 2026-01-14 \
    --budget 30000 --style Backpacker --interests Nature --mode Train --export`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planDestinations, "destinations", "", "Comma-separated destinations")
	planCmd.Flags().StringVar(&planStart, "start", "", "Start date (YYYY-MM-DD)")
	planCmd.Flags().StringVar(&planEnd, "end", "", "End date (YYYY-MM-DD)")
	planCmd.Flags().StringVar(&planBudget, "budget", "", "Budget amount")
	planCmd.Flags().StringVar(&planCurrency, "currency", "", "Currency (INR, USD, EUR, GBP)")
	planCmd.Flags().StringVar(&planStyle, "style", "", "Travel style (Relaxed, Adventure, Luxury, Family, Backpacker)")
	planCmd.Flags().StringVar(&planInterests, "interests", "", "Comma-separated interests")
	planCmd.Flags().StringVar(&planMode, "mode", "", "Mode of travel (Flight, Train, Bus, Car)")
	planCmd.Flags().BoolVar(&planExport, "export", false, "Write the itinerary to a text document instead of stdout")
}

func runPlan(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	prefs, err := preferencesFromFlags(settings)
	if err != nil {
		return err
	}

	if v := trip.Validate(prefs, time.Now()); v != nil {
		return v
	}

	client := buildClient(settings)

	fmt.Printf("Generating itinerary for %s...\n\n", prefs.Summary())

	text, err := client.Generate(context.Background(), prefs)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if planExport {
		coordinator := export.NewCoordinator(export.NewTextEncoder(settings.Export.Directory))
		filename, err := coordinator.Export(text, prefs)
		if err != nil {
			return err
		}
		fmt.Printf("Itinerary saved as %s\n", filename)
		return nil
	}

	fmt.Println(text)
	return nil
}

// preferencesFromFlags assembles and parses the plan command's flags.
func preferencesFromFlags(settings *config.Settings) (trip.Preferences, error) {
	prefs := trip.NewPreferences()

	prefs.Destinations = trip.AddDestinations(nil, trip.Tokenize(planDestinations)...)
	prefs.StartDate = planStart
	prefs.EndDate = planEnd
	prefs.Budget = planBudget

	currencyFlag := planCurrency
	if currencyFlag == "" {
		currencyFlag = settings.DefaultCurrency
	}
	if currencyFlag != "" {
		currency, err := trip.ParseCurrency(currencyFlag)
		if err != nil {
			return prefs, err
		}
		prefs.Currency = currency
	}

	if planStyle != "" {
		style, err := trip.ParseStyle(planStyle)
		if err != nil {
			return prefs, err
		}
		prefs.Style = style
	}

	if planMode != "" {
		mode, err := trip.ParseMode(planMode)
		if err != nil {
			return prefs, err
		}
		prefs.Mode = mode
	}

	for _, interest := range trip.Tokenize(planInterests) {
		if !trip.IsKnownInterest(interest) {
			return prefs, fmt.Errorf("unknown interest %q", interest)
		}
		prefs.ToggleInterest(interest)
	}

	return prefs, nil
}

// buildClient creates the generation client from config with flag overrides.
func buildClient(settings *config.Settings) *itinerary.Client {
	baseURL := settings.Service.BaseURL
	if serviceURL != "" {
		baseURL = serviceURL
	}

	client := itinerary.NewClient(baseURL)

	client.APIKey = settings.Service.APIKey
	if serviceAPIKey != "" {
		client.APIKey = serviceAPIKey
	}

	if settings.Service.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(settings.Service.TimeoutSeconds) * time.Second)
	}
	if serviceTimeout > 0 {
		client.SetTimeout(time.Duration(serviceTimeout) * time.Second)
	}
	if settings.Service.MaxRetries >= 0 {
		client.MaxRetries = settings.Service.MaxRetries
	}

	return client
}
