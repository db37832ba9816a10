// Tripplanner is an interactive trip-planning assistant for the terminal.
//
// It collects travel preferences through a multi-step wizard, submits them to
// an itinerary-generation service, and presents the resulting day-by-day plan
// with regenerate and export options.
//
// Usage:
//
//	tripplanner [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'tripplanner --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metaversecode/AI-Trip-Planner/internal/config"
	"github.com/metaversecode/AI-Trip-Planner/internal/logging"
	"github.com/metaversecode/AI-Trip-Planner/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tripplanner",
	Short: "AI Trip Planner",
	Long: `An interactive trip-planning assistant for the terminal.

Collects your destinations, dates, budget and travel preferences through a
multi-step wizard, generates a day-by-day itinerary via the planning service,
and exports the result to a text document.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		return logging.Initialize(settings.LogLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tripplanner %s (commit: %s)\n", version.Version, version.Commit)
	},
}
