// Package cli provides the cobra-based command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
var (
	syncOrchestrator driving.SyncOrchestrator
	syncScheduler    driving.Scheduler
	settingsStore    driven.SettingsStore
	libraryStore     driven.LibraryStore
	historyStore     driven.CycleHistoryStore
	settingsWatcher  func(ctx context.Context) error
)

// Services bundles everything the CLI needs from the composition root.
type Services struct {
	SyncOrchestrator driving.SyncOrchestrator
	SyncScheduler    driving.Scheduler
	SettingsStore    driven.SettingsStore
	LibraryStore     driven.LibraryStore
	HistoryStore     driven.CycleHistoryStore

	// SettingsWatcher, when set, is run by the agent to hot-reload
	// settings. It blocks until its context is cancelled.
	SettingsWatcher func(ctx context.Context) error
}

// SetServices wires the injected services into the command tree.
func SetServices(s Services) {
	syncOrchestrator = s.SyncOrchestrator
	syncScheduler = s.SyncScheduler
	settingsStore = s.SettingsStore
	libraryStore = s.LibraryStore
	historyStore = s.HistoryStore
	settingsWatcher = s.SettingsWatcher
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "marginalia",
	Short: "Sync reading highlights into a local knowledge base",
	Long: `Marginalia keeps a local, searchable copy of your reading highlights.

It synchronises incrementally from your highlight provider on a fixed
cadence, or on demand with 'marginalia sync'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
