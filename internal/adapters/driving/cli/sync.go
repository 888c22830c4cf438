package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

var syncAll bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise highlights now",
	Long: `Triggers an immediate synchronisation cycle.

By default only highlights updated since the last successful sync are
fetched. Use --all to re-fetch the entire library.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "ignore the last-sync watermark and fetch the full library")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if syncOrchestrator == nil {
		return errors.New("sync service not configured")
	}

	cmd.Println("Synchronising highlights...")

	outcome := syncOrchestrator.RunCycle(cmd.Context(), domain.SyncOptions{
		IgnoreLastSync: syncAll,
		Notify:         true,
		Trigger:        domain.TriggerManual,
	})

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		if len(outcome.Books) == 0 {
			cmd.Println("Already up to date.")
			return nil
		}
		cmd.Printf("Imported %d highlights from %d books.\n",
			domain.CountHighlights(outcome.Books), len(outcome.Books))
		return nil
	case domain.OutcomeAuthFailure:
		return errors.New("credential rejected: run 'marginalia settings key' to update your API key")
	default:
		return fmt.Errorf("sync failed: %s", outcome.Message)
	}
}
