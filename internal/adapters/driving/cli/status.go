package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/services"
)

// historyDisplayLimit caps how many past cycles the status view shows.
const historyDisplayLimit = 5

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status and recent cycles",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if syncOrchestrator == nil {
		return errors.New("sync service not configured")
	}

	ctx := cmd.Context()

	cmd.Println("Sync Status")
	cmd.Println("===========")
	cmd.Println()

	last, err := syncOrchestrator.LastSyncedAt(ctx)
	switch {
	case err != nil:
		cmd.Printf("Last sync: unknown (%v)\n", err)
	case last.IsZero():
		cmd.Println("Last sync: never")
	default:
		cmd.Printf("Last sync: %s (%s ago)\n",
			last.Local().Format(time.RFC1123), time.Since(last).Round(time.Second))
	}

	if settingsStore != nil {
		config := services.SyncConfigFromSettings(settingsStore)
		enabled := "enabled"
		if !config.Enabled {
			enabled = "disabled"
		}
		cmd.Printf("Automatic sync: %s (every %s)\n", enabled, config.Interval)
	}

	if historyStore == nil {
		return nil
	}

	results, err := historyStore.ListResults(ctx, historyDisplayLimit)
	if err != nil {
		return fmt.Errorf("reading cycle history: %w", err)
	}
	if len(results) == 0 {
		return nil
	}

	cmd.Println()
	cmd.Println("Recent cycles:")
	for _, result := range results {
		line := fmt.Sprintf("  %s  %-10s %-12s",
			result.StartedAt.Local().Format("2006-01-02 15:04"),
			result.Trigger, result.Outcome)
		if result.Outcome == domain.OutcomeSuccess {
			line += fmt.Sprintf(" %d books, %d highlights",
				result.BooksFetched, result.HighlightsFetched)
		} else if result.Error != "" {
			line += " " + result.Error
		}
		cmd.Println(line)
	}

	return nil
}
