package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the background sync agent",
	Long: `Runs the recurring sync agent in the foreground.

The agent synchronises highlights on a fixed cadence and reloads
settings when the configuration file changes. Stop it with Ctrl+C.`,
	RunE: runAgent,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAgent(cmd *cobra.Command, _ []string) error {
	if syncScheduler == nil {
		return errors.New("scheduler not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if settingsWatcher != nil {
		go func() {
			if err := settingsWatcher(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("settings watcher stopped: %v", err)
			}
		}()
	}

	cmd.Println("Sync agent running. Press Ctrl+C to stop.")

	err := syncScheduler.Start(ctx)
	if stopErr := syncScheduler.Stop(); stopErr != nil {
		logger.Warn("scheduler stop: %v", stopErr)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	cmd.Println("Sync agent stopped.")
	return nil
}
