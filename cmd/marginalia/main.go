// Command marginalia syncs reading highlights into a local,
// searchable knowledge base.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/marginalia-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/marginalia-cli/internal/adapters/driven/readwise"
	"github.com/custodia-labs/marginalia-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/marginalia-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/services"
	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

// version is injected at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := file.NewSettingsStore("")
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening knowledge base: %w", err)
	}
	defer store.Close() //nolint:errcheck

	// Declare record kinds before anything can import.
	if err := store.SchemaRegistrar().RegisterKinds(context.Background(), domain.DefaultRecordKinds()); err != nil {
		return fmt.Errorf("registering record kinds: %w", err)
	}

	gate := services.NewCredentialGate(settings)
	cursor := services.NewCursorStore(store.SyncedStore())
	exporter := readwise.NewClient()
	notifier := cli.NewToastNotifier(os.Stdout)

	orchestrator := services.NewSyncOrchestrator(
		gate,
		cursor,
		exporter,
		store.RecordImporter(),
		notifier,
		store.CycleHistoryStore(),
		nil,
	)

	config := services.SyncConfigFromSettings(settings)
	scheduler := services.NewScheduler(config, orchestrator, nil)
	orchestrator.SetRearmer(scheduler)

	watcher := file.NewWatcher(settings, func() {
		logger.Info("Settings reloaded from %s", settings.Path())
	})

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		SyncOrchestrator: orchestrator,
		SyncScheduler:    scheduler,
		SettingsStore:    settings,
		LibraryStore:     store.LibraryStore(),
		HistoryStore:     store.CycleHistoryStore(),
		SettingsWatcher:  watcher.Watch,
	})

	return cli.Execute()
}
