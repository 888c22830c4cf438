package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

// debounceWindow coalesces editor write bursts into one reload.
const debounceWindow = 250 * time.Millisecond

// Watcher reloads a SettingsStore when its file changes on disk.
type Watcher struct {
	store    *SettingsStore
	onReload func()
}

// NewWatcher creates a watcher for the given store. onReload may be nil;
// when set it runs after every successful reload.
func NewWatcher(store *SettingsStore, onReload func()) *Watcher {
	return &Watcher{store: store, onReload: onReload}
}

// Watch blocks until the context is cancelled, reloading the store
// whenever its settings file is written or replaced.
func (w *Watcher) Watch(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	defer func() { _ = fsWatcher.Close() }()

	// Watch the directory, not the file: editors replace files by rename
	// and a file watch dies with the old inode.
	dir := filepath.Dir(w.store.Path())
	if err := fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watch settings directory: %w", err)
	}

	var pending *time.Timer
	reloads := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounceWindow, func() {
				select {
				case reloads <- struct{}{}:
				default:
				}
			})

		case <-reloads:
			if err := w.store.Load(); err != nil {
				logger.Warn("settings reload failed: %v", err)
				continue
			}
			logger.Debug("settings reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watcher error: %v", err)
		}
	}
}
