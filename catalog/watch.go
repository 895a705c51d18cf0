/*
watch.go - Live scenario file reloading

PURPOSE:
  Watches the scenario YAML file and reloads the catalog whenever the
  file changes, so operators can edit scenarios without restarting the
  server.

DESIGN:
  - Background goroutine fed by fsnotify events
  - Reloads on write and create
  - Re-arms the watch on rename and remove, because editors that save
    atomically replace the inode the watch was bound to
  - A failed reload keeps the previous entries and logs the reason

USAGE:
  w := catalog.NewWatcher(cat, "scenarios.yaml", slog.Default())
  if err := w.Start(); err != nil { ... }
  defer w.Stop()

SEE ALSO:
  - catalog.go: LoadFile, which this calls on every change
*/
package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// WATCHER
// =============================================================================

// Watcher reloads a catalog from a scenario file when the file changes.
type Watcher struct {
	Catalog *Catalog
	Path    string
	Logger  *slog.Logger

	watcher *fsnotify.Watcher
	stop    chan bool
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// NewWatcher creates a watcher for the given catalog and file path.
// A nil logger falls back to slog.Default.
func NewWatcher(cat *Catalog, path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		Catalog: cat,
		Path:    path,
		Logger:  logger,
		stop:    make(chan bool),
	}
}

// Start begins watching the scenario file. The file must exist.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create scenario watcher: %w", err)
	}
	if err := fsw.Add(w.Path); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.Path, err)
	}

	// Fresh channel each start, so a stopped watcher can be started again.
	w.stop = make(chan bool)
	w.watcher = fsw
	w.wg.Add(1)
	go w.run()

	w.Logger.Info("watching scenario file", "path", w.Path)
	return nil
}

// Stop halts the watcher and waits for the background goroutine to
// finish. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return
	}

	close(w.stop)
	w.watcher.Close()
	w.wg.Wait()
	w.watcher = nil
	w.Logger.Info("scenario watcher stopped")
}

// run is the event loop. It exits when Stop closes the stop channel or
// the underlying watcher channels close.
func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			switch {
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				w.reload()
			case event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove):
				// An atomic save renames a fresh file over the watched
				// one, which drops the inode watch. Re-arm on the new
				// file before reloading.
				if err := w.watcher.Add(w.Path); err != nil {
					w.Logger.Error("failed to re-watch scenario file",
						"path", w.Path, "error", err)
					continue
				}
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Logger.Error("scenario watcher error", "error", err)
		}
	}
}

// reload re-reads the scenario file, keeping the previous entries when
// the new contents do not load cleanly.
func (w *Watcher) reload() {
	if err := w.Catalog.LoadFile(w.Path); err != nil {
		w.Logger.Error("scenario reload failed, keeping previous entries",
			"path", w.Path, "error", err)
		return
	}
	w.Logger.Info("scenario file reloaded",
		"path", w.Path, "scenarios", len(w.Catalog.List()))
}
