// Package watch invalidates catalog caches when content files change on
// disk. It is a development-time convenience: the catalog's lazy staleness
// check remains the correctness mechanism, the watcher only makes edits
// visible without waiting for the next stamp drift detection.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/migratio/contentcatalog/internal/logfields"
	"github.com/migratio/contentcatalog/internal/util/sets"
)

// DefaultDebounce batches bursts of filesystem events (editors typically
// emit several per save) into one invalidation.
const DefaultDebounce = 250 * time.Millisecond

// Invalidator is the slice of the catalog the watcher needs.
type Invalidator interface {
	Invalidate()
}

// Watcher watches one or more category roots and invalidates the associated
// catalogs on changes beneath them.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	targets map[string]Invalidator // root path -> catalog
	watched sets.Set[string]       // directories registered with fsnotify
}

// New creates a Watcher. Callers must Run it and Close it when done.
func New(debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fs:       fs,
		debounce: debounce,
		targets:  map[string]Invalidator{},
		watched:  sets.New[string](),
	}, nil
}

// Add registers a category root. The whole subtree is watched; directories
// created later are picked up from their create events.
func (w *Watcher) Add(root string, target Invalidator) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.targets[abs] = target
	w.mu.Unlock()

	return w.watchTree(abs)
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run processes filesystem events until ctx is done. Events are debounced
// per burst; every root with activity in the burst is invalidated once.
func (w *Watcher) Run(ctx context.Context) {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	dirty := sets.New[string]()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			root := w.rootFor(event.Name)
			if root == "" {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// New subdirectories need their own watch registration.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.watchTree(event.Name)
				}
			}
			dirty.Add(root)
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("content watcher error", logfields.Error(err))

		case <-timer.C:
			w.mu.Lock()
			for root := range dirty {
				if target, ok := w.targets[root]; ok {
					target.Invalidate()
					slog.Debug("content change detected, cache invalidated", logfields.Root(root))
				}
			}
			w.mu.Unlock()
			dirty = sets.New[string]()
		}
	}
}

// watchTree registers dir and every directory beneath it. A root that does
// not exist yet is fine; it will be watched once created by its parent.
func (w *Watcher) watchTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		w.mu.Lock()
		known := w.watched.Has(path)
		if !known {
			w.watched.Add(path)
		}
		w.mu.Unlock()
		if known {
			return nil
		}
		return w.fs.Add(path)
	})
}

// rootFor maps an event path to the registered root containing it.
func (w *Watcher) rootFor(path string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	for root := range w.targets {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return root
		}
	}
	return ""
}
