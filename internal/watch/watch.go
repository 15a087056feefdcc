// Package watch implements spec.md §4.8's file watcher and incremental
// scheduler: real filesystem events debounced into batches, each one
// handed to internal/indexer.ReindexBatch and published atomically.
// Structured the way the teacher's internal/watcher.Watcher is — one
// struct holding a single re-index callback and a blocking Run(ctx) — but
// event-driven via fsnotify instead of the teacher's adaptive poll loop,
// per the retrieval pack's universal preference for fsnotify on this
// concern.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ariadnehq/ariadne/internal/discover"
	"github.com/ariadnehq/ariadne/internal/indexer"
)

// quietPeriod is spec.md §4.8's debounce window.
const quietPeriod = 150 * time.Millisecond

// pendingBatch accumulates file paths touched since the last flush.
// A path sits in exactly one of changed and removed, decided by its latest
// event; a changed path that is gone by the time the batch runs is skipped
// by ReindexBatch's os.Stat check.
type pendingBatch struct {
	changed map[string]bool
	removed map[string]bool
}

func newPendingBatch() *pendingBatch {
	return &pendingBatch{changed: map[string]bool{}, removed: map[string]bool{}}
}

func (b *pendingBatch) empty() bool {
	return len(b.changed) == 0 && len(b.removed) == 0
}

func (b *pendingBatch) record(ev fsnotify.Event) {
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		delete(b.changed, ev.Name)
		b.removed[ev.Name] = true
	default: // Create, Write, Chmod
		delete(b.removed, ev.Name)
		b.changed[ev.Name] = true
	}
}

func (b *pendingBatch) paths() (changed, removed []string) {
	for p := range b.changed {
		changed = append(changed, p)
	}
	for p := range b.removed {
		removed = append(removed, p)
	}
	return
}

// Watcher wires one fsnotify.Watcher to one Indexer: filesystem events in,
// debounced ReindexBatch calls out.
type Watcher struct {
	indexer *indexer.Indexer
	logger  *slog.Logger
	fsw     *fsnotify.Watcher
}

// New creates a Watcher over root's tree, recursively registering every
// directory fsnotify needs watched individually (fsnotify has no recursive
// mode). ix should already have completed a FullIndex.
func New(ix *indexer.Indexer, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{indexer: ix, logger: logger, fsw: fsw}
	if err := w.addTree(ix.Root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return filepath.SkipDir
		}
		if !info.IsDir() {
			return nil
		}
		if shouldSkip(path, root) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func shouldSkip(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return discover.IsIgnoredDir(filepath.Base(rel))
}

// Run blocks, debouncing filesystem events into batches and reindexing,
// until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	batch := newPendingBatch()
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		if batch.empty() {
			return
		}
		changed, removed := batch.paths()
		batch = newPendingBatch()
		if _, err := w.indexer.ReindexBatch(ctx, changed, removed); err != nil {
			w.logger.Error("watch.reindex_failed", "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				flush()
				return
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !shouldSkip(ev.Name, w.indexer.Root) {
					_ = w.addTree(ev.Name)
				}
			}
			batch.record(ev)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(quietPeriod)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			flush()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				continue
			}
			w.logger.Warn("watch.fsnotify_error", "error", err)
		}
	}
}
