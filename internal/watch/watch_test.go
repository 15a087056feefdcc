package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ariadnehq/ariadne/internal/indexer"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestWatcherPicksUpNewFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.py"), []byte("def run():\n    pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ix := indexer.New(root, nil)
	if _, err := ix.FullIndex(context.Background()); err != nil {
		t.Fatalf("FullIndex: %v", err)
	}

	w, err := New(ix, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	extraPath := filepath.Join(root, "extra.py")
	if err := os.WriteFile(extraPath, []byte("def another():\n    pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, 2*time.Second, func() bool {
		idx := ix.Store.Load()
		if idx == nil {
			return false
		}
		_, ok := idx.FileByPath(extraPath)
		return ok
	})
}

func TestWatcherDropsDeletedFile(t *testing.T) {
	root := t.TempDir()
	mainPath := filepath.Join(root, "main.py")
	if err := os.WriteFile(mainPath, []byte("def run():\n    pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ix := indexer.New(root, nil)
	if _, err := ix.FullIndex(context.Background()); err != nil {
		t.Fatalf("FullIndex: %v", err)
	}

	w, err := New(ix, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.Remove(mainPath); err != nil {
		t.Fatal(err)
	}

	waitFor(t, 2*time.Second, func() bool {
		idx := ix.Store.Load()
		if idx == nil {
			return false
		}
		_, ok := idx.FileByPath(mainPath)
		return !ok
	})
}
