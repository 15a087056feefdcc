package indexer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFullIndexResolvesCrossFileImport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "utils.py"), "def helper():\n    pass\n")
	writeFile(t, filepath.Join(root, "main.py"), "from utils import helper\n\ndef run():\n    helper()\n")

	ix := New(root, nil)
	idx, err := ix.FullIndex(context.Background())
	if err != nil {
		t.Fatalf("FullIndex: %v", err)
	}

	mainID, ok := idx.FileByPath(filepath.Join(root, "main.py"))
	if !ok {
		t.Fatal("main.py not indexed")
	}
	g, _ := idx.File(mainID)
	found := false
	for i := range g.References {
		if g.References[i].Name != "helper" {
			continue
		}
		found = true
		if _, ok := idx.Edge(g.References[i].ID); !ok {
			t.Error("helper() call did not resolve across files")
		}
	}
	if !found {
		t.Fatal("no reference to helper found in main.py")
	}
}

func TestReindexBatchPicksUpNewFile(t *testing.T) {
	root := t.TempDir()
	mainPath := filepath.Join(root, "main.py")
	writeFile(t, mainPath, "def run():\n    pass\n")

	ix := New(root, nil)
	if _, err := ix.FullIndex(context.Background()); err != nil {
		t.Fatalf("FullIndex: %v", err)
	}

	extraPath := filepath.Join(root, "extra.py")
	writeFile(t, extraPath, "def another():\n    pass\n")

	idx, err := ix.ReindexBatch(context.Background(), []string{extraPath}, nil)
	if err != nil {
		t.Fatalf("ReindexBatch: %v", err)
	}
	if _, ok := idx.FileByPath(extraPath); !ok {
		t.Error("extra.py not present after incremental reindex")
	}
	if _, ok := idx.FileByPath(mainPath); !ok {
		t.Error("main.py lost after incremental reindex")
	}
}

func TestReindexBatchDropsRemovedFile(t *testing.T) {
	root := t.TempDir()
	mainPath := filepath.Join(root, "main.py")
	writeFile(t, mainPath, "def run():\n    pass\n")

	ix := New(root, nil)
	if _, err := ix.FullIndex(context.Background()); err != nil {
		t.Fatalf("FullIndex: %v", err)
	}
	os.Remove(mainPath)

	idx, err := ix.ReindexBatch(context.Background(), nil, []string{mainPath})
	if err != nil {
		t.Fatalf("ReindexBatch: %v", err)
	}
	if _, ok := idx.FileByPath(mainPath); ok {
		t.Error("main.py still present after removal batch")
	}
}
