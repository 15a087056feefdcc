package mcptools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ariadnehq/ariadne/internal/indexer"
)

func buildIndexer(t *testing.T) *indexer.Indexer {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.py"), []byte("def helper():\n    pass\n\ndef run():\n    helper()\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ix := indexer.New(root, nil)
	if _, err := ix.FullIndex(context.Background()); err != nil {
		t.Fatalf("FullIndex: %v", err)
	}
	return ix
}

func TestToolNamesSorted(t *testing.T) {
	srv := NewServer(buildIndexer(t))
	names := srv.ToolNames()
	if len(names) != 2 || names[0] != "list_entrypoints" || names[1] != "show_call_graph_neighborhood" {
		t.Fatalf("unexpected tool names: %v", names)
	}
}

func TestCallToolListEntrypoints(t *testing.T) {
	srv := NewServer(buildIndexer(t))
	result, err := srv.CallTool(context.Background(), "list_entrypoints", nil)
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result.Content)
	}
}

func TestCallToolShowCallGraphNeighborhoodRequiresSymbolRef(t *testing.T) {
	srv := NewServer(buildIndexer(t))
	result, err := srv.CallTool(context.Background(), "show_call_graph_neighborhood", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result for a missing symbol_ref")
	}
}

func TestCallToolUnknownName(t *testing.T) {
	srv := NewServer(buildIndexer(t))
	if _, err := srv.CallTool(context.Background(), "nonexistent", nil); err == nil {
		t.Fatal("expected an error for an unregistered tool name")
	}
}
