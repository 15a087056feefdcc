package queryapi

import (
	"testing"

	"github.com/ariadnehq/ariadne/internal/indexfile"
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/queryerr"
)

func buildIndex(t *testing.T) *project.Index {
	t.Helper()
	b := project.NewBuilder("/proj", nil)
	id := b.AllocateFileID("/proj/a.py")
	src := "def helper():\n    pass\n\ndef main():\n    helper()\n"
	res := indexfile.Index(nil, id, "/proj/a.py", []byte(src), langspec.Python)
	b.Replace(res.Graph)
	return b.Build()
}

func TestListEntrypointsResponse(t *testing.T) {
	idx := buildIndex(t)
	resp, err := ListEntrypoints(idx, ListEntrypointsRequest{})
	if err != nil {
		t.Fatalf("ListEntrypoints: %v", err)
	}
	if len(resp.Entrypoints) != 1 || resp.Entrypoints[0].Name != "main" {
		t.Errorf("Entrypoints = %v, want just [main]", resp.Entrypoints)
	}
}

func TestShowCallGraphNeighborhoodDefaultsDepth(t *testing.T) {
	idx := buildIndex(t)
	resp, err := ShowCallGraphNeighborhood(idx, ShowCallGraphNeighborhoodRequest{SymbolRef: "main"})
	if err != nil {
		t.Fatalf("ShowCallGraphNeighborhood: %v", err)
	}
	if len(resp.Nodes) != 2 {
		t.Errorf("Nodes = %v, want 2", resp.Nodes)
	}
	if len(resp.Edges) != 1 || resp.Edges[0].Caller != "main" || resp.Edges[0].Callee != "helper" {
		t.Errorf("Edges = %v, want one main->helper edge", resp.Edges)
	}
}

func TestShowCallGraphNeighborhoodNotFound(t *testing.T) {
	idx := buildIndex(t)
	_, err := ShowCallGraphNeighborhood(idx, ShowCallGraphNeighborhoodRequest{SymbolRef: "missing"})
	if err == nil || !queryerr.Is(err, queryerr.KindNotFound) {
		t.Errorf("expected a not-found queryerr, got %v", err)
	}
}
