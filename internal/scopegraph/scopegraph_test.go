package scopegraph

import (
	"testing"

	"github.com/ariadnehq/ariadne/internal/langspec"
)

func newTestGraph() *Graph {
	f := File{ID: 1, Path: "main.py", Language: langspec.Python}
	return NewGraph(f, Range{StartByte: 0, EndByte: 10})
}

func TestNewGraphHasRootScope(t *testing.T) {
	g := newTestGraph()
	if len(g.Scopes) != 1 {
		t.Fatalf("expected 1 scope, got %d", len(g.Scopes))
	}
	root := g.RootScope()
	s, ok := g.Scope(root)
	if !ok {
		t.Fatal("root scope not found")
	}
	if s.Parent != nil {
		t.Errorf("root scope should have no parent, got %v", s.Parent)
	}
	if s.Kind != langspec.ScopeModule {
		t.Errorf("root scope kind = %v, want ScopeModule", s.Kind)
	}
}

func TestAddScopeTracksParent(t *testing.T) {
	g := newTestGraph()
	root := g.RootScope()
	fn := g.AddScope(root, langspec.ScopeFunction, Range{})
	s, ok := g.Scope(fn)
	if !ok {
		t.Fatal("function scope not found")
	}
	if s.Parent == nil || *s.Parent != root {
		t.Errorf("function scope parent = %v, want %v", s.Parent, root)
	}
}

func TestAddDefinitionAndLookup(t *testing.T) {
	g := newTestGraph()
	root := g.RootScope()
	id := g.AddDefinition(root, "helper", langspec.DefFunction, Range{}, "", true, VisibilityExported)
	d, ok := g.Definition(id)
	if !ok {
		t.Fatal("definition not found after AddDefinition")
	}
	if d.Name != "helper" || d.Kind != langspec.DefFunction {
		t.Errorf("unexpected definition: %+v", d)
	}
	if !d.Hoisted {
		t.Errorf("expected Hoisted true")
	}
}

func TestAddReferenceChain(t *testing.T) {
	g := newTestGraph()
	root := g.RootScope()
	a := g.AddReference(root, "a", UsageRead, Range{}, nil)
	b := g.AddReference(root, "b", UsageMemberAccess, Range{}, &a)

	ref, ok := g.Reference(b)
	if !ok {
		t.Fatal("reference b not found")
	}
	if ref.Receiver == nil || *ref.Receiver != a {
		t.Errorf("b.Receiver = %v, want %v", ref.Receiver, a)
	}
}

func TestDefinitionLookupCrossFileMiss(t *testing.T) {
	g := newTestGraph()
	other := DefID{File: 999, Local: 0}
	if _, ok := g.Definition(other); ok {
		t.Errorf("lookup for a different file's DefID should miss")
	}
}

func TestRangeExcerpt(t *testing.T) {
	source := []byte("def helper(): pass")
	r := Range{StartByte: 4, EndByte: 10}
	if got := r.Excerpt(source); got != "helper" {
		t.Errorf("Excerpt() = %q, want %q", got, "helper")
	}
	bad := Range{StartByte: 100, EndByte: 200}
	if got := bad.Excerpt(source); got != "" {
		t.Errorf("out-of-range Excerpt() = %q, want empty", got)
	}
}

func TestLocalIDsAreUniquePerEntityClass(t *testing.T) {
	g := newTestGraph()
	root := g.RootScope()
	def := g.AddDefinition(root, "x", langspec.DefVariable, Range{}, "", false, VisibilityUnknown)
	ref := g.AddReference(root, "x", UsageRead, Range{}, nil)
	if def.Local == ref.Local {
		t.Errorf("definition and reference unexpectedly share local id %d", def.Local)
	}
}
