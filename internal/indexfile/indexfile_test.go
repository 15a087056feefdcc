package indexfile

import (
	"testing"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

func defNamed(g *scopegraph.Graph, name string) (*scopegraph.Definition, bool) {
	for i := range g.Definitions {
		if g.Definitions[i].Name == name {
			return &g.Definitions[i], true
		}
	}
	return nil, false
}

func refNamed(g *scopegraph.Graph, name string) []*scopegraph.Reference {
	var out []*scopegraph.Reference
	for i := range g.References {
		if g.References[i].Name == name {
			out = append(out, &g.References[i])
		}
	}
	return out
}

func resolvedTarget(g *scopegraph.Graph, ref scopegraph.RefID) (scopegraph.DefID, bool) {
	for _, e := range g.Resolved {
		if e.Source == ref && len(e.Targets) == 1 {
			return e.Targets[0], true
		}
	}
	return scopegraph.DefID{}, false
}

func TestIntraFileCall(t *testing.T) {
	src := []byte("def helper():\n    pass\n\ndef caller():\n    helper()\n")
	res := Index(nil, 1, "scenario1.py", src, langspec.Python)
	g := res.Graph

	helper, ok := defNamed(g, "helper")
	if !ok {
		t.Fatal("helper definition not found")
	}
	refs := refNamed(g, "helper")
	if len(refs) == 0 {
		t.Fatal("no reference to helper found")
	}

	var callRef *scopegraph.Reference
	for _, r := range refs {
		if r.Usage == scopegraph.UsageCall {
			callRef = r
		}
	}
	if callRef == nil {
		t.Fatal("no call-usage reference to helper found")
	}

	target, ok := resolvedTarget(g, callRef.ID)
	if !ok {
		t.Fatal("helper() call did not resolve")
	}
	if target != helper.ID {
		t.Errorf("resolved target = %v, want %v", target, helper.ID)
	}
}

func TestShadowingImportThenLocalDefinition(t *testing.T) {
	src := []byte("from utils import helper\n\ndef helper():\n    pass\n\nhelper()\n")
	res := Index(nil, 1, "scenario3.py", src, langspec.Python)
	g := res.Graph

	localHelper, ok := defNamed(g, "helper")
	if !ok {
		t.Fatal("local helper definition not found")
	}
	// There should be two definitions named "helper": the import binding
	// and the local function. The later one (the function) must win.
	count := 0
	for i := range g.Definitions {
		if g.Definitions[i].Name == "helper" {
			count++
		}
	}
	if count < 2 {
		t.Fatalf("expected at least 2 definitions named helper (import + local), got %d", count)
	}

	refs := refNamed(g, "helper")
	var callRef *scopegraph.Reference
	for _, r := range refs {
		if r.Usage == scopegraph.UsageCall {
			callRef = r
		}
	}
	if callRef == nil {
		t.Fatal("no call reference to helper found")
	}
	target, ok := resolvedTarget(g, callRef.ID)
	if !ok {
		t.Fatal("helper() did not resolve")
	}
	if target != localHelper.ID {
		t.Errorf("helper() resolved to %v, want local definition %v", target, localHelper.ID)
	}
}

func TestParseErrorDowngradesToPartialGraph(t *testing.T) {
	src := []byte("def broken(:\n")
	res := Index(nil, 1, "broken.py", src, langspec.Python)
	if res.Graph == nil {
		t.Fatal("expected a non-nil graph even for malformed source")
	}
	if !res.Graph.File.HasParseErrors {
		t.Errorf("expected HasParseErrors=true for malformed source")
	}
}

func TestUnsupportedLanguageYieldsEmptyGraph(t *testing.T) {
	res := Index(nil, 1, "mystery.xyz", []byte("whatever"), langspec.Language("xyz-lang"))
	if res.Graph == nil {
		t.Fatal("expected non-nil graph for unsupported language")
	}
	if len(res.Graph.Definitions) != 0 {
		t.Errorf("expected no definitions for unsupported language, got %d", len(res.Graph.Definitions))
	}
}

func TestGoImportBindingAndSelectorCall(t *testing.T) {
	src := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n")
	res := Index(nil, 1, "main.go", src, langspec.Go)
	g := res.Graph

	if _, ok := defNamed(g, "fmt"); !ok {
		t.Fatal("expected an import-binding definition named fmt")
	}

	refs := refNamed(g, "Println")
	if len(refs) == 0 {
		t.Fatal("expected a reference to Println")
	}
}

func TestByteIdenticalReindexIsStable(t *testing.T) {
	src := []byte("def a():\n    pass\n")
	g1 := Index(nil, 1, "stable.py", src, langspec.Python).Graph
	g2 := Index(nil, 1, "stable.py", src, langspec.Python).Graph

	if len(g1.Definitions) != len(g2.Definitions) || len(g1.References) != len(g2.References) {
		t.Fatalf("re-indexing identical content produced different shapes: defs %d vs %d, refs %d vs %d",
			len(g1.Definitions), len(g2.Definitions), len(g1.References), len(g2.References))
	}
	if g1.File.ContentHash != g2.File.ContentHash {
		t.Errorf("content hash differs across identical re-index")
	}
}
