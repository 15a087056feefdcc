// Package callgraph implements the two read-only query operations over a
// published project.Index: listing entrypoints and walking a symbol's
// call-graph neighborhood. Both are pure functions over an immutable
// snapshot — no locking, no disk access, grounded on the teacher's
// reader-thread discipline (internal/store never blocks a query on the
// indexing executor).
package callgraph

import (
	"strings"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/queryerr"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// callableKinds are the Definition kinds list_entrypoints and the
// neighborhood walk treat as call-graph nodes.
var callableKinds = map[langspec.DefKind]bool{
	langspec.DefFunction:     true,
	langspec.DefMethod:       true,
	langspec.DefStaticMethod: true,
	langspec.DefClassMethod:  true,
}

// testNamePrefixes/testNameSuffixes are the common cross-language
// test-function naming conventions list_entrypoints excludes by default.
var (
	testNamePrefixes = []string{"test_", "Test", "test"}
	testNameSuffixes = []string{"_test", "Test", "Spec", "_spec"}
)

func looksLikeTest(name string) bool {
	for _, p := range testNamePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	for _, s := range testNameSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// Node is one entry in a neighborhood or entrypoint result: a callable
// Definition plus its source excerpt.
type Node struct {
	Def     scopegraph.DefID
	File    string
	Name    string
	Range   scopegraph.Range
	Excerpt string
}

// Edge is one call-graph edge with its call-site location.
type Edge struct {
	Caller   scopegraph.DefID
	Callee   scopegraph.DefID
	CallSite scopegraph.Range
}

// callEdges derives every CallEdge from idx's resolved edges: a
// ResolvedEdge whose source Reference has UsageCall contributes one
// CallEdge per target (a QualityPolymorphicSet edge fans out to one edge
// per implementer).
func callEdges(idx *project.Index) []scopegraph.CallEdge {
	var out []scopegraph.CallEdge
	for _, e := range idx.AllEdges() {
		ref, ok := idx.Reference(e.Source)
		if !ok || ref.Usage != scopegraph.UsageCall {
			continue
		}
		caller, ok := enclosingCallable(idx, e.Source)
		if !ok {
			continue
		}
		for _, callee := range e.Targets {
			out = append(out, scopegraph.CallEdge{Caller: caller, Callee: callee, CallSite: e.Source})
		}
	}
	return out
}

// enclosingCallable finds the callable Definition whose range contains the
// Reference's call site, the call graph's notion of "who made this call".
func enclosingCallable(idx *project.Index, ref scopegraph.RefID) (scopegraph.DefID, bool) {
	r, ok := idx.Reference(ref)
	if !ok {
		return scopegraph.DefID{}, false
	}
	g, ok := idx.File(ref.File)
	if !ok {
		return scopegraph.DefID{}, false
	}
	var best *scopegraph.Definition
	for i := range g.Definitions {
		d := &g.Definitions[i]
		if !callableKinds[d.Kind] {
			continue
		}
		if d.Range.StartByte > r.Range.StartByte || d.Range.EndByte < r.Range.EndByte {
			continue
		}
		if best == nil || (d.Range.EndByte-d.Range.StartByte) < (best.Range.EndByte-best.Range.StartByte) {
			best = d
		}
	}
	if best == nil {
		return scopegraph.DefID{}, false
	}
	return best.ID, true
}

func inDegree(edges []scopegraph.CallEdge, target scopegraph.DefID) int {
	n := 0
	for _, e := range edges {
		if e.Callee == target {
			n++
		}
	}
	return n
}

func toNode(idx *project.Index, id scopegraph.DefID) (Node, bool) {
	d, ok := idx.Definition(id)
	if !ok {
		return Node{}, false
	}
	g, ok := idx.File(id.File)
	if !ok {
		return Node{}, false
	}
	return Node{
		Def:     id,
		File:    g.File.Path,
		Name:    d.Name,
		Range:   d.Range,
		Excerpt: d.Range.Excerpt(g.File.Source),
	}, true
}

// ListEntrypoints returns every callable Definition within files/folders
// (all indexed files when both are empty) that has zero incoming
// call-graph edges — spec.md §8 invariant 5. Test-suite-named definitions
// are excluded unless includeTests is set.
func ListEntrypoints(idx *project.Index, files, folders []string, includeTests bool) ([]Node, *queryerr.Error) {
	edges := callEdges(idx)
	var out []Node
	for _, fid := range idx.Files() {
		g, ok := idx.File(fid)
		if !ok {
			continue
		}
		if !inScope(g.File.Path, files, folders) {
			continue
		}
		for i := range g.Definitions {
			d := &g.Definitions[i]
			if !callableKinds[d.Kind] {
				continue
			}
			if !includeTests && looksLikeTest(d.Name) {
				continue
			}
			if inDegree(edges, d.ID) > 0 {
				continue
			}
			if n, ok := toNode(idx, d.ID); ok {
				out = append(out, n)
			}
		}
	}
	return out, nil
}

func inScope(path string, files, folders []string) bool {
	if len(files) == 0 && len(folders) == 0 {
		return true
	}
	for _, f := range files {
		if path == f || strings.HasSuffix(path, "/"+f) {
			return true
		}
	}
	for _, f := range folders {
		prefix := strings.TrimSuffix(f, "/") + "/"
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
