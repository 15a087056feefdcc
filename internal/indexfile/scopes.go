package indexfile

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/querypack"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

func kindIn(kind string, set []string) bool {
	for _, s := range set {
		if s == kind {
			return true
		}
	}
	return false
}

// classifyScope maps a matched node's tree-sitter kind to the fixed set of
// ScopeKinds, most specific first. Order matters where a grammar reuses
// one node kind for more than one spec list (rare, but Block is the
// catch-all so it's checked last).
func classifyScope(spec *langspec.Spec, kind string) (langspec.ScopeKind, bool) {
	switch {
	case kindIn(kind, spec.ModuleNodeTypes):
		return langspec.ScopeModule, true
	case kindIn(kind, spec.ComprehensionNodeTypes):
		return langspec.ScopeComprehension, true
	case kindIn(kind, spec.ClassNodeTypes):
		return langspec.ScopeClass, true
	case kindIn(kind, spec.FunctionNodeTypes):
		return langspec.ScopeFunction, true
	case kindIn(kind, spec.BlockNodeTypes):
		return langspec.ScopeBlock, true
	default:
		return 0, false
	}
}

// buildScopes walks every node the scopes query matched (already in
// document order, so a scope's textual parent is always visited before
// it) and registers a scopegraph.Scope under its nearest already-known
// enclosing scope.
func buildScopes(g *scopegraph.Graph, pack *querypack.Pack, spec *langspec.Spec, root *tree_sitter.Node, source []byte, ranges *scopeRanges) {
	matches := querypack.Matches(pack.Scopes, root, source)
	rootKey := rangeKey(root)

	for _, n := range matches {
		if rangeKey(n) == rootKey {
			continue // the module root scope already exists from NewGraph
		}
		kind, ok := classifyScope(spec, n.Kind())
		if !ok {
			continue
		}
		parent := ranges.enclosing(n, g.RootScope())
		id := g.AddScope(parent, kind, rangeOf(n))
		ranges.set(rangeKey(n), id)
	}
}
