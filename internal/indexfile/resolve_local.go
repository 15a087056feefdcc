package indexfile

import "github.com/ariadnehq/ariadne/internal/scopegraph"

// resolveLocal implements spec.md §4.2's intra-file resolution: for each
// Reference, climb scopes outward until a same-named Definition is found
// whose source range precedes the reference, relaxed to "anywhere in
// scope" for hoisted kinds. The latest preceding definition in a scope
// wins (shadowing by reassignment), and climbing stops at the first
// scope with any match at all.
func resolveLocal(g *scopegraph.Graph) {
	defsByScope := make(map[scopegraph.ScopeID][]*scopegraph.Definition)
	for i := range g.Definitions {
		d := &g.Definitions[i]
		defsByScope[d.Scope] = append(defsByScope[d.Scope], d)
	}

	for i := range g.References {
		ref := &g.References[i]
		if target, ok := resolveInScopeChain(g, defsByScope, ref); ok {
			g.Resolved = append(g.Resolved, scopegraph.ResolvedEdge{
				Source:  ref.ID,
				Targets: []scopegraph.DefID{target},
				Quality: scopegraph.QualityExact,
			})
		}
	}
}

func resolveInScopeChain(g *scopegraph.Graph, defsByScope map[scopegraph.ScopeID][]*scopegraph.Definition, ref *scopegraph.Reference) (scopegraph.DefID, bool) {
	scope := ref.Scope
	for {
		if d, ok := bestMatchInScope(defsByScope[scope], ref); ok {
			return d.ID, true
		}
		s, ok := g.Scope(scope)
		if !ok || s.Parent == nil {
			return scopegraph.DefID{}, false
		}
		scope = *s.Parent
	}
}

// bestMatchInScope returns the latest preceding same-named Definition in
// this scope, or — if one of the matching kinds is hoisted — the latest
// same-named Definition regardless of position.
func bestMatchInScope(defs []*scopegraph.Definition, ref *scopegraph.Reference) (*scopegraph.Definition, bool) {
	var best *scopegraph.Definition
	for _, d := range defs {
		if d.Name != ref.Name {
			continue
		}
		visible := d.Hoisted || d.Range.StartByte <= ref.Range.StartByte
		if !visible {
			continue
		}
		if best == nil || d.Range.StartByte >= best.Range.StartByte {
			best = d
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}
