package resolve

import (
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// maxProxyDepth bounds re-export chain following (`a` re-exports from `b`
// which re-exports from `c` ...) so an accidental import cycle can't spin
// the resolver forever.
const maxProxyDepth = 8

// ResolveReferences is spec.md §4.5: for a reference that resolved locally
// to an import-binding Definition, chase ProxyTarget through to the real
// Definition it ultimately names; for `ns.attr` member access through a
// namespace import, look the member up in the target file's export table;
// for a reference that didn't resolve to anything locally at all, fall
// back to each wildcard import in declaration order.
func ResolveReferences(b *project.Builder, idx *project.Index) {
	for _, id := range idx.Files() {
		g, ok := idx.File(id)
		if !ok {
			continue
		}
		resolveFileReferences(b, idx, g)
	}
}

func resolveFileReferences(b *project.Builder, idx *project.Index, g *scopegraph.Graph) {
	localTarget := make(map[scopegraph.RefID]scopegraph.DefID, len(g.Resolved))
	for _, e := range g.Resolved {
		if len(e.Targets) == 1 {
			localTarget[e.Source] = e.Targets[0]
		}
	}

	for i := range g.References {
		ref := &g.References[i]

		if ref.Receiver != nil {
			if target, ok := resolveNamespaceMember(idx, g, localTarget, ref); ok {
				b.AddResolvedEdge(scopegraph.ResolvedEdge{Source: ref.ID, Targets: []scopegraph.DefID{target}, Quality: scopegraph.QualityExact})
				continue
			}
		}

		if defID, ok := localTarget[ref.ID]; ok {
			if final := chaseProxy(idx, defID); final != defID {
				b.AddResolvedEdge(scopegraph.ResolvedEdge{Source: ref.ID, Targets: []scopegraph.DefID{final}, Quality: scopegraph.QualityExact})
			}
			continue
		}

		if target, ok := resolveViaWildcard(idx, g, ref.Name); ok {
			b.AddResolvedEdge(scopegraph.ResolvedEdge{Source: ref.ID, Targets: []scopegraph.DefID{target}, Quality: scopegraph.QualityHeuristic})
		}
	}
}

// chaseProxy follows ProxyTarget links from defID and returns the last
// Definition reached that is present in idx. A chain still on a proxy after
// maxProxyDepth hops (a re-export loop or an over-long chain) returns defID
// unchanged, so the reference keeps only its local edge to the binding.
func chaseProxy(idx *project.Index, defID scopegraph.DefID) scopegraph.DefID {
	start := defID
	for depth := 0; depth < maxProxyDepth; depth++ {
		d, ok := idx.Definition(defID)
		if !ok || d.Kind != langspec.DefImportBinding || d.ProxyTarget == nil {
			return defID
		}
		next := *d.ProxyTarget
		if _, ok := idx.Definition(next); !ok {
			return defID
		}
		defID = next
	}
	if d, ok := idx.Definition(defID); ok && d.Kind == langspec.DefImportBinding && d.ProxyTarget != nil {
		return start
	}
	return defID
}

func resolveNamespaceMember(idx *project.Index, g *scopegraph.Graph, localTarget map[scopegraph.RefID]scopegraph.DefID, ref *scopegraph.Reference) (scopegraph.DefID, bool) {
	recvDefID, ok := localTarget[*ref.Receiver]
	if !ok {
		return scopegraph.DefID{}, false
	}
	d, ok := idx.Definition(recvDefID)
	if !ok || d.Kind != langspec.DefImportBinding {
		return scopegraph.DefID{}, false
	}
	imp := findImportOwning(g, recvDefID)
	if imp == nil || imp.Style != scopegraph.ImportNamespace || imp.TargetFile == nil {
		return scopegraph.DefID{}, false
	}
	return idx.Export(*imp.TargetFile, ref.Name)
}

func findImportOwning(g *scopegraph.Graph, defID scopegraph.DefID) *scopegraph.ImportStatement {
	for i := range g.Imports {
		for _, binding := range g.Imports[i].Bindings {
			if binding.DefID == defID {
				return &g.Imports[i]
			}
		}
	}
	return nil
}

func resolveViaWildcard(idx *project.Index, g *scopegraph.Graph, name string) (scopegraph.DefID, bool) {
	for i := range g.Imports {
		imp := &g.Imports[i]
		if imp.Style != scopegraph.ImportWildcard || imp.TargetFile == nil {
			continue
		}
		if defID, ok := idx.Export(*imp.TargetFile, name); ok {
			return defID, true
		}
	}
	return scopegraph.DefID{}, false
}
