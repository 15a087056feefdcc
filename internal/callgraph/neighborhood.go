package callgraph

import (
	"sort"
	"strings"

	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/queryerr"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// ResolveSymbolRef resolves a "file:name" or bare "name" symbol reference
// to a callable Definition, applying spec.md §4.7's tie-break rules: an
// exact file:name ref must match that file; a name-only ref prefers the
// candidate with the highest call-graph in-degree, breaking further ties
// by shorter file path.
func ResolveSymbolRef(idx *project.Index, symbolRef string) (scopegraph.DefID, *queryerr.Error) {
	file, name := splitSymbolRef(symbolRef)
	candidates := findCallableDefs(idx, name, file)
	if len(candidates) == 0 {
		return scopegraph.DefID{}, queryerr.NotFound("symbol " + symbolRef)
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if file != "" {
		// file:name was given but matched more than one Definition sharing
		// that name in the same file (e.g. overload-style redeclaration) —
		// no further tie-break rule applies.
		return scopegraph.DefID{}, queryerr.AmbiguousSymbol(symbolRef)
	}

	edges := callEdges(idx)
	sort.SliceStable(candidates, func(i, j int) bool {
		di := inDegree(edges, candidates[i])
		dj := inDegree(edges, candidates[j])
		if di != dj {
			return di > dj
		}
		pi, _ := idx.File(candidates[i].File)
		pj, _ := idx.File(candidates[j].File)
		return len(pi.File.Path) < len(pj.File.Path)
	})
	return candidates[0], nil
}

func splitSymbolRef(ref string) (file, name string) {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

func findCallableDefs(idx *project.Index, name, file string) []scopegraph.DefID {
	var out []scopegraph.DefID
	for _, fid := range idx.Files() {
		g, ok := idx.File(fid)
		if !ok {
			continue
		}
		if file != "" && g.File.Path != file && !strings.HasSuffix(g.File.Path, "/"+file) {
			continue
		}
		for i := range g.Definitions {
			d := &g.Definitions[i]
			if d.Name == name && callableKinds[d.Kind] {
				out = append(out, d.ID)
			}
		}
	}
	return out
}

// ShowCallGraphNeighborhood resolves symbolRef and walks outward along
// CallEdges up to depth hops in both directions (callers and callees).
func ShowCallGraphNeighborhood(idx *project.Index, symbolRef string, depth int) ([]Node, []Edge, *queryerr.Error) {
	root, err := ResolveSymbolRef(idx, symbolRef)
	if err != nil {
		return nil, nil, err
	}

	edges := callEdges(idx)
	visited := map[scopegraph.DefID]bool{root: true}
	frontier := []scopegraph.DefID{root}
	seenEdge := map[scopegraph.RefID]bool{}
	var resultEdges []scopegraph.CallEdge

	for d := 0; d < depth && len(frontier) > 0; d++ {
		var next []scopegraph.DefID
		for _, id := range frontier {
			for _, e := range edges {
				var neighbor scopegraph.DefID
				switch id {
				case e.Caller:
					neighbor = e.Callee
				case e.Callee:
					neighbor = e.Caller
				default:
					continue
				}
				if !seenEdge[e.CallSite] {
					seenEdge[e.CallSite] = true
					resultEdges = append(resultEdges, e)
				}
				if !visited[neighbor] {
					visited[neighbor] = true
					next = append(next, neighbor)
				}
			}
		}
		frontier = next
	}

	nodes := make([]Node, 0, len(visited))
	for id := range visited {
		if n, ok := toNode(idx, id); ok {
			nodes = append(nodes, n)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })

	out := make([]Edge, 0, len(resultEdges))
	for _, e := range resultEdges {
		site, ok := idx.Reference(e.CallSite)
		if !ok {
			continue
		}
		out = append(out, Edge{Caller: e.Caller, Callee: e.Callee, CallSite: site.Range})
	}
	return nodes, out, nil
}
