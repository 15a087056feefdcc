package queryapi

import (
	"github.com/ariadnehq/ariadne/internal/callgraph"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/queryerr"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// defaultDepth is used when a ShowCallGraphNeighborhoodRequest omits Depth.
const defaultDepth = 1

// ListEntrypoints runs the list_entrypoints operation against idx.
func ListEntrypoints(idx *project.Index, req ListEntrypointsRequest) (ListEntrypointsResponse, *queryerr.Error) {
	nodes, err := callgraph.ListEntrypoints(idx, req.Files, req.Folders, req.IncludeTests)
	if err != nil {
		return ListEntrypointsResponse{}, err
	}
	resp := ListEntrypointsResponse{Entrypoints: make([]EntrypointInfo, 0, len(nodes))}
	for _, n := range nodes {
		resp.Entrypoints = append(resp.Entrypoints, EntrypointInfo{
			File:    n.File,
			Name:    n.Name,
			Range:   n.Range,
			Excerpt: n.Excerpt,
		})
	}
	return resp, nil
}

// ShowCallGraphNeighborhood runs the show_call_graph_neighborhood operation
// against idx.
func ShowCallGraphNeighborhood(idx *project.Index, req ShowCallGraphNeighborhoodRequest) (ShowCallGraphNeighborhoodResponse, *queryerr.Error) {
	depth := req.Depth
	if depth <= 0 {
		depth = defaultDepth
	}
	nodes, edges, err := callgraph.ShowCallGraphNeighborhood(idx, req.SymbolRef, depth)
	if err != nil {
		return ShowCallGraphNeighborhoodResponse{}, err
	}

	resp := ShowCallGraphNeighborhoodResponse{
		Nodes: make([]NodeInfo, 0, len(nodes)),
		Edges: make([]EdgeInfo, 0, len(edges)),
	}
	for _, n := range nodes {
		resp.Nodes = append(resp.Nodes, NodeInfo{File: n.File, Name: n.Name, Range: n.Range, Excerpt: n.Excerpt})
	}
	for _, e := range edges {
		resp.Edges = append(resp.Edges, EdgeInfo{
			Caller:   defName(idx, e.Caller),
			Callee:   defName(idx, e.Callee),
			CallSite: e.CallSite,
		})
	}
	return resp, nil
}

func defName(idx *project.Index, id scopegraph.DefID) string {
	d, ok := idx.Definition(id)
	if !ok {
		return ""
	}
	return d.Name
}
