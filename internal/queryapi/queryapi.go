// Package queryapi defines the request/response wire types for Ariadne's
// two query-facing operations, shared by cmd/ariadne-mcp's tool handlers
// and cmd/ariadne's one-shot CLI mode.
package queryapi

import "github.com/ariadnehq/ariadne/internal/scopegraph"

// ListEntrypointsRequest filters which files/folders to scan; both empty
// means the whole project.
type ListEntrypointsRequest struct {
	Files        []string `json:"files,omitempty"`
	Folders      []string `json:"folders,omitempty"`
	IncludeTests bool     `json:"include_tests,omitempty"`
}

// EntrypointInfo is one entry in a ListEntrypointsResponse.
type EntrypointInfo struct {
	File    string          `json:"file"`
	Name    string          `json:"name"`
	Range   scopegraph.Range `json:"range"`
	Excerpt string          `json:"excerpt"`
}

// ListEntrypointsResponse is the result of list_entrypoints.
type ListEntrypointsResponse struct {
	Entrypoints []EntrypointInfo `json:"entrypoints"`
}

// ShowCallGraphNeighborhoodRequest names a symbol as either "file:name" or
// a bare name, and how many BFS hops to walk in both directions.
type ShowCallGraphNeighborhoodRequest struct {
	SymbolRef string `json:"symbol_ref"`
	Depth     int    `json:"depth,omitempty"`
}

// NodeInfo is one node in a neighborhood result.
type NodeInfo struct {
	File    string          `json:"file"`
	Name    string          `json:"name"`
	Range   scopegraph.Range `json:"range"`
	Excerpt string          `json:"excerpt"`
}

// EdgeInfo is one call edge in a neighborhood result, with its call-site
// location.
type EdgeInfo struct {
	Caller   string          `json:"caller"`
	Callee   string          `json:"callee"`
	CallSite scopegraph.Range `json:"call_site"`
}

// ShowCallGraphNeighborhoodResponse is the result of
// show_call_graph_neighborhood.
type ShowCallGraphNeighborhoodResponse struct {
	Nodes []NodeInfo `json:"nodes"`
	Edges []EdgeInfo `json:"edges"`
}
