// Package mcptools exposes the two query operations in internal/queryapi as
// MCP tools, and a CLI-mode CallTool path that bypasses MCP transport
// entirely — same shape as the teacher's internal/tools package, minus
// everything that package does beyond list_entrypoints and
// show_call_graph_neighborhood.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ariadnehq/ariadne/internal/indexer"
	"github.com/ariadnehq/ariadne/internal/queryapi"
)

// Version is the current release version, reported at MCP handshake.
const Version = "0.1.0"

// Server wraps the MCP server with Ariadne's query tool handlers.
type Server struct {
	mcp      *mcp.Server
	indexer  *indexer.Indexer
	handlers map[string]mcp.ToolHandler
}

// NewServer creates an MCP server with both query tools registered,
// answering against ix's most recently published snapshot.
func NewServer(ix *indexer.Indexer) *Server {
	srv := &Server{
		indexer:  ix,
		handlers: make(map[string]mcp.ToolHandler),
	}
	srv.mcp = mcp.NewServer(
		&mcp.Implementation{Name: "ariadne", Version: Version},
		nil,
	)
	srv.registerTools()
	return srv
}

// MCPServer returns the underlying MCP server, for Run(ctx, transport).
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// ToolNames returns all registered tool names in sorted order.
func (s *Server) ToolNames() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallTool invokes a tool handler directly by name, bypassing MCP
// transport — used by the ariadne CLI's query subcommands.
func (s *Server) CallTool(ctx context.Context, name string, argsJSON json.RawMessage) (*mcp.CallToolResult, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	if len(argsJSON) == 0 {
		argsJSON = json.RawMessage(`{}`)
	}
	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Name: name, Arguments: argsJSON},
	}
	return handler(ctx, req)
}

func (s *Server) addTool(tool *mcp.Tool, handler mcp.ToolHandler) {
	s.mcp.AddTool(tool, handler)
	s.handlers[tool.Name] = handler
}

func (s *Server) registerTools() {
	s.addTool(&mcp.Tool{
		Name:        "list_entrypoints",
		Description: "List every callable definition with no incoming call-graph edge: functions and methods nothing in the index calls. Test-named functions are excluded unless include_tests is set. Scope to specific files or folders to narrow the result.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"files": {
					"type": "array",
					"items": {"type": "string"},
					"description": "Restrict results to these file paths."
				},
				"folders": {
					"type": "array",
					"items": {"type": "string"},
					"description": "Restrict results to files under these folder prefixes."
				},
				"include_tests": {
					"type": "boolean",
					"description": "Include functions that look like tests (default false)."
				}
			}
		}`),
	}, s.handleListEntrypoints)

	s.addTool(&mcp.Tool{
		Name:        "show_call_graph_neighborhood",
		Description: "Show the callers and callees of a symbol out to a given depth. symbol_ref is either 'name' or 'file:name'; when ambiguous by name alone, the definition with the most incoming calls wins, with shortest file path as the tie-break.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"symbol_ref": {
					"type": "string",
					"description": "Symbol to center the neighborhood on, as 'name' or 'file:name'."
				},
				"depth": {
					"type": "integer",
					"description": "Maximum BFS hops in either direction (default 1)."
				}
			},
			"required": ["symbol_ref"]
		}`),
	}, s.handleShowCallGraphNeighborhood)
}

func (s *Server) handleListEntrypoints(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var q queryapi.ListEntrypointsRequest
	if err := unmarshalArgs(req, &q); err != nil {
		return errResult(err.Error()), nil
	}

	idx := s.indexer.Store.Load()
	if idx == nil {
		return errResult("project has not been indexed yet"), nil
	}

	resp, qerr := queryapi.ListEntrypoints(idx, q)
	if qerr != nil {
		return errResult(qerr.Error()), nil
	}
	return jsonResult(resp), nil
}

func (s *Server) handleShowCallGraphNeighborhood(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var q queryapi.ShowCallGraphNeighborhoodRequest
	if err := unmarshalArgs(req, &q); err != nil {
		return errResult(err.Error()), nil
	}
	if q.SymbolRef == "" {
		return errResult("symbol_ref is required"), nil
	}

	idx := s.indexer.Store.Load()
	if idx == nil {
		return errResult("project has not been indexed yet"), nil
	}

	resp, qerr := queryapi.ShowCallGraphNeighborhood(idx, q)
	if qerr != nil {
		return errResult(qerr.Error()), nil
	}
	return jsonResult(resp), nil
}

func unmarshalArgs(req *mcp.CallToolRequest, dst any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, dst); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func jsonResult(data any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errResult("json marshal err=" + err.Error())
	}
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: string(b)}}}
}

func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}
