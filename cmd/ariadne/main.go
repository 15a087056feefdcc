// Command ariadne is the project-initialisation entry point: index a root
// path once, optionally keep watching it, and expose the two query
// operations for scripting without going through MCP.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/ariadnehq/ariadne/internal/indexer"
	"github.com/ariadnehq/ariadne/internal/mcptools"
	"github.com/ariadnehq/ariadne/internal/watch"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		noWatch      bool
		includeTests bool
	)

	root := &cobra.Command{
		Use:     "ariadne [path]",
		Short:   "Index a codebase and answer call-graph queries",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot := "."
			if len(args) == 1 {
				projectRoot = args[0]
			}
			return runIndex(cmd.Context(), projectRoot, noWatch, includeTests)
		},
	}
	root.PersistentFlags().BoolVar(&noWatch, "no-watch", false, "index once and exit instead of watching for changes")
	root.PersistentFlags().BoolVar(&includeTests, "include-tests", false, "include test-named functions in list_entrypoints")

	root.AddCommand(newListEntrypointsCmd(&includeTests))
	root.AddCommand(newShowNeighborhoodCmd())
	return root
}

func runIndex(parentCtx context.Context, projectRoot string, noWatch, includeTests bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ix := indexer.New(projectRoot, logger)
	idx, err := ix.FullIndex(ctx)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	fmt.Printf("indexed %s: %d file(s)\n", projectRoot, len(idx.Files()))

	if noWatch {
		return nil
	}

	w, err := watch.New(ix, logger)
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	fmt.Println("watching for changes, press ctrl-c to stop")
	w.Run(ctx)
	return nil
}

// newListEntrypointsCmd and newShowNeighborhoodCmd wrap mcptools.Server's
// CallTool path so the CLI and the MCP server answer queries identically —
// each subcommand runs its own one-shot FullIndex rather than sharing state
// with a running `ariadne` watch process.
func newListEntrypointsCmd(includeTests *bool) *cobra.Command {
	var files, folders []string
	cmd := &cobra.Command{
		Use:   "list-entrypoints [path]",
		Short: "List callable definitions nothing in the index calls",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot := "."
			if len(args) == 1 {
				projectRoot = args[0]
			}
			argsJSON, err := json.Marshal(map[string]any{
				"files":         files,
				"folders":       folders,
				"include_tests": *includeTests,
			})
			if err != nil {
				return err
			}
			return callAndPrint(cmd.Context(), projectRoot, "list_entrypoints", argsJSON)
		},
	}
	cmd.Flags().StringSliceVar(&files, "file", nil, "restrict to this file (repeatable)")
	cmd.Flags().StringSliceVar(&folders, "folder", nil, "restrict to files under this folder (repeatable)")
	return cmd
}

func newShowNeighborhoodCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "show-neighborhood <symbol-ref> [path]",
		Short: "Show the callers and callees of a symbol",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot := "."
			if len(args) == 2 {
				projectRoot = args[1]
			}
			argsJSON, err := json.Marshal(map[string]any{
				"symbol_ref": args[0],
				"depth":      depth,
			})
			if err != nil {
				return err
			}
			return callAndPrint(cmd.Context(), projectRoot, "show_call_graph_neighborhood", argsJSON)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 1, "maximum BFS hops in either direction")
	return cmd
}

func callAndPrint(parentCtx context.Context, projectRoot, toolName string, argsJSON json.RawMessage) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ix := indexer.New(projectRoot, logger)
	if _, err := ix.FullIndex(parentCtx); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	srv := mcptools.NewServer(ix)
	result, err := srv.CallTool(parentCtx, toolName, argsJSON)
	if err != nil {
		return err
	}
	for _, c := range result.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			if result.IsError {
				fmt.Fprintln(os.Stderr, tc.Text)
				return fmt.Errorf("%s failed", toolName)
			}
			fmt.Println(tc.Text)
			return nil
		}
	}
	return nil
}
