// Command ariadne-mcp serves Ariadne's query tools over the Model Context
// Protocol on stdio: index the project root once at startup, keep it fresh
// with a background file watcher, and answer list_entrypoints /
// show_call_graph_neighborhood calls against whatever snapshot is current.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ariadnehq/ariadne/internal/indexer"
	"github.com/ariadnehq/ariadne/internal/mcptools"
	"github.com/ariadnehq/ariadne/internal/watch"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("ariadne-mcp", version)
		return
	}

	root := os.Getenv("ARIADNE_ROOT")
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		root = wd
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ix := indexer.New(root, logger)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err := ix.FullIndex(ctx); err != nil {
		logger.Error("ariadne_mcp.initial_index_failed", "error", err)
		os.Exit(1)
	}

	w, err := watch.New(ix, logger)
	if err != nil {
		logger.Error("ariadne_mcp.watcher_init_failed", "error", err)
		os.Exit(1)
	}
	go w.Run(ctx)

	srv := mcptools.NewServer(ix)
	if err := srv.MCPServer().Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Error("ariadne_mcp.server_failed", "error", err)
		os.Exit(1)
	}
}
