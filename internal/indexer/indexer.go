// Package indexer orchestrates a full cold index and incremental
// re-indexing batches: discover files, parse+build local scope graphs in
// parallel (stage 4.2), then run the project-wide passes serially
// (stages 4.3-4.6) and publish the result. Grounded on the teacher's
// Pipeline.Run/passDefinitions split between a parallel parse stage and a
// sequential aggregation stage.
package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ariadnehq/ariadne/internal/discover"
	"github.com/ariadnehq/ariadne/internal/indexfile"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/resolve"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
	"github.com/ariadnehq/ariadne/internal/typeinfer"
)

// Indexer owns one project's root path and the builder that accumulates
// its index across batches.
type Indexer struct {
	Root    string
	Logger  *slog.Logger
	Builder *project.Builder
	Store   *project.Store
}

// New creates an Indexer for root with an empty project index.
func New(root string, logger *slog.Logger) *Indexer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Indexer{
		Root:    root,
		Logger:  logger,
		Builder: project.NewBuilder(root, nil),
		Store:   project.NewStore(),
	}
}

// parsedFile is the output of stage 4.2 for one discovered file, produced
// with no shared state so every file can be indexed concurrently.
type parsedFile struct {
	info discover.FileInfo
	id   scopegraph.FileID
	res  *indexfile.Result
}

// FullIndex discovers every file under ix.Root, indexes each one in
// parallel, runs the project-wide resolution passes, and publishes the
// resulting snapshot.
func (ix *Indexer) FullIndex(ctx context.Context) (*project.Index, error) {
	files, err := discover.Walk(ctx, ix.Root, nil)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	ix.Logger.Info("indexer.discovered", "root", ix.Root, "files", len(files))

	parsed, err := ix.parseAll(ctx, files)
	if err != nil {
		return nil, err
	}

	for _, pf := range parsed {
		ix.Builder.Replace(pf.res.Graph)
	}

	idx := ix.resolveAll()
	ix.Store.Publish(idx)
	return idx, nil
}

// parseAll runs stage 4.2 (parse + build local scope graph) for every file
// concurrently, capped at runtime.NumCPU() workers. FileIDs are reserved from the
// builder serially before any worker starts; each worker then only reads
// its own pre-allocated ID and writes to its own results slot, so no
// further synchronization is needed until the results are merged into the
// builder sequentially.
func (ix *Indexer) parseAll(ctx context.Context, files []discover.FileInfo) ([]*parsedFile, error) {
	results := make([]*parsedFile, len(files))
	numWorkers := runtime.NumCPU()
	if numWorkers > len(files) {
		numWorkers = len(files)
	}
	if numWorkers == 0 {
		return results, nil
	}

	// project.Builder documents a single-writer contract, so every FileID
	// is reserved here, serially, before any parse goroutine starts —
	// the goroutines below only ever read their own pre-allocated entry.
	fileIDs := make([]scopegraph.FileID, len(files))
	for i, f := range files {
		fileIDs[i] = ix.Builder.AllocateFileID(f.Path)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for i, f := range files {
		i, f := i, f
		id := fileIDs[i]
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			source, err := os.ReadFile(f.Path)
			if err != nil {
				ix.Logger.Warn("indexer.read_failed", "path", f.Path, "error", err)
				return nil
			}
			res := indexfile.Index(ix.Logger, id, f.Path, source, f.Language)
			results[i] = &parsedFile{info: f, id: id, res: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// resolveAll runs stages 4.3-4.6 against everything the builder has
// accumulated so far and returns the resulting snapshot. Stages run
// serially: each depends on the previous one's output (module paths before
// import resolution, import resolution before reference resolution, both
// before type-directed member resolution).
func (ix *Indexer) resolveAll() *project.Index {
	idx := ix.Builder.Build()
	resolve.ComputeModulePaths(ix.Builder, idx)
	resolve.ResolveImports(idx)
	resolve.ResolveReferences(ix.Builder, idx)
	typeinfer.ResolveMemberAccess(ix.Builder, idx)
	return ix.Builder.Build()
}
