package indexer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ariadnehq/ariadne/internal/discover"
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
)

// ReindexBatch is spec.md §4.8's incremental batch: seed a fresh builder
// from the last published snapshot, drop every removed file and replace
// every changed/created one, then re-run the project-wide passes and
// publish. internal/watch calls this once per debounced batch.
//
// The re-run always covers every file rather than only the modified set's
// reverse-import closure (spec.md §4.8 step 4's optimization) — simpler,
// and still satisfies the invariant that the result equals a cold index of
// the final contents, just without the narrower incremental cost bound.
func (ix *Indexer) ReindexBatch(ctx context.Context, changedOrCreated, removed []string) (*project.Index, error) {
	seed := ix.Store.Load()
	ix.Builder = project.NewBuilder(ix.Root, seed)

	for _, path := range removed {
		if seed == nil {
			continue
		}
		if id, ok := seed.FileByPath(path); ok {
			ix.Builder.Remove(id)
		}
	}

	var files []discover.FileInfo
	for _, path := range changedOrCreated {
		if _, err := os.Stat(path); err != nil {
			continue // raced with a subsequent delete; next batch's removed list will catch it
		}
		spec := langspec.ForExtension(filepath.Ext(path))
		if spec == nil {
			continue
		}
		rel, _ := filepath.Rel(ix.Root, path)
		files = append(files, discover.FileInfo{Path: path, RelPath: filepath.ToSlash(rel), Language: spec.Language})
	}

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
