// Package project holds the in-memory project index spec.md §4.3
// describes: a map from file id to local scope graph, plus the secondary
// tables the import and reference resolvers depend on. Add, replace and
// remove are the only mutations; replace is atomic at file granularity.
// internal/indexer publishes a new *Index snapshot atomically at the end of
// each batch — readers never see a partially-applied mix of files.
package project

import (
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// ExportKey addresses one exported name in one file.
type ExportKey struct {
	File scopegraph.FileID
	Name string
}

// Index is an immutable snapshot of the whole project once published.
// Mutation happens on a staging copy (see Builder); readers only ever see
// a fully-built Index.
type Index struct {
	Root string

	files     map[scopegraph.FileID]*scopegraph.Graph
	pathToID  map[string]scopegraph.FileID
	nextID    scopegraph.FileID

	// modulePathToFile resolves language-specific package-style import
	// paths ("a.b.c", a Go import path, ...) to the file that defines them.
	modulePathToFile map[string]scopegraph.FileID

	// reverseImports[F] is the set of files whose ImportStatements name a
	// module resolving into file F — used by stage 4.8 to find who needs
	// re-resolution when F changes.
	reverseImports map[scopegraph.FileID]map[scopegraph.FileID]struct{}

	// exports is the (file, exported-name) -> Definition table built by
	// filtering each file's root-scope definitions through its language's
	// visibility rule.
	exports map[ExportKey]scopegraph.DefID

	// edges is the project-wide ResolvedEdge table. Intra-file edges are
	// merged in from scopegraph.Graph.Resolved when a file is Replace()'d;
	// cross-file edges are added directly by internal/resolve.
	edges map[scopegraph.RefID]scopegraph.ResolvedEdge
}

// Builder mutates a staging Index; call Build() to obtain an immutable
// snapshot safe to publish. Not safe for concurrent use — the indexing
// executor is single-writer by construction (spec.md §5).
type Builder struct {
	idx *Index
}

// NewBuilder starts a staging index rooted at root, optionally seeded from
// an existing snapshot (pass nil to start empty).
func NewBuilder(root string, seed *Index) *Builder {
	b := &Builder{idx: &Index{
		Root:             root,
		files:            map[scopegraph.FileID]*scopegraph.Graph{},
		pathToID:         map[string]scopegraph.FileID{},
		modulePathToFile: map[string]scopegraph.FileID{},
		reverseImports:   map[scopegraph.FileID]map[scopegraph.FileID]struct{}{},
		exports:          map[ExportKey]scopegraph.DefID{},
		edges:            map[scopegraph.RefID]scopegraph.ResolvedEdge{},
	}}
	if seed != nil {
		for id, g := range seed.files {
			b.idx.files[id] = g
			b.idx.pathToID[g.File.Path] = id
			if id >= b.idx.nextID {
				b.idx.nextID = id + 1
			}
		}
		if seed.nextID > b.idx.nextID {
			b.idx.nextID = seed.nextID
		}
		for k, v := range seed.modulePathToFile {
			b.idx.modulePathToFile[k] = v
		}
		for k, v := range seed.exports {
			b.idx.exports[k] = v
		}
		for k, v := range seed.edges {
			b.idx.edges[k] = v
		}
		for f, set := range seed.reverseImports {
			cp := make(map[scopegraph.FileID]struct{}, len(set))
			for k := range set {
				cp[k] = struct{}{}
			}
			b.idx.reverseImports[f] = cp
		}
	}
	return b
}

// AllocateFileID reserves the next file id for a new path, or returns the
// existing id if path is already indexed (a re-index, not a create).
func (b *Builder) AllocateFileID(path string) scopegraph.FileID {
	if id, ok := b.idx.pathToID[path]; ok {
		return id
	}
	id := b.idx.nextID
	b.idx.nextID++
	b.idx.pathToID[path] = id
	return id
}

// Replace installs g as the graph for its file id, replacing any prior
// graph for that file atomically within the staging index, and refreshes
// the export table entries the file's root scope contributes.
func (b *Builder) Replace(g *scopegraph.Graph) {
	id := g.File.ID
	if old, ok := b.idx.files[id]; ok {
		old.Close()
		b.removeExportsFor(id)
		b.removeEdgesFor(id)
	}
	b.idx.files[id] = g
	b.idx.pathToID[g.File.Path] = id
	b.rebuildExportsFor(g)
	for _, e := range g.Resolved {
		b.idx.edges[e.Source] = e
	}
}

// Remove deletes a file and its contributed exports from the staging
// index. It does not remove reverseImports entries that point at it —
// those are invalidation signals for stage 4.8's caller, handled there.
func (b *Builder) Remove(id scopegraph.FileID) {
	g, ok := b.idx.files[id]
	if !ok {
		return
	}
	b.removeExportsFor(id)
	b.removeEdgesFor(id)
	delete(b.idx.pathToID, g.File.Path)
	delete(b.idx.files, id)
	for path, fid := range b.idx.modulePathToFile {
		if fid == id {
			delete(b.idx.modulePathToFile, path)
		}
	}
	g.Close()
}

// SetModulePath records that modulePath (a package-style import path or a
// file-relative module path) resolves to file id.
func (b *Builder) SetModulePath(modulePath string, id scopegraph.FileID) {
	b.idx.modulePathToFile[modulePath] = id
}

// AddReverseImport records that importer imports something that resolved
// into target.
func (b *Builder) AddReverseImport(target, importer scopegraph.FileID) {
	set, ok := b.idx.reverseImports[target]
	if !ok {
		set = map[scopegraph.FileID]struct{}{}
		b.idx.reverseImports[target] = set
	}
	set[importer] = struct{}{}
}

func (b *Builder) removeExportsFor(id scopegraph.FileID) {
	for k := range b.idx.exports {
		if k.File == id {
			delete(b.idx.exports, k)
		}
	}
}

// removeEdgesFor drops every ResolvedEdge whose source or any target lives
// in file id, per spec.md §4.8 step 2.
func (b *Builder) removeEdgesFor(id scopegraph.FileID) {
	for ref, e := range b.idx.edges {
		if ref.File == id {
			delete(b.idx.edges, ref)
			continue
		}
		for _, t := range e.Targets {
			if t.File == id {
				delete(b.idx.edges, ref)
				break
			}
		}
	}
}

// AddResolvedEdge installs a cross-file (or override) ResolvedEdge,
// replacing any prior edge for the same source Reference.
func (b *Builder) AddResolvedEdge(e scopegraph.ResolvedEdge) {
	b.idx.edges[e.Source] = e
}

func (b *Builder) rebuildExportsFor(g *scopegraph.Graph) {
	spec := langspec.ForLanguage(g.File.Language)
	root := g.RootScope()
	for i := range g.Definitions {
		d := &g.Definitions[i]
		if d.Scope != root {
			continue
		}
		if d.Kind == langspec.DefImportBinding {
			continue // import bindings aren't re-exports unless a language marks them so
		}
		exported := d.Visibility == scopegraph.VisibilityExported
		if spec != nil && spec.Exported != nil && d.Visibility == scopegraph.VisibilityUnknown {
			exported = spec.Exported(d.Name)
		}
		if !exported {
			continue
		}
		b.idx.exports[ExportKey{File: g.File.ID, Name: d.Name}] = d.ID
	}
}

// Build finalizes the staging index into an immutable snapshot.
func (b *Builder) Build() *Index {
	return b.idx
}

// File returns the graph for a file id.
func (idx *Index) File(id scopegraph.FileID) (*scopegraph.Graph, bool) {
	g, ok := idx.files[id]
	return g, ok
}

// FileByPath returns the file id for an absolute or root-relative path.
func (idx *Index) FileByPath(path string) (scopegraph.FileID, bool) {
	id, ok := idx.pathToID[path]
	return id, ok
}

// FileByModulePath resolves a package-style import path to a file id.
func (idx *Index) FileByModulePath(modulePath string) (scopegraph.FileID, bool) {
	id, ok := idx.modulePathToFile[modulePath]
	return id, ok
}

// Export looks up an exported name in a specific file.
func (idx *Index) Export(file scopegraph.FileID, name string) (scopegraph.DefID, bool) {
	id, ok := idx.exports[ExportKey{File: file, Name: name}]
	return id, ok
}

// AllExports returns every (name -> DefID) pair a file exports, used for
// wildcard import expansion.
func (idx *Index) AllExports(file scopegraph.FileID) map[string]scopegraph.DefID {
	out := map[string]scopegraph.DefID{}
	for k, v := range idx.exports {
		if k.File == file {
			out[k.Name] = v
		}
	}
	return out
}

// ReverseImporters returns the set of files that import (transitively
// resolve into) target.
func (idx *Index) ReverseImporters(target scopegraph.FileID) []scopegraph.FileID {
	set, ok := idx.reverseImports[target]
	if !ok {
		return nil
	}
	out := make([]scopegraph.FileID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Edge returns the project-wide ResolvedEdge recorded for a Reference, if
// any — the merged result of stage 4.2's intra-file pass and internal/resolve's
// cross-file chasing, whichever ran last for that source.
func (idx *Index) Edge(ref scopegraph.RefID) (scopegraph.ResolvedEdge, bool) {
	e, ok := idx.edges[ref]
	return e, ok
}

// AllEdges returns every project-wide ResolvedEdge, in no particular
// order. internal/callgraph uses this to derive CallEdges on demand rather
// than maintaining a second index.
func (idx *Index) AllEdges() []scopegraph.ResolvedEdge {
	out := make([]scopegraph.ResolvedEdge, 0, len(idx.edges))
	for _, e := range idx.edges {
		out = append(out, e)
	}
	return out
}

// Definition resolves a DefID to its Definition, regardless of which
// file's graph owns it.
func (idx *Index) Definition(id scopegraph.DefID) (*scopegraph.Definition, bool) {
	g, ok := idx.files[id.File]
	if !ok {
		return nil, false
	}
	return g.Definition(id)
}

// Reference resolves a RefID to its Reference.
func (idx *Index) Reference(id scopegraph.RefID) (*scopegraph.Reference, bool) {
	g, ok := idx.files[id.File]
	if !ok {
		return nil, false
	}
	return g.Reference(id)
}

// Files returns every indexed file id, in no particular order.
func (idx *Index) Files() []scopegraph.FileID {
	out := make([]scopegraph.FileID, 0, len(idx.files))
	for id := range idx.files {
		out = append(out, id)
	}
	return out
}

// RelPath returns path relative to the project root, using forward
// slashes regardless of OS, for stable module-path derivation.
func (idx *Index) RelPath(path string) string {
	rel, err := filepath.Rel(idx.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// WithoutExtension strips path's extension, used when deriving a
// dotted/slashed module path from a file path.
func WithoutExtension(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext)
}

// Snapshot is an atomically-published, read-only handle onto an Index.
// internal/indexer is the only writer; every query handler reads through
// one of these, obtained via Store.Load.
type Snapshot = *Index

// Store publishes Index snapshots for concurrent readers via an
// atomic pointer swap — spec.md §5's single-writer/many-reader model.
type Store struct {
	mu      sync.Mutex // serializes writers only; readers never block
	current atomic.Pointer[Index]
}

// NewStore returns a Store with no published snapshot yet.
func NewStore() *Store {
	return &Store{}
}

// Load returns the most recently published snapshot, or nil before the
// first Publish.
func (s *Store) Load() Snapshot {
	return s.current.Load()
}

// Publish atomically installs idx as the current snapshot.
func (s *Store) Publish(idx *Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Store(idx)
}
