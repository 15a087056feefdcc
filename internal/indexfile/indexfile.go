// Package indexfile implements spec stage 4.2: turning one file's source
// into a local scope graph plus an import table. It is the only package
// that runs tree-sitter queries directly; everything downstream consumes
// internal/scopegraph's data types.
package indexfile

import (
	"log/slog"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	"github.com/zeebo/xxh3"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/querypack"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
	"github.com/ariadnehq/ariadne/internal/tsparse"
)

// Result is the output of indexing one file: its scope graph.
type Result struct {
	Graph *scopegraph.Graph
}

// Index parses source, builds the scope tree, attaches definitions,
// references and imports, then runs intra-file lexical resolution. It
// never returns an error for a malformed file — a parse failure downgrades
// to an empty graph per spec.md §4.2's failure semantics; logger receives
// the detail.
func Index(logger *slog.Logger, id scopegraph.FileID, path string, source []byte, language langspec.Language) *Result {
	if logger == nil {
		logger = slog.Default()
	}

	hash := xxh3.Hash(source)

	tree, err := tsparse.Parse(language, source)
	if err != nil {
		logger.Warn("indexfile.parse_failed", "path", path, "language", language, "error", err)
		f := scopegraph.File{ID: id, Path: path, Language: language, ContentHash: hash, Source: source}
		return &Result{Graph: scopegraph.NewGraph(f, scopegraph.Range{})}
	}

	root := tree.RootNode()
	hasErrors := root.HasError()
	if hasErrors {
		logger.Info("indexfile.parse_partial", "path", path, "language", language)
	}

	f := scopegraph.File{
		ID:             id,
		Path:           path,
		Language:       language,
		ContentHash:    hash,
		Tree:           tree,
		Source:         source,
		HasParseErrors: hasErrors,
	}

	spec := langspec.ForLanguage(language)
	if spec == nil {
		logger.Warn("indexfile.unsupported_language", "path", path, "language", language)
		return &Result{Graph: scopegraph.NewGraph(f, rangeOf(root))}
	}

	pack, err := querypack.For(language)
	if err != nil {
		logger.Error("indexfile.querypack_failed", "path", path, "language", language, "error", err)
		return &Result{Graph: scopegraph.NewGraph(f, rangeOf(root))}
	}

	g := scopegraph.NewGraph(f, rangeOf(root))

	ranges := newScopeRanges()
	ranges.set(rangeKey(root), g.RootScope())

	buildScopes(g, pack, spec, root, source, ranges)
	buildDefinitions(g, pack, spec, source, ranges)
	buildImports(g, pack, spec, source)
	buildReferences(g, pack, spec, source, ranges)

	resolveLocal(g)

	return &Result{Graph: g}
}

func rangeOf(n *tree_sitter.Node) scopegraph.Range {
	if n == nil {
		return scopegraph.Range{}
	}
	start, end := n.StartPosition(), n.EndPosition()
	return scopegraph.Range{
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
		StartRow:  start.Row,
		StartCol:  start.Column,
		EndRow:    end.Row,
		EndCol:    end.Column,
	}
}

type byteSpan struct {
	start, end uint
}

func rangeKey(n *tree_sitter.Node) byteSpan {
	return byteSpan{start: n.StartByte(), end: n.EndByte()}
}

// scopeRanges maps a node's byte span to the ScopeID created for it, used
// to find the innermost enclosing scope of any other node by climbing
// parents until a span hits the map.
type scopeRanges struct {
	m map[byteSpan]scopegraph.ScopeID
}

func newScopeRanges() *scopeRanges {
	return &scopeRanges{m: make(map[byteSpan]scopegraph.ScopeID)}
}

func (r *scopeRanges) set(k byteSpan, id scopegraph.ScopeID) { r.m[k] = id }

// enclosing returns the innermost scope containing n, climbing parents
// (including n itself) until one matches a registered scope span.
func (r *scopeRanges) enclosing(n *tree_sitter.Node, root scopegraph.ScopeID) scopegraph.ScopeID {
	for cur := n; cur != nil; cur = cur.Parent() {
		if id, ok := r.m[rangeKey(cur)]; ok {
			return id
		}
	}
	return root
}

func nodeText(n *tree_sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return tsparse.NodeText(n, source)
}
