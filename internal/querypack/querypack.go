// Package querypack compiles the four named tree-sitter queries spec.md's
// parser registry promises for every language: scopes, definitions,
// references, imports. Each query is a bracket-OR over the node kinds
// internal/langspec's Spec lists for that concern, with a single @target
// capture on the matched node — internal/indexfile does the field-level
// classification (name, receiver, declared type, ...) once it has the
// matched node in hand, the same two-step "broad query, then Go-side
// switch on Kind()" split the rest of the corpus uses.
package querypack

import (
	"fmt"
	"strings"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/tsparse"
)

// Kind names one of the four query-pack concerns.
type Kind int

const (
	KindScopes Kind = iota
	KindDefinitions
	KindReferences
	KindImports
)

func (k Kind) String() string {
	switch k {
	case KindScopes:
		return "scopes"
	case KindDefinitions:
		return "definitions"
	case KindReferences:
		return "references"
	case KindImports:
		return "imports"
	default:
		return "unknown"
	}
}

// TargetCapture is the capture name every compiled query uses for its
// matched node.
const TargetCapture = "target"

// Pack holds the four compiled queries for one language. Queries that
// would match zero node kinds (a concern whose node-kind lists are all
// empty for the language) are left nil; running them is a no-op.
type Pack struct {
	Language langspec.Language

	Scopes      *tree_sitter.Query
	Definitions *tree_sitter.Query
	References  *tree_sitter.Query
	Imports     *tree_sitter.Query
}

// Query returns the compiled query for kind, or nil if that concern has no
// node kinds for this language.
func (p *Pack) Query(kind Kind) *tree_sitter.Query {
	switch kind {
	case KindScopes:
		return p.Scopes
	case KindDefinitions:
		return p.Definitions
	case KindReferences:
		return p.References
	case KindImports:
		return p.Imports
	default:
		return nil
	}
}

var (
	mu    sync.Mutex
	cache = map[langspec.Language]*Pack{}
)

// For returns the cached Pack for l, compiling it on first use. Compiled
// queries are process-global and immutable once built, matching spec.md
// §5's "query packs are process-global, initialised on first use under a
// one-shot lock" requirement.
func For(l langspec.Language) (*Pack, error) {
	mu.Lock()
	defer mu.Unlock()

	if p, ok := cache[l]; ok {
		return p, nil
	}

	spec := langspec.ForLanguage(l)
	if spec == nil {
		return nil, fmt.Errorf("querypack: no langspec registered for %q", l)
	}
	grammar, err := tsparse.Grammar(l)
	if err != nil {
		return nil, err
	}

	p := &Pack{Language: l}

	scopeKinds := append(append(append([]string{}, spec.ModuleNodeTypes...), spec.FunctionNodeTypes...), spec.ClassNodeTypes...)
	scopeKinds = append(scopeKinds, spec.BlockNodeTypes...)
	scopeKinds = append(scopeKinds, spec.ComprehensionNodeTypes...)
	if q, err := compile(grammar, scopeKinds); err != nil {
		return nil, fmt.Errorf("querypack: %s scopes: %w", l, err)
	} else {
		p.Scopes = q
	}

	defKinds := append(append([]string{}, spec.FunctionNodeTypes...), spec.ClassNodeTypes...)
	defKinds = append(defKinds, spec.FieldNodeTypes...)
	defKinds = append(defKinds, spec.VariableNodeTypes...)
	defKinds = append(defKinds, spec.ParameterNodeTypes...)
	if q, err := compile(grammar, defKinds, spec.DefinitionPatterns...); err != nil {
		return nil, fmt.Errorf("querypack: %s definitions: %w", l, err)
	} else {
		p.Definitions = q
	}

	refKinds := append([]string{spec.IdentifierNodeType}, spec.CallNodeTypes...)
	refKinds = append(refKinds, spec.MemberAccessNodeTypes...)
	if q, err := compile(grammar, refKinds); err != nil {
		return nil, fmt.Errorf("querypack: %s references: %w", l, err)
	} else {
		p.References = q
	}

	if q, err := compile(grammar, spec.ImportNodeTypes); err != nil {
		return nil, fmt.Errorf("querypack: %s imports: %w", l, err)
	} else {
		p.Imports = q
	}

	cache[l] = p
	return p, nil
}

// compile builds `[(kind1) (kind2) ...] @target` over the deduplicated,
// non-empty node kinds, plus any extraPatterns appended verbatim as
// further top-level patterns (each supplying its own @target capture), and
// compiles the combination. Returns (nil, nil) when there's nothing to
// match — some languages genuinely have no member-access or comprehension
// node kind, and a zero-alternative query isn't valid tree-sitter syntax.
func compile(grammar *tree_sitter.Language, kinds []string, extraPatterns ...string) (*tree_sitter.Query, error) {
	seen := make(map[string]bool, len(kinds))
	var alts []string
	for _, k := range kinds {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		alts = append(alts, fmt.Sprintf("(%s)", k))
	}

	var parts []string
	switch len(alts) {
	case 0:
	case 1:
		parts = append(parts, alts[0]+" @"+TargetCapture)
	default:
		parts = append(parts, "["+strings.Join(alts, " ")+"] @"+TargetCapture)
	}
	for _, p := range extraPatterns {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}

	src := strings.Join(parts, "\n")
	q, err := tree_sitter.NewQuery(grammar, src)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return q, nil
}

// Matches runs query over root and returns every captured target node, in
// document order. A nil query (an empty concern for this language) yields
// no matches without error.
func Matches(query *tree_sitter.Query, root *tree_sitter.Node, source []byte) []*tree_sitter.Node {
	if query == nil || root == nil {
		return nil
	}
	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	idx, ok := query.CaptureIndexForName(TargetCapture)
	if !ok {
		return nil
	}

	var nodes []*tree_sitter.Node
	matches := cursor.Matches(query, root, source)
	for {
		m := matches.Next()
		if m == nil {
			break
		}
		nodes = append(nodes, m.NodesForCaptureIndex(idx)...)
	}
	return nodes
}
