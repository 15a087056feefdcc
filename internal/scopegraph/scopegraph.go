// Package scopegraph defines the per-file data model produced by
// internal/indexfile: scopes, definitions, references and import
// statements, plus the resolved/call edge types the project index layers
// on top. Identifiers here are weak — a Definition or Reference is
// addressed by (FileID, LocalID) rather than a pointer, so files that
// import each other never form an ownership cycle; internal/project is
// the only thing that dereferences these ids into real structs.
package scopegraph

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/ariadnehq/ariadne/internal/langspec"
)

// FileID identifies a File within a project.Index for the lifetime of the
// index. It is never reused after a file is removed.
type FileID uint64

// LocalID identifies an entity (scope, definition, reference, import)
// within a single File's Graph. It is only unique within that file.
type LocalID uint32

// ScopeID addresses a Scope in a specific file's graph.
type ScopeID struct {
	File  FileID
	Local LocalID
}

// DefID addresses a Definition in a specific file's graph.
type DefID struct {
	File  FileID
	Local LocalID
}

// RefID addresses a Reference in a specific file's graph.
type RefID struct {
	File  FileID
	Local LocalID
}

// ImportID addresses an ImportStatement in a specific file's graph.
type ImportID struct {
	File  FileID
	Local LocalID
}

func (id ScopeID) String() string  { return fmt.Sprintf("%d:s%d", id.File, id.Local) }
func (id DefID) String() string    { return fmt.Sprintf("%d:d%d", id.File, id.Local) }
func (id RefID) String() string    { return fmt.Sprintf("%d:r%d", id.File, id.Local) }
func (id ImportID) String() string { return fmt.Sprintf("%d:i%d", id.File, id.Local) }

// Range is a half-open source span, 0-indexed rows/columns, mirroring
// tree-sitter's own point convention.
type Range struct {
	StartByte uint
	EndByte   uint
	StartRow  uint
	StartCol  uint
	EndRow    uint
	EndCol    uint
}

// Excerpt returns the verbatim source text the range spans.
func (r Range) Excerpt(source []byte) string {
	if int(r.EndByte) > len(source) || r.StartByte > r.EndByte {
		return ""
	}
	return string(source[r.StartByte:r.EndByte])
}

// File is one indexed source file.
type File struct {
	ID          FileID
	Path        string
	Language    langspec.Language
	ContentHash uint64

	// Tree is the parsed syntax tree, retained for excerpt/re-query use.
	// Nil when the file downgraded to an empty graph (parse failure).
	Tree *tree_sitter.Tree

	// Source is the exact byte content the tree was parsed from, kept
	// alongside it so Range.Excerpt and re-queries don't need a second read.
	Source []byte

	// HasParseErrors is true when the tree-sitter tree reported one or
	// more ERROR nodes; the file is indexed best-effort in that case.
	HasParseErrors bool
}

// Close releases the file's syntax tree. Safe to call on a zero-value Tree.
func (f *File) Close() {
	if f.Tree != nil {
		f.Tree.Close()
		f.Tree = nil
	}
}

// Scope is a lexical scope: module, function, class, plain block, or
// comprehension. Every scope but the module root has exactly one parent.
type Scope struct {
	ID     ScopeID
	Parent *ScopeID
	Kind   langspec.ScopeKind
	Range  Range
}

// UsageKind classifies how a Reference's name is used.
type UsageKind int

const (
	UsageRead UsageKind = iota
	UsageCall
	UsageTypeAnnotation
	UsageMemberAccess
)

func (k UsageKind) String() string {
	switch k {
	case UsageRead:
		return "read"
	case UsageCall:
		return "call"
	case UsageTypeAnnotation:
		return "type-annotation"
	case UsageMemberAccess:
		return "member-access"
	default:
		return "unknown"
	}
}

// Visibility is a definition's externally-visible-name hint, derived from
// declaration-site keywords or naming convention (internal/langspec.Spec.Exported).
type Visibility int

const (
	VisibilityUnknown Visibility = iota
	VisibilityExported
	VisibilityPrivate
)

// Definition is a named binding: a function, method, class, variable,
// parameter, or import binding.
type Definition struct {
	ID    DefID
	Name  string
	Kind  langspec.DefKind
	Scope ScopeID
	Range Range

	// DeclaredType is the verbatim type expression text at the declaration
	// site, if any (e.g. a parameter annotation or a `let x: T` form).
	// Resolved into a type descriptor lazily by internal/typeinfer.
	DeclaredType string

	Visibility Visibility

	// Hoisted mirrors langspec.Spec.Hoisted for this Definition's Kind,
	// cached at construction so intra-file resolution doesn't need the
	// language spec in hand for every reference.
	Hoisted bool

	// ProxyTarget is set by internal/resolve on an import-binding
	// Definition whose import resolved; it names the Definition the
	// binding stands for, which ResolveReferences follows to attribute
	// references through the binding.
	ProxyTarget *DefID

	// Bases holds the verbatim superclass/interface name texts for a
	// DefClass Definition, unresolved — internal/typeinfer resolves each
	// entry to a DefID lazily when it needs this class's MRO.
	Bases []string

	// AssignedExpr is the verbatim right-hand-side expression text of a
	// DefVariable's most recent assignment, used by internal/typeinfer as
	// the fallback descriptor source when DeclaredType is empty.
	AssignedExpr string
}

// Reference is a name usage: a read, a call, a type annotation, or one
// segment of a member-access chain.
type Reference struct {
	ID    RefID
	Name  string
	Usage UsageKind
	Scope ScopeID
	Range Range

	// Receiver is the reference this one is a member of (`a.b` — b's
	// Receiver is a's RefID), nil for a bare name.
	Receiver *RefID
}

// ImportStyle classifies an ImportStatement's binding shape.
type ImportStyle int

const (
	ImportSideEffect ImportStyle = iota
	ImportNamed
	ImportNamespace
	ImportWildcard
)

// ImportBinding is one name bound by an ImportStatement: `ImportedName`
// from the target module, bound locally as `LocalName` (equal to
// ImportedName unless the statement aliases it).
type ImportBinding struct {
	ImportedName string
	LocalName    string
	// DefID is the synthetic import-binding Definition created for this
	// binding at the file's root scope.
	DefID DefID
}

// ImportStatement is a raw import/require/use form, not yet resolved to a
// target file — that's internal/resolve's job.
type ImportStatement struct {
	ID        ImportID
	RawModule string
	Style     ImportStyle
	Bindings  []ImportBinding
	Range     Range

	// TargetFile is the file RawModule resolved to, set by
	// internal/resolve's import resolver. Nil until resolved, and stays
	// nil for imports that name an external/unindexed module (stdlib,
	// third-party package, ...).
	TargetFile *FileID
}

// EdgeQuality ranks how confidently a ResolvedEdge names its target.
type EdgeQuality int

const (
	QualityExact EdgeQuality = iota
	QualityHeuristic
	QualityPolymorphicSet
)

// ResolvedEdge points a Reference at the Definition(s) it names.
// Single-target edges have exactly one entry in Targets; a
// QualityPolymorphicSet edge enumerates every candidate implementer.
type ResolvedEdge struct {
	Source  RefID
	Targets []DefID
	Quality EdgeQuality
}

// CallEdge is a caller/callee pair derived from a ResolvedEdge whose
// Reference usage kind is UsageCall. Rebuilt on demand, never stored
// durably across a batch.
type CallEdge struct {
	Caller   DefID
	Callee   DefID
	CallSite RefID
}

// Graph is the local scope graph for one file: its scope tree plus every
// definition, reference and import statement it contains. Entities are
// appended in the order the indexing passes add them (definitions before
// import bindings); intra-file resolution and the "latest preceding
// definition wins" shadowing rule compare source positions, not slice order.
type Graph struct {
	File File

	Scopes      []Scope
	Definitions []Definition
	References  []Reference
	Imports     []ImportStatement

	// Resolved holds every ResolvedEdge produced purely from this file's
	// own content (stage 4.2's intra-file pass). internal/project merges
	// these into the project-wide edge table when the file is added;
	// cross-file edges from internal/resolve live only in the project index.
	Resolved []ResolvedEdge

	byScope  map[ScopeID]*Scope
	byDef    map[DefID]int
	byRef    map[RefID]int
	byImport map[ImportID]int
}

// NewGraph returns an empty Graph for f with its module-root scope
// pre-populated (local id 0, no parent).
func NewGraph(f File, moduleRange Range) *Graph {
	g := &Graph{
		File:     f,
		byScope:  make(map[ScopeID]*Scope),
		byDef:    make(map[DefID]int),
		byRef:    make(map[RefID]int),
		byImport: make(map[ImportID]int),
	}
	root := Scope{
		ID:    ScopeID{File: f.ID, Local: 0},
		Kind:  langspec.ScopeModule,
		Range: moduleRange,
	}
	g.Scopes = append(g.Scopes, root)
	g.byScope[root.ID] = &g.Scopes[len(g.Scopes)-1]
	return g
}

// RootScope returns the file's module-level scope.
func (g *Graph) RootScope() ScopeID {
	return ScopeID{File: g.File.ID, Local: 0}
}

func (g *Graph) nextLocalID() LocalID {
	return LocalID(len(g.Scopes) + len(g.Definitions) + len(g.References) + len(g.Imports))
}

// AddScope appends a new Scope under parent and returns its id.
func (g *Graph) AddScope(parent ScopeID, kind langspec.ScopeKind, r Range) ScopeID {
	id := ScopeID{File: g.File.ID, Local: g.nextLocalID()}
	p := parent
	s := Scope{ID: id, Parent: &p, Kind: kind, Range: r}
	g.Scopes = append(g.Scopes, s)
	g.byScope[id] = &g.Scopes[len(g.Scopes)-1]
	return id
}

// Scope looks up a scope by id, returning ok=false if it isn't in this graph.
func (g *Graph) Scope(id ScopeID) (*Scope, bool) {
	s, ok := g.byScope[id]
	return s, ok
}

// AddDefinition appends a Definition and returns its id.
func (g *Graph) AddDefinition(scope ScopeID, name string, kind langspec.DefKind, r Range, declaredType string, hoisted bool, vis Visibility) DefID {
	id := DefID{File: g.File.ID, Local: g.nextLocalID()}
	g.Definitions = append(g.Definitions, Definition{
		ID:           id,
		Name:         name,
		Kind:         kind,
		Scope:        scope,
		Range:        r,
		DeclaredType: declaredType,
		Visibility:   vis,
		Hoisted:      hoisted,
	})
	g.byDef[id] = len(g.Definitions) - 1
	return id
}

// AddReference appends a Reference and returns its id.
func (g *Graph) AddReference(scope ScopeID, name string, usage UsageKind, r Range, receiver *RefID) RefID {
	id := RefID{File: g.File.ID, Local: g.nextLocalID()}
	g.References = append(g.References, Reference{
		ID:       id,
		Name:     name,
		Usage:    usage,
		Scope:    scope,
		Range:    r,
		Receiver: receiver,
	})
	g.byRef[id] = len(g.References) - 1
	return id
}

// AddImport appends an ImportStatement and returns its id. Bindings'
// DefID fields must already be populated by the caller (each binding gets
// a synthetic import-binding Definition at the root scope).
func (g *Graph) AddImport(style ImportStyle, rawModule string, r Range, bindings []ImportBinding) ImportID {
	id := ImportID{File: g.File.ID, Local: g.nextLocalID()}
	g.Imports = append(g.Imports, ImportStatement{
		ID:        id,
		RawModule: rawModule,
		Style:     style,
		Bindings:  bindings,
		Range:     r,
	})
	g.byImport[id] = len(g.Imports) - 1
	return id
}

// ImportStatement looks up an import statement by id, returning a pointer
// into the graph's slice so internal/resolve can set TargetFile or append
// bindings discovered by expanding a wildcard import.
func (g *Graph) ImportStatement(id ImportID) (*ImportStatement, bool) {
	if id.File != g.File.ID {
		return nil, false
	}
	i, ok := g.byImport[id]
	if !ok {
		return nil, false
	}
	return &g.Imports[i], true
}

// Definition looks up a definition by id within this graph.
func (g *Graph) Definition(id DefID) (*Definition, bool) {
	if id.File != g.File.ID {
		return nil, false
	}
	i, ok := g.byDef[id]
	if !ok {
		return nil, false
	}
	return &g.Definitions[i], true
}

// Reference looks up a reference by id within this graph.
func (g *Graph) Reference(id RefID) (*Reference, bool) {
	if id.File != g.File.ID {
		return nil, false
	}
	i, ok := g.byRef[id]
	if !ok {
		return nil, false
	}
	return &g.References[i], true
}
