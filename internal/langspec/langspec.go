// Package langspec is the parser registry: it maps a file extension to a
// language identifier and a table of tree-sitter node kinds that the rest of
// the indexer treats as definitions, references, scopes, and imports.
//
// Adding a language takes a new file in this package (an extension mapping
// and the node kind tables below) plus a grammar entry in internal/tsparse,
// which keeps its own language-to-grammar table.
package langspec

// Language identifies one of the supported source languages.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	Go         Language = "go"
	Java       Language = "java"
	Rust       Language = "rust"
	C          Language = "c"
	CPP        Language = "cpp"
	CSharp     Language = "c-sharp"
	PHP        Language = "php"
	Ruby       Language = "ruby"
	Lua        Language = "lua"
	Kotlin     Language = "kotlin"
	Scala      Language = "scala"
)

// AllLanguages returns every registered language, in registration order.
func AllLanguages() []Language {
	out := make([]Language, 0, len(order))
	out = append(out, order...)
	return out
}

// ScopeKind is the fixed set of lexical scope kinds spec.md names in §3.
type ScopeKind int

const (
	ScopeModule ScopeKind = iota
	ScopeFunction
	ScopeClass
	ScopeBlock
	ScopeComprehension
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeModule:
		return "module"
	case ScopeFunction:
		return "function"
	case ScopeClass:
		return "class"
	case ScopeBlock:
		return "block"
	case ScopeComprehension:
		return "comprehension"
	default:
		return "unknown"
	}
}

// DefKind is the fixed set of definition kinds spec.md names in §3.
type DefKind int

const (
	DefFunction DefKind = iota
	DefMethod
	DefStaticMethod
	DefClassMethod
	DefProperty
	DefClass
	DefVariable
	DefParameter
	DefImportBinding
)

// Spec is the per-language table consumed by internal/querypack and
// internal/indexfile. All fields are tree-sitter node kind names as they
// appear in that language's grammar.
type Spec struct {
	Language       Language
	FileExtensions []string

	// FunctionNodeTypes are node kinds that introduce a function or method
	// definition and, simultaneously, a function scope.
	FunctionNodeTypes []string
	// ClassNodeTypes are node kinds that introduce a class-like definition
	// and a class scope; a FunctionNodeTypes node nested in one is
	// classified as a method rather than a plain function.
	ClassNodeTypes []string
	// FieldNodeTypes are node kinds for class/struct fields (non-callable members).
	FieldNodeTypes []string
	// VariableNodeTypes are node kinds for a local variable binding or
	// re-assignment (spec.md §4.2 step 3: each one is itself a Definition).
	VariableNodeTypes []string
	// ParameterNodeTypes are node kinds for a function/method parameter
	// declaration.
	ParameterNodeTypes []string
	// DefinitionPatterns holds whole tree-sitter query patterns, each with
	// its own @target capture, for definition forms a bare node kind can't
	// name unambiguously (e.g. a parameter that's a bare identifier node,
	// only distinguishable by its parent). Appended verbatim alongside the
	// kind-alternation built from the tables above.
	DefinitionPatterns []string
	// ModuleNodeTypes are the root node kind(s) for a whole file.
	ModuleNodeTypes []string
	// BlockNodeTypes are node kinds that introduce a plain block scope
	// (loop bodies, if/else bodies, try/catch bodies, ...).
	BlockNodeTypes []string
	// ComprehensionNodeTypes are node kinds for comprehension-style scopes
	// (list/set/dict/generator comprehensions). Most languages have none.
	ComprehensionNodeTypes []string

	// CallNodeTypes are node kinds for a call expression.
	CallNodeTypes []string
	// MemberAccessNodeTypes are node kinds for `a.b` style member access.
	MemberAccessNodeTypes []string
	// IdentifierNodeType is the plain identifier leaf kind used as a bare
	// name reference.
	IdentifierNodeType string

	// ImportNodeTypes are node kinds for import/use/require statements.
	ImportNodeTypes []string
	// PackageIndicators are file names that mark a directory as a package root.
	PackageIndicators []string

	// Hoisted marks which definition kinds are visible anywhere in their
	// scope, not just after their source position (spec.md §4.2).
	Hoisted map[DefKind]bool

	// Exported reports whether name is externally visible by this
	// language's naming convention (used when no explicit export list exists).
	Exported func(name string) bool
}

var registry = map[string]*Spec{}
var byLanguage = map[Language]*Spec{}
var order []Language

// Register adds spec to the global registry, indexed by every one of its
// file extensions. Call from each language file's init().
func Register(spec *Spec) {
	for _, ext := range spec.FileExtensions {
		registry[ext] = spec
	}
	if _, exists := byLanguage[spec.Language]; !exists {
		order = append(order, spec.Language)
	}
	byLanguage[spec.Language] = spec
}

// ForExtension returns the Spec registered for a file extension (e.g. ".go").
func ForExtension(ext string) *Spec {
	return registry[ext]
}

// ForLanguage returns the Spec for a language identifier.
func ForLanguage(l Language) *Spec {
	return byLanguage[l]
}

// LanguageForExtension reports the Language registered for ext, if any.
func LanguageForExtension(ext string) (Language, bool) {
	spec := registry[ext]
	if spec == nil {
		return "", false
	}
	return spec.Language, true
}

// defaultExported is the common "leading underscore is private" convention
// shared by Python, Ruby and a handful of others.
func defaultExported(name string) bool {
	return name != "" && name[0] != '_'
}

// alwaysExported is used for languages whose grammar doesn't expose a
// textual visibility convention Ariadne can cheaply infer (e.g. Lua).
func alwaysExported(string) bool { return true }

// capitalizedExported implements Go's exported-identifier rule.
func capitalizedExported(name string) bool {
	if name == "" {
		return false
	}
	r := name[0]
	return r >= 'A' && r <= 'Z'
}
