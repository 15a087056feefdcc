// Package queryerr defines Ariadne's closed catalog of query-facing error
// kinds and the structured error type that carries one, split the way the
// teacher's pkg/apierr is: a kind enum, a catalog of canned constructors,
// the error type itself, and small classification helpers.
package queryerr

// Kind is a machine-readable, closed classification of what went wrong
// answering a query or completing an indexing step.
type Kind string

const (
	// KindUnsupportedLanguage means the file extension has no registered
	// langspec.Spec.
	KindUnsupportedLanguage Kind = "unsupported_language"
	// KindParsePartial means tree-sitter produced an ERROR node but
	// indexing proceeded on the recoverable portion of the tree.
	KindParsePartial Kind = "parse_partial"
	// KindUnresolvedSymbol means a reference or import named could not be
	// attributed to any Definition.
	KindUnresolvedSymbol Kind = "unresolved_symbol"
	// KindAmbiguousSymbol means a name-only lookup matched more than one
	// candidate and the tie-break rules could not narrow it to one.
	KindAmbiguousSymbol Kind = "ambiguous_symbol"
	// KindNotFound means the requested file, symbol, or scope does not
	// exist in the current snapshot at all.
	KindNotFound Kind = "not_found"
	// KindTimeout means a query's context deadline elapsed before it
	// completed.
	KindTimeout Kind = "timeout"
	// KindInternal means an unexpected failure occurred.
	KindInternal Kind = "internal"
)
